package boot

import (
	"context"
	"fmt"
	"strings"

	"github.com/sethvargo/go-envconfig"
)

// Config is the full environment-driven configuration of the storefront.
// SecretKey both salts password digests and signs session tokens, so changing
// it invalidates every stored credential and active session.
type Config struct {
	Env         string `env:"ENV,default=dev"`
	Port        string `env:"PORT,default=8080"`
	DBPath      string `env:"DB_PATH,default=data/taazamart.db"`
	SecretKey   string `env:"SECRET_KEY,default=change_me_in_production"`
	AdminEmail  string `env:"ADMIN_EMAIL,default=ikrashahmed67@gmail.com"`
	DefaultCity string `env:"DEFAULT_CITY,default=Multan"`
}

func Load(ctx context.Context) (Config, error) {
	config := Config{}
	if err := envconfig.Process(ctx, &config); err != nil {
		return Config{}, fmt.Errorf("parsing env vars: %w", err)
	}
	config.AdminEmail = strings.ToLower(strings.TrimSpace(config.AdminEmail))
	return config, nil
}

func (c Config) Production() bool {
	return strings.EqualFold(strings.TrimSpace(c.Env), "production")
}
