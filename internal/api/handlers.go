package api

import (
	"github.com/ikrashahmed/taazamart/internal/boot"
	"github.com/ikrashahmed/taazamart/internal/db"
	"github.com/ikrashahmed/taazamart/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	db           *gorm.DB
	auth         *services.AuthService
	catalog      *services.CatalogService
	orders       *services.OrderService
	secretKey    []byte
	cookieSecure bool
}

func NewHandler(database *gorm.DB, config boot.Config) *Handler {
	repositories := db.NewRepositories(database)

	return &Handler{
		db: database,
		auth: services.NewAuthService(
			repositories.Users,
			services.NewLoginLimiter(),
			config.SecretKey,
			config.AdminEmail,
			config.DefaultCity,
		),
		catalog:      services.NewCatalogService(repositories.Categories, repositories.Products),
		orders:       services.NewOrderService(repositories.Orders, config.DefaultCity),
		secretKey:    []byte(config.SecretKey),
		cookieSecure: config.Production(),
	}
}
