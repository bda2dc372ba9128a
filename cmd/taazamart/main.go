package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/ikrashahmed/taazamart/internal/api"
	"github.com/ikrashahmed/taazamart/internal/boot"
	"github.com/ikrashahmed/taazamart/internal/db"
)

func main() {
	config, err := boot.Load(context.Background())
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	database, err := db.OpenSQLite(config.DBPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	handler := api.NewHandler(database, config)

	app := fiber.New(fiber.Config{
		AppName:               "TaazaMart",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	app.Use(api.SecurityHeaders)

	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("TaazaMart listening on http://0.0.0.0:%s (db: %s, env: %s)", config.Port, config.DBPath, config.Env)
	if err := app.Listen(":" + config.Port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
