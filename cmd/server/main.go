package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/DelademPingship/sankofa-super/internal/gateway"
	"github.com/DelademPingship/sankofa-super/internal/gateway/middleware"
	"github.com/DelademPingship/sankofa-super/internal/modules/auth"
	"github.com/DelademPingship/sankofa-super/internal/modules/notification"
	"github.com/DelademPingship/sankofa-super/internal/shared/infrastructure/config"
	"github.com/DelademPingship/sankofa-super/internal/shared/infrastructure/database"
	"github.com/DelademPingship/sankofa-super/pkg/migration"
)

func main() {
	cfg := config.Load()

	log.Println("Connecting to DB...")
	db, err := database.NewPostgresDB(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer db.Close()
	log.Println("Database connected")

	if cfg.Migration.AutoRun {
		logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
		if err := migration.AutoMigrate(cfg.Database.URL(), cfg.Migration.Path, logger); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
	}

	// Redis is optional; without it the unread counter just skips caching.
	cache, err := database.NewRedis(cfg.Redis)
	if err != nil {
		log.Printf("Redis unavailable, continuing without cache: %v", err)
		cache = nil
	}

	notificationModule := notification.NewModule(db, cache)
	authModule := auth.NewModule(db, cfg.JWT.Secret, cfg.JWT.Expiry, notificationModule.Service())

	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.Secret)

	mux := gateway.SetupRoutes(gateway.RouterConfig{
		AuthHandler:         authModule.HTTPHandler(),
		AuthMiddleware:      authMiddleware,
		NotificationHandler: notificationModule.HTTPHandler(),
	})

	handler := middleware.PrometheusMiddleware(mux)
	handler = middleware.CORSMiddleware(handler, cfg.Server.AllowedOrigins)

	server := gateway.NewServer(cfg.Server.Port, handler)
	if err := server.Start(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
