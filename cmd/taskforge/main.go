package main

import (
	"github.com/taskforge-dev/taskforge/db"
	"github.com/taskforge-dev/taskforge/internal/auth"
	"github.com/taskforge-dev/taskforge/internal/config"
	"github.com/taskforge-dev/taskforge/internal/logger"
	"github.com/taskforge-dev/taskforge/internal/router"
	"github.com/taskforge-dev/taskforge/internal/store"
)

func main() {
	cfg := config.Load()

	logger.Init(cfg.Env)

	if err := auth.InitJWTSecret(cfg.JWTSecret); err != nil {
		logger.Fatalf("Failed to initialize JWT secret: %v", err)
	}

	conn, err := db.ConnectDatabase(cfg.DatabaseURL)

	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.MigrateDatabase(conn); err != nil {
		logger.Fatalf("Failed to migrate database: %v", err)
	}

	r := router.NewRouter(store.New(conn), cfg.AllowedOrigins)

	logger.Infof("Listening on port %s", cfg.Port)

	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatalf("Failed to start server: %v", err)
	}
}
