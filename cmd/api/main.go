package main

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/abdul8704/Cookify-server/config"
	"github.com/abdul8704/Cookify-server/internal/database"
	"github.com/abdul8704/Cookify-server/internal/logger"
	"github.com/abdul8704/Cookify-server/internal/router"
	"github.com/abdul8704/Cookify-server/internal/server"
)

func main() {
	logger.Init()
	defer logger.Close()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	db, err := database.New(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := database.RunMigrations(db); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		// Rate limiting and password reset degrade without Redis, but the
		// core API still works.
		logger.Warn("redis unavailable", zap.Error(err))
		redisClient = nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	s3cfg, err := config.NewS3Config(ctx, cfg)
	cancel()
	if err != nil {
		logger.Warn("s3 unavailable, image uploads disabled", zap.Error(err))
		s3cfg = nil
	}

	engine := router.New(router.Deps{
		DB:     db,
		Redis:  redisClient,
		Config: cfg,
		S3:     s3cfg,
	})

	srv := server.New(engine, cfg.ServerHost, cfg.ServerPort)
	if err := srv.Run(); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
