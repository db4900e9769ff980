package main

import (
	"log"

	"github.com/sefazor/ourwedding-backend/internal/config"
	"go.uber.org/zap"
)

func main() {
	// Load .env
	dotenvErr := config.LoadDotEnv()

	// Config'i yükle
	cfg := config.LoadConfig()

	logger, err := config.NewLogger(cfg)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	if dotenvErr != nil {
		logger.Warn("no .env file loaded", zap.Error(dotenvErr))
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	app, err := InitializeApp(cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize app", zap.Error(err))
	}

	logger.Info("starting server",
		zap.String("port", cfg.Port),
		zap.String("record_store", cfg.RecordStore),
		zap.String("photo_store", cfg.PhotoStore),
	)
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
