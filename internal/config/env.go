package config

import (
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoadDotEnv reads .env outside production. A missing file is not an error
// there because deployments rely on the process environment.
func LoadDotEnv(files ...string) error {
	if os.Getenv("GO_ENV") == "production" {
		return nil
	}
	return godotenv.Load(files...)
}

// NewLogger returns a JSON logger in production and a console logger otherwise.
func NewLogger(cfg *Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zapcore.InfoLevel
	}

	var zcfg zap.Config
	if cfg.IsProduction() {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)

	return zcfg.Build()
}
