package repository

import (
	"fmt"

	"github.com/sefazor/ourwedding-backend/internal/config"
	"github.com/sefazor/ourwedding-backend/pkg/database"
	"go.uber.org/zap"
)

// NewEventStore picks the record store named by RECORD_STORE.
func NewEventStore(cfg *config.Config, logger *zap.Logger) (EventStore, error) {
	switch cfg.RecordStore {
	case config.StorePostgres:
		db, err := database.NewDatabase(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		logger.Info("record store ready", zap.String("backend", config.StorePostgres))
		return NewGormEventStore(db), nil
	case config.StoreMemory, "":
		logger.Info("record store ready", zap.String("backend", config.StoreMemory))
		return NewMemoryEventStore(), nil
	default:
		return nil, fmt.Errorf("unknown record store %q", cfg.RecordStore)
	}
}
