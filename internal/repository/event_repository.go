package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sefazor/ourwedding-backend/internal/models"
	"gorm.io/gorm"
)

var ErrEventNotFound = errors.New("event not found")

// EventStore persists event records. Create assigns the ID; GetByID returns
// ErrEventNotFound for unknown ids.
type EventStore interface {
	Create(ctx context.Context, event *models.Event) error
	GetByID(ctx context.Context, id string) (*models.Event, error)
}

type GormEventStore struct {
	db *gorm.DB
}

func NewGormEventStore(db *gorm.DB) *GormEventStore {
	return &GormEventStore{db: db}
}

func (r *GormEventStore) Create(ctx context.Context, event *models.Event) error {
	event.ID = uuid.NewString()
	if err := r.db.WithContext(ctx).Create(event).Error; err != nil {
		event.ID = ""
		return err
	}
	return nil
}

func (r *GormEventStore) GetByID(ctx context.Context, id string) (*models.Event, error) {
	var event models.Event
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&event).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEventNotFound
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}
