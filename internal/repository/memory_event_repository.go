package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sefazor/ourwedding-backend/internal/models"
)

// MemoryEventStore keeps events in process. Used for local runs and tests.
type MemoryEventStore struct {
	mu     sync.RWMutex
	events map[string]models.Event
	now    func() time.Time
}

func NewMemoryEventStore() *MemoryEventStore {
	return &MemoryEventStore{
		events: make(map[string]models.Event),
		now:    time.Now,
	}
}

func (r *MemoryEventStore) Create(ctx context.Context, event *models.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	event.ID = uuid.NewString()
	now := r.now()
	event.CreatedAt = now
	event.UpdatedAt = now
	r.events[event.ID] = *event
	return nil
}

func (r *MemoryEventStore) GetByID(ctx context.Context, id string) (*models.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	event, ok := r.events[id]
	if !ok {
		return nil, ErrEventNotFound
	}
	return &event, nil
}
