package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sefazor/ourwedding-backend/internal/apperror"
	"github.com/sefazor/ourwedding-backend/internal/config"
	"github.com/sefazor/ourwedding-backend/internal/models"
	"github.com/sefazor/ourwedding-backend/internal/repository"
	"github.com/sefazor/ourwedding-backend/pkg/utils"
	"go.uber.org/zap"
)

type EventService struct {
	store     repository.EventStore
	validator *utils.Validator
	policy    callPolicy
	origin    string
	logger    *zap.Logger
}

func NewEventService(store repository.EventStore, validator *utils.Validator, cfg *config.Config, logger *zap.Logger) *EventService {
	return &EventService{
		store:     store,
		validator: validator,
		policy:    callPolicy{timeout: cfg.RequestTimeout, backoff: cfg.RetryBackoff, logger: logger},
		origin:    strings.TrimRight(cfg.PublicOrigin, "/"),
		logger:    logger,
	}
}

// PayloadURL is the public page a scanned QR code opens.
func (s *EventService) PayloadURL(eventID string) string {
	return s.origin + "/event/" + eventID
}

func (s *EventService) CreateEvent(ctx context.Context, req models.EventRequest) (*models.Event, error) {
	const op = "event.create"

	req.Partner1Name = strings.TrimSpace(req.Partner1Name)
	req.Partner2Name = strings.TrimSpace(req.Partner2Name)
	req.Venue = strings.TrimSpace(req.Venue)

	if err := s.validator.Struct(req); err != nil {
		return nil, &apperror.Error{Kind: apperror.KindValidation, Op: op, Reason: "invalid event fields", Err: err}
	}
	date, err := time.Parse(models.DateLayout, req.WeddingDate)
	if err != nil {
		return nil, apperror.Validation(op, "wedding_date must be YYYY-MM-DD")
	}

	event := &models.Event{
		Partner1Name:   req.Partner1Name,
		Partner2Name:   req.Partner2Name,
		WeddingDate:    date,
		Venue:          req.Venue,
		Time:           req.Time,
		SpecialMessage: req.SpecialMessage,
	}

	err = s.policy.do(ctx, op, nil, func(ctx context.Context) error {
		return s.store.Create(ctx, event)
	})
	if err != nil {
		s.logger.Error("failed to create event", zap.Error(err))
		return nil, apperror.Store(op, err)
	}

	s.logger.Info("event created", zap.String("event_id", event.ID))
	return event, nil
}

// GetEvent returns the event or a NotFound error for an unknown id.
func (s *EventService) GetEvent(ctx context.Context, eventID string) (*models.Event, error) {
	const op = "event.fetch"

	if strings.TrimSpace(eventID) == "" {
		return nil, apperror.Validation(op, "event id is required")
	}

	var event *models.Event
	notFound := func(err error) bool { return errors.Is(err, repository.ErrEventNotFound) }
	err := s.policy.do(ctx, op, notFound, func(ctx context.Context) error {
		var err error
		event, err = s.store.GetByID(ctx, eventID)
		return err
	})
	if errors.Is(err, repository.ErrEventNotFound) {
		return nil, apperror.NotFound(op, "event not found")
	}
	if err != nil {
		s.logger.Error("failed to fetch event", zap.String("event_id", eventID), zap.Error(err))
		return nil, apperror.Store(op, err)
	}
	return event, nil
}
