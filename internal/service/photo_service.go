package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/sefazor/ourwedding-backend/internal/apperror"
	"github.com/sefazor/ourwedding-backend/internal/config"
	"github.com/sefazor/ourwedding-backend/internal/models"
	"github.com/sefazor/ourwedding-backend/pkg/storage"
	"github.com/sefazor/ourwedding-backend/pkg/utils"
	"go.uber.org/zap"
)

// galleryExtensions are the key suffixes a listing returns.
var galleryExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

type PhotoService struct {
	storage   storage.ObjectStorage
	validator *utils.Validator
	clock     *utils.MonotonicClock
	keyStyle  string
	policy    callPolicy
	logger    *zap.Logger
}

func NewPhotoService(store storage.ObjectStorage, validator *utils.Validator, clock *utils.MonotonicClock, cfg *config.Config, logger *zap.Logger) *PhotoService {
	return &PhotoService{
		storage:   store,
		validator: validator,
		clock:     clock,
		keyStyle:  cfg.PhotoKeyStyle,
		policy:    callPolicy{timeout: cfg.RequestTimeout, backoff: cfg.RetryBackoff, logger: logger},
		logger:    logger,
	}
}

// Validate checks declared type and size, then sniffs the content. It does
// no network I/O. On success the content is rewound to the start.
func (s *PhotoService) Validate(file *models.PhotoFile) error {
	const op = "photo.validate"

	if file == nil || file.Content == nil {
		return apperror.Validation(op, "photo file is required")
	}
	file.ContentType = strings.ToLower(strings.TrimSpace(file.ContentType))
	if err := s.validator.Struct(file); err != nil {
		return &apperror.Error{Kind: apperror.KindValidation, Op: op, Reason: validationReason(err), Err: err}
	}

	if _, err := file.Content.Seek(0, io.SeekStart); err != nil {
		return apperror.Validation(op, "photo file is unreadable")
	}
	detected, err := mimetype.DetectReader(file.Content)
	if err != nil {
		return apperror.Validation(op, "photo file is unreadable")
	}
	if _, err := file.Content.Seek(0, io.SeekStart); err != nil {
		return apperror.Validation(op, "photo file is unreadable")
	}

	sniffed := detected.String()
	if _, ok := utils.SupportedImageTypes[sniffed]; !ok {
		return apperror.Validation(op, "only JPEG, PNG and GIF images are allowed")
	}
	if sniffed != file.ContentType {
		return apperror.Validation(op, fmt.Sprintf("file content is %s but was sent as %s", sniffed, file.ContentType))
	}
	return nil
}

func validationReason(err error) string {
	fields := utils.FieldErrors(err)
	switch {
	case fields["size"] == "gt=0":
		return "photo file is empty"
	case fields["size"] != "":
		return "photo must be 5 MB or smaller"
	case fields["content_type"] != "":
		return "only JPEG, PNG and GIF images are allowed"
	default:
		return "invalid photo file"
	}
}

// Upload validates the file, stores it under the event's namespace and
// returns the new asset with its public URL. It always runs Validate itself;
// callers may also call Validate first to reject a file before their own I/O.
func (s *PhotoService) Upload(ctx context.Context, eventID string, file *models.PhotoFile) (*models.PhotoAsset, error) {
	const op = "photo.upload"

	if err := s.Validate(file); err != nil {
		return nil, err
	}
	if strings.TrimSpace(eventID) == "" {
		return nil, apperror.Validation(op, "event id is required")
	}

	key := s.objectKey(eventID, file)
	// sent is set once a Put of key failed after possibly reaching the store.
	// Keys come from this process's monotonic clock, so a later collision on
	// the same key means that earlier Put committed.
	sent := false
	err := s.policy.do(ctx, op, nil, func(ctx context.Context) error {
		if _, err := file.Content.Seek(0, io.SeekStart); err != nil {
			return err
		}
		err := s.storage.Put(ctx, key, file.Content, file.Size, file.ContentType)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, storage.ErrObjectExists):
			if sent {
				s.logger.Info("earlier attempt already stored photo", zap.String("key", key))
				return nil
			}
			// Another writer took the name; the next attempt uses a fresh one.
			key = s.objectKey(eventID, file)
		default:
			sent = true
		}
		return err
	})
	if err != nil {
		s.logger.Error("photo upload failed",
			zap.String("event_id", eventID),
			zap.String("key", key),
			zap.Error(err),
		)
		return nil, apperror.Upload(op, err)
	}

	s.logger.Info("photo uploaded", zap.String("event_id", eventID), zap.String("key", key))
	return &models.PhotoAsset{
		EventID: eventID,
		Key:     key,
		URL:     s.storage.PublicURL(key),
	}, nil
}

// ListPhotos returns the public URLs of the event's images, oldest first.
func (s *PhotoService) ListPhotos(ctx context.Context, eventID string) ([]string, error) {
	const op = "photo.list"

	if strings.TrimSpace(eventID) == "" {
		return nil, apperror.Validation(op, "event id is required")
	}

	var objects []storage.Object
	err := s.policy.do(ctx, op, nil, func(ctx context.Context) error {
		var err error
		objects, err = s.storage.List(ctx, eventID+"/")
		return err
	})
	if err != nil {
		s.logger.Error("photo listing failed", zap.String("event_id", eventID), zap.Error(err))
		return nil, apperror.Upload(op, err)
	}

	urls := make([]string, 0, len(objects))
	for _, obj := range objects {
		if !galleryExtensions[strings.ToLower(path.Ext(obj.Key))] {
			continue
		}
		urls = append(urls, s.storage.PublicURL(obj.Key))
	}
	return urls, nil
}

func (s *PhotoService) objectKey(eventID string, file *models.PhotoFile) string {
	ts := s.clock.NextMillis()
	ext := utils.SupportedImageTypes[file.ContentType]

	if s.keyStyle == config.KeyStyleOriginal {
		name := sanitizeFileName(file.FileName)
		if !galleryExtensions[strings.ToLower(path.Ext(name))] {
			name += "." + ext
		}
		return fmt.Sprintf("%s/%d_%s", eventID, ts, name)
	}
	return fmt.Sprintf("%s/%d.%s", eventID, ts, ext)
}

// sanitizeFileName keeps the base name and drops path separators.
func sanitizeFileName(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = strings.TrimSpace(path.Base(name))
	if name == "." || name == "/" || name == "" {
		return "photo"
	}
	return name
}
