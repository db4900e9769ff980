package service

import (
	"context"
	"errors"

	"github.com/sefazor/ourwedding-backend/internal/apperror"
	"github.com/sefazor/ourwedding-backend/internal/models"
	"github.com/sefazor/ourwedding-backend/pkg/canvas"
	"github.com/sefazor/ourwedding-backend/pkg/qrcode"
	"github.com/sefazor/ourwedding-backend/pkg/utils"
	"go.uber.org/zap"
)

// DesignService renders the standalone QR code and the composited
// invitation card of an event.
type DesignService struct {
	encoder    *qrcode.Encoder
	compositor *canvas.Compositor
	validator  *utils.Validator
	logger     *zap.Logger
}

func NewDesignService(encoder *qrcode.Encoder, compositor *canvas.Compositor, validator *utils.Validator, logger *zap.Logger) *DesignService {
	return &DesignService{
		encoder:    encoder,
		compositor: compositor,
		validator:  validator,
		logger:     logger,
	}
}

func (s *DesignService) Templates() []canvas.Template {
	return canvas.Templates()
}

// QRCode renders payload as a PNG using the standalone preset with the
// query's overrides applied.
func (s *DesignService) QRCode(payload string, q models.QRQuery) ([]byte, error) {
	const op = "qr.encode"

	if err := s.validator.Struct(q); err != nil {
		return nil, &apperror.Error{Kind: apperror.KindValidation, Op: op, Reason: "invalid QR options", Err: err}
	}

	opts := qrcode.StandaloneOptions()
	if q.Width > 0 {
		opts.Width = q.Width
	}
	if q.Margin >= 0 {
		opts.Margin = q.Margin
	}
	if q.Dark != "" {
		c, err := qrcode.ParseHexColor(q.Dark)
		if err != nil {
			return nil, apperror.Validation(op, "dark must be a hex colour")
		}
		opts.Dark = c
	}
	if q.Light != "" {
		c, err := qrcode.ParseHexColor(q.Light)
		if err != nil {
			return nil, apperror.Validation(op, "light must be a hex colour")
		}
		opts.Light = c
	}

	png, err := s.encoder.EncodePNG(payload, opts)
	if err != nil {
		return nil, apperror.Encoding(op, err)
	}
	return png, nil
}

// Design composites the event onto the chosen template. An unknown template
// id falls back to the default template.
func (s *DesignService) Design(ctx context.Context, event *models.Event, payload string, q models.DesignQuery) ([]byte, error) {
	const op = "design.render"

	if err := s.validator.Struct(q); err != nil {
		return nil, &apperror.Error{Kind: apperror.KindValidation, Op: op, Reason: "invalid design options", Err: err}
	}

	tpl := canvas.LookupOrDefault(q.Template)

	// Encode at the placement size so the compositor does not rescale modules.
	opts := qrcode.OverlayOptions()
	opts.Width = canvas.ComputeLayout(tpl).QR.Dx()
	qr, err := s.encoder.Encode(payload, opts)
	if err != nil {
		return nil, apperror.Encoding(op, err)
	}

	scene := canvas.Scene{
		Template: tpl,
		Customization: canvas.Customization{
			Background: q.Background,
			Border:     q.Border,
			Text:       q.Text,
			TopText:    q.TopText,
			BottomText: q.BottomText,
		},
		Event: canvas.EventDisplay{
			Partner1Name: event.Partner1Name,
			Partner2Name: event.Partner2Name,
			WeddingDate:  event.WeddingDate,
		},
		QR: qr,
	}

	img, err := s.compositor.Render(ctx, scene)
	if err != nil {
		var bgErr *canvas.BackgroundError
		if errors.As(err, &bgErr) {
			s.logger.Error("template background unavailable",
				zap.String("event_id", event.ID),
				zap.String("template", scene.Template.ID),
				zap.Error(err),
			)
		}
		return nil, apperror.Render(op, err)
	}

	png, err := canvas.EncodePNG(img)
	if err != nil {
		return nil, apperror.Render(op, err)
	}
	return png, nil
}
