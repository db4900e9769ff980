package models

import "github.com/sefazor/ourwedding-backend/pkg/canvas"

type TemplateResponse struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Width       int           `json:"width"`
	Height      int           `json:"height"`
	QR          canvas.QRRect `json:"qr"`
	Captions    bool          `json:"captions"`
}

func NewTemplateResponse(t canvas.Template) TemplateResponse {
	return TemplateResponse{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Width:       t.Width,
		Height:      t.Height,
		QR:          t.QR,
		Captions:    t.Captions,
	}
}
