package models

import (
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Event is a wedding's descriptive record. ID is assigned by the store.
type Event struct {
	ID             string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Partner1Name   string    `json:"partner1_name" gorm:"not null"`
	Partner2Name   string    `json:"partner2_name" gorm:"not null"`
	WeddingDate    time.Time `json:"wedding_date" gorm:"type:date;not null"`
	Venue          string    `json:"venue" gorm:"not null"`
	Time           string    `json:"time" gorm:"type:varchar(5);not null"`
	SpecialMessage string    `json:"special_message"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type EventRequest struct {
	Partner1Name   string `json:"partner1_name" validate:"required,max=100"`
	Partner2Name   string `json:"partner2_name" validate:"required,max=100"`
	WeddingDate    string `json:"wedding_date" validate:"required,datetime=2006-01-02"`
	Venue          string `json:"venue" validate:"required,max=200"`
	Time           string `json:"time" validate:"required,datetime=15:04"`
	SpecialMessage string `json:"special_message" validate:"max=1000"`
}

type EventResponse struct {
	ID             string    `json:"id"`
	Partner1Name   string    `json:"partner1_name"`
	Partner2Name   string    `json:"partner2_name"`
	WeddingDate    string    `json:"wedding_date"`
	Venue          string    `json:"venue"`
	Time           string    `json:"time"`
	SpecialMessage string    `json:"special_message,omitempty"`
	PayloadURL     string    `json:"payload_url"`
	CreatedAt      time.Time `json:"created_at"`
}

func NewEventResponse(e *Event, payloadURL string) EventResponse {
	return EventResponse{
		ID:             e.ID,
		Partner1Name:   e.Partner1Name,
		Partner2Name:   e.Partner2Name,
		WeddingDate:    e.WeddingDate.Format(DateLayout),
		Venue:          e.Venue,
		Time:           e.Time,
		SpecialMessage: e.SpecialMessage,
		PayloadURL:     payloadURL,
		CreatedAt:      e.CreatedAt,
	}
}

// DesignQuery selects a template and its styling for a preview render.
type DesignQuery struct {
	Template   string `query:"template"`
	Background string `query:"background" validate:"omitempty,oneof=white pink blue"`
	Border     string `query:"border" validate:"omitempty,oneof=none simple floral"`
	Text       string `query:"text" validate:"omitempty,oneof=default serif handwritten"`
	TopText    string `query:"top_text" validate:"max=80"`
	BottomText string `query:"bottom_text" validate:"max=80"`
}

// QRQuery overrides the standalone QR rendering. A negative Margin means
// the default; colours are parsed by the encoder.
type QRQuery struct {
	Width  int    `query:"width" validate:"omitempty,min=64,max=2048"`
	Margin int    `query:"margin" validate:"min=-1,max=16"`
	Dark   string `query:"dark"`
	Light  string `query:"light"`
}
