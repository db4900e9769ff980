package models

import "io"

// PhotoFile is an upload as received from the guest, before any I/O.
type PhotoFile struct {
	FileName    string        `validate:"required"`
	ContentType string        `validate:"required,supported_image"`
	Size        int64         `validate:"gt=0,lte=5242880"`
	Content     io.ReadSeeker `validate:"-"`
}

// PhotoAsset is a stored photo of one event.
type PhotoAsset struct {
	EventID string `json:"event_id"`
	Key     string `json:"key"`
	URL     string `json:"url"`
}

type PhotoListResponse struct {
	EventID string   `json:"event_id"`
	Photos  []string `json:"photos"`
}
