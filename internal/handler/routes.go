package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/ourwedding-backend/pkg/storage"
)

func RegisterRoutes(app fiber.Router, events *EventHandler, photos *PhotoHandler, designs *DesignHandler) {
	api := app.Group("/api")

	api.Get("/templates", designs.GetTemplates)

	api.Post("/events", events.CreateEvent)
	api.Get("/events/:id", events.GetEvent)
	api.Get("/events/:id/qr", designs.GetQRCode)
	api.Get("/events/:id/design", designs.GetDesign)

	api.Post("/events/:id/photos", photos.UploadPhoto)
	api.Get("/events/:id/photos", photos.ListPhotos)
}

// RegisterMediaRoutes serves in-memory photos under storage.MediaPrefix.
func RegisterMediaRoutes(app fiber.Router, media *MediaHandler) {
	app.Get(storage.MediaPrefix+"/*", media.GetObject)
}
