package handler

import (
	"net/url"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/ourwedding-backend/internal/models"
)

// ObjectReader is satisfied by stores that keep file bytes in process.
type ObjectReader interface {
	Get(key string) ([]byte, bool)
}

// MediaHandler serves photos held by the in-memory store so their public
// URLs resolve during local development.
type MediaHandler struct {
	objects ObjectReader
}

func NewMediaHandler(objects ObjectReader) *MediaHandler {
	return &MediaHandler{objects: objects}
}

func (h *MediaHandler) GetObject(c *fiber.Ctx) error {
	key, err := url.PathUnescape(c.Params("*"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid photo path"))
	}
	data, ok := h.objects.Get(key)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Photo not found"))
	}
	c.Set(fiber.HeaderContentType, mimetype.Detect(data).String())
	return c.Send(data)
}
