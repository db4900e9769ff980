package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/ourwedding-backend/internal/models"
	"github.com/sefazor/ourwedding-backend/internal/service"
)

type EventHandler struct {
	eventService *service.EventService
}

func NewEventHandler(eventService *service.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

func (h *EventHandler) CreateEvent(c *fiber.Ctx) error {
	var req models.EventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	event, err := h.eventService.CreateEvent(c.UserContext(), req)
	if err != nil {
		return respondError(c, err)
	}

	// Event oluşturuldu, QR payload URL'i ile birlikte dön
	res := models.NewEventResponse(event, h.eventService.PayloadURL(event.ID))
	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(res, "Event created successfully"))
}

func (h *EventHandler) GetEvent(c *fiber.Ctx) error {
	event, err := h.eventService.GetEvent(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}

	res := models.NewEventResponse(event, h.eventService.PayloadURL(event.ID))
	return c.JSON(models.SuccessResponse(res, "Event retrieved successfully"))
}
