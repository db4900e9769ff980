package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/ourwedding-backend/internal/models"
	"github.com/sefazor/ourwedding-backend/internal/service"
	"github.com/sefazor/ourwedding-backend/pkg/canvas"
)

type DesignHandler struct {
	designService *service.DesignService
	eventService  *service.EventService
}

func NewDesignHandler(designService *service.DesignService, eventService *service.EventService) *DesignHandler {
	return &DesignHandler{
		designService: designService,
		eventService:  eventService,
	}
}

func (h *DesignHandler) GetTemplates(c *fiber.Ctx) error {
	templates := h.designService.Templates()
	res := make([]models.TemplateResponse, 0, len(templates))
	for _, t := range templates {
		res = append(res, models.NewTemplateResponse(t))
	}
	return c.JSON(models.SuccessResponse(res, "Templates retrieved successfully"))
}

// GetQRCode downloads the event's QR code on its own.
func (h *DesignHandler) GetQRCode(c *fiber.Ctx) error {
	q := models.QRQuery{Margin: -1}
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid query parameters"))
	}

	event, err := h.eventService.GetEvent(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}

	png, err := h.designService.QRCode(h.eventService.PayloadURL(event.ID), q)
	if err != nil {
		return respondError(c, err)
	}

	c.Attachment(canvas.DownloadFilename(event.ID))
	return c.Send(png)
}

// GetDesign downloads the event's QR code composited onto a template.
func (h *DesignHandler) GetDesign(c *fiber.Ctx) error {
	var q models.DesignQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid query parameters"))
	}

	event, err := h.eventService.GetEvent(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}

	png, err := h.designService.Design(c.UserContext(), event, h.eventService.PayloadURL(event.ID), q)
	if err != nil {
		return respondError(c, err)
	}

	c.Attachment(canvas.DownloadFilename(event.ID))
	return c.Send(png)
}
