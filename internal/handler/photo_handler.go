package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/ourwedding-backend/internal/models"
	"github.com/sefazor/ourwedding-backend/internal/service"
)

// PhotoFormField is the multipart field guests upload into.
const PhotoFormField = "photo"

type PhotoHandler struct {
	photoService *service.PhotoService
	eventService *service.EventService
}

func NewPhotoHandler(photoService *service.PhotoService, eventService *service.EventService) *PhotoHandler {
	return &PhotoHandler{
		photoService: photoService,
		eventService: eventService,
	}
}

func (h *PhotoHandler) UploadPhoto(c *fiber.Ctx) error {
	eventID := c.Params("id")

	header, err := c.FormFile(PhotoFormField)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("No photo uploaded"))
	}
	src, err := header.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Uploaded photo is unreadable"))
	}
	defer src.Close()

	file := &models.PhotoFile{
		FileName:    header.Filename,
		ContentType: header.Header.Get(fiber.HeaderContentType),
		Size:        header.Size,
		Content:     src,
	}

	// Dosya tipi ve boyutu, herhangi bir ağ çağrısından önce kontrol edilir
	if err := h.photoService.Validate(file); err != nil {
		return respondError(c, err)
	}

	if _, err := h.eventService.GetEvent(c.UserContext(), eventID); err != nil {
		return respondError(c, err)
	}

	asset, err := h.photoService.Upload(c.UserContext(), eventID, file)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(asset, "Photo uploaded successfully"))
}

func (h *PhotoHandler) ListPhotos(c *fiber.Ctx) error {
	eventID := c.Params("id")

	if _, err := h.eventService.GetEvent(c.UserContext(), eventID); err != nil {
		return respondError(c, err)
	}

	urls, err := h.photoService.ListPhotos(c.UserContext(), eventID)
	if err != nil {
		return respondError(c, err)
	}

	res := models.PhotoListResponse{EventID: eventID, Photos: urls}
	return c.JSON(models.SuccessResponse(res, "Photos retrieved successfully"))
}
