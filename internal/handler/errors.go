package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/ourwedding-backend/internal/apperror"
	"github.com/sefazor/ourwedding-backend/internal/models"
	"github.com/sefazor/ourwedding-backend/pkg/utils"
	"go.uber.org/zap"
)

var statusByKind = map[apperror.Kind]int{
	apperror.KindValidation: fiber.StatusBadRequest,
	apperror.KindNotFound:   fiber.StatusNotFound,
	apperror.KindEncoding:   fiber.StatusUnprocessableEntity,
	apperror.KindStore:      fiber.StatusBadGateway,
	apperror.KindUpload:     fiber.StatusBadGateway,
	apperror.KindRender:     fiber.StatusInternalServerError,
}

// Messages for failures whose cause should not reach the client.
var messageByKind = map[apperror.Kind]string{
	apperror.KindStore:  "Event store is unavailable, please try again",
	apperror.KindUpload: "Photo storage is unavailable, please try again",
	apperror.KindRender: "Could not render the design, please try again",
}

// StatusFor maps an error to its HTTP status.
func StatusFor(err error) int {
	if status, ok := statusByKind[apperror.KindOf(err)]; ok {
		return status
	}
	return fiber.StatusInternalServerError
}

func respondError(c *fiber.Ctx, err error) error {
	kind := apperror.KindOf(err)
	status := StatusFor(err)

	switch {
	case kind == apperror.KindValidation:
		if fields := utils.FieldErrors(err); fields != nil {
			return c.Status(status).JSON(models.FieldErrorResponse(apperror.ReasonOf(err), fields))
		}
		return c.Status(status).JSON(models.ErrorResponse(apperror.ReasonOf(err)))
	case kind == apperror.KindNotFound || kind == apperror.KindEncoding:
		return c.Status(status).JSON(models.ErrorResponse(apperror.ReasonOf(err)))
	case messageByKind[kind] != "":
		return c.Status(status).JSON(models.ErrorResponse(messageByKind[kind]))
	default:
		return c.Status(status).JSON(models.ErrorResponse("Internal server error"))
	}
}

// ErrorHandler is the fiber fallback for errors returned by handlers and
// middleware, such as unknown routes and oversized bodies.
func ErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(models.ErrorResponse(fe.Message))
		}
		logger.Error("unhandled error",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return respondError(c, err)
	}
}
