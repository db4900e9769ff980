//go:build wireinject
// +build wireinject

package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/wire"
	"github.com/sefazor/ourwedding-backend/internal/config"
	"github.com/sefazor/ourwedding-backend/internal/handler"
	"github.com/sefazor/ourwedding-backend/internal/repository"
	"github.com/sefazor/ourwedding-backend/internal/service"
	"github.com/sefazor/ourwedding-backend/pkg/canvas"
	"github.com/sefazor/ourwedding-backend/pkg/qrcode"
	"github.com/sefazor/ourwedding-backend/pkg/storage"
	"github.com/sefazor/ourwedding-backend/pkg/utils"
	"go.uber.org/zap"
)

func InitializeApp(cfg *config.Config, logger *zap.Logger) (*fiber.App, error) {
	wire.Build(
		// Stores
		repository.NewEventStore,
		storage.NewObjectStorage,

		// Rendering
		qrcode.NewEncoder,
		canvas.NewEmbeddedLoader,
		wire.Bind(new(canvas.AssetLoader), new(*canvas.FSLoader)),
		canvas.NewCompositor,

		// Validator
		utils.NewValidator,
		newClock,

		// Services
		service.NewEventService,
		service.NewPhotoService,
		service.NewDesignService,

		// Handlers
		handler.NewEventHandler,
		handler.NewPhotoHandler,
		handler.NewDesignHandler,

		// App
		NewFiberApp,
	)
	return nil, nil
}
