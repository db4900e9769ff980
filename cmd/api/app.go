package main

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sefazor/ourwedding-backend/internal/config"
	"github.com/sefazor/ourwedding-backend/internal/handler"
	"github.com/sefazor/ourwedding-backend/internal/middleware"
	"github.com/sefazor/ourwedding-backend/internal/models"
	"github.com/sefazor/ourwedding-backend/pkg/storage"
	"github.com/sefazor/ourwedding-backend/pkg/utils"
	"go.uber.org/zap"
)

// Uploads are capped at 5 MiB by validation; the body limit leaves room for
// multipart framing so oversized photos get the validation message.
const bodyLimit = 8 * 1024 * 1024

func newClock() *utils.MonotonicClock {
	return utils.NewMonotonicClock(time.Now)
}

func NewFiberApp(
	cfg *config.Config,
	logger *zap.Logger,
	eventHandler *handler.EventHandler,
	photoHandler *handler.PhotoHandler,
	designHandler *handler.DesignHandler,
	photoStore storage.ObjectStorage,
) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "ourwedding-backend",
		BodyLimit:    bodyLimit,
		ErrorHandler: handler.ErrorHandler(logger),
	})

	// Global Middleware'ler önce tanımlanmalı; logger en dışta, panikler de loglanır
	app.Use(middleware.RequestLogger(logger))
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: normalizeOrigins(cfg.AllowedOrigins),
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST",
	}))
	app.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimitPerMinute,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(models.ErrorResponse("Too many requests, please slow down"))
		},
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(models.SuccessResponse(nil, "ok"))
	})

	handler.RegisterRoutes(app, eventHandler, photoHandler, designHandler)

	// Bellek deposu kullanılıyorsa fotoğrafları API üzerinden sun
	if mem, ok := photoStore.(*storage.MemoryStorage); ok {
		handler.RegisterMediaRoutes(app, handler.NewMediaHandler(mem))
	}

	return app
}

func normalizeOrigins(origins string) string {
	parts := strings.Split(origins, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return "*"
	}
	return strings.Join(out, ",")
}
