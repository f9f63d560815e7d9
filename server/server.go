// Package server exposes the FIFO accounting over HTTP.
package server

import (
	"errors"
	"time"

	"github.com/etnz/fifo"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ComputeRequest is the body of a computation request. Entries use the flat
// JSON form of fifo.Entry and must be sorted chronologically.
type ComputeRequest struct {
	Entries []fifo.Entry `json:"entries"`
}

// ComputeResponse is the result of a computation.
type ComputeResponse struct {
	ID        string       `json:"id"`
	Summary   fifo.Summary `json:"summary"`
	Inventory []fifo.Entry `json:"inventory"`
	Trace     []fifo.Match `json:"trace"`
}

// ErrorResponse is returned with any 4xx or 5xx status.
type ErrorResponse struct {
	Error string `json:"error"`
}

// New creates the HTTP application.
func New(log zerolog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}
			log.Error().
				Str("path", c.Path()).
				Str("method", c.Method()).
				Int("status", code).
				Err(err).
				Msg("Request error")
			return c.Status(code).JSON(ErrorResponse{Error: err.Error()})
		},
	})

	app.Use(recover.New())
	app.Use(requestLogger(log))

	h := &handler{log: log}
	api := app.Group("/api/v1")
	api.Post("/fifo", h.compute)
	app.Get("/health", h.health)
	return app
}

type handler struct {
	log zerolog.Logger
}

func (h *handler) compute(c *fiber.Ctx) error {
	var req ComputeRequest
	if err := c.BodyParser(&req); err != nil {
		h.log.Warn().
			Err(err).
			Str("ip", c.IP()).
			Msg("Invalid request")
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid request: " + err.Error(),
		})
	}

	id := uuid.New().String()
	start := time.Now()
	f := fifo.New(req.Entries)
	h.log.Info().
		Str("id", id).
		Int("entries", len(req.Entries)).
		Str("stock", f.Stock().String()).
		Dur("runtime", time.Since(start)).
		Msg("Computed")

	return c.JSON(ComputeResponse{
		ID:        id,
		Summary:   f.Summary(),
		Inventory: f.Inventory(),
		Trace:     f.Trace(),
	})
}

func (h *handler) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// requestLogger logs every request at info level.
func requestLogger(log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		log.Info().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Int64("latency_ms", time.Since(start).Milliseconds()).
			Msg("HTTP request")
		return err
	}
}
