package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/schedulers"
	"cpu-scheduler/internal/session"
)

// NewApp builds the HTTP application with all routes registered.
func NewApp(cfg *config.SchedulerConfig, log zerolog.Logger) *fiber.App {
	handleErr := errorHandler(log)
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          handleErr,
	})
	app.Use(requestIDMiddleware(), accessLogMiddleware(log, handleErr))

	handler := NewSchedulerHandlerImpl(cfg, session.NewMemoryStore(cfg.HistorySize), log)
	RegisterRoutes(app, handler)
	return app
}

func RegisterRoutes(app *fiber.App, handler SchedulerHandler) {
	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/priority", handler.Priority)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/all", handler.AllAlgorithms)
		v1.Get("/algorithms", handler.Algorithms)
		v1.Get("/runs", handler.ListRuns)
		v1.Get("/runs/:id", handler.GetRun)
		v1.Delete("/runs", handler.ResetRuns)
	}
}

func errorHandler(log zerolog.Logger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		var fe *fiber.Error
		switch {
		case errors.As(err, &fe):
			code = fe.Code
		case errors.Is(err, schedulers.ErrUnknownAlgorithm):
			code = fiber.StatusNotFound
		}
		if code >= fiber.StatusInternalServerError {
			log.Error().Err(err).Str("request_id", requestID(ctx)).Msg("request failed")
		}
		return ctx.Status(code).JSON(fiber.Map{"error": err.Error()})
	}
}
