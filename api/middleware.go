package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"cpu-scheduler/internal/logging"
)

const (
	requestIDHeader = "X-Request-Id"
	requestIDKey    = "request_id"
)

func requestIDMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		id := ctx.Get(requestIDHeader)
		if id == "" {
			id = "req_" + uuid.New().String()[:8]
		}
		ctx.Locals(requestIDKey, id)
		ctx.Set(requestIDHeader, id)
		return ctx.Next()
	}
}

func requestID(ctx *fiber.Ctx) string {
	id, _ := ctx.Locals(requestIDKey).(string)
	return id
}

func accessLogMiddleware(log zerolog.Logger, handleErr fiber.ErrorHandler) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()
		err := ctx.Next()
		if err != nil {
			// let the error handler pick the status before we log it
			if herr := handleErr(ctx, err); herr != nil {
				_ = ctx.SendStatus(fiber.StatusInternalServerError)
			}
		}
		log.Info().
			Str("request_id", requestID(ctx)).
			Str("method", ctx.Method()).
			Str("path", ctx.Path()).
			Int("status", ctx.Response().StatusCode()).
			Dur("latency", logging.Since(start)).
			Msg("http request")
		return nil
	}
}
