package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestor-sucursal/internal/observability"
	"github.com/jhoicas/gestor-sucursal/pkg/logger"
)

// RequestLogger registra cada petición y alimenta las métricas HTTP.
func RequestLogger(log *logger.Logger) fiber.Handler {
	if log == nil {
		log = logger.Nop()
	}
	log = log.Component("http")
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		elapsed := time.Since(start)

		status := c.Response().StatusCode()
		if err != nil {
			status, _ = resolveError(err)
		}
		route := c.Route().Path
		observability.RecordHTTPRequest(c.Method(), route, status, elapsed)

		evt := log.Info()
		if status >= fiber.StatusInternalServerError {
			evt = log.Warn()
		}
		evt.Str("method", c.Method()).
			Str("path", c.Path()).
			Str("route", route).
			Int("status", status).
			Dur("latency", elapsed).
			Interface("request_id", c.Locals("requestid")).
			Str("user_id", GetUserID(c)).
			Msg("request")
		return err
	}
}
