package http

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/gestor-sucursal/pkg/logger"
)

// ServerConfig parámetros de la app Fiber.
type ServerConfig struct {
	AppName     string
	CORSOrigins string
}

// pinger verificación de salud del store.
type pinger interface {
	Ping(ctx context.Context) error
}

// NewServer arma la app Fiber con middlewares comunes, /health, /metrics y las rutas de la API.
func NewServer(cfg ServerConfig, deps RouterDeps, store pinger, log *logger.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		BodyLimit:    8 << 20,
		ErrorHandler: ErrorHandler(log),
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	if origins := strings.TrimSpace(cfg.CORSOrigins); origins != "" {
		app.Use(cors.New(cors.Config{
			AllowOrigins: origins,
			AllowHeaders: "Origin, Content-Type, Accept, Authorization, " + TenantHeader,
		}))
	}
	app.Use(RequestLogger(log))

	app.Get("/health", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := store.Ping(ctx); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "service": cfg.AppName})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.AppName})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	Router(app, deps)
	return app
}
