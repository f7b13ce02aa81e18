package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"

	"github.com/jhoicas/gestor-sucursal/internal/application/auth"
	"github.com/jhoicas/gestor-sucursal/internal/application/ports"
	"github.com/jhoicas/gestor-sucursal/internal/application/usecase"
	"github.com/jhoicas/gestor-sucursal/internal/domain/repository"
	"github.com/jhoicas/gestor-sucursal/internal/infrastructure/events"
	"github.com/jhoicas/gestor-sucursal/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/gestor-sucursal/internal/infrastructure/pdf"
	"github.com/jhoicas/gestor-sucursal/internal/infrastructure/postgres"
	"github.com/jhoicas/gestor-sucursal/internal/infrastructure/spreadsheet"
	httpRouter "github.com/jhoicas/gestor-sucursal/internal/interfaces/http"
	"github.com/jhoicas/gestor-sucursal/pkg/clock"
	"github.com/jhoicas/gestor-sucursal/pkg/config"
	"github.com/jhoicas/gestor-sucursal/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.LogLvl,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	clk := newClock(cfg, log)
	hasher := auth.NewPasswordHasher(cfg.Auth.BcryptCost)

	// Persistencia: un solo contrato, dos adaptadores elegidos al arrancar.
	var store repository.Store
	switch cfg.Store.Driver {
	case config.StorePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if cfg.DB.Migrate {
			if err := postgres.Migrate(ctx, pool, log); err != nil {
				log.Fatal().Err(err).Msg("migraciones")
			}
		}
		store = postgres.NewStore(pool)
	default:
		mem, err := memory.NewSeeded(ctx, hasher.Hash, clk.Now())
		if err != nil {
			log.Fatal().Err(err).Msg("store en memoria")
		}
		store = mem
	}

	// Eventos de actividades: Kafka si hay brokers, si no se descartan.
	var publisher ports.EventPublisher = events.Noop{}
	if cfg.Kafka.Enabled() {
		publisher = events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.ActivityTopic)
		log.Info().Strs("brokers", cfg.Kafka.Brokers).Str("topic", cfg.Kafka.ActivityTopic).Msg("publicación de eventos activa")
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Error().Err(err).Msg("cerrar publicador de eventos")
		}
	}()

	roster := spreadsheet.NewRosterReader()
	authUC := auth.NewAuthUseCase(store, hasher, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, log)

	app := httpRouter.NewServer(httpRouter.ServerConfig{
		AppName:     cfg.App.Name,
		CORSOrigins: cfg.HTTP.CORSOrigins,
	}, httpRouter.RouterDeps{
		AuthUC:          authUC,
		ActivityUC:      usecase.NewActivityUseCase(store, clk, publisher, log),
		CollaboratorUC:  usecase.NewCollaboratorUseCase(store, hasher, cfg.Auth.DefaultCollaboratorPassword, roster, clk, log),
		ManagerUC:       usecase.NewManagerUseCase(store, hasher, clk, log),
		TenantConfigUC:  usecase.NewTenantConfigUseCase(store, log),
		DashboardUC:     usecase.NewDashboardUseCase(store, clk),
		ClockUC:         usecase.NewClockUseCase(store, clk, log),
		StatsUC:         usecase.NewStatsUseCase(store, clk, spreadsheet.NewStatsWriter()),
		ReportUC:        usecase.NewReportUseCase(store, clk, infrapdf.NewMarotoScheduleGenerator()),
		JWTSecret:       cfg.JWT.Secret,
		LoginRatePerMin: 20,
	}, store, log)

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat("./docs/swagger.json"); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: "./docs/swagger.json",
			Path:     "docs",
			Title:    "Gestor de Sucursal API",
		}))
	}

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// newClock reloj real en la zona de la sucursal, o simulado (viaje en el tiempo) si CLOCK_SIMULATED.
func newClock(cfg *config.Config, log *logger.Logger) clock.Clock {
	loc := cfg.App.Location()
	if !cfg.Clock.Simulated {
		return clock.NewReal(loc)
	}
	start := clock.StartOfDemoWeek(time.Now().In(loc))
	if cfg.Clock.Start != "" {
		t, err := time.Parse(time.RFC3339, cfg.Clock.Start)
		if err != nil {
			log.Warn().Err(err).Str("clock_start", cfg.Clock.Start).Msg("CLOCK_START inválido, se usa el lunes de la semana actual")
		} else {
			start = t.In(loc)
		}
	}
	log.Info().Time("start", start).Msg("reloj simulado")
	return clock.NewSimulated(start)
}
