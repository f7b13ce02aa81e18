// Command seed aplica las migraciones y carga los datos de demostración en PostgreSQL.
//
// Uso:
//
//	DATABASE_URL=postgres://... go run ./cmd/seed
//	go run ./cmd/seed -force   # recarga aunque el administrador ya exista
//
// Es idempotente por defecto: si el administrador de la demo ya existe no inserta nada.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/gestor-sucursal/internal/application/auth"
	"github.com/jhoicas/gestor-sucursal/internal/infrastructure/demo"
	"github.com/jhoicas/gestor-sucursal/internal/infrastructure/postgres"
	"github.com/jhoicas/gestor-sucursal/pkg/clock"
	"github.com/jhoicas/gestor-sucursal/pkg/config"
	"github.com/jhoicas/gestor-sucursal/pkg/logger"
)

func main() {
	force := flag.Bool("force", false, "cargar aunque ya existan datos de demo")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.LogLvl}).Component("seed")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "db: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool, log); err != nil {
		fmt.Fprintf(os.Stderr, "migraciones: %v\n", err)
		os.Exit(1)
	}

	store := postgres.NewStore(pool)
	if !*force {
		existing, err := store.GetPrincipal(ctx, demo.AdminID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "consultar administrador: %v\n", err)
			os.Exit(1)
		}
		if existing != nil {
			log.Info().Str("admin_id", demo.AdminID).Msg("datos de demo ya cargados, nada que hacer")
			return
		}
	}

	hasher := auth.NewPasswordHasher(cfg.Auth.BcryptCost)
	now := time.Now().In(cfg.App.Location())
	if cfg.Clock.Simulated {
		now = clock.StartOfDemoWeek(now)
	}
	if err := demo.Load(ctx, store, hasher.Hash, now); err != nil {
		fmt.Fprintf(os.Stderr, "cargar demo: %v\n", err)
		os.Exit(1)
	}
	log.Info().Str("tenant", demo.ManagerID).Msg("datos de demo cargados")
}
