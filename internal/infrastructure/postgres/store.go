package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/gestor-sucursal/internal/domain/repository"
	"github.com/jhoicas/gestor-sucursal/internal/infrastructure/demo"
)

var (
	_ repository.Store = (*Store)(nil)
	_ demo.Target      = (*Store)(nil)
)

// Store implementación del puerto repository.Store sobre PostgreSQL.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore construye el adaptador sobre un pool ya abierto.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Ping verifica la conexión.
func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// snapshotTx lectura consistente de varias tablas.
var snapshotTx = pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}

func (s *Store) write(ctx context.Context, fn func(q querier) error) error {
	return inTx(ctx, s.pool, pgx.TxOptions{}, fn)
}
