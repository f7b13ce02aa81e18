package memory

import (
	"context"
	"time"

	"github.com/jhoicas/gestor-sucursal/internal/infrastructure/demo"
)

// NewSeeded store en memoria precargado con los datos de demostración.
func NewSeeded(ctx context.Context, hash demo.HashFunc, now time.Time) (*Store, error) {
	s := NewStore()
	if err := demo.Load(ctx, s, hash, now); err != nil {
		return nil, err
	}
	return s, nil
}
