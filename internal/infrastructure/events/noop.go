package events

import (
	"context"

	"github.com/jhoicas/gestor-sucursal/internal/application/ports"
)

var _ ports.EventPublisher = Noop{}

// Noop descarta los eventos; se usa cuando no hay brokers configurados.
type Noop struct{}

func (Noop) Publish(context.Context, ports.ActivityEvent) error { return nil }
func (Noop) Close() error                                        { return nil }
