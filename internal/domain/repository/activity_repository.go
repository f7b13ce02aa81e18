package repository

import (
	"context"

	"github.com/jhoicas/gestor-sucursal/internal/domain/entity"
)

// ActivityRepository puerto de persistencia para actividades agendadas.
type ActivityRepository interface {
	CreateActivity(ctx context.Context, a *entity.Activity) error
	GetActivity(ctx context.Context, id string) (*entity.Activity, error)
	UpdateActivity(ctx context.Context, a *entity.Activity) error
	DeleteActivity(ctx context.Context, id string) error
	// ListActivities actividades de los colaboradores indicados; nil = todas.
	ListActivities(ctx context.Context, collaboratorIDs []string) ([]*entity.Activity, error)
}
