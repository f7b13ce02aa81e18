package repository

import (
	"context"

	"github.com/jhoicas/gestor-sucursal/internal/domain/entity"
)

// Store contrato único del adaptador de persistencia/autenticación. Hay dos implementaciones
// intercambiables (memoria y PostgreSQL) que se eligen al arrancar el proceso.
type Store interface {
	PrincipalRepository
	ActivityRepository
	TenantConfigRepository
	SessionRepository

	// FetchTenantData carga de forma consistente las colecciones de los tenants indicados:
	// gerentes, colaboradores, sus actividades y la configuración. nil = todos los tenants.
	FetchTenantData(ctx context.Context, managerIDs []string) (*entity.TenantSnapshot, error)

	Ping(ctx context.Context) error
}
