package repository

import (
	"context"

	"github.com/jhoicas/gestor-sucursal/internal/domain/entity"
)

// PrincipalRepository puerto de persistencia para administradores, gerentes y colaboradores.
// Los métodos Get devuelven (nil, nil) cuando el registro no existe.
type PrincipalRepository interface {
	// FindByEmployeeNumber todas las cuentas con ese identificador de login, de cualquier rol.
	FindByEmployeeNumber(ctx context.Context, employeeNumber string) ([]*entity.Principal, error)
	GetPrincipal(ctx context.Context, id string) (*entity.Principal, error)
	// UpdateCredential guarda el nuevo hash y limpia IsFirstLogin en la misma escritura.
	UpdateCredential(ctx context.Context, id, passwordHash string) error

	ListManagers(ctx context.Context) ([]*entity.Principal, error)
	// CreateManager crea el gerente junto con la configuración inicial de su tenant.
	CreateManager(ctx context.Context, manager *entity.Principal, seed entity.TenantSeed) error
	UpdatePrincipal(ctx context.Context, p *entity.Principal) error
	// DeleteManager elimina el gerente y la configuración de su tenant (sucursal, turnos, catálogo, contactos).
	DeleteManager(ctx context.Context, id string) error

	// ListCollaborators colaboradores de los tenants indicados; nil = todos.
	ListCollaborators(ctx context.Context, managerIDs []string) ([]*entity.Principal, error)
	CreateCollaborator(ctx context.Context, c *entity.Principal) error
	// DeleteCollaborator elimina el colaborador y todas sus actividades.
	DeleteCollaborator(ctx context.Context, id string) error
}
