package usecase

import (
	"context"

	"github.com/jhoicas/gestor-sucursal/internal/application/tenancy"
	"github.com/jhoicas/gestor-sucursal/internal/domain"
	"github.com/jhoicas/gestor-sucursal/internal/domain/entity"
	"github.com/jhoicas/gestor-sucursal/internal/domain/repository"
)

// Actor quién ejecuta la operación. Tenant solo aplica a administradores (tenant_id / X-Tenant-ID).
type Actor struct {
	UserID string
	Tenant string
}

// principal carga el principal del actor; un token de un usuario borrado deja de servir.
func principal(ctx context.Context, store repository.Store, a Actor) (*entity.Principal, error) {
	p, err := store.GetPrincipal(ctx, a.UserID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrUnauthorized
	}
	return p, nil
}

// view principal + vista filtrada de su alcance.
func view(ctx context.Context, store repository.Store, a Actor) (*tenancy.View, error) {
	p, err := principal(ctx, store, a)
	if err != nil {
		return nil, err
	}
	return tenancy.Load(ctx, store, p, a.Tenant)
}

// requireStaff gerente o administrador.
func requireStaff(p *entity.Principal) error {
	if p.IsManager() || p.IsAdmin() {
		return nil
	}
	return domain.ErrForbidden
}

func requireAdmin(p *entity.Principal) error {
	if p.IsAdmin() {
		return nil
	}
	return domain.ErrForbidden
}

// staffView gerente o administrador con tenant seleccionado.
func staffView(ctx context.Context, store repository.Store, actor Actor) (*entity.Principal, *tenancy.View, error) {
	p, err := principal(ctx, store, actor)
	if err != nil {
		return nil, nil, err
	}
	if err := requireStaff(p); err != nil {
		return nil, nil, err
	}
	if _, err := tenancy.Require(p, actor.Tenant); err != nil {
		return nil, nil, err
	}
	v, err := tenancy.Load(ctx, store, p, actor.Tenant)
	if err != nil {
		return nil, nil, err
	}
	return p, v, nil
}
