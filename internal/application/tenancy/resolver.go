// Package tenancy resuelve el gerente (tenant) de contexto de cada principal y filtra
// colaboradores, actividades y configuración visibles para él.
package tenancy

import (
	"context"

	"github.com/jhoicas/gestor-sucursal/internal/domain"
	"github.com/jhoicas/gestor-sucursal/internal/domain/entity"
	"github.com/jhoicas/gestor-sucursal/internal/domain/repository"
)

// Resolve tenant de contexto del principal.
//   - Gerente: su propio ID.
//   - Colaborador: el gerente al que pertenece.
//   - Administrador: el tenant seleccionado explícitamente; vacío si no seleccionó ninguno.
func Resolve(p *entity.Principal, selected string) string {
	switch {
	case p.IsManager():
		return p.ID
	case p.IsCollaborator():
		return p.ManagerID()
	case p.IsAdmin():
		return selected
	default:
		return ""
	}
}

// Require como Resolve pero falla con ErrTenantRequired cuando no hay tenant.
func Require(p *entity.Principal, selected string) (string, error) {
	id := Resolve(p, selected)
	if id == "" {
		return "", domain.ErrTenantRequired
	}
	return id, nil
}

// Scope conjunto de tenants cuyos datos se cargan para el principal. nil significa todos
// (administrador sin selección).
func Scope(p *entity.Principal, selected string) []string {
	if id := Resolve(p, selected); id != "" {
		return []string{id}
	}
	if p.IsAdmin() {
		return nil
	}
	return []string{}
}

// Load carga el snapshot del alcance del principal y construye su vista.
// Un administrador con tenant seleccionado debe apuntar a un gerente existente.
func Load(ctx context.Context, store repository.Store, p *entity.Principal, selected string) (*View, error) {
	if p.IsAdmin() && selected != "" {
		m, err := store.GetPrincipal(ctx, selected)
		if err != nil {
			return nil, err
		}
		if m == nil || !m.IsManager() {
			return nil, domain.ErrNotFound
		}
	}
	snap, err := store.FetchTenantData(ctx, Scope(p, selected))
	if err != nil {
		return nil, err
	}
	return NewView(p, Resolve(p, selected), snap), nil
}
