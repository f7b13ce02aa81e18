package tenancy

import (
	"github.com/jhoicas/gestor-sucursal/internal/domain"
	"github.com/jhoicas/gestor-sucursal/internal/domain/entity"
)

// View lecturas filtradas de un snapshot para un principal. Todas las rutas de lectura
// (tablero, agenda, equipo, estadísticas, planeación) pasan por aquí.
type View struct {
	principal *entity.Principal
	tenantID  string
	snap      *entity.TenantSnapshot
}

// NewView construye la vista; tenantID es el resultado de Resolve.
func NewView(p *entity.Principal, tenantID string, snap *entity.TenantSnapshot) *View {
	if snap == nil {
		snap = &entity.TenantSnapshot{}
	}
	return &View{principal: p, tenantID: tenantID, snap: snap}
}

// Principal dueño de la vista.
func (v *View) Principal() *entity.Principal { return v.principal }

// TenantID tenant resuelto; vacío para un administrador sin selección.
func (v *View) TenantID() string { return v.tenantID }

// RequireTenant devuelve el tenant o ErrTenantRequired.
func (v *View) RequireTenant() (string, error) {
	if v.tenantID == "" {
		return "", domain.ErrTenantRequired
	}
	return v.tenantID, nil
}

// VisibleCollaborators
//   - Administrador: todos (o los del tenant seleccionado).
//   - Gerente: los suyos.
//   - Colaborador: los de su mismo gerente, él incluido.
func (v *View) VisibleCollaborators() []*entity.Principal {
	p := v.principal
	out := make([]*entity.Principal, 0, len(v.snap.Collaborators))
	for _, c := range v.snap.Collaborators {
		switch {
		case p.IsAdmin():
			if v.tenantID != "" && c.ManagerID() != v.tenantID {
				continue
			}
		case p.IsManager():
			if c.ManagerID() != p.ID {
				continue
			}
		case p.IsCollaborator():
			if c.ManagerID() != p.ManagerID() {
				continue
			}
		default:
			continue
		}
		out = append(out, c)
	}
	return out
}

// Teammates colaboradores visibles excepto el propio principal.
func (v *View) Teammates() []*entity.Principal {
	all := v.VisibleCollaborators()
	out := make([]*entity.Principal, 0, len(all))
	for _, c := range all {
		if c.ID != v.principal.ID {
			out = append(out, c)
		}
	}
	return out
}

// Collaborator colaborador visible por ID; nil si no existe o no es visible.
func (v *View) Collaborator(id string) *entity.Principal {
	for _, c := range v.VisibleCollaborators() {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// VisibleActivities actividades de los colaboradores visibles; el colaborador
// siempre ve además las propias.
func (v *View) VisibleActivities() []*entity.Activity {
	ids := make(map[string]struct{})
	for _, c := range v.VisibleCollaborators() {
		ids[c.ID] = struct{}{}
	}
	if v.principal.IsCollaborator() {
		ids[v.principal.ID] = struct{}{}
	}
	out := make([]*entity.Activity, 0)
	for _, a := range v.snap.Activities {
		if _, ok := ids[a.CollaboratorID]; ok {
			out = append(out, a)
		}
	}
	return out
}

// ActivitiesOf actividades visibles de un colaborador.
func (v *View) ActivitiesOf(collaboratorID string) []*entity.Activity {
	var out []*entity.Activity
	for _, a := range v.VisibleActivities() {
		if a.CollaboratorID == collaboratorID {
			out = append(out, a)
		}
	}
	return out
}

// Activity actividad visible por ID.
func (v *View) Activity(id string) *entity.Activity {
	for _, a := range v.VisibleActivities() {
		if a.ID == id {
			return a
		}
	}
	return nil
}

// ActivityTypes catálogo del tenant resuelto, en orden de alta.
func (v *View) ActivityTypes() []entity.ActivityDefinition {
	return v.ActivityTypesOf(v.tenantID)
}

// ActivityTypesOf catálogo de un tenant del snapshot.
func (v *View) ActivityTypesOf(tenantID string) []entity.ActivityDefinition {
	out := make([]entity.ActivityDefinition, 0)
	if tenantID == "" {
		return out
	}
	for _, d := range v.snap.ActivityDefinitions {
		if d.ManagerID == tenantID {
			out = append(out, d)
		}
	}
	return out
}

// InCatalog indica si name está en el catálogo del tenant.
func (v *View) InCatalog(tenantID, name string) bool {
	for _, d := range v.ActivityTypesOf(tenantID) {
		if d.Name == name {
			return true
		}
	}
	return false
}

// BranchConfig configuración de sucursal del tenant resuelto o la de por defecto.
func (v *View) BranchConfig() entity.BranchConfig {
	for _, b := range v.snap.BranchConfigs {
		if b.ManagerID == v.tenantID && v.tenantID != "" {
			return b
		}
	}
	return DefaultBranchConfig(v.tenantID)
}

// ShiftConfig configuración de turnos del tenant resuelto o la de por defecto.
func (v *View) ShiftConfig() entity.ShiftConfig {
	return v.ShiftConfigFor(v.tenantID)
}

// ShiftConfigFor configuración de turnos de cualquier tenant del snapshot. Se usa cuando un
// administrador sin selección ve colaboradores de varios gerentes.
func (v *View) ShiftConfigFor(tenantID string) entity.ShiftConfig {
	if tenantID != "" {
		for _, s := range v.snap.ShiftConfigs {
			if s.ManagerID == tenantID {
				return WithLunchDefaults(s)
			}
		}
	}
	return DefaultShiftConfig(tenantID)
}

// EmergencyContacts contactos del tenant resuelto.
func (v *View) EmergencyContacts() []entity.EmergencyContact {
	out := make([]entity.EmergencyContact, 0)
	if v.tenantID == "" {
		return out
	}
	for _, c := range v.snap.EmergencyContacts {
		if c.ManagerID == v.tenantID {
			out = append(out, c)
		}
	}
	return out
}

// Managers gerentes incluidos en el snapshot.
func (v *View) Managers() []*entity.Principal { return v.snap.Managers }
