// Package memory implementa repository.Store en memoria. Es el adaptador de la demo y
// de las pruebas: colecciones planas por tipo, unidas por identificador, igual que las tablas.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jhoicas/gestor-sucursal/internal/domain"
	"github.com/jhoicas/gestor-sucursal/internal/domain/entity"
	"github.com/jhoicas/gestor-sucursal/internal/domain/repository"
)

var _ repository.Store = (*Store)(nil)

// Store colecciones en memoria protegidas por un RWMutex. Todas las lecturas devuelven copias.
type Store struct {
	mu sync.RWMutex

	principals  []*entity.Principal
	activities  []*entity.Activity
	definitions []entity.ActivityDefinition
	branches    []entity.BranchConfig
	shifts      []entity.ShiftConfig
	contacts    []entity.EmergencyContact
	revoked     map[string]time.Time // jti → expiración del token
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{}
}

// Ping siempre disponible.
func (s *Store) Ping(context.Context) error { return nil }

// ── Principals ───────────────────────────────────────────────────────────────

// AddPrincipal inserta cualquier principal; lo usa la carga de datos demo.
func (s *Store) AddPrincipal(_ context.Context, p *entity.Principal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insertPrincipal(p)
}

func (s *Store) insertPrincipal(p *entity.Principal) error {
	for _, existing := range s.principals {
		if existing.ID == p.ID {
			return fmt.Errorf("insert principal %s: %w", p.ID, domain.ErrDuplicate)
		}
		if existing.EmployeeNumber == p.EmployeeNumber {
			return domain.ErrEmployeeNumberExists
		}
	}
	s.principals = append(s.principals, p.Clone())
	return nil
}

// FindByEmployeeNumber busca en todos los roles.
func (s *Store) FindByEmployeeNumber(_ context.Context, employeeNumber string) ([]*entity.Principal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*entity.Principal
	for _, p := range s.principals {
		if p.EmployeeNumber == employeeNumber {
			out = append(out, p.Clone())
		}
	}
	return out, nil
}

// GetPrincipal obtiene un principal por ID.
func (s *Store) GetPrincipal(_ context.Context, id string) (*entity.Principal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p := s.principalByID(id); p != nil {
		return p.Clone(), nil
	}
	return nil, nil
}

func (s *Store) principalByID(id string) *entity.Principal {
	for _, p := range s.principals {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// UpdateCredential cambia el hash y limpia la bandera de primer acceso.
func (s *Store) UpdateCredential(_ context.Context, id, passwordHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.principalByID(id)
	if p == nil {
		return domain.ErrUserNotFound
	}
	p.PasswordHash = passwordHash
	p.IsFirstLogin = false
	return nil
}

// ListManagers lista gerentes en orden de alta.
func (s *Store) ListManagers(_ context.Context) ([]*entity.Principal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.byRole(entity.RoleManager, nil), nil
}

func (s *Store) byRole(role entity.Role, managerIDs []string) []*entity.Principal {
	var want map[string]struct{}
	if managerIDs != nil {
		want = toSet(managerIDs)
	}
	out := make([]*entity.Principal, 0)
	for _, p := range s.principals {
		if p.Role != role {
			continue
		}
		if want != nil {
			key := p.ID
			if role == entity.RoleCollaborator {
				key = p.ManagerID()
			}
			if _, ok := want[key]; !ok {
				continue
			}
		}
		out = append(out, p.Clone())
	}
	return out
}

// CreateManager inserta el gerente y la configuración inicial del tenant.
func (s *Store) CreateManager(_ context.Context, manager *entity.Principal, seed entity.TenantSeed) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.insertPrincipal(manager); err != nil {
		return err
	}
	seed.Branch.ManagerID = manager.ID
	seed.Shift.ManagerID = manager.ID
	s.upsertBranch(seed.Branch)
	s.upsertShift(seed.Shift)
	for _, def := range seed.Catalog {
		def.ManagerID = manager.ID
		s.addDefinition(def)
	}
	return nil
}

// UpdatePrincipal reemplaza nombre, login y perfil. El rol no cambia.
func (s *Store) UpdatePrincipal(_ context.Context, p *entity.Principal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur := s.principalByID(p.ID)
	if cur == nil {
		return domain.ErrUserNotFound
	}
	for _, other := range s.principals {
		if other.ID != p.ID && other.EmployeeNumber == p.EmployeeNumber {
			return domain.ErrEmployeeNumberExists
		}
	}
	next := p.Clone()
	next.Role = cur.Role
	next.PasswordHash = cur.PasswordHash
	next.IsFirstLogin = cur.IsFirstLogin
	next.CreatedAt = cur.CreatedAt
	*cur = *next
	return nil
}

// DeleteManager elimina el gerente y toda la configuración de su tenant.
func (s *Store) DeleteManager(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.principals = filter(s.principals, func(p *entity.Principal) bool {
		return !(p.ID == id && p.Role == entity.RoleManager)
	})
	s.branches = filter(s.branches, func(c entity.BranchConfig) bool { return c.ManagerID != id })
	s.shifts = filter(s.shifts, func(c entity.ShiftConfig) bool { return c.ManagerID != id })
	s.definitions = filter(s.definitions, func(d entity.ActivityDefinition) bool { return d.ManagerID != id })
	s.contacts = filter(s.contacts, func(c entity.EmergencyContact) bool { return c.ManagerID != id })
	return nil
}

// ListCollaborators colaboradores de los tenants indicados (nil = todos).
func (s *Store) ListCollaborators(_ context.Context, managerIDs []string) ([]*entity.Principal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.byRole(entity.RoleCollaborator, managerIDs), nil
}

// CreateCollaborator inserta un colaborador.
func (s *Store) CreateCollaborator(_ context.Context, c *entity.Principal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insertPrincipal(c)
}

// DeleteCollaborator elimina el colaborador y sus actividades en la misma sección crítica.
func (s *Store) DeleteCollaborator(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.principals = filter(s.principals, func(p *entity.Principal) bool {
		return !(p.ID == id && p.Role == entity.RoleCollaborator)
	})
	s.activities = filter(s.activities, func(a *entity.Activity) bool { return a.CollaboratorID != id })
	return nil
}

// ── Activities ───────────────────────────────────────────────────────────────

// CreateActivity inserta una actividad.
func (s *Store) CreateActivity(_ context.Context, a *entity.Activity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.activities {
		if existing.ID == a.ID {
			return fmt.Errorf("insert activity %s: %w", a.ID, domain.ErrDuplicate)
		}
	}
	s.activities = append(s.activities, a.Clone())
	return nil
}

// GetActivity obtiene una actividad por ID.
func (s *Store) GetActivity(_ context.Context, id string) (*entity.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.activities {
		if a.ID == id {
			return a.Clone(), nil
		}
	}
	return nil, nil
}

// UpdateActivity reemplaza la actividad completa.
func (s *Store) UpdateActivity(_ context.Context, a *entity.Activity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.activities {
		if existing.ID == a.ID {
			s.activities[i] = a.Clone()
			return nil
		}
	}
	return domain.ErrNotFound
}

// DeleteActivity elimina solo la actividad indicada.
func (s *Store) DeleteActivity(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activities = filter(s.activities, func(a *entity.Activity) bool { return a.ID != id })
	return nil
}

// ListActivities actividades de los colaboradores indicados (nil = todas).
func (s *Store) ListActivities(_ context.Context, collaboratorIDs []string) ([]*entity.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activitiesOf(collaboratorIDs), nil
}

func (s *Store) activitiesOf(collaboratorIDs []string) []*entity.Activity {
	var want map[string]struct{}
	if collaboratorIDs != nil {
		want = toSet(collaboratorIDs)
	}
	out := make([]*entity.Activity, 0)
	for _, a := range s.activities {
		if want != nil {
			if _, ok := want[a.CollaboratorID]; !ok {
				continue
			}
		}
		out = append(out, a.Clone())
	}
	return out
}

// ── Tenant config ────────────────────────────────────────────────────────────

// UpsertBranchConfig un registro por tenant.
func (s *Store) UpsertBranchConfig(_ context.Context, cfg entity.BranchConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.upsertBranch(cfg)
	return nil
}

func (s *Store) upsertBranch(cfg entity.BranchConfig) {
	s.branches = filter(s.branches, func(c entity.BranchConfig) bool { return c.ManagerID != cfg.ManagerID })
	s.branches = append(s.branches, cfg)
}

// UpsertShiftConfig un registro por tenant.
func (s *Store) UpsertShiftConfig(_ context.Context, cfg entity.ShiftConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.upsertShift(cfg)
	return nil
}

func (s *Store) upsertShift(cfg entity.ShiftConfig) {
	cfg.Matutino.Lunch = append([]string(nil), cfg.Matutino.Lunch...)
	cfg.Vespertino.Lunch = append([]string(nil), cfg.Vespertino.Lunch...)
	s.shifts = filter(s.shifts, func(c entity.ShiftConfig) bool { return c.ManagerID != cfg.ManagerID })
	s.shifts = append(s.shifts, cfg)
}

// AddActivityDefinition inserta si (tenant, nombre) no existe.
func (s *Store) AddActivityDefinition(_ context.Context, def entity.ActivityDefinition) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addDefinition(def), nil
}

func (s *Store) addDefinition(def entity.ActivityDefinition) bool {
	for _, d := range s.definitions {
		if d.ManagerID == def.ManagerID && d.Name == def.Name {
			return false
		}
	}
	s.definitions = append(s.definitions, def)
	return true
}

// RemoveActivityDefinition borra la entrada (tenant, nombre).
func (s *Store) RemoveActivityDefinition(_ context.Context, managerID, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.definitions = filter(s.definitions, func(d entity.ActivityDefinition) bool {
		return !(d.ManagerID == managerID && d.Name == name)
	})
	return nil
}

// AddEmergencyContact agrega un contacto al tenant.
func (s *Store) AddEmergencyContact(_ context.Context, c entity.EmergencyContact) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contacts = append(s.contacts, c)
	return nil
}

// RemoveEmergencyContact borra el contacto si pertenece al tenant.
func (s *Store) RemoveEmergencyContact(_ context.Context, managerID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contacts = filter(s.contacts, func(c entity.EmergencyContact) bool {
		return !(c.ID == id && c.ManagerID == managerID)
	})
	return nil
}

// ── Snapshot ─────────────────────────────────────────────────────────────────

// FetchTenantData copia consistente (un solo RLock) de las colecciones de los tenants.
func (s *Store) FetchTenantData(_ context.Context, managerIDs []string) (*entity.TenantSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := &entity.TenantSnapshot{
		Managers:      s.byRole(entity.RoleManager, managerIDs),
		Collaborators: s.byRole(entity.RoleCollaborator, managerIDs),
	}
	collabIDs := make([]string, 0, len(snap.Collaborators))
	for _, c := range snap.Collaborators {
		collabIDs = append(collabIDs, c.ID)
	}
	snap.Activities = s.activitiesOf(collabIDs)

	var want map[string]struct{}
	if managerIDs != nil {
		want = toSet(managerIDs)
	}
	in := func(id string) bool {
		if want == nil {
			return true
		}
		_, ok := want[id]
		return ok
	}
	for _, d := range s.definitions {
		if in(d.ManagerID) {
			snap.ActivityDefinitions = append(snap.ActivityDefinitions, d)
		}
	}
	for _, b := range s.branches {
		if in(b.ManagerID) {
			snap.BranchConfigs = append(snap.BranchConfigs, b)
		}
	}
	for _, sc := range s.shifts {
		if in(sc.ManagerID) {
			sc.Matutino.Lunch = append([]string(nil), sc.Matutino.Lunch...)
			sc.Vespertino.Lunch = append([]string(nil), sc.Vespertino.Lunch...)
			snap.ShiftConfigs = append(snap.ShiftConfigs, sc)
		}
	}
	for _, c := range s.contacts {
		if in(c.ManagerID) {
			snap.EmergencyContacts = append(snap.EmergencyContacts, c)
		}
	}
	return snap, nil
}

func toSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func filter[T any](in []T, keep func(T) bool) []T {
	out := in[:0]
	for _, v := range in {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

// ── Sessions ─────────────────────────────────────────────────────────────────

// RevokeSession agrega el jti a la lista de revocados y purga los ya expirados.
func (s *Store) RevokeSession(_ context.Context, sessionID string, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.revoked == nil {
		s.revoked = make(map[string]time.Time)
	}
	for id, exp := range s.revoked {
		if exp.Before(time.Now()) {
			delete(s.revoked, id)
		}
	}
	s.revoked[sessionID] = expiresAt
	return nil
}

// IsSessionRevoked indica si el jti está revocado y su token aún no expira.
func (s *Store) IsSessionRevoked(_ context.Context, sessionID string, now time.Time) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	exp, ok := s.revoked[sessionID]
	return ok && now.Before(exp), nil
}
