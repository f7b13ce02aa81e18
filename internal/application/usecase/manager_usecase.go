package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/gestor-sucursal/internal/application/auth"
	"github.com/jhoicas/gestor-sucursal/internal/application/dto"
	"github.com/jhoicas/gestor-sucursal/internal/application/tenancy"
	"github.com/jhoicas/gestor-sucursal/internal/domain"
	"github.com/jhoicas/gestor-sucursal/internal/domain/entity"
	"github.com/jhoicas/gestor-sucursal/internal/domain/repository"
	"github.com/jhoicas/gestor-sucursal/pkg/clock"
	"github.com/jhoicas/gestor-sucursal/pkg/logger"
)

// ManagerUseCase administración de gerentes (solo ADMIN).
type ManagerUseCase struct {
	store  repository.Store
	hasher *auth.PasswordHasher
	clock  clock.Clock
	log    *logger.Logger
}

// NewManagerUseCase construye el caso de uso.
func NewManagerUseCase(store repository.Store, hasher *auth.PasswordHasher, clk clock.Clock, log *logger.Logger) *ManagerUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &ManagerUseCase{store: store, hasher: hasher, clock: clk, log: log.Component("managers")}
}

// List gerentes con el tamaño de su equipo.
func (uc *ManagerUseCase) List(ctx context.Context, actor Actor) ([]dto.ManagerResponse, error) {
	if _, err := uc.admin(ctx, actor); err != nil {
		return nil, err
	}
	managers, err := uc.store.ListManagers(ctx)
	if err != nil {
		return nil, err
	}
	collabs, err := uc.store.ListCollaborators(ctx, nil)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int, len(managers))
	for _, c := range collabs {
		counts[c.ManagerID()]++
	}
	out := make([]dto.ManagerResponse, 0, len(managers))
	for _, m := range managers {
		out = append(out, toManagerResponse(m, counts[m.ID]))
	}
	return out, nil
}

// Create da de alta un gerente. Su contraseña inicial es su número de empleado y su tenant nace
// con sucursal, turnos y catálogo por defecto en la misma escritura.
func (uc *ManagerUseCase) Create(ctx context.Context, actor Actor, in dto.CreateManagerRequest) (*dto.ManagerResponse, error) {
	if _, err := uc.admin(ctx, actor); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.Name)
	number := strings.TrimSpace(in.EmployeeNumber)
	if name == "" || number == "" {
		return nil, fmt.Errorf("%w: nombre y número de empleado son obligatorios", domain.ErrInvalidInput)
	}
	hash, err := uc.hasher.Hash(number)
	if err != nil {
		return nil, err
	}
	now := uc.clock.Now()
	m := entity.NewManager(entity.UserBase{
		ID:             uuid.New().String(),
		Name:           name,
		EmployeeNumber: number,
		PasswordHash:   hash,
		IsFirstLogin:   true,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	seed := tenancy.NewTenantSeed(m.ID, func() string { return uuid.New().String() })
	if err := uc.store.CreateManager(ctx, m, seed); err != nil {
		return nil, err
	}
	uc.log.Info().Str("manager_id", m.ID).Str("employee_number", number).Msg("manager created")
	resp := toManagerResponse(m, 0)
	return &resp, nil
}

// Update cambia nombre o número de empleado.
func (uc *ManagerUseCase) Update(ctx context.Context, actor Actor, id string, in dto.UpdateManagerRequest) (*dto.ManagerResponse, error) {
	if _, err := uc.admin(ctx, actor); err != nil {
		return nil, err
	}
	m, err := uc.manager(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		m.Name = strings.TrimSpace(*in.Name)
	}
	if in.EmployeeNumber != nil {
		m.EmployeeNumber = strings.TrimSpace(*in.EmployeeNumber)
	}
	if m.Name == "" || m.EmployeeNumber == "" {
		return nil, fmt.Errorf("%w: nombre y número de empleado son obligatorios", domain.ErrInvalidInput)
	}
	m.UpdatedAt = uc.clock.Now()
	if err := uc.store.UpdatePrincipal(ctx, m); err != nil {
		return nil, err
	}
	collabs, err := uc.store.ListCollaborators(ctx, []string{id})
	if err != nil {
		return nil, err
	}
	resp := toManagerResponse(m, len(collabs))
	return &resp, nil
}

// Delete elimina al gerente y la configuración de su tenant. Falla con ErrConflict
// mientras el gerente tenga colaboradores.
func (uc *ManagerUseCase) Delete(ctx context.Context, actor Actor, id string) error {
	if _, err := uc.admin(ctx, actor); err != nil {
		return err
	}
	if _, err := uc.manager(ctx, id); err != nil {
		return err
	}
	collabs, err := uc.store.ListCollaborators(ctx, []string{id})
	if err != nil {
		return err
	}
	if len(collabs) > 0 {
		return fmt.Errorf("%w: el gerente tiene %d colaboradores", domain.ErrConflict, len(collabs))
	}
	if err := uc.store.DeleteManager(ctx, id); err != nil {
		uc.log.Error().Err(err).Str("manager_id", id).Msg("delete manager")
		return fmt.Errorf("delete manager: %w", err)
	}
	return nil
}

func (uc *ManagerUseCase) admin(ctx context.Context, actor Actor) (*entity.Principal, error) {
	p, err := principal(ctx, uc.store, actor)
	if err != nil {
		return nil, err
	}
	return p, requireAdmin(p)
}

func (uc *ManagerUseCase) manager(ctx context.Context, id string) (*entity.Principal, error) {
	m, err := uc.store.GetPrincipal(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil || !m.IsManager() {
		return nil, domain.ErrNotFound
	}
	return m, nil
}

func toManagerResponse(m *entity.Principal, collaborators int) dto.ManagerResponse {
	return dto.ManagerResponse{
		ID:                m.ID,
		Name:              m.Name,
		EmployeeNumber:    m.EmployeeNumber,
		IsFirstLogin:      m.IsFirstLogin,
		CollaboratorCount: collaborators,
		CreatedAt:         m.CreatedAt,
	}
}
