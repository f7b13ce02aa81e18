package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/gestor-sucursal/internal/application/auth"
	"github.com/jhoicas/gestor-sucursal/internal/application/dto"
	"github.com/jhoicas/gestor-sucursal/internal/application/ports"
	"github.com/jhoicas/gestor-sucursal/internal/application/tenancy"
	"github.com/jhoicas/gestor-sucursal/internal/domain"
	"github.com/jhoicas/gestor-sucursal/internal/domain/entity"
	"github.com/jhoicas/gestor-sucursal/internal/domain/repository"
	"github.com/jhoicas/gestor-sucursal/pkg/clock"
	"github.com/jhoicas/gestor-sucursal/pkg/logger"
)

// CollaboratorUseCase alta, edición, baja e importación de colaboradores.
type CollaboratorUseCase struct {
	store           repository.Store
	hasher          *auth.PasswordHasher
	defaultPassword string
	roster          ports.RosterReader
	clock           clock.Clock
	log             *logger.Logger
}

// NewCollaboratorUseCase construye el caso de uso. defaultPassword es la contraseña inicial
// de todo colaborador nuevo (queda marcado para cambiarla en su primer acceso).
func NewCollaboratorUseCase(store repository.Store, hasher *auth.PasswordHasher, defaultPassword string, roster ports.RosterReader, clk clock.Clock, log *logger.Logger) *CollaboratorUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &CollaboratorUseCase{
		store:           store,
		hasher:          hasher,
		defaultPassword: defaultPassword,
		roster:          roster,
		clock:           clk,
		log:             log.Component("collaborators"),
	}
}

// List colaboradores visibles para el gerente o administrador.
func (uc *CollaboratorUseCase) List(ctx context.Context, actor Actor) ([]dto.CollaboratorResponse, error) {
	v, err := view(ctx, uc.store, actor)
	if err != nil {
		return nil, err
	}
	if err := requireStaff(v.Principal()); err != nil {
		return nil, err
	}
	list := v.VisibleCollaborators()
	out := make([]dto.CollaboratorResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCollaboratorResponse(c))
	}
	return out, nil
}

// Create da de alta un colaborador en el tenant del gerente o en el seleccionado por el administrador.
func (uc *CollaboratorUseCase) Create(ctx context.Context, actor Actor, in dto.CreateCollaboratorRequest) (*dto.CollaboratorResponse, error) {
	p, err := principal(ctx, uc.store, actor)
	if err != nil {
		return nil, err
	}
	if err := requireStaff(p); err != nil {
		return nil, err
	}
	selected := actor.Tenant
	if p.IsAdmin() && in.ManagerID != "" {
		selected = in.ManagerID
	}
	managerID, err := tenancy.Require(p, selected)
	if err != nil {
		return nil, err
	}
	if p.IsAdmin() {
		if err := uc.requireManager(ctx, managerID); err != nil {
			return nil, err
		}
	}
	c, err := uc.create(ctx, managerID, in)
	if err != nil {
		return nil, err
	}
	resp := toCollaboratorResponse(c)
	return &resp, nil
}

func (uc *CollaboratorUseCase) create(ctx context.Context, managerID string, in dto.CreateCollaboratorRequest) (*entity.Principal, error) {
	name := strings.TrimSpace(in.Name)
	number := strings.TrimSpace(in.EmployeeNumber)
	shift := entity.Shift(strings.ToUpper(strings.TrimSpace(in.Shift)))
	if name == "" || number == "" {
		return nil, fmt.Errorf("%w: nombre y número de empleado son obligatorios", domain.ErrInvalidInput)
	}
	if !shift.Valid() {
		return nil, fmt.Errorf("%w: turno %q", domain.ErrInvalidInput, in.Shift)
	}
	hash, err := uc.hasher.Hash(uc.defaultPassword)
	if err != nil {
		return nil, err
	}
	now := uc.clock.Now()
	c := entity.NewCollaborator(entity.UserBase{
		ID:             uuid.New().String(),
		Name:           name,
		EmployeeNumber: number,
		PasswordHash:   hash,
		IsFirstLogin:   true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, entity.CollaboratorProfile{
		RoleTitle: strings.TrimSpace(in.RoleTitle),
		Shift:     shift,
		ManagerID: managerID,
	})
	if err := uc.store.CreateCollaborator(ctx, c); err != nil {
		if !errors.Is(err, domain.ErrEmployeeNumberExists) {
			uc.log.Error().Err(err).Str("employee_number", number).Msg("create collaborator")
		}
		return nil, err
	}
	return c, nil
}

// Update edita un colaborador visible; las iniciales se recalculan si cambia el nombre.
// Solo el administrador puede moverlo a otro gerente.
func (uc *CollaboratorUseCase) Update(ctx context.Context, actor Actor, id string, in dto.UpdateCollaboratorRequest) (*dto.CollaboratorResponse, error) {
	p, v, err := staffView(ctx, uc.store, actor)
	if err != nil {
		return nil, err
	}
	cur := v.Collaborator(id)
	if cur == nil {
		return nil, domain.ErrNotFound
	}
	c := cur.Clone()
	if in.Name != nil {
		c.Rename(strings.TrimSpace(*in.Name))
	}
	if in.EmployeeNumber != nil {
		c.EmployeeNumber = strings.TrimSpace(*in.EmployeeNumber)
	}
	if in.RoleTitle != nil {
		c.Profile.RoleTitle = strings.TrimSpace(*in.RoleTitle)
	}
	if in.Shift != nil {
		shift := entity.Shift(strings.ToUpper(*in.Shift))
		if !shift.Valid() {
			return nil, fmt.Errorf("%w: turno %q", domain.ErrInvalidInput, *in.Shift)
		}
		c.Profile.Shift = shift
	}
	if in.ManagerID != nil && *in.ManagerID != c.Profile.ManagerID {
		if !p.IsAdmin() {
			return nil, domain.ErrForbidden
		}
		if err := uc.requireManager(ctx, *in.ManagerID); err != nil {
			return nil, err
		}
		c.Profile.ManagerID = *in.ManagerID
	}
	if c.Name == "" || c.EmployeeNumber == "" {
		return nil, fmt.Errorf("%w: nombre y número de empleado son obligatorios", domain.ErrInvalidInput)
	}
	c.UpdatedAt = uc.clock.Now()
	if err := uc.store.UpdatePrincipal(ctx, c); err != nil {
		return nil, err
	}
	resp := toCollaboratorResponse(c)
	return &resp, nil
}

// Delete elimina el colaborador y, en la misma operación, todas sus actividades.
func (uc *CollaboratorUseCase) Delete(ctx context.Context, actor Actor, id string) error {
	_, v, err := staffView(ctx, uc.store, actor)
	if err != nil {
		return err
	}
	if v.Collaborator(id) == nil {
		return domain.ErrNotFound
	}
	if err := uc.store.DeleteCollaborator(ctx, id); err != nil {
		uc.log.Error().Err(err).Str("collaborator_id", id).Msg("delete collaborator")
		return fmt.Errorf("delete collaborator: %w", err)
	}
	return nil
}

// Import da de alta los colaboradores de un roster xlsx. Cada fila se procesa por separado:
// las que fallan se reportan sin detener el resto.
func (uc *CollaboratorUseCase) Import(ctx context.Context, actor Actor, r io.Reader) (*dto.ImportResult, error) {
	_, v, err := staffView(ctx, uc.store, actor)
	if err != nil {
		return nil, err
	}
	if uc.roster == nil {
		return nil, fmt.Errorf("%w: importación no disponible", domain.ErrInvalidInput)
	}
	rows, err := uc.roster.ReadRoster(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	res := &dto.ImportResult{Created: []dto.CollaboratorResponse{}, Errors: []dto.ImportRowError{}}
	for _, row := range rows {
		c, err := uc.create(ctx, v.TenantID(), dto.CreateCollaboratorRequest{
			Name:           row.Name,
			EmployeeNumber: row.EmployeeNumber,
			RoleTitle:      row.RoleTitle,
			Shift:          row.Shift,
		})
		if err != nil {
			res.Errors = append(res.Errors, dto.ImportRowError{Row: row.Row, Message: err.Error()})
			continue
		}
		res.Created = append(res.Created, toCollaboratorResponse(c))
	}
	uc.log.Info().Str("manager_id", v.TenantID()).Int("created", len(res.Created)).Int("errors", len(res.Errors)).Msg("roster import")
	return res, nil
}

func (uc *CollaboratorUseCase) requireManager(ctx context.Context, id string) error {
	m, err := uc.store.GetPrincipal(ctx, id)
	if err != nil {
		return err
	}
	if m == nil || !m.IsManager() {
		return fmt.Errorf("gerente %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
