package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/gestor-sucursal/internal/application/dto"
	"github.com/jhoicas/gestor-sucursal/internal/application/tenancy"
	"github.com/jhoicas/gestor-sucursal/internal/domain"
	"github.com/jhoicas/gestor-sucursal/internal/domain/entity"
	"github.com/jhoicas/gestor-sucursal/internal/domain/repository"
	"github.com/jhoicas/gestor-sucursal/internal/domain/schedule"
	"github.com/jhoicas/gestor-sucursal/pkg/logger"
)

// TenantConfigUseCase sucursal, turnos, catálogo y contactos de emergencia de un tenant.
type TenantConfigUseCase struct {
	store repository.Store
	log   *logger.Logger
}

// NewTenantConfigUseCase construye el caso de uso.
func NewTenantConfigUseCase(store repository.Store, log *logger.Logger) *TenantConfigUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &TenantConfigUseCase{store: store, log: log.Component("tenant_config")}
}

// BranchInfo configuración vigente del tenant de contexto; los registros ausentes se
// reemplazan por los valores por defecto.
func (uc *TenantConfigUseCase) BranchInfo(ctx context.Context, actor Actor) (*dto.BranchInfoResponse, error) {
	v, err := view(ctx, uc.store, actor)
	if err != nil {
		return nil, err
	}
	if _, err := v.RequireTenant(); err != nil {
		return nil, err
	}
	out := &dto.BranchInfoResponse{
		Branch:   toBranchResponse(v.BranchConfig()),
		Shifts:   toShiftResponse(v.ShiftConfig()),
		Catalog:  []dto.ActivityDefinitionResponse{},
		Contacts: []dto.EmergencyContactResponse{},
	}
	for _, d := range v.ActivityTypes() {
		out.Catalog = append(out.Catalog, toDefinitionResponse(d))
	}
	for _, c := range v.EmergencyContacts() {
		out.Contacts = append(out.Contacts, toContactResponse(c))
	}
	return out, nil
}

// UpdateBranch upsert de la sucursal del tenant.
func (uc *TenantConfigUseCase) UpdateBranch(ctx context.Context, actor Actor, in dto.BranchConfigRequest) (*dto.BranchConfigResponse, error) {
	tenantID, err := uc.tenant(ctx, actor)
	if err != nil {
		return nil, err
	}
	cfg := entity.BranchConfig{
		ManagerID: tenantID,
		Name:      strings.TrimSpace(in.Name),
		CECO:      strings.TrimSpace(in.CECO),
		Region:    strings.TrimSpace(in.Region),
		Territory: strings.TrimSpace(in.Territory),
	}
	if cfg.Name == "" || cfg.CECO == "" {
		return nil, fmt.Errorf("%w: nombre y CECO son obligatorios", domain.ErrInvalidInput)
	}
	if err := uc.store.UpsertBranchConfig(ctx, cfg); err != nil {
		uc.log.Error().Err(err).Str("manager_id", tenantID).Msg("upsert branch config")
		return nil, fmt.Errorf("upsert branch config: %w", err)
	}
	resp := toBranchResponse(cfg)
	return &resp, nil
}

// UpdateShifts upsert de los horarios del tenant. Cada turno exige fin posterior al inicio;
// sin slots de comida se usan los de por defecto.
func (uc *TenantConfigUseCase) UpdateShifts(ctx context.Context, actor Actor, in dto.ShiftConfigRequest) (*dto.ShiftConfigResponse, error) {
	tenantID, err := uc.tenant(ctx, actor)
	if err != nil {
		return nil, err
	}
	mat, err := toSchedule(in.Matutino)
	if err != nil {
		return nil, fmt.Errorf("MATUTINO: %w", err)
	}
	ves, err := toSchedule(in.Vespertino)
	if err != nil {
		return nil, fmt.Errorf("VESPERTINO: %w", err)
	}
	cfg := tenancy.WithLunchDefaults(entity.ShiftConfig{ManagerID: tenantID, Matutino: mat, Vespertino: ves})
	if err := uc.store.UpsertShiftConfig(ctx, cfg); err != nil {
		uc.log.Error().Err(err).Str("manager_id", tenantID).Msg("upsert shift config")
		return nil, fmt.Errorf("upsert shift config: %w", err)
	}
	resp := toShiftResponse(cfg)
	return &resp, nil
}

func toSchedule(in dto.ShiftScheduleDTO) (entity.ShiftSchedule, error) {
	if err := schedule.ValidateRange(in.Start, in.End); err != nil {
		return entity.ShiftSchedule{}, err
	}
	for _, slot := range in.Lunch {
		if _, err := schedule.ParseHHMM(slot); err != nil {
			return entity.ShiftSchedule{}, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
	}
	return entity.ShiftSchedule{Start: in.Start, End: in.End, Lunch: append([]string(nil), in.Lunch...)}, nil
}

// AddActivityType agrega una entrada al catálogo. Un nombre repetido no inserta nada y
// devuelve la entrada existente con created=false.
func (uc *TenantConfigUseCase) AddActivityType(ctx context.Context, actor Actor, in dto.ActivityDefinitionRequest) (*dto.ActivityDefinitionResponse, bool, error) {
	tenantID, err := uc.tenant(ctx, actor)
	if err != nil {
		return nil, false, err
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, false, fmt.Errorf("%w: nombre vacío", domain.ErrInvalidInput)
	}
	def := entity.ActivityDefinition{ID: uuid.New().String(), ManagerID: tenantID, Name: name}
	created, err := uc.store.AddActivityDefinition(ctx, def)
	if err != nil {
		uc.log.Error().Err(err).Str("manager_id", tenantID).Str("name", name).Msg("add activity type")
		return nil, false, fmt.Errorf("add activity type: %w", err)
	}
	if !created {
		snap, err := uc.store.FetchTenantData(ctx, []string{tenantID})
		if err != nil {
			return nil, false, err
		}
		for _, d := range snap.ActivityDefinitions {
			if d.Name == name {
				def = d
				break
			}
		}
	}
	resp := toDefinitionResponse(def)
	return &resp, created, nil
}

// RemoveActivityType quita el nombre del catálogo. Las actividades ya agendadas conservan su descripción.
func (uc *TenantConfigUseCase) RemoveActivityType(ctx context.Context, actor Actor, name string) error {
	tenantID, err := uc.tenant(ctx, actor)
	if err != nil {
		return err
	}
	if err := uc.store.RemoveActivityDefinition(ctx, tenantID, name); err != nil {
		uc.log.Error().Err(err).Str("manager_id", tenantID).Str("name", name).Msg("remove activity type")
		return fmt.Errorf("remove activity type: %w", err)
	}
	return nil
}

// AddContact agrega un contacto de emergencia.
func (uc *TenantConfigUseCase) AddContact(ctx context.Context, actor Actor, in dto.EmergencyContactRequest) (*dto.EmergencyContactResponse, error) {
	tenantID, err := uc.tenant(ctx, actor)
	if err != nil {
		return nil, err
	}
	c := entity.EmergencyContact{
		ID:        uuid.New().String(),
		ManagerID: tenantID,
		Name:      strings.TrimSpace(in.Name),
		Phone:     strings.TrimSpace(in.Phone),
	}
	if c.Name == "" || c.Phone == "" {
		return nil, fmt.Errorf("%w: nombre y teléfono son obligatorios", domain.ErrInvalidInput)
	}
	if err := uc.store.AddEmergencyContact(ctx, c); err != nil {
		uc.log.Error().Err(err).Str("manager_id", tenantID).Msg("add contact")
		return nil, fmt.Errorf("add contact: %w", err)
	}
	resp := toContactResponse(c)
	return &resp, nil
}

// RemoveContact quita un contacto del tenant.
func (uc *TenantConfigUseCase) RemoveContact(ctx context.Context, actor Actor, id string) error {
	_, v, err := staffView(ctx, uc.store, actor)
	if err != nil {
		return err
	}
	found := false
	for _, c := range v.EmergencyContacts() {
		if c.ID == id {
			found = true
			break
		}
	}
	if !found {
		return domain.ErrNotFound
	}
	if err := uc.store.RemoveEmergencyContact(ctx, v.TenantID(), id); err != nil {
		uc.log.Error().Err(err).Str("contact_id", id).Msg("remove contact")
		return fmt.Errorf("remove contact: %w", err)
	}
	return nil
}

// tenant gerente o administrador con tenant seleccionado existente.
func (uc *TenantConfigUseCase) tenant(ctx context.Context, actor Actor) (string, error) {
	_, v, err := staffView(ctx, uc.store, actor)
	if err != nil {
		return "", err
	}
	return v.TenantID(), nil
}
