package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/jhoicas/gestor-sucursal/internal/application/dto"
	"github.com/jhoicas/gestor-sucursal/internal/application/ports"
	"github.com/jhoicas/gestor-sucursal/internal/application/tenancy"
	"github.com/jhoicas/gestor-sucursal/internal/domain"
	"github.com/jhoicas/gestor-sucursal/internal/domain/entity"
	"github.com/jhoicas/gestor-sucursal/internal/domain/repository"
	"github.com/jhoicas/gestor-sucursal/internal/domain/schedule"
	"github.com/jhoicas/gestor-sucursal/internal/observability"
	"github.com/jhoicas/gestor-sucursal/pkg/clock"
	"github.com/jhoicas/gestor-sucursal/pkg/logger"
)

// ActivityUseCase planeación y seguimiento de la agenda.
type ActivityUseCase struct {
	store  repository.Store
	clock  clock.Clock
	events ports.EventPublisher
	log    *logger.Logger
}

// NewActivityUseCase construye el caso de uso. events nil descarta los eventos.
func NewActivityUseCase(store repository.Store, clk clock.Clock, events ports.EventPublisher, log *logger.Logger) *ActivityUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &ActivityUseCase{store: store, clock: clk, events: events, log: log.Component("activities")}
}

// List actividades visibles, ordenadas por día y hora de inicio.
func (uc *ActivityUseCase) List(ctx context.Context, actor Actor, f dto.ActivityFilter) ([]dto.ActivityResponse, error) {
	v, err := view(ctx, uc.store, actor)
	if err != nil {
		return nil, err
	}
	var list []*entity.Activity
	for _, a := range v.VisibleActivities() {
		if f.CollaboratorID != "" && a.CollaboratorID != f.CollaboratorID {
			continue
		}
		if f.Day != nil && a.Day != *f.Day {
			continue
		}
		list = append(list, a)
	}
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].Day != list[j].Day {
			return list[i].Day < list[j].Day
		}
		return schedule.MinutesOf(list[i].Time) < schedule.MinutesOf(list[j].Time)
	})
	return toActivityList(list, uc.clock.Now()), nil
}

// Create agenda una actividad para un colaborador visible. La descripción debe estar en el
// catálogo de su tenant y la hora de fin debe ser posterior a la de inicio.
func (uc *ActivityUseCase) Create(ctx context.Context, actor Actor, in dto.CreateActivityRequest) (*dto.ActivityResponse, error) {
	p, v, err := staffView(ctx, uc.store, actor)
	if err != nil {
		return nil, err
	}
	a := &entity.Activity{
		ID:             uuid.New().String(),
		CollaboratorID: in.CollaboratorID,
		Day:            in.Day,
		Time:           in.Time,
		EndTime:        in.EndTime,
		Description:    in.Description,
	}
	owner, err := validateActivity(v, a)
	if err != nil {
		return nil, err
	}
	now := uc.clock.Now()
	a.CreatedAt, a.UpdatedAt = now, now
	if err := uc.store.CreateActivity(ctx, a); err != nil {
		uc.log.Error().Err(err).Str("collaborator_id", a.CollaboratorID).Msg("create activity")
		return nil, fmt.Errorf("create activity: %w", err)
	}
	uc.emit(ctx, ports.ActivityCreated, a, owner.ManagerID(), p.ID)
	return toActivityResponse(a, now), nil
}

// Update edita campos de una actividad; las reglas de Create se aplican al resultado combinado.
func (uc *ActivityUseCase) Update(ctx context.Context, actor Actor, id string, in dto.UpdateActivityRequest) (*dto.ActivityResponse, error) {
	p, v, err := staffView(ctx, uc.store, actor)
	if err != nil {
		return nil, err
	}
	cur := v.Activity(id)
	if cur == nil {
		return nil, domain.ErrNotFound
	}
	a := cur.Clone()
	if in.CollaboratorID != nil {
		a.CollaboratorID = *in.CollaboratorID
	}
	if in.Day != nil {
		a.Day = *in.Day
	}
	if in.Time != nil {
		a.Time = *in.Time
	}
	if in.EndTime != nil {
		a.EndTime = *in.EndTime
	}
	if in.Description != nil {
		a.Description = *in.Description
	}
	if a.EndTime == "" {
		_, e := schedule.Bounds(a)
		a.EndTime = schedule.FormatHHMM(e)
	}
	owner, err := validateActivity(v, a)
	if err != nil {
		return nil, err
	}
	now := uc.clock.Now()
	a.UpdatedAt = now
	if err := uc.store.UpdateActivity(ctx, a); err != nil {
		uc.log.Error().Err(err).Str("activity_id", id).Msg("update activity")
		return nil, fmt.Errorf("update activity: %w", err)
	}
	uc.emit(ctx, ports.ActivityUpdated, a, owner.ManagerID(), p.ID)
	return toActivityResponse(a, now), nil
}

// SetCompletion marca o reabre una actividad. El colaborador solo puede tocar las suyas;
// gerente y administrador las visibles. completedAt se toma del reloj del sistema.
func (uc *ActivityUseCase) SetCompletion(ctx context.Context, actor Actor, id string, completed bool) (*dto.ActivityResponse, error) {
	p, err := principal(ctx, uc.store, actor)
	if err != nil {
		return nil, err
	}
	if p.IsAdmin() {
		if _, err := tenancy.Require(p, actor.Tenant); err != nil {
			return nil, err
		}
	}
	v, err := tenancy.Load(ctx, uc.store, p, actor.Tenant)
	if err != nil {
		return nil, err
	}
	cur := v.Activity(id)
	if cur == nil {
		return nil, domain.ErrNotFound
	}
	if p.IsCollaborator() && cur.CollaboratorID != p.ID {
		return nil, domain.ErrForbidden
	}
	now := uc.clock.Now()
	a := cur.Clone()
	if !a.SetCompleted(completed, now) {
		return toActivityResponse(a, now), nil
	}
	a.UpdatedAt = now
	if err := uc.store.UpdateActivity(ctx, a); err != nil {
		uc.log.Error().Err(err).Str("activity_id", id).Bool("completed", completed).Msg("toggle activity")
		return nil, fmt.Errorf("toggle activity: %w", err)
	}
	evt := ports.ActivityReopened
	if completed {
		evt = ports.ActivityCompleted
		observability.RecordActivityCompleted(now)
	}
	managerID := ""
	if owner := v.Collaborator(a.CollaboratorID); owner != nil {
		managerID = owner.ManagerID()
	}
	uc.emit(ctx, evt, a, managerID, p.ID)
	return toActivityResponse(a, now), nil
}

// Delete elimina solo la actividad indicada.
func (uc *ActivityUseCase) Delete(ctx context.Context, actor Actor, id string) error {
	p, v, err := staffView(ctx, uc.store, actor)
	if err != nil {
		return err
	}
	a := v.Activity(id)
	if a == nil {
		return domain.ErrNotFound
	}
	if err := uc.store.DeleteActivity(ctx, id); err != nil {
		uc.log.Error().Err(err).Str("activity_id", id).Msg("delete activity")
		return fmt.Errorf("delete activity: %w", err)
	}
	uc.emit(ctx, ports.ActivityDeleted, a, v.TenantID(), p.ID)
	return nil
}

// validateActivity colaborador visible, día válido, rango de horas y catálogo del tenant.
func validateActivity(v *tenancy.View, a *entity.Activity) (*entity.Principal, error) {
	owner := v.Collaborator(a.CollaboratorID)
	if owner == nil {
		return nil, fmt.Errorf("colaborador %s: %w", a.CollaboratorID, domain.ErrNotFound)
	}
	if a.Day < 0 || a.Day > 6 {
		return nil, fmt.Errorf("%w: día fuera de rango", domain.ErrInvalidInput)
	}
	if err := schedule.ValidateRange(a.Time, a.EndTime); err != nil {
		return nil, err
	}
	if !v.InCatalog(owner.ManagerID(), a.Description) {
		return nil, domain.ErrActivityTypeNotInCatalog
	}
	return owner, nil
}

// emit publica el evento; un fallo se registra y la operación sigue siendo exitosa.
func (uc *ActivityUseCase) emit(ctx context.Context, eventType string, a *entity.Activity, managerID, actorID string) {
	observability.RecordActivityMutation(eventType)
	if uc.events == nil {
		return
	}
	evt := ports.ActivityEvent{
		Type:           eventType,
		ActivityID:     a.ID,
		CollaboratorID: a.CollaboratorID,
		ManagerID:      managerID,
		ActorID:        actorID,
		Day:            a.Day,
		Time:           a.Time,
		EndTime:        a.EndTime,
		Description:    a.Description,
		Completed:      a.Completed,
		OccurredAt:     uc.clock.Now(),
	}
	if err := uc.events.Publish(ctx, evt); err != nil {
		observability.RecordPublishFailure(eventType)
		uc.log.Warn().Err(err).Str("event_type", eventType).Str("activity_id", a.ID).Msg("publish event")
	}
}
