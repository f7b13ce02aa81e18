package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/gestor-sucursal/internal/application/dto"
	"github.com/jhoicas/gestor-sucursal/internal/application/tenancy"
	"github.com/jhoicas/gestor-sucursal/internal/domain"
	"github.com/jhoicas/gestor-sucursal/internal/domain/entity"
	"github.com/jhoicas/gestor-sucursal/internal/domain/repository"
	"github.com/jhoicas/gestor-sucursal/internal/domain/schedule"
	"github.com/jhoicas/gestor-sucursal/pkg/clock"
)

// DashboardUseCase vistas de lectura: tablero del gerente, agenda y equipo del colaborador.
type DashboardUseCase struct {
	store repository.Store
	clock clock.Clock
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(store repository.Store, clk clock.Clock) *DashboardUseCase {
	return &DashboardUseCase{store: store, clock: clk}
}

// Board estado en vivo de cada colaborador visible: actividad en curso o atrasada, la siguiente
// y si está en su hora de comida. Encabezado de sucursal y fase de turno solo con tenant resuelto.
func (uc *DashboardUseCase) Board(ctx context.Context, actor Actor) (*dto.BoardResponse, error) {
	v, err := view(ctx, uc.store, actor)
	if err != nil {
		return nil, err
	}
	if err := requireStaff(v.Principal()); err != nil {
		return nil, err
	}
	now := uc.clock.Now()
	day := schedule.Weekday(now)
	slot := schedule.CurrentSlot(now)

	out := &dto.BoardResponse{Now: now, Day: day, Slot: slot, Rows: []dto.BoardRow{}}
	if v.TenantID() != "" {
		branch := toBranchResponse(v.BranchConfig())
		out.Branch = &branch
		out.Phase = string(schedule.ShiftPhase(schedule.MinutesOf(slot), v.ShiftConfig()))
	}
	for _, c := range v.VisibleCollaborators() {
		today := todayOf(v, c.ID, day)
		out.Rows = append(out.Rows, dto.BoardRow{
			Collaborator: toCollaboratorResponse(c),
			Current:      toActivityResponse(schedule.CurrentOrLate(today, now), now),
			Next:         toActivityResponse(schedule.Next(today, now), now),
			AtLunch:      atLunch(v, c, slot),
		})
	}
	return out, nil
}

// Agenda actividades propias del día (hoy si day es nil) ordenadas por inicio. La actividad
// actual solo existe cuando el día consultado es hoy.
func (uc *DashboardUseCase) Agenda(ctx context.Context, actor Actor, day *int) (*dto.AgendaResponse, error) {
	v, err := view(ctx, uc.store, actor)
	if err != nil {
		return nil, err
	}
	p := v.Principal()
	if !p.IsCollaborator() {
		return nil, domain.ErrForbidden
	}
	now := uc.clock.Now()
	today := schedule.Weekday(now)
	d := today
	if day != nil {
		if *day < 0 || *day > 6 {
			return nil, fmt.Errorf("%w: día fuera de rango", domain.ErrInvalidInput)
		}
		d = *day
	}
	mine := todayOf(v, p.ID, d)

	out := &dto.AgendaResponse{Day: d, IsToday: d == today, Completed: []dto.ActivityResponse{}, Upcoming: []dto.ActivityResponse{}}
	var current *entity.Activity
	if out.IsToday {
		current = schedule.CurrentOrLate(mine, now)
		out.Current = toActivityResponse(current, now)
	}
	for _, a := range mine {
		switch {
		case a.Completed:
			out.Completed = append(out.Completed, *toActivityResponse(a, now))
		case a != current:
			out.Upcoming = append(out.Upcoming, *toActivityResponse(a, now))
		}
	}
	return out, nil
}

// Team compañeros del colaborador (sin él) con su actividad actual y hora de comida.
func (uc *DashboardUseCase) Team(ctx context.Context, actor Actor) (*dto.TeamResponse, error) {
	v, err := view(ctx, uc.store, actor)
	if err != nil {
		return nil, err
	}
	if !v.Principal().IsCollaborator() {
		return nil, domain.ErrForbidden
	}
	now := uc.clock.Now()
	day := schedule.Weekday(now)
	slot := schedule.CurrentSlot(now)
	out := &dto.TeamResponse{Slot: slot, Members: []dto.TeamMember{}}
	for _, c := range v.Teammates() {
		out.Members = append(out.Members, dto.TeamMember{
			Collaborator: toCollaboratorResponse(c),
			Current:      toActivityResponse(schedule.CurrentOrLate(todayOf(v, c.ID, day), now), now),
			AtLunch:      atLunch(v, c, slot),
		})
	}
	return out, nil
}

// Slots rejilla de planeación. Con turno, la del horario configurado del tenant y su comida;
// sin turno, la unión de las rejillas por defecto.
func (uc *DashboardUseCase) Slots(ctx context.Context, actor Actor, shift string) (*dto.SlotsResponse, error) {
	if shift == "" {
		return &dto.SlotsResponse{Slots: schedule.DefaultSlots()}, nil
	}
	s := entity.Shift(shift)
	if !s.Valid() {
		return nil, fmt.Errorf("%w: turno %q", domain.ErrInvalidInput, shift)
	}
	v, err := view(ctx, uc.store, actor)
	if err != nil {
		return nil, err
	}
	cfg := v.ShiftConfig().For(s)
	return &dto.SlotsResponse{Shift: shift, Slots: schedule.Slots(cfg.Start, cfg.End), Lunch: cfg.Lunch}, nil
}

func todayOf(v *tenancy.View, collaboratorID string, day int) []*entity.Activity {
	list := schedule.OnDay(v.ActivitiesOf(collaboratorID), day)
	schedule.SortByStart(list)
	return list
}

func atLunch(v *tenancy.View, c *entity.Principal, slot string) bool {
	if c.Profile == nil {
		return false
	}
	return schedule.IsLunchSlot(slot, c.Profile.Shift, v.ShiftConfigFor(c.ManagerID()))
}
