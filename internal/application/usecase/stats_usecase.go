package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestor-sucursal/internal/application/dto"
	"github.com/jhoicas/gestor-sucursal/internal/application/ports"
	"github.com/jhoicas/gestor-sucursal/internal/domain"
	"github.com/jhoicas/gestor-sucursal/internal/domain/entity"
	"github.com/jhoicas/gestor-sucursal/internal/domain/repository"
	"github.com/jhoicas/gestor-sucursal/internal/domain/schedule"
	"github.com/jhoicas/gestor-sucursal/pkg/clock"
)

// NotAvailable valor de "más ejecutada"/"mejor ejecutada" sin actividades.
const NotAvailable = "N/A"

// StatsUseCase rendimiento del equipo por rango.
type StatsUseCase struct {
	store    repository.Store
	clock    clock.Clock
	exporter ports.StatsExporter
}

// NewStatsUseCase construye el caso de uso.
func NewStatsUseCase(store repository.Store, clk clock.Clock, exporter ports.StatsExporter) *StatsUseCase {
	return &StatsUseCase{store: store, clock: clk, exporter: exporter}
}

// Stats por colaborador visible: total, completadas, porcentaje (redondeo half-up),
// descripción más ejecutada y mejor ejecutada. DAY = día de hoy; WEEK = toda la agenda semanal.
func (uc *StatsUseCase) Stats(ctx context.Context, actor Actor, q dto.StatsQuery) (*dto.StatsResponse, error) {
	v, err := view(ctx, uc.store, actor)
	if err != nil {
		return nil, err
	}
	if err := requireStaff(v.Principal()); err != nil {
		return nil, err
	}
	rng := q.Range
	if rng == "" {
		rng = dto.RangeDay
	}
	if rng != dto.RangeDay && rng != dto.RangeWeek {
		return nil, fmt.Errorf("%w: rango %q", domain.ErrInvalidInput, q.Range)
	}
	day := schedule.Weekday(uc.clock.Now())

	out := &dto.StatsResponse{Range: rng, Day: day, Collaborators: []dto.CollaboratorStats{}}
	for _, c := range v.VisibleCollaborators() {
		acts := v.ActivitiesOf(c.ID)
		if rng == dto.RangeDay {
			acts = schedule.OnDay(acts, day)
		}
		st := collaboratorStats(c, acts)
		out.Collaborators = append(out.Collaborators, st)
		out.GlobalTotal += st.Total
		out.GlobalCompleted += st.Completed
	}
	out.GlobalPercentage = Percentage(out.GlobalCompleted, out.GlobalTotal)
	return out, nil
}

// Export estadísticas como xlsx.
func (uc *StatsUseCase) Export(ctx context.Context, actor Actor, q dto.StatsQuery) ([]byte, error) {
	if uc.exporter == nil {
		return nil, fmt.Errorf("%w: exportación no disponible", domain.ErrInvalidInput)
	}
	st, err := uc.Stats(ctx, actor, q)
	if err != nil {
		return nil, err
	}
	sheet := ports.StatsSheet{
		Title:   "Rendimiento " + st.Range,
		Headers: []string{"Colaborador", "Puesto", "Total", "Completadas", "% Cumplimiento", "Más ejecutada", "Mejor ejecutada"},
		Totals:  []any{"Global", "", st.GlobalTotal, st.GlobalCompleted, st.GlobalPercentage, "", ""},
	}
	for _, c := range st.Collaborators {
		sheet.Rows = append(sheet.Rows, []any{c.Name, c.RoleTitle, c.Total, c.Completed, c.Percentage, c.MostExecuted, c.BestExecuted})
	}
	return uc.exporter.WriteStats(sheet)
}

// Percentage completed/total*100 redondeado half-up; 0 sin total.
func Percentage(completed, total int) int64 {
	if total <= 0 {
		return 0
	}
	return decimal.NewFromInt(int64(completed)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(total))).
		Round(0).
		IntPart()
}

type typeCount struct {
	total, completed int
}

func collaboratorStats(c *entity.Principal, acts []*entity.Activity) dto.CollaboratorStats {
	st := dto.CollaboratorStats{
		CollaboratorID: c.ID,
		Name:           c.Name,
		MostExecuted:   NotAvailable,
		BestExecuted:   NotAvailable,
	}
	if c.Profile != nil {
		st.RoleTitle = c.Profile.RoleTitle
	}
	byType := make(map[string]*typeCount)
	for _, a := range acts {
		st.Total++
		tc := byType[a.Description]
		if tc == nil {
			tc = &typeCount{}
			byType[a.Description] = tc
		}
		tc.total++
		if a.Completed {
			st.Completed++
			tc.completed++
		}
	}
	st.Percentage = Percentage(st.Completed, st.Total)

	var most, best string
	for name, tc := range byType {
		if most == "" || tc.total > byType[most].total || (tc.total == byType[most].total && name < most) {
			most = name
		}
		if best == "" || betterRate(name, tc, best, byType[best]) {
			best = name
		}
	}
	if most != "" {
		st.MostExecuted = most
		st.BestExecuted = best
	}
	return st
}

// betterRate mayor tasa de cumplimiento; empate por volumen y luego por nombre.
func betterRate(name string, a *typeCount, otherName string, b *typeCount) bool {
	left, right := a.completed*b.total, b.completed*a.total
	if left != right {
		return left > right
	}
	if a.total != b.total {
		return a.total > b.total
	}
	return name < otherName
}
