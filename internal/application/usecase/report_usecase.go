package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/gestor-sucursal/internal/application/ports"
	"github.com/jhoicas/gestor-sucursal/internal/domain"
	"github.com/jhoicas/gestor-sucursal/internal/domain/repository"
	"github.com/jhoicas/gestor-sucursal/internal/domain/schedule"
	"github.com/jhoicas/gestor-sucursal/pkg/clock"
)

// DayNames nombres de los días en la convención de la agenda (0 = domingo).
var DayNames = [7]string{"Domingo", "Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado"}

// ReportUseCase reportes imprimibles de la sucursal.
type ReportUseCase struct {
	store repository.Store
	clock clock.Clock
	pdf   ports.SchedulePDFGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(store repository.Store, clk clock.Clock, pdf ports.SchedulePDFGenerator) *ReportUseCase {
	return &ReportUseCase{store: store, clock: clk, pdf: pdf}
}

// DailySchedule PDF con la agenda del día (hoy si day es nil) de cada colaborador del tenant.
func (uc *ReportUseCase) DailySchedule(ctx context.Context, actor Actor, day *int) ([]byte, error) {
	_, v, err := staffView(ctx, uc.store, actor)
	if err != nil {
		return nil, err
	}
	now := uc.clock.Now()
	d := schedule.Weekday(now)
	if day != nil {
		if *day < 0 || *day > 6 {
			return nil, fmt.Errorf("%w: día fuera de rango", domain.ErrInvalidInput)
		}
		d = *day
	}
	branch := v.BranchConfig()
	data := ports.DailySchedule{
		BranchName:  branch.Name,
		CECO:        branch.CECO,
		Region:      branch.Region,
		DayName:     DayNames[d],
		GeneratedAt: now.Format("02/01/2006 15:04"),
	}
	shifts := v.ShiftConfig()
	for _, c := range v.VisibleCollaborators() {
		cs := ports.CollaboratorSchedule{Name: c.Name}
		if c.Profile != nil {
			cs.RoleTitle = c.Profile.RoleTitle
			cs.Shift = string(c.Profile.Shift)
			cs.AtLunch = shifts.For(c.Profile.Shift).Lunch
		}
		for _, a := range todayOf(v, c.ID, d) {
			status := "Pendiente"
			if a.Completed {
				status = "Completada"
			}
			_, end := schedule.Bounds(a)
			cs.Rows = append(cs.Rows, ports.ScheduleRow{
				Time:        a.Time,
				EndTime:     schedule.FormatHHMM(end),
				Description: a.Description,
				Status:      status,
			})
		}
		data.Collaborators = append(data.Collaborators, cs)
	}
	return uc.pdf.GenerateDailySchedule(ctx, data)
}
