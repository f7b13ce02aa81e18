package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestor-sucursal/internal/application/dto"
	"github.com/jhoicas/gestor-sucursal/internal/application/ports"
	"github.com/jhoicas/gestor-sucursal/internal/application/usecase"
	"github.com/jhoicas/gestor-sucursal/internal/domain"
)

type capturePDF struct{ got ports.DailySchedule }

func (c *capturePDF) GenerateDailySchedule(_ context.Context, data ports.DailySchedule) ([]byte, error) {
	c.got = data
	return []byte("%PDF-fake"), nil
}

type captureSheet struct{ got ports.StatsSheet }

func (c *captureSheet) WriteStats(sheet ports.StatsSheet) ([]byte, error) {
	c.got = sheet
	return []byte("xlsx"), nil
}

func TestDailySchedule(t *testing.T) {
	e := newEnv(t)
	pdf := &capturePDF{}
	uc := usecase.NewReportUseCase(e.store, e.clock, pdf)

	out, err := uc.DailySchedule(context.Background(), manager, nil)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-fake", string(out))
	assert.Equal(t, "Lunes", pdf.got.DayName)
	assert.Equal(t, "MX-12345", pdf.got.CECO)
	require.Len(t, pdf.got.Collaborators, 4)

	var anaRows []ports.ScheduleRow
	for _, c := range pdf.got.Collaborators {
		if c.Name == "Ana García" {
			anaRows = c.Rows
			assert.Equal(t, []string{"13:00", "13:30"}, c.AtLunch)
		}
	}
	require.Len(t, anaRows, 3)
	assert.Equal(t, "08:30", anaRows[0].Time)
	assert.Equal(t, "09:00", anaRows[0].EndTime)
	assert.Equal(t, "Completada", anaRows[0].Status)
	assert.Equal(t, "Pendiente", anaRows[2].Status)
}

func TestDailySchedule_Permisos(t *testing.T) {
	e := newEnv(t)
	uc := usecase.NewReportUseCase(e.store, e.clock, &capturePDF{})

	_, err := uc.DailySchedule(context.Background(), ana, nil)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.DailySchedule(context.Background(), admin, nil)
	assert.ErrorIs(t, err, domain.ErrTenantRequired)

	_, err = uc.DailySchedule(context.Background(), manager, intp(9))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStatsExport(t *testing.T) {
	e := newEnv(t)
	sheet := &captureSheet{}
	uc := usecase.NewStatsUseCase(e.store, e.clock, sheet)

	out, err := uc.Export(context.Background(), manager, dto.StatsQuery{Range: dto.RangeWeek})
	require.NoError(t, err)
	assert.Equal(t, "xlsx", string(out))
	assert.Equal(t, "Rendimiento WEEK", sheet.got.Title)
	assert.Len(t, sheet.got.Rows, 4)
	assert.Equal(t, int64(60), sheet.got.Totals[4])
}
