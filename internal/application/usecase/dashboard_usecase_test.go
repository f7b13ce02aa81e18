package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestor-sucursal/internal/application/dto"
	"github.com/jhoicas/gestor-sucursal/internal/application/usecase"
	"github.com/jhoicas/gestor-sucursal/internal/domain"
	"github.com/jhoicas/gestor-sucursal/internal/infrastructure/demo"
)

func rowOf(t *testing.T, board *dto.BoardResponse, id string) dto.BoardRow {
	t.Helper()
	for _, r := range board.Rows {
		if r.Collaborator.ID == id {
			return r
		}
	}
	t.Fatalf("colaborador %s no está en el tablero", id)
	return dto.BoardRow{}
}

func TestBoard(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	board, err := e.dashboard().Board(ctx, manager)
	require.NoError(t, err)
	assert.Equal(t, 1, board.Day)
	assert.Equal(t, "09:30", board.Slot)
	assert.Equal(t, "MATUTINO", board.Phase)
	require.NotNil(t, board.Branch)
	assert.Equal(t, "MX-12345", board.Branch.CECO)
	require.Len(t, board.Rows, 4)

	anaRow := rowOf(t, board, demo.ID("EMP001"))
	require.NotNil(t, anaRow.Current)
	assert.Equal(t, "Revisión de Bóveda", anaRow.Current.Description)
	assert.Equal(t, "CURRENT", anaRow.Current.Status)
	assert.Nil(t, anaRow.Next)

	mariaRow := rowOf(t, board, demo.ID("EMP003"))
	assert.Nil(t, mariaRow.Current)
	require.NotNil(t, mariaRow.Next)
	assert.Equal(t, "12:00", mariaRow.Next.Time)

	_, err = e.dashboard().Board(ctx, ana)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestBoard_AdministradorSinTenant(t *testing.T) {
	e := newEnv(t)
	board, err := e.dashboard().Board(context.Background(), admin)
	require.NoError(t, err)
	assert.Nil(t, board.Branch)
	assert.Empty(t, board.Phase)
	assert.Len(t, board.Rows, 4)
}

func TestBoard_HoraDeComidaYTraslape(t *testing.T) {
	e := newEnv(t)
	_, err := e.clock.Travel(1, "13:10")
	require.NoError(t, err)

	board, err := e.dashboard().Board(context.Background(), manager)
	require.NoError(t, err)
	assert.Equal(t, "TRASLAPE", board.Phase)
	assert.True(t, rowOf(t, board, demo.ID("EMP001")).AtLunch)
	assert.False(t, rowOf(t, board, demo.ID("EMP003")).AtLunch)

	_, err = e.clock.Travel(1, "16:00")
	require.NoError(t, err)
	board, err = e.dashboard().Board(context.Background(), manager)
	require.NoError(t, err)
	assert.Equal(t, "VESPERTINO", board.Phase)
	assert.True(t, rowOf(t, board, demo.ID("EMP003")).AtLunch)
}

func TestAgenda(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	agenda, err := e.dashboard().Agenda(ctx, ana, nil)
	require.NoError(t, err)
	assert.True(t, agenda.IsToday)
	require.NotNil(t, agenda.Current)
	assert.Equal(t, "09:30", agenda.Current.Time)
	assert.Len(t, agenda.Completed, 2)
	assert.Empty(t, agenda.Upcoming)

	agenda, err = e.dashboard().Agenda(ctx, ana, intp(2))
	require.NoError(t, err)
	assert.False(t, agenda.IsToday)
	assert.Nil(t, agenda.Current, "solo hay actividad actual en el día de hoy")

	_, err = e.dashboard().Agenda(ctx, manager, nil)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestTeam_SinElPropio(t *testing.T) {
	e := newEnv(t)
	team, err := e.dashboard().Team(context.Background(), carlos)
	require.NoError(t, err)
	require.Len(t, team.Members, 3)
	for _, m := range team.Members {
		assert.NotEqual(t, demo.ID("EMP002"), m.Collaborator.ID)
	}
}

func TestSlots(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	all, err := e.dashboard().Slots(ctx, manager, "")
	require.NoError(t, err)
	assert.Equal(t, "08:00", all.Slots[0])
	assert.Equal(t, "21:00", all.Slots[len(all.Slots)-1])

	mat, err := e.dashboard().Slots(ctx, manager, "MATUTINO")
	require.NoError(t, err)
	assert.Equal(t, "15:00", mat.Slots[len(mat.Slots)-1])
	assert.Equal(t, []string{"13:00", "13:30"}, mat.Lunch)

	_, err = e.dashboard().Slots(ctx, manager, "NOCTURNO")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStats(t *testing.T) {
	e := newEnv(t)
	uc := usecase.NewStatsUseCase(e.store, e.clock, nil)

	st, err := uc.Stats(context.Background(), manager, dto.StatsQuery{})
	require.NoError(t, err)
	assert.Equal(t, "DAY", st.Range)
	assert.Equal(t, 5, st.GlobalTotal)
	assert.Equal(t, 3, st.GlobalCompleted)
	assert.Equal(t, int64(60), st.GlobalPercentage)

	byID := map[string]dto.CollaboratorStats{}
	for _, c := range st.Collaborators {
		byID[c.CollaboratorID] = c
	}
	anaStats := byID[demo.ID("EMP001")]
	assert.Equal(t, int64(67), anaStats.Percentage)
	assert.Equal(t, "Apertura de Caja", anaStats.MostExecuted)
	assert.Equal(t, "Apertura de Caja", anaStats.BestExecuted)

	juan := byID[demo.ID("EMP004")]
	assert.Equal(t, int64(0), juan.Percentage)
	assert.Equal(t, usecase.NotAvailable, juan.MostExecuted)
	assert.Equal(t, usecase.NotAvailable, juan.BestExecuted)

	_, err = e.clock.Travel(2, "10:00")
	require.NoError(t, err)
	day, err := uc.Stats(context.Background(), manager, dto.StatsQuery{Range: "DAY"})
	require.NoError(t, err)
	assert.Zero(t, day.GlobalTotal)
	week, err := uc.Stats(context.Background(), manager, dto.StatsQuery{Range: "WEEK"})
	require.NoError(t, err)
	assert.Equal(t, 5, week.GlobalTotal)
}

func TestPercentage_HalfUp(t *testing.T) {
	assert.Equal(t, int64(13), usecase.Percentage(1, 8))
	assert.Equal(t, int64(67), usecase.Percentage(2, 3))
	assert.Equal(t, int64(33), usecase.Percentage(1, 3))
	assert.Equal(t, int64(0), usecase.Percentage(0, 0))
}

func TestClock_Travel(t *testing.T) {
	e := newEnv(t)
	uc := usecase.NewClockUseCase(e.store, e.clock, nil)

	out, err := uc.Travel(context.Background(), manager, dto.TravelRequest{Day: 3, Time: "14:45"})
	require.NoError(t, err)
	assert.Equal(t, 3, out.Day)
	assert.Equal(t, "14:30", out.Slot)
	assert.True(t, out.Simulated)

	_, err = uc.Travel(context.Background(), ana, dto.TravelRequest{Day: 3, Time: "14:45"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
