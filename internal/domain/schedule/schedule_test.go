package schedule_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestor-sucursal/internal/domain"
	"github.com/jhoicas/gestor-sucursal/internal/domain/entity"
	"github.com/jhoicas/gestor-sucursal/internal/domain/schedule"
)

func at(hh, mm int) time.Time {
	return time.Date(2026, time.October, 19, hh, mm, 0, 0, time.UTC)
}

func TestClassify_VentanaMediaHora(t *testing.T) {
	a := &entity.Activity{Time: "09:00", EndTime: "09:30"}

	cases := []struct {
		name string
		now  time.Time
		want schedule.Status
	}{
		{"antes del inicio", at(8, 59), schedule.StatusUpcoming},
		{"en el inicio", at(9, 0), schedule.StatusCurrent},
		{"en curso", at(9, 15), schedule.StatusCurrent},
		{"fin exclusivo", at(9, 30), schedule.StatusLate},
		{"atrasada", at(9, 31), schedule.StatusLate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, schedule.Classify(a, tc.now))
		})
	}
}

func TestClassify_CompletadaIgnoraHora(t *testing.T) {
	a := &entity.Activity{Time: "09:00", EndTime: "09:30", Completed: true}
	for _, now := range []time.Time{at(0, 0), at(9, 10), at(23, 59)} {
		assert.Equal(t, schedule.StatusCompleted, schedule.Classify(a, now))
	}
}

func TestClassify_SinHoraFinUsaTreintaMinutos(t *testing.T) {
	a := &entity.Activity{Time: "12:00"}
	assert.Equal(t, schedule.StatusCurrent, schedule.Classify(a, at(12, 29)))
	assert.Equal(t, schedule.StatusLate, schedule.Classify(a, at(12, 30)))
}

func TestCurrentSlot(t *testing.T) {
	assert.Equal(t, "10:00", schedule.CurrentSlot(at(10, 15)))
	assert.Equal(t, "10:30", schedule.CurrentSlot(at(10, 30)))
	assert.Equal(t, "10:30", schedule.CurrentSlot(at(10, 59)))
	assert.Equal(t, "00:00", schedule.CurrentSlot(at(0, 1)))
}

func TestMinutesOf(t *testing.T) {
	assert.Equal(t, 0, schedule.MinutesOf(""))
	assert.Equal(t, 510, schedule.MinutesOf("08:30"))
	assert.Equal(t, 1439, schedule.MinutesOf("23:59"))
	assert.Equal(t, 0, schedule.MinutesOf("basura"))

	_, err := schedule.ParseHHMM("24:00")
	assert.Error(t, err)
	_, err = schedule.ParseHHMM("8:5")
	assert.Error(t, err)
	m, err := schedule.ParseHHMM("8:05")
	require.NoError(t, err)
	assert.Equal(t, 485, m)
}

func TestValidateRange(t *testing.T) {
	assert.NoError(t, schedule.ValidateRange("08:00", "08:30"))
	assert.ErrorIs(t, schedule.ValidateRange("08:30", "08:30"), domain.ErrInvalidTimeRange)
	assert.ErrorIs(t, schedule.ValidateRange("09:00", "08:30"), domain.ErrInvalidTimeRange)
	assert.ErrorIs(t, schedule.ValidateRange("xx", "08:30"), domain.ErrInvalidInput)
}

func TestSlots(t *testing.T) {
	assert.Equal(t, []string{"08:00", "08:30", "09:00"}, schedule.Slots("08:00", "09:00"))
	assert.Nil(t, schedule.Slots("10:00", "09:00"))

	all := schedule.DefaultSlots()
	assert.Equal(t, "08:00", all[0])
	assert.Equal(t, "21:00", all[len(all)-1])
	assert.Len(t, all, 27, "08:00..21:00 cada 30 minutos")
}

func defaultShiftConfig() entity.ShiftConfig {
	return entity.ShiftConfig{
		Matutino:   entity.ShiftSchedule{Start: "08:00", End: "15:00", Lunch: schedule.DefaultLunchMatutino},
		Vespertino: entity.ShiftSchedule{Start: "12:00", End: "20:00", Lunch: schedule.DefaultLunchVespertino},
	}
}

func TestIsLunchSlot(t *testing.T) {
	cfg := defaultShiftConfig()
	assert.True(t, schedule.IsLunchSlot("13:00", entity.ShiftMatutino, cfg))
	assert.True(t, schedule.IsLunchSlot("13:30", entity.ShiftMatutino, cfg))
	assert.False(t, schedule.IsLunchSlot("16:00", entity.ShiftMatutino, cfg))
	assert.True(t, schedule.IsLunchSlot("16:30", entity.ShiftVespertino, cfg))
	assert.False(t, schedule.IsLunchSlot("13:00", entity.Shift("NOCTURNO"), cfg))

	cfg.Matutino.Lunch = []string{"14:00"}
	assert.True(t, schedule.IsLunchSlot("14:00", entity.ShiftMatutino, cfg), "la ventana sale de la configuración")
	assert.False(t, schedule.IsLunchSlot("13:00", entity.ShiftMatutino, cfg))
}

func TestShiftPhase(t *testing.T) {
	cfg := defaultShiftConfig()
	assert.Equal(t, schedule.PhaseOffHours, schedule.ShiftPhase(schedule.MinutesOf("07:30"), cfg))
	assert.Equal(t, schedule.PhaseMatutino, schedule.ShiftPhase(schedule.MinutesOf("10:00"), cfg))
	assert.Equal(t, schedule.PhaseOverlap, schedule.ShiftPhase(schedule.MinutesOf("12:00"), cfg))
	assert.Equal(t, schedule.PhaseOverlap, schedule.ShiftPhase(schedule.MinutesOf("14:30"), cfg))
	assert.Equal(t, schedule.PhaseVespertino, schedule.ShiftPhase(schedule.MinutesOf("15:00"), cfg))
	assert.Equal(t, schedule.PhaseOffHours, schedule.ShiftPhase(schedule.MinutesOf("20:00"), cfg))
}

func TestCurrentOrLateYNext(t *testing.T) {
	today := []*entity.Activity{
		{ID: "a", Time: "08:30", EndTime: "09:00", Completed: true},
		{ID: "b", Time: "09:30", EndTime: "10:00"},
		{ID: "c", Time: "10:00", EndTime: "11:00"},
		{ID: "d", Time: "12:00", EndTime: "12:30"},
		{ID: "e", Time: "11:00", EndTime: "11:30"},
	}
	now := at(10, 15)
	cur := schedule.CurrentOrLate(today, now)
	require.NotNil(t, cur)
	assert.Equal(t, "b", cur.ID, "la atrasada anterior aparece primero")

	next := schedule.Next(today, now)
	require.NotNil(t, next)
	assert.Equal(t, "e", next.ID)

	assert.Nil(t, schedule.Next(today, at(12, 0)))
}

func TestSortByStartYOnDay(t *testing.T) {
	list := []*entity.Activity{
		{ID: "x", Day: 1, Time: "10:00"},
		{ID: "y", Day: 2, Time: "08:00"},
		{ID: "z", Day: 1, Time: "08:00"},
	}
	mon := schedule.OnDay(list, 1)
	schedule.SortByStart(mon)
	require.Len(t, mon, 2)
	assert.Equal(t, "z", mon[0].ID)
	assert.Equal(t, "x", mon[1].ID)
	assert.Equal(t, 1, schedule.Weekday(at(0, 0)))
}
