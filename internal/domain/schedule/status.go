package schedule

import (
	"fmt"
	"sort"
	"time"

	"github.com/jhoicas/gestor-sucursal/internal/domain"
	"github.com/jhoicas/gestor-sucursal/internal/domain/entity"
)

// Status estado de una actividad respecto a un instante de referencia.
type Status string

const (
	StatusCompleted Status = "COMPLETED"
	StatusCurrent   Status = "CURRENT"
	StatusLate      Status = "LATE"
	StatusUpcoming  Status = "UPCOMING"
)

// Bounds minutos de inicio y fin de la actividad; fin por defecto inicio + 30.
func Bounds(a *entity.Activity) (start, end int) {
	start = MinutesOf(a.Time)
	if a.EndTime != "" {
		return start, MinutesOf(a.EndTime)
	}
	return start, start + SlotMinutes
}

// Classify estado de la actividad respecto a now. Solo mira la hora de pared:
// el llamador debe filtrar antes las actividades del día de now.
func Classify(a *entity.Activity, now time.Time) Status {
	if a.Completed {
		return StatusCompleted
	}
	start, end := Bounds(a)
	m := MinutesSinceMidnight(now)
	switch {
	case m >= start && m < end:
		return StatusCurrent
	case m >= end:
		return StatusLate
	default:
		return StatusUpcoming
	}
}

// ValidateRange exige horas bien formadas y fin estrictamente posterior al inicio.
func ValidateRange(start, end string) error {
	s, err := ParseHHMM(start)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	e, err := ParseHHMM(end)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if e <= s {
		return domain.ErrInvalidTimeRange
	}
	return nil
}

// SortByStart ordena por hora de inicio (estable).
func SortByStart(list []*entity.Activity) {
	sort.SliceStable(list, func(i, j int) bool {
		return MinutesOf(list[i].Time) < MinutesOf(list[j].Time)
	})
}

// OnDay filtra las actividades del día indicado.
func OnDay(list []*entity.Activity, day int) []*entity.Activity {
	out := make([]*entity.Activity, 0, len(list))
	for _, a := range list {
		if a.Day == day {
			out = append(out, a)
		}
	}
	return out
}

// CurrentOrLate primera actividad del día (en orden de inicio) que está en curso o atrasada.
func CurrentOrLate(today []*entity.Activity, now time.Time) *entity.Activity {
	for _, a := range today {
		if st := Classify(a, now); st == StatusCurrent || st == StatusLate {
			return a
		}
	}
	return nil
}

// Next primera actividad que empieza estrictamente después del slot actual.
func Next(today []*entity.Activity, now time.Time) *entity.Activity {
	slot := MinutesOf(CurrentSlot(now))
	var next *entity.Activity
	for _, a := range today {
		if MinutesOf(a.Time) <= slot {
			continue
		}
		if next == nil || MinutesOf(a.Time) < MinutesOf(next.Time) {
			next = a
		}
	}
	return next
}
