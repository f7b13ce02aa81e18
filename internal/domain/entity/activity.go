package entity

import "time"

// Activity tarea agendada para un colaborador en un día de la semana.
// Time y EndTime son horas de pared "HH:MM"; EndTime vacío equivale a Time + 30 min.
type Activity struct {
	ID             string
	CollaboratorID string
	Day            int // 0 = domingo … 6 = sábado
	Time           string
	EndTime        string
	Description    string
	Completed      bool
	CompletedAt    *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Clone copia la actividad, incluido el puntero CompletedAt.
func (a *Activity) Clone() *Activity {
	if a == nil {
		return nil
	}
	c := *a
	if a.CompletedAt != nil {
		t := *a.CompletedAt
		c.CompletedAt = &t
	}
	return &c
}

// SetCompleted aplica la transición de completado. CompletedAt se fija solo en false→true
// y se limpia al reabrir. Devuelve true si el estado cambió.
func (a *Activity) SetCompleted(completed bool, now time.Time) bool {
	if a.Completed == completed {
		return false
	}
	a.Completed = completed
	if completed {
		t := now
		a.CompletedAt = &t
	} else {
		a.CompletedAt = nil
	}
	return true
}
