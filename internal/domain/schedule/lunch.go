package schedule

import "github.com/jhoicas/gestor-sucursal/internal/domain/entity"

// Slots de comida por defecto de cada turno.
var (
	DefaultLunchMatutino   = []string{"13:00", "13:30"}
	DefaultLunchVespertino = []string{"16:00", "16:30"}
)

// IsLunchSlot indica si el slot pertenece a la ventana de comida del turno según la configuración del tenant.
func IsLunchSlot(slot string, shift entity.Shift, cfg entity.ShiftConfig) bool {
	if !shift.Valid() {
		return false
	}
	for _, s := range cfg.For(shift).Lunch {
		if s == slot {
			return true
		}
	}
	return false
}

// Phase fase de turnos activa en un slot.
type Phase string

const (
	PhaseMatutino   Phase = "MATUTINO"
	PhaseVespertino Phase = "VESPERTINO"
	PhaseOverlap    Phase = "TRASLAPE"
	PhaseOffHours   Phase = "FUERA_DE_HORARIO"
)

// ShiftPhase qué turno está activo en slotMinutes. El traslape se evalúa primero:
// desde el inicio del vespertino hasta el fin del matutino.
func ShiftPhase(slotMinutes int, cfg entity.ShiftConfig) Phase {
	matStart, matEnd := MinutesOf(cfg.Matutino.Start), MinutesOf(cfg.Matutino.End)
	vesStart, vesEnd := MinutesOf(cfg.Vespertino.Start), MinutesOf(cfg.Vespertino.End)
	switch {
	case slotMinutes >= vesStart && slotMinutes < matEnd:
		return PhaseOverlap
	case slotMinutes >= matStart && slotMinutes < matEnd:
		return PhaseMatutino
	case slotMinutes >= vesStart && slotMinutes < vesEnd:
		return PhaseVespertino
	default:
		return PhaseOffHours
	}
}
