// Package schedule contiene las funciones puras de la agenda: conversión de horas
// "HH:MM" a minutos, redondeo al slot de 30 minutos, clasificación de estado de
// actividades, ventana de comida y fase de turno. No depende de la hora del
// sistema: el instante de referencia siempre llega como argumento.
package schedule

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// SlotMinutes tamaño del slot de la rejilla de planeación.
const SlotMinutes = 30

// MinutesOf convierte "HH:MM" en minutos desde medianoche. Cadena vacía → 0.
// Entradas mal formadas también devuelven 0; usar ParseHHMM para validar.
func MinutesOf(hhmm string) int {
	m, err := ParseHHMM(hhmm)
	if err != nil {
		return 0
	}
	return m
}

// ParseHHMM valida y convierte "HH:MM" (00:00–23:59) en minutos desde medianoche.
func ParseHHMM(hhmm string) (int, error) {
	parts := strings.Split(strings.TrimSpace(hhmm), ":")
	if len(parts) != 2 || len(parts[0]) == 0 || len(parts[1]) != 2 {
		return 0, fmt.Errorf("schedule: hora inválida %q", hhmm)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("schedule: hora inválida %q", hhmm)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("schedule: minutos inválidos %q", hhmm)
	}
	return h*60 + m, nil
}

// FormatHHMM inverso de MinutesOf.
func FormatHHMM(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// MinutesSinceMidnight minutos de pared del instante t.
func MinutesSinceMidnight(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// CurrentSlot redondea hacia abajo los minutos de t a :00 o :30. 10:15 → "10:00", 10:45 → "10:30".
func CurrentSlot(t time.Time) string {
	m := 0
	if t.Minute() >= SlotMinutes {
		m = SlotMinutes
	}
	return fmt.Sprintf("%02d:%02d", t.Hour(), m)
}

// Weekday día de la semana de t en la convención de la agenda (0 = domingo).
func Weekday(t time.Time) int { return int(t.Weekday()) }

// Slots rejilla de 30 minutos entre start y end, ambos incluidos.
func Slots(start, end string) []string {
	s, e := MinutesOf(start), MinutesOf(end)
	if e < s {
		return nil
	}
	out := make([]string, 0, (e-s)/SlotMinutes+1)
	for m := s; m <= e; m += SlotMinutes {
		out = append(out, FormatHHMM(m))
	}
	return out
}

// Rejillas por defecto que ofrece la planeación para cada turno.
var (
	defaultMatutinoSlots   = Slots("08:00", "17:00")
	defaultVespertinoSlots = Slots("12:00", "21:00")
)

// DefaultSlots unión ordenada de las rejillas de ambos turnos.
func DefaultSlots() []string {
	seen := make(map[string]struct{}, len(defaultMatutinoSlots)+len(defaultVespertinoSlots))
	var out []string
	for _, s := range append(append([]string{}, defaultMatutinoSlots...), defaultVespertinoSlots...) {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
