// Package clock abstrae la hora actual del sistema para que los cálculos de
// horario (estado de actividades, slots, hora de comida) puedan probarse con
// un reloj fijo o "viajar en el tiempo" en modo demo.
package clock

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Clock fuente única de la hora actual. Se lee en el momento del cálculo, nunca se cachea.
type Clock interface {
	Now() time.Time
}

// Real reloj de pared en la zona horaria configurada.
type Real struct {
	loc *time.Location
}

// NewReal construye un reloj real. Si loc es nil se usa time.Local.
func NewReal(loc *time.Location) *Real {
	if loc == nil {
		loc = time.Local
	}
	return &Real{loc: loc}
}

// Now devuelve la hora actual en la zona del reloj.
func (r *Real) Now() time.Time { return time.Now().In(r.loc) }

// Simulated reloj controlable: devuelve siempre el instante fijado hasta que se mueve.
type Simulated struct {
	mu  sync.RWMutex
	now time.Time
}

// NewSimulated construye un reloj simulado detenido en start.
func NewSimulated(start time.Time) *Simulated {
	return &Simulated{now: start}
}

// Now devuelve el instante simulado.
func (s *Simulated) Now() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.now
}

// Set fija el instante simulado.
func (s *Simulated) Set(t time.Time) {
	s.mu.Lock()
	s.now = t
	s.mu.Unlock()
}

// Travel mueve el reloj al día de la semana indicado (0=domingo) de la misma semana
// y a la hora de pared hhmm ("HH:MM"). Segundos y nanosegundos quedan en cero.
func (s *Simulated) Travel(day int, hhmm string) (time.Time, error) {
	if day < 0 || day > 6 {
		return time.Time{}, fmt.Errorf("clock: día fuera de rango: %d", day)
	}
	h, m, err := parseHHMM(hhmm)
	if err != nil {
		return time.Time{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cur := s.now
	shifted := cur.AddDate(0, 0, day-int(cur.Weekday()))
	s.now = time.Date(shifted.Year(), shifted.Month(), shifted.Day(), h, m, 0, 0, cur.Location())
	return s.now, nil
}

func parseHHMM(v string) (int, int, error) {
	parts := strings.Split(v, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("clock: hora inválida %q", v)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, 0, fmt.Errorf("clock: hora inválida %q", v)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, 0, fmt.Errorf("clock: minutos inválidos %q", v)
	}
	return h, m, nil
}

// StartOfDemoWeek devuelve el lunes de la semana de t a las 10:15, el instante
// con el que arranca el reloj simulado cuando no se configura uno explícito.
func StartOfDemoWeek(t time.Time) time.Time {
	monday := t.AddDate(0, 0, 1-int(t.Weekday()))
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 10, 15, 0, 0, t.Location())
}
