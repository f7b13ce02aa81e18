package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/gestor-sucursal/internal/application/dto"
	"github.com/jhoicas/gestor-sucursal/internal/domain"
	"github.com/jhoicas/gestor-sucursal/internal/domain/repository"
	"github.com/jhoicas/gestor-sucursal/internal/domain/schedule"
	"github.com/jhoicas/gestor-sucursal/pkg/clock"
	"github.com/jhoicas/gestor-sucursal/pkg/logger"
)

// ClockUseCase consulta y viaje en el tiempo del reloj del sistema.
type ClockUseCase struct {
	store repository.Store
	clock clock.Clock
	log   *logger.Logger
}

// NewClockUseCase construye el caso de uso.
func NewClockUseCase(store repository.Store, clk clock.Clock, log *logger.Logger) *ClockUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &ClockUseCase{store: store, clock: clk, log: log.Component("clock")}
}

// Now hora actual, día y slot.
func (uc *ClockUseCase) Now() dto.ClockResponse {
	now := uc.clock.Now()
	_, simulated := uc.clock.(*clock.Simulated)
	return dto.ClockResponse{Now: now, Day: schedule.Weekday(now), Slot: schedule.CurrentSlot(now), Simulated: simulated}
}

// Travel mueve el reloj simulado; con reloj real devuelve ErrConflict.
func (uc *ClockUseCase) Travel(ctx context.Context, actor Actor, in dto.TravelRequest) (*dto.ClockResponse, error) {
	p, err := principal(ctx, uc.store, actor)
	if err != nil {
		return nil, err
	}
	if err := requireStaff(p); err != nil {
		return nil, err
	}
	sim, ok := uc.clock.(*clock.Simulated)
	if !ok {
		return nil, fmt.Errorf("%w: el reloj no es simulado", domain.ErrConflict)
	}
	t, err := sim.Travel(in.Day, in.Time)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	uc.log.Info().Str("user_id", p.ID).Time("now", t).Msg("clock travel")
	out := uc.Now()
	return &out, nil
}
