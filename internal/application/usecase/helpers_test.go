package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/gestor-sucursal/internal/application/auth"
	"github.com/jhoicas/gestor-sucursal/internal/application/ports"
	"github.com/jhoicas/gestor-sucursal/internal/application/usecase"
	"github.com/jhoicas/gestor-sucursal/internal/infrastructure/demo"
	"github.com/jhoicas/gestor-sucursal/internal/infrastructure/memory"
	"github.com/jhoicas/gestor-sucursal/pkg/clock"
)

// lunes 19/10/2026 09:45
var monday = time.Date(2026, 10, 19, 9, 45, 0, 0, time.UTC)

var (
	admin   = usecase.Actor{UserID: demo.AdminID}
	manager = usecase.Actor{UserID: demo.ManagerID}
	ana     = usecase.Actor{UserID: demo.ID("EMP001")}
	carlos  = usecase.Actor{UserID: demo.ID("EMP002")}
)

func adminOf(tenant string) usecase.Actor {
	return usecase.Actor{UserID: demo.AdminID, Tenant: tenant}
}

type recorder struct {
	mu     sync.Mutex
	events []ports.ActivityEvent
	fail   bool
}

func (r *recorder) Publish(_ context.Context, evt ports.ActivityEvent) error {
	if r.fail {
		return errors.New("broker no disponible")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, evt)
	return nil
}

func (r *recorder) Close() error { return nil }

func (r *recorder) types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Type)
	}
	return out
}

type env struct {
	store  *memory.Store
	clock  *clock.Simulated
	hasher *auth.PasswordHasher
	events *recorder
}

func newEnv(t *testing.T) *env {
	t.Helper()
	hasher := auth.NewPasswordHasher(bcrypt.MinCost)
	store, err := memory.NewSeeded(context.Background(), hasher.Hash, monday)
	require.NoError(t, err)
	return &env{store: store, clock: clock.NewSimulated(monday), hasher: hasher, events: &recorder{}}
}

func (e *env) activities() *usecase.ActivityUseCase {
	return usecase.NewActivityUseCase(e.store, e.clock, e.events, nil)
}

func (e *env) collaborators(roster ports.RosterReader) *usecase.CollaboratorUseCase {
	return usecase.NewCollaboratorUseCase(e.store, e.hasher, "123", roster, e.clock, nil)
}

func (e *env) managers() *usecase.ManagerUseCase {
	return usecase.NewManagerUseCase(e.store, e.hasher, e.clock, nil)
}

func (e *env) config() *usecase.TenantConfigUseCase {
	return usecase.NewTenantConfigUseCase(e.store, nil)
}

func (e *env) dashboard() *usecase.DashboardUseCase {
	return usecase.NewDashboardUseCase(e.store, e.clock)
}

func intp(v int) *int { return &v }

func strp(v string) *string { return &v }
