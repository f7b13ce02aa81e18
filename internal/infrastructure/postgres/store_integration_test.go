//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	postgrescontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/gestor-sucursal/internal/domain"
	"github.com/jhoicas/gestor-sucursal/internal/domain/entity"
	"github.com/jhoicas/gestor-sucursal/internal/infrastructure/demo"
)

var monday = time.Date(2026, 10, 19, 9, 45, 0, 0, time.UTC)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	ctx := context.Background()

	pg, err := postgrescontainer.Run(ctx, "postgres:16-alpine",
		postgrescontainer.WithDatabase("gestor_sucursal"),
		postgrescontainer.WithUsername("gestor"),
		postgrescontainer.WithPassword("gestor"),
		postgrescontainer.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pg.Terminate(ctx) })

	connStr, err := pg.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, Migrate(ctx, pool, nil))
	// idempotente
	require.NoError(t, Migrate(ctx, pool, nil))

	store := NewStore(pool)
	hash := func(pw string) (string, error) {
		b, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.MinCost)
		return string(b), err
	}
	require.NoError(t, demo.Load(ctx, store, hash, monday))
	return store
}

func TestStore_Demo(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	snap, err := s.FetchTenantData(ctx, []string{demo.ManagerID})
	require.NoError(t, err)
	assert.Len(t, snap.Managers, 1)
	assert.Len(t, snap.Collaborators, 4)
	assert.Len(t, snap.Activities, 5)
	assert.Len(t, snap.ActivityDefinitions, 10)
	require.Len(t, snap.ShiftConfigs, 1)
	assert.Equal(t, []string{"13:00", "13:30"}, snap.ShiftConfigs[0].Matutino.Lunch)
	assert.Len(t, snap.EmergencyContacts, 3)

	ana, err := s.GetPrincipal(ctx, demo.ID("EMP001"))
	require.NoError(t, err)
	require.NotNil(t, ana)
	require.NotNil(t, ana.Profile)
	assert.Equal(t, "AG", ana.Profile.AvatarInitials)
	assert.True(t, ana.IsFirstLogin)

	missing, err := s.GetPrincipal(ctx, "no-existe")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestStore_Principals(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	dup := entity.NewCollaborator(entity.UserBase{
		ID: "otro", Name: "Duplicado", EmployeeNumber: "EMP001", PasswordHash: "x",
		CreatedAt: monday, UpdatedAt: monday,
	}, entity.CollaboratorProfile{RoleTitle: "Cajero", Shift: entity.ShiftMatutino, ManagerID: demo.ManagerID})
	assert.ErrorIs(t, s.CreateCollaborator(ctx, dup), domain.ErrEmployeeNumberExists)

	require.NoError(t, s.UpdateCredential(ctx, demo.ID("EMP001"), "nuevo-hash"))
	ana, err := s.GetPrincipal(ctx, demo.ID("EMP001"))
	require.NoError(t, err)
	assert.False(t, ana.IsFirstLogin)
	assert.Equal(t, "nuevo-hash", ana.PasswordHash)
	assert.ErrorIs(t, s.UpdateCredential(ctx, "no-existe", "x"), domain.ErrUserNotFound)

	ana.Rename("Ana María García")
	require.NoError(t, s.UpdatePrincipal(ctx, ana))
	ana, err = s.GetPrincipal(ctx, demo.ID("EMP001"))
	require.NoError(t, err)
	assert.Equal(t, "AM", ana.Profile.AvatarInitials)

	require.NoError(t, s.DeleteCollaborator(ctx, demo.ID("EMP001")))
	acts, err := s.ListActivities(ctx, []string{demo.ID("EMP001")})
	require.NoError(t, err)
	assert.Empty(t, acts)

	err = s.DeleteManager(ctx, demo.ManagerID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestStore_ActivitiesYCatalogo(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	a, err := s.GetActivity(ctx, demo.ID("act-103"))
	require.NoError(t, err)
	require.NotNil(t, a)
	a.SetCompleted(true, monday)
	require.NoError(t, s.UpdateActivity(ctx, a))

	got, err := s.GetActivity(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, got.Completed)
	require.NotNil(t, got.CompletedAt)
	assert.True(t, got.CompletedAt.Equal(monday))

	assert.ErrorIs(t, s.CreateActivity(ctx, a), domain.ErrDuplicate)
	assert.ErrorIs(t, s.UpdateActivity(ctx, &entity.Activity{ID: "no-existe"}), domain.ErrNotFound)

	created, err := s.AddActivityDefinition(ctx, entity.ActivityDefinition{ID: "d1", ManagerID: demo.ManagerID, Name: "Apertura de Caja"})
	require.NoError(t, err)
	assert.False(t, created)
	created, err = s.AddActivityDefinition(ctx, entity.ActivityDefinition{ID: "d2", ManagerID: demo.ManagerID, Name: "Inventario"})
	require.NoError(t, err)
	assert.True(t, created)

	require.NoError(t, s.UpsertBranchConfig(ctx, entity.BranchConfig{ManagerID: demo.ManagerID, Name: "Sucursal Norte", CECO: "MX-1", Region: "R", Territory: "T"}))
	snap, err := s.FetchTenantData(ctx, nil)
	require.NoError(t, err)
	require.Len(t, snap.BranchConfigs, 1)
	assert.Equal(t, "Sucursal Norte", snap.BranchConfigs[0].Name)
}

func TestStore_Sessions(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	exp := time.Now().Add(time.Hour)
	require.NoError(t, s.RevokeSession(ctx, "jti-1", exp))
	revoked, err := s.IsSessionRevoked(ctx, "jti-1", time.Now())
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = s.IsSessionRevoked(ctx, "jti-1", exp.Add(time.Minute))
	require.NoError(t, err)
	assert.False(t, revoked)
}
