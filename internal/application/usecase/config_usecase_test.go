package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestor-sucursal/internal/application/dto"
	"github.com/jhoicas/gestor-sucursal/internal/domain"
	"github.com/jhoicas/gestor-sucursal/internal/infrastructure/demo"
)

func TestConfig_BranchInfo(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	info, err := e.config().BranchInfo(ctx, carlos)
	require.NoError(t, err)
	assert.Equal(t, "Sucursal Centro Histórico", info.Branch.Name)
	assert.Len(t, info.Catalog, 10)
	assert.Len(t, info.Contacts, 3)

	_, err = e.config().BranchInfo(ctx, admin)
	assert.ErrorIs(t, err, domain.ErrTenantRequired)

	_, err = e.config().BranchInfo(ctx, adminOf("no-existe"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestConfig_UpsertSucursal(t *testing.T) {
	e := newEnv(t)
	uc := e.config()
	ctx := context.Background()

	_, err := uc.UpdateBranch(ctx, manager, dto.BranchConfigRequest{Name: "Primera", CECO: "MX-1"})
	require.NoError(t, err)
	_, err = uc.UpdateBranch(ctx, manager, dto.BranchConfigRequest{Name: "Segunda", CECO: "MX-2", Region: "Sur"})
	require.NoError(t, err)

	snap, err := e.store.FetchTenantData(ctx, []string{demo.ManagerID})
	require.NoError(t, err)
	require.Len(t, snap.BranchConfigs, 1)
	assert.Equal(t, "Segunda", snap.BranchConfigs[0].Name)

	_, err = uc.UpdateBranch(ctx, carlos, dto.BranchConfigRequest{Name: "X", CECO: "Y"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestConfig_Turnos(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	out, err := e.config().UpdateShifts(ctx, manager, dto.ShiftConfigRequest{
		Matutino:   dto.ShiftScheduleDTO{Start: "07:00", End: "14:00"},
		Vespertino: dto.ShiftScheduleDTO{Start: "13:00", End: "21:00", Lunch: []string{"17:00"}},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"13:00", "13:30"}, out.Matutino.Lunch, "sin comida configurada se usan los slots por defecto")
	assert.Equal(t, []string{"17:00"}, out.Vespertino.Lunch)

	_, err = e.config().UpdateShifts(ctx, manager, dto.ShiftConfigRequest{
		Matutino:   dto.ShiftScheduleDTO{Start: "14:00", End: "07:00"},
		Vespertino: dto.ShiftScheduleDTO{Start: "13:00", End: "21:00"},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidTimeRange)
}

func TestConfig_CatalogoSinDuplicados(t *testing.T) {
	e := newEnv(t)
	uc := e.config()
	ctx := context.Background()

	def, created, err := uc.AddActivityType(ctx, manager, dto.ActivityDefinitionRequest{Name: "Capacitación"})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, demo.ID("def-7"), def.ID, "devuelve la entrada existente")

	_, created, err = uc.AddActivityType(ctx, manager, dto.ActivityDefinitionRequest{Name: "Inventario"})
	require.NoError(t, err)
	assert.True(t, created)

	info, err := uc.BranchInfo(ctx, manager)
	require.NoError(t, err)
	assert.Len(t, info.Catalog, 11)

	require.NoError(t, uc.RemoveActivityType(ctx, manager, "Inventario"))
	info, err = uc.BranchInfo(ctx, manager)
	require.NoError(t, err)
	assert.Len(t, info.Catalog, 10)
}

func TestConfig_Contactos(t *testing.T) {
	e := newEnv(t)
	uc := e.config()
	ctx := context.Background()

	c, err := uc.AddContact(ctx, manager, dto.EmergencyContactRequest{Name: "Protección Civil", Phone: "911"})
	require.NoError(t, err)

	info, err := uc.BranchInfo(ctx, manager)
	require.NoError(t, err)
	assert.Len(t, info.Contacts, 4)

	require.NoError(t, uc.RemoveContact(ctx, manager, c.ID))
	assert.ErrorIs(t, uc.RemoveContact(ctx, manager, c.ID), domain.ErrNotFound)
}
