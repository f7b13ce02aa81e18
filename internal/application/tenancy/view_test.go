package tenancy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestor-sucursal/internal/application/tenancy"
	"github.com/jhoicas/gestor-sucursal/internal/domain"
	"github.com/jhoicas/gestor-sucursal/internal/domain/entity"
)

func collaborator(id, managerID string) *entity.Principal {
	return entity.NewCollaborator(entity.UserBase{ID: id, Name: "Colaborador " + id, EmployeeNumber: id},
		entity.CollaboratorProfile{Shift: entity.ShiftMatutino, ManagerID: managerID})
}

func fixture() (*entity.Principal, *entity.Principal, *entity.TenantSnapshot) {
	m1 := entity.NewManager(entity.UserBase{ID: "m1", Name: "Gerente Uno"})
	m2 := entity.NewManager(entity.UserBase{ID: "m2", Name: "Gerente Dos"})
	snap := &entity.TenantSnapshot{
		Managers:      []*entity.Principal{m1, m2},
		Collaborators: []*entity.Principal{collaborator("c1", "m1"), collaborator("c2", "m1"), collaborator("c3", "m2")},
		Activities: []*entity.Activity{
			{ID: "a1", CollaboratorID: "c1"},
			{ID: "a2", CollaboratorID: "c2"},
			{ID: "a3", CollaboratorID: "c3"},
		},
		ActivityDefinitions: []entity.ActivityDefinition{
			{ID: "d1", ManagerID: "m1", Name: "Apertura de Caja"},
			{ID: "d2", ManagerID: "m2", Name: "Inventario"},
		},
		BranchConfigs: []entity.BranchConfig{{ManagerID: "m1", Name: "Centro", CECO: "MX-1"}},
		EmergencyContacts: []entity.EmergencyContact{
			{ID: "e1", ManagerID: "m1", Name: "Seguridad", Phone: "555"},
			{ID: "e2", ManagerID: "m2", Name: "Bomberos", Phone: "911"},
		},
	}
	return m1, m2, snap
}

func ids(list []*entity.Principal) []string {
	out := make([]string, 0, len(list))
	for _, p := range list {
		out = append(out, p.ID)
	}
	return out
}

func activityIDs(list []*entity.Activity) []string {
	out := make([]string, 0, len(list))
	for _, a := range list {
		out = append(out, a.ID)
	}
	return out
}

func TestResolve(t *testing.T) {
	m1, _, snap := fixture()
	admin := entity.NewAdmin(entity.UserBase{ID: "root"})

	assert.Equal(t, "m1", tenancy.Resolve(m1, "m2"), "el gerente ignora la selección")
	assert.Equal(t, "m1", tenancy.Resolve(snap.Collaborators[0], ""))
	assert.Equal(t, "m2", tenancy.Resolve(admin, "m2"))
	assert.Empty(t, tenancy.Resolve(admin, ""))

	_, err := tenancy.Require(admin, "")
	assert.ErrorIs(t, err, domain.ErrTenantRequired)

	assert.Nil(t, tenancy.Scope(admin, ""))
	assert.Equal(t, []string{"m1"}, tenancy.Scope(m1, ""))
}

func TestView_VisibilidadPorRol(t *testing.T) {
	m1, _, snap := fixture()
	admin := entity.NewAdmin(entity.UserBase{ID: "root"})
	c1 := snap.Collaborators[0]

	v := tenancy.NewView(m1, tenancy.Resolve(m1, ""), snap)
	assert.Equal(t, []string{"c1", "c2"}, ids(v.VisibleCollaborators()))
	assert.Equal(t, []string{"a1", "a2"}, activityIDs(v.VisibleActivities()))
	assert.Equal(t, ids(v.VisibleCollaborators()), ids(v.VisibleCollaborators()), "idempotente")

	v = tenancy.NewView(admin, "", snap)
	assert.Equal(t, []string{"c1", "c2", "c3"}, ids(v.VisibleCollaborators()))
	assert.Len(t, v.VisibleActivities(), 3)

	v = tenancy.NewView(admin, "m2", snap)
	assert.Equal(t, []string{"c3"}, ids(v.VisibleCollaborators()))

	v = tenancy.NewView(c1, tenancy.Resolve(c1, ""), snap)
	assert.Equal(t, []string{"c1", "c2"}, ids(v.VisibleCollaborators()))
	assert.Equal(t, []string{"c2"}, ids(v.Teammates()))
	assert.Equal(t, []string{"a1", "a2"}, activityIDs(v.VisibleActivities()))
	assert.Nil(t, v.Activity("a3"))
}

func TestView_ConfiguracionConDefaults(t *testing.T) {
	m1, m2, snap := fixture()

	v := tenancy.NewView(m1, "m1", snap)
	assert.Equal(t, "Centro", v.BranchConfig().Name)
	assert.Len(t, v.EmergencyContacts(), 1)
	assert.True(t, v.InCatalog("m1", "Apertura de Caja"))
	assert.False(t, v.InCatalog("m1", "Inventario"))

	v = tenancy.NewView(m2, "m2", snap)
	branch := v.BranchConfig()
	assert.Equal(t, "Nueva Sucursal", branch.Name)
	assert.Equal(t, "m2", branch.ManagerID)

	shift := v.ShiftConfig()
	assert.Equal(t, "08:00", shift.Matutino.Start)
	assert.Equal(t, []string{"13:00", "13:30"}, shift.Matutino.Lunch)
	assert.Equal(t, []string{"16:00", "16:30"}, shift.Vespertino.Lunch)
}

func TestNewTenantSeed(t *testing.T) {
	n := 0
	seed := tenancy.NewTenantSeed("m9", func() string { n++; return string(rune('a' + n)) })
	require.Len(t, seed.Catalog, 4)
	assert.Equal(t, "m9", seed.Branch.ManagerID)
	assert.Equal(t, "MX-00000", seed.Branch.CECO)
	assert.Equal(t, "20:00", seed.Shift.Vespertino.End)
	for _, d := range seed.Catalog {
		assert.Equal(t, "m9", d.ManagerID)
		assert.NotEmpty(t, d.ID)
	}
}
