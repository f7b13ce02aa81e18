package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/gestor-sucursal/internal/domain/entity"
)

func TestInitials(t *testing.T) {
	cases := map[string]string{
		"Ana García":        "AG",
		"maría lópez ruiz":  "ML",
		"Ángel":             "A",
		"  Óscar   Núñez  ": "ON",
		"":                  "",
	}
	for in, want := range cases {
		assert.Equal(t, want, entity.Initials(in), in)
	}
}

func TestPrincipal_VarianteColaborador(t *testing.T) {
	c := entity.NewCollaborator(entity.UserBase{ID: "c1", Name: "Carlos Ruiz"}, entity.CollaboratorProfile{
		RoleTitle: "Cajero", Shift: entity.ShiftMatutino, ManagerID: "m1",
	})
	assert.True(t, c.IsCollaborator())
	assert.Equal(t, "m1", c.ManagerID())
	assert.Equal(t, "CR", c.Profile.AvatarInitials)

	c.Rename("Juan Pérez")
	assert.Equal(t, "JP", c.Profile.AvatarInitials)

	clone := c.Clone()
	clone.Profile.ManagerID = "m2"
	assert.Equal(t, "m1", c.ManagerID(), "el clon no comparte perfil")

	m := entity.NewManager(entity.UserBase{ID: "m1"})
	assert.Empty(t, m.ManagerID())
	assert.False(t, m.IsCollaborator())
}

func TestActivity_SetCompleted(t *testing.T) {
	now := time.Date(2026, 10, 19, 10, 15, 0, 0, time.UTC)
	a := &entity.Activity{ID: "a1"}

	assert.True(t, a.SetCompleted(true, now))
	assert.Equal(t, now, *a.CompletedAt)

	later := now.Add(time.Hour)
	assert.False(t, a.SetCompleted(true, later), "completar dos veces no cambia la marca")
	assert.Equal(t, now, *a.CompletedAt)

	assert.True(t, a.SetCompleted(false, later))
	assert.Nil(t, a.CompletedAt)
}
