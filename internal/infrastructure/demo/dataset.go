// Package demo datos de demostración: un administrador, una sucursal con su gerente,
// cuatro colaboradores y la agenda del lunes. Los carga tanto el store en memoria como cmd/seed.
package demo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/gestor-sucursal/internal/domain/entity"
	"github.com/jhoicas/gestor-sucursal/internal/domain/repository"
)

// Target store que además admite insertar administradores.
type Target interface {
	repository.Store
	AddPrincipal(ctx context.Context, p *entity.Principal) error
}

// HashFunc hashea una contraseña en texto plano.
type HashFunc func(password string) (string, error)

var namespace = uuid.MustParse("6f1c1d2e-5a0b-4c59-9b7e-2d4a7c1e9f30")

// ID identificador estable derivado de una clave legible ("EMP001", "act-101").
func ID(key string) string {
	return uuid.NewSHA1(namespace, []byte(key)).String()
}

// Identificadores fijos de la demo.
var (
	AdminID   = ID("admin")
	ManagerID = ID("ADMIN01")
)

var catalog = []string{
	"Apertura de Caja",
	"Cierre de Caja",
	"Arqueo de Caja",
	"Atención Ventanilla",
	"Revisión de Bóveda",
	"Atención a Clientes",
	"Llamadas de Seguimiento",
	"Capacitación",
	"Hora de Comida",
	"Trámite Administrativo",
}

type login struct {
	number, name, password string
	firstLogin             bool
}

type collaboratorRow struct {
	login
	title string
	shift entity.Shift
}

var collaborators = []collaboratorRow{
	{login{"EMP001", "Ana García", "123", true}, "Ejecutiva de Cuenta", entity.ShiftMatutino},
	{login{"EMP002", "Carlos Ruiz", "123", false}, "Cajero Principal", entity.ShiftMatutino},
	{login{"EMP003", "María López", "123", true}, "Atención al Cliente", entity.ShiftVespertino},
	{login{"EMP004", "Juan Pérez", "123", false}, "Asesor Financiero", entity.ShiftVespertino},
}

type activityRow struct {
	key, employee, start, end, description string
	completed                              bool
}

// Agenda del lunes (día 1).
var activities = []activityRow{
	{"101", "EMP001", "08:30", "09:00", "Apertura de Caja", true},
	{"102", "EMP001", "09:00", "09:30", "Atención Ventanilla", true},
	{"103", "EMP001", "09:30", "10:00", "Revisión de Bóveda", false},
	{"104", "EMP002", "08:30", "09:00", "Apertura de Caja", true},
	{"105", "EMP003", "12:00", "12:30", "Trámite Administrativo", false},
}

var contacts = []entity.EmergencyContact{
	{Name: "Seguridad Corporativa", Phone: "55-1234-5678"},
	{Name: "Soporte Sistemas", Phone: "800-999-0000"},
	{Name: "Gerente Regional", Phone: "55-5555-5555"},
}

// Load inserta el conjunto de datos completo. now fecha las altas y los completados.
func Load(ctx context.Context, target Target, hash HashFunc, now time.Time) error {
	base := func(l login) (entity.UserBase, error) {
		h, err := hash(l.password)
		if err != nil {
			return entity.UserBase{}, fmt.Errorf("hash %s: %w", l.number, err)
		}
		return entity.UserBase{
			ID:             ID(l.number),
			Name:           l.name,
			EmployeeNumber: l.number,
			PasswordHash:   h,
			IsFirstLogin:   l.firstLogin,
			CreatedAt:      now,
			UpdatedAt:      now,
		}, nil
	}

	adminBase, err := base(login{"admin", "Super Administrador", "root", false})
	if err != nil {
		return err
	}
	if err := target.AddPrincipal(ctx, entity.NewAdmin(adminBase)); err != nil {
		return fmt.Errorf("demo admin: %w", err)
	}

	managerBase, err := base(login{"ADMIN01", "Roberto Gerente", "admin", false})
	if err != nil {
		return err
	}
	if err := target.CreateManager(ctx, entity.NewManager(managerBase), tenantSeed()); err != nil {
		return fmt.Errorf("demo manager: %w", err)
	}

	for _, row := range collaborators {
		b, err := base(row.login)
		if err != nil {
			return err
		}
		c := entity.NewCollaborator(b, entity.CollaboratorProfile{RoleTitle: row.title, Shift: row.shift, ManagerID: ManagerID})
		if err := target.CreateCollaborator(ctx, c); err != nil {
			return fmt.Errorf("demo collaborator %s: %w", row.number, err)
		}
	}

	for _, row := range activities {
		a := &entity.Activity{
			ID:             ID("act-" + row.key),
			CollaboratorID: ID(row.employee),
			Day:            1,
			Time:           row.start,
			EndTime:        row.end,
			Description:    row.description,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		a.SetCompleted(row.completed, now)
		if err := target.CreateActivity(ctx, a); err != nil {
			return fmt.Errorf("demo activity %s: %w", row.key, err)
		}
	}

	for i, c := range contacts {
		c.ID = ID(fmt.Sprintf("contact-%d", i+1))
		c.ManagerID = ManagerID
		if err := target.AddEmergencyContact(ctx, c); err != nil {
			return fmt.Errorf("demo contact %s: %w", c.Name, err)
		}
	}
	return nil
}

func tenantSeed() entity.TenantSeed {
	seed := entity.TenantSeed{
		Branch: entity.BranchConfig{
			ManagerID: ManagerID,
			Name:      "Sucursal Centro Histórico",
			CECO:      "MX-12345",
			Region:    "Metropolitana Norte",
			Territory: "Zona 1",
		},
		Shift: entity.ShiftConfig{
			ManagerID:  ManagerID,
			Matutino:   entity.ShiftSchedule{Start: "08:00", End: "15:00", Lunch: []string{"13:00", "13:30"}},
			Vespertino: entity.ShiftSchedule{Start: "12:00", End: "20:00", Lunch: []string{"16:00", "16:30"}},
		},
	}
	for i, name := range catalog {
		seed.Catalog = append(seed.Catalog, entity.ActivityDefinition{
			ID:        ID(fmt.Sprintf("def-%d", i)),
			ManagerID: ManagerID,
			Name:      name,
		})
	}
	return seed
}
