package repository

import (
	"context"

	"github.com/jhoicas/gestor-sucursal/internal/domain/entity"
)

// TenantConfigRepository configuración por tenant: sucursal, turnos, catálogo y contactos.
type TenantConfigRepository interface {
	// UpsertBranchConfig reemplaza el registro del tenant (cfg.ManagerID) o lo crea.
	UpsertBranchConfig(ctx context.Context, cfg entity.BranchConfig) error
	UpsertShiftConfig(ctx context.Context, cfg entity.ShiftConfig) error

	// AddActivityDefinition inserta si (ManagerID, Name) no existe; created=false si ya estaba.
	AddActivityDefinition(ctx context.Context, def entity.ActivityDefinition) (created bool, err error)
	RemoveActivityDefinition(ctx context.Context, managerID, name string) error

	AddEmergencyContact(ctx context.Context, c entity.EmergencyContact) error
	// RemoveEmergencyContact solo borra si el contacto pertenece al tenant.
	RemoveEmergencyContact(ctx context.Context, managerID, id string) error
}
