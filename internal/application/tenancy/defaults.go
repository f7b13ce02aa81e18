package tenancy

import (
	"github.com/jhoicas/gestor-sucursal/internal/domain/entity"
	"github.com/jhoicas/gestor-sucursal/internal/domain/schedule"
)

// DefaultCatalogNames catálogo con el que nace un tenant nuevo.
var DefaultCatalogNames = []string{
	"Apertura de Caja",
	"Cierre de Caja",
	"Atención a Clientes",
	"Hora de Comida",
}

// DefaultBranchConfig sucursal de un tenant que aún no la configura.
func DefaultBranchConfig(managerID string) entity.BranchConfig {
	return entity.BranchConfig{
		ManagerID: managerID,
		Name:      "Nueva Sucursal",
		CECO:      "MX-00000",
		Region:    "Sin Asignar",
		Territory: "Sin Asignar",
	}
}

// DefaultShiftConfig horarios por defecto, con la ventana de comida de cada turno.
func DefaultShiftConfig(managerID string) entity.ShiftConfig {
	return entity.ShiftConfig{
		ManagerID: managerID,
		Matutino: entity.ShiftSchedule{
			Start: "08:00",
			End:   "15:00",
			Lunch: append([]string(nil), schedule.DefaultLunchMatutino...),
		},
		Vespertino: entity.ShiftSchedule{
			Start: "12:00",
			End:   "20:00",
			Lunch: append([]string(nil), schedule.DefaultLunchVespertino...),
		},
	}
}

// NewTenantSeed configuración inicial completa para el gerente managerID.
// newID genera los identificadores del catálogo.
func NewTenantSeed(managerID string, newID func() string) entity.TenantSeed {
	seed := entity.TenantSeed{
		Branch: DefaultBranchConfig(managerID),
		Shift:  DefaultShiftConfig(managerID),
	}
	for _, name := range DefaultCatalogNames {
		seed.Catalog = append(seed.Catalog, entity.ActivityDefinition{ID: newID(), ManagerID: managerID, Name: name})
	}
	return seed
}

// WithLunchDefaults completa la ventana de comida vacía de cada turno con los slots por defecto.
func WithLunchDefaults(cfg entity.ShiftConfig) entity.ShiftConfig {
	if len(cfg.Matutino.Lunch) == 0 {
		cfg.Matutino.Lunch = append([]string(nil), schedule.DefaultLunchMatutino...)
	}
	if len(cfg.Vespertino.Lunch) == 0 {
		cfg.Vespertino.Lunch = append([]string(nil), schedule.DefaultLunchVespertino...)
	}
	return cfg
}
