package entity

// ActivityDefinition entrada del catálogo de actividades de un tenant. (ManagerID, Name) es único.
type ActivityDefinition struct {
	ID        string
	ManagerID string
	Name      string
}

// BranchConfig datos de la sucursal; uno por tenant (upsert por ManagerID).
type BranchConfig struct {
	ManagerID string
	Name      string
	CECO      string // centro de costos
	Region    string
	Territory string
}

// ShiftSchedule horario de un turno y sus slots de comida.
type ShiftSchedule struct {
	Start string
	End   string
	Lunch []string // slots "HH:MM" de la ventana de comida
}

// ShiftConfig horarios MATUTINO y VESPERTINO de un tenant (upsert por ManagerID).
type ShiftConfig struct {
	ManagerID  string
	Matutino   ShiftSchedule
	Vespertino ShiftSchedule
}

// For devuelve el horario del turno indicado.
func (c ShiftConfig) For(shift Shift) ShiftSchedule {
	if shift == ShiftVespertino {
		return c.Vespertino
	}
	return c.Matutino
}

// EmergencyContact contacto de emergencia de la sucursal; varios por tenant.
type EmergencyContact struct {
	ID        string
	ManagerID string
	Name      string
	Phone     string
}

// TenantSeed configuración inicial con la que nace un tenant al crear su gerente.
type TenantSeed struct {
	Branch  BranchConfig
	Shift   ShiftConfig
	Catalog []ActivityDefinition
}

// TenantSnapshot colecciones planas de uno o varios tenants, unidas por identificador.
type TenantSnapshot struct {
	Managers            []*Principal
	Collaborators       []*Principal
	Activities          []*Activity
	ActivityDefinitions []ActivityDefinition
	BranchConfigs       []BranchConfig
	ShiftConfigs        []ShiftConfig
	EmergencyContacts   []EmergencyContact
}
