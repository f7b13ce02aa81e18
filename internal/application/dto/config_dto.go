package dto

// BranchConfigRequest datos de la sucursal.
type BranchConfigRequest struct {
	Name      string `json:"name" validate:"required,max=200"`
	CECO      string `json:"ceco" validate:"required,max=50"`
	Region    string `json:"region" validate:"max=100"`
	Territory string `json:"territory" validate:"max=100"`
}

// BranchConfigResponse configuración de sucursal.
type BranchConfigResponse struct {
	ManagerID string `json:"manager_id"`
	Name      string `json:"name"`
	CECO      string `json:"ceco"`
	Region    string `json:"region"`
	Territory string `json:"territory"`
}

// ShiftScheduleDTO horario de un turno.
type ShiftScheduleDTO struct {
	Start string   `json:"start" validate:"required,hhmm"`
	End   string   `json:"end" validate:"required,hhmm"`
	Lunch []string `json:"lunch,omitempty" validate:"omitempty,dive,hhmm"`
}

// ShiftConfigRequest horarios de ambos turnos.
type ShiftConfigRequest struct {
	Matutino   ShiftScheduleDTO `json:"MATUTINO" validate:"required"`
	Vespertino ShiftScheduleDTO `json:"VESPERTINO" validate:"required"`
}

// ShiftConfigResponse horarios vigentes del tenant.
type ShiftConfigResponse struct {
	ManagerID  string           `json:"manager_id"`
	Matutino   ShiftScheduleDTO `json:"MATUTINO"`
	Vespertino ShiftScheduleDTO `json:"VESPERTINO"`
}

// ActivityDefinitionRequest entrada del catálogo.
type ActivityDefinitionRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}

// ActivityDefinitionResponse entrada del catálogo.
type ActivityDefinitionResponse struct {
	ID        string `json:"id"`
	ManagerID string `json:"manager_id"`
	Name      string `json:"name"`
}

// EmergencyContactRequest contacto nuevo.
type EmergencyContactRequest struct {
	Name  string `json:"name" validate:"required,max=200"`
	Phone string `json:"phone" validate:"required,max=50"`
}

// EmergencyContactResponse contacto de emergencia.
type EmergencyContactResponse struct {
	ID        string `json:"id"`
	ManagerID string `json:"manager_id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
}

// BranchInfoResponse todo lo que la sucursal publica a su equipo.
type BranchInfoResponse struct {
	Branch   BranchConfigResponse         `json:"branch"`
	Shifts   ShiftConfigResponse          `json:"shifts"`
	Catalog  []ActivityDefinitionResponse `json:"catalog"`
	Contacts []EmergencyContactResponse   `json:"contacts"`
}
