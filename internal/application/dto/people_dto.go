package dto

import "time"

// CreateCollaboratorRequest alta de colaborador. ManagerID solo lo envía un administrador.
type CreateCollaboratorRequest struct {
	Name           string `json:"name" validate:"required,min=1,max=200"`
	EmployeeNumber string `json:"employee_number" validate:"required,max=50"`
	RoleTitle      string `json:"role_title" validate:"required,max=100"`
	Shift          string `json:"shift" validate:"required,shift"`
	ManagerID      string `json:"manager_id,omitempty"`
}

// UpdateCollaboratorRequest campos opcionales.
type UpdateCollaboratorRequest struct {
	Name           *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	EmployeeNumber *string `json:"employee_number,omitempty" validate:"omitempty,min=1,max=50"`
	RoleTitle      *string `json:"role_title,omitempty" validate:"omitempty,max=100"`
	Shift          *string `json:"shift,omitempty" validate:"omitempty,shift"`
	ManagerID      *string `json:"manager_id,omitempty" validate:"omitempty,min=1"`
}

// CollaboratorResponse colaborador visible.
type CollaboratorResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	EmployeeNumber string    `json:"employee_number"`
	RoleTitle      string    `json:"role_title"`
	Shift          string    `json:"shift"`
	AvatarInitials string    `json:"avatar_initials"`
	ManagerID      string    `json:"manager_id"`
	IsFirstLogin   bool      `json:"is_first_login"`
	CreatedAt      time.Time `json:"created_at"`
}

// ImportRowError fila del roster que no se pudo importar (Row empieza en 2: la 1 es el encabezado).
type ImportRowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// ImportResult resultado de la importación masiva.
type ImportResult struct {
	Created []CollaboratorResponse `json:"created"`
	Errors  []ImportRowError       `json:"errors"`
}

// CreateManagerRequest alta de gerente; la contraseña inicial es el número de empleado.
type CreateManagerRequest struct {
	Name           string `json:"name" validate:"required,min=1,max=200"`
	EmployeeNumber string `json:"employee_number" validate:"required,max=50"`
}

// UpdateManagerRequest campos opcionales.
type UpdateManagerRequest struct {
	Name           *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	EmployeeNumber *string `json:"employee_number,omitempty" validate:"omitempty,min=1,max=50"`
}

// ManagerResponse gerente y tamaño de su equipo.
type ManagerResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	EmployeeNumber    string    `json:"employee_number"`
	IsFirstLogin      bool      `json:"is_first_login"`
	CollaboratorCount int       `json:"collaborator_count"`
	CreatedAt         time.Time `json:"created_at"`
}
