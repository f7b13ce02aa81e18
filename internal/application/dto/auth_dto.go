package dto

import "time"

// LoginRequest credenciales: número de empleado (o usuario de administrador) y contraseña.
type LoginRequest struct {
	EmployeeNumber string `json:"employee_number" validate:"required,max=50"`
	Password       string `json:"password" validate:"required"`
}

// PrincipalResponse usuario autenticado (sin hash de contraseña).
type PrincipalResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	EmployeeNumber string `json:"employee_number"`
	Role           string `json:"role"`
	IsFirstLogin   bool   `json:"is_first_login"`
	ManagerID      string `json:"manager_id,omitempty"`
	RoleTitle      string `json:"role_title,omitempty"`
	Shift          string `json:"shift,omitempty"`
	AvatarInitials string `json:"avatar_initials,omitempty"`
}

// LoginResponse token JWT y usuario. Con IsFirstLogin solo se permite cambiar la contraseña.
type LoginResponse struct {
	Token     string            `json:"token"`
	ExpiresAt time.Time         `json:"expires_at"`
	User      PrincipalResponse `json:"user"`
}

// ChangePasswordRequest nueva contraseña y su confirmación.
type ChangePasswordRequest struct {
	NewPassword     string `json:"new_password" validate:"required"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}
