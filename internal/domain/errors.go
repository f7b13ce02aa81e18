package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound             = errors.New("recurso no encontrado")
	ErrUserNotFound         = errors.New("usuario no encontrado")
	ErrEmployeeNumberExists = errors.New("el número de empleado ya está registrado")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrDuplicate            = errors.New("recurso duplicado")
	ErrUnauthorized         = errors.New("no autorizado")
	ErrForbidden            = errors.New("acceso denegado")
	ErrConflict             = errors.New("conflicto con el estado actual")

	// Tenencia y agenda
	ErrTenantRequired           = errors.New("se requiere seleccionar un gerente (tenant)")
	ErrInvalidTimeRange         = errors.New("la hora de fin debe ser posterior a la hora de inicio")
	ErrActivityTypeNotInCatalog = errors.New("la actividad no existe en el catálogo de la sucursal")

	// Credenciales
	ErrFirstLoginPending = errors.New("debe cambiar la contraseña antes de continuar")
	ErrPasswordTooShort  = errors.New("la contraseña debe tener al menos 4 caracteres")
	ErrPasswordMismatch  = errors.New("las contraseñas no coinciden")
)
