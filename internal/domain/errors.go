package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrCPFAlreadyExists   = errors.New("el CPF ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInvalidStatus      = errors.New("estado no reconocido o transición no permitida")
	ErrShiftFull          = errors.New("el turno ya no tiene vacantes disponibles")
	ErrAlreadyAssigned    = errors.New("el empleado ya está asignado a este turno")
	ErrTooManyAttempts    = errors.New("usuario bloqueado temporalmente por intentos fallidos")
)
