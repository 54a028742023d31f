package domain

import "errors"

// Errores de dominio (sin dependencias externas).
//
// Los tres motivos de rechazo de credenciales (ErrUserNotFound,
// ErrInactiveUser, ErrBadCredentials) se distinguen internamente pero el
// handler HTTP los colapsa en una sola respuesta genérica para no permitir
// enumeración de cuentas.
var (
	ErrNotFound       = errors.New("recurso no encontrado")
	ErrUserNotFound   = errors.New("usuario no encontrado")
	ErrInactiveUser   = errors.New("usuario inactivo")
	ErrBadCredentials = errors.New("credenciales inválidas")
	ErrNotAssigned    = errors.New("sin rol asignado en el sistema")
	ErrSystemInactive = errors.New("sistema desactivado")
	ErrInvalidInput   = errors.New("entrada inválida")
	ErrDuplicate      = errors.New("recurso duplicado")
)
