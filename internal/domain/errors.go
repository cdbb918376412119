package domain

import "errors"

var (
	ErrNotFound          = errors.New("no encontrado")
	ErrItemNotFound      = errors.New("item de carrito inexistente")
	ErrEmptyCart         = errors.New("el carrito está vacío")
	ErrMissingField      = errors.New("campo requerido vacío")
	ErrNotLoggedIn       = errors.New("debes iniciar sesión")
	ErrForbidden         = errors.New("no tienes permisos de administrador")
	ErrSessionExpired    = errors.New("sesión expirada")
	ErrInvalidTransition = errors.New("transición de estado inválida")
	ErrCancelled         = errors.New("operación cancelada")
)
