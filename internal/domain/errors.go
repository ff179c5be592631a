package domain

import "errors"

// Motivos de rechazo (sin dependencias externas). Las operaciones públicas devuelven bool o nil;
// estos valores solo anotan los eventos de log con la causa.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrInvalidQuantity    = errors.New("cantidad inválida")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
)
