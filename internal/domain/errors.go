package domain

import "errors"

// Errores de dominio (sin dependencias externas). La capa HTTP los traduce a
// códigos de estado; nunca se inspeccionan mensajes.
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInsufficientStock = errors.New("stock insuficiente")

	// Validación de productos y movimientos.
	ErrInvalidProductFields = errors.New("producto inválido: verifique los campos obligatorios")
	ErrInvalidQuantity      = errors.New("la cantidad debe ser positiva")
	ErrMissingExpiration    = errors.New("producto perecedero requiere fecha de vencimiento futura")
	ErrMissingBatch         = errors.New("producto perecedero requiere lote")

	// Autenticación.
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
)
