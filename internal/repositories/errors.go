package repositories

import "errors"

// Sentinel errors returned by repositories so callers can map them to
// HTTP status codes with errors.Is instead of matching message text.
var (
	ErrCategoriaNoEncontrada = errors.New("categoría no encontrada")
	ErrProductoNoEncontrado  = errors.New("producto no encontrado")
)
