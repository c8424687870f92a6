package services

import "errors"

// Business rule rejections. Handlers map these to 400 responses,
// distinct from the repositories' not-found errors which map to 404.
var (
	// ErrCategoriaNoExiste is returned when a product mutation references
	// a category that does not exist.
	ErrCategoriaNoExiste = errors.New("la categoría no existe")

	// ErrStockNegativo is returned when applying a stock delta would
	// leave the product with negative stock.
	ErrStockNegativo = errors.New("el stock no puede ser negativo")
)
