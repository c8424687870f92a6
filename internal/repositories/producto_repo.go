package repositories

import (
	"mitienda/internal/models"
)

// ProductoRepository defines the interface for product data access.
type ProductoRepository interface {
	GetAll() ([]models.ProductoConCategoria, error)
	GetByID(id uint) (*models.ProductoConCategoria, error)
	Create(producto *models.Producto) error
	Update(producto *models.Producto) error
	UpdateStock(id uint, stock int) error
}
