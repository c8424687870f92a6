package repositories

import (
	"mitienda/internal/models"
)

// CategoriaRepository defines the interface for category data access.
type CategoriaRepository interface {
	GetAll() ([]models.Categoria, error)
	GetByID(id uint) (*models.Categoria, error)
	Create(categoria *models.Categoria) error
	Update(id uint, nombre, descripcion string) error
	Delete(id uint) error
	Exists(id uint) (bool, error)
}
