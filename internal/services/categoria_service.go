package services

import (
	"mitienda/internal/models"
	"mitienda/internal/repositories"
)

// CategoriaService handles business logic related to categories.
type CategoriaService struct {
	repo repositories.CategoriaRepository
}

// NewCategoriaService creates a new CategoriaService.
func NewCategoriaService(repo repositories.CategoriaRepository) *CategoriaService {
	return &CategoriaService{
		repo: repo,
	}
}

// GetAllCategorias retrieves all categories, newest first.
func (s *CategoriaService) GetAllCategorias() ([]models.Categoria, error) {
	return s.repo.GetAll()
}

// GetCategoriaByID retrieves a single category with its products.
func (s *CategoriaService) GetCategoriaByID(id uint) (*models.Categoria, error) {
	return s.repo.GetByID(id)
}

// CreateCategoria creates a new category.
func (s *CategoriaService) CreateCategoria(categoria *models.Categoria) error {
	return s.repo.Create(categoria)
}

// UpdateCategoria replaces nombre and descripcion of an existing category.
func (s *CategoriaService) UpdateCategoria(id uint, nombre, descripcion string) error {
	return s.repo.Update(id, nombre, descripcion)
}

// DeleteCategoria deletes a category. The store cascade removes its products.
func (s *CategoriaService) DeleteCategoria(id uint) error {
	return s.repo.Delete(id)
}
