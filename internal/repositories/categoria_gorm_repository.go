package repositories

import (
	"errors"
	"fmt"

	"mitienda/internal/models"

	"gorm.io/gorm"
)

// GORMCategoriaRepository is a GORM implementation of CategoriaRepository.
type GORMCategoriaRepository struct {
	db *gorm.DB
}

// NewGORMCategoriaRepository creates a new instance of GORMCategoriaRepository.
func NewGORMCategoriaRepository(db *gorm.DB) *GORMCategoriaRepository {
	return &GORMCategoriaRepository{
		db: db,
	}
}

// GetAll retrieves all categories ordered by creation time, newest first.
func (r *GORMCategoriaRepository) GetAll() ([]models.Categoria, error) {
	var categorias []models.Categoria
	if err := r.db.Order("fecha_alta DESC").Find(&categorias).Error; err != nil {
		return nil, fmt.Errorf("failed to get all categories: %w", err)
	}
	return categorias, nil
}

// GetByID retrieves a single category with its products preloaded.
func (r *GORMCategoriaRepository) GetByID(id uint) (*models.Categoria, error) {
	var categoria models.Categoria
	if err := r.db.Preload("Productos").First(&categoria, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoriaNoEncontrada
		}
		return nil, fmt.Errorf("failed to get category %d: %w", id, err)
	}
	return &categoria, nil
}

// Create inserts a new category. The store assigns the ID and fecha_alta.
func (r *GORMCategoriaRepository) Create(categoria *models.Categoria) error {
	if err := r.db.Create(categoria).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// Update replaces nombre and descripcion of an existing category and
// refreshes fecha_act. A column map is used instead of Save so an empty
// descripcion is written rather than skipped as a zero value.
func (r *GORMCategoriaRepository) Update(id uint, nombre, descripcion string) error {
	res := r.db.Model(&models.Categoria{}).Where("id = ?", id).Updates(map[string]interface{}{
		"nombre":      nombre,
		"descripcion": descripcion,
	})
	if res.Error != nil {
		return fmt.Errorf("failed to update category %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrCategoriaNoEncontrada
	}
	return nil
}

// Delete removes a category. Owned products are removed by the
// ON DELETE CASCADE constraint on productos.categoria_id.
func (r *GORMCategoriaRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Categoria{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete category %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrCategoriaNoEncontrada
	}
	return nil
}

// Exists reports whether a category with the given ID is present.
func (r *GORMCategoriaRepository) Exists(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Categoria{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check category %d: %w", id, err)
	}
	return count > 0, nil
}
