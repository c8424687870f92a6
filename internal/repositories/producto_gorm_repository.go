package repositories

import (
	"errors"
	"fmt"

	"mitienda/internal/models"

	"gorm.io/gorm"
)

const productoConCategoriaSelect = "productos.*, categorias.nombre AS categoria_nombre"

// GORMProductoRepository is a GORM implementation of ProductoRepository.
type GORMProductoRepository struct {
	db *gorm.DB
}

// NewGORMProductoRepository creates a new instance of GORMProductoRepository.
func NewGORMProductoRepository(db *gorm.DB) *GORMProductoRepository {
	return &GORMProductoRepository{
		db: db,
	}
}

// GetAll retrieves all products joined with their category name, ordered
// by creation time, newest first.
func (r *GORMProductoRepository) GetAll() ([]models.ProductoConCategoria, error) {
	var productos []models.ProductoConCategoria
	err := r.db.Table("productos").
		Select(productoConCategoriaSelect).
		Joins("INNER JOIN categorias ON categorias.id = productos.categoria_id").
		Order("productos.fecha_alta DESC").
		Find(&productos).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	return productos, nil
}

// GetByID retrieves a single product joined with its category name.
func (r *GORMProductoRepository) GetByID(id uint) (*models.ProductoConCategoria, error) {
	var producto models.ProductoConCategoria
	err := r.db.Table("productos").
		Select(productoConCategoriaSelect).
		Joins("INNER JOIN categorias ON categorias.id = productos.categoria_id").
		Where("productos.id = ?", id).
		Take(&producto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductoNoEncontrado
		}
		return nil, fmt.Errorf("failed to get product %d: %w", id, err)
	}
	return &producto, nil
}

// Create inserts a new product. The store assigns the ID and fecha_alta.
func (r *GORMProductoRepository) Create(producto *models.Producto) error {
	if err := r.db.Create(producto).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update fully replaces nombre, precio, stock and categoria_id of an
// existing product and refreshes fecha_act. A column map is used so
// zero values (precio 0, stock 0) are written.
func (r *GORMProductoRepository) Update(producto *models.Producto) error {
	res := r.db.Model(&models.Producto{}).Where("id = ?", producto.ID).Updates(map[string]interface{}{
		"nombre":       producto.Nombre,
		"precio":       producto.Precio,
		"stock":        producto.Stock,
		"categoria_id": producto.CategoriaID,
	})
	if res.Error != nil {
		return fmt.Errorf("failed to update product %d: %w", producto.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrProductoNoEncontrado
	}
	return nil
}

// UpdateStock persists a new absolute stock value and refreshes fecha_act.
func (r *GORMProductoRepository) UpdateStock(id uint, stock int) error {
	res := r.db.Model(&models.Producto{}).Where("id = ?", id).Update("stock", stock)
	if res.Error != nil {
		return fmt.Errorf("failed to update stock of product %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrProductoNoEncontrado
	}
	return nil
}
