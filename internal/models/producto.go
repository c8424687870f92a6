package models

import "time"

// Producto represents a product. Every product belongs to exactly one
// category; deleting the category cascades to its products at the
// database level.
type Producto struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Nombre      string    `json:"nombre" gorm:"type:varchar(100);not null" validate:"required"`
	Precio      float64   `json:"precio" gorm:"not null"`
	Stock       int       `json:"stock" gorm:"not null"`
	CategoriaID uint      `json:"categoria_id" gorm:"column:categoria_id;not null;index"`
	FechaAlta   time.Time `json:"fecha_alta" gorm:"column:fecha_alta;autoCreateTime"`
	FechaAct    time.Time `json:"fecha_act" gorm:"column:fecha_act;autoUpdateTime"`
}

// TableName keeps the Spanish table name instead of GORM's pluralization.
func (Producto) TableName() string {
	return "productos"
}

// ProductoConCategoria is a read model for product listings: the product
// row joined with the name of its category.
type ProductoConCategoria struct {
	Producto
	CategoriaNombre string `json:"categoria_nombre" gorm:"column:categoria_nombre"`
}
