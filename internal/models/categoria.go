package models

import "time"

// Categoria represents a product category.
type Categoria struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	Nombre      string     `json:"nombre" gorm:"type:varchar(100);not null" validate:"required"`
	Descripcion string     `json:"descripcion" gorm:"type:varchar(255)"`
	FechaAlta   time.Time  `json:"fecha_alta" gorm:"column:fecha_alta;autoCreateTime"`
	FechaAct    time.Time  `json:"fecha_act" gorm:"column:fecha_act;autoUpdateTime"`
	Productos   []Producto `json:"productos,omitempty" gorm:"foreignKey:CategoriaID;constraint:OnDelete:CASCADE"`
}

// TableName keeps the Spanish table name instead of GORM's pluralization.
func (Categoria) TableName() string {
	return "categorias"
}
