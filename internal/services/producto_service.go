package services

import (
	"log"

	"mitienda/internal/models"
	"mitienda/internal/repositories"
)

// EventPublisher publishes product events to a message broker. It is
// optional: a nil publisher disables publication without changing any
// request/response behavior.
type EventPublisher interface {
	PublishProductoEvent(evento string, data map[string]interface{}) error
}

// StockAjuste is the outcome of applying a stock delta to a product.
type StockAjuste struct {
	StockAnterior int `json:"stock_anterior"`
	StockActual   int `json:"stock_actual"`
	Cambio        int `json:"cambio"`
}

// ProductoService handles business logic related to products: the
// category-existence check before mutations and the stock delta rule.
type ProductoService struct {
	productoRepo  repositories.ProductoRepository
	categoriaRepo repositories.CategoriaRepository
	events        EventPublisher
}

// NewProductoService creates a new ProductoService. events may be nil.
func NewProductoService(productoRepo repositories.ProductoRepository, categoriaRepo repositories.CategoriaRepository, events EventPublisher) *ProductoService {
	return &ProductoService{
		productoRepo:  productoRepo,
		categoriaRepo: categoriaRepo,
		events:        events,
	}
}

// GetAllProductos retrieves all products with their category name, newest first.
func (s *ProductoService) GetAllProductos() ([]models.ProductoConCategoria, error) {
	return s.productoRepo.GetAll()
}

// GetProductoByID retrieves a single product with its category name.
func (s *ProductoService) GetProductoByID(id uint) (*models.ProductoConCategoria, error) {
	return s.productoRepo.GetByID(id)
}

// CreateProducto creates a new product after verifying that the
// referenced category exists. The check and the insert are two separate
// statements; the foreign key on categoria_id is the hard backstop.
func (s *ProductoService) CreateProducto(producto *models.Producto) error {
	if err := s.checkCategoria(producto.CategoriaID); err != nil {
		return err
	}
	if err := s.productoRepo.Create(producto); err != nil {
		return err
	}

	s.publish("producto.creado", map[string]interface{}{
		"id":           producto.ID,
		"nombre":       producto.Nombre,
		"precio":       producto.Precio,
		"stock":        producto.Stock,
		"categoria_id": producto.CategoriaID,
	})
	return nil
}

// UpdateProducto fully replaces an existing product after re-verifying
// that the referenced category exists.
func (s *ProductoService) UpdateProducto(producto *models.Producto) error {
	if err := s.checkCategoria(producto.CategoriaID); err != nil {
		return err
	}
	if err := s.productoRepo.Update(producto); err != nil {
		return err
	}

	s.publish("producto.actualizado", map[string]interface{}{
		"id":           producto.ID,
		"nombre":       producto.Nombre,
		"precio":       producto.Precio,
		"stock":        producto.Stock,
		"categoria_id": producto.CategoriaID,
	})
	return nil
}

// AjustarStock applies a signed delta to a product's stock: read the
// current value, compute the candidate, reject it if negative, persist.
func (s *ProductoService) AjustarStock(id uint, cantidad int) (*StockAjuste, error) {
	producto, err := s.productoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	nuevoStock := producto.Stock + cantidad
	if nuevoStock < 0 {
		return nil, ErrStockNegativo
	}

	if err := s.productoRepo.UpdateStock(id, nuevoStock); err != nil {
		return nil, err
	}

	s.publish("producto.stock_ajustado", map[string]interface{}{
		"id":             id,
		"stock_anterior": producto.Stock,
		"stock_actual":   nuevoStock,
		"cambio":         cantidad,
	})

	return &StockAjuste{
		StockAnterior: producto.Stock,
		StockActual:   nuevoStock,
		Cambio:        cantidad,
	}, nil
}

func (s *ProductoService) checkCategoria(id uint) error {
	ok, err := s.categoriaRepo.Exists(id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrCategoriaNoExiste
	}
	return nil
}

// publish sends a product event when a publisher is configured. A
// publish failure is logged, never surfaced to the request.
func (s *ProductoService) publish(evento string, data map[string]interface{}) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishProductoEvent(evento, data); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", evento, err)
	}
}
