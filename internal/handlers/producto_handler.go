package handlers

import (
	"errors"
	"log"

	"mitienda/internal/models"
	"mitienda/internal/repositories"
	"mitienda/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProductoHandler handles HTTP requests for products.
type ProductoHandler struct {
	service  *services.ProductoService
	validate *validator.Validate
}

// NewProductoHandler creates a new ProductoHandler.
func NewProductoHandler(service *services.ProductoService) *ProductoHandler {
	return &ProductoHandler{
		service:  service,
		validate: validator.New(),
	}
}

// ProductoRequest is the request body for creating or updating a product.
// The numeric fields are pointers so "absent" and "present but zero" are
// distinguished: a price of 0 is valid, a missing price is not.
type ProductoRequest struct {
	Nombre      string   `json:"nombre" validate:"required"`
	Precio      *float64 `json:"precio" validate:"required"`
	Stock       *int     `json:"stock" validate:"required,gte=0"`
	CategoriaID *uint    `json:"categoria_id" validate:"required"`
}

// StockRequest is the request body for applying a stock delta. cantidad
// may be zero or negative, but must be present.
type StockRequest struct {
	Cantidad *int `json:"cantidad" validate:"required"`
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductoHandler) RegisterRoutes(router fiber.Router) {
	productoRoutes := router.Group("/productos")
	productoRoutes.Get("/", h.HandleGetProductos)
	productoRoutes.Post("/", h.HandleCreateProducto)
	productoRoutes.Get("/:id", h.HandleGetProductoByID)
	productoRoutes.Put("/:id", h.HandleUpdateProducto)
	productoRoutes.Patch("/:id/stock", h.HandleAjustarStock)
}

// HandleGetProductos retrieves all products with their category name,
// newest first.
func (h *ProductoHandler) HandleGetProductos(c *fiber.Ctx) error {
	productos, err := h.service.GetAllProductos()
	if err != nil {
		log.Printf("Error getting all products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error al obtener productos: " + err.Error(),
		})
	}
	return c.JSON(productos)
}

// HandleCreateProducto creates a new product. The referenced category
// must exist; a nonexistent one is invalid input (400), not a 404.
func (h *ProductoHandler) HandleCreateProducto(c *fiber.Ctx) error {
	var req ProductoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cuerpo de la petición inválido: " + err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Todos los campos son obligatorios",
		})
	}

	producto := models.Producto{
		Nombre:      req.Nombre,
		Precio:      *req.Precio,
		Stock:       *req.Stock,
		CategoriaID: *req.CategoriaID,
	}
	if err := h.service.CreateProducto(&producto); err != nil {
		if errors.Is(err, services.ErrCategoriaNoExiste) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "La categoría no existe",
			})
		}
		log.Printf("Error creating product: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error al crear producto: " + err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":           producto.ID,
		"nombre":       producto.Nombre,
		"precio":       producto.Precio,
		"stock":        producto.Stock,
		"categoria_id": producto.CategoriaID,
		"mensaje":      "Producto creado exitosamente",
	})
}

// HandleGetProductoByID retrieves a single product with its category name.
func (h *ProductoHandler) HandleGetProductoByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	producto, err := h.service.GetProductoByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrProductoNoEncontrado) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Producto no encontrado",
			})
		}
		log.Printf("Error getting product %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error al obtener producto: " + err.Error(),
		})
	}

	return c.JSON(producto)
}

// HandleUpdateProducto fully replaces an existing product.
func (h *ProductoHandler) HandleUpdateProducto(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	var req ProductoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cuerpo de la petición inválido: " + err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Todos los campos son obligatorios",
		})
	}

	producto := models.Producto{
		ID:          id,
		Nombre:      req.Nombre,
		Precio:      *req.Precio,
		Stock:       *req.Stock,
		CategoriaID: *req.CategoriaID,
	}
	if err := h.service.UpdateProducto(&producto); err != nil {
		if errors.Is(err, services.ErrCategoriaNoExiste) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "La categoría no existe",
			})
		}
		if errors.Is(err, repositories.ErrProductoNoEncontrado) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Producto no encontrado",
			})
		}
		log.Printf("Error updating product %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error al actualizar producto: " + err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"mensaje": "Producto actualizado exitosamente",
	})
}

// HandleAjustarStock applies a signed delta to a product's stock. The
// resulting stock must not go negative.
func (h *ProductoHandler) HandleAjustarStock(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	var req StockRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cuerpo de la petición inválido: " + err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "La cantidad es obligatoria",
		})
	}

	ajuste, err := h.service.AjustarStock(id, *req.Cantidad)
	if err != nil {
		if errors.Is(err, repositories.ErrProductoNoEncontrado) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Producto no encontrado",
			})
		}
		if errors.Is(err, services.ErrStockNegativo) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "El stock no puede ser negativo",
			})
		}
		log.Printf("Error adjusting stock of product %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error al actualizar stock: " + err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"mensaje":        "Stock actualizado exitosamente",
		"stock_anterior": ajuste.StockAnterior,
		"stock_actual":   ajuste.StockActual,
		"cambio":         ajuste.Cambio,
	})
}
