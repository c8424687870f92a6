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

// CategoriaHandler handles HTTP requests for categories.
type CategoriaHandler struct {
	service  *services.CategoriaService
	validate *validator.Validate
}

// NewCategoriaHandler creates a new CategoriaHandler.
func NewCategoriaHandler(service *services.CategoriaService) *CategoriaHandler {
	return &CategoriaHandler{
		service:  service,
		validate: validator.New(),
	}
}

// CategoriaRequest is the request body for creating or updating a category.
type CategoriaRequest struct {
	Nombre      string `json:"nombre" validate:"required"`
	Descripcion string `json:"descripcion"`
}

// RegisterRoutes registers the category routes with the Fiber app.
func (h *CategoriaHandler) RegisterRoutes(router fiber.Router) {
	categoriaRoutes := router.Group("/categorias")
	categoriaRoutes.Get("/", h.HandleGetCategorias)
	categoriaRoutes.Post("/", h.HandleCreateCategoria)
	categoriaRoutes.Get("/:id", h.HandleGetCategoriaByID)
	categoriaRoutes.Put("/:id", h.HandleUpdateCategoria)
	categoriaRoutes.Delete("/:id", h.HandleDeleteCategoria)
}

// HandleGetCategorias retrieves all categories, newest first.
func (h *CategoriaHandler) HandleGetCategorias(c *fiber.Ctx) error {
	categorias, err := h.service.GetAllCategorias()
	if err != nil {
		log.Printf("Error getting all categories: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error en la base de datos: " + err.Error(),
		})
	}
	return c.JSON(categorias)
}

// HandleCreateCategoria creates a new category.
func (h *CategoriaHandler) HandleCreateCategoria(c *fiber.Ctx) error {
	var req CategoriaRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cuerpo de la petición inválido: " + err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "El nombre es obligatorio",
		})
	}

	categoria := models.Categoria{
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
	}
	if err := h.service.CreateCategoria(&categoria); err != nil {
		log.Printf("Error creating category: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error al crear categoría: " + err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":          categoria.ID,
		"nombre":      categoria.Nombre,
		"descripcion": categoria.Descripcion,
		"mensaje":     "Categoría creada exitosamente",
	})
}

// HandleGetCategoriaByID retrieves a category with its products. The
// productos array is always present, empty when the category owns none.
func (h *CategoriaHandler) HandleGetCategoriaByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	categoria, err := h.service.GetCategoriaByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoriaNoEncontrada) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Categoría no encontrada",
			})
		}
		log.Printf("Error getting category %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error al obtener categoría: " + err.Error(),
		})
	}

	productos := make([]fiber.Map, 0, len(categoria.Productos))
	for _, p := range categoria.Productos {
		productos = append(productos, fiber.Map{
			"id":         p.ID,
			"nombre":     p.Nombre,
			"precio":     p.Precio,
			"stock":      p.Stock,
			"fecha_alta": p.FechaAlta,
		})
	}

	return c.JSON(fiber.Map{
		"id":          categoria.ID,
		"nombre":      categoria.Nombre,
		"descripcion": categoria.Descripcion,
		"fecha_alta":  categoria.FechaAlta,
		"fecha_act":   categoria.FechaAct,
		"productos":   productos,
	})
}

// HandleUpdateCategoria replaces nombre and descripcion of a category.
func (h *CategoriaHandler) HandleUpdateCategoria(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	var req CategoriaRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cuerpo de la petición inválido: " + err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "El nombre es obligatorio",
		})
	}

	if err := h.service.UpdateCategoria(id, req.Nombre, req.Descripcion); err != nil {
		if errors.Is(err, repositories.ErrCategoriaNoEncontrada) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Categoría no encontrada",
			})
		}
		log.Printf("Error updating category %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error al actualizar categoría: " + err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"mensaje": "Categoría actualizada exitosamente",
	})
}

// HandleDeleteCategoria deletes a category and, via the store cascade,
// all of its products.
func (h *CategoriaHandler) HandleDeleteCategoria(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if err := h.service.DeleteCategoria(id); err != nil {
		if errors.Is(err, repositories.ErrCategoriaNoEncontrada) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Categoría no encontrada",
			})
		}
		log.Printf("Error deleting category %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error al eliminar categoría: " + err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"mensaje": "Categoría y sus productos eliminados exitosamente",
	})
}
