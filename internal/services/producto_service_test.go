package services_test

import (
	"fmt"
	"testing"

	"mitienda/internal/models"
	"mitienda/internal/repositories"
	"mitienda/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProductoRepository is a mock implementation of repositories.ProductoRepository
type MockProductoRepository struct {
	mock.Mock
}

func (m *MockProductoRepository) GetAll() ([]models.ProductoConCategoria, error) {
	args := m.Called()
	return args.Get(0).([]models.ProductoConCategoria), args.Error(1)
}

func (m *MockProductoRepository) GetByID(id uint) (*models.ProductoConCategoria, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProductoConCategoria), args.Error(1)
}

func (m *MockProductoRepository) Create(producto *models.Producto) error {
	args := m.Called(producto)
	return args.Error(0)
}

func (m *MockProductoRepository) Update(producto *models.Producto) error {
	args := m.Called(producto)
	return args.Error(0)
}

func (m *MockProductoRepository) UpdateStock(id uint, stock int) error {
	args := m.Called(id, stock)
	return args.Error(0)
}

// MockEventPublisher is a mock implementation of services.EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishProductoEvent(evento string, data map[string]interface{}) error {
	args := m.Called(evento, data)
	return args.Error(0)
}

func conCategoria(p models.Producto, categoriaNombre string) *models.ProductoConCategoria {
	return &models.ProductoConCategoria{Producto: p, CategoriaNombre: categoriaNombre}
}

func TestProductoService_GetAllProductos(t *testing.T) {
	mockRepo := new(MockProductoRepository)
	mockCategorias := new(MockCategoriaRepository)
	service := services.NewProductoService(mockRepo, mockCategorias, nil)

	expectedProductos := []models.ProductoConCategoria{
		*conCategoria(models.Producto{ID: 1, Nombre: "Cola", Precio: 2.5, Stock: 10, CategoriaID: 1}, "Bebidas"),
		*conCategoria(models.Producto{ID: 2, Nombre: "Agua", Precio: 1.0, Stock: 30, CategoriaID: 1}, "Bebidas"),
	}

	mockRepo.On("GetAll").Return(expectedProductos, nil).Once()

	productos, err := service.GetAllProductos()

	assert.NoError(t, err)
	assert.Len(t, productos, 2)
	assert.Equal(t, expectedProductos, productos)
	mockRepo.AssertExpectations(t)
}

func TestProductoService_CreateProducto(t *testing.T) {
	mockRepo := new(MockProductoRepository)
	mockCategorias := new(MockCategoriaRepository)
	mockEvents := new(MockEventPublisher)
	service := services.NewProductoService(mockRepo, mockCategorias, mockEvents)

	nuevo := &models.Producto{Nombre: "Cola", Precio: 2.5, Stock: 10, CategoriaID: 1}

	// Successful creation publishes a producto.creado event
	mockCategorias.On("Exists", uint(1)).Return(true, nil).Once()
	mockRepo.On("Create", nuevo).Return(nil).Once()
	mockEvents.On("PublishProductoEvent", "producto.creado", mock.Anything).Return(nil).Once()

	err := service.CreateProducto(nuevo)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockCategorias.AssertExpectations(t)
	mockEvents.AssertExpectations(t)
}

func TestProductoService_CreateProducto_CategoriaNoExiste(t *testing.T) {
	mockRepo := new(MockProductoRepository)
	mockCategorias := new(MockCategoriaRepository)
	service := services.NewProductoService(mockRepo, mockCategorias, nil)

	nuevo := &models.Producto{Nombre: "Cola", Precio: 2.5, Stock: 10, CategoriaID: 999}

	mockCategorias.On("Exists", uint(999)).Return(false, nil).Once()

	err := service.CreateProducto(nuevo)
	assert.ErrorIs(t, err, services.ErrCategoriaNoExiste)
	// The products table must not be touched
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
	mockCategorias.AssertExpectations(t)
}

func TestProductoService_CreateProducto_CheckFailure(t *testing.T) {
	mockRepo := new(MockProductoRepository)
	mockCategorias := new(MockCategoriaRepository)
	service := services.NewProductoService(mockRepo, mockCategorias, nil)

	nuevo := &models.Producto{Nombre: "Cola", Precio: 2.5, Stock: 10, CategoriaID: 1}

	mockCategorias.On("Exists", uint(1)).Return(false, fmt.Errorf("database error")).Once()

	err := service.CreateProducto(nuevo)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, services.ErrCategoriaNoExiste)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
	mockCategorias.AssertExpectations(t)
}

func TestProductoService_UpdateProducto(t *testing.T) {
	mockRepo := new(MockProductoRepository)
	mockCategorias := new(MockCategoriaRepository)
	service := services.NewProductoService(mockRepo, mockCategorias, nil)

	actualizado := &models.Producto{ID: 1, Nombre: "Cola Zero", Precio: 2.75, Stock: 8, CategoriaID: 2}

	// Successful update re-checks the referenced category
	mockCategorias.On("Exists", uint(2)).Return(true, nil).Once()
	mockRepo.On("Update", actualizado).Return(nil).Once()
	err := service.UpdateProducto(actualizado)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockCategorias.AssertExpectations(t)

	// Update of a missing product
	mockCategorias.On("Exists", uint(2)).Return(true, nil).Once()
	mockRepo.On("Update", actualizado).Return(repositories.ErrProductoNoEncontrado).Once()
	err = service.UpdateProducto(actualizado)
	assert.ErrorIs(t, err, repositories.ErrProductoNoEncontrado)
	mockRepo.AssertExpectations(t)

	// Update referencing a missing category
	mockCategorias.On("Exists", uint(2)).Return(false, nil).Once()
	err = service.UpdateProducto(actualizado)
	assert.ErrorIs(t, err, services.ErrCategoriaNoExiste)
	mockCategorias.AssertExpectations(t)
}

func TestProductoService_AjustarStock(t *testing.T) {
	mockRepo := new(MockProductoRepository)
	mockCategorias := new(MockCategoriaRepository)
	mockEvents := new(MockEventPublisher)
	service := services.NewProductoService(mockRepo, mockCategorias, mockEvents)

	existente := conCategoria(models.Producto{ID: 1, Nombre: "Cola", Precio: 2.5, Stock: 10, CategoriaID: 1}, "Bebidas")

	mockRepo.On("GetByID", uint(1)).Return(existente, nil).Once()
	mockRepo.On("UpdateStock", uint(1), 7).Return(nil).Once()
	mockEvents.On("PublishProductoEvent", "producto.stock_ajustado", mock.Anything).Return(nil).Once()

	ajuste, err := service.AjustarStock(1, -3)
	assert.NoError(t, err)
	assert.Equal(t, 10, ajuste.StockAnterior)
	assert.Equal(t, 7, ajuste.StockActual)
	assert.Equal(t, -3, ajuste.Cambio)
	mockRepo.AssertExpectations(t)
	mockEvents.AssertExpectations(t)
}

func TestProductoService_AjustarStock_Negativo(t *testing.T) {
	mockRepo := new(MockProductoRepository)
	mockCategorias := new(MockCategoriaRepository)
	service := services.NewProductoService(mockRepo, mockCategorias, nil)

	existente := conCategoria(models.Producto{ID: 1, Nombre: "Cola", Precio: 2.5, Stock: 7, CategoriaID: 1}, "Bebidas")

	mockRepo.On("GetByID", uint(1)).Return(existente, nil).Once()

	ajuste, err := service.AjustarStock(1, -100)
	assert.ErrorIs(t, err, services.ErrStockNegativo)
	assert.Nil(t, ajuste)
	// Stock must stay untouched
	mockRepo.AssertNotCalled(t, "UpdateStock", mock.Anything, mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestProductoService_AjustarStock_Cero(t *testing.T) {
	mockRepo := new(MockProductoRepository)
	mockCategorias := new(MockCategoriaRepository)
	service := services.NewProductoService(mockRepo, mockCategorias, nil)

	existente := conCategoria(models.Producto{ID: 1, Nombre: "Cola", Precio: 2.5, Stock: 7, CategoriaID: 1}, "Bebidas")

	// A present-but-zero delta is a valid no-op write
	mockRepo.On("GetByID", uint(1)).Return(existente, nil).Once()
	mockRepo.On("UpdateStock", uint(1), 7).Return(nil).Once()

	ajuste, err := service.AjustarStock(1, 0)
	assert.NoError(t, err)
	assert.Equal(t, 7, ajuste.StockAnterior)
	assert.Equal(t, 7, ajuste.StockActual)
	assert.Equal(t, 0, ajuste.Cambio)
	mockRepo.AssertExpectations(t)
}

func TestProductoService_AjustarStock_NoEncontrado(t *testing.T) {
	mockRepo := new(MockProductoRepository)
	mockCategorias := new(MockCategoriaRepository)
	service := services.NewProductoService(mockRepo, mockCategorias, nil)

	mockRepo.On("GetByID", uint(99)).Return(nil, repositories.ErrProductoNoEncontrado).Once()

	ajuste, err := service.AjustarStock(99, 5)
	assert.ErrorIs(t, err, repositories.ErrProductoNoEncontrado)
	assert.Nil(t, ajuste)
	mockRepo.AssertExpectations(t)
}

func TestProductoService_PublishFailureDoesNotFailRequest(t *testing.T) {
	mockRepo := new(MockProductoRepository)
	mockCategorias := new(MockCategoriaRepository)
	mockEvents := new(MockEventPublisher)
	service := services.NewProductoService(mockRepo, mockCategorias, mockEvents)

	nuevo := &models.Producto{Nombre: "Cola", Precio: 2.5, Stock: 10, CategoriaID: 1}

	mockCategorias.On("Exists", uint(1)).Return(true, nil).Once()
	mockRepo.On("Create", nuevo).Return(nil).Once()
	mockEvents.On("PublishProductoEvent", "producto.creado", mock.Anything).Return(fmt.Errorf("broker down")).Once()

	err := service.CreateProducto(nuevo)
	assert.NoError(t, err)
	mockEvents.AssertExpectations(t)
}
