package services_test

import (
	"errors"
	"testing"

	"erp/internal/models"
	"erp/internal/repositories"
	"erp/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetAll() ([]models.Product, error) {
	args := m.Called()
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(id int) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

// MockOrderRepository is a mock implementation of repositories.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) GetAll() ([]models.Order, error) {
	args := m.Called()
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepository) CreateWithInvoice(order *models.Order) (*models.Invoice, error) {
	args := m.Called(order)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Invoice), args.Error(1)
}

// MockInvoiceRepository is a mock implementation of repositories.InvoiceRepository
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) GetAll() ([]models.Invoice, error) {
	args := m.Called()
	return args.Get(0).([]models.Invoice), args.Error(1)
}

// MockPublisher is a mock implementation of services.EventPublisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(exchange, routingKey string, body []byte) error {
	args := m.Called(exchange, routingKey, body)
	return args.Error(0)
}

func TestOrderService_CreateOrder(t *testing.T) {
	mockOrders := new(MockOrderRepository)
	mockProducts := new(MockProductRepository)
	mockInvoices := new(MockInvoiceRepository)
	mockPublisher := new(MockPublisher)
	service := services.NewOrderService(mockOrders, mockProducts, mockInvoices, mockPublisher, "order_events")

	product := &models.Product{ID: 3, Name: "Widget", SKU: "W-1", Price: 19.99, Stock: 5}
	mockProducts.On("GetByID", 3).Return(product, nil).Once()
	mockOrders.On("CreateWithInvoice", mock.AnythingOfType("*models.Order")).
		Run(func(args mock.Arguments) {
			order := args.Get(0).(*models.Order)
			order.ID = 7
		}).
		Return(&models.Invoice{ID: 4, OrderID: 7, Amount: 59.97, Status: models.StatusPending}, nil).
		Once()
	mockPublisher.On("Publish", "", "order_events", mock.Anything).Return(nil).Once()

	order, err := service.CreateOrder(1, 3, 3)

	assert.NoError(t, err)
	assert.Equal(t, 7, order.ID)
	assert.Equal(t, 1, order.CustomerID)
	assert.Equal(t, 3, order.ProductID)
	assert.Equal(t, 3, order.Quantity)
	assert.InDelta(t, 59.97, order.TotalPrice, 0.0001)
	assert.Equal(t, models.StatusPending, order.Status)
	assert.NotEmpty(t, order.CreatedAt)
	mockOrders.AssertExpectations(t)
	mockProducts.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}

func TestOrderService_CreateOrder_ProductNotFound(t *testing.T) {
	mockOrders := new(MockOrderRepository)
	mockProducts := new(MockProductRepository)
	mockPublisher := new(MockPublisher)
	service := services.NewOrderService(mockOrders, mockProducts, new(MockInvoiceRepository), mockPublisher, "order_events")

	mockProducts.On("GetByID", 99).Return(nil, repositories.ErrProductNotFound).Once()

	order, err := service.CreateOrder(1, 99, 1)

	assert.Nil(t, order)
	assert.True(t, errors.Is(err, repositories.ErrProductNotFound))
	mockOrders.AssertNotCalled(t, "CreateWithInvoice", mock.Anything)
	mockPublisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
	mockProducts.AssertExpectations(t)
}

func TestOrderService_CreateOrder_InsufficientStock(t *testing.T) {
	mockOrders := new(MockOrderRepository)
	mockProducts := new(MockProductRepository)
	mockPublisher := new(MockPublisher)
	service := services.NewOrderService(mockOrders, mockProducts, new(MockInvoiceRepository), mockPublisher, "order_events")

	product := &models.Product{ID: 3, Name: "Widget", SKU: "W-1", Price: 10.0, Stock: 1}
	mockProducts.On("GetByID", 3).Return(product, nil).Once()
	mockOrders.On("CreateWithInvoice", mock.AnythingOfType("*models.Order")).
		Return(nil, repositories.ErrInsufficientStock).Once()

	order, err := service.CreateOrder(1, 3, 5)

	assert.Nil(t, order)
	assert.True(t, errors.Is(err, repositories.ErrInsufficientStock))
	mockPublisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
	mockOrders.AssertExpectations(t)
}

func TestOrderService_CreateOrder_InvalidQuantity(t *testing.T) {
	mockOrders := new(MockOrderRepository)
	mockProducts := new(MockProductRepository)
	service := services.NewOrderService(mockOrders, mockProducts, new(MockInvoiceRepository), nil, "order_events")

	for _, quantity := range []int{0, -1, -100} {
		order, err := service.CreateOrder(1, 3, quantity)
		assert.Nil(t, order)
		assert.True(t, errors.Is(err, services.ErrInvalidQuantity))
	}
	mockProducts.AssertNotCalled(t, "GetByID", mock.Anything)
}

func TestOrderService_CreateOrder_NilPublisher(t *testing.T) {
	mockOrders := new(MockOrderRepository)
	mockProducts := new(MockProductRepository)
	service := services.NewOrderService(mockOrders, mockProducts, new(MockInvoiceRepository), nil, "order_events")

	product := &models.Product{ID: 1, Name: "Widget", SKU: "W-1", Price: 2.5, Stock: 10}
	mockProducts.On("GetByID", 1).Return(product, nil).Once()
	mockOrders.On("CreateWithInvoice", mock.AnythingOfType("*models.Order")).
		Return(&models.Invoice{ID: 1, OrderID: 1, Amount: 5.0, Status: models.StatusPending}, nil).
		Once()

	order, err := service.CreateOrder(1, 1, 2)

	assert.NoError(t, err)
	assert.InDelta(t, 5.0, order.TotalPrice, 0.0001)
	mockOrders.AssertExpectations(t)
}

func TestOrderService_GetAllOrders(t *testing.T) {
	mockOrders := new(MockOrderRepository)
	service := services.NewOrderService(mockOrders, new(MockProductRepository), new(MockInvoiceRepository), nil, "order_events")

	expected := []models.Order{
		{ID: 1, CustomerID: 1, ProductID: 2, Quantity: 1, TotalPrice: 10, Status: models.StatusPending},
	}
	mockOrders.On("GetAll").Return(expected, nil).Once()

	orders, err := service.GetAllOrders()
	assert.NoError(t, err)
	assert.Equal(t, expected, orders)
	mockOrders.AssertExpectations(t)
}

func TestOrderService_GetAllInvoices(t *testing.T) {
	mockInvoices := new(MockInvoiceRepository)
	service := services.NewOrderService(new(MockOrderRepository), new(MockProductRepository), mockInvoices, nil, "order_events")

	expected := []models.Invoice{
		{ID: 1, OrderID: 1, Amount: 10, Status: models.StatusPending},
	}
	mockInvoices.On("GetAll").Return(expected, nil).Once()

	invoices, err := service.GetAllInvoices()
	assert.NoError(t, err)
	assert.Equal(t, expected, invoices)
	mockInvoices.AssertExpectations(t)
}
