package services

import (
	"encoding/json"
	"errors"
	"log"
	"time"

	"erp/internal/models"
	"erp/internal/repositories"

	"github.com/google/uuid"
)

// ErrInvalidQuantity is returned when an order is requested with a quantity
// that is not a positive integer.
var ErrInvalidQuantity = errors.New("quantity must be a positive integer")

// EventPublisher publishes domain events. *rabbitmq.Client satisfies it; a
// nil publisher disables event publication entirely.
type EventPublisher interface {
	Publish(exchange, routingKey string, body []byte) error
}

// OrderService handles business logic related to orders and their invoices.
type OrderService struct {
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepository
	invoiceRepo repositories.InvoiceRepository
	publisher   EventPublisher
	routingKey  string
}

// NewOrderService creates a new OrderService. publisher may be nil.
func NewOrderService(orderRepo repositories.OrderRepository, productRepo repositories.ProductRepository, invoiceRepo repositories.InvoiceRepository, publisher EventPublisher, routingKey string) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		invoiceRepo: invoiceRepo,
		publisher:   publisher,
		routingKey:  routingKey,
	}
}

// GetAllOrders retrieves all orders.
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// GetAllInvoices retrieves all invoices.
func (s *OrderService) GetAllInvoices() ([]models.Invoice, error) {
	return s.invoiceRepo.GetAll()
}

// CreateOrder creates an order for quantity units of the product, freezing
// the total price at the product's current unit price. The order, the stock
// decrement and the invoice are written as one atomic unit by the
// repository, so concurrent orders can never drive stock negative. The
// customer ID is recorded as given; only the product is validated for
// existence.
func (s *OrderService) CreateOrder(customerID, productID, quantity int) (*models.Order, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}

	now := time.Now().Format(time.RFC3339)
	order := &models.Order{
		CustomerID: customerID,
		ProductID:  productID,
		Quantity:   quantity,
		TotalPrice: product.Price * float64(quantity),
		Status:     models.StatusPending,
		CreatedAt:  now,
	}

	invoice, err := s.orderRepo.CreateWithInvoice(order)
	if err != nil {
		return nil, err
	}

	s.publishOrderCreated(order, invoice)
	return order, nil
}

// publishOrderCreated emits an order.created event. Publish failures are
// logged, never surfaced: the order is already committed.
func (s *OrderService) publishOrderCreated(order *models.Order, invoice *models.Invoice) {
	if s.publisher == nil {
		return
	}

	event := map[string]interface{}{
		"event_id":    uuid.New().String(),
		"event_type":  "order.created",
		"order_id":    order.ID,
		"invoice_id":  invoice.ID,
		"customer_id": order.CustomerID,
		"product_id":  order.ProductID,
		"quantity":    order.Quantity,
		"total":       order.TotalPrice,
		"status":      order.Status,
	}
	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal order event for order %d: %v", order.ID, err)
		return
	}
	if err := s.publisher.Publish("", s.routingKey, body); err != nil {
		log.Printf("Warning: failed to publish order created event for order %d: %v", order.ID, err)
	}
}
