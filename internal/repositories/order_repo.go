package repositories

import (
	"erp/internal/models"
)

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	GetAll() ([]models.Order, error)
	// CreateWithInvoice atomically decrements the product's stock, inserts
	// the order, and inserts the paired invoice. It returns
	// ErrProductNotFound or ErrInsufficientStock without writing anything
	// when the preconditions fail.
	CreateWithInvoice(order *models.Order) (*models.Invoice, error)
}

// InvoiceRepository defines the interface for invoice data access. Invoices
// are only ever written through OrderRepository.CreateWithInvoice.
type InvoiceRepository interface {
	GetAll() ([]models.Invoice, error)
}
