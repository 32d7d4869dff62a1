package repositories

import (
	"fmt"

	"erp/internal/models"

	"gorm.io/gorm"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db: db,
	}
}

// GetAll retrieves all orders from the database in insertion order.
func (r *GORMOrderRepository) GetAll() ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Order("id").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to get all orders: %w", err)
	}
	return orders, nil
}

// CreateWithInvoice runs the order-creation unit in a single transaction.
// The stock decrement is conditional on sufficient stock, so two concurrent
// orders against the same product cannot both pass the check: the second
// decrement affects zero rows and the whole unit rolls back.
func (r *GORMOrderRepository) CreateWithInvoice(order *models.Order) (*models.Invoice, error) {
	invoice := &models.Invoice{
		Amount:    order.TotalPrice,
		Status:    models.StatusPending,
		CreatedAt: order.CreatedAt,
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Product{}).
			Where("id = ? AND stock >= ?", order.ProductID, order.Quantity).
			UpdateColumn("stock", gorm.Expr("stock - ?", order.Quantity))
		if res.Error != nil {
			return fmt.Errorf("failed to decrement stock for product %d: %w", order.ProductID, res.Error)
		}
		if res.RowsAffected == 0 {
			// Zero rows means either no such product or not enough stock.
			var count int64
			if err := tx.Model(&models.Product{}).Where("id = ?", order.ProductID).Count(&count).Error; err != nil {
				return fmt.Errorf("failed to look up product %d: %w", order.ProductID, err)
			}
			if count == 0 {
				return ErrProductNotFound
			}
			return ErrInsufficientStock
		}

		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		invoice.OrderID = order.ID
		if err := tx.Create(invoice).Error; err != nil {
			return fmt.Errorf("failed to create invoice for order %d: %w", order.ID, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return invoice, nil
}

// GORMInvoiceRepository is a GORM implementation of InvoiceRepository.
type GORMInvoiceRepository struct {
	db *gorm.DB
}

// NewGORMInvoiceRepository creates a new instance of GORMInvoiceRepository.
func NewGORMInvoiceRepository(db *gorm.DB) *GORMInvoiceRepository {
	return &GORMInvoiceRepository{
		db: db,
	}
}

// GetAll retrieves all invoices from the database in insertion order.
func (r *GORMInvoiceRepository) GetAll() ([]models.Invoice, error) {
	var invoices []models.Invoice
	if err := r.db.Order("id").Find(&invoices).Error; err != nil {
		return nil, fmt.Errorf("failed to get all invoices: %w", err)
	}
	return invoices, nil
}
