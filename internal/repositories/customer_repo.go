package repositories

import (
	"erp/internal/models"
)

// CustomerRepository defines the interface for customer data access.
type CustomerRepository interface {
	GetAll() ([]models.Customer, error)
	Create(customer *models.Customer) error
}
