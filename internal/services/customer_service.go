package services

import (
	"time"

	"erp/internal/models"
	"erp/internal/repositories"
)

// CustomerService handles business logic related to customers.
type CustomerService struct {
	repo repositories.CustomerRepository
}

// NewCustomerService creates a new CustomerService.
func NewCustomerService(repo repositories.CustomerRepository) *CustomerService {
	return &CustomerService{
		repo: repo,
	}
}

// GetAllCustomers retrieves all customers.
func (s *CustomerService) GetAllCustomers() ([]models.Customer, error) {
	return s.repo.GetAll()
}

// AddCustomer stamps the creation time and persists the customer. The
// generated ID is filled in on the passed struct.
func (s *CustomerService) AddCustomer(customer *models.Customer) error {
	customer.CreatedAt = time.Now().Format(time.RFC3339)
	return s.repo.Create(customer)
}
