package services

import (
	"time"

	"erp/internal/models"
	"erp/internal/repositories"
)

// ProductService handles business logic related to products.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// GetAllProducts retrieves all products.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id int) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// AddProduct stamps the creation time and persists the product. The
// generated ID is filled in on the passed struct.
func (s *ProductService) AddProduct(product *models.Product) error {
	product.CreatedAt = time.Now().Format(time.RFC3339)
	return s.repo.Create(product)
}
