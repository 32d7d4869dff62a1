package handlers

import (
	"fmt"
	"log"

	"erp/internal/models"
	"erp/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CustomerHandler handles REST requests for customers.
type CustomerHandler struct {
	service  *services.CustomerService
	validate *validator.Validate
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(service *services.CustomerService) *CustomerHandler {
	return &CustomerHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the customer routes with the Fiber app.
func (h *CustomerHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/customers", h.HandleGetCustomers)
	router.Post("/customers", h.HandleAddCustomer)
}

// HandleGetCustomers returns every customer as a JSON array.
func (h *CustomerHandler) HandleGetCustomers(c *fiber.Ctx) error {
	customers, err := h.service.GetAllCustomers()
	if err != nil {
		log.Printf("Error getting all customers: %v", err)
		return c.JSON(fiber.Map{"status": "error", "message": errorMessage(err)})
	}
	if customers == nil {
		customers = []models.Customer{}
	}
	return c.JSON(customers)
}

// HandleAddCustomer creates a new customer from a JSON body.
func (h *CustomerHandler) HandleAddCustomer(c *fiber.Ctx) error {
	var customer models.Customer
	if err := c.BodyParser(&customer); err != nil {
		log.Printf("Error parsing customer request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(customer); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}

	if err := h.service.AddCustomer(&customer); err != nil {
		log.Printf("Error adding customer: %v", err)
		return c.JSON(fiber.Map{"status": "error", "message": errorMessage(err)})
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"id":      customer.ID,
		"message": "Customer added",
	})
}
