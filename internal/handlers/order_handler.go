package handlers

import (
	"fmt"
	"log"

	"erp/internal/models"
	"erp/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CreateOrderRequest represents the request body for order creation.
type CreateOrderRequest struct {
	CustomerID int `json:"customer_id" validate:"required,gt=0"`
	ProductID  int `json:"product_id" validate:"required,gt=0"`
	Quantity   int `json:"quantity" validate:"required,gt=0"`
}

// OrderHandler handles REST requests for orders.
type OrderHandler struct {
	service  *services.OrderService
	validate *validator.Validate
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/orders", h.HandleGetOrders)
	router.Post("/orders", h.HandleCreateOrder)
}

// HandleGetOrders returns every order as a JSON array.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	orders, err := h.service.GetAllOrders()
	if err != nil {
		log.Printf("Error getting all orders: %v", err)
		return c.JSON(fiber.Map{"status": "error", "message": errorMessage(err)})
	}
	if orders == nil {
		orders = []models.Order{}
	}
	return c.JSON(orders)
}

// HandleCreateOrder creates an order (plus its invoice) from a JSON body.
// Domain failures such as a missing product or insufficient stock come back
// as {status:"error"} payloads, not transport-level errors.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	var req CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing order request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
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

	order, err := h.service.CreateOrder(req.CustomerID, req.ProductID, req.Quantity)
	if err != nil {
		log.Printf("Error creating order: %v", err)
		return c.JSON(fiber.Map{"status": "error", "message": errorMessage(err)})
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"id":      order.ID,
		"message": "Order created",
		"total":   order.TotalPrice,
	})
}
