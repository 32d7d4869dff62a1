package handlers

import (
	"encoding/json"
	"errors"

	"erp/internal/repositories"
	"erp/internal/services"

	"github.com/gofiber/fiber/v2"
)

// errorMessage maps a service error onto the operator-facing message carried
// in {status:"error"} payloads. Store failures fall through with their own
// text.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, repositories.ErrProductNotFound):
		return "Product not found"
	case errors.Is(err, repositories.ErrInsufficientStock):
		return "Insufficient stock"
	case errors.Is(err, services.ErrInvalidQuantity):
		return "Quantity must be a positive integer"
	default:
		return err.Error()
	}
}

// errorResult serializes a domain error as a data-level result payload.
func errorResult(err error) string {
	return resultJSON(fiber.Map{"status": "error", "message": errorMessage(err)})
}

// resultJSON serializes a result payload for embedding in a SOAP response
// element.
func resultJSON(v interface{}) string {
	body, err := json.Marshal(v)
	if err != nil {
		return `{"status": "error", "message": "failed to serialize result"}`
	}
	return string(body)
}
