package utils

import (
	"fmt"
	"strings"

	"github.com/Adarsh-722/OrderSphere/models"
)

// FieldValidationError represents a validation error for a specific field
type FieldValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldValidationErrors represents multiple field validation errors
type FieldValidationErrors []FieldValidationError

// Error implements the error interface
func (e FieldValidationErrors) Error() string {
	var messages []string
	for _, err := range e {
		messages = append(messages, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return strings.Join(messages, "; ")
}

// ValidateOrderStatus checks a submitted order status against the enum
func ValidateOrderStatus(status string) (bool, string) {
	if !models.IsValidOrderStatus(status) {
		return false, fmt.Sprintf("Status must be one of: %s, %s, %s",
			models.OrderStatusPending, models.OrderStatusConfirmed, models.OrderStatusCancelled)
	}
	return true, ""
}

// ValidateProductName checks an order item's product name
func ValidateProductName(name string) (bool, string) {
	if strings.TrimSpace(name) == "" {
		return false, "Product name is required"
	}
	return true, ""
}

// ValidateQuantity checks an order item's quantity
func ValidateQuantity(quantity int) (bool, string) {
	if quantity < 1 {
		return false, "Quantity must be at least 1"
	}
	return true, ""
}

// ValidateUnitPrice checks an order item's unit price
func ValidateUnitPrice(price float64) (bool, string) {
	if price < 0 {
		return false, "Unit price cannot be negative"
	}
	return true, ""
}
