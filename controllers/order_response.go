package controllers

import (
	"fmt"

	"github.com/Adarsh-722/OrderSphere/utils"
)

// OrderItemRequest represents a submitted line item
type OrderItemRequest struct {
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

// CreateOrderRequest represents the request body for creating an order
type CreateOrderRequest struct {
	Items []OrderItemRequest `json:"items"`
}

// UpdateOrderRequest represents the request body for updating an order.
// A nil Status means the field was absent; a nil Items slice means absent,
// an empty non-nil slice means it was submitted empty.
type UpdateOrderRequest struct {
	Status *string            `json:"status"`
	Items  []OrderItemRequest `json:"items"`
}

// validateOrderItems checks a submitted item list and returns all field errors.
// Product names double as the per-order natural key, so duplicates in one
// payload are rejected here rather than surfacing as a unique index violation.
func validateOrderItems(items []OrderItemRequest) utils.FieldValidationErrors {
	var errs utils.FieldValidationErrors

	if len(items) == 0 {
		return append(errs, utils.FieldValidationError{
			Field:   "items",
			Message: "At least one item is required",
		})
	}

	seen := make(map[string]bool, len(items))
	for i, item := range items {
		if ok, msg := utils.ValidateProductName(item.ProductName); !ok {
			errs = append(errs, utils.FieldValidationError{
				Field:   fmt.Sprintf("items.%d.product_name", i),
				Message: msg,
			})
		} else if seen[item.ProductName] {
			errs = append(errs, utils.FieldValidationError{
				Field:   fmt.Sprintf("items.%d.product_name", i),
				Message: "Duplicate product name in items",
			})
		}
		seen[item.ProductName] = true

		if ok, msg := utils.ValidateQuantity(item.Quantity); !ok {
			errs = append(errs, utils.FieldValidationError{
				Field:   fmt.Sprintf("items.%d.quantity", i),
				Message: msg,
			})
		}
		if ok, msg := utils.ValidateUnitPrice(item.UnitPrice); !ok {
			errs = append(errs, utils.FieldValidationError{
				Field:   fmt.Sprintf("items.%d.unit_price", i),
				Message: msg,
			})
		}
	}

	return errs
}
