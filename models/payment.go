package models

import (
	"time"
)

// Payment status constants
const (
	PaymentStatusPending    = "pending"
	PaymentStatusSuccessful = "successful"
	PaymentStatusFailed     = "failed"
)

// Payment rows are written by the payment subsystem only; the order core
// reads them to enforce the paid-order immutability rule.
type Payment struct {
	ID               uint                   `json:"id" gorm:"primaryKey"`
	OrderID          uint                   `json:"order_id" gorm:"index"`
	Status           string                 `json:"status"` // pending, successful, failed
	PaymentMethod    string                 `json:"payment_method"`
	Amount           float64                `json:"amount"`
	GatewayReference string                 `json:"gateway_reference" gorm:"index"`
	GatewayPayload   map[string]interface{} `json:"gateway_payload,omitempty" gorm:"serializer:json"`
	CreatedAt        time.Time              `json:"created_at"`
	UpdatedAt        time.Time              `json:"updated_at"`
}
