package models

import (
	"time"
)

// Order status constants
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusCancelled = "cancelled"
)

// IsValidOrderStatus reports whether s is one of the known order statuses
func IsValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusCancelled:
		return true
	}
	return false
}

type Order struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	Status      string      `gorm:"type:varchar(20);not null;default:pending" json:"status"`
	TotalAmount float64     `json:"total_amount"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
	OrderItems  []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
	Payments    []Payment   `json:"payments" gorm:"foreignKey:OrderID"`
}

// HasPayments reports whether any payment has been recorded against the order.
// An order with payments is frozen: status, items and total can no longer change.
func (o *Order) HasPayments() bool {
	return len(o.Payments) > 0
}

type OrderItem struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	OrderID     uint    `gorm:"uniqueIndex:idx_order_items_order_product" json:"order_id"`
	ProductName string  `gorm:"uniqueIndex:idx_order_items_order_product;not null" json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Subtotal    float64 `json:"subtotal"`
}
