package utils

import (
	"errors"

	"github.com/Adarsh-722/OrderSphere/config"
	"github.com/Adarsh-722/OrderSphere/models"
	"gorm.io/gorm"
)

// GetOrderByID retrieves an order with its items and payments
func GetOrderByID(id uint) (*models.Order, error) {
	var order models.Order
	err := config.DB.Preload("OrderItems").Preload("Payments").First(&order, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundError("Order not found", err)
		}
		return nil, err
	}
	return &order, nil
}

// CountOrders counts orders, optionally filtered by status
func CountOrders(status string) (int64, error) {
	var total int64
	query := config.DB.Model(&models.Order{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Count(&total).Error
	return total, err
}

// ListOrders retrieves a page of orders, newest first, with items and payments
func ListOrders(status string, limit, offset int) ([]models.Order, error) {
	var orders []models.Order
	query := config.DB.Preload("OrderItems").Preload("Payments").
		Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Limit(limit).Offset(offset).Find(&orders).Error
	return orders, err
}

// FindOrders retrieves all orders matching the status filter, newest first,
// with items and payments
func FindOrders(status string) ([]models.Order, error) {
	var orders []models.Order
	query := config.DB.Preload("OrderItems").Preload("Payments").
		Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Find(&orders).Error
	return orders, err
}

// GetPaymentByReference retrieves a payment by its gateway reference
func GetPaymentByReference(reference string) (*models.Payment, error) {
	var payment models.Payment
	err := config.DB.Where("gateway_reference = ?", reference).First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundError("Payment not found", err)
		}
		return nil, err
	}
	return &payment, nil
}
