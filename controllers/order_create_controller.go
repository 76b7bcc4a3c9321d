package controllers

import (
	"github.com/Adarsh-722/OrderSphere/config"
	"github.com/Adarsh-722/OrderSphere/events"
	"github.com/Adarsh-722/OrderSphere/models"
	"github.com/Adarsh-722/OrderSphere/utils"
	"github.com/gin-gonic/gin"
)

// CreateOrder creates a pending order with its items. The order row, its
// items and the computed total are written in one transaction so a partial
// order is never visible.
func CreateOrder(c *gin.Context) {
	utils.LogInfo("CreateOrder called")

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request body: %v", err)
		utils.BadRequest(c, "Invalid request body", err.Error())
		return
	}

	if errs := validateOrderItems(req.Items); len(errs) > 0 {
		utils.LogError("Order payload failed validation: %v", errs)
		utils.ValidationError(c, "Invalid order items", errs)
		return
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		utils.LogError("Failed to start transaction: %v", tx.Error)
		utils.InternalServerError(c, "Failed to create order", nil)
		return
	}

	order := models.Order{
		Status:      models.OrderStatusPending,
		TotalAmount: 0,
	}
	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to create order: %v", err)
		utils.InternalServerError(c, "Failed to create order", err.Error())
		return
	}

	var total float64
	for _, item := range req.Items {
		subtotal := float64(item.Quantity) * item.UnitPrice
		orderItem := models.OrderItem{
			OrderID:     order.ID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Subtotal:    subtotal,
		}
		if err := tx.Create(&orderItem).Error; err != nil {
			tx.Rollback()
			utils.LogError("Failed to create order item %s: %v", item.ProductName, err)
			utils.InternalServerError(c, "Failed to create order items", err.Error())
			return
		}
		total += subtotal
	}

	if err := tx.Model(&order).Update("total_amount", total).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to update order total: %v", err)
		utils.InternalServerError(c, "Failed to create order", err.Error())
		return
	}

	if err := tx.Commit().Error; err != nil {
		utils.LogError("Failed to commit transaction: %v", err)
		utils.InternalServerError(c, "Failed to create order", nil)
		return
	}

	created, err := utils.GetOrderByID(order.ID)
	if err != nil {
		utils.LogError("Failed to reload created order %d: %v", order.ID, err)
		utils.InternalServerError(c, "Failed to load created order", err.Error())
		return
	}

	events.PublishOrderEvent(c.Request.Context(), events.OrderCreated, created)

	utils.LogInfo("Order %d created with %d items, total %.2f", created.ID, len(created.OrderItems), created.TotalAmount)
	utils.Created(c, "Order created successfully", gin.H{"order": created})
}
