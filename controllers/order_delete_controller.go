package controllers

import (
	"net/http"
	"strconv"

	"github.com/Adarsh-722/OrderSphere/config"
	"github.com/Adarsh-722/OrderSphere/events"
	"github.com/Adarsh-722/OrderSphere/models"
	"github.com/Adarsh-722/OrderSphere/utils"
	"github.com/gin-gonic/gin"
)

// DeleteOrder deletes a payment-free order together with its items
func DeleteOrder(c *gin.Context) {
	utils.LogInfo("DeleteOrder called")

	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.LogError("Invalid order ID: %v", err)
		utils.BadRequest(c, "Invalid order ID", nil)
		return
	}

	order, err := utils.GetOrderByID(uint(orderID))
	if err != nil {
		if utils.IsNotFoundError(err) {
			utils.LogError("Order not found: %d", orderID)
			utils.NotFound(c, "Order not found")
			return
		}
		utils.LogError("Failed to load order %d: %v", orderID, err)
		utils.InternalServerError(c, "Failed to load order", err.Error())
		return
	}

	if order.HasPayments() {
		utils.LogError("Rejected deletion of paid order %d (%d payments)", order.ID, len(order.Payments))
		utils.Conflict(c, "Order cannot be deleted because payments exist", nil)
		return
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		utils.LogError("Failed to start transaction: %v", tx.Error)
		utils.InternalServerError(c, "Failed to delete order", nil)
		return
	}

	// Items are exclusively owned by the order; remove them first.
	if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to delete order items: %v", err)
		utils.InternalServerError(c, "Failed to delete order items", err.Error())
		return
	}

	if err := tx.Delete(order).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to delete order: %v", err)
		utils.InternalServerError(c, "Failed to delete order", err.Error())
		return
	}

	if err := tx.Commit().Error; err != nil {
		utils.LogError("Failed to commit transaction: %v", err)
		utils.InternalServerError(c, "Failed to delete order", nil)
		return
	}

	events.PublishOrderEvent(c.Request.Context(), events.OrderDeleted, order)

	utils.LogInfo("Order %d deleted", order.ID)
	c.Status(http.StatusNoContent)
}
