package controllers

import (
	"strconv"

	"github.com/Adarsh-722/OrderSphere/config"
	"github.com/Adarsh-722/OrderSphere/events"
	"github.com/Adarsh-722/OrderSphere/models"
	"github.com/Adarsh-722/OrderSphere/utils"
	"github.com/gin-gonic/gin"
)

// UpdateOrder updates an order's status and/or replaces its item list.
// A submitted item list is a full replacement keyed by product name: matching
// names are overwritten in place, new names inserted, and existing items whose
// name is absent from the payload are deleted. Orders with payments are
// immutable; that check runs before the payload is even validated.
func UpdateOrder(c *gin.Context) {
	utils.LogInfo("UpdateOrder called")

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
		utils.LogError("Rejected update of paid order %d (%d payments)", order.ID, len(order.Payments))
		utils.Conflict(c, "Order cannot be updated because it already has payments", nil)
		return
	}

	var req UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request body: %v", err)
		utils.BadRequest(c, "Invalid request body", err.Error())
		return
	}

	var errs utils.FieldValidationErrors
	if req.Status != nil {
		if ok, msg := utils.ValidateOrderStatus(*req.Status); !ok {
			errs = append(errs, utils.FieldValidationError{Field: "status", Message: msg})
		}
	}
	if req.Items != nil {
		errs = append(errs, validateOrderItems(req.Items)...)
	}
	if len(errs) > 0 {
		utils.LogError("Order update payload failed validation: %v", errs)
		utils.ValidationError(c, "Invalid order payload", errs)
		return
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		utils.LogError("Failed to start transaction: %v", tx.Error)
		utils.InternalServerError(c, "Failed to update order", nil)
		return
	}

	if req.Status != nil {
		if err := tx.Model(order).Update("status", *req.Status).Error; err != nil {
			tx.Rollback()
			utils.LogError("Failed to update order status: %v", err)
			utils.InternalServerError(c, "Failed to update order", err.Error())
			return
		}
	}

	if req.Items != nil {
		existing := make(map[string]models.OrderItem, len(order.OrderItems))
		for _, item := range order.OrderItems {
			existing[item.ProductName] = item
		}

		var total float64
		names := make([]string, 0, len(req.Items))
		for _, input := range req.Items {
			subtotal := float64(input.Quantity) * input.UnitPrice

			if current, ok := existing[input.ProductName]; ok {
				updates := map[string]interface{}{
					"quantity":   input.Quantity,
					"unit_price": input.UnitPrice,
					"subtotal":   subtotal,
				}
				if err := tx.Model(&current).Updates(updates).Error; err != nil {
					tx.Rollback()
					utils.LogError("Failed to update item %s: %v", input.ProductName, err)
					utils.InternalServerError(c, "Failed to update order items", err.Error())
					return
				}
			} else {
				item := models.OrderItem{
					OrderID:     order.ID,
					ProductName: input.ProductName,
					Quantity:    input.Quantity,
					UnitPrice:   input.UnitPrice,
					Subtotal:    subtotal,
				}
				if err := tx.Create(&item).Error; err != nil {
					tx.Rollback()
					utils.LogError("Failed to insert item %s: %v", input.ProductName, err)
					utils.InternalServerError(c, "Failed to update order items", err.Error())
					return
				}
			}

			total += subtotal
			names = append(names, input.ProductName)
		}

		// Items whose name was not resubmitted are removed; the submitted
		// list fully replaces the stored one.
		if err := tx.Where("order_id = ? AND product_name NOT IN ?", order.ID, names).
			Delete(&models.OrderItem{}).Error; err != nil {
			tx.Rollback()
			utils.LogError("Failed to delete removed items: %v", err)
			utils.InternalServerError(c, "Failed to update order items", err.Error())
			return
		}

		if err := tx.Model(order).Update("total_amount", total).Error; err != nil {
			tx.Rollback()
			utils.LogError("Failed to update order total: %v", err)
			utils.InternalServerError(c, "Failed to update order", err.Error())
			return
		}
	}

	if err := tx.Commit().Error; err != nil {
		utils.LogError("Failed to commit transaction: %v", err)
		utils.InternalServerError(c, "Failed to update order", nil)
		return
	}

	updated, err := utils.GetOrderByID(order.ID)
	if err != nil {
		utils.LogError("Failed to reload updated order %d: %v", order.ID, err)
		utils.InternalServerError(c, "Failed to load updated order", err.Error())
		return
	}

	events.PublishOrderEvent(c.Request.Context(), events.OrderUpdated, updated)

	utils.LogInfo("Order %d updated, total %.2f", updated.ID, updated.TotalAmount)
	utils.Success(c, "Order updated successfully", gin.H{"order": updated})
}
