package controllers

import (
	"github.com/Adarsh-722/OrderSphere/utils"
	"github.com/gin-gonic/gin"
)

// ListOrders returns a page of orders with their items and payments,
// newest first, optionally filtered by status
func ListOrders(c *gin.Context) {
	utils.LogInfo("ListOrders called")

	status := c.Query("status")
	if status != "" {
		if ok, msg := utils.ValidateOrderStatus(status); !ok {
			utils.LogError("Invalid status filter: %s", status)
			utils.ValidationError(c, "Invalid status filter", utils.FieldValidationErrors{
				{Field: "status", Message: msg},
			})
			return
		}
	}

	pagination := utils.NewPagination(c)

	total, err := utils.CountOrders(status)
	if err != nil {
		utils.LogError("Failed to count orders: %v", err)
		utils.InternalServerError(c, "Failed to fetch orders", err.Error())
		return
	}
	pagination.SetTotal(total)

	orders, err := utils.ListOrders(status, pagination.Limit, pagination.Offset)
	if err != nil {
		utils.LogError("Failed to fetch orders: %v", err)
		utils.InternalServerError(c, "Failed to fetch orders", err.Error())
		return
	}

	utils.LogDebug("Retrieved %d of %d orders (page %d)", len(orders), total, pagination.Page)
	utils.SuccessWithPagination(c, "Orders retrieved successfully", gin.H{"orders": orders},
		total, pagination.Page, pagination.Limit)
}
