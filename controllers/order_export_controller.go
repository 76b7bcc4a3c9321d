package controllers

import (
	"fmt"
	"time"

	"github.com/Adarsh-722/OrderSphere/utils"
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
)

// ExportOrders downloads all orders matching the status filter as an
// Excel workbook
func ExportOrders(c *gin.Context) {
	utils.LogInfo("ExportOrders called")

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

	orders, err := utils.FindOrders(status)
	if err != nil {
		utils.LogError("Failed to fetch orders: %v", err)
		utils.InternalServerError(c, "Failed to fetch orders", err.Error())
		return
	}
	utils.LogDebug("Retrieved %d orders for export", len(orders))

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Orders")
	if err != nil {
		utils.LogError("Failed to create Excel sheet: %v", err)
		utils.InternalServerError(c, "Failed to create Excel sheet", err.Error())
		return
	}

	titleRow := sheet.AddRow()
	titleRow.AddCell().SetString("ORDERSPHERE - Orders Export")
	infoRow := sheet.AddRow()
	infoRow.AddCell().SetString("Generated: " + time.Now().Format("2006-01-02 15:04"))
	if status != "" {
		filterRow := sheet.AddRow()
		filterRow.AddCell().SetString("Status filter: " + status)
	}
	sheet.AddRow() // spacing

	headers := []string{"Order ID", "Status", "Items", "Total Amount", "Payments", "Created At"}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		cell := headerRow.AddCell()
		cell.SetString(h)
		style := xlsx.NewStyle()
		font := xlsx.DefaultFont()
		font.Bold = true
		style.Font = *font
		cell.SetStyle(style)
	}

	var totalRevenue float64
	for _, order := range orders {
		row := sheet.AddRow()
		row.AddCell().SetInt(int(order.ID))
		row.AddCell().SetString(order.Status)
		row.AddCell().SetInt(len(order.OrderItems))
		row.AddCell().SetFloat(order.TotalAmount)
		row.AddCell().SetInt(len(order.Payments))
		row.AddCell().SetString(order.CreatedAt.Format("2006-01-02 15:04"))
		totalRevenue += order.TotalAmount
	}

	sheet.AddRow() // spacing
	summaryRow := sheet.AddRow()
	summaryRow.AddCell().SetString("Total Orders")
	summaryRow.AddCell().SetInt(len(orders))
	revenueRow := sheet.AddRow()
	revenueRow.AddCell().SetString("Total Amount")
	revenueRow.AddCell().SetString(fmt.Sprintf("%.2f", totalRevenue))

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename=orders_export.xlsx")
	if err := file.Write(c.Writer); err != nil {
		utils.LogError("Failed to write Excel file: %v", err)
		utils.InternalServerError(c, "Failed to write Excel file", err.Error())
		return
	}
	utils.LogInfo("Exported %d orders to Excel", len(orders))
}
