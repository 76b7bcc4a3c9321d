package controllers

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/Adarsh-722/OrderSphere/utils"
	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
)

// DownloadInvoice generates and returns a PDF invoice for the order
func DownloadInvoice(c *gin.Context) {
	utils.LogInfo("DownloadInvoice called")

	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.LogError("Invalid order ID: %v", err)
		utils.BadRequest(c, "Invalid order ID", nil)
		return
	}

	order, err := utils.GetOrderByID(uint(orderID))
	if err != nil {
		if utils.IsNotFoundError(err) {
			utils.NotFound(c, "Order not found")
			return
		}
		utils.LogError("Failed to load order %d: %v", orderID, err)
		utils.InternalServerError(c, "Failed to load order", err.Error())
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Invoice")
	pdf.Ln(12)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(40, 10, "Order ID: "+strconv.Itoa(int(order.ID)))
	pdf.Ln(8)
	pdf.Cell(40, 10, "Date: "+order.CreatedAt.Format("2006-01-02 15:04:05"))
	pdf.Ln(8)
	pdf.Cell(40, 10, "Status: "+order.Status)
	pdf.Ln(12)
	pdf.Cell(40, 10, "Items:")
	pdf.Ln(8)
	for _, item := range order.OrderItems {
		line := item.ProductName + " x" + strconv.Itoa(item.Quantity) +
			" @ " + strconv.FormatFloat(item.UnitPrice, 'f', 2, 64) +
			" = " + strconv.FormatFloat(item.Subtotal, 'f', 2, 64)
		pdf.Cell(40, 10, line)
		pdf.Ln(7)
	}
	pdf.Ln(5)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(40, 10, "Total: "+strconv.FormatFloat(order.TotalAmount, 'f', 2, 64))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.LogError("Failed to generate invoice PDF for order %d: %v", order.ID, err)
		utils.InternalServerError(c, "Failed to generate invoice", err.Error())
		return
	}

	utils.LogInfo("Generated invoice PDF for order %d", order.ID)
	c.Header("Content-Disposition", "attachment; filename=invoice_"+strconv.Itoa(int(order.ID))+".pdf")
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
