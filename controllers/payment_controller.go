package controllers

import (
	"fmt"
	"math"
	"strconv"

	"github.com/Adarsh-722/OrderSphere/config"
	"github.com/Adarsh-722/OrderSphere/models"
	"github.com/Adarsh-722/OrderSphere/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	razorpay "github.com/razorpay/razorpay-go"
)

// The payment subsystem owns Payment rows. The order core never writes them;
// it only reads their existence to freeze paid orders.

// InitiatePayment creates a gateway order for the given order's total and
// records a pending Payment carrying the gateway reference
func InitiatePayment(c *gin.Context) {
	utils.LogInfo("InitiatePayment called")

	var req struct {
		OrderID       uint   `json:"order_id" binding:"required"`
		PaymentMethod string `json:"payment_method"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request: %v", err)
		utils.BadRequest(c, "Invalid request. order_id is required", err.Error())
		return
	}
	if req.PaymentMethod == "" {
		req.PaymentMethod = "razorpay"
	}

	order, err := utils.GetOrderByID(req.OrderID)
	if err != nil {
		if utils.IsNotFoundError(err) {
			utils.LogError("Order not found: %d", req.OrderID)
			utils.NotFound(c, "Order not found")
			return
		}
		utils.LogError("Failed to load order %d: %v", req.OrderID, err)
		utils.InternalServerError(c, "Failed to load order", err.Error())
		return
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		utils.LogError("Failed to load config: %v", err)
		utils.InternalServerError(c, "Failed to load payment configuration", nil)
		return
	}

	var reference string
	if cfg.RazorpayKey != "" && cfg.RazorpaySecret != "" {
		client := razorpay.NewClient(cfg.RazorpayKey, cfg.RazorpaySecret)
		amountPaise := int(math.Round(order.TotalAmount * 100))
		orderData := map[string]interface{}{
			"amount":          amountPaise,
			"currency":        "INR",
			"receipt":         "order_rcptid_" + strconv.FormatUint(uint64(order.ID), 10),
			"payment_capture": 1,
		}
		rzOrder, err := client.Order.Create(orderData, nil)
		if err != nil {
			utils.LogError("Failed to create Razorpay order for order ID: %d: %v", order.ID, err)
			utils.InternalServerError(c, "Failed to create Razorpay order", err.Error())
			return
		}
		reference = fmt.Sprintf("%v", rzOrder["id"])
		utils.LogInfo("Created Razorpay order %s for order %d", reference, order.ID)
	} else {
		// Gateway not configured; keep the subsystem usable locally.
		reference = "local_" + uuid.New().String()
		utils.LogDebug("Razorpay not configured, using local reference %s", reference)
	}

	payment := models.Payment{
		OrderID:          order.ID,
		Status:           models.PaymentStatusPending,
		PaymentMethod:    req.PaymentMethod,
		Amount:           order.TotalAmount,
		GatewayReference: reference,
	}
	if err := config.DB.Create(&payment).Error; err != nil {
		utils.LogError("Failed to record payment for order %d: %v", order.ID, err)
		utils.InternalServerError(c, "Failed to record payment", err.Error())
		return
	}

	utils.LogInfo("Payment %d initiated for order %d, amount %.2f", payment.ID, order.ID, payment.Amount)
	utils.Created(c, "Payment initiated successfully", gin.H{
		"payment": payment,
		"key":     cfg.RazorpayKey,
	})
}

// PaymentWebhook records the gateway's outcome for a previously initiated
// payment. Replays with the same status are acknowledged without rewriting.
func PaymentWebhook(c *gin.Context) {
	utils.LogInfo("PaymentWebhook called")

	var req struct {
		GatewayReference string                 `json:"gateway_reference" binding:"required"`
		Status           string                 `json:"status" binding:"required"`
		Payload          map[string]interface{} `json:"payload"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid webhook payload: %v", err)
		utils.BadRequest(c, "Invalid request. gateway_reference and status are required", err.Error())
		return
	}

	if req.Status != models.PaymentStatusSuccessful && req.Status != models.PaymentStatusFailed {
		utils.LogError("Invalid payment status in webhook: %s", req.Status)
		utils.ValidationError(c, "Invalid payment status", utils.FieldValidationErrors{
			{Field: "status", Message: fmt.Sprintf("Status must be %s or %s",
				models.PaymentStatusSuccessful, models.PaymentStatusFailed)},
		})
		return
	}

	payment, err := utils.GetPaymentByReference(req.GatewayReference)
	if err != nil {
		if utils.IsNotFoundError(err) {
			utils.LogError("Payment not found for reference: %s", req.GatewayReference)
			utils.NotFound(c, "Payment not found")
			return
		}
		utils.LogError("Failed to load payment %s: %v", req.GatewayReference, err)
		utils.InternalServerError(c, "Failed to load payment", err.Error())
		return
	}

	if payment.Status == req.Status {
		utils.LogDebug("Webhook replay for payment %d ignored", payment.ID)
		utils.Success(c, "Payment already recorded", gin.H{"payment": payment})
		return
	}

	// A successful payment is terminal; a failed one may still succeed on
	// a gateway retry.
	if payment.Status == models.PaymentStatusSuccessful {
		utils.LogError("Rejected webhook downgrading successful payment %d to %s", payment.ID, req.Status)
		utils.Conflict(c, "Payment has already succeeded and cannot be changed", nil)
		return
	}

	payment.Status = req.Status
	payment.GatewayPayload = req.Payload
	if err := config.DB.Save(payment).Error; err != nil {
		utils.LogError("Failed to update payment %d: %v", payment.ID, err)
		utils.InternalServerError(c, "Failed to update payment", err.Error())
		return
	}

	utils.LogInfo("Payment %d for order %d marked %s", payment.ID, payment.OrderID, payment.Status)
	utils.Success(c, "Payment recorded successfully", gin.H{"payment": payment})
}
