package controllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/Adarsh-722/OrderSphere/config"
	"github.com/Adarsh-722/OrderSphere/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type paymentEnvelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    struct {
		Payment models.Payment `json:"payment"`
	} `json:"data"`
}

func TestInitiatePayment(t *testing.T) {
	router := setupTest(t)

	order := createOrder(t, router, []map[string]interface{}{
		{"product_name": "Widget A", "quantity": 2, "unit_price": 10.00},
	})

	w := doRequest(t, router, http.MethodPost, "/payments/initiate", gin.H{
		"order_id":       order.ID,
		"payment_method": "card",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var env paymentEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	payment := env.Data.Payment

	assert.Equal(t, order.ID, payment.OrderID)
	assert.Equal(t, models.PaymentStatusPending, payment.Status)
	assert.Equal(t, "card", payment.PaymentMethod)
	assert.Equal(t, order.TotalAmount, payment.Amount)
	assert.NotEmpty(t, payment.GatewayReference)
}

func TestInitiatePaymentUnknownOrder(t *testing.T) {
	router := setupTest(t)

	w := doRequest(t, router, http.MethodPost, "/payments/initiate", gin.H{
		"order_id": 999,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPaymentWebhookRecordsOutcome(t *testing.T) {
	router := setupTest(t)

	order := createOrder(t, router, []map[string]interface{}{
		{"product_name": "Widget A", "quantity": 2, "unit_price": 10.00},
	})
	w := doRequest(t, router, http.MethodPost, "/payments/initiate", gin.H{"order_id": order.ID})
	require.Equal(t, http.StatusCreated, w.Code)

	var env paymentEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	reference := env.Data.Payment.GatewayReference

	w = doRequest(t, router, http.MethodPost, "/payments/webhook", gin.H{
		"gateway_reference": reference,
		"status":            models.PaymentStatusSuccessful,
		"payload":           gin.H{"id": "pay_123", "captured": true},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var stored models.Payment
	require.NoError(t, config.DB.Where("gateway_reference = ?", reference).First(&stored).Error)
	assert.Equal(t, models.PaymentStatusSuccessful, stored.Status)
	assert.Equal(t, "pay_123", stored.GatewayPayload["id"])

	// Replays with the same status are acknowledged without rewriting.
	w = doRequest(t, router, http.MethodPost, "/payments/webhook", gin.H{
		"gateway_reference": reference,
		"status":            models.PaymentStatusSuccessful,
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, "Payment already recorded", env.Message)

	// A successful payment is terminal and cannot be downgraded.
	w = doRequest(t, router, http.MethodPost, "/payments/webhook", gin.H{
		"gateway_reference": reference,
		"status":            models.PaymentStatusFailed,
	})
	assert.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	require.NoError(t, config.DB.Where("gateway_reference = ?", reference).First(&stored).Error)
	assert.Equal(t, models.PaymentStatusSuccessful, stored.Status)

	// A recorded payment freezes the order for the order core.
	w = doRequest(t, router, http.MethodPut, fmt.Sprintf("/orders/%d", order.ID), gin.H{
		"status": models.OrderStatusConfirmed,
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestPaymentWebhookFailedPaymentMaySucceed(t *testing.T) {
	router := setupTest(t)

	order := createOrder(t, router, []map[string]interface{}{
		{"product_name": "Widget A", "quantity": 1, "unit_price": 10.00},
	})
	w := doRequest(t, router, http.MethodPost, "/payments/initiate", gin.H{"order_id": order.ID})
	require.Equal(t, http.StatusCreated, w.Code)

	var env paymentEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	reference := env.Data.Payment.GatewayReference

	w = doRequest(t, router, http.MethodPost, "/payments/webhook", gin.H{
		"gateway_reference": reference,
		"status":            models.PaymentStatusFailed,
	})
	require.Equal(t, http.StatusOK, w.Code)

	// A gateway retry may still succeed after a failure.
	w = doRequest(t, router, http.MethodPost, "/payments/webhook", gin.H{
		"gateway_reference": reference,
		"status":            models.PaymentStatusSuccessful,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var stored models.Payment
	require.NoError(t, config.DB.Where("gateway_reference = ?", reference).First(&stored).Error)
	assert.Equal(t, models.PaymentStatusSuccessful, stored.Status)
}

func TestPaymentWebhookValidation(t *testing.T) {
	router := setupTest(t)

	w := doRequest(t, router, http.MethodPost, "/payments/webhook", gin.H{
		"gateway_reference": "ref_missing",
		"status":            "refunded",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = doRequest(t, router, http.MethodPost, "/payments/webhook", gin.H{
		"gateway_reference": "ref_missing",
		"status":            models.PaymentStatusFailed,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
