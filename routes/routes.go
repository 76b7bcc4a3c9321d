package routes

import (
	"time"

	"github.com/Adarsh-722/OrderSphere/config"
	"github.com/Adarsh-722/OrderSphere/controllers"
	"github.com/Adarsh-722/OrderSphere/utils"
	"github.com/gin-gonic/gin"
)

// SetupRouter initializes and returns the Gin router with all middleware
// and routes
func SetupRouter() *gin.Engine {
	router := gin.New()

	router.Use(utils.LoggerMiddleware())
	router.Use(utils.CORSMiddleware())
	router.Use(utils.RecoveryMiddleware())
	router.Use(utils.RequestIDMiddleware())
	router.Use(utils.SecurityHeadersMiddleware())
	router.Use(utils.RateLimitMiddleware(config.RedisClient, 100, time.Minute))

	orders := router.Group("/orders")
	{
		orders.GET("", controllers.ListOrders)
		orders.POST("", controllers.CreateOrder)
		orders.GET("/export", controllers.ExportOrders)
		orders.PUT("/:id", controllers.UpdateOrder)
		orders.DELETE("/:id", controllers.DeleteOrder)
		orders.GET("/:id/invoice", controllers.DownloadInvoice)
	}

	payments := router.Group("/payments")
	{
		payments.POST("/initiate", controllers.InitiatePayment)
		payments.POST("/webhook", controllers.PaymentWebhook)
	}

	return router
}
