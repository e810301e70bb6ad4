package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/cruzetta/kitpay/internal/interfaces/http/handlers"
	"github.com/cruzetta/kitpay/internal/interfaces/http/middleware"
)

// PaymentRouteConfig holds dependencies for payment routes.
type PaymentRouteConfig struct {
	PaymentHandler *handlers.PaymentHandler
	RateLimiter    *middleware.RateLimiter
}

// SetupPaymentRoutes configures the checkout payment routes.
func SetupPaymentRoutes(engine *gin.Engine, cfg *PaymentRouteConfig) {
	payments := engine.Group("/api/payments")
	payments.Use(cfg.RateLimiter.Limit())
	{
		payments.POST("/card", cfg.PaymentHandler.CreateCardPayment)
		payments.POST("/pix", cfg.PaymentHandler.CreatePixPayment)
	}
}
