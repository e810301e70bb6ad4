package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/cruzetta/kitpay/internal/interfaces/http/handlers"
	"github.com/cruzetta/kitpay/internal/interfaces/http/middleware"
)

// OrderRouteConfig holds dependencies for order routes.
type OrderRouteConfig struct {
	OrderHandler *handlers.OrderHandler
	RateLimiter  *middleware.RateLimiter
}

// SetupOrderRoutes configures order routes.
func SetupOrderRoutes(engine *gin.Engine, cfg *OrderRouteConfig) {
	orders := engine.Group("/api/orders")
	orders.Use(cfg.RateLimiter.Limit())
	{
		orders.POST("", cfg.OrderHandler.CreateOrder)
		orders.GET("/:id", cfg.OrderHandler.GetOrder)
	}
}
