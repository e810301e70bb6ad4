package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/cruzetta/kitpay/internal/interfaces/http/handlers"
)

// WebhookRouteConfig holds dependencies for webhook routes.
type WebhookRouteConfig struct {
	WebhookHandler *handlers.WebhookHandler
}

// SetupWebhookRoutes configures the processor notification route.
// Deliberately not rate limited: the processor controls its own cadence,
// and a 429 would only trigger retry storms.
func SetupWebhookRoutes(engine *gin.Engine, cfg *WebhookRouteConfig) {
	engine.POST("/webhooks/mercadopago", cfg.WebhookHandler.HandleNotification)
}
