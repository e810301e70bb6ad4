package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/cruzetta/kitpay/internal/application/order/usecases"
	"github.com/cruzetta/kitpay/internal/infrastructure/config"
	"github.com/cruzetta/kitpay/internal/infrastructure/gateway/mercadopago"
	"github.com/cruzetta/kitpay/internal/infrastructure/repository"
	"github.com/cruzetta/kitpay/internal/interfaces/http/handlers"
	"github.com/cruzetta/kitpay/internal/interfaces/http/middleware"
	"github.com/cruzetta/kitpay/internal/interfaces/http/routes"
	sharedDB "github.com/cruzetta/kitpay/internal/shared/db"
	"github.com/cruzetta/kitpay/internal/shared/logger"
)

// Router wires the HTTP surface onto its dependencies.
type Router struct {
	engine *gin.Engine
}

// NewRouter creates a new HTTP router with all dependencies.
func NewRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	orderRepo := repository.NewOrderRepository(db)
	txManager := sharedDB.NewTransactionManager(db)
	gateway := mercadopago.NewClient(cfg.MercadoPago.AccessToken, cfg.MercadoPago.BaseURL, log.Named("mercadopago"))

	notificationURL := cfg.NotificationURL()

	createOrderUC := usecases.NewCreateOrderUseCase(orderRepo, txManager, log.Named("create_order"))
	getOrderUC := usecases.NewGetOrderUseCase(orderRepo)
	createCardUC := usecases.NewCreateCardPaymentUseCase(orderRepo, gateway, notificationURL, log.Named("create_card_payment"))
	createPixUC := usecases.NewCreatePixPaymentUseCase(orderRepo, gateway, notificationURL, log.Named("create_pix_payment"))
	notificationUC := usecases.NewHandlePaymentNotificationUseCase(orderRepo, gateway, log.Named("payment_notification"))

	orderHandler := handlers.NewOrderHandler(createOrderUC, getOrderUC, log.Named("order_handler"))
	paymentHandler := handlers.NewPaymentHandler(createCardUC, createPixUC, log.Named("payment_handler"))
	webhookHandler := handlers.NewWebhookHandler(notificationUC, log.Named("webhook_handler"))

	rateLimiter := middleware.NewRateLimiter(redisClient, cfg.RateLimit.CheckoutPerMinute, time.Minute)

	routes.SetupOrderRoutes(engine, &routes.OrderRouteConfig{
		OrderHandler: orderHandler,
		RateLimiter:  rateLimiter,
	})
	routes.SetupPaymentRoutes(engine, &routes.PaymentRouteConfig{
		PaymentHandler: paymentHandler,
		RateLimiter:    rateLimiter,
	})
	routes.SetupWebhookRoutes(engine, &routes.WebhookRouteConfig{
		WebhookHandler: webhookHandler,
	})

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return &Router{engine: engine}
}

// Engine exposes the underlying gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
