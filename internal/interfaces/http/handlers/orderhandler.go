package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cruzetta/kitpay/internal/application/order/usecases"
	"github.com/cruzetta/kitpay/internal/domain/order"
	"github.com/cruzetta/kitpay/internal/shared/biztime"
	"github.com/cruzetta/kitpay/internal/shared/logger"
	"github.com/cruzetta/kitpay/internal/shared/utils"
)

type OrderHandler struct {
	createOrderUC createOrderUseCase
	getOrderUC    getOrderUseCase
	logger        logger.Interface
}

func NewOrderHandler(
	createOrderUC createOrderUseCase,
	getOrderUC getOrderUseCase,
	logger logger.Interface,
) *OrderHandler {
	return &OrderHandler{
		createOrderUC: createOrderUC,
		getOrderUC:    getOrderUC,
		logger:        logger,
	}
}

type CreateOrderRequest struct {
	BuyerName    string          `json:"buyerName" validate:"required"`
	BuyerEmail   string          `json:"buyerEmail" validate:"required,email"`
	BuyerCelular string          `json:"buyerCelular"`
	BuyerCPF     string          `json:"buyerCPF" validate:"omitempty,cpf"`
	Kits         json.RawMessage `json:"kits" validate:"required"`
	TotalPrice   float64         `json:"totalPrice" validate:"required,gt=0"`
}

type CreateOrderResponse struct {
	OrderID   string `json:"order_id"`
	CreatedAt string `json:"created_at"`
}

type OrderResponse struct {
	ID            string          `json:"id"`
	BuyerName     string          `json:"buyerName"`
	BuyerEmail    string          `json:"buyerEmail"`
	BuyerCelular  string          `json:"buyerCelular,omitempty"`
	Kits          json.RawMessage `json:"kits"`
	TotalPrice    float64         `json:"totalPrice"`
	PurchaseType  string          `json:"purchaseType"`
	PaymentID     *int64          `json:"paymentId,omitempty"`
	PaymentStatus string          `json:"paymentStatus"`
	PaymentMethod *string         `json:"paymentMethod,omitempty"`
	Installments  *int            `json:"installments,omitempty"`
	CreatedAt     string          `json:"createdAt"`
	UpdatedAt     string          `json:"updatedAt"`
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createOrderUC.Execute(c.Request.Context(), usecases.CreateOrderCommand{
		BuyerName:    req.BuyerName,
		BuyerEmail:   req.BuyerEmail,
		BuyerCelular: req.BuyerCelular,
		BuyerCPF:     req.BuyerCPF,
		Kits:         req.Kits,
		TotalPrice:   req.TotalPrice,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, CreateOrderResponse{
		OrderID:   result.OrderID,
		CreatedAt: biztime.FormatRFC3339(result.CreatedAt),
	}, "order created successfully")
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	ord, err := h.getOrderUC.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "order retrieved successfully", toOrderResponse(ord))
}

func toOrderResponse(ord *order.Order) OrderResponse {
	return OrderResponse{
		ID:            ord.ID(),
		BuyerName:     ord.BuyerName(),
		BuyerEmail:    ord.BuyerEmail(),
		BuyerCelular:  ord.BuyerCelular(),
		Kits:          ord.Kits(),
		TotalPrice:    ord.TotalPrice().AmountInReais(),
		PurchaseType:  ord.PurchaseType(),
		PaymentID:     ord.PaymentID(),
		PaymentStatus: ord.PaymentStatus().String(),
		PaymentMethod: ord.PaymentMethod(),
		Installments:  ord.Installments(),
		CreatedAt:     biztime.FormatRFC3339(ord.CreatedAt()),
		UpdatedAt:     biztime.FormatRFC3339(ord.UpdatedAt()),
	}
}
