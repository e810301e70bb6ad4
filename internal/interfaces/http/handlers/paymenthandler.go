package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cruzetta/kitpay/internal/application/order/usecases"
	"github.com/cruzetta/kitpay/internal/shared/logger"
	"github.com/cruzetta/kitpay/internal/shared/utils"
)

type PaymentHandler struct {
	createCardUC createCardPaymentUseCase
	createPixUC  createPixPaymentUseCase
	logger       logger.Interface
}

func NewPaymentHandler(
	createCardUC createCardPaymentUseCase,
	createPixUC createPixPaymentUseCase,
	logger logger.Interface,
) *PaymentHandler {
	return &PaymentHandler{
		createCardUC: createCardUC,
		createPixUC:  createPixUC,
		logger:       logger,
	}
}

// OrderInfo mirrors the storefront's order block. Payment requests repeat
// the buyer data instead of referencing it, so the charge can be built
// without a second read.
type OrderInfo struct {
	BuyerName    string  `json:"buyerName"`
	BuyerEmail   string  `json:"buyerEmail"`
	BuyerCelular string  `json:"buyerCelular"`
	BuyerCPF     string  `json:"buyerCPF"`
	TotalPrice   float64 `json:"totalPrice"`
}

type PayerInfo struct {
	Email string `json:"email"`
}

type CreateCardPaymentRequest struct {
	OrderID         string    `json:"orderId"`
	Token           string    `json:"token"`
	Installments    int       `json:"installments"`
	PaymentMethodID string    `json:"payment_method_id"`
	IssuerID        string    `json:"issuer_id"`
	Payer           PayerInfo `json:"payer"`
	Order           OrderInfo `json:"order"`
}

type CardPaymentResponse struct {
	Status       string `json:"status"`
	StatusDetail string `json:"status_detail"`
	ID           int64  `json:"id"`
}

type CreatePixPaymentRequest struct {
	OrderID string    `json:"orderId"`
	Order   OrderInfo `json:"order"`
}

type PixPaymentResponse struct {
	ID           int64  `json:"id"`
	Status       string `json:"status"`
	QRCode       string `json:"qr_code"`
	QRCodeBase64 string `json:"qr_code_base64"`
}

func (h *PaymentHandler) CreateCardPayment(c *gin.Context) {
	var req CreateCardPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	result, err := h.createCardUC.Execute(c.Request.Context(), usecases.CreateCardPaymentCommand{
		OrderID:         req.OrderID,
		Token:           req.Token,
		Installments:    req.Installments,
		PaymentMethodID: req.PaymentMethodID,
		IssuerID:        req.IssuerID,
		PayerEmail:      req.Payer.Email,
		BuyerName:       req.Order.BuyerName,
		TotalPrice:      req.Order.TotalPrice,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "payment created successfully", CardPaymentResponse{
		Status:       result.Status,
		StatusDetail: result.StatusDetail,
		ID:           result.ID,
	})
}

func (h *PaymentHandler) CreatePixPayment(c *gin.Context) {
	var req CreatePixPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	result, err := h.createPixUC.Execute(c.Request.Context(), usecases.CreatePixPaymentCommand{
		OrderID:      req.OrderID,
		BuyerName:    req.Order.BuyerName,
		BuyerEmail:   req.Order.BuyerEmail,
		BuyerCelular: req.Order.BuyerCelular,
		BuyerCPF:     req.Order.BuyerCPF,
		TotalPrice:   req.Order.TotalPrice,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "PIX charge created successfully", PixPaymentResponse{
		ID:           result.ID,
		Status:       result.Status,
		QRCode:       result.QRCode,
		QRCodeBase64: result.QRCodeBase64,
	})
}
