package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cruzetta/kitpay/internal/application/order/usecases"
	"github.com/cruzetta/kitpay/internal/shared/logger"
	"github.com/cruzetta/kitpay/internal/shared/utils"
)

type WebhookHandler struct {
	notificationUC handlePaymentNotificationUseCase
	logger         logger.Interface
}

func NewWebhookHandler(notificationUC handlePaymentNotificationUseCase, logger logger.Interface) *WebhookHandler {
	return &WebhookHandler{
		notificationUC: notificationUC,
		logger:         logger,
	}
}

// flexID tolerates the processor sending data.id as either a JSON string
// or a JSON number.
type flexID int64

func (f *flexID) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = flexID(v)
	return nil
}

type notificationRequest struct {
	Type string `json:"type"`
	Data struct {
		ID flexID `json:"id"`
	} `json:"data"`
}

// HandleNotification acknowledges everything it can. Only a failure to
// fetch or persist the status returns a 500, which is the signal for the
// processor to retry on its own schedule.
func (h *WebhookHandler) HandleNotification(c *gin.Context) {
	var req notificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// A body this system cannot parse is not a payment notification.
		// Acknowledge it so the processor does not retry forever.
		h.logger.Warnw("unparseable notification body", "error", err)
		utils.SuccessResponse(c, http.StatusOK, "notification received", nil)
		return
	}

	result, err := h.notificationUC.Execute(c.Request.Context(), usecases.PaymentNotificationCommand{
		Type:      req.Type,
		PaymentID: int64(req.Data.ID),
	})
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "failed to process notification")
		return
	}

	switch {
	case !result.Applicable:
		utils.SuccessResponse(c, http.StatusOK, "notification not applicable", nil)
	case !result.OrderFound:
		utils.SuccessResponse(c, http.StatusOK, "no matching order for payment", nil)
	default:
		utils.SuccessResponse(c, http.StatusOK, "notification processed", gin.H{
			"status":         result.Status.String(),
			"orders_updated": result.OrdersUpdated,
		})
	}
}
