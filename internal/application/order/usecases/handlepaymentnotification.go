package usecases

import (
	"context"
	"fmt"

	"github.com/cruzetta/kitpay/internal/application/order/paymentgateway"
	"github.com/cruzetta/kitpay/internal/domain/order"
	vo "github.com/cruzetta/kitpay/internal/domain/order/valueobjects"
	"github.com/cruzetta/kitpay/internal/shared/logger"
)

type PaymentNotificationCommand struct {
	Type      string
	PaymentID int64
}

type PaymentNotificationResult struct {
	// Applicable is false for notification types this system ignores.
	Applicable bool
	// OrderFound is false when no order carries the payment id yet; the
	// notification may have raced ahead of the order write.
	OrderFound    bool
	Status        vo.PaymentStatus
	OrdersUpdated int
}

// HandlePaymentNotificationUseCase is the only writer that advances an
// order's payment status after creation. It never trusts the notification
// body for the status; it re-fetches the authoritative state from the
// processor.
type HandlePaymentNotificationUseCase struct {
	orderRepo order.Repository
	gateway   paymentgateway.Gateway
	logger    logger.Interface
}

func NewHandlePaymentNotificationUseCase(
	orderRepo order.Repository,
	gateway paymentgateway.Gateway,
	logger logger.Interface,
) *HandlePaymentNotificationUseCase {
	return &HandlePaymentNotificationUseCase{
		orderRepo: orderRepo,
		gateway:   gateway,
		logger:    logger,
	}
}

func (uc *HandlePaymentNotificationUseCase) Execute(ctx context.Context, cmd PaymentNotificationCommand) (*PaymentNotificationResult, error) {
	// The processor sends other notification types (plan, invoice, ...)
	// this system does not care about. Acknowledging them is a no-op,
	// not an error.
	if cmd.Type != "payment" || cmd.PaymentID == 0 {
		return &PaymentNotificationResult{Applicable: false}, nil
	}

	info, err := uc.gateway.GetPayment(ctx, cmd.PaymentID)
	if err != nil {
		uc.logger.Errorw("failed to fetch payment status", "error", err, "payment_id", cmd.PaymentID)
		return nil, fmt.Errorf("failed to fetch payment status: %w", err)
	}

	status := vo.PaymentStatus(info.Status)

	orders, err := uc.orderRepo.FindByPaymentID(ctx, cmd.PaymentID)
	if err != nil {
		uc.logger.Errorw("failed to look up orders by payment id", "error", err, "payment_id", cmd.PaymentID)
		return nil, fmt.Errorf("failed to look up orders: %w", err)
	}

	if len(orders) == 0 {
		// Benign: the notification can race the order write, or retry
		// an already-processed payment. The processor gets a 200.
		uc.logger.Infow("no order found for payment notification", "payment_id", cmd.PaymentID, "status", status)
		return &PaymentNotificationResult{Applicable: true, OrderFound: false, Status: status}, nil
	}

	updated := 0
	for _, ord := range orders {
		if !ord.ApplyGatewayStatus(status) {
			continue
		}
		if err := uc.orderRepo.Update(ctx, ord); err != nil {
			uc.logger.Errorw("failed to update order from notification",
				"error", err,
				"order_id", ord.ID(),
				"payment_id", cmd.PaymentID,
			)
			// Surfacing the failure makes the processor retry.
			return nil, fmt.Errorf("failed to update order %s: %w", ord.ID(), err)
		}
		updated++

		uc.logger.Infow("order payment status updated",
			"order_id", ord.ID(),
			"payment_id", cmd.PaymentID,
			"status", status,
		)
	}

	return &PaymentNotificationResult{
		Applicable:    true,
		OrderFound:    true,
		Status:        status,
		OrdersUpdated: updated,
	}, nil
}
