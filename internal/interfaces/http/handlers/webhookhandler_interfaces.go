package handlers

import (
	"context"

	"github.com/cruzetta/kitpay/internal/application/order/usecases"
)

// Use case interfaces for WebhookHandler

type handlePaymentNotificationUseCase interface {
	Execute(ctx context.Context, cmd usecases.PaymentNotificationCommand) (*usecases.PaymentNotificationResult, error)
}
