package handlers

import (
	"context"

	"github.com/cruzetta/kitpay/internal/application/order/usecases"
)

// Use case interfaces for PaymentHandler

type createCardPaymentUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateCardPaymentCommand) (*usecases.CardPaymentResult, error)
}

type createPixPaymentUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreatePixPaymentCommand) (*usecases.PixPaymentResult, error)
}
