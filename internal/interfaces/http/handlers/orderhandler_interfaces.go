package handlers

import (
	"context"

	"github.com/cruzetta/kitpay/internal/application/order/usecases"
	"github.com/cruzetta/kitpay/internal/domain/order"
)

// Use case interfaces for OrderHandler

type createOrderUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateOrderCommand) (*usecases.CreateOrderResult, error)
}

type getOrderUseCase interface {
	Execute(ctx context.Context, orderID string) (*order.Order, error)
}
