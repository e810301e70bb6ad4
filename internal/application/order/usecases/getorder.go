package usecases

import (
	"context"

	"github.com/cruzetta/kitpay/internal/domain/order"
	apperrors "github.com/cruzetta/kitpay/internal/shared/errors"
)

// GetOrderUseCase serves the storefront's status polling.
type GetOrderUseCase struct {
	orderRepo order.Repository
}

func NewGetOrderUseCase(orderRepo order.Repository) *GetOrderUseCase {
	return &GetOrderUseCase{orderRepo: orderRepo}
}

func (uc *GetOrderUseCase) Execute(ctx context.Context, orderID string) (*order.Order, error) {
	if orderID == "" {
		return nil, apperrors.NewValidationError("order id is required")
	}
	return uc.orderRepo.GetByID(ctx, orderID)
}
