package usecases

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/cruzetta/kitpay/internal/domain/order"
	vo "github.com/cruzetta/kitpay/internal/domain/order/valueobjects"
	apperrors "github.com/cruzetta/kitpay/internal/shared/errors"
	"github.com/cruzetta/kitpay/internal/shared/logger"
)

// TransactionManager runs a function within a storage transaction.
// Satisfied by shared/db.TransactionManager.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type CreateOrderCommand struct {
	BuyerName    string
	BuyerEmail   string
	BuyerCelular string
	BuyerCPF     string // optional at creation; required later for PIX
	Kits         json.RawMessage
	TotalPrice   float64
}

type CreateOrderResult struct {
	OrderID   string
	CreatedAt time.Time
}

// CreateOrderUseCase creates the order record before any payment attempt,
// so a payment id always has a pre-existing document to land on.
type CreateOrderUseCase struct {
	orderRepo order.Repository
	txManager TransactionManager
	logger    logger.Interface
}

func NewCreateOrderUseCase(orderRepo order.Repository, txManager TransactionManager, logger logger.Interface) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		orderRepo: orderRepo,
		txManager: txManager,
		logger:    logger,
	}
}

func (uc *CreateOrderUseCase) Execute(ctx context.Context, cmd CreateOrderCommand) (*CreateOrderResult, error) {
	if cmd.BuyerName == "" || cmd.BuyerEmail == "" || len(cmd.Kits) == 0 {
		return nil, apperrors.NewValidationError("order data is incomplete")
	}
	if cmd.TotalPrice <= 0 {
		return nil, apperrors.NewValidationError("order total price is invalid")
	}

	var cpf *vo.CPF
	if cmd.BuyerCPF != "" {
		normalized, err := vo.NewCPF(cmd.BuyerCPF)
		if err != nil {
			return nil, apperrors.NewValidationError("buyer CPF is invalid", err.Error())
		}
		cpf = &normalized
	}

	ord, err := order.NewOrder(
		uuid.NewString(),
		cmd.BuyerName,
		cmd.BuyerEmail,
		cmd.BuyerCelular,
		cpf,
		cmd.Kits,
		vo.NewMoneyFromReais(cmd.TotalPrice),
	)
	if err != nil {
		return nil, apperrors.NewValidationError("order data is invalid", err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.orderRepo.Create(txCtx, ord)
	})
	if err != nil {
		if apperrors.IsConflictError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to create order", "error", err, "buyer_email", cmd.BuyerEmail)
		return nil, apperrors.NewInternalError("could not create the order")
	}

	uc.logger.Infow("order created",
		"order_id", ord.ID(),
		"total_price", ord.TotalPrice().String(),
	)

	return &CreateOrderResult{
		OrderID:   ord.ID(),
		CreatedAt: ord.CreatedAt(),
	}, nil
}
