package usecases

import (
	"context"

	"github.com/cruzetta/kitpay/internal/application/order/paymentgateway"
	"github.com/cruzetta/kitpay/internal/domain/order"
	vo "github.com/cruzetta/kitpay/internal/domain/order/valueobjects"
	apperrors "github.com/cruzetta/kitpay/internal/shared/errors"
	"github.com/cruzetta/kitpay/internal/shared/logger"
)

type CreatePixPaymentCommand struct {
	OrderID      string
	BuyerName    string
	BuyerEmail   string
	BuyerCelular string
	BuyerCPF     string
	TotalPrice   float64
}

type PixPaymentResult struct {
	ID           int64
	Status       string
	QRCode       string
	QRCodeBase64 string
}

// CreatePixPaymentUseCase creates a PIX charge and returns the QR payload
// the storefront renders for the buyer.
type CreatePixPaymentUseCase struct {
	orderRepo       order.Repository
	gateway         paymentgateway.Gateway
	notificationURL string
	logger          logger.Interface
}

func NewCreatePixPaymentUseCase(
	orderRepo order.Repository,
	gateway paymentgateway.Gateway,
	notificationURL string,
	logger logger.Interface,
) *CreatePixPaymentUseCase {
	return &CreatePixPaymentUseCase{
		orderRepo:       orderRepo,
		gateway:         gateway,
		notificationURL: notificationURL,
		logger:          logger,
	}
}

func (cmd CreatePixPaymentCommand) validate() error {
	if cmd.BuyerName == "" || cmd.BuyerEmail == "" || cmd.BuyerCPF == "" || cmd.OrderID == "" {
		return apperrors.NewValidationError("order, email, CPF, or order id data is incomplete")
	}
	if cmd.TotalPrice <= 0 {
		return apperrors.NewValidationError("order total price is invalid")
	}
	return nil
}

func (uc *CreatePixPaymentUseCase) Execute(ctx context.Context, cmd CreatePixPaymentCommand) (*PixPaymentResult, error) {
	if err := cmd.validate(); err != nil {
		return nil, err
	}

	cpf, err := vo.NewCPF(cmd.BuyerCPF)
	if err != nil {
		return nil, apperrors.NewValidationError("buyer CPF is invalid", err.Error())
	}

	ord, err := uc.orderRepo.GetByID(ctx, cmd.OrderID)
	if err != nil {
		return nil, err
	}

	result, err := uc.gateway.CreatePixPayment(ctx, paymentgateway.PixCharge{
		PayerEmail:      cmd.BuyerEmail,
		PayerCPF:        cpf.String(),
		Amount:          vo.NewMoneyFromReais(cmd.TotalPrice),
		Description:     kitDescription(cmd.BuyerName),
		NotificationURL: uc.notificationURL,
	})
	if err != nil {
		// The raw processor body goes to the log for diagnostics; the
		// caller only sees a generic message.
		args := []any{"error", err, "order_id", cmd.OrderID}
		if appErr := apperrors.GetAppError(err); appErr != nil && appErr.Details != "" {
			args = append(args, "upstream_body", appErr.Details)
		}
		uc.logger.Errorw("pix charge failed", args...)
		return nil, apperrors.NewInternalError("could not generate the PIX charge")
	}

	if result.ID == 0 || result.QRCode == "" {
		uc.logger.Errorw("processor returned incomplete PIX data", "order_id", cmd.OrderID, "payment_id", result.ID)
		return nil, apperrors.NewInternalError("PIX data not returned by the processor")
	}

	ord.SetCPF(cpf)
	if err := ord.AttachPixPayment(result.ID); err != nil {
		uc.logger.Errorw("failed to attach pix payment", "error", err, "order_id", cmd.OrderID, "payment_id", result.ID)
		return nil, apperrors.NewInternalError("could not record the payment")
	}

	if err := uc.orderRepo.Update(ctx, ord); err != nil {
		uc.logger.Errorw("failed to update order after pix charge",
			"error", err,
			"order_id", cmd.OrderID,
			"payment_id", result.ID,
		)
		return nil, apperrors.NewInternalError("could not record the payment")
	}

	uc.logger.Infow("pix payment created",
		"order_id", cmd.OrderID,
		"payment_id", result.ID,
	)

	return &PixPaymentResult{
		ID:           result.ID,
		Status:       result.Status,
		QRCode:       result.QRCode,
		QRCodeBase64: result.QRCodeBase64,
	}, nil
}
