package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/cruzetta/kitpay/internal/application/order/paymentgateway"
	"github.com/cruzetta/kitpay/internal/domain/order"
	vo "github.com/cruzetta/kitpay/internal/domain/order/valueobjects"
	apperrors "github.com/cruzetta/kitpay/internal/shared/errors"
	"github.com/cruzetta/kitpay/internal/shared/logger"
)

type CreateCardPaymentCommand struct {
	OrderID         string
	Token           string
	Installments    int
	PaymentMethodID string
	IssuerID        string
	PayerEmail      string
	BuyerName       string
	TotalPrice      float64
}

type CardPaymentResult struct {
	ID           int64
	Status       string
	StatusDetail string
}

// CreateCardPaymentUseCase charges a tokenized card and records the result
// on the pre-existing order.
type CreateCardPaymentUseCase struct {
	orderRepo       order.Repository
	gateway         paymentgateway.Gateway
	notificationURL string
	logger          logger.Interface
}

func NewCreateCardPaymentUseCase(
	orderRepo order.Repository,
	gateway paymentgateway.Gateway,
	notificationURL string,
	logger logger.Interface,
) *CreateCardPaymentUseCase {
	return &CreateCardPaymentUseCase{
		orderRepo:       orderRepo,
		gateway:         gateway,
		notificationURL: notificationURL,
		logger:          logger,
	}
}

func (cmd CreateCardPaymentCommand) validate() error {
	if cmd.Token == "" || cmd.Installments == 0 || cmd.PaymentMethodID == "" ||
		cmd.PayerEmail == "" || cmd.BuyerName == "" || cmd.OrderID == "" {
		return apperrors.NewValidationError("payment, order, or order id data is incomplete")
	}
	if cmd.TotalPrice <= 0 {
		return apperrors.NewValidationError("order total price is invalid")
	}
	return nil
}

func (uc *CreateCardPaymentUseCase) Execute(ctx context.Context, cmd CreateCardPaymentCommand) (*CardPaymentResult, error) {
	// Validation failures are caller mistakes: no gateway or store call,
	// no failure logging.
	if err := cmd.validate(); err != nil {
		return nil, err
	}

	ord, err := uc.orderRepo.GetByID(ctx, cmd.OrderID)
	if err != nil {
		return nil, err
	}

	firstName, lastName := splitBuyerName(cmd.BuyerName)

	result, err := uc.gateway.CreateCardPayment(ctx, paymentgateway.CardCharge{
		Token:           cmd.Token,
		Installments:    cmd.Installments,
		PaymentMethodID: cmd.PaymentMethodID,
		IssuerID:        cmd.IssuerID,
		PayerEmail:      cmd.PayerEmail,
		PayerFirstName:  firstName,
		PayerLastName:   lastName,
		Amount:          vo.NewMoneyFromReais(cmd.TotalPrice),
		Description:     kitDescription(cmd.BuyerName),
		NotificationURL: uc.notificationURL,
	})
	if err != nil {
		uc.logger.Errorw("card charge failed",
			"error", err,
			"order_id", cmd.OrderID,
			"payment_method_id", cmd.PaymentMethodID,
		)
		return nil, internalFromUpstream(err, "could not process the payment")
	}

	if result.ID == 0 {
		uc.logger.Errorw("processor returned no payment id", "order_id", cmd.OrderID)
		return nil, apperrors.NewInternalError("payment id not returned by the processor")
	}

	if err := ord.AttachCardPayment(result.ID, vo.PaymentStatus(result.Status), cmd.PaymentMethodID, cmd.Installments); err != nil {
		uc.logger.Errorw("failed to attach card payment",
			"error", err,
			"order_id", cmd.OrderID,
			"payment_id", result.ID,
			"status", result.Status,
		)
		return nil, apperrors.NewInternalError("could not record the payment")
	}

	if err := uc.orderRepo.Update(ctx, ord); err != nil {
		uc.logger.Errorw("failed to update order after card charge",
			"error", err,
			"order_id", cmd.OrderID,
			"payment_id", result.ID,
		)
		return nil, apperrors.NewInternalError("could not record the payment")
	}

	uc.logger.Infow("card payment created",
		"order_id", cmd.OrderID,
		"payment_id", result.ID,
		"status", result.Status,
	)

	return &CardPaymentResult{
		ID:           result.ID,
		Status:       result.Status,
		StatusDetail: result.StatusDetail,
	}, nil
}

// splitBuyerName derives the processor's first/last name fields from a
// single display name: first token, then the remainder. A single-token name
// reuses the first name as the last name. Locale-naive, but it matches what
// the processor accepts for Brazilian names.
func splitBuyerName(name string) (string, string) {
	parts := strings.SplitN(strings.TrimSpace(name), " ", 2)
	first := parts[0]
	if len(parts) < 2 || strings.TrimSpace(parts[1]) == "" {
		return first, first
	}
	return first, strings.TrimSpace(parts[1])
}

func kitDescription(buyerName string) string {
	return fmt.Sprintf("Kit(s) Rugby Legends - %s", buyerName)
}

// internalFromUpstream maps a gateway failure to the internal error surfaced
// to the caller, preferring the processor's own message when there is one.
func internalFromUpstream(err error, fallback string) *apperrors.AppError {
	if appErr := apperrors.GetAppError(err); appErr != nil &&
		appErr.Type == apperrors.ErrorTypeUpstream && appErr.Message != "" {
		return apperrors.NewInternalError(appErr.Message)
	}
	return apperrors.NewInternalError(fallback)
}
