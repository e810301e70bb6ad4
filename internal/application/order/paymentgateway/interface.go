// Package paymentgateway defines the port to the external payment
// processor. Implementations live under internal/infrastructure/gateway.
package paymentgateway

import (
	"context"

	vo "github.com/cruzetta/kitpay/internal/domain/order/valueobjects"
)

// CardCharge contains the data needed to create a tokenized card payment.
type CardCharge struct {
	Token           string
	Installments    int
	PaymentMethodID string
	IssuerID        string
	PayerEmail      string
	PayerFirstName  string
	PayerLastName   string
	Amount          vo.Money
	Description     string
	NotificationURL string
}

// CardChargeResult is the normalized processor response for a card charge.
type CardChargeResult struct {
	ID           int64
	Status       string
	StatusDetail string
}

// PixCharge contains the data needed to create a PIX charge.
// PayerCPF must already be normalized (digits only).
type PixCharge struct {
	PayerEmail      string
	PayerCPF        string
	Amount          vo.Money
	Description     string
	NotificationURL string
}

// PixChargeResult carries the scannable QR payload the buyer needs.
type PixChargeResult struct {
	ID           int64
	Status       string
	QRCode       string
	QRCodeBase64 string
}

// PaymentInfo is the authoritative payment state fetched on webhook delivery.
type PaymentInfo struct {
	ID     int64
	Status string
}

// Gateway abstracts the payment processor. All calls are synchronous
// request/response with no retained state; failures surface as upstream
// errors carrying the processor's message where available.
type Gateway interface {
	CreateCardPayment(ctx context.Context, charge CardCharge) (*CardChargeResult, error)
	CreatePixPayment(ctx context.Context, charge PixCharge) (*PixChargeResult, error)
	GetPayment(ctx context.Context, paymentID int64) (*PaymentInfo, error)
}
