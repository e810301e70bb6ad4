package order

import (
	"encoding/json"
	"fmt"
	"time"

	vo "github.com/cruzetta/kitpay/internal/domain/order/valueobjects"
	"github.com/cruzetta/kitpay/internal/shared/biztime"
)

// PurchaseTypeKit tags every order created through the kit checkout.
const PurchaseTypeKit = "kit_order"

// Order is a kit purchase record. It is created before any payment attempt
// and updated as the processor reports payment progress; it is never deleted.
type Order struct {
	id           string
	buyerName    string
	buyerEmail   string
	buyerCelular string
	buyerCPF     *vo.CPF

	kits         json.RawMessage
	totalPrice   vo.Money
	purchaseType string

	paymentID     *int64
	paymentStatus vo.PaymentStatus
	paymentMethod *string
	installments  *int

	version   int
	createdAt time.Time
	updatedAt time.Time
}

// NewOrder creates an order in the pending state, before any gateway call.
func NewOrder(id, buyerName, buyerEmail, buyerCelular string, cpf *vo.CPF, kits json.RawMessage, totalPrice vo.Money) (*Order, error) {
	if id == "" {
		return nil, fmt.Errorf("order id is required")
	}
	if buyerName == "" {
		return nil, fmt.Errorf("buyer name is required")
	}
	if buyerEmail == "" {
		return nil, fmt.Errorf("buyer email is required")
	}
	if len(kits) == 0 {
		return nil, fmt.Errorf("kits are required")
	}
	if !totalPrice.IsPositive() {
		return nil, fmt.Errorf("total price must be positive")
	}

	now := biztime.NowUTC()

	return &Order{
		id:            id,
		buyerName:     buyerName,
		buyerEmail:    buyerEmail,
		buyerCelular:  buyerCelular,
		buyerCPF:      cpf,
		kits:          kits,
		totalPrice:    totalPrice,
		purchaseType:  PurchaseTypeKit,
		paymentStatus: vo.PaymentStatusPending,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// AttachCardPayment records the result of a successful card charge. The
// status is stored verbatim as the processor reported it; a card charge can
// land approved, rejected, or in an intermediate state like in_process, and
// the webhook only acts on the statuses it recognizes.
func (o *Order) AttachCardPayment(paymentID int64, status vo.PaymentStatus, methodID string, installments int) error {
	if paymentID == 0 {
		return fmt.Errorf("payment id is required")
	}

	o.paymentID = &paymentID
	o.paymentStatus = status
	o.paymentMethod = &methodID
	o.installments = &installments
	o.touch()

	return nil
}

// AttachPixPayment records a freshly created PIX charge. PIX charges always
// start pending; the webhook advances them later.
func (o *Order) AttachPixPayment(paymentID int64) error {
	if paymentID == 0 {
		return fmt.Errorf("payment id is required")
	}

	method := "pix"
	o.paymentID = &paymentID
	o.paymentStatus = vo.PaymentStatusPending
	o.paymentMethod = &method
	o.touch()

	return nil
}

// SetCPF attaches the buyer's tax id when it arrives with a later PIX
// payment rather than at order creation.
func (o *Order) SetCPF(cpf vo.CPF) {
	o.buyerCPF = &cpf
	o.touch()
}

// ApplyGatewayStatus advances the payment status from an authoritative
// processor report. Transitions are forward-only: pending is never written
// back and terminal states are never overwritten. It returns true when the
// order changed and needs persisting.
func (o *Order) ApplyGatewayStatus(status vo.PaymentStatus) bool {
	if !status.IsTerminal() {
		return false
	}
	if o.paymentStatus.IsTerminal() {
		return false
	}

	o.paymentStatus = status
	o.touch()
	return true
}

func (o *Order) touch() {
	o.updatedAt = biztime.NowUTC()
	o.version++
}

func (o *Order) ID() string {
	return o.id
}

func (o *Order) BuyerName() string {
	return o.buyerName
}

func (o *Order) BuyerEmail() string {
	return o.buyerEmail
}

func (o *Order) BuyerCelular() string {
	return o.buyerCelular
}

func (o *Order) BuyerCPF() *vo.CPF {
	return o.buyerCPF
}

func (o *Order) Kits() json.RawMessage {
	return o.kits
}

func (o *Order) TotalPrice() vo.Money {
	return o.totalPrice
}

func (o *Order) PurchaseType() string {
	return o.purchaseType
}

func (o *Order) PaymentID() *int64 {
	return o.paymentID
}

func (o *Order) PaymentStatus() vo.PaymentStatus {
	return o.paymentStatus
}

func (o *Order) PaymentMethod() *string {
	return o.paymentMethod
}

func (o *Order) Installments() *int {
	return o.installments
}

func (o *Order) Version() int {
	return o.version
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// ReconstructParams carries persisted state back into the domain.
type ReconstructParams struct {
	ID           string
	BuyerName    string
	BuyerEmail   string
	BuyerCelular string
	BuyerCPF     *vo.CPF

	Kits         json.RawMessage
	TotalPrice   vo.Money
	PurchaseType string

	PaymentID     *int64
	PaymentStatus vo.PaymentStatus
	PaymentMethod *string
	Installments  *int

	Version   int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Reconstruct rebuilds an Order from persistence without re-running
// creation-time validation.
func Reconstruct(p ReconstructParams) *Order {
	return &Order{
		id:            p.ID,
		buyerName:     p.BuyerName,
		buyerEmail:    p.BuyerEmail,
		buyerCelular:  p.BuyerCelular,
		buyerCPF:      p.BuyerCPF,
		kits:          p.Kits,
		totalPrice:    p.TotalPrice,
		purchaseType:  p.PurchaseType,
		paymentID:     p.PaymentID,
		paymentStatus: p.PaymentStatus,
		paymentMethod: p.PaymentMethod,
		installments:  p.Installments,
		version:       p.Version,
		createdAt:     p.CreatedAt,
		updatedAt:     p.UpdatedAt,
	}
}
