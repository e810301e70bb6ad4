package order

import "context"

// Repository persists order records. Each write is a single atomic
// document mutation; there is no cross-order transaction requirement.
type Repository interface {
	Create(ctx context.Context, o *Order) error
	Update(ctx context.Context, o *Order) error
	GetByID(ctx context.Context, id string) (*Order, error)
	// FindByPaymentID returns every order carrying the processor payment id.
	// More than one match should not normally occur but is structurally
	// possible; the webhook updates all of them.
	FindByPaymentID(ctx context.Context, paymentID int64) ([]*Order, error)
}
