package valueobjects

// PaymentStatus is the processor-defined payment state, stored verbatim as
// Mercado Pago reports it. The constants below are the statuses this system
// branches on; anything else is carried through untouched.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusApproved  PaymentStatus = "approved"
	PaymentStatusRejected  PaymentStatus = "rejected"
	PaymentStatusCancelled PaymentStatus = "cancelled"
)

// IsTerminal reports whether the status is final. A terminal status is
// never overwritten and never transitions back to pending.
func (s PaymentStatus) IsTerminal() bool {
	return s == PaymentStatusApproved || s == PaymentStatusRejected || s == PaymentStatusCancelled
}

func (s PaymentStatus) String() string {
	return string(s)
}
