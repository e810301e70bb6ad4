package valueobjects

import (
	"fmt"
	"math"
)

// Money holds an amount in the smallest currency unit (centavos).
// Clients submit decimal totals; the conversion rounds to the nearest cent.
type Money struct {
	amountInCents int64
	currency      string
}

func NewMoney(amountInCents int64, currency string) Money {
	if currency == "" {
		currency = "BRL"
	}
	return Money{
		amountInCents: amountInCents,
		currency:      currency,
	}
}

// NewMoneyFromReais converts a decimal amount (e.g. 150.00) into Money.
func NewMoneyFromReais(amount float64) Money {
	return NewMoney(int64(math.Round(amount*100)), "BRL")
}

func (m Money) AmountInCents() int64 {
	return m.amountInCents
}

func (m Money) Currency() string {
	return m.currency
}

// AmountInReais returns the decimal amount the processor API expects.
func (m Money) AmountInReais() float64 {
	return float64(m.amountInCents) / 100.0
}

func (m Money) Equals(other Money) bool {
	return m.amountInCents == other.amountInCents && m.currency == other.currency
}

func (m Money) IsPositive() bool {
	return m.amountInCents > 0
}

func (m Money) String() string {
	return fmt.Sprintf("%.2f %s", m.AmountInReais(), m.currency)
}
