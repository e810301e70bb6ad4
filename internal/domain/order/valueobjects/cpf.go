package valueobjects

import (
	"fmt"
	"strings"
	"unicode"
)

// CPF is a normalized Brazilian taxpayer id: eleven digits, no separators.
// The processor requires it for PIX payer identification.
type CPF string

// NewCPF strips all non-digit characters and validates the digit count.
func NewCPF(raw string) (CPF, error) {
	var b strings.Builder
	for _, r := range raw {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}

	normalized := b.String()
	if len(normalized) != 11 {
		return "", fmt.Errorf("invalid CPF: expected 11 digits, got %d", len(normalized))
	}

	return CPF(normalized), nil
}

func (c CPF) String() string {
	return string(c)
}
