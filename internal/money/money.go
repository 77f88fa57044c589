// Package money parses and formats decimal amounts entered at the terminal.
package money

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount reports a non-positive, below-minimum or non-numeric amount.
var ErrInvalidAmount = errors.New("invalid amount")

// MaxScale is the most fractional digits an entered amount may carry.
const MaxScale = 28

// MaxIntegerDigits is the most digits an entered amount may carry left of the point.
const MaxIntegerDigits = 28

// Parse reads a decimal amount from user input. Surrounding whitespace is ignored.
// Exponent notation is accepted only while the value stays within MaxScale
// fractional digits and MaxIntegerDigits integer digits.
// Any parse failure wraps ErrInvalidAmount.
func Parse(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("%w: empty input", ErrInvalidAmount)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a number", ErrInvalidAmount, s)
	}
	exp := int64(d.Exponent())
	if exp < -MaxScale {
		return decimal.Zero, fmt.Errorf("%w: %q has more than %d decimal places", ErrInvalidAmount, s, MaxScale)
	}
	coef := strings.TrimPrefix(d.Coefficient().String(), "-")
	if int64(len(coef))+exp > MaxIntegerDigits {
		return decimal.Zero, fmt.Errorf("%w: %q has more than %d integer digits", ErrInvalidAmount, s, MaxIntegerDigits)
	}
	return d, nil
}

// Fixed renders d rounded to 2 decimal places, e.g. "102.00".
func Fixed(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// Display renders d with the currency symbol in front, e.g. "€48.50".
func Display(symbol string, d decimal.Decimal) string {
	return symbol + Fixed(d)
}
