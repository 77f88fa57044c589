package account

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/moneybank/moneybank/internal/money"
)

var (
	// ErrInvalidAmount reports a zero, negative or non-numeric amount.
	ErrInvalidAmount = money.ErrInvalidAmount
	// ErrInsufficientFunds reports a withdrawal (plus any fee) larger than the balance.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrUnknownVariant reports an account type outside Variants.
	ErrUnknownVariant = errors.New("unknown account type")
)

// InsufficientFundsError carries the amount a rejected withdrawal would have needed.
type InsufficientFundsError struct {
	Required  decimal.Decimal // amount plus fee
	Available decimal.Decimal
	Fee       decimal.Decimal // zero for fee-free variants
}

// Error reports the required and available amounts, or the fee-inclusive total.
func (e *InsufficientFundsError) Error() string {
	if e.Fee.IsZero() {
		return fmt.Sprintf("insufficient funds: need %s, have %s", money.Fixed(e.Required), money.Fixed(e.Available))
	}
	return fmt.Sprintf("insufficient funds: need %s including the fee", money.Fixed(e.Required))
}

// Unwrap returns ErrInsufficientFunds so errors.Is matches the sentinel.
func (e *InsufficientFundsError) Unwrap() error { return ErrInsufficientFunds }
