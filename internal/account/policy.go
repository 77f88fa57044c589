package account

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/moneybank/moneybank/internal/money"
)

// Policy computes the effect of a deposit or withdrawal on a balance.
// Implementations are pure: they return the new balance and the history note,
// or an error leaving the balance untouched.
type Policy interface {
	Variant() Variant
	Deposit(balance, amount decimal.Decimal) (decimal.Decimal, string, error)
	Withdraw(balance, amount decimal.Decimal) (decimal.Decimal, string, error)
}

// Standard is the plain account: no bonus, no fee.
type Standard struct{}

// Variant returns VariantStandard.
func (Standard) Variant() Variant { return VariantStandard }

// Deposit adds amount to balance. Amount must be positive.
func (Standard) Deposit(balance, amount decimal.Decimal) (decimal.Decimal, string, error) {
	if err := checkPositive(amount); err != nil {
		return balance, "", err
	}
	return balance.Add(amount), fmt.Sprintf("Added %s to account.", amount), nil
}

// Withdraw takes amount out of balance, refusing to go below zero.
func (Standard) Withdraw(balance, amount decimal.Decimal) (decimal.Decimal, string, error) {
	if err := checkPositive(amount); err != nil {
		return balance, "", err
	}
	if amount.GreaterThan(balance) {
		return balance, "", &InsufficientFundsError{Required: amount, Available: balance}
	}
	return balance.Sub(amount), fmt.Sprintf("Took out %s from account.", amount), nil
}

// Savings adds BonusRate of every deposit on top of the deposit itself.
type Savings struct {
	BonusRate decimal.Decimal
}

// Variant returns VariantSavings.
func (Savings) Variant() Variant { return VariantSavings }

// Deposit adds amount plus a BonusRate bonus to balance.
func (s Savings) Deposit(balance, amount decimal.Decimal) (decimal.Decimal, string, error) {
	if err := checkPositive(amount); err != nil {
		return balance, "", err
	}
	bonus := amount.Mul(s.BonusRate)
	total := amount.Add(bonus)
	note := fmt.Sprintf("Added %s with %s interest bonus. Total added: %s", amount, money.Fixed(bonus), money.Fixed(total))
	return balance.Add(total), note, nil
}

// Withdraw behaves like Standard.Withdraw.
func (Savings) Withdraw(balance, amount decimal.Decimal) (decimal.Decimal, string, error) {
	return Standard{}.Withdraw(balance, amount)
}

// Checking charges Fee on every withdrawal.
type Checking struct {
	Fee decimal.Decimal
}

// Variant returns VariantChecking.
func (Checking) Variant() Variant { return VariantChecking }

// Deposit behaves like Standard.Deposit.
func (Checking) Deposit(balance, amount decimal.Decimal) (decimal.Decimal, string, error) {
	return Standard{}.Deposit(balance, amount)
}

// Withdraw takes amount plus Fee out of balance, refusing to go below zero.
func (c Checking) Withdraw(balance, amount decimal.Decimal) (decimal.Decimal, string, error) {
	if err := checkPositive(amount); err != nil {
		return balance, "", err
	}
	total := amount.Add(c.Fee)
	if total.GreaterThan(balance) {
		return balance, "", &InsufficientFundsError{Required: total, Available: balance, Fee: c.Fee}
	}
	note := fmt.Sprintf("Withdrew %s with %s fee. Total deducted: %s", amount, money.Fixed(c.Fee), money.Fixed(total))
	return balance.Sub(total), note, nil
}

func checkPositive(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: %s must be greater than zero", ErrInvalidAmount, amount)
	}
	return nil
}
