package account

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Variant classifies an account by the policy governing its deposit and withdraw arithmetic.
type Variant string

const (
	// VariantStandard has no deposit bonus and no withdrawal fee.
	VariantStandard Variant = "standard"
	// VariantSavings adds a bonus on every deposit.
	VariantSavings Variant = "savings"
	// VariantChecking charges a fee on every withdrawal.
	VariantChecking Variant = "checking"
)

// Variants lists every known variant in menu order.
var Variants = []Variant{VariantStandard, VariantSavings, VariantChecking}

// Label returns the display name, e.g. "Savings".
func (v Variant) Label() string {
	switch v {
	case VariantStandard:
		return "Standard"
	case VariantSavings:
		return "Savings"
	case VariantChecking:
		return "Checking"
	default:
		return string(v)
	}
}

// Known reports whether v is one of Variants.
func (v Variant) Known() bool {
	for _, k := range Variants {
		if v == k {
			return true
		}
	}
	return false
}

// ParseVariant accepts a variant name in any case.
func ParseVariant(s string) (Variant, error) {
	v := Variant(strings.ToLower(strings.TrimSpace(s)))
	if !v.Known() {
		return "", fmt.Errorf("%w: %q", ErrUnknownVariant, s)
	}
	return v, nil
}

var (
	// DefaultBonusRate is the savings bonus applied to every deposit.
	DefaultBonusRate = decimal.RequireFromString("0.02")
	// DefaultWithdrawalFee is the flat checking fee charged on every withdrawal.
	DefaultWithdrawalFee = decimal.RequireFromString("1.50")
)

// Rates parameterizes the Savings and Checking policies.
type Rates struct {
	BonusRate     decimal.Decimal
	WithdrawalFee decimal.Decimal
}

// DefaultRates returns the 2% bonus and 1.50 fee.
func DefaultRates() Rates {
	return Rates{BonusRate: DefaultBonusRate, WithdrawalFee: DefaultWithdrawalFee}
}

// Policy returns the policy implementing v.
func (r Rates) Policy(v Variant) (Policy, error) {
	switch v {
	case VariantStandard:
		return Standard{}, nil
	case VariantSavings:
		return Savings{BonusRate: r.BonusRate}, nil
	case VariantChecking:
		return Checking{Fee: r.WithdrawalFee}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, string(v))
	}
}
