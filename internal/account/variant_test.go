package account

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVariant(t *testing.T) {
	tests := []struct {
		input string
		want  Variant
	}{
		{"standard", VariantStandard},
		{"Savings", VariantSavings},
		{" CHECKING ", VariantChecking},
	}
	for _, tt := range tests {
		got, err := ParseVariant(tt.input)
		require.NoError(t, err, "input: %q", tt.input)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseVariant("premium")
	assert.ErrorIs(t, err, ErrUnknownVariant)
}

func TestVariantLabel(t *testing.T) {
	assert.Equal(t, "Standard", VariantStandard.Label())
	assert.Equal(t, "Savings", VariantSavings.Label())
	assert.Equal(t, "Checking", VariantChecking.Label())
}

func TestRatesPolicy(t *testing.T) {
	rates := DefaultRates()
	for _, v := range Variants {
		p, err := rates.Policy(v)
		require.NoError(t, err)
		assert.Equal(t, v, p.Variant())
	}

	_, err := rates.Policy(Variant("gold"))
	assert.ErrorIs(t, err, ErrUnknownVariant)
}

func TestCustomRates(t *testing.T) {
	rates := Rates{BonusRate: dec("0.05"), WithdrawalFee: dec("2")}

	p, err := rates.Policy(VariantSavings)
	require.NoError(t, err)
	bal, note, err := p.Deposit(dec("0"), dec("10"))
	require.NoError(t, err)
	assert.True(t, bal.Equal(dec("10.5")))
	assert.Equal(t, "Added 10 with 0.50 interest bonus. Total added: 10.50", note)

	p, err = rates.Policy(VariantChecking)
	require.NoError(t, err)
	bal, note, err = p.Withdraw(dec("10"), dec("8"))
	require.NoError(t, err)
	assert.True(t, bal.IsZero())
	assert.Equal(t, "Withdrew 8 with 2.00 fee. Total deducted: 10.00", note)
}
