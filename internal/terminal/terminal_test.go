package terminal

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moneybank/moneybank/internal/account"
	"github.com/moneybank/moneybank/internal/accountid"
	"github.com/moneybank/moneybank/internal/ledger"
)

func script(lines ...string) *strings.Reader {
	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}

func run(t *testing.T, l *ledger.Ledger, in *strings.Reader, opts ...Option) string {
	t.Helper()
	var out bytes.Buffer
	err := New(l, in, &out, opts...).Run(context.Background())
	require.NoError(t, err)
	return out.String()
}

func seed(t *testing.T, l *ledger.Ledger, owner, id, opening string, v account.Variant) *account.Account {
	t.Helper()
	acct, err := l.CreateAccount(context.Background(), ledger.CreateParams{
		Owner:   owner,
		ID:      id,
		Opening: decimal.RequireFromString(opening),
		Variant: v,
	})
	require.NoError(t, err)
	return acct
}

func TestRun_ExitImmediately(t *testing.T) {
	out := run(t, ledger.New(ledger.DefaultOptions()), script("4"))

	assert.Contains(t, out, "Welcome to Money Bank")
	assert.Contains(t, out, "Thanks for using Money Bank. Have a great day!")
}

func TestRun_InvalidMenuChoice(t *testing.T) {
	out := run(t, ledger.New(ledger.DefaultOptions()), script("9", "x", "4"))
	assert.Equal(t, 2, strings.Count(out, "Invalid input. Please enter 1, 2, 3, or 4."))
}

func TestRun_EOFIsExit(t *testing.T) {
	out := run(t, ledger.New(ledger.DefaultOptions()), strings.NewReader(""))
	assert.Contains(t, out, "Input closed. Goodbye!")
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := New(ledger.New(ledger.DefaultOptions()), script("4"), &out).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCreateAccount_RepromptsNameAndID(t *testing.T) {
	l := ledger.New(ledger.DefaultOptions())
	seed(t, l, "Bob", "11111111", "5", account.VariantStandard)

	out := run(t, l, script(
		"1",
		"A",         // too short
		"R2D2",      // digits
		"Alice Doe", // ok
		"1234",      // too short
		"11111111",  // taken
		"22222222",  // ok
		"50",
		"2",
		"4",
	))

	assert.Equal(t, 2, strings.Count(out, "Name should contain only letters"))
	assert.Contains(t, out, "Account number must be exactly 8 digits.")
	assert.Contains(t, out, "This account number is already taken. Try a different one.")
	assert.Contains(t, out, "2. Savings Account (earns 2% bonus on each deposit)")
	assert.Contains(t, out, "3. Checking Account (charges €1.50 fee per withdrawal)")
	assert.Contains(t, out, "New Savings account created for Alice Doe with number [22222222] and €50.00.")

	acct, err := l.FindByID(accountid.MustParse("22222222"))
	require.NoError(t, err)
	assert.Equal(t, account.VariantSavings, acct.Variant())
	assert.Equal(t, 2, l.Len())
}

func TestCreateAccount_BadOpeningAborts(t *testing.T) {
	l := ledger.New(ledger.DefaultOptions())

	out := run(t, l, script(
		"1", "Alice", "12345678", "lots",
		"1", "Alice", "12345678", "0.5",
		"4",
	))

	assert.Contains(t, out, "That wasn't a number. Try again.")
	assert.Contains(t, out, "Starting balance must be at least €1.00.")
	assert.Equal(t, 0, l.Len())
}

func TestCreateAccount_BadTypeAborts(t *testing.T) {
	l := ledger.New(ledger.DefaultOptions())

	out := run(t, l, script("1", "Alice", "12345678", "10", "7", "4"))

	assert.Contains(t, out, "Invalid option. Account not created.")
	assert.Equal(t, 0, l.Len())
}

func TestCreateAccount_LogsWithSessionID(t *testing.T) {
	var logs bytes.Buffer
	ctx := zerolog.New(&logs).WithContext(context.Background())

	l := ledger.New(ledger.DefaultOptions())
	var out bytes.Buffer
	err := New(l, script("1", "Alice", "12345678", "10", "3", "4"), &out).Run(ctx)
	require.NoError(t, err)

	assert.Contains(t, logs.String(), `"message":"account created"`)
	assert.Contains(t, logs.String(), `"session_id":"`)
}

func TestAccountMenu_DepositWithdrawHistory(t *testing.T) {
	l := ledger.New(ledger.DefaultOptions())
	seed(t, l, "Alice", "12345678", "100", account.VariantChecking)

	out := run(t, l, script(
		"2", "12345678",
		"4",        // empty history
		"1", "20",  // deposit
		"2", "50",  // withdraw with fee
		"2", "99",  // insufficient with fee
		"1", "0",   // rejected
		"1", "ten", // not a number
		"3",
		"4",
		"6",
		"4",
	))

	assert.Contains(t, out, "Welcome, Alice!")
	assert.Contains(t, out, "No activity yet. This account's clean as a whistle.")
	assert.Contains(t, out, "Added 20 to account.")
	assert.Contains(t, out, "Withdrew 50 with 1.50 fee. Total deducted: 51.50")
	assert.Contains(t, out, "Not enough money. You need €100.50 including the fee.")
	assert.Contains(t, out, "You can't add zero or negative money.")
	assert.Contains(t, out, "That wasn't a valid number.")
	assert.Contains(t, out, "Current balance: €68.50")
	assert.Contains(t, out, "1. Added 20 to account.\n2. Withdrew 50 with 1.50 fee. Total deducted: 51.50\n")
	assert.Contains(t, out, "Returning to main menu...")
}

func TestAccountMenu_StandardRejections(t *testing.T) {
	l := ledger.New(ledger.DefaultOptions())
	seed(t, l, "Alice", "12345678", "10", account.VariantStandard)

	out := run(t, l, script("2", "12345678", "2", "11", "2", "-3", "8", "6", "4"))

	assert.Contains(t, out, "Not enough funds to make this withdrawal.")
	assert.Contains(t, out, "Taking out zero or negative money? Not allowed.")
	assert.Contains(t, out, "Pick something between 1 and 6.")
}

func TestAccountMenu_RejectsExtremeExponents(t *testing.T) {
	l := ledger.New(ledger.DefaultOptions())
	acct := seed(t, l, "Alice", "12345678", "10", account.VariantStandard)

	out := run(t, l, script("2", "12345678", "1", "1e-2000000000", "2", "1e2000000000", "6", "4"))

	assert.Equal(t, 2, strings.Count(out, "That wasn't a valid number."))
	assert.True(t, acct.Balance().Equal(decimal.NewFromInt(10)))
	assert.Empty(t, acct.History())
}

func TestAccountMenu_ExportCSV(t *testing.T) {
	l := ledger.New(ledger.DefaultOptions())
	acct := seed(t, l, "Alice", "12345678", "10", account.VariantSavings)

	out := run(t, l, script("2", "12345678", "1", "100", "5", "6", "4"))

	assert.Contains(t, out, "account_id,seq,description\n12345678,1,Added 100 with 2.00 interest bonus. Total added: 102.00\n")
	assert.True(t, acct.Balance().Equal(decimal.RequireFromString("112")))
}

func TestUseExisting_NotFound(t *testing.T) {
	out := run(t, ledger.New(ledger.DefaultOptions()), script("2", "87654321", "2", "nope", "4"))
	assert.Equal(t, 2, strings.Count(out, "Hmm, that account doesn't exist."))
}

func TestListByOwner(t *testing.T) {
	l := ledger.New(ledger.DefaultOptions())
	seed(t, l, "Alice", "00000002", "10", account.VariantSavings)
	seed(t, l, "Bob", "00000003", "20", account.VariantStandard)
	seed(t, l, "alice", "00000001", "30.5", account.VariantChecking)

	out := run(t, l, script("3", "ALICE", "3", "Carol", "4"))

	assert.Contains(t, out, "Accounts for ALICE:\n- [Savings] Account #: 00000002 | Balance: €10.00\n- [Checking] Account #: 00000001 | Balance: €30.50\n")
	assert.NotContains(t, out, "00000003")
	assert.Contains(t, out, "Accounts for Carol:\nNo accounts found under that name.")
}

func TestOptions(t *testing.T) {
	out := run(t, ledger.New(ledger.DefaultOptions()), script("4"), WithBankName("Test Bank"), WithCurrencySymbol("$"))
	assert.Contains(t, out, "Welcome to Test Bank")
	assert.Contains(t, out, "Thanks for using Test Bank.")
}
