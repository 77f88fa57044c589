// Package terminal is the menu-driven front end over a ledger.
package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/moneybank/moneybank/internal/account"
	"github.com/moneybank/moneybank/internal/ledger"
	"github.com/moneybank/moneybank/internal/money"
)

// Terminal reads menu choices from in and writes prompts and results to out.
type Terminal struct {
	ledger   *ledger.Ledger
	in       *bufio.Scanner
	out      io.Writer
	symbol   string
	bankName string
}

// Option customizes a Terminal.
type Option func(*Terminal)

// WithCurrencySymbol sets the symbol printed in front of amounts.
func WithCurrencySymbol(symbol string) Option {
	return func(t *Terminal) { t.symbol = symbol }
}

// WithBankName sets the name shown in the welcome banner.
func WithBankName(name string) Option {
	return func(t *Terminal) { t.bankName = name }
}

// New creates a Terminal over l.
func New(l *ledger.Ledger, in io.Reader, out io.Writer, opts ...Option) *Terminal {
	t := &Terminal{
		ledger:   l,
		in:       bufio.NewScanner(in),
		out:      out,
		symbol:   "€",
		bankName: "Money Bank",
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Run drives the main menu until the user exits, input ends, or ctx is cancelled.
// End of input counts as exiting.
func (t *Terminal) Run(ctx context.Context) error {
	log := zerolog.Ctx(ctx).With().Str("session_id", uuid.NewString()).Logger()
	ctx = log.WithContext(ctx)
	log.Debug().Msg("session started")

	err := t.mainMenu(ctx)
	if errors.Is(err, io.EOF) {
		t.println()
		t.println("Input closed. Goodbye!")
		err = nil
	}
	log.Debug().Err(err).Int("accounts", t.ledger.Len()).Msg("session ended")
	return err
}

func (t *Terminal) mainMenu(ctx context.Context) error {
	t.println("===================================")
	t.printf("     Welcome to %s     \n", t.bankName)
	t.println("===================================")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		t.println()
		t.println("Main Menu:")
		t.println("1. Make a new account")
		t.println("2. Use an existing account")
		t.println("3. View all my accounts by name")
		t.println("4. Leave the bank (Exit)")

		pick, err := t.prompt("Choose an option (1/2/3/4): ")
		if err != nil {
			return err
		}

		switch pick {
		case "1":
			err = t.createAccount(ctx)
		case "2":
			err = t.useExisting(ctx)
		case "3":
			err = t.listByOwner()
		case "4":
			t.printf("Thanks for using %s. Have a great day!\n", t.bankName)
			return nil
		default:
			t.println("Invalid input. Please enter 1, 2, 3, or 4.")
		}
		if err != nil {
			return err
		}
	}
}

func (t *Terminal) createAccount(ctx context.Context) error {
	t.println()
	t.println("Let's get a fresh account made.")

	var owner string
	for {
		raw, err := t.prompt("Enter your name (letters only): ")
		if err != nil {
			return err
		}
		owner, err = t.ledger.ValidateOwner(raw)
		if err == nil {
			break
		}
		t.println("Name should contain only letters and be at least 2 characters long. Try again.")
	}

	var rawID string
	for {
		raw, err := t.prompt("Pick a new account number (8 digits, unique): ")
		if err != nil {
			return err
		}
		id, err := t.ledger.CheckID(raw)
		if err == nil {
			rawID = id.String()
			break
		}
		if errors.Is(err, ledger.ErrDuplicateID) {
			t.println("This account number is already taken. Try a different one.")
		} else {
			t.println("Account number must be exactly 8 digits.")
		}
	}

	minimum := t.ledger.MinimumOpening()
	raw, err := t.prompt(fmt.Sprintf("Starting balance (minimum %s): %s", t.amount(minimum), t.symbol))
	if err != nil {
		return err
	}
	opening, err := money.Parse(raw)
	if err != nil {
		t.println("That wasn't a number. Try again.")
		return nil
	}
	if opening.LessThan(minimum) {
		t.printf("Starting balance must be at least %s.\n", t.amount(minimum))
		return nil
	}

	rates := t.ledger.Rates()
	t.println()
	t.println("Choose account type:")
	t.println("1. Standard Account")
	t.printf("2. Savings Account (earns %s%% bonus on each deposit)\n", rates.BonusRate.Mul(decimal.NewFromInt(100)))
	t.printf("3. Checking Account (charges %s fee per withdrawal)\n", t.amount(rates.WithdrawalFee))

	choice, err := t.prompt("Enter 1, 2, or 3: ")
	if err != nil {
		return err
	}
	variant, ok := variantChoice(choice)
	if !ok {
		t.println("Invalid option. Account not created.")
		return nil
	}

	acct, err := t.ledger.CreateAccount(ctx, ledger.CreateParams{
		Owner:   owner,
		ID:      rawID,
		Opening: opening,
		Variant: variant,
	})
	if err != nil {
		t.printf("Account not created: %v\n", err)
		return nil
	}

	t.printf("New %s account created for %s with number [%s] and %s.\n",
		acct.Variant().Label(), acct.Owner(), acct.ID(), t.amount(acct.Balance()))
	return nil
}

func variantChoice(choice string) (account.Variant, bool) {
	switch choice {
	case "1":
		return account.VariantStandard, true
	case "2":
		return account.VariantSavings, true
	case "3":
		return account.VariantChecking, true
	default:
		return "", false
	}
}

func (t *Terminal) useExisting(ctx context.Context) error {
	raw, err := t.prompt("Enter your account number: ")
	if err != nil {
		return err
	}
	acct, err := t.ledger.Lookup(raw)
	if err != nil {
		t.println("Hmm, that account doesn't exist. Check the number and try again.")
		return nil
	}
	return t.accountMenu(ctx, acct)
}

func (t *Terminal) listByOwner() error {
	name, err := t.prompt("Enter your name to see all your accounts: ")
	if err != nil {
		return err
	}

	t.println()
	t.printf("Accounts for %s:\n", name)
	found := t.ledger.FindByOwner(name)
	if len(found) == 0 {
		t.println("No accounts found under that name.")
		return nil
	}
	for _, s := range found {
		t.printf("- [%s] Account #: %s | Balance: %s\n", s.Variant.Label(), s.ID, t.amount(s.Balance))
	}
	return nil
}

func (t *Terminal) prompt(label string) (string, error) {
	t.printf("%s", label)
	if !t.in.Scan() {
		if err := t.in.Err(); err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimSpace(t.in.Text()), nil
}

func (t *Terminal) amount(d decimal.Decimal) string {
	return money.Display(t.symbol, d)
}

func (t *Terminal) printf(format string, args ...any) {
	fmt.Fprintf(t.out, format, args...)
}

func (t *Terminal) println(args ...any) {
	fmt.Fprintln(t.out, args...)
}
