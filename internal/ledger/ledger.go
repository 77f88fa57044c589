// Package ledger is the in-memory registry that owns every account.
package ledger

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/moneybank/moneybank/internal/account"
	"github.com/moneybank/moneybank/internal/accountid"
	"github.com/moneybank/moneybank/internal/money"
)

// DefaultMinimumOpening is the smallest starting balance accepted by CreateAccount.
var DefaultMinimumOpening = decimal.NewFromInt(1)

// Options configures a Ledger.
type Options struct {
	Rates          account.Rates
	MinimumOpening decimal.Decimal
}

// DefaultOptions returns the 2% bonus, 1.50 fee and 1.00 minimum opening balance.
func DefaultOptions() Options {
	return Options{Rates: account.DefaultRates(), MinimumOpening: DefaultMinimumOpening}
}

// Ledger holds accounts keyed by number, in creation order.
// It is not safe for concurrent use.
type Ledger struct {
	opts     Options
	accounts []*account.Account
	byID     map[accountid.ID]*account.Account
}

// New creates an empty Ledger.
func New(opts Options) *Ledger {
	return &Ledger{opts: opts, byID: make(map[accountid.ID]*account.Account)}
}

// CreateParams holds the fields needed to open an account.
type CreateParams struct {
	Owner   string          `validate:"required,min=2,ownername"`
	ID      string          `validate:"required,accountid"`
	Opening decimal.Decimal `validate:"-"`
	Variant account.Variant `validate:"required,variant"`
}

// Summary is a read-only view of an account for listings.
type Summary struct {
	ID      accountid.ID
	Owner   string
	Variant account.Variant
	Balance decimal.Decimal
}

// CreateAccount validates params and registers a new account.
// Checks run in order: owner, number format, number uniqueness, starting balance, type.
func (l *Ledger) CreateAccount(ctx context.Context, params CreateParams) (*account.Account, error) {
	log := zerolog.Ctx(ctx)

	params.Owner = strings.TrimSpace(params.Owner)
	params.ID = strings.TrimSpace(params.ID)

	acct, err := l.create(params)
	if err != nil {
		log.Debug().Err(err).Str("account_id", params.ID).Msg("account rejected")
		return nil, err
	}

	log.Info().
		Str("account_id", acct.ID().String()).
		Str("variant", string(acct.Variant())).
		Str("opening", acct.Balance().String()).
		Msg("account created")
	return acct, nil
}

func (l *Ledger) create(params CreateParams) (*account.Account, error) {
	if err := validate.StructExcept(params, "Variant"); err != nil {
		return nil, fieldError(err)
	}

	id, err := l.CheckID(params.ID)
	if err != nil {
		return nil, err
	}

	if params.Opening.LessThan(l.opts.MinimumOpening) {
		return nil, fmt.Errorf("%w: starting balance must be at least %s", ErrInvalidAmount, money.Fixed(l.opts.MinimumOpening))
	}

	if err := validate.Var(params.Variant, variantRules); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, params.Variant)
	}
	policy, err := l.opts.Rates.Policy(params.Variant)
	if err != nil {
		return nil, err
	}

	acct := account.New(id, params.Owner, params.Opening, policy)
	l.accounts = append(l.accounts, acct)
	l.byID[id] = acct
	return acct, nil
}

// ValidateOwner checks a name against the owner rules and returns it trimmed.
func (l *Ledger) ValidateOwner(name string) (string, error) {
	name = strings.TrimSpace(name)
	if err := validate.Var(name, ownerNameRules); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidOwnerName, name)
	}
	return name, nil
}

// CheckID parses raw and reports whether it is free to use.
func (l *Ledger) CheckID(raw string) (accountid.ID, error) {
	id, err := accountid.Parse(raw)
	if err != nil {
		return accountid.ID{}, err
	}
	if _, ok := l.byID[id]; ok {
		return accountid.ID{}, fmt.Errorf("%w: %s", ErrDuplicateID, id)
	}
	return id, nil
}

// MinimumOpening returns the smallest accepted starting balance.
func (l *Ledger) MinimumOpening() decimal.Decimal {
	return l.opts.MinimumOpening
}

// Rates returns the bonus and fee applied to new accounts.
func (l *Ledger) Rates() account.Rates {
	return l.opts.Rates
}

// FindByID returns the account with the given number.
func (l *Ledger) FindByID(id accountid.ID) (*account.Account, error) {
	a, ok := l.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return a, nil
}

// Lookup parses raw and returns the matching account. Malformed numbers are reported as ErrNotFound.
func (l *Ledger) Lookup(raw string) (*account.Account, error) {
	id, err := accountid.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, strings.TrimSpace(raw))
	}
	return l.FindByID(id)
}

// FindByOwner returns every account whose owner matches name case-insensitively,
// in creation order. The result is empty when nothing matches.
func (l *Ledger) FindByOwner(name string) []Summary {
	name = strings.TrimSpace(name)
	var result []Summary
	for _, a := range l.accounts {
		if strings.EqualFold(a.Owner(), name) {
			result = append(result, Summary{
				ID:      a.ID(),
				Owner:   a.Owner(),
				Variant: a.Variant(),
				Balance: a.Balance(),
			})
		}
	}
	return result
}

// Len returns the number of registered accounts.
func (l *Ledger) Len() int {
	return len(l.accounts)
}
