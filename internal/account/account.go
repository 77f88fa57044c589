// Package account models a single bank account: its owner, number, balance and
// append-only transaction history. Deposit and withdraw arithmetic is delegated
// to a Policy chosen at creation.
package account

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/moneybank/moneybank/internal/accountid"
)

// Record is one accepted deposit or withdrawal. Seq starts at 1.
type Record struct {
	Seq         int
	Description string
}

// Account is not safe for concurrent use.
type Account struct {
	id      accountid.ID
	owner   string
	balance decimal.Decimal
	history []Record
	policy  Policy
}

// New creates an account. Validation of owner and opening balance is the caller's job;
// see ledger.CreateAccount.
func New(id accountid.ID, owner string, opening decimal.Decimal, policy Policy) *Account {
	return &Account{id: id, owner: owner, balance: opening, policy: policy}
}

// ID returns the account number.
func (a *Account) ID() accountid.ID { return a.id }

// Owner returns the owner's display name.
func (a *Account) Owner() string { return a.owner }

// Variant returns the account's policy kind.
func (a *Account) Variant() Variant { return a.policy.Variant() }

// Balance returns the current balance at full precision.
func (a *Account) Balance() decimal.Decimal { return a.balance }

// History returns a copy of the transaction records in the order they were accepted.
func (a *Account) History() []Record {
	out := make([]Record, len(a.history))
	copy(out, a.history)
	return out
}

// Deposit adds amount according to the account's policy.
// Rejected deposits leave balance and history unchanged.
func (a *Account) Deposit(amount decimal.Decimal) (Record, error) {
	next, note, err := a.policy.Deposit(a.balance, amount)
	if err != nil {
		return Record{}, fmt.Errorf("deposit to %s: %w", a.id, err)
	}
	return a.apply(next, note), nil
}

// Withdraw removes amount (plus any fee) according to the account's policy.
// Rejected withdrawals leave balance and history unchanged.
func (a *Account) Withdraw(amount decimal.Decimal) (Record, error) {
	next, note, err := a.policy.Withdraw(a.balance, amount)
	if err != nil {
		return Record{}, fmt.Errorf("withdraw from %s: %w", a.id, err)
	}
	return a.apply(next, note), nil
}

func (a *Account) apply(next decimal.Decimal, note string) Record {
	if next.IsNegative() {
		panic(fmt.Sprintf("account %s: %s policy produced negative balance %s", a.id, a.policy.Variant(), next))
	}
	a.balance = next
	rec := Record{Seq: len(a.history) + 1, Description: note}
	a.history = append(a.history, rec)
	return rec
}
