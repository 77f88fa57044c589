package ledger

import (
	"errors"

	"github.com/moneybank/moneybank/internal/account"
	"github.com/moneybank/moneybank/internal/accountid"
)

var (
	// ErrInvalidOwnerName reports a name shorter than 2 characters or containing anything but letters and spaces.
	ErrInvalidOwnerName = errors.New("name should contain only letters and be at least 2 characters")
	// ErrInvalidID reports an account number that is not exactly 8 digits.
	ErrInvalidID = accountid.ErrInvalid
	// ErrDuplicateID reports an account number that is already registered.
	ErrDuplicateID = errors.New("account number is already taken")
	// ErrInvalidAmount reports a starting balance below the minimum.
	ErrInvalidAmount = account.ErrInvalidAmount
	// ErrUnknownVariant reports an account type that is not standard, savings or checking.
	ErrUnknownVariant = account.ErrUnknownVariant
	// ErrNotFound reports a lookup that matched no account.
	ErrNotFound = errors.New("account not found")
)
