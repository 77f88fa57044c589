// Package accountid defines the 8-digit account number used as the ledger key.
package accountid

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Length is the number of digits in an account number.
const Length = 8

// ErrInvalid reports an account number that is not exactly 8 decimal digits.
var ErrInvalid = errors.New("account number must be exactly 8 digits")

var validate = validator.New()

// rules holds the validator tags for an account number: Length ASCII digits.
var rules = fmt.Sprintf("len=%d,number", Length)

// ID is a validated account number. The zero value is not a valid ID.
type ID struct {
	digits string
}

// Parse validates raw input and returns an ID. Surrounding whitespace is ignored.
func Parse(raw string) (ID, error) {
	s := strings.TrimSpace(raw)
	if !Valid(s) {
		return ID{}, fmt.Errorf("%w: %q", ErrInvalid, raw)
	}
	return ID{digits: s}, nil
}

// MustParse is like Parse but panics on invalid input. Intended for tests and constants.
func MustParse(raw string) ID {
	id, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return id
}

// Valid reports whether s is exactly Length ASCII digits.
func Valid(s string) bool {
	return validate.Var(s, rules) == nil
}

// String returns the digits.
func (id ID) String() string { return id.digits }

// IsZero reports whether id was never assigned.
func (id ID) IsZero() bool { return id.digits == "" }
