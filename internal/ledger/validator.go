package ledger

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/moneybank/moneybank/internal/account"
	"github.com/moneybank/moneybank/internal/accountid"
)

// validOwnerName accepts letters and spaces with at least one letter.
var validOwnerName validator.Func = func(fl validator.FieldLevel) bool {
	name, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	letters := 0
	for _, r := range name {
		switch {
		case unicode.IsLetter(r):
			letters++
		case r == ' ':
		default:
			return false
		}
	}
	return letters > 0
}

var validAccountID validator.Func = func(fl validator.FieldLevel) bool {
	return accountid.Valid(fl.Field().String())
}

var validVariant validator.Func = func(fl validator.FieldLevel) bool {
	return account.Variant(fl.Field().String()).Known()
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	for tag, fn := range map[string]validator.Func{
		"ownername": validOwnerName,
		"accountid": validAccountID,
		"variant":   validVariant,
	} {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("registering %s validation: %v", tag, err))
		}
	}
	return v
}

const (
	ownerNameRules = "required,min=2,ownername"
	variantRules   = "required,variant"
)

// fieldError maps the first failed struct field to its sentinel error.
func fieldError(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	switch fe.Field() {
	case "Owner":
		return fmt.Errorf("%w: %q", ErrInvalidOwnerName, fe.Value())
	case "ID":
		return fmt.Errorf("%w: %q", ErrInvalidID, fe.Value())
	case "Variant":
		return fmt.Errorf("%w: %q", ErrUnknownVariant, fe.Value())
	default:
		return fmt.Errorf("invalid %s: %s", strings.ToLower(fe.Field()), fe.Tag())
	}
}
