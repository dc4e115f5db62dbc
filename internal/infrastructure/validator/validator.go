package validator

import (
	"fmt"
	"unicode"

	"github.com/go-playground/validator/v10"

	usecasecontract "github.com/firaol-d/clubhub/internal/usecase/contract"
)

// Validator wraps go-playground/validator for field-level checks that the
// binding layer does not cover.
type Validator struct {
	validate *validator.Validate
}

var _ usecasecontract.IValidator = (*Validator)(nil)

func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	return &Validator{validate: v}
}

// ValidateEmail checks that the given string is a well-formed email address.
func (v *Validator) ValidateEmail(email string) error {
	if err := v.validate.Var(email, "required,email"); err != nil {
		return fmt.Errorf("invalid email address")
	}
	return nil
}

// ValidatePasswordStrength enforces the minimum password policy: at least
// eight characters with an upper case letter, a lower case letter, a digit
// and a symbol.
func (v *Validator) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters long")
	}
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSymbol = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit || !hasSymbol {
		return fmt.Errorf("password must contain upper and lower case letters, a digit and a symbol")
	}
	return nil
}
