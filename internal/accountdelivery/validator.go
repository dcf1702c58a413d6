package accountdelivery

import (
	"github.com/arinzepaschal791-code/stonebridgetrust/internal/domain"
	"github.com/go-playground/validator/v10"
)

// ValidAccountType validates whether the account type is supported.
var ValidAccountType validator.Func = func(fl validator.FieldLevel) bool {
	if t, ok := fl.Field().Interface().(string); ok {
		return t == domain.AccountTypeChecking || t == domain.AccountTypeSavings
	}
	return false
}
