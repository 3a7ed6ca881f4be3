package accountdelivery

import (
	"github.com/go-playground/validator/v10"

	"github.com/swiftpay/swiftpay/internal/domain"
)

// ValidPIN validates whether the PIN is exactly 6 digits.
var ValidPIN validator.Func = func(fl validator.FieldLevel) bool {
	if pin, ok := fl.Field().Interface().(string); ok {
		return domain.ValidPINFormat(pin)
	}
	return false
}
