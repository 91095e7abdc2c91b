package validator

import (
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

const MaxReasonLength = 200

// ValidateReason accepts the user-facing justification shown in a
// biometric prompt: non-blank, bounded, printable.
func ValidateReason(fl validator.FieldLevel) bool {
	reason := fl.Field().String()
	if strings.TrimSpace(reason) == "" || len([]rune(reason)) > MaxReasonLength {
		return false
	}
	for _, r := range reason {
		if !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}

func RegisterReasonValidation(v *validator.Validate) {
	v.RegisterValidation("reason", ValidateReason)
}

// RequestValidator plugs go-playground validation into echo's Validator.
type RequestValidator struct {
	v *validator.Validate
}

func New() *RequestValidator {
	v := validator.New()
	RegisterReasonValidation(v)
	return &RequestValidator{v: v}
}

func (r *RequestValidator) Validate(i any) error {
	return r.v.Struct(i)
}
