package validator

import (
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

type testReason struct {
	Reason string `validate:"reason"`
}

type optionalReason struct {
	Reason string `validate:"omitempty,reason"`
}

func TestValidateReason(t *testing.T) {
	v := validator.New()
	RegisterReasonValidation(v)

	tests := []struct {
		name      string
		reason    string
		wantValid bool
	}{
		{name: "plain sentence", reason: "Verify your identity", wantValid: true},
		{name: "unicode text", reason: "Confirmez votre identité", wantValid: true},
		{name: "exactly max length", reason: strings.Repeat("a", MaxReasonLength), wantValid: true},
		{name: "empty", reason: "", wantValid: false},
		{name: "only spaces", reason: "   ", wantValid: false},
		{name: "too long", reason: strings.Repeat("a", MaxReasonLength+1), wantValid: false},
		{name: "control character", reason: "Verify\x00now", wantValid: false},
		{name: "newline", reason: "Verify\nnow", wantValid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(testReason{Reason: tt.reason})
			if tt.wantValid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestRequestValidator(t *testing.T) {
	rv := New()

	assert.NoError(t, rv.Validate(optionalReason{}))
	assert.NoError(t, rv.Validate(optionalReason{Reason: "Sign in"}))
	assert.Error(t, rv.Validate(optionalReason{Reason: " "}))
}
