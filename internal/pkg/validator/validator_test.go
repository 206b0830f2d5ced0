package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidSecretCode(t *testing.T) {
	tests := []struct {
		code  string
		valid bool
	}{
		{"12345678", true},
		{"00000000", true},
		{"1234567", false},
		{"123456789", false},
		{"1234567a", false},
		{"1234 5678", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidSecretCode(tt.code))
		})
	}
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("admin@example.com"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("missing@tld"))
}

func TestIsValidDate(t *testing.T) {
	_, ok := IsValidDate("2024-03-04")
	assert.True(t, ok)

	_, ok = IsValidDate("04-03-2024")
	assert.False(t, ok)
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "secret_code", Message: "secret_code must be exactly 8 digits"},
	}

	m := errs.ToMap()
	assert.Equal(t, "secret_code must be exactly 8 digits", m["secret_code"])
	assert.Contains(t, errs.Error(), "secret_code")
}
