package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("a"))
	assert.False(t, IsEmpty(" a "))
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"jane@example.com",
		"jane.smith+tag@example.co",
		"a_b-c%d@sub.domain.org",
	}
	for _, email := range valid {
		assert.True(t, IsValidEmail(email), email)
	}

	invalid := []string{
		"",
		"jane",
		"jane@",
		"@example.com",
		"jane@example",
		"jane smith@example.com",
	}
	for _, email := range invalid {
		assert.False(t, IsValidEmail(email), email)
	}
}

func TestIsValidUUID(t *testing.T) {
	assert.True(t, IsValidUUID("f47ac10b-58cc-4372-a567-0e02b2c3d479"))
	assert.True(t, IsValidUUID("F47AC10B-58CC-4372-A567-0E02B2C3D479"))

	assert.False(t, IsValidUUID(""))
	assert.False(t, IsValidUUID("not-a-uuid"))
	assert.False(t, IsValidUUID("f47ac10b58cc4372a5670e02b2c3d479"))
	assert.False(t, IsValidUUID("f47ac10b-58cc-4372-a567-0e02b2c3d47"))
}

func TestIsValidPhoneNumber(t *testing.T) {
	assert.True(t, IsValidPhoneNumber("08031234567"))
	assert.True(t, IsValidPhoneNumber("+234 803 123 4567"))
	assert.True(t, IsValidPhoneNumber("0803-123-4567"))

	assert.False(t, IsValidPhoneNumber("1234567"))            // too short
	assert.False(t, IsValidPhoneNumber("1234567890123456"))   // too long
	assert.False(t, IsValidPhoneNumber("0803-123-456a"))      // non-numeric
	assert.False(t, IsValidPhoneNumber(""))
}

func TestIsValidAccountNumber(t *testing.T) {
	assert.True(t, IsValidAccountNumber("0123456789"))

	assert.False(t, IsValidAccountNumber("012345678"))
	assert.False(t, IsValidAccountNumber("01234567890"))
	assert.False(t, IsValidAccountNumber("012345678a"))
	assert.False(t, IsValidAccountNumber(""))
}

func TestIsValidPassword(t *testing.T) {
	assert.True(t, IsValidPassword("12345678"))
	assert.True(t, IsValidPassword("a much longer password"))
	assert.False(t, IsValidPassword("1234567"))
	assert.False(t, IsValidPassword(""))
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "email is required"},
		{Field: "password", Message: "password must be at least 8 characters"},
	}

	assert.Equal(t, "email: email is required; password: password must be at least 8 characters", errs.Error())

	m := errs.ToMap()
	assert.Len(t, m, 2)
	assert.Equal(t, "email is required", m["email"])
	assert.Equal(t, "password must be at least 8 characters", m["password"])
}
