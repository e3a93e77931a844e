package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.False(t, IsEmpty("x"))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("hr@example.com"))
	assert.True(t, IsValidEmail("first.last+tag@sub.example.co"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("missing@tld"))
}

func TestIsValidUUID(t *testing.T) {
	assert.True(t, IsValidUUID("0190b7c2-6c4d-7b3a-9f1e-2d3c4b5a6978"))
	// v4 UUID should be rejected, we only issue v7
	assert.False(t, IsValidUUID("123e4567-e89b-42d3-a456-426614174000"))
	assert.False(t, IsValidUUID("nope"))
}

func TestIsValidDate(t *testing.T) {
	d, ok := IsValidDate("2024-11-01")
	assert.True(t, ok)
	assert.Equal(t, 2024, d.Year())

	_, ok = IsValidDate("01-11-2024")
	assert.False(t, ok)
}

func TestIsValidPhoneNumber(t *testing.T) {
	assert.True(t, IsValidPhoneNumber("+628123456789"))
	assert.True(t, IsValidPhoneNumber("0812-3456-789"))
	assert.False(t, IsValidPhoneNumber("12ab34"))
	assert.False(t, IsValidPhoneNumber("123"))
}

func TestIsInSlice(t *testing.T) {
	assert.True(t, IsInSlice("approved", []string{"pending", "approved", "rejected"}))
	assert.False(t, IsInSlice("cancelled", []string{"pending", "approved", "rejected"}))
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "email is required"},
		{Field: "password", Message: "password is required"},
	}
	m := errs.ToMap()
	assert.Len(t, m, 2)
	assert.Equal(t, "email is required", m["email"])
	assert.Contains(t, errs.Error(), "password: password is required")
}
