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
		"user@example.com",
		"first.last@sub.domain.org",
		"a+tag@b.co",
	}
	invalid := []string{
		"",
		"plain",
		"@example.com",
		"user@",
		"user@domain",
	}

	for _, email := range valid {
		assert.True(t, IsValidEmail(email), email)
	}
	for _, email := range invalid {
		assert.False(t, IsValidEmail(email), email)
	}
}

func TestIsValidDate(t *testing.T) {
	_, ok := IsValidDate("2025-11-30")
	assert.True(t, ok)

	_, ok = IsValidDate("2025-13-01")
	assert.False(t, ok)

	_, ok = IsValidDate("30-11-2025")
	assert.False(t, ok)

	_, ok = IsValidDate("")
	assert.False(t, ok)
}

func TestIsValidEmployeeCode(t *testing.T) {
	assert.True(t, IsValidEmployeeCode("EMP002"))
	assert.True(t, IsValidEmployeeCode("emp002"))
	assert.True(t, IsValidEmployeeCode("HR-0042"))
	assert.False(t, IsValidEmployeeCode("002"))
	assert.False(t, IsValidEmployeeCode("EMPLOYEE"))
	assert.False(t, IsValidEmployeeCode(""))
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "email is required"},
		{Field: "password", Message: "password is required"},
	}

	assert.Equal(t, "email: email is required; password: password is required", errs.Error())
	assert.Equal(t, map[string]string{
		"email":    "email is required",
		"password": "password is required",
	}, errs.ToMap())
}
