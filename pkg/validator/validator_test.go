package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("jonas@example.com"))
	assert.True(t, ValidateEmail("info@uabstatyba.lt"))
	assert.False(t, ValidateEmail("jonas@"))
	assert.False(t, ValidateEmail("not-an-email"))
}

func TestValidatePhone(t *testing.T) {
	assert.True(t, ValidatePhone("+37061234567"))
	assert.True(t, ValidatePhone("8 612 34567"))
	assert.False(t, ValidatePhone("123"))
	assert.False(t, ValidatePhone("abc"))
}

func TestValidateCompanyCode(t *testing.T) {
	assert.True(t, ValidateCompanyCode("1234567"), "legacy 7-digit code")
	assert.True(t, ValidateCompanyCode("123456789"))
	assert.False(t, ValidateCompanyCode("12345678"))
	assert.False(t, ValidateCompanyCode("12345678a"))
}

func TestFormatPhone(t *testing.T) {
	assert.Equal(t, "+37061234567", FormatPhone("8 612 34567"))
	assert.Equal(t, "+37061234567", FormatPhone("370 612 34567"))
	assert.Equal(t, "+37061234567", FormatPhone("+370 612 34567"))
	assert.Equal(t, "+37061234567", FormatPhone("61234567"))
}

func TestValidateNamePart(t *testing.T) {
	assert.True(t, ValidateNamePart("Jonas"))
	assert.True(t, ValidateNamePart("Jonaitienė"))
	assert.True(t, ValidateNamePart("Anna-Marija"))
	assert.False(t, ValidateNamePart("J"))
	assert.False(t, ValidateNamePart("Jonas42"))
}

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "scriptalert(1)/script", SanitizeString("<script>alert(1)</script>"))
	assert.Equal(t, "Laba diena", SanitizeString("Laba diena"))
}
