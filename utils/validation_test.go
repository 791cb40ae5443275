package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePassword(t *testing.T) {
	cases := []struct {
		password string
		valid    bool
	}{
		{"Abcdef12", true},
		{"short1A", false},
		{"alllowercase1", false},
		{"ALLUPPERCASE1", false},
		{"NoNumbersHere", false},
	}

	for _, tc := range cases {
		valid, msg := ValidatePassword(tc.password)
		assert.Equalf(t, tc.valid, valid, "password %q: %s", tc.password, msg)
	}
}

func TestValidateUsername(t *testing.T) {
	valid, _ := ValidateUsername("joao_silva")
	assert.True(t, valid)

	for _, bad := range []string{"ab", "has spaces", "way_too_long_username_here", "emoji😀"} {
		valid, _ := ValidateUsername(bad)
		assert.Falsef(t, valid, "username %q should be rejected", bad)
	}
}

func TestParseNumericString(t *testing.T) {
	v, err := ParseNumericString("50.00")
	require.NoError(t, err)
	assert.Equal(t, 50.00, v)

	v, err = ParseNumericString(" 12.5 ")
	require.NoError(t, err)
	assert.Equal(t, 12.5, v)

	_, err = ParseNumericString("cinquenta")
	assert.Error(t, err)

	_, err = ParseNumericString("-5")
	assert.Error(t, err)
}

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "hello", SanitizeString("hello"))
	assert.NotContains(t, SanitizeString("<script>alert(1)</script>"), "<script>")
}

func TestValidateDiscountValue(t *testing.T) {
	assert.NoError(t, ValidateDiscountValue("percent", 10))
	assert.NoError(t, ValidateDiscountValue("fixed", 500))
	assert.Error(t, ValidateDiscountValue("percent", 101))
	assert.Error(t, ValidateDiscountValue("percent", 0))
	assert.Error(t, ValidateDiscountValue("fixed", -1))
}
