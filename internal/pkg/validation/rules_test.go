package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"john.doe@example.com",
		"jane_doe@university.edu",
		"a-b@sub.domain.org",
		"x@y.co",
	}
	for _, email := range valid {
		assert.True(t, IsValidEmail(email), "expected %q to be valid", email)
	}

	invalid := []string{
		"",
		"no-at-sign.com",
		"two@@example.com",
		"trailing@example.",
		"@example.com",
		"user@example.toolongtld",
		"spaces in@example.com",
	}
	for _, email := range invalid {
		assert.False(t, IsValidEmail(email), "expected %q to be invalid", email)
	}
}

func TestIsValidPhone(t *testing.T) {
	assert.True(t, IsValidPhone("5551234567"))
	assert.True(t, IsValidPhone("1"))

	invalid := []string{
		"",
		"555-123-4567",
		"+905551234567",
		"555 123 4567",
		"phone",
	}
	for _, phone := range invalid {
		assert.False(t, IsValidPhone(phone), "expected %q to be invalid", phone)
	}
}

func TestNormalizeDate(t *testing.T) {
	cases := map[string]string{
		"2004-05-17":           "2004-05-17",
		"2004-05-17T00:00:00Z": "2004-05-17",
		"2004-05-17 10:30:00":  "2004-05-17",
		"2004-05-17T10:30:00":  "2004-05-17",
	}
	for input, want := range cases {
		got, err := NormalizeDate(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, want, got)
	}
}

func TestNormalizeDateRejectsGarbage(t *testing.T) {
	for _, input := range []string{"", "yesterday", "17/05/2004", "2004-13-40"} {
		_, err := NormalizeDate(input)
		assert.Error(t, err, "expected %q to be rejected", input)
	}
}
