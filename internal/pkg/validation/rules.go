package validation

import (
	"fmt"
	"regexp"
	"time"
)

// Validation rule patterns shared by the entity pipelines.
var (
	// EmailPattern matches the address shape accepted by the record forms.
	EmailPattern = `^[a-zA-Z0-9._-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,6}$`

	// PhonePattern accepts digits only, no separators.
	PhonePattern = `^[0-9]+$`
)

// CompiledPatterns caches compiled regex patterns.
var CompiledPatterns = struct {
	Email *regexp.Regexp
	Phone *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
	Phone: regexp.MustCompile(PhonePattern),
}

// IsValidEmail reports whether the value matches the email pattern.
func IsValidEmail(value string) bool {
	return CompiledPatterns.Email.MatchString(value)
}

// IsValidPhone reports whether the value contains only digits.
func IsValidPhone(value string) bool {
	return CompiledPatterns.Phone.MatchString(value)
}

// dateLayouts are the input formats accepted for date-valued fields.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

// NormalizeDate parses a date-valued field and returns it as a calendar
// date string (YYYY-MM-DD), dropping any time-of-day and timezone.
func NormalizeDate(value string) (string, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("2006-01-02"), nil
		}
	}
	return "", fmt.Errorf("invalid date value: %q", value)
}
