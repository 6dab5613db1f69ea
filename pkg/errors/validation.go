package errors

import (
	"slices"
	"strings"
)

// ValidateChoice checks that value is one of allowed (case-sensitive).
// The returned error carries code and lists the accepted values, so callers
// can surface it to users unchanged.
func ValidateChoice(code Code, field, value string, allowed ...string) error {
	if slices.Contains(allowed, value) {
		return nil
	}
	if value == "" {
		return New(code, "%s cannot be empty (want one of: %s)", field, strings.Join(allowed, ", "))
	}
	return New(code, "invalid %s %q (want one of: %s)", field, value, strings.Join(allowed, ", "))
}
