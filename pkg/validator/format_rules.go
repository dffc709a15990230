package validator

import (
	"regexp"
	"strings"

	"github.com/dmitrymomot/marketkit/pkg/detector"
)

var (
	// Indian mobile numbering: 10 digits, first in 6-9
	indianMobileRegex = regexp.MustCompile(`^[6-9]\d{9}$`)

	// Letters and spaces only, for person names
	personNameRegex = regexp.MustCompile(`^[a-zA-Z ]+$`)

	// Script tag opener in raw input
	scriptTagRegex = regexp.MustCompile(`(?i)<script\b`)
)

// IsIndianMobile reports whether the value is a valid Indian mobile
// number after stripping spaces and dashes: exactly 10 digits with the
// first in {6,7,8,9}.
func IsIndianMobile(value string) bool {
	cleaned := strings.NewReplacer(" ", "", "-", "").Replace(value)
	return indianMobileRegex.MatchString(cleaned)
}

// ValidIndianMobile validates a phone number per Indian mobile
// numbering policy. Formatting spaces and dashes are ignored.
func ValidIndianMobile(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsIndianMobile(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid 10-digit mobile number",
		},
	}
}

// PersonName validates that a name contains letters and spaces only.
func PersonName(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return personNameRegex.MatchString(strings.TrimSpace(value))
		},
		Error: ValidationError{
			Field:   field,
			Message: "must contain letters and spaces only",
		},
	}
}

// NoScriptTags rejects raw input carrying a script tag.
func NoScriptTags(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return !scriptTagRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must not contain script tags",
		},
	}
}

// NoPromptInjection rejects text flagged by the prompt-injection
// detector.
func NoPromptInjection(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return !detector.PromptInjection(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "contains disallowed content",
		},
	}
}

// NoSQLInjection rejects text flagged by the SQL-injection detector.
func NoSQLInjection(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return !detector.SQLInjection(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "contains disallowed characters",
		},
	}
}
