package validator

import (
	"fmt"
	"regexp"
	"strings"
)

// MatchesRegex validates against custom patterns. Compiles the regex on
// each call - cache externally for hot paths.
func MatchesRegex(field, value string, pattern string, description string) Rule {
	regex := regexp.MustCompile(pattern)
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}
			return regex.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must match %s pattern", description),
		},
	}
}

// DoesNotMatchRegex validates that a non-empty value avoids the pattern.
func DoesNotMatchRegex(field, value string, pattern string, description string) Rule {
	regex := regexp.MustCompile(pattern)
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return true
			}
			return !regex.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must not match %s pattern", description),
		},
	}
}
