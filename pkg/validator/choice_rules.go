package validator

import (
	"fmt"
	"slices"
	"strings"
)

// InList validates enum membership.
func InList[T comparable](field string, value T, allowedValues []T) Rule {
	return Rule{
		Check: func() bool {
			return slices.Contains(allowedValues, value)
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be one of: %v", allowedValues),
		},
	}
}

// NotInList validates that the value is outside the forbidden set.
func NotInList[T comparable](field string, value T, forbiddenValues []T) Rule {
	return Rule{
		Check: func() bool {
			return !slices.Contains(forbiddenValues, value)
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must not be one of: %v", forbiddenValues),
		},
	}
}

// InListString is InList for strings with a friendlier message.
func InListString(field, value string, allowedValues []string) Rule {
	return Rule{
		Check: func() bool {
			return slices.Contains(allowedValues, value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be one of: " + strings.Join(allowedValues, ", "),
		},
	}
}
