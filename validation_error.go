package marketkit

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/dmitrymomot/marketkit/pkg/schemas"
	"github.com/dmitrymomot/marketkit/pkg/validator"
)

// ValidationError represents field validation errors keyed by field.
// It's based on url.Values to leverage built-in string slice handling,
// which makes it directly usable in HTML form templates.
type ValidationError url.Values

// NewValidationError creates an empty validation error map.
func NewValidationError() ValidationError {
	return make(ValidationError)
}

// FromValidationErrors converts the aggregated rule failures into a
// field-indexed map.
func FromValidationErrors(verrs validator.ValidationErrors) ValidationError {
	e := NewValidationError()
	for _, verr := range verrs {
		e.Add(verr.Field, verr.Message)
	}
	return e
}

// FromIssues converts a schema issue list into a field-indexed map.
func FromIssues(issues []schemas.Issue) ValidationError {
	e := NewValidationError()
	for _, issue := range issues {
		e.Add(issue.Path, issue.Message)
	}
	return e
}

// Error implements the error interface with a human-readable summary.
func (e ValidationError) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}

	var parts []string
	for field, messages := range e {
		if len(messages) > 0 {
			parts = append(parts, fmt.Sprintf("%s: %s", field, messages[0]))
		}
	}

	return fmt.Sprintf("validation error: %s", strings.Join(parts, ", "))
}

// Add adds an error message for a field.
func (e ValidationError) Add(field, message string) {
	url.Values(e).Add(field, message)
}

// Get returns the first error message for a field.
func (e ValidationError) Get(field string) string {
	return url.Values(e).Get(field)
}

// Has checks if a field has any errors.
func (e ValidationError) Has(field string) bool {
	return len(e[field]) > 0
}

// IsEmpty returns true if there are no validation errors.
func (e ValidationError) IsEmpty() bool {
	return len(e) == 0
}
