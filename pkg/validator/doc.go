// Package validator provides a composable set of generic, type-safe
// validation rules for the field-level constraints used across the
// marketplace write paths: string lengths, numeric ranges, enum
// membership, slice sizes, regex formats, UUIDs and phone numbers.
//
// Every exported rule function constructs and returns a Rule value that
// pairs a boolean Check with a field-scoped error message. Rules are
// evaluated with Apply, which runs all of them and aggregates the
// failures into a ValidationErrors slice implementing the error
// interface, so a caller sees every violation at once instead of only
// the first.
//
//	err := validator.Apply(
//	    validator.MinLen("title", title, 10),
//	    validator.MaxLen("title", title, 100),
//	    validator.Positive("price", price),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // render field-level messages
//	}
//
// Each source file groups a family of rules for one domain
// (string_rules.go, numeric_rules.go, format_rules.go, ...). There is
// no hidden state: the package is stateless, allocation-light and
// goroutine-safe, and no rule ever panics on any input.
package validator
