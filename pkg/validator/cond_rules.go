package validator

// Custom wraps an arbitrary check in a Rule. The escape hatch for
// cross-field constraints that have no dedicated rule.
func Custom(field, message string, check func() bool) Rule {
	return Rule{
		Check: check,
		Error: ValidationError{
			Field:   field,
			Message: message,
		},
	}
}

// When gates a rule on a precondition: when cond is false the rule
// always passes. Used for optional and cross-field constraints.
func When(cond bool, rule Rule) Rule {
	if cond {
		return rule
	}
	return Rule{
		Check: func() bool { return true },
		Error: rule.Error,
	}
}
