package validator

import "fmt"

// MinNum validates that a numeric value is greater than or equal to the minimum.
func MinNum[T Numeric](field string, value T, min T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at least %v", min),
		},
	}
}

// MaxNum validates that a numeric value is less than or equal to the maximum.
func MaxNum[T Numeric](field string, value T, max T) Rule {
	return Rule{
		Check: func() bool {
			return value <= max
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at most %v", max),
		},
	}
}

// Positive validates that a numeric value is strictly greater than zero.
func Positive[T Numeric](field string, value T) Rule {
	var zero T
	return Rule{
		Check: func() bool {
			return value > zero
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be greater than zero",
		},
	}
}

// NonNegative validates that a numeric value is zero or greater.
func NonNegative[T Numeric](field string, value T) Rule {
	var zero T
	return Rule{
		Check: func() bool {
			return value >= zero
		},
		Error: ValidationError{
			Field:   field,
			Message: "must not be negative",
		},
	}
}

// Convenience aliases for common numeric validation cases

// Min is an alias for MinNum.
func Min[T Numeric](field string, value T, min T) Rule {
	return MinNum(field, value, min)
}

// Max is an alias for MaxNum.
func Max[T Numeric](field string, value T, max T) Rule {
	return MaxNum(field, value, max)
}
