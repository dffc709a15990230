package sanitizer

import "strings"

// FilterEmpty removes empty and whitespace-only strings from a slice.
func FilterEmpty(slice []string) []string {
	result := make([]string, 0, len(slice))
	for _, s := range slice {
		if strings.TrimSpace(s) != "" {
			result = append(result, s)
		}
	}
	return result
}

// TrimStringSlice trims whitespace from every element.
func TrimStringSlice(slice []string) []string {
	result := make([]string, len(slice))
	for i, s := range slice {
		result[i] = strings.TrimSpace(s)
	}
	return result
}

// LimitSliceLength truncates a slice to at most maxLength elements.
func LimitSliceLength[T any](slice []T, maxLength int) []T {
	if maxLength <= 0 {
		return []T{}
	}
	if len(slice) <= maxLength {
		return slice
	}
	return slice[:maxLength]
}

// TransformSlice applies transform to every element, preserving order.
func TransformSlice[T any, R any](slice []T, transform func(T) R) []R {
	result := make([]R, len(slice))
	for i, item := range slice {
		result[i] = transform(item)
	}
	return result
}

// CleanStringSlice trims every element and drops the ones left empty.
// Used for list-valued form fields such as listing accessories.
func CleanStringSlice(slice []string) []string {
	return FilterEmpty(TrimStringSlice(slice))
}
