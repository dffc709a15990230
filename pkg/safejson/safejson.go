// Package safejson decodes JSON that may be malformed - cached values,
// stored drafts, third-party payloads - without ever surfacing an
// error: on any decode failure the caller-supplied fallback is returned
// unchanged.
package safejson

import "encoding/json"

// Unmarshal decodes data into a value of type T, returning fallback
// unchanged when the input is not valid JSON for that type.
func Unmarshal[T any](data []byte, fallback T) T {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return fallback
	}
	return v
}

// Parse is Unmarshal for string input.
func Parse[T any](s string, fallback T) T {
	return Unmarshal([]byte(s), fallback)
}
