package schemas

import "github.com/dmitrymomot/marketkit/pkg/validator"

// Issue is a single field violation: where and why.
type Issue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Result is the outcome of a schema validation: either OK with the
// sanitized data, or a non-empty ordered list of issues.
type Result[T any] struct {
	OK     bool    `json:"success"`
	Data   T       `json:"data,omitempty"`
	Issues []Issue `json:"issues,omitempty"`
}

func success[T any](data T) Result[T] {
	return Result[T]{OK: true, Data: data}
}

func failure[T any](verrs validator.ValidationErrors) Result[T] {
	issues := make([]Issue, len(verrs))
	for i, e := range verrs {
		issues[i] = Issue{Path: e.Field, Message: e.Message}
	}
	return Result[T]{Issues: issues}
}

// resultOf converts an Apply outcome into a Result.
func resultOf[T any](data T, err error) Result[T] {
	if err == nil {
		return success(data)
	}
	return failure[T](validator.ExtractValidationErrors(err))
}

func deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}
