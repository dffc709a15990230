package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// maxBodyBytes caps request bodies well above any legitimate form
// payload; the field-level length caps do the fine-grained limiting.
const maxBodyBytes = 1 << 20

// DecodeJSON decodes a JSON request body into T. Strict mode: the
// content type must be application/json, unknown fields are rejected,
// and exactly one JSON value is allowed in the body.
func DecodeJSON[T any](r *http.Request) (T, error) {
	var v T

	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return v, fmt.Errorf("%w: expected application/json", ErrMissingContentType)
	}

	mediaType := contentType
	if idx := strings.Index(contentType, ";"); idx != -1 {
		mediaType = strings.TrimSpace(contentType[:idx])
	}
	if mediaType != "application/json" {
		return v, fmt.Errorf("%w: got %s, expected application/json", ErrUnsupportedMediaType, mediaType)
	}

	decoder := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&v); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			return v, fmt.Errorf("%w: over %d bytes", ErrBodyTooLarge, maxBodyBytes)
		case errors.Is(err, io.EOF):
			return v, fmt.Errorf("%w: empty body", ErrInvalidJSON)
		default:
			return v, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}
	}

	// Ensure the entire body was consumed
	var extra json.RawMessage
	if err := decoder.Decode(&extra); err != io.EOF {
		return v, fmt.Errorf("%w: unexpected data after JSON object", ErrInvalidJSON)
	}

	return v, nil
}
