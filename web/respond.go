package web

import (
	"encoding/json"
	"net/http"

	"github.com/dmitrymomot/marketkit/pkg/schemas"
)

// envelope is the JSON shape handlers return: success with data, or
// failure with the aggregated field issues.
type envelope struct {
	Success bool         `json:"success"`
	Data    any          `json:"data,omitempty"`
	Error   *errorDetail `json:"error,omitempty"`
}

type errorDetail struct {
	Code    string          `json:"code"`
	Message string          `json:"message,omitempty"`
	Issues  []schemas.Issue `json:"issues,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// RespondResult renders a schema Result: 200 with the sanitized data,
// or 422 with the issue list.
func RespondResult[T any](w http.ResponseWriter, result schemas.Result[T]) {
	if result.OK {
		writeJSON(w, http.StatusOK, envelope{Success: true, Data: result.Data})
		return
	}

	writeJSON(w, http.StatusUnprocessableEntity, envelope{
		Error: &errorDetail{
			Code:   "validation_error",
			Issues: result.Issues,
		},
	})
}

// RespondBadRequest renders a decode failure.
func RespondBadRequest(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusBadRequest, envelope{
		Error: &errorDetail{
			Code:    "bad_request",
			Message: err.Error(),
		},
	})
}
