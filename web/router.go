package web

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/marketkit/pkg/schemas"
)

// NewRouter mounts the validation endpoints consumed by the storefront
// form handlers. Each handler decodes, runs the matching schema and
// renders the Result; no endpoint persists anything.
func NewRouter(log *slog.Logger) http.Handler {
	if log == nil {
		log = slog.Default()
	}

	r := chi.NewRouter()
	r.Post("/listings", handleParse(log, schemas.ParseListing))
	r.Post("/messages", handleParse(log, schemas.ParseMessage))
	r.Post("/profile", handleParse(log, schemas.ParseProfileUpdate))
	r.Get("/search", handleSearch(log))
	return r
}

// handleParse adapts a schema Parse function into an HTTP handler.
func handleParse[T any](log *slog.Logger, parse func(T) schemas.Result[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		draft, err := DecodeJSON[T](r)
		if err != nil {
			log.Info("request body rejected",
				slog.String("path", r.URL.Path),
				slog.Any("error", err),
			)
			RespondBadRequest(w, err)
			return
		}

		RespondResult(w, parse(draft))
	}
}

// handleSearch reads the search fields from query parameters; numeric
// bounds that fail to parse become field issues rather than a 400, so
// the storefront can render them inline like any other violation.
func handleSearch(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := schemas.SearchQuery{
			Query: r.URL.Query().Get("q"),
			City:  r.URL.Query().Get("city"),
		}

		var issues []schemas.Issue
		if raw := strings.TrimSpace(r.URL.Query().Get("minPrice")); raw != "" {
			if v, err := strconv.ParseFloat(raw, 64); err == nil {
				query.MinPrice = &v
			} else {
				issues = append(issues, schemas.Issue{Path: "minPrice", Message: "must be a number"})
			}
		}
		if raw := strings.TrimSpace(r.URL.Query().Get("maxPrice")); raw != "" {
			if v, err := strconv.ParseFloat(raw, 64); err == nil {
				query.MaxPrice = &v
			} else {
				issues = append(issues, schemas.Issue{Path: "maxPrice", Message: "must be a number"})
			}
		}

		result := schemas.ParseSearchQuery(query)
		if len(issues) > 0 {
			result = schemas.Result[schemas.SearchQuery]{Issues: append(issues, result.Issues...)}
		}

		RespondResult(w, result)
	}
}
