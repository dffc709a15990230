package schemas

import (
	"github.com/dmitrymomot/marketkit/pkg/sanitizer"
	"github.com/dmitrymomot/marketkit/pkg/validator"
)

// SearchQuery is the raw input for a storefront search.
type SearchQuery struct {
	Query    string   `json:"query"`
	MinPrice *float64 `json:"minPrice,omitempty"`
	MaxPrice *float64 `json:"maxPrice,omitempty"`
	City     string   `json:"city,omitempty"`
}

// ParseSearchQuery sanitizes and validates a search query. The SQL
// injection screen runs on the raw query, before sanitization strips
// the quote characters the patterns hinge on.
func ParseSearchQuery(query SearchQuery) Result[SearchQuery] {
	clean := query
	clean.Query = sanitizer.SanitizePlainText(query.Query)
	clean.City = sanitizer.SanitizePlainText(query.City)

	err := validator.Apply(
		validator.NoSQLInjection("query", query.Query),
		validator.When(query.MinPrice != nil,
			validator.NonNegative("minPrice", deref(query.MinPrice))),
		validator.When(query.MaxPrice != nil,
			validator.NonNegative("maxPrice", deref(query.MaxPrice))),
		validator.When(query.MinPrice != nil && query.MaxPrice != nil,
			validator.Custom("maxPrice", "maximum price must not be less than minimum price", func() bool {
				return *query.MinPrice <= *query.MaxPrice
			})),
	)

	return resultOf(clean, err)
}
