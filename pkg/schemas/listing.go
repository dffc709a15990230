package schemas

import (
	"github.com/dmitrymomot/marketkit/pkg/sanitizer"
	"github.com/dmitrymomot/marketkit/pkg/validator"
)

// Conditions are the accepted listing condition values.
var Conditions = []string{"new", "like_new", "good", "fair", "poor"}

// ItemAges are the fixed age buckets for the optional item_age field.
var ItemAges = []string{"0-1m", "1-6m", "6-12m", "1-3y", "3y+"}

// MaxAccessories caps the accessories list per listing.
const MaxAccessories = 15

// ListingDraft is the raw form input for creating or editing a listing.
type ListingDraft struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	CategoryID  string `json:"category_id"`
	Condition   string `json:"condition"`
	City        string `json:"city"`
	Area        string `json:"area,omitempty"`

	ItemAge      string   `json:"item_age,omitempty"`
	IsNegotiable bool     `json:"is_negotiable,omitempty"`
	MinPrice     *int     `json:"min_price,omitempty"`
	HasWarranty  bool     `json:"has_warranty,omitempty"`
	Accessories  []string `json:"accessories,omitempty"`
}

// ParseListing sanitizes and validates a listing draft. Length limits
// apply to the sanitized values; the prompt-injection screen runs on
// the description because listings are reviewed by automated tooling.
func ParseListing(draft ListingDraft) Result[ListingDraft] {
	clean := draft
	clean.Title = sanitizer.SanitizePlainText(draft.Title)
	clean.Description = sanitizer.SanitizePlainText(draft.Description)
	clean.CategoryID = sanitizer.Trim(draft.CategoryID)
	clean.Condition = sanitizer.Trim(draft.Condition)
	clean.City = sanitizer.SanitizePlainText(draft.City)
	clean.Area = sanitizer.SanitizePlainText(draft.Area)
	clean.ItemAge = sanitizer.Trim(draft.ItemAge)

	clean.Accessories = sanitizer.TransformSlice(
		sanitizer.CleanStringSlice(draft.Accessories),
		sanitizer.SanitizePlainText,
	)
	if clean.Accessories == nil {
		clean.Accessories = []string{}
	}

	err := validator.Apply(
		validator.MinLen("title", clean.Title, 10),
		validator.MaxLen("title", clean.Title, 100),
		validator.MinLen("description", clean.Description, 20),
		validator.MaxLen("description", clean.Description, 2000),
		validator.NoPromptInjection("description", clean.Description),
		validator.Positive("price", clean.Price),
		validator.Required("category_id", clean.CategoryID),
		validator.InListString("condition", clean.Condition, Conditions),
		validator.Required("city", clean.City),
		validator.When(clean.ItemAge != "",
			validator.InListString("item_age", clean.ItemAge, ItemAges)),
		validator.When(clean.IsNegotiable && clean.MinPrice != nil,
			validator.Custom("min_price", "Minimum price must be less than the listing price", func() bool {
				return *clean.MinPrice <= clean.Price
			})),
		validator.Custom("accessories", "Maximum 15 accessories", func() bool {
			return len(clean.Accessories) <= MaxAccessories
		}),
	)

	return resultOf(clean, err)
}
