package schemas

import (
	"github.com/dmitrymomot/marketkit/pkg/sanitizer"
	"github.com/dmitrymomot/marketkit/pkg/validator"
)

// ProfileUpdate is the raw input for editing a user profile.
type ProfileUpdate struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
	City        string `json:"city"`
}

// ParseProfileUpdate sanitizes and validates a profile update. Names
// are restricted to letters and spaces; phone numbers follow Indian
// mobile numbering.
func ParseProfileUpdate(draft ProfileUpdate) Result[ProfileUpdate] {
	clean := draft
	clean.Name = sanitizer.NormalizeWhitespace(sanitizer.SanitizePlainText(draft.Name))
	clean.PhoneNumber = sanitizer.Trim(draft.PhoneNumber)
	clean.City = sanitizer.SanitizePlainText(draft.City)

	err := validator.Apply(
		validator.PersonName("name", clean.Name),
		validator.ValidIndianMobile("phone_number", clean.PhoneNumber),
		validator.Required("city", clean.City),
	)

	return resultOf(clean, err)
}
