package schemas

import (
	"strings"

	"github.com/dmitrymomot/marketkit/pkg/sanitizer"
	"github.com/dmitrymomot/marketkit/pkg/validator"
)

// MessageDraft is the raw input for a chat message between buyer and
// seller.
type MessageDraft struct {
	Text     string `json:"message_text"`
	ImageURL string `json:"image_url,omitempty"`
}

// ParseMessage sanitizes and validates a chat message. Script tags are
// rejected on the raw input rather than silently stripped, so the
// sender gets told instead of having the message altered; the image URL
// goes through the scheme allow-list.
func ParseMessage(draft MessageDraft) Result[MessageDraft] {
	clean := draft
	clean.Text = sanitizer.SanitizePlainText(draft.Text)
	clean.ImageURL = sanitizer.SanitizeURL(draft.ImageURL)

	err := validator.Apply(
		validator.NoScriptTags("message_text", draft.Text),
		validator.Required("message_text", clean.Text),
		validator.When(strings.TrimSpace(draft.ImageURL) != "",
			validator.Custom("image_url", "must be an https URL or a relative path", func() bool {
				return clean.ImageURL != ""
			})),
	)

	return resultOf(clean, err)
}
