package sanitizer

import "github.com/microcosm-cc/bluemonday"

// HTMLSanitizer strips dangerous constructs from untrusted HTML while
// preserving benign markup. Implementations must be safe for concurrent
// use and idempotent on their own output.
type HTMLSanitizer interface {
	Sanitize(input string) string
}

// Backend selects the HTMLSanitizer implementation. The choice is made
// once at construction time, not per call.
type Backend int

const (
	// BackendPolicy uses a bluemonday UGC policy, the preferred backend
	// wherever the dependency is acceptable.
	BackendPolicy Backend = iota

	// BackendPattern uses pattern-based stripping only. Coarser than the
	// policy engine but dependency-free at runtime; used in constrained
	// evaluation contexts.
	BackendPattern
)

// NewHTMLSanitizer returns the sanitizer for the given backend.
func NewHTMLSanitizer(b Backend) HTMLSanitizer {
	if b == BackendPattern {
		return PatternSanitizer{}
	}
	return NewPolicySanitizer()
}

// PolicySanitizer sanitizes HTML with a bluemonday user-generated-content
// policy: script and iframe elements, inline event handlers and
// javascript: URLs are removed, common formatting markup is kept.
type PolicySanitizer struct {
	policy *bluemonday.Policy
}

// NewPolicySanitizer builds a PolicySanitizer with the UGC policy.
func NewPolicySanitizer() *PolicySanitizer {
	return &PolicySanitizer{policy: bluemonday.UGCPolicy()}
}

func (s *PolicySanitizer) Sanitize(input string) string {
	return s.policy.Sanitize(input)
}

// PatternSanitizer is the fallback backend: it removes <script> blocks,
// <iframe> tags, on*= event handler attributes and javascript: prefixes
// case-insensitively, leaving the rest of the markup untouched.
type PatternSanitizer struct{}

func (PatternSanitizer) Sanitize(input string) string {
	result := scriptBlockRegex.ReplaceAllString(input, "")
	result = iframeTagRegex.ReplaceAllString(result, "")
	result = eventAttrRegex.ReplaceAllString(result, "")
	result = jsSchemeRegex.ReplaceAllString(result, "")
	return result
}

var defaultHTMLSanitizer = NewHTMLSanitizer(BackendPolicy)

// SanitizeHTML sanitizes rich text with the default policy backend.
// Use NewHTMLSanitizer to pick a backend explicitly.
func SanitizeHTML(input string) string {
	return defaultHTMLSanitizer.Sanitize(input)
}
