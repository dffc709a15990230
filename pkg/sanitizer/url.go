package sanitizer

import "strings"

// SanitizeURL allow-lists URL schemes for user-supplied link and image
// fields. Absolute https URLs and scheme-less relative references pass
// through unchanged; any other scheme (javascript:, data:, vbscript:,
// plain http:, ...) yields an empty string. Executable-scheme URLs are
// rejected outright because no partial cleaning of them is safe.
func SanitizeURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	if strings.HasPrefix(strings.ToLower(trimmed), "https:") {
		return trimmed
	}

	// No scheme at all means a relative reference, which cannot carry an
	// executable scheme.
	if !urlSchemeRegex.MatchString(trimmed) {
		return trimmed
	}

	return ""
}
