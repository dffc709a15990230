package sanitizer

import "regexp"

// Pre-compiled regular expressions for performance
var (
	// HTML pattern fallback
	scriptBlockRegex = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script>`)
	iframeTagRegex   = regexp.MustCompile(`(?i)</?iframe\b[^>]*>`)
	eventAttrRegex   = regexp.MustCompile(`(?i)\s*on\w+\s*=\s*("[^"]*"|'[^']*'|[^\s>]+)`)
	jsSchemeRegex    = regexp.MustCompile(`(?i)javascript\s*:`)

	// URL scheme detection
	urlSchemeRegex = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*:`)

	// Plain-text stripping of markup and quoting characters
	plainTextStripRegex = regexp.MustCompile("[<>\"'`\\\\]")

	// Whitespace normalization
	whitespaceRegex = regexp.MustCompile(`\s+`)
)
