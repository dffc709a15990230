package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/marketkit/pkg/sanitizer"
)

func TestSanitizeURL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "https URL passes unchanged",
			input:    "https://x.com/a.jpg",
			expected: "https://x.com/a.jpg",
		},
		{
			name:     "relative path passes unchanged",
			input:    "/relative/path",
			expected: "/relative/path",
		},
		{
			name:     "javascript scheme rejected",
			input:    "javascript:alert(1)",
			expected: "",
		},
		{
			name:     "mixed case javascript scheme rejected",
			input:    "JaVaScRiPt:alert(document.cookie)",
			expected: "",
		},
		{
			name:     "data scheme rejected",
			input:    "data:text/html,<script>alert(1)</script>",
			expected: "",
		},
		{
			name:     "vbscript scheme rejected",
			input:    "vbscript:msgbox(1)",
			expected: "",
		},
		{
			name:     "plain http rejected",
			input:    "http://insecure.example/img.png",
			expected: "",
		},
		{
			name:     "uppercase https accepted",
			input:    "HTTPS://x.com/a.jpg",
			expected: "HTTPS://x.com/a.jpg",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "whitespace only",
			input:    "   ",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.SanitizeURL(tt.input))
		})
	}
}
