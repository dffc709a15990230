package detector

import (
	_ "embed"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

//go:embed patterns.yaml
var patternsYAML []byte

// Pattern is a single named heuristic from the embedded pattern file.
type Pattern struct {
	Name    string `yaml:"name"`
	Pattern string `yaml:"pattern"`

	re *regexp.Regexp
}

type patternFile struct {
	PromptInjection []Pattern `yaml:"prompt_injection"`
	SQLInjection    []Pattern `yaml:"sql_injection"`
}

var (
	promptPatterns []Pattern
	sqlPatterns    []Pattern
)

func init() {
	var pf patternFile
	if err := yaml.Unmarshal(patternsYAML, &pf); err != nil {
		panic(fmt.Sprintf("detector: embedded pattern file is invalid: %v", err))
	}

	promptPatterns = compile(pf.PromptInjection)
	sqlPatterns = compile(pf.SQLInjection)
}

func compile(patterns []Pattern) []Pattern {
	compiled := make([]Pattern, 0, len(patterns))
	for _, p := range patterns {
		expr := p.Pattern
		// Patterns are case-insensitive unless they set their own flags.
		if !strings.HasPrefix(expr, "(?") {
			expr = "(?i)" + expr
		}
		p.re = regexp.MustCompile(expr)
		compiled = append(compiled, p)
	}
	return compiled
}

// normalize folds the input to NFKC so full-width and precomposed
// look-alikes cannot slip past the ASCII patterns.
func normalize(s string) string {
	return norm.NFKC.String(s)
}

// PromptInjection reports whether the text contains phrasing associated
// with attempts to override automated-review instructions.
func PromptInjection(s string) bool {
	_, found := MatchPromptInjection(s)
	return found
}

// MatchPromptInjection is PromptInjection with the name of the first
// matching pattern for diagnostics.
func MatchPromptInjection(s string) (string, bool) {
	return match(promptPatterns, normalize(s))
}

// SQLInjection reports whether the text contains SQL injection patterns
// such as quotes adjacent to SQL keywords.
func SQLInjection(s string) bool {
	_, found := MatchSQLInjection(s)
	return found
}

// MatchSQLInjection is SQLInjection with the name of the first matching
// pattern for diagnostics.
func MatchSQLInjection(s string) (string, bool) {
	return match(sqlPatterns, normalize(s))
}

func match(patterns []Pattern, s string) (string, bool) {
	for _, p := range patterns {
		if p.re.MatchString(s) {
			return p.Name, true
		}
	}
	return "", false
}

// PromptInjectionPatterns returns a copy of the active prompt-injection
// pattern set for review and documentation purposes.
func PromptInjectionPatterns() []Pattern {
	return append([]Pattern(nil), promptPatterns...)
}

// SQLInjectionPatterns returns a copy of the active SQL-injection
// pattern set.
func SQLInjectionPatterns() []Pattern {
	return append([]Pattern(nil), sqlPatterns...)
}
