// Package sanitizer provides helper functions for cleaning untrusted
// user-generated content before it is stored or rendered back to other
// users: listing titles and descriptions, chat messages, profile fields
// and link/image URLs.
//
// The functions are grouped conceptually into several areas:
//
//   - HTML – removal of script/iframe elements, inline event handlers and
//     javascript: references from rich text. Two interchangeable backends
//     implement the HTMLSanitizer interface: a bluemonday policy engine
//     and a lighter pattern-based fallback.
//
//   - Strings – plain-text stripping, whitespace normalisation, control
//     character removal and hard length capping.
//
//   - URLs – scheme allow-listing for user-supplied links.
//
//   - Collections – slice helpers used for list-valued fields such as
//     listing accessories.
//
// The package is completely stateless apart from the read-only default
// HTML backend chosen at startup. All helpers are small, focused
// functions that can be freely combined; the higher-order Apply and
// Compose helpers build sanitisation pipelines:
//
//	clean := sanitizer.Compose(
//	    sanitizer.SanitizePlainText,
//	    sanitizer.NormalizeWhitespace,
//	)
//
// # Error handling
//
// None of the helpers returns an error – they always fall back to a safe
// result (usually a stripped string or an empty string) for any input,
// including the empty string. Every helper is deterministic and
// idempotent on its own output, so double sanitisation is harmless.
//
// # Concurrency
//
// There is no mutable state, therefore all helpers are safe for use from
// multiple goroutines concurrently.
package sanitizer
