// Package schemas validates the marketplace write-path entities:
// listing drafts, chat messages, profile updates and search queries.
// Each Parse function sanitizes every field through pkg/sanitizer,
// screens free text with pkg/detector and applies the field-level
// constraints from pkg/validator, then aggregates the outcome into a
// single Result.
//
// The Parse functions follow a safe-parse contract: they are pure,
// synchronous and total, always returning a Result rather than an error
// or a panic. All fields are evaluated independently so the caller sees
// every violation at once, each as an Issue carrying the field path and
// a human-readable message. A Result with OK set carries only sanitized
// data - no field that passed through the text or URL sanitizers
// retains unsanitized input.
package schemas
