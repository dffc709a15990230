// Package marketkit is the request-sanitization and validation layer
// for a consumer marketplace: it defends the write paths (listing
// creation, messaging, profile updates, search) against injected
// content before anything reaches storage or is rendered back to other
// users.
//
// The module is organised as small cooperating packages:
//
//   - pkg/sanitizer – HTML, plain-text and URL sanitization
//   - pkg/detector  – prompt-injection and SQL-injection heuristics
//   - pkg/upload    – file upload policy checks
//   - pkg/validator – generic rule-based field validation
//   - pkg/schemas   – per-entity validators composing the above
//   - pkg/safejson  – fallback-returning JSON decoding
//   - web           – HTTP binding and the success/issues envelope
//
// Everything is a pure function over its arguments: no I/O, no shared
// mutable state, safe for concurrent use from any request handler. The
// worst-case behavior anywhere in the module is "reject the input and
// explain why" - no accepted value reaches the caller unsanitized, and
// no rejection surfaces as a panic.
//
// The root package carries the ValidationError map used by HTML form
// renderers that want field-indexed messages rather than the ordered
// issue list.
package marketkit
