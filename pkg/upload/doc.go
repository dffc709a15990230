// Package upload validates user-supplied files against a per-call-site
// policy before they are handed to storage: size cap, declared MIME
// type, suspicious filename patterns and extension allow-listing.
//
// Validate works on already-read metadata only and never touches file
// content; the declared MIME type and size come from the caller and are
// not trustworthy, which is why the filename check runs even when the
// MIME type looks like an image. Callers that have the leading bytes in
// hand can additionally run SniffContent for a magic-number check.
//
// All checks are pure and synchronous. Failures are reported as a
// CheckResult with a human-readable reason, never as an error return,
// so form handlers can render inline guidance directly.
package upload
