// Package web is the thin HTTP consumption layer over the schema
// validators: strict JSON request decoding, a chi router exposing one
// endpoint per write-path entity, and the success/issues JSON envelope
// the storefront form handlers consume.
//
// Validation outcomes are never HTTP errors in the transport sense: a
// well-formed request with invalid fields gets a 422 with the full
// issue list, while only malformed bodies get a 400.
package web
