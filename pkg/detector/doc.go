// Package detector provides cheap heuristic scanners for user-generated
// marketplace content: prompt-injection phrasing aimed at automated
// review tooling, and SQL-injection patterns in search input.
//
// Detection is case-insensitive regular-expression matching over
// NFKC-normalized text, not semantic understanding. False negatives are
// expected for novel phrasings; the pattern sets are a first line of
// defense in front of stricter server-side controls, never a guarantee.
//
// The patterns themselves live in the embedded patterns.yaml so coverage
// can be reviewed and extended as data rather than code. Every function
// is pure, total and safe for concurrent use.
package detector
