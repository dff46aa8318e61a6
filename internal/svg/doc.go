// Package svg implements the SVG canonicalisation core.
//
// A raw icon passes through four stages:
//
//   - Parse: bytes → mutable element tree (fails on malformed XML)
//   - Clean: structural filtering of comments, foreign-namespace
//     content, defs, reference-grid decorations and empty groups
//   - Normalize: reconcile declared size and viewBox into the fixed
//     10mm × 10mm canonical footprint
//   - Marshal: pretty-printed, byte-stable UTF-8 output
//
// The tree is exclusively owned by one pipeline invocation; nothing in
// this package is safe for concurrent use on the same Document.
package svg
