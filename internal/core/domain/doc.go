// Package domain defines the core business entities for the ISO 7000
// icon pipeline.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - SymbolRecord: An immutable metadata record for one icon
//   - SymbolSet: The deduplicated reference-id → record mapping
//   - PageRecord: A flattened Wikimedia imageinfo page
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
