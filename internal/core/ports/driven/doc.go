// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - MetadataSource: Paginated symbol metadata retrieval
//   - FileFetcher: Raw SVG download
//   - SymbolStore: Symbol metadata persistence (query cache)
//   - ArtifactStore: Raw and processed SVG artifacts on disk
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
