// Package domain defines the core business entities for pagepress.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Job: A unit of work from the job ledger
//   - Settings: The immutable recompression configuration
//   - Schedule: The precomputed (DPI, quality) search sequence
//   - SearchResult: The terminal output of one size search
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
