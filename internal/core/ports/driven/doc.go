// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the size search to function:
//
//   - PageRasterizer: Renders document pages into rasters at a given DPI
//   - DocumentEncoder: Serialises canvases into one lossy output document
//
// The worker additionally needs:
//
//   - DocumentSource: Fetches source document bytes by locator
//   - DocumentSink: Stores output documents and returns a reference
//   - JobLedger: Lists pending work and accepts per-item status writes
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - HistoryStore: Local record of processed jobs
//   - PublicLinker: Sinks that can make a stored output publicly reachable
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or connector package
package driven
