// Package connectors provides implementations of the core's collaborator
// ports for external services. Each connector knows how to talk to one
// backend: Google Drive and plain HTTP as document sources, Drive and
// Dropbox as document sinks, Google Sheets as the job ledger.
package connectors
