// Package google provides shared infrastructure for Google API connectors.
//
// This package contains common utilities used by the drive and sheets
// connectors including:
//   - TokenSource adapter to bridge the TokenProvider port to oauth2.TokenSource
//   - A refresh-token based TokenProvider
//   - Service factories for creating Google API clients
//   - Error handling for common Google API errors (401, 403, 404, 429)
//   - Rate limiting to respect Google API quotas
//
// # Usage
//
// Each Google connector (drive, sheets) uses this package to create
// authenticated API clients:
//
//	ts := google.NewTokenSource(ctx, tokenProvider)
//	svc, err := google.NewDriveService(ctx, ts)
//
// # OAuth2 Scopes
//
// Google connectors use these scopes:
//   - https://www.googleapis.com/auth/drive (restricted)
//   - https://www.googleapis.com/auth/spreadsheets (sensitive)
//
// Drive needs write access for uploads and permission changes; the
// spreadsheet scope covers ledger reads and status writes.
package google
