package driven

import "context"

// DocumentSource fetches source document bytes.
// The locator format and transport (HTTP, Drive, filesystem) belong to
// the implementation; the core only requires bytes parseable as the
// input document format.
type DocumentSource interface {
	// Fetch retrieves the document identified by locator.
	Fetch(ctx context.Context, locator string) ([]byte, error)
}
