package driven

import "context"

// DocumentSink stores output documents.
type DocumentSink interface {
	// Store uploads data under the given filename and returns an
	// opaque reference to the stored document (a file ID or path).
	Store(ctx context.Context, data []byte, name string) (string, error)
}

// PublicLinker is an optional sink capability: making a stored document
// publicly reachable. Sinks that support it return a shareable URL.
type PublicLinker interface {
	// MakePublic grants public read access to the referenced document
	// and returns its shareable link.
	MakePublic(ctx context.Context, ref string) (string, error)
}
