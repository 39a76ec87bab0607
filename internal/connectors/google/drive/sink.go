package drive

import (
	"bytes"
	"context"
	"fmt"

	"google.golang.org/api/drive/v3"

	"github.com/custodia-labs/pagepress-cli/internal/connectors/google"
	"github.com/custodia-labs/pagepress-cli/internal/core/ports/driven"
)

// Ensure Sink implements both sink interfaces.
var (
	_ driven.DocumentSink = (*Sink)(nil)
	_ driven.PublicLinker = (*Sink)(nil)
)

// Sink uploads output documents to Google Drive and can grant
// anyone-with-link read access.
type Sink struct {
	svc     *drive.Service
	limiter *google.RateLimiter

	// folderID is the upload destination; empty means the Drive root.
	folderID string
}

// NewSink creates a Drive-backed document sink.
func NewSink(svc *drive.Service, limiter *google.RateLimiter, folderID string) *Sink {
	return &Sink{svc: svc, limiter: limiter, folderID: folderID}
}

// Store uploads data as a PDF named name and returns the file ID.
func (s *Sink) Store(ctx context.Context, data []byte, name string) (string, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return "", err
	}

	meta := &drive.File{
		Name:     name,
		MimeType: "application/pdf",
	}
	if s.folderID != "" {
		meta.Parents = []string{s.folderID}
	}

	created, err := s.svc.Files.Create(meta).
		Media(bytes.NewReader(data)).
		SupportsAllDrives(true).
		Fields("id").
		Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("upload %q to drive: %w", name, google.MapError(s.limiter, err))
	}
	return created.Id, nil
}

// MakePublic grants anyone-with-link read access and returns the
// file's web view link.
func (s *Sink) MakePublic(ctx context.Context, ref string) (string, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return "", err
	}

	perm := &drive.Permission{Role: "reader", Type: "anyone"}
	if _, err := s.svc.Permissions.Create(ref, perm).
		SupportsAllDrives(true).
		Context(ctx).Do(); err != nil {
		return "", fmt.Errorf("set public permission on %s: %w", ref, google.MapError(s.limiter, err))
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return "", err
	}
	f, err := s.svc.Files.Get(ref).
		SupportsAllDrives(true).
		Fields("webViewLink").
		Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("fetch link for %s: %w", ref, google.MapError(s.limiter, err))
	}
	return f.WebViewLink, nil
}
