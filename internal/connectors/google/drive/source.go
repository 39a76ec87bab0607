package drive

import (
	"context"
	"fmt"
	"io"

	"google.golang.org/api/drive/v3"

	"github.com/custodia-labs/pagepress-cli/internal/connectors/google"
	"github.com/custodia-labs/pagepress-cli/internal/core/ports/driven"
)

// MaxDownloadSize caps source document downloads (50MB).
const MaxDownloadSize = 50 * 1024 * 1024

// Ensure Source implements the interface.
var _ driven.DocumentSource = (*Source)(nil)

// Source fetches documents from Google Drive by file ID or share URL.
type Source struct {
	svc     *drive.Service
	limiter *google.RateLimiter
}

// NewSource creates a Drive-backed document source.
func NewSource(svc *drive.Service, limiter *google.RateLimiter) *Source {
	return &Source{svc: svc, limiter: limiter}
}

// Fetch downloads the document identified by locator.
func (s *Source) Fetch(ctx context.Context, locator string) ([]byte, error) {
	id, err := FileIDFromLocator(locator)
	if err != nil {
		return nil, err
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	resp, err := s.svc.Files.Get(id).SupportsAllDrives(true).Context(ctx).Download()
	if err != nil {
		return nil, fmt.Errorf("download drive file %s: %w", id, google.MapError(s.limiter, err))
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxDownloadSize))
	if err != nil {
		return nil, fmt.Errorf("read drive file %s: %w", id, err)
	}
	return data, nil
}
