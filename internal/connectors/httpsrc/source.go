// Package httpsrc implements the DocumentSource port over plain HTTP,
// with an optional fallback source for locators the direct download
// cannot serve (Drive share links behind interstitial pages).
package httpsrc

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/custodia-labs/pagepress-cli/internal/connectors/google/drive"
	"github.com/custodia-labs/pagepress-cli/internal/core/domain"
	"github.com/custodia-labs/pagepress-cli/internal/core/ports/driven"
	"github.com/custodia-labs/pagepress-cli/internal/logger"
)

// MaxDownloadSize caps source document downloads (50MB).
const MaxDownloadSize = 50 * 1024 * 1024

var pdfMagic = []byte("%PDF-")

// Ensure Source implements the interface.
var _ driven.DocumentSource = (*Source)(nil)

// Source fetches documents with a plain HTTP GET. Fetching is an
// explicit two-step attempt sequence: when the direct download does
// not yield a PDF (or the locator is Drive-shaped to begin with), the
// fallback source is tried before giving up.
type Source struct {
	client   *http.Client
	fallback driven.DocumentSource // may be nil
}

// NewSource creates an HTTP document source. fallback may be nil.
func NewSource(fallback driven.DocumentSource) *Source {
	return &Source{
		client:   &http.Client{Timeout: 2 * time.Minute},
		fallback: fallback,
	}
}

// Fetch retrieves the document identified by locator.
func (s *Source) Fetch(ctx context.Context, locator string) ([]byte, error) {
	if s.fallback != nil && drive.IsDriveLocator(locator) {
		return s.fallback.Fetch(ctx, locator)
	}

	data, err := s.get(ctx, locator)
	if err == nil && bytes.HasPrefix(data, pdfMagic) {
		return data, nil
	}

	if s.fallback != nil {
		logger.Debug("direct download of %q failed (%v), trying fallback", locator, err)
		return s.fallback.Fetch(ctx, locator)
	}
	if err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("%w: %q did not return a PDF document", domain.ErrDecode, locator)
}

func (s *Source) get(ctx context.Context, locator string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, locator, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("%w: bad locator %q: %v", domain.ErrInvalidInput, locator, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %q: %w", locator, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %q: status %d", locator, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxDownloadSize))
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", locator, err)
	}
	return data, nil
}
