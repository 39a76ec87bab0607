// Package drive implements the DocumentSource and DocumentSink ports
// on Google Drive.
package drive

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/custodia-labs/pagepress-cli/internal/core/domain"
)

var fileIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{10,}$`)

// IsDriveLocator reports whether the locator refers to a Drive file:
// either a drive.google.com / docs.google.com URL or a bare file ID.
func IsDriveLocator(locator string) bool {
	if u, err := url.Parse(locator); err == nil && u.Host != "" {
		return u.Host == "drive.google.com" || u.Host == "docs.google.com"
	}
	return fileIDPattern.MatchString(locator)
}

// FileIDFromLocator extracts the Drive file ID from the common URL
// shapes, or accepts a bare ID:
//
//	https://drive.google.com/file/d/<id>/view
//	https://drive.google.com/open?id=<id>
//	https://drive.google.com/uc?id=<id>&export=download
//	<id>
func FileIDFromLocator(locator string) (string, error) {
	u, err := url.Parse(locator)
	if err != nil || u.Host == "" {
		if fileIDPattern.MatchString(locator) {
			return locator, nil
		}
		return "", fmt.Errorf("%w: not a drive locator: %q", domain.ErrInvalidInput, locator)
	}

	if id := u.Query().Get("id"); id != "" {
		return id, nil
	}

	// Path form: /file/d/<id>/... or /document/d/<id>/...
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i, part := range parts {
		if part == "d" && i+1 < len(parts) && parts[i+1] != "" {
			return parts[i+1], nil
		}
	}

	return "", fmt.Errorf("%w: no file id in drive url: %q", domain.ErrInvalidInput, locator)
}
