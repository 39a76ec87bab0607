// Package dropbox implements the DocumentSink port on Dropbox.
package dropbox

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"github.com/dropbox/dropbox-sdk-go-unofficial/v6/dropbox"
	"github.com/dropbox/dropbox-sdk-go-unofficial/v6/dropbox/files"
	"github.com/dropbox/dropbox-sdk-go-unofficial/v6/dropbox/sharing"

	"github.com/custodia-labs/pagepress-cli/internal/core/domain"
	"github.com/custodia-labs/pagepress-cli/internal/core/ports/driven"
)

// Ensure Sink implements both sink interfaces.
var (
	_ driven.DocumentSink = (*Sink)(nil)
	_ driven.PublicLinker = (*Sink)(nil)
)

// Sink uploads output documents to Dropbox and creates shared links.
// The Dropbox SDK does not take a context; cancellation is checked
// between calls only.
type Sink struct {
	filesClient   files.Client
	sharingClient sharing.Client

	// folder is the destination folder path, e.g. "/pagepress".
	folder string
}

// NewSink creates a Dropbox-backed document sink.
func NewSink(accessToken, folder string) (*Sink, error) {
	if accessToken == "" {
		return nil, fmt.Errorf("%w: dropbox access token must be set", domain.ErrAuthRequired)
	}
	cfg := dropbox.Config{Token: accessToken}
	return &Sink{
		filesClient:   files.New(cfg),
		sharingClient: sharing.New(cfg),
		folder:        folder,
	}, nil
}

// Store uploads data under the configured folder and returns the
// Dropbox path of the stored file.
func (s *Sink) Store(ctx context.Context, data []byte, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	dst := path.Join("/", s.folder, name)
	arg := files.NewUploadArg(dst)
	arg.Mode = &files.WriteMode{Tagged: dropbox.Tagged{Tag: "overwrite"}}

	meta, err := s.filesClient.Upload(arg, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("upload %q to dropbox: %w", dst, err)
	}
	return meta.PathLower, nil
}

// MakePublic creates a shared link for the referenced file.
func (s *Sink) MakePublic(ctx context.Context, ref string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	arg := sharing.NewCreateSharedLinkWithSettingsArg(ref)
	res, err := s.sharingClient.CreateSharedLinkWithSettings(arg)
	if err != nil {
		return "", fmt.Errorf("share %q: %w", ref, err)
	}

	switch link := res.(type) {
	case *sharing.FileLinkMetadata:
		return link.Url, nil
	default:
		return "", fmt.Errorf("share %q: unexpected link metadata type %T", ref, res)
	}
}
