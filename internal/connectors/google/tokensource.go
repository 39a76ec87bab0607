package google

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"

	"github.com/custodia-labs/pagepress-cli/internal/core/domain"
	"github.com/custodia-labs/pagepress-cli/internal/core/ports/driven"
)

// Google's OAuth2 token endpoint.
const tokenURL = "https://oauth2.googleapis.com/token"

// TokenSourceAdapter adapts the TokenProvider port to oauth2.TokenSource.
// This allows Google API clients to use the application's token management.
type TokenSourceAdapter struct {
	provider driven.TokenProvider
	ctx      context.Context
}

// NewTokenSource creates an oauth2.TokenSource from a TokenProvider.
// The returned TokenSource can be used with option.WithTokenSource() when
// creating Google API services.
func NewTokenSource(ctx context.Context, provider driven.TokenProvider) oauth2.TokenSource {
	return &TokenSourceAdapter{
		provider: provider,
		ctx:      ctx,
	}
}

// Token implements oauth2.TokenSource.
// Called by Google API clients when they need an access token.
func (t *TokenSourceAdapter) Token() (*oauth2.Token, error) {
	accessToken, err := t.provider.GetToken(t.ctx)
	if err != nil {
		return nil, err
	}

	return &oauth2.Token{
		AccessToken: accessToken,
		TokenType:   "Bearer",
	}, nil
}

// Ensure RefreshTokenProvider implements the interface.
var _ driven.TokenProvider = (*RefreshTokenProvider)(nil)

// RefreshTokenProvider implements the TokenProvider port with the
// OAuth2 refresh-token grant: no interactive flow, a long-lived refresh
// token is exchanged for short-lived access tokens on demand. Access
// tokens are cached and reused until expiry.
type RefreshTokenProvider struct {
	ts oauth2.TokenSource
}

// NewRefreshTokenProvider creates a provider from static OAuth client
// credentials and a refresh token.
func NewRefreshTokenProvider(ctx context.Context, clientID, clientSecret, refreshToken string) (*RefreshTokenProvider, error) {
	if clientID == "" || clientSecret == "" || refreshToken == "" {
		return nil, fmt.Errorf("%w: google client id, secret and refresh token must be set", domain.ErrAuthRequired)
	}

	cfg := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Endpoint:     oauth2.Endpoint{TokenURL: tokenURL},
		Scopes:       []string{ScopeDrive, ScopeSpreadsheets},
	}
	ts := cfg.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken})
	return &RefreshTokenProvider{ts: oauth2.ReuseTokenSource(nil, ts)}, nil
}

// GetToken returns a valid access token, refreshing if needed.
func (p *RefreshTokenProvider) GetToken(context.Context) (string, error) {
	tok, err := p.ts.Token()
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrTokenRefreshFailed, err)
	}
	return tok.AccessToken, nil
}

// OAuth2TokenSource exposes the provider's underlying cached source for
// direct use with Google API clients.
func (p *RefreshTokenProvider) OAuth2TokenSource() oauth2.TokenSource {
	return p.ts
}
