package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/desertthunder/trackbridge/internal/shared"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// renewalSkew is subtracted from a token's expiry so renewal happens before
// the platform actually rejects it, tolerating clock and latency skew.
const renewalSkew = 30 * time.Second

// fallbackTokenTTL is assumed when the token endpoint omits expires_in.
const fallbackTokenTTL = time.Hour

// ExchangeFunc performs a credential-grant exchange against a token endpoint.
type ExchangeFunc func(ctx context.Context) (*oauth2.Token, error)

// TokenCache caches a single bearer token process-wide and renews it through
// a client-credentials exchange once the cached token is within renewalSkew
// of expiring.
//
// The mutex covers the whole check-then-refresh sequence, so concurrent
// callers racing past an expired token perform one exchange, not several.
// A failed exchange leaves the cache untouched; the next call retries.
type TokenCache struct {
	mu        sync.Mutex
	exchange  ExchangeFunc
	now       func() time.Time
	token     string
	expiresAt time.Time
}

// NewTokenCache creates a TokenCache around the given exchange call.
func NewTokenCache(exchange ExchangeFunc) *TokenCache {
	return &TokenCache{exchange: exchange, now: time.Now}
}

// NewSpotifyTokenCache creates a TokenCache performing the client-credentials
// grant against the Spotify accounts service.
func NewSpotifyTokenCache(clientID, clientSecret string) *TokenCache {
	conf := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     spotifyTokenURL,
		AuthStyle:    oauth2.AuthStyleInHeader,
	}
	return NewTokenCache(conf.Token)
}

// Token returns the cached token, exchanging credentials for a fresh one when
// none is cached or the cached one is due for renewal.
func (c *TokenCache) Token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && c.now().Before(c.expiresAt) {
		return c.token, nil
	}

	tok, err := c.exchange(ctx)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) {
			return "", fmt.Errorf("%w: %s", shared.ErrAuthFailed, strings.TrimSpace(string(retrieveErr.Body)))
		}
		return "", fmt.Errorf("%w: %v", shared.ErrAuthFailed, err)
	}

	c.token = tok.AccessToken
	if tok.Expiry.IsZero() {
		c.expiresAt = c.now().Add(fallbackTokenTTL - renewalSkew)
	} else {
		c.expiresAt = tok.Expiry.Add(-renewalSkew)
	}

	return c.token, nil
}

// StaticTokenSource returns a fixed long-lived token supplied via
// configuration, for deployments that skip the exchange entirely.
type StaticTokenSource struct {
	token string
}

// NewStaticTokenSource creates a TokenSource around a pre-issued token.
func NewStaticTokenSource(token string) *StaticTokenSource {
	return &StaticTokenSource{token: token}
}

// Token returns the configured token.
func (s *StaticTokenSource) Token(ctx context.Context) (string, error) {
	if s.token == "" {
		return "", fmt.Errorf("%w: empty static token", shared.ErrAuthFailed)
	}
	return s.token, nil
}
