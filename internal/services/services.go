// package services implements clients for the upstream platform APIs:
// the Spotify Web API (bearer-token authenticated) and the YouTube Data
// API v3 (API-key authenticated).
package services

import (
	"context"
)

// TokenSource supplies a bearer token for authenticated Spotify API calls.
//
// Implementations are [TokenCache] (client-credentials exchange with expiry
// based renewal) and [StaticTokenSource] (long-lived token supplied via
// configuration).
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// SpotifyAPI is the slice of the Spotify client the conversion pipeline consumes.
type SpotifyAPI interface {
	// Track retrieves a track by its catalog id.
	Track(ctx context.Context, id string) (*SpotifyTrack, error)

	// SearchTracks searches the track catalog, returning at most limit results
	// in the platform's ranking order.
	SearchTracks(ctx context.Context, query string, limit int) ([]SpotifyTrack, error)
}

// YouTubeAPI is the slice of the YouTube client the conversion pipeline consumes.
type YouTubeAPI interface {
	// Video retrieves a video by id. Returns (nil, nil) when the id is valid
	// but no video exists, distinguishing "nothing found" from a failed call.
	Video(ctx context.Context, id string) (*YouTubeVideo, error)

	// SearchVideos searches the music category, returning results in the
	// platform's ranking order.
	SearchVideos(ctx context.Context, query string) ([]YouTubeSearchResult, error)
}
