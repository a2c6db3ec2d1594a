package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/desertthunder/trackbridge/internal/shared"
)

const (
	spotifyTokenURL = "https://accounts.spotify.com/api/token"
	spotifyBaseURL  = "https://api.spotify.com/v1"
)

// Response types follow
// https://developer.spotify.com/documentation/web-api/reference/

// SpotifyArtist represents a Spotify artist.
type SpotifyArtist struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SpotifyAlbum represents a Spotify album.
type SpotifyAlbum struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SpotifyTrack represents a Spotify track.
type SpotifyTrack struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Artists    []SpotifyArtist `json:"artists"`
	Album      SpotifyAlbum    `json:"album"`
	DurationMS int             `json:"duration_ms"`
}

type spotifySearchResponse struct {
	Tracks struct {
		Items []SpotifyTrack `json:"items"`
	} `json:"tracks"`
}

// SpotifyService implements [SpotifyAPI] against the Spotify Web API.
//
// Every request carries a bearer token obtained from the injected
// [TokenSource]; the service itself holds no credential state.
type SpotifyService struct {
	baseURL    string
	tokens     TokenSource
	httpClient *http.Client
}

// NewSpotifyService creates a Spotify client using the given token source.
//
// baseURL overrides the production API endpoint, primarily for tests.
func NewSpotifyService(tokens TokenSource, baseURL string) *SpotifyService {
	if baseURL == "" {
		baseURL = spotifyBaseURL
	}

	return &SpotifyService{
		baseURL:    baseURL,
		tokens:     tokens,
		httpClient: http.DefaultClient,
	}
}

// doRequest performs an authenticated GET against the Spotify API, decoding
// the response into result. A non-2xx status fails with failure; a response
// that cannot be decoded fails with [shared.ErrLookupFailed].
func (s *SpotifyService) doRequest(ctx context.Context, endpoint string, failure error, result any) error {
	token, err := s.tokens.Token(ctx)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: spotify API status %d", failure, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("%w: failed to decode spotify response: %v", shared.ErrLookupFailed, err)
	}

	return nil
}

// Track retrieves a single track by catalog id.
//
// A non-success status maps to [shared.ErrTrackNotFound].
func (s *SpotifyService) Track(ctx context.Context, id string) (*SpotifyTrack, error) {
	var track SpotifyTrack
	endpoint := fmt.Sprintf("/tracks/%s", url.PathEscape(id))
	if err := s.doRequest(ctx, endpoint, shared.ErrTrackNotFound, &track); err != nil {
		return nil, err
	}
	return &track, nil
}

// SearchTracks searches the track catalog, returning at most limit results in
// the platform's ranking order.
//
// A non-success status maps to [shared.ErrSearchFailed].
func (s *SpotifyService) SearchTracks(ctx context.Context, query string, limit int) ([]SpotifyTrack, error) {
	if limit <= 0 {
		limit = 1
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("type", "track")
	params.Set("limit", fmt.Sprintf("%d", limit))

	var response spotifySearchResponse
	if err := s.doRequest(ctx, "/search?"+params.Encode(), shared.ErrSearchFailed, &response); err != nil {
		return nil, err
	}

	return response.Tracks.Items, nil
}
