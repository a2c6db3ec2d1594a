package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/desertthunder/trackbridge/internal/shared"
)

const youtubeBaseURL = "https://www.googleapis.com/youtube/v3"

// musicCategoryID filters searches to YouTube's music category.
const musicCategoryID = "10"

// YouTubeSnippet carries the metadata fields the converter reads from a video.
type YouTubeSnippet struct {
	Title        string `json:"title"`
	ChannelTitle string `json:"channelTitle"`
}

// YouTubeVideo represents a video returned by the videos endpoint.
type YouTubeVideo struct {
	ID      string         `json:"id"`
	Snippet YouTubeSnippet `json:"snippet"`
}

// YouTubeSearchResult represents a single hit from the search endpoint.
type YouTubeSearchResult struct {
	ID struct {
		VideoID string `json:"videoId"`
	} `json:"id"`
	Snippet YouTubeSnippet `json:"snippet"`
}

type youtubeVideosResponse struct {
	Items []YouTubeVideo `json:"items"`
}

type youtubeSearchResponse struct {
	Items []YouTubeSearchResult `json:"items"`
}

// YouTubeService implements [YouTubeAPI] against the YouTube Data API v3.
//
// Authenticated with an API key rather than a bearer token. Generic video
// content exposes no album or duration metadata, so lookups map the channel
// title as an artist proxy.
type YouTubeService struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewYouTubeService creates a YouTube client using the given API key.
//
// baseURL overrides the production API endpoint, primarily for tests.
func NewYouTubeService(apiKey, baseURL string) *YouTubeService {
	if baseURL == "" {
		baseURL = youtubeBaseURL
	}

	return &YouTubeService{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: http.DefaultClient,
	}
}

// doRequest performs a keyed GET against the Data API, decoding the response
// into result. A non-2xx status fails with failure.
func (y *YouTubeService) doRequest(ctx context.Context, endpoint string, params url.Values, failure error, result any) error {
	params.Set("key", y.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, y.baseURL+endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := y.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: youtube API status %d", failure, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("%w: failed to decode youtube response: %v", shared.ErrLookupFailed, err)
	}

	return nil
}

// Video retrieves a video by id.
//
// A non-success status maps to [shared.ErrLookupFailed]. An empty result set
// returns (nil, nil): the id was well-formed but nothing exists for it.
func (y *YouTubeService) Video(ctx context.Context, id string) (*YouTubeVideo, error) {
	params := url.Values{}
	params.Set("part", "snippet,contentDetails")
	params.Set("id", id)

	var response youtubeVideosResponse
	if err := y.doRequest(ctx, "/videos", params, shared.ErrLookupFailed, &response); err != nil {
		return nil, err
	}

	if len(response.Items) == 0 {
		return nil, nil
	}

	return &response.Items[0], nil
}

// SearchVideos searches the music category for the given query, returning
// results in the platform's ranking order.
//
// A non-success status maps to [shared.ErrSearchFailed].
func (y *YouTubeService) SearchVideos(ctx context.Context, query string) ([]YouTubeSearchResult, error) {
	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("q", query)
	params.Set("type", "video")
	params.Set("videoCategoryId", musicCategoryID)

	var response youtubeSearchResponse
	if err := y.doRequest(ctx, "/search", params, shared.ErrSearchFailed, &response); err != nil {
		return nil, err
	}

	return response.Items, nil
}
