// package converter implements the cross-platform track conversion pipeline:
// URL identifier extraction, metadata fetching, destination search, and
// similarity-scored matching.
package converter

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/trackbridge/internal/models"
	"github.com/desertthunder/trackbridge/internal/services"
	"github.com/desertthunder/trackbridge/internal/shared"
)

// Service names used as cache keys.
const (
	ServiceSpotify = "spotify"
	ServiceYouTube = "youtube"
)

// TrackCache caches fetched track metadata keyed by (service, catalog id).
//
// Get returns (nil, nil) on a miss. Cache failures are logged and skipped by
// the pipeline, never surfaced to the caller.
type TrackCache interface {
	Get(service, serviceID string) (*models.TrackInfo, error)
	Put(service, serviceID string, info models.TrackInfo) error
}

// Converter composes the two directional conversion pipelines.
//
// Each conversion is one fail-fast sequence of blocking calls: extract the
// catalog id, fetch source metadata, search the destination platform, score
// the top candidate. No retries, no partial results.
type Converter struct {
	spotify services.SpotifyAPI
	youtube services.YouTubeAPI
	cache   TrackCache
	logger  *log.Logger
}

// ConverterOpts contains the dependencies for creating a Converter.
type ConverterOpts struct {
	Spotify services.SpotifyAPI
	Youtube services.YouTubeAPI
	Cache   TrackCache // optional; nil disables metadata caching
	Logger  *log.Logger
}

// NewConverter creates a Converter with the provided dependencies.
func NewConverter(opts ConverterOpts) *Converter {
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}

	return &Converter{
		spotify: opts.Spotify,
		youtube: opts.Youtube,
		cache:   opts.Cache,
		logger:  opts.Logger,
	}
}

// SpotifyToYouTube converts a Spotify track URL into its closest YouTube
// Music equivalent.
//
// A URL without a track id fails with [shared.ErrInvalidURL] before any
// network call. An empty search result set yields a result with no
// destination URL and zero confidence, not an error.
func (c *Converter) SpotifyToYouTube(ctx context.Context, sourceURL string) (*models.ConversionResult, error) {
	id, ok := ExtractSpotifyTrackID(sourceURL)
	if !ok {
		return nil, fmt.Errorf("%w: no spotify track id in %q", shared.ErrInvalidURL, sourceURL)
	}

	info, err := c.spotifyTrackInfo(ctx, id)
	if err != nil {
		return nil, err
	}

	query := info.Title + " " + info.Artist
	results, err := c.youtube.SearchVideos(ctx, query)
	if err != nil {
		return nil, err
	}

	if len(results) == 0 {
		c.logger.Warn("no youtube results", "query", query)
		return &models.ConversionResult{TrackInfo: *info}, nil
	}

	// The platform's top-ranked result is taken as the match; confidence is
	// reported, not gated.
	best := results[0]
	confidence := Confidence(query, best.Snippet.Title)

	return &models.ConversionResult{
		DestinationURL:  YouTubeWatchURL(best.ID.VideoID),
		MatchConfidence: confidence,
		TrackInfo:       *info,
	}, nil
}

// YouTubeToSpotify converts a YouTube watch URL into its closest Spotify
// track equivalent.
func (c *Converter) YouTubeToSpotify(ctx context.Context, sourceURL string) (*models.ConversionResult, error) {
	id, ok := ExtractYouTubeVideoID(sourceURL)
	if !ok {
		return nil, fmt.Errorf("%w: no youtube video id in %q", shared.ErrInvalidURL, sourceURL)
	}

	info, err := c.youtubeTrackInfo(ctx, id)
	if err != nil {
		return nil, err
	}

	query := info.Title + " " + info.Artist
	results, err := c.spotify.SearchTracks(ctx, query, 1)
	if err != nil {
		return nil, err
	}

	if len(results) == 0 {
		c.logger.Warn("no spotify results", "query", query)
		return &models.ConversionResult{TrackInfo: *info}, nil
	}

	best := results[0]
	candidate := best.Name
	if len(best.Artists) > 0 {
		// Spotify exposes a true artist field, so both sides of the
		// comparison include one.
		candidate += " " + best.Artists[0].Name
	}
	confidence := Confidence(query, candidate)

	return &models.ConversionResult{
		DestinationURL:  SpotifyTrackURL(best.ID),
		MatchConfidence: confidence,
		TrackInfo:       *info,
	}, nil
}

// spotifyTrackInfo fetches and normalizes Spotify track metadata, consulting
// the cache first.
func (c *Converter) spotifyTrackInfo(ctx context.Context, id string) (*models.TrackInfo, error) {
	if cached := c.cachedInfo(ServiceSpotify, id); cached != nil {
		return cached, nil
	}

	track, err := c.spotify.Track(ctx, id)
	if err != nil {
		return nil, err
	}

	if track.Name == "" || len(track.Artists) == 0 {
		return nil, fmt.Errorf("%w: spotify track %s missing title or artist", shared.ErrLookupFailed, id)
	}

	info := &models.TrackInfo{
		Title:      track.Name,
		Artist:     track.Artists[0].Name,
		Album:      track.Album.Name,
		DurationMS: track.DurationMS,
	}

	c.storeInfo(ServiceSpotify, id, *info)
	return info, nil
}

// youtubeTrackInfo fetches and normalizes YouTube video metadata, consulting
// the cache first.
//
// A lookup that finds nothing for a well-formed id fails with
// [shared.ErrLookupFailed]; there is no destination search to run without
// source metadata.
func (c *Converter) youtubeTrackInfo(ctx context.Context, id string) (*models.TrackInfo, error) {
	if cached := c.cachedInfo(ServiceYouTube, id); cached != nil {
		return cached, nil
	}

	video, err := c.youtube.Video(ctx, id)
	if err != nil {
		return nil, err
	}
	if video == nil {
		return nil, fmt.Errorf("%w: could not extract track info for video %s", shared.ErrLookupFailed, id)
	}

	// Channel title stands in for the artist; the Data API exposes neither
	// artist nor album for generic video content.
	info := &models.TrackInfo{
		Title:  video.Snippet.Title,
		Artist: video.Snippet.ChannelTitle,
	}

	c.storeInfo(ServiceYouTube, id, *info)
	return info, nil
}

func (c *Converter) cachedInfo(service, id string) *models.TrackInfo {
	if c.cache == nil {
		return nil
	}

	info, err := c.cache.Get(service, id)
	if err != nil {
		c.logger.Warn("track cache read failed", "service", service, "id", id, "err", err)
		return nil
	}
	if info != nil {
		c.logger.Debug("track cache hit", "service", service, "id", id)
	}
	return info
}

func (c *Converter) storeInfo(service, id string, info models.TrackInfo) {
	if c.cache == nil {
		return
	}

	if err := c.cache.Put(service, id, info); err != nil {
		c.logger.Warn("track cache write failed", "service", service, "id", id, "err", err)
	}
}
