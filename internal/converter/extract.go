package converter

import "regexp"

// Catalog identifiers are alphanumeric plus underscore and hyphen; matching
// stops at the first delimiter (slash, query separator, ampersand).
var (
	spotifyTrackIDPattern = regexp.MustCompile(`track/([A-Za-z0-9_-]+)`)
	youtubeVideoIDPattern = regexp.MustCompile(`v=([A-Za-z0-9_-]+)`)
)

// ExtractSpotifyTrackID locates the catalog id after a "track/" path segment.
//
// Returns ok=false when the URL carries no such segment; the caller decides
// whether that is fatal.
func ExtractSpotifyTrackID(url string) (string, bool) {
	match := spotifyTrackIDPattern.FindStringSubmatch(url)
	if match == nil {
		return "", false
	}
	return match[1], true
}

// ExtractYouTubeVideoID locates the video id in a "v=" query parameter.
func ExtractYouTubeVideoID(url string) (string, bool) {
	match := youtubeVideoIDPattern.FindStringSubmatch(url)
	if match == nil {
		return "", false
	}
	return match[1], true
}
