package converter

import (
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// Confidence scores how closely a search candidate matches the query text.
//
// Both sides are lowercased before comparison; the bigram dice coefficient
// yields 1.0 for identical strings, 0.0 for fully disjoint ones, and a value
// strictly in between when the candidate carries extra noise such as
// "(Official Video)" suffixes.
func Confidence(query, candidate string) float64 {
	return strutil.Similarity(strings.ToLower(query), strings.ToLower(candidate), metrics.NewSorensenDice())
}

// SpotifyTrackURL builds the canonical track URL for a Spotify catalog id.
func SpotifyTrackURL(id string) string {
	return "https://open.spotify.com/track/" + id
}

// YouTubeWatchURL builds the canonical YouTube Music watch URL for a video id.
func YouTubeWatchURL(id string) string {
	return "https://music.youtube.com/watch?v=" + id
}
