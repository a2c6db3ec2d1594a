package converter

import "testing"

func TestExtractSpotifyTrackID(t *testing.T) {
	cases := []struct {
		name string
		url  string
		id   string
		ok   bool
	}{
		{"canonical url", "https://open.spotify.com/track/4uLU6hMCjMI75M1A2tKUQC", "4uLU6hMCjMI75M1A2tKUQC", true},
		{"url with query string", "https://open.spotify.com/track/4uLU6hMCjMI75M1A2tKUQC?si=abcd1234", "4uLU6hMCjMI75M1A2tKUQC", true},
		{"localized url", "https://open.spotify.com/intl-de/track/4uLU6hMCjMI75M1A2tKUQC", "4uLU6hMCjMI75M1A2tKUQC", true},
		{"bare path fragment", "track/abc_123-XYZ", "abc_123-XYZ", true},
		{"album url", "https://open.spotify.com/album/6dVIqQ8qmQ5GBnJ9shOYGE", "", false},
		{"unrelated url", "https://example.com/nothing", "", false},
		{"empty string", "", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			id, ok := ExtractSpotifyTrackID(tc.url)
			if ok != tc.ok || id != tc.id {
				t.Errorf("ExtractSpotifyTrackID(%q) = (%q, %v), expected (%q, %v)", tc.url, id, ok, tc.id, tc.ok)
			}
		})
	}
}

func TestExtractYouTubeVideoID(t *testing.T) {
	cases := []struct {
		name string
		url  string
		id   string
		ok   bool
	}{
		{"watch url", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"music url", "https://music.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"extra parameters", "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s", "dQw4w9WgXcQ", true},
		{"id stops at ampersand", "watch?v=abc-123_XYZ&list=PL1", "abc-123_XYZ", true},
		{"short url without v parameter", "https://youtu.be/dQw4w9WgXcQ", "", false},
		{"unrelated url", "https://example.com/nothing", "", false},
		{"empty string", "", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			id, ok := ExtractYouTubeVideoID(tc.url)
			if ok != tc.ok || id != tc.id {
				t.Errorf("ExtractYouTubeVideoID(%q) = (%q, %v), expected (%q, %v)", tc.url, id, ok, tc.id, tc.ok)
			}
		})
	}
}
