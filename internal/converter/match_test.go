package converter

import "testing"

func TestConfidence(t *testing.T) {
	t.Run("identical strings score 1.0", func(t *testing.T) {
		if got := Confidence("Song Band", "Song Band"); got != 1.0 {
			t.Errorf("expected 1.0, got %f", got)
		}
	})

	t.Run("comparison is case insensitive", func(t *testing.T) {
		if got := Confidence("SONG BAND", "song band"); got != 1.0 {
			t.Errorf("expected 1.0, got %f", got)
		}
	})

	t.Run("disjoint strings score 0.0", func(t *testing.T) {
		if got := Confidence("abcd", "wxyz"); got != 0.0 {
			t.Errorf("expected 0.0, got %f", got)
		}
	})

	t.Run("noisy candidate scores strictly between bounds", func(t *testing.T) {
		got := Confidence("Song Band", "Song - Band (Official Video)")
		if got <= 0.0 || got >= 1.0 {
			t.Errorf("expected score in (0, 1), got %f", got)
		}
	})

	t.Run("closer candidate scores higher", func(t *testing.T) {
		query := "Bohemian Rhapsody Queen"
		near := Confidence(query, "Bohemian Rhapsody - Queen (Remastered)")
		far := Confidence(query, "Top 50 Rock Ballads Compilation")
		if near <= far {
			t.Errorf("expected %f > %f", near, far)
		}
	})
}

func TestCanonicalURLs(t *testing.T) {
	t.Run("spotify track url", func(t *testing.T) {
		got := SpotifyTrackURL("4uLU6hMCjMI75M1A2tKUQC")
		if got != "https://open.spotify.com/track/4uLU6hMCjMI75M1A2tKUQC" {
			t.Errorf("unexpected url %q", got)
		}
	})

	t.Run("youtube music watch url", func(t *testing.T) {
		got := YouTubeWatchURL("dQw4w9WgXcQ")
		if got != "https://music.youtube.com/watch?v=dQw4w9WgXcQ" {
			t.Errorf("unexpected url %q", got)
		}
	})
}
