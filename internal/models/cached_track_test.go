package models

import (
	"testing"
	"time"
)

func TestCachedTrackValidate(t *testing.T) {
	info := TrackInfo{Title: "Song", Artist: "Band"}

	t.Run("accepts a complete track", func(t *testing.T) {
		track := NewCachedTrack(1, "spotify", "abc123", info)
		track.SetID("some-id")

		if err := track.Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("rejects a missing id", func(t *testing.T) {
		track := NewCachedTrack(1, "spotify", "abc123", info)

		if err := track.Validate(); err == nil {
			t.Error("expected an error for a missing id")
		}
	})

	t.Run("rejects missing service fields", func(t *testing.T) {
		track := NewCachedTrack(1, "", "abc123", info)
		track.SetID("some-id")

		if err := track.Validate(); err == nil {
			t.Error("expected an error for a missing service")
		}
	})

	t.Run("rejects missing metadata", func(t *testing.T) {
		track := NewCachedTrack(1, "spotify", "abc123", TrackInfo{Title: "Song"})
		track.SetID("some-id")

		if err := track.Validate(); err == nil {
			t.Error("expected an error for a missing artist")
		}
	})
}

func TestCachedTrackTimestamps(t *testing.T) {
	track := NewCachedTrack(1, "spotify", "abc123", TrackInfo{Title: "Song", Artist: "Band"})

	if track.CreatedAt().IsZero() || track.UpdatedAt().IsZero() {
		t.Error("expected timestamps to be set on creation")
	}

	later := track.UpdatedAt().Add(time.Hour)
	track.SetUpdatedAt(later)

	if !track.UpdatedAt().Equal(later) {
		t.Errorf("expected updated_at %v, got %v", later, track.UpdatedAt())
	}
}

func TestConversionResultMatched(t *testing.T) {
	t.Run("matched with a destination url", func(t *testing.T) {
		result := &ConversionResult{DestinationURL: "https://music.youtube.com/watch?v=vid1"}
		if !result.Matched() {
			t.Error("expected a match")
		}
	})

	t.Run("unmatched without one", func(t *testing.T) {
		result := &ConversionResult{MatchConfidence: 0.0}
		if result.Matched() {
			t.Error("expected no match")
		}
	})
}
