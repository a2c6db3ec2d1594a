package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/desertthunder/trackbridge/internal/models"
	"github.com/desertthunder/trackbridge/internal/shared"
)

// fakePipeline returns canned results per direction.
type fakePipeline struct {
	s2yResult *models.ConversionResult
	s2yErr    error
	y2sResult *models.ConversionResult
	y2sErr    error
}

func (f *fakePipeline) SpotifyToYouTube(ctx context.Context, sourceURL string) (*models.ConversionResult, error) {
	return f.s2yResult, f.s2yErr
}

func (f *fakePipeline) YouTubeToSpotify(ctx context.Context, sourceURL string) (*models.ConversionResult, error) {
	return f.y2sResult, f.y2sErr
}

func matchedResult(url string) *models.ConversionResult {
	return &models.ConversionResult{
		DestinationURL:  url,
		MatchConfidence: 0.92,
		TrackInfo:       models.TrackInfo{Title: "Song", Artist: "Band"},
	}
}

func postConvert(t *testing.T, handler http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	return body
}

func TestConvertHandler(t *testing.T) {
	logger := shared.NewLogger(io.Discard)

	t.Run("returns the conversion result", func(t *testing.T) {
		pipeline := &fakePipeline{s2yResult: matchedResult("https://music.youtube.com/watch?v=vid1")}
		handler := NewConvertHandler(pipeline, logger)

		rec := postConvert(t, handler, "/convert/spotify-to-youtube",
			`{"source_url": "https://open.spotify.com/track/abc123"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}

		body := decodeBody(t, rec)
		if body["destination_url"] != "https://music.youtube.com/watch?v=vid1" {
			t.Errorf("unexpected destination %v", body["destination_url"])
		}
		if body["match_confidence"] != 0.92 {
			t.Errorf("unexpected confidence %v", body["match_confidence"])
		}
	})

	t.Run("missing source_url is a 400", func(t *testing.T) {
		handler := NewConvertHandler(&fakePipeline{}, logger)

		for name, body := range map[string]string{
			"empty object": `{}`,
			"empty value":  `{"source_url": ""}`,
			"not json":     `not json`,
		} {
			t.Run(name, func(t *testing.T) {
				rec := postConvert(t, handler, "/convert/spotify-to-youtube", body)

				if rec.Code != http.StatusBadRequest {
					t.Fatalf("expected 400, got %d", rec.Code)
				}

				if detail := decodeBody(t, rec)["detail"]; detail != "source_url is required" {
					t.Errorf("unexpected detail %v", detail)
				}
			})
		}
	})

	t.Run("unmatched conversions are a 404", func(t *testing.T) {
		unmatched := &models.ConversionResult{TrackInfo: models.TrackInfo{Title: "Song", Artist: "Band"}}

		t.Run("spotify to youtube", func(t *testing.T) {
			handler := NewConvertHandler(&fakePipeline{s2yResult: unmatched}, logger)

			rec := postConvert(t, handler, "/convert/spotify-to-youtube",
				`{"source_url": "https://open.spotify.com/track/abc123"}`)

			if rec.Code != http.StatusNotFound {
				t.Fatalf("expected 404, got %d", rec.Code)
			}

			if detail := decodeBody(t, rec)["detail"]; detail != "No YouTube match found." {
				t.Errorf("unexpected detail %v", detail)
			}
		})

		t.Run("youtube to spotify", func(t *testing.T) {
			handler := NewConvertHandler(&fakePipeline{y2sResult: unmatched}, logger)

			rec := postConvert(t, handler, "/convert/youtube-to-spotify",
				`{"source_url": "https://www.youtube.com/watch?v=dQw4w9WgXcQ"}`)

			if rec.Code != http.StatusNotFound {
				t.Fatalf("expected 404, got %d", rec.Code)
			}

			if detail := decodeBody(t, rec)["detail"]; detail != "No Spotify match found." {
				t.Errorf("unexpected detail %v", detail)
			}
		})
	})

	t.Run("pipeline failures are a 500 with detail", func(t *testing.T) {
		pipeline := &fakePipeline{s2yErr: errors.New("spotify API status 503")}
		handler := NewConvertHandler(pipeline, logger)

		rec := postConvert(t, handler, "/convert/spotify-to-youtube",
			`{"source_url": "https://open.spotify.com/track/abc123"}`)

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}

		if detail := decodeBody(t, rec)["detail"]; detail != "spotify API status 503" {
			t.Errorf("unexpected detail %v", detail)
		}
	})

	t.Run("invalid source urls are a 500", func(t *testing.T) {
		pipeline := &fakePipeline{s2yErr: shared.ErrInvalidURL}
		handler := NewConvertHandler(pipeline, logger)

		rec := postConvert(t, handler, "/convert/spotify-to-youtube",
			`{"source_url": "https://example.com/nothing"}`)

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
	})
}
