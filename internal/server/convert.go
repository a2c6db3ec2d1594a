package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/trackbridge/internal/models"
)

// convertRequest is the body accepted by both conversion endpoints.
type convertRequest struct {
	SourceURL string `json:"source_url"`
}

// ConvertHandler exposes the two directional conversion pipelines.
//
// Responses: 200 with a [models.ConversionResult], 404 when the pipeline
// found no destination match, 500 with an error detail on any pipeline
// failure. No partial results.
type ConvertHandler struct {
	pipeline Pipeline
	logger   *log.Logger
}

// NewConvertHandler creates a ConvertHandler around the given pipeline.
func NewConvertHandler(pipeline Pipeline, logger *log.Logger) *ConvertHandler {
	return &ConvertHandler{pipeline: pipeline, logger: logger}
}

// Routes returns the HTTP routes this handler serves.
func (h *ConvertHandler) Routes() []string {
	return []string{
		"POST /convert/spotify-to-youtube",
		"POST /convert/youtube-to-spotify",
	}
}

// ServeHTTP dispatches to the pipeline matching the request path.
func (h *ConvertHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req convertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.SourceURL == "" {
		writeDetail(w, http.StatusBadRequest, "source_url is required")
		return
	}

	switch r.URL.Path {
	case "/convert/spotify-to-youtube":
		h.convert(w, r.Context(), req.SourceURL, h.pipeline.SpotifyToYouTube, "No YouTube match found.")
	case "/convert/youtube-to-spotify":
		h.convert(w, r.Context(), req.SourceURL, h.pipeline.YouTubeToSpotify, "No Spotify match found.")
	default:
		http.NotFound(w, r)
	}
}

type pipelineFunc func(ctx context.Context, sourceURL string) (*models.ConversionResult, error)

func (h *ConvertHandler) convert(w http.ResponseWriter, ctx context.Context, sourceURL string, run pipelineFunc, noMatchDetail string) {
	h.logger.Info("converting track", "source_url", sourceURL)

	result, err := run(ctx, sourceURL)
	if err != nil {
		h.logger.Error("conversion failed", "source_url", sourceURL, "err", err)
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}

	if !result.Matched() {
		writeDetail(w, http.StatusNotFound, noMatchDetail)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
