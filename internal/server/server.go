// package server contains the HTTP shell around the conversion pipeline:
// routing, middleware, conversion endpoints, health probes, and static
// frontend delivery.
package server

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/trackbridge/internal/models"
	"golang.org/x/time/rate"
)

// Middleware wraps an http.Handler and returns a new http.Handler with additional behavior.
type Middleware func(http.Handler) http.Handler

// Handler defines the interface for HTTP request handlers in the conversion service.
type Handler interface {
	http.Handler      // ServeHTTP handles the HTTP request and writes the response
	Routes() []string // Routes returns the mux patterns this handler serves (e.g. "POST /convert/spotify-to-youtube")
}

// Pipeline is the slice of the converter the HTTP shell invokes.
type Pipeline interface {
	SpotifyToYouTube(ctx context.Context, sourceURL string) (*models.ConversionResult, error)
	YouTubeToSpotify(ctx context.Context, sourceURL string) (*models.ConversionResult, error)
}

// RouterOpts contains the dependencies for assembling the service router.
type RouterOpts struct {
	Pipeline  Pipeline
	DB        *sql.DB       // backing store probed by /db-health; may be nil
	StaticDir string        // frontend directory; empty disables static serving
	Limiter   *rate.Limiter // global quota for conversion endpoints; nil disables limiting
	Logger    *log.Logger
}

// NewRouter assembles the full route table: conversion endpoints (rate
// limited), health probes, and static frontend delivery, all behind request
// id, logging, and CORS middleware.
func NewRouter(opts RouterOpts) *BasicRouter {
	router := NewBasicRouter()
	router.Use(RequestID(), RequestLogger(opts.Logger), CORS())

	convert := NewConvertHandler(opts.Pipeline, opts.Logger)
	if opts.Limiter != nil {
		// The limiter guards only the conversion endpoints; probes and
		// static assets stay reachable when the quota is exhausted.
		limited := RateLimit(opts.Limiter, opts.Logger)(convert)
		for _, route := range convert.Routes() {
			router.Handle(route, limited)
		}
	} else {
		router.Handler(convert)
	}

	router.Handler(NewHealthHandler(opts.DB, opts.Logger))

	if opts.StaticDir != "" {
		router.Handler(NewStaticHandler(opts.StaticDir))
	}

	return router
}

// NewServer builds an http.Server for the given address and handler with
// conservative request deadlines; the pipeline itself sets none.
func NewServer(host string, port int, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf("%s:%d", host, port),
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
}

// writeJSON serializes v with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeDetail writes the {"detail": ...} error envelope.
func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}
