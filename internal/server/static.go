package server

import (
	"net/http"
	"path/filepath"
)

// StaticHandler serves the frontend: the index page at the root, assets under
// /static/, and the favicon.
type StaticHandler struct {
	dir string
}

// NewStaticHandler creates a StaticHandler rooted at dir.
func NewStaticHandler(dir string) *StaticHandler {
	return &StaticHandler{dir: dir}
}

// Routes returns the HTTP routes this handler serves.
func (h *StaticHandler) Routes() []string {
	return []string{
		"GET /{$}",
		"GET /static/",
		"GET /favicon.ico",
	}
}

// ServeHTTP serves frontend files from the configured directory.
func (h *StaticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.URL.Path == "/":
		http.ServeFile(w, r, filepath.Join(h.dir, "index.html"))
	case r.URL.Path == "/favicon.ico":
		http.ServeFile(w, r, filepath.Join(h.dir, "favicon.ico"))
	default:
		http.StripPrefix("/static/", http.FileServer(http.Dir(h.dir))).ServeHTTP(w, r)
	}
}
