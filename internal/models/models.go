package models

import (
	"time"
)

// Model defines the base interface for all persistent models in the track conversion service.
type Model interface {
	ID() string           // ID returns the unique identifier for this model
	CreatedAt() time.Time // CreatedAt returns when this model was created
	UpdatedAt() time.Time // UpdatedAt returns when this model was last updated
	Validate() error      // Validate checks if the model's data is valid and returns an error if not
}

// Repository defines the interface for data access operations.
// Implementations handle database interactions for specific model types.
type Repository[T Model] interface {
	Create(model T) error     // Create inserts a new model into the database
	Get(id string) (T, error) // Get retrieves a model by its ID
	Update(model T) error     // Update modifies an existing model in the database
	Delete(id string) error   // Delete removes a model from the database by its ID
	List() ([]T, error)       // List retrieves all models
}

// TrackInfo is the normalized metadata for a track fetched from one platform.
//
// Title and Artist are always set on a successful fetch. Album and DurationMS
// are absent when the source platform does not expose them (YouTube videos
// carry neither).
type TrackInfo struct {
	Title      string `json:"title"`
	Artist     string `json:"artist"`
	Album      string `json:"album,omitempty"`
	DurationMS int    `json:"duration_ms,omitempty"`
}

// ConversionResult is the payload returned for one conversion request.
//
// DestinationURL is empty when no acceptable match was found on the
// destination platform; callers decide how to surface that (the HTTP shell
// maps it to a 404).
type ConversionResult struct {
	DestinationURL  string    `json:"destination_url"`
	MatchConfidence float64   `json:"match_confidence"`
	TrackInfo       TrackInfo `json:"track_info"`
}

// Matched reports whether the conversion produced a destination URL.
func (r *ConversionResult) Matched() bool {
	return r.DestinationURL != ""
}
