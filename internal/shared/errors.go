package shared

import "fmt"

var (
	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")
	ErrMissingSecret = fmt.Errorf("missing secret")

	// Authentication errors
	ErrAuthFailed = fmt.Errorf("authentication failed")

	// Upstream API errors
	ErrTrackNotFound = fmt.Errorf("track not found")
	ErrLookupFailed  = fmt.Errorf("lookup failed")
	ErrSearchFailed  = fmt.Errorf("search failed")

	// Input validation errors
	ErrInvalidURL = fmt.Errorf("invalid URL")
)
