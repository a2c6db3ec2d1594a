// Package models defines domain entities and persistence interfaces for the track conversion service.
//
// The package contains two categories of types:
//
// 1. Data Transfer Objects (DTOs): Lightweight structs shaped for conversion results
//   - [TrackInfo] : Normalized track metadata fetched from a platform
//   - [ConversionResult] : Destination URL, match confidence, and the source track
//
// 2. Persistent Entities: Database-backed models with full lifecycle management
//   - [CachedTrack] : Cached track metadata keyed by (service, service_id)
//
// Persistent entities implement the Model interface providing ID generation, timestamps, and validation.
// The Repository[T] interface defines standard CRUD operations for database access.
package models
