package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/desertthunder/trackbridge/internal/models"
	"github.com/desertthunder/trackbridge/internal/shared"
)

// TrackRepository implements models.Repository[*models.CachedTrack].
//
// Rows are keyed by a UNIQUE (service, service_id) constraint so repeated
// lookups of the same catalog id reuse one row.
type TrackRepository struct {
	db *sql.DB
}

// NewTrackRepository creates a new TrackRepository with the given database connection
func NewTrackRepository(db *sql.DB) *TrackRepository {
	return &TrackRepository{db: db}
}

const trackColumns = "id, sequence, service, service_id, title, artist, album, duration_ms, created_at, updated_at"

// Create inserts a new [models.CachedTrack] into the database with a generated ID and sequence
func (r *TrackRepository) Create(track *models.CachedTrack) error {
	sequence, err := NextSequence(r.db, "tracks")
	if err != nil {
		return fmt.Errorf("failed to generate sequence: %w", err)
	}

	id := shared.GenerateID()
	track.SetID(id)
	track.SetSequence(sequence)

	if err := track.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	info := track.Info()
	query := `
		INSERT INTO tracks (id, sequence, service, service_id, title, artist, album, duration_ms, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.Exec(query,
		id,
		sequence,
		track.Service(),
		track.ServiceID(),
		info.Title,
		info.Artist,
		info.Album,
		info.DurationMS,
		track.CreatedAt(),
		track.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert track: %w", err)
	}

	return nil
}

// Get retrieves a cached track by ID
func (r *TrackRepository) Get(id string) (*models.CachedTrack, error) {
	query := fmt.Sprintf("SELECT %s FROM tracks WHERE id = ?", trackColumns)
	return r.scanOne(r.db.QueryRow(query, id))
}

// GetByServiceID retrieves a cached track by service and catalog id.
//
// Returns (nil, nil) when no row exists.
func (r *TrackRepository) GetByServiceID(service, serviceID string) (*models.CachedTrack, error) {
	query := fmt.Sprintf("SELECT %s FROM tracks WHERE service = ? AND service_id = ?", trackColumns)

	track, err := r.scanOne(r.db.QueryRow(query, service, serviceID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return track, err
}

// Update modifies an existing cached track's metadata
func (r *TrackRepository) Update(track *models.CachedTrack) error {
	if err := track.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	now := time.Now()
	track.SetUpdatedAt(now)

	info := track.Info()
	query := `
		UPDATE tracks
		SET title = ?, artist = ?, album = ?, duration_ms = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := r.db.Exec(query, info.Title, info.Artist, info.Album, info.DurationMS, now, track.ID())
	if err != nil {
		return fmt.Errorf("failed to update track: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: track %s", shared.ErrTrackNotFound, track.ID())
	}

	return nil
}

// Delete removes a cached track by ID
func (r *TrackRepository) Delete(id string) error {
	if _, err := r.db.Exec("DELETE FROM tracks WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete track: %w", err)
	}
	return nil
}

// List retrieves all cached tracks ordered by sequence
func (r *TrackRepository) List() ([]*models.CachedTrack, error) {
	query := fmt.Sprintf("SELECT %s FROM tracks ORDER BY sequence", trackColumns)

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list tracks: %w", err)
	}
	defer rows.Close()

	var tracks []*models.CachedTrack
	for rows.Next() {
		track, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		tracks = append(tracks, track)
	}

	return tracks, rows.Err()
}

// Clear removes every cached track and resets the sequence counter.
func (r *TrackRepository) Clear() error {
	if _, err := r.db.Exec("DELETE FROM tracks"); err != nil {
		return fmt.Errorf("failed to clear tracks: %w", err)
	}
	if _, err := r.db.Exec("UPDATE tracks_sequence SET value = 0 WHERE id = 1"); err != nil {
		return fmt.Errorf("failed to reset sequence: %w", err)
	}
	return nil
}

type scannable interface {
	Scan(dest ...any) error
}

func (r *TrackRepository) scanOne(row *sql.Row) (*models.CachedTrack, error) {
	return r.scan(row)
}

func (r *TrackRepository) scan(row scannable) (*models.CachedTrack, error) {
	var (
		id, service, serviceID string
		sequence               int
		info                   models.TrackInfo
		createdAt, updatedAt   time.Time
	)

	err := row.Scan(&id, &sequence, &service, &serviceID,
		&info.Title, &info.Artist, &info.Album, &info.DurationMS,
		&createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan track: %w", err)
	}

	return models.RestoreCachedTrack(id, sequence, service, serviceID, info, createdAt, updatedAt), nil
}
