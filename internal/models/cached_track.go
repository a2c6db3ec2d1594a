package models

import (
	"fmt"
	"time"
)

// CachedTrack is a persisted [TrackInfo] keyed by the service it was fetched
// from and its catalog identifier on that service.
//
// Rows are immutable once written (track metadata does not change between
// lookups) apart from the updated_at stamp on refresh.
type CachedTrack struct {
	id        string
	sequence  int
	service   string
	serviceID string
	info      TrackInfo
	createdAt time.Time
	updatedAt time.Time
}

// NewCachedTrack creates a CachedTrack for the given service and catalog id.
//
// The database id is assigned by the repository on Create.
func NewCachedTrack(sequence int, service, serviceID string, info TrackInfo) *CachedTrack {
	now := time.Now()
	return &CachedTrack{
		sequence:  sequence,
		service:   service,
		serviceID: serviceID,
		info:      info,
		createdAt: now,
		updatedAt: now,
	}
}

// RestoreCachedTrack rebuilds a CachedTrack from persisted column values.
func RestoreCachedTrack(id string, sequence int, service, serviceID string, info TrackInfo, createdAt, updatedAt time.Time) *CachedTrack {
	return &CachedTrack{
		id:        id,
		sequence:  sequence,
		service:   service,
		serviceID: serviceID,
		info:      info,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (t *CachedTrack) ID() string           { return t.id }
func (t *CachedTrack) Sequence() int        { return t.sequence }
func (t *CachedTrack) Service() string      { return t.service }
func (t *CachedTrack) ServiceID() string    { return t.serviceID }
func (t *CachedTrack) Info() TrackInfo      { return t.info }
func (t *CachedTrack) CreatedAt() time.Time { return t.createdAt }
func (t *CachedTrack) UpdatedAt() time.Time { return t.updatedAt }

// SetID assigns the database id; called by the repository on Create.
func (t *CachedTrack) SetID(id string) { t.id = id }

// SetSequence assigns the generated sequence number; called by the repository on Create.
func (t *CachedTrack) SetSequence(sequence int) { t.sequence = sequence }

// SetUpdatedAt stamps the entity on refresh.
func (t *CachedTrack) SetUpdatedAt(ts time.Time) { t.updatedAt = ts }

// Validate checks the invariants required before persisting.
func (t *CachedTrack) Validate() error {
	if t.id == "" {
		return fmt.Errorf("cached track missing id")
	}
	if t.service == "" || t.serviceID == "" {
		return fmt.Errorf("cached track missing service or service_id")
	}
	if t.info.Title == "" || t.info.Artist == "" {
		return fmt.Errorf("cached track missing title or artist")
	}
	return nil
}
