package repositories

import (
	"fmt"
	"strings"

	"github.com/desertthunder/trackbridge/internal/models"
)

// TrackCacheAdapter implements converter.TrackCache using TrackRepository.
//
// Provides metadata caching with deduplication via the (service, service_id)
// constraint; duplicate writes from concurrent requests are silently ignored.
type TrackCacheAdapter struct {
	repo *TrackRepository
}

// NewTrackCacheAdapter creates a new TrackCacheAdapter with the given repository
func NewTrackCacheAdapter(repo *TrackRepository) *TrackCacheAdapter {
	return &TrackCacheAdapter{repo: repo}
}

// Get returns cached metadata for a catalog id, or (nil, nil) on a miss.
func (a *TrackCacheAdapter) Get(service, serviceID string) (*models.TrackInfo, error) {
	track, err := a.repo.GetByServiceID(service, serviceID)
	if err != nil {
		return nil, err
	}
	if track == nil {
		return nil, nil
	}

	info := track.Info()
	return &info, nil
}

// Put caches metadata for a catalog id.
// Returns nil if the track is already cached (deduplication).
func (a *TrackCacheAdapter) Put(service, serviceID string, info models.TrackInfo) error {
	existing, err := a.repo.GetByServiceID(service, serviceID)
	if err == nil && existing != nil {
		return nil
	}

	track := models.NewCachedTrack(0, service, serviceID, info)

	if err := a.repo.Create(track); err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint") {
			return nil
		}
		return fmt.Errorf("failed to cache track: %w", err)
	}

	return nil
}
