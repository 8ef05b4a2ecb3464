package service

import (
	"context"
	"fmt"
	"time"

	"saker/internal/store"
	"saker/internal/strava"
)

// SyncService orchestrates syncing cardio activities from Strava
type SyncService struct {
	client *strava.Client
	store  *store.DB
}

// NewSyncService creates a new sync service
func NewSyncService(client *strava.Client, store *store.DB) *SyncService {
	return &SyncService{client: client, store: store}
}

// SyncProgress reports progress during sync
type SyncProgress struct {
	Total           int
	Completed       int
	CurrentActivity string
}

// SyncResult contains the results of a sync operation
type SyncResult struct {
	ActivitiesFetched int
	ActivitiesStored  int
	StrengthSkipped   int
	Errors            []error
}

// Sync fetches activities newer than the last synced one and stores
// the cardio rows. Strength-type activities from Strava are skipped;
// lifting detail comes from the Hevy import instead. Progress is
// reported on the channel when one is given; it is closed on return.
func (s *SyncService) Sync(ctx context.Context, progress chan<- SyncProgress) (*SyncResult, error) {
	if progress != nil {
		defer close(progress)
	}

	result := &SyncResult{}
	after := s.lastSync()

	activities, err := s.client.GetAllActivities(ctx, after, func(fetched int) {
		if progress != nil {
			progress <- SyncProgress{Total: fetched}
		}
	})
	if err != nil {
		return result, fmt.Errorf("fetching activities: %w", err)
	}
	result.ActivitiesFetched = len(activities)

	for i := range activities {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		a := &activities[i]
		if strava.IsStrength(a) {
			result.StrengthSkipped++
			continue
		}
		cardio, ok := strava.Normalize(a)
		if !ok {
			continue
		}
		if err := s.store.UpsertCardioActivity(&cardio); err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("storing activity %d: %w", a.ID, err))
			continue
		}
		result.ActivitiesStored++

		if progress != nil {
			progress <- SyncProgress{
				Total:           result.ActivitiesFetched,
				Completed:       result.ActivitiesStored,
				CurrentActivity: a.Name,
			}
		}
	}

	if err := s.store.SetLastActivitySync(time.Now()); err != nil {
		result.Errors = append(result.Errors, fmt.Errorf("recording sync time: %w", err))
	}

	return result, nil
}

// lastSync resolves the fetch cutoff: the stored sync timestamp when
// present, otherwise the newest Strava activity already in the
// database. A zero time means fetch everything.
func (s *SyncService) lastSync() time.Time {
	if t, err := s.store.LastActivitySync(); err == nil && !t.IsZero() {
		return t
	}
	latest, err := s.store.LatestCardioStart(store.SourceStrava)
	if err != nil {
		return time.Time{}
	}
	return latest
}

// RateLimitStatus returns the current rate limit status from the client
func (s *SyncService) RateLimitStatus() (shortRemaining, dailyRemaining int) {
	return s.client.RateLimitStatus()
}
