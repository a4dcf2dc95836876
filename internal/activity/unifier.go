// Package activity merges the five social event streams into one
// reverse-chronological feed.
package activity

import (
	"sort"
	"time"

	"github.com/perchlabs/perch-api/internal/models"
	"github.com/perchlabs/perch-api/internal/repositories"
)

const (
	// PerKindLimit caps how many recent rows of each event kind are
	// considered. A very prolific kind can push its own older entries out
	// of the window even when they would chronologically outrank entries
	// from quieter kinds; that approximation is part of the contract.
	PerKindLimit = 50

	// Limit caps the merged feed.
	Limit = 100
)

// Unifier assembles the unified activity feed from five independent
// per-kind fetches.
type Unifier struct {
	activityRepository repositories.ActivityRepository
}

// NewUnifier creates a new Unifier
func NewUnifier(activityRepo repositories.ActivityRepository) *Unifier {
	return &Unifier{activityRepository: activityRepo}
}

// Feed fetches the latest PerKindLimit entries of each kind, concatenates
// them, stable-sorts by timestamp descending and returns the newest Limit
// entries. Entries without a timestamp sort as oldest.
func (u *Unifier) Feed() ([]models.ActivityItem, error) {
	fetches := []func(int) ([]models.ActivityItem, error){
		u.activityRepository.RecentPostActivities,
		u.activityRepository.RecentLikeActivities,
		u.activityRepository.RecentCommentActivities,
		u.activityRepository.RecentRepostActivities,
		u.activityRepository.RecentFollowActivities,
	}

	merged := make([]models.ActivityItem, 0, len(fetches)*PerKindLimit)
	for _, fetch := range fetches {
		items, err := fetch(PerKindLimit)
		if err != nil {
			return nil, err
		}
		merged = append(merged, items...)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return timestamp(merged[i]).After(timestamp(merged[j]))
	})
	if len(merged) > Limit {
		merged = merged[:Limit]
	}
	return merged, nil
}

func timestamp(item models.ActivityItem) time.Time {
	if item.CreatedAt == nil {
		return time.Time{}
	}
	return *item.CreatedAt
}
