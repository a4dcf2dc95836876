package activity

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perchlabs/perch-api/internal/models"
)

type stubActivityRepository struct {
	posts    []models.ActivityItem
	likes    []models.ActivityItem
	comments []models.ActivityItem
	reposts  []models.ActivityItem
	follows  []models.ActivityItem
	limits   []int
	err      error
}

func (s *stubActivityRepository) RecentPostActivities(limit int) ([]models.ActivityItem, error) {
	s.limits = append(s.limits, limit)
	return capped(s.posts, limit), s.err
}

func (s *stubActivityRepository) RecentLikeActivities(limit int) ([]models.ActivityItem, error) {
	s.limits = append(s.limits, limit)
	return capped(s.likes, limit), s.err
}

func (s *stubActivityRepository) RecentCommentActivities(limit int) ([]models.ActivityItem, error) {
	s.limits = append(s.limits, limit)
	return capped(s.comments, limit), s.err
}

func (s *stubActivityRepository) RecentRepostActivities(limit int) ([]models.ActivityItem, error) {
	s.limits = append(s.limits, limit)
	return capped(s.reposts, limit), s.err
}

func (s *stubActivityRepository) RecentFollowActivities(limit int) ([]models.ActivityItem, error) {
	s.limits = append(s.limits, limit)
	return capped(s.follows, limit), s.err
}

func capped(items []models.ActivityItem, limit int) []models.ActivityItem {
	if len(items) > limit {
		return items[:limit]
	}
	return items
}

func item(kind string, id uint, at time.Time) models.ActivityItem {
	return models.ActivityItem{ID: id, ActivityType: kind, CreatedAt: &at}
}

func TestFeedMergesAllKinds(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	repo := &stubActivityRepository{
		posts: []models.ActivityItem{
			item(models.ActivityPost, 1, base.Add(6*time.Minute)),
			item(models.ActivityPost, 2, base.Add(4*time.Minute)),
			item(models.ActivityPost, 3, base.Add(1*time.Minute)),
		},
		likes: []models.ActivityItem{
			item(models.ActivityLike, 1, base.Add(5*time.Minute)),
			item(models.ActivityLike, 2, base.Add(2*time.Minute)),
		},
		comments: []models.ActivityItem{
			item(models.ActivityComment, 1, base.Add(3*time.Minute)),
		},
		follows: []models.ActivityItem{
			item(models.ActivityFollow, 1, base.Add(7*time.Minute)),
		},
	}

	items, err := NewUnifier(repo).Feed()
	require.NoError(t, err)
	require.Len(t, items, 7)

	kinds := make([]string, len(items))
	for i, it := range items {
		kinds[i] = it.ActivityType
		if i > 0 {
			assert.False(t, items[i-1].CreatedAt.Before(*it.CreatedAt),
				"entries must be sorted newest first")
		}
	}
	assert.Equal(t, []string{
		models.ActivityFollow,
		models.ActivityPost,
		models.ActivityLike,
		models.ActivityPost,
		models.ActivityComment,
		models.ActivityLike,
		models.ActivityPost,
	}, kinds)
}

func TestFeedUsesPerKindLimit(t *testing.T) {
	repo := &stubActivityRepository{}
	_, err := NewUnifier(repo).Feed()
	require.NoError(t, err)
	require.Len(t, repo.limits, 5)
	for _, limit := range repo.limits {
		assert.Equal(t, PerKindLimit, limit)
	}
}

func TestFeedTruncatesToLimit(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	repo := &stubActivityRepository{}
	for i := 0; i < PerKindLimit; i++ {
		repo.posts = append(repo.posts, item(models.ActivityPost, uint(i+1), base.Add(-time.Duration(i)*time.Second)))
		repo.likes = append(repo.likes, item(models.ActivityLike, uint(i+1), base.Add(-time.Duration(i)*time.Second)))
		repo.comments = append(repo.comments, item(models.ActivityComment, uint(i+1), base.Add(-time.Duration(i)*time.Second)))
	}

	items, err := NewUnifier(repo).Feed()
	require.NoError(t, err)
	assert.Len(t, items, Limit)
}

func TestFeedNilTimestampsSortOldest(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	repo := &stubActivityRepository{
		posts: []models.ActivityItem{
			item(models.ActivityPost, 1, base),
		},
		comments: []models.ActivityItem{
			{ID: 1, ActivityType: models.ActivityComment, CreatedAt: nil},
		},
	}

	items, err := NewUnifier(repo).Feed()
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, models.ActivityPost, items[0].ActivityType)
	assert.Equal(t, models.ActivityComment, items[1].ActivityType)
}

func TestFeedPropagatesStoreError(t *testing.T) {
	repo := &stubActivityRepository{err: errors.New("query timeout")}
	items, err := NewUnifier(repo).Feed()
	assert.Error(t, err)
	assert.Nil(t, items)
}
