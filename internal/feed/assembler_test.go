package feed

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perchlabs/perch-api/internal/models"
)

type stubPostRepository struct {
	global   []models.FeedPost
	byAgent  map[uint][]models.FeedPost
	followed map[uint][]models.FeedPost
	err      error
}

func (s *stubPostRepository) CreatePost(*models.Post) error { return nil }

func (s *stubPostRepository) GetGlobalEngagement() ([]models.FeedPost, error) {
	return s.global, s.err
}

func (s *stubPostRepository) GetAgentEngagement(agentID uint) ([]models.FeedPost, error) {
	return s.byAgent[agentID], s.err
}

func (s *stubPostRepository) GetFollowedEngagement(followerID uint) ([]models.FeedPost, error) {
	return s.followed[followerID], s.err
}

func newTestAssembler(repo *stubPostRepository, now time.Time) *Assembler {
	a := NewAssembler(repo)
	a.now = func() time.Time { return now }
	return a
}

func TestGlobalFeedOrdersByScore(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	repo := &stubPostRepository{global: []models.FeedPost{
		// score 5 - 200 = -195
		{ID: 1, CreatedAt: now.Add(-200 * time.Hour), LikesCount: 5},
		// score 0
		{ID: 2, CreatedAt: now},
		// score 1 + 4 + 3 - 1 = 7
		{ID: 3, CreatedAt: now.Add(-time.Hour), LikesCount: 1, CommentsCount: 2, RepostsCount: 1},
	}}

	posts, err := newTestAssembler(repo, now).GlobalFeed()
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, uint(3), posts[0].ID)
	assert.Equal(t, uint(2), posts[1].ID)
	assert.Equal(t, uint(1), posts[2].ID)
}

func TestGlobalFeedTieBreaksNewerFirst(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	repo := &stubPostRepository{global: []models.FeedPost{
		// 1 like, 1 hour old: score 0
		{ID: 1, CreatedAt: now.Add(-time.Hour), LikesCount: 1},
		// fresh, no engagement: score 0, but newer created_at
		{ID: 2, CreatedAt: now},
	}}

	posts, err := newTestAssembler(repo, now).GlobalFeed()
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, uint(2), posts[0].ID)
	assert.Equal(t, uint(1), posts[1].ID)
}

func TestGlobalFeedKeepsZeroEngagementPosts(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	repo := &stubPostRepository{global: []models.FeedPost{
		{ID: 1, CreatedAt: now.Add(-3 * time.Hour)},
	}}

	posts, err := newTestAssembler(repo, now).GlobalFeed()
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, int64(0), posts[0].LikesCount)
	assert.Equal(t, int64(0), posts[0].CommentsCount)
	assert.Equal(t, int64(0), posts[0].RepostsCount)
}

func TestGlobalFeedTruncatesToLimit(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	repo := &stubPostRepository{}
	for i := 0; i < Limit+20; i++ {
		repo.global = append(repo.global, models.FeedPost{
			ID:        uint(i + 1),
			CreatedAt: now.Add(-time.Duration(i) * time.Minute),
		})
	}

	posts, err := newTestAssembler(repo, now).GlobalFeed()
	require.NoError(t, err)
	require.Len(t, posts, Limit)
	// All zero-engagement, so ranking reduces to pure recency.
	assert.Equal(t, uint(1), posts[0].ID)
	assert.Equal(t, uint(Limit), posts[Limit-1].ID)
}

func TestGlobalFeedEmptyIsNotNil(t *testing.T) {
	posts, err := newTestAssembler(&stubPostRepository{}, time.Now()).GlobalFeed()
	require.NoError(t, err)
	assert.NotNil(t, posts)
	assert.Empty(t, posts)
}

func TestGlobalFeedPropagatesStoreError(t *testing.T) {
	repo := &stubPostRepository{err: errors.New("connection refused")}
	posts, err := newTestAssembler(repo, time.Now()).GlobalFeed()
	assert.Error(t, err)
	assert.Nil(t, posts)
}

func TestAgentTimelineSharesRankingContract(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	repo := &stubPostRepository{byAgent: map[uint][]models.FeedPost{
		7: {
			{ID: 1, AgentID: 7, CreatedAt: now.Add(-50 * time.Hour)},
			{ID: 2, AgentID: 7, CreatedAt: now.Add(-49 * time.Hour), RepostsCount: 20},
		},
	}}

	posts, err := newTestAssembler(repo, now).AgentTimeline(7)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, uint(2), posts[0].ID)
}

func TestFollowingFeedUsesFollowedSet(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	repo := &stubPostRepository{followed: map[uint][]models.FeedPost{
		3: {{ID: 9, AgentID: 4, CreatedAt: now}},
	}}

	a := newTestAssembler(repo, now)

	posts, err := a.FollowingFeed(3)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, uint(9), posts[0].ID)

	posts, err = a.FollowingFeed(4)
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestRankScoresAgainstSingleNow(t *testing.T) {
	// Equal engagement at hour-spaced ages must come back strictly newest
	// first (monotonic decay).
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	repo := &stubPostRepository{}
	for i := 0; i < 5; i++ {
		repo.global = append(repo.global, models.FeedPost{
			ID:         uint(i + 1),
			CreatedAt:  now.Add(-time.Duration(i) * time.Hour),
			LikesCount: 4,
		})
	}

	posts, err := newTestAssembler(repo, now).GlobalFeed()
	require.NoError(t, err)
	for i := 1; i < len(posts); i++ {
		assert.True(t, posts[i-1].CreatedAt.After(posts[i].CreatedAt),
			fmt.Sprintf("post %d should rank above post %d", posts[i-1].ID, posts[i].ID))
	}
}
