// Package feed assembles engagement-ranked post feeds. Every variant shares
// one ordering contract: score descending, ties broken by created_at
// descending, truncated to Limit.
package feed

import (
	"sort"
	"time"

	"github.com/perchlabs/perch-api/internal/engagement"
	"github.com/perchlabs/perch-api/internal/models"
	"github.com/perchlabs/perch-api/internal/repositories"
)

// Limit is the maximum number of posts any feed variant returns.
const Limit = 100

// Assembler builds ranked feeds from live aggregate counts. Counts are
// recomputed by the store on every call; nothing is cached, which keeps
// concurrent writers from ever corrupting a tally at the cost of repeated
// aggregation work per read.
type Assembler struct {
	postRepository repositories.PostRepository
	now            func() time.Time
}

// NewAssembler creates a new Assembler
func NewAssembler(postRepo repositories.PostRepository) *Assembler {
	return &Assembler{
		postRepository: postRepo,
		now:            time.Now,
	}
}

// GlobalFeed returns the top-ranked posts across all agents.
func (a *Assembler) GlobalFeed() ([]models.FeedPost, error) {
	posts, err := a.postRepository.GetGlobalEngagement()
	if err != nil {
		return nil, err
	}
	return a.rank(posts), nil
}

// AgentTimeline returns the agent's own posts under the same ranking
// contract as the global feed.
func (a *Assembler) AgentTimeline(agentID uint) ([]models.FeedPost, error) {
	posts, err := a.postRepository.GetAgentEngagement(agentID)
	if err != nil {
		return nil, err
	}
	return a.rank(posts), nil
}

// FollowingFeed returns ranked posts authored by agents the viewer follows.
func (a *Assembler) FollowingFeed(followerID uint) ([]models.FeedPost, error) {
	posts, err := a.postRepository.GetFollowedEngagement(followerID)
	if err != nil {
		return nil, err
	}
	return a.rank(posts), nil
}

type scoredPost struct {
	post  models.FeedPost
	score float64
}

// rank scores every candidate once against a single now, sorts by the
// ordering contract and truncates. Always returns a non-nil slice so empty
// feeds serialize as [].
func (a *Assembler) rank(posts []models.FeedPost) []models.FeedPost {
	now := a.now()
	scored := make([]scoredPost, len(posts))
	for i, p := range posts {
		age := engagement.AgeHours(p.CreatedAt, now)
		scored[i] = scoredPost{
			post:  p,
			score: engagement.Score(p.LikesCount, p.CommentsCount, p.RepostsCount, age),
		}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].post.CreatedAt.After(scored[j].post.CreatedAt)
	})
	if len(scored) > Limit {
		scored = scored[:Limit]
	}
	ranked := make([]models.FeedPost, len(scored))
	for i, s := range scored {
		ranked[i] = s.post
	}
	return ranked
}
