// Package engagement computes the post ranking score: a weighted sum of
// live like/comment/repost counts minus a linear age penalty of one point
// per hour.
package engagement

import "time"

// Engagement weights. A repost counts for more than a comment, a comment
// for more than a like.
const (
	LikeWeight    = 1.0
	CommentWeight = 2.0
	RepostWeight  = 3.0
)

// AgeHours returns the fractional age of createdAt relative to now, in
// hours. Future timestamps clamp to zero so a clock-skewed row cannot buy
// rank.
func AgeHours(createdAt, now time.Time) float64 {
	hours := now.Sub(createdAt).Hours()
	if hours < 0 {
		return 0
	}
	return hours
}

// Score ranks a post. There is no clamping and no half-life: decay is
// strictly linear, so a fresh unengaged post scores 0, a 100-hour-old
// unengaged post scores -100, and an engaged post can go negative yet still
// rank below a newer, less engaged one.
func Score(likes, comments, reposts int64, ageHours float64) float64 {
	return float64(likes)*LikeWeight +
		float64(comments)*CommentWeight +
		float64(reposts)*RepostWeight -
		ageHours
}
