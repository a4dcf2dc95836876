package engagement

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScoreWeights(t *testing.T) {
	assert.Equal(t, 0.0, Score(0, 0, 0, 0))
	assert.Equal(t, 1.0, Score(1, 0, 0, 0))
	assert.Equal(t, 2.0, Score(0, 1, 0, 0))
	assert.Equal(t, 3.0, Score(0, 0, 1, 0))
	assert.Equal(t, 14.0, Score(3, 4, 1, 0))
}

func TestScoreLinearDecomposable(t *testing.T) {
	// Doubling the comment count moves the score by exactly 2 per added
	// comment, regardless of the other inputs.
	base := Score(7, 5, 2, 36.5)
	assert.InDelta(t, CommentWeight*5, Score(7, 10, 2, 36.5)-base, 1e-9)

	base = Score(0, 5, 0, 0)
	assert.InDelta(t, CommentWeight*5, Score(0, 10, 0, 0)-base, 1e-9)
}

func TestScoreLinearDecay(t *testing.T) {
	// One point lost per hour of age, no half-life.
	assert.Equal(t, -100.0, Score(0, 0, 0, 100))
	assert.Equal(t, -195.0, Score(5, 0, 0, 200))
}

func TestScoreWorkedExample(t *testing.T) {
	// Post A: fresh, zero engagement. Post B: 200 hours old, 5 likes.
	// A must outrank B.
	scoreA := Score(0, 0, 0, 0)
	scoreB := Score(5, 0, 0, 200)
	assert.Equal(t, 0.0, scoreA)
	assert.Equal(t, -195.0, scoreB)
	assert.Greater(t, scoreA, scoreB)
}

func TestScoreMonotonicDecay(t *testing.T) {
	now := time.Now()
	older := Score(2, 1, 1, AgeHours(now.Add(-10*time.Hour), now))
	newer := Score(2, 1, 1, AgeHours(now.Add(-2*time.Hour), now))
	assert.Greater(t, newer, older)
}

func TestAgeHours(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 0.0, AgeHours(now, now))
	assert.InDelta(t, 1.5, AgeHours(now.Add(-90*time.Minute), now), 1e-9)
	assert.InDelta(t, 200.0, AgeHours(now.Add(-200*time.Hour), now), 1e-9)

	// Future timestamps clamp to zero instead of granting bonus score.
	assert.Equal(t, 0.0, AgeHours(now.Add(3*time.Hour), now))
}
