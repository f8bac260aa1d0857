package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressApply_FirstAttempt(t *testing.T) {
	p := ChallengeProgress{ChallengeID: "sd-101"}

	p = p.Apply(72, 1, map[string]float64{"brightness": 80})

	assert.Equal(t, 72, p.BestScore)
	assert.Equal(t, 1, p.Stars)
	assert.Equal(t, 1, p.Attempts)
	assert.True(t, p.Completed)
	assert.Equal(t, 80.0, p.Breakdown["brightness"])
}

func TestProgressApply_BestWins(t *testing.T) {
	p := ChallengeProgress{ChallengeID: "sd-101"}
	p = p.Apply(85, 2, map[string]float64{"brightness": 90})
	p = p.Apply(60, 1, map[string]float64{"brightness": 40})

	assert.Equal(t, 85, p.BestScore)
	assert.Equal(t, 2, p.Stars)
	assert.Equal(t, 2, p.Attempts)
	// Breakdown snapshot follows the best attempt, not the latest.
	assert.Equal(t, 90.0, p.Breakdown["brightness"])
}

func TestProgressApply_CompletionSticky(t *testing.T) {
	p := ChallengeProgress{ChallengeID: "sd-101"}
	p = p.Apply(70, 1, nil)
	p = p.Apply(20, 1, nil)

	assert.True(t, p.Completed)
}

func TestProgressApply_FailingFirstAttemptNotCompleted(t *testing.T) {
	p := ChallengeProgress{}.Apply(30, 1, nil)

	assert.False(t, p.Completed)
	assert.Equal(t, 30, p.BestScore)
}
