package curriculum

import (
	"testing"

	"github.com/earcraft/earcraft/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() []domain.Challenge {
	return []domain.Challenge{
		{ID: "sd-101", Title: "First Patch", Module: "SD1"},
		{ID: "sd-102", Title: "Pluck", Module: "SD1"},
		{ID: "sd-201", Title: "Sweep", Module: "SD2"},
		{ID: "sd-202", Title: "Acid Line", Module: "SD2"},
		{ID: "mix-101", Title: "Balance Basics", Module: "MIX1"},
	}
}

func filterWeakness() SkillScore {
	return SkillScore{Skill: "filter", Label: "Filter Control", Score: 55, SampleCount: 3}
}

func TestRecommendations_FindsModuleChallenges(t *testing.T) {
	recs := Recommendations([]SkillScore{filterWeakness()}, nil, testCatalog(), DefaultTable(), 5)

	// filter trains in SD2 only.
	require.Len(t, recs, 2)
	assert.Equal(t, "sd-201", recs[0].ChallengeID)
	assert.Equal(t, "sd-202", recs[1].ChallengeID)
	assert.Contains(t, recs[0].Reason, "Filter Control")
}

func TestRecommendations_NeverAttemptedIsTopPriority(t *testing.T) {
	recs := Recommendations([]SkillScore{filterWeakness()}, nil, testCatalog(), DefaultTable(), 5)

	for _, r := range recs {
		assert.Equal(t, 3, r.Priority)
	}
}

func TestRecommendations_MasteredChallengesExcluded(t *testing.T) {
	progress := map[string]domain.ChallengeProgress{
		"sd-201": {Stars: 3, Completed: true, BestScore: 98},
	}

	recs := Recommendations([]SkillScore{filterWeakness()}, progress, testCatalog(), DefaultTable(), 5)

	for _, r := range recs {
		assert.NotEqual(t, "sd-201", r.ChallengeID)
	}
}

func TestRecommendations_PriorityLadder(t *testing.T) {
	progress := map[string]domain.ChallengeProgress{
		"sd-201": {Stars: 2, Completed: true}, // priority 1
		"sd-202": {Stars: 1, Completed: true}, // priority 2
	}

	recs := Recommendations([]SkillScore{filterWeakness()}, progress, testCatalog(), DefaultTable(), 5)

	require.Len(t, recs, 2)
	// Re-sorted by priority descending.
	assert.Equal(t, "sd-202", recs[0].ChallengeID)
	assert.Equal(t, 2, recs[0].Priority)
	assert.Equal(t, "sd-201", recs[1].ChallengeID)
	assert.Equal(t, 1, recs[1].Priority)
}

func TestRecommendations_IncompleteAttemptStillUrgent(t *testing.T) {
	progress := map[string]domain.ChallengeProgress{
		"sd-201": {Attempts: 4, BestScore: 40, Stars: 1, Completed: false},
	}

	recs := Recommendations([]SkillScore{filterWeakness()}, progress, testCatalog(), DefaultTable(), 5)

	require.NotEmpty(t, recs)
	assert.Equal(t, "sd-201", recs[0].ChallengeID)
	assert.Equal(t, 3, recs[0].Priority)
}

func TestRecommendations_CapRespected(t *testing.T) {
	weaknesses := []SkillScore{
		filterWeakness(),
		{Skill: "attack", Label: "Attack Shaping", Score: 50, SampleCount: 2},
		{Skill: "levels", Label: "Level Balance", Score: 60, SampleCount: 2},
	}

	recs := Recommendations(weaknesses, nil, testCatalog(), DefaultTable(), 2)

	assert.LessOrEqual(t, len(recs), 2)
}

func TestRecommendations_DedupedAcrossWeaknesses(t *testing.T) {
	// brightness and attack both train in SD1; sd-101/sd-102 must appear once.
	weaknesses := []SkillScore{
		{Skill: "attack", Label: "Attack Shaping", Score: 40, SampleCount: 2},
		{Skill: "brightness", Label: "Brightness Matching", Score: 50, SampleCount: 2},
	}

	recs := Recommendations(weaknesses, nil, testCatalog(), DefaultTable(), 10)

	ids := make(map[string]int)
	for _, r := range recs {
		ids[r.ChallengeID]++
	}
	for id, n := range ids {
		assert.Equal(t, 1, n, "challenge %s recommended more than once", id)
	}
}

func TestRecommendations_Deterministic(t *testing.T) {
	weaknesses := []SkillScore{filterWeakness(), {Skill: "attack", Label: "Attack Shaping", Score: 60, SampleCount: 2}}
	progress := map[string]domain.ChallengeProgress{"sd-101": {Stars: 1, Completed: true}}

	first := Recommendations(weaknesses, progress, testCatalog(), DefaultTable(), 5)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Recommendations(weaknesses, progress, testCatalog(), DefaultTable(), 5))
	}
}

func TestPracticeMore_UsesSeventyCutoff(t *testing.T) {
	breakdown := map[string]float64{
		"filter": 69, // weak under the practice-more rule
		"attack": 75, // fine here, though the dashboard's 80 would flag it
	}

	recs := PracticeMore(breakdown, nil, testCatalog(), DefaultTable(), 5)

	require.NotEmpty(t, recs)
	for _, r := range recs {
		assert.Contains(t, r.Reason, "Filter Control")
	}
}

func TestPracticeMore_NothingWeakNoRecommendations(t *testing.T) {
	breakdown := map[string]float64{"filter": 90, "attack": 85}

	assert.Empty(t, PracticeMore(breakdown, nil, testCatalog(), DefaultTable(), 5))
}
