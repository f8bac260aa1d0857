package tui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/earcraft/earcraft/internal/adapters/outbound/tui"
	"github.com/earcraft/earcraft/internal/domain"
	"github.com/earcraft/earcraft/internal/domain/curriculum"
)

func sampleChallenge() domain.Challenge {
	return domain.Challenge{
		ID: "sd-101", Title: "Square Lead", Module: "SD1",
		Track: domain.TrackSoundDesign, Kind: domain.KindSound,
	}
}

func sampleResult() domain.ScoreResult {
	return domain.ScoreResult{
		Overall: 87, Stars: 2, Passed: true,
		Breakdown: []domain.BreakdownEntry{
			{Name: "brightness", Score: 95},
			{Name: "filter", Score: 62, Feedback: "Open the filter cutoff"},
		},
		Feedback: []string{"Focus on this first: filter"},
	}
}

func TestRenderScoreCard_ContainsScoreAndTitle(t *testing.T) {
	output := tui.RenderScoreCard(sampleChallenge(), sampleResult(), domain.ChallengeProgress{BestScore: 87, Attempts: 2})
	assert.Contains(t, output, "87 / 100")
	assert.Contains(t, output, "Square Lead")
	assert.Contains(t, output, "★★☆")
}

func TestRenderScoreCard_ContainsBreakdownAndFeedback(t *testing.T) {
	output := tui.RenderScoreCard(sampleChallenge(), sampleResult(), domain.ChallengeProgress{})
	assert.Contains(t, output, "brightness")
	assert.Contains(t, output, "Open the filter cutoff")
	assert.Contains(t, output, "Focus on this first: filter")
	assert.Contains(t, output, "Challenge passed.")
}

func TestRenderScoreCard_FailedAttempt(t *testing.T) {
	result := sampleResult()
	result.Overall = 42
	result.Stars = 0
	result.Passed = false
	output := tui.RenderScoreCard(sampleChallenge(), result, domain.ChallengeProgress{})
	assert.Contains(t, output, "Not passed yet.")
	assert.Contains(t, output, "☆☆☆")
}

func TestRenderMixReport_ReferenceMode(t *testing.T) {
	result := domain.ProductionScoreResult{
		Overall: 91, Stars: 3, Passed: true, Mode: domain.ModeReference,
		LayerScores: []domain.LayerScore{
			{LayerID: "kick", Name: "Kick", Score: 95},
			{LayerID: "bass", Name: "Bass", Score: 88},
		},
		Feedback: []string{"Excellent balance!"},
	}
	output := tui.RenderMixReport(sampleChallenge(), result)
	assert.Contains(t, output, "91 / 100")
	assert.Contains(t, output, "Kick")
	assert.Contains(t, output, "Excellent balance!")
}

func TestRenderMixReport_GoalMode(t *testing.T) {
	result := domain.ProductionScoreResult{
		Overall: 50, Stars: 0, Passed: false, Mode: domain.ModeGoal,
		ConditionResults: []domain.ConditionResult{
			{Description: "kick louder than hat", Passed: true},
			{Description: "hat is audible", Passed: false},
		},
	}
	output := tui.RenderMixReport(sampleChallenge(), result)
	assert.Contains(t, output, "kick louder than hat")
	assert.Contains(t, output, "hat is audible")
	assert.Contains(t, output, "Not passed yet.")
}

func TestRenderSkills(t *testing.T) {
	skills := []curriculum.SkillScore{
		{Skill: "filter", Label: "Filter Control", Score: 58.5, SampleCount: 4, Track: domain.TrackSoundDesign},
		{Skill: "oscillator", Label: "Oscillator Setup", Score: 91, SampleCount: 4, Track: domain.TrackSoundDesign},
	}
	output := tui.RenderSkills(skills)
	assert.Contains(t, output, "Filter Control")
	assert.Contains(t, output, "4 samples")
}

func TestRenderSkills_Empty(t *testing.T) {
	output := tui.RenderSkills(nil)
	assert.Contains(t, output, "No skill data yet")
}

func TestRenderRecommendations(t *testing.T) {
	recs := []curriculum.Recommendation{
		{ChallengeID: "sd-201", Title: "Filter Sweep", Module: "SD2", Reason: "Practice Filter Control", Priority: 3},
	}
	output := tui.RenderRecommendations(recs)
	assert.Contains(t, output, "Filter Sweep")
	assert.Contains(t, output, "Practice Filter Control")
}

func TestRenderRecommendations_Empty(t *testing.T) {
	output := tui.RenderRecommendations(nil)
	assert.Contains(t, output, "Keep exploring")
}

func TestRenderProgress(t *testing.T) {
	catalog := &domain.Catalog{
		Pack:       "test",
		Challenges: []domain.Challenge{sampleChallenge()},
	}
	progress := map[string]domain.ChallengeProgress{
		"sd-101": {ChallengeID: "sd-101", BestScore: 87, Stars: 2, Attempts: 3, Completed: true},
	}
	output := tui.RenderProgress(catalog, progress)
	assert.Contains(t, output, "Square Lead")
	assert.Contains(t, output, "87/100")
	assert.Contains(t, output, "3 attempts")
}

func TestRenderProgress_Empty(t *testing.T) {
	output := tui.RenderProgress(&domain.Catalog{}, nil)
	assert.Contains(t, output, "No attempts recorded yet")
}

func TestRenderChallengeList(t *testing.T) {
	catalog := &domain.Catalog{
		Pack:       "synthesis-basics",
		Challenges: []domain.Challenge{sampleChallenge()},
	}
	output := tui.RenderChallengeList(catalog, map[string]domain.ChallengeProgress{
		"sd-101": {Completed: true, Stars: 3},
	})
	assert.Contains(t, output, "synthesis-basics")
	assert.Contains(t, output, "sd-101")
	assert.Contains(t, output, "★★★")
}
