package domain

import "math"

// Track identifies which instrument of the trainer produced a result.
type Track string

const (
	TrackSoundDesign Track = "sound_design"
	TrackFM          Track = "fm"
	TrackAdditive    Track = "additive"
	TrackMixing      Track = "mixing"
	TrackProduction  Track = "production"
	TrackSampling    Track = "sampling"
	TrackDrums       Track = "drums"
)

// Pass and star thresholds. Sound challenges use 95/80; mix challenges use
// the looser 90/75 cutoffs. Both pass at 60.
const (
	PassThreshold      = 60
	ThreeStarThreshold = 95
	TwoStarThreshold   = 80
	MixThreeStarCutoff = 90
	MixTwoStarCutoff   = 75
)

// BreakdownEntry is one evaluated dimension of a score: a named sub-score in
// [0,100] plus the feedback sentence generated for it.
type BreakdownEntry struct {
	Name     string `json:"name"`
	Score    int    `json:"score"`
	Feedback string `json:"feedback,omitempty"`
}

// ScoreResult is the outcome of grading a single sound challenge attempt.
// Overall is always clamped to [0,100]; Stars and Passed are derived from it.
type ScoreResult struct {
	Overall   int              `json:"overall"`
	Stars     int              `json:"stars"`
	Passed    bool             `json:"passed"`
	Breakdown []BreakdownEntry `json:"breakdown"`
	Feedback  []string         `json:"feedback,omitempty"`
}

// StarsFor maps an overall score to 1-3 stars for sound challenges.
func StarsFor(overall int) int {
	switch {
	case overall >= ThreeStarThreshold:
		return 3
	case overall >= TwoStarThreshold:
		return 2
	default:
		return 1
	}
}

// MixStarsFor maps an overall score to 1-3 stars for mix challenges.
func MixStarsFor(overall int) int {
	switch {
	case overall >= MixThreeStarCutoff:
		return 3
	case overall >= MixTwoStarCutoff:
		return 2
	default:
		return 1
	}
}

// ClampScore rounds a raw score to the nearest point and clamps it to [0,100].
func ClampScore(raw float64) int {
	v := int(math.Round(raw))
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// LayerScore is the per-layer outcome of a reference-mode mix evaluation.
type LayerScore struct {
	LayerID string `json:"layer_id"`
	Name    string `json:"name"`
	Score   int    `json:"score"`
}

// ConditionResult is the per-condition outcome of a goal-mode mix evaluation.
type ConditionResult struct {
	Description string `json:"description"`
	Passed      bool   `json:"passed"`
}

// Evaluation modes for ProductionScoreResult.
const (
	ModeReference = "reference"
	ModeGoal      = "goal"
)

// ProductionScoreResult is the outcome of evaluating a mix submission.
// Exactly one of LayerScores (reference mode) or ConditionResults (goal mode)
// is populated; Mode discriminates.
type ProductionScoreResult struct {
	Overall          int               `json:"overall"`
	Stars            int               `json:"stars"`
	Passed           bool              `json:"passed"`
	Mode             string            `json:"mode"`
	LayerScores      []LayerScore      `json:"layer_scores,omitempty"`
	ConditionResults []ConditionResult `json:"condition_results,omitempty"`
	Feedback         []string          `json:"feedback,omitempty"`
}
