package curriculum

import (
	"fmt"
	"sort"

	"github.com/earcraft/earcraft/internal/domain"
)

// Recommendation is a suggested challenge for a weak skill. Ephemeral,
// recomputed per request.
type Recommendation struct {
	ChallengeID string `json:"challenge_id"`
	Title       string `json:"title"`
	Module      string `json:"module"`
	Reason      string `json:"reason"`
	Priority    int    `json:"priority"` // 0-3, higher is more urgent
}

// DefaultMaxRecommendations caps a recommendation search.
const DefaultMaxRecommendations = 5

// practiceMoreThreshold is the looser cutoff PracticeMore applies to a
// single fresh breakdown. Deliberately lower than the dashboard's default
// weakness threshold of 80: one result below 80 is noise, below 70 it is
// worth acting on immediately.
const practiceMoreThreshold = 70.0

// Recommendations walks the weaknesses weakest-first, collecting unseen
// challenges from the modules that train each weak skill. A challenge
// already mastered at three stars is never recommended again. Results are
// capped at max, then ordered by priority descending; insertion order breaks
// priority ties, keeping the whole search deterministic.
func Recommendations(
	weaknesses []SkillScore,
	progress map[string]domain.ChallengeProgress,
	challenges []domain.Challenge,
	table Table,
	max int,
) []Recommendation {
	if max <= 0 {
		max = DefaultMaxRecommendations
	}

	seen := make(map[string]bool)
	var out []Recommendation
	for _, weakness := range weaknesses {
		modules := make(map[string]bool)
		for _, m := range table.ModulesFor(weakness.Skill) {
			modules[m] = true
		}
		if len(modules) == 0 {
			continue
		}

		for _, challenge := range challenges {
			if len(out) == max {
				break
			}
			if !modules[challenge.Module] || seen[challenge.ID] {
				continue
			}
			seen[challenge.ID] = true

			priority, ok := challengePriority(progress, challenge.ID)
			if !ok {
				continue
			}
			out = append(out, Recommendation{
				ChallengeID: challenge.ID,
				Title:       challenge.Title,
				Module:      challenge.Module,
				Reason:      fmt.Sprintf("Strengthen %s (currently %.0f)", weakness.Label, weakness.Score),
				Priority:    priority,
			})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority > out[j].Priority
	})
	return out
}

// challengePriority ranks how urgently a challenge is worth practicing.
// Never attempted or never passed outranks a one-star pass, which outranks
// two stars. Three stars means mastered: skip entirely.
func challengePriority(progress map[string]domain.ChallengeProgress, challengeID string) (int, bool) {
	p, attempted := progress[challengeID]
	switch {
	case !attempted || !p.Completed:
		return 3, true
	case p.Stars >= 3:
		return 0, false
	case p.Stars == 1:
		return 2, true
	default:
		return 1, true
	}
}

// PracticeMore turns one just-completed breakdown into immediate
// recommendations: any dimension under 70 becomes an ad-hoc weakness and is
// fed through the same search.
func PracticeMore(
	breakdown map[string]float64,
	progress map[string]domain.ChallengeProgress,
	challenges []domain.Challenge,
	table Table,
	max int,
) []Recommendation {
	var weaknesses []SkillScore
	for key, score := range breakdown {
		if score >= practiceMoreThreshold {
			continue
		}
		info := table.Info(Skill(key))
		weaknesses = append(weaknesses, SkillScore{
			Skill:       Skill(key),
			Label:       info.Label,
			Score:       score,
			SampleCount: 1,
			Track:       info.Track,
		})
	}
	sort.Slice(weaknesses, func(i, j int) bool {
		if weaknesses[i].Score != weaknesses[j].Score {
			return weaknesses[i].Score < weaknesses[j].Score
		}
		return weaknesses[i].Skill < weaknesses[j].Skill
	})
	return Recommendations(weaknesses, progress, challenges, table, max)
}
