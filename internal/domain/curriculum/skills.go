package curriculum

import (
	"sort"

	"github.com/earcraft/earcraft/internal/domain"
)

// SkillScore is one aggregated competency, recomputed on demand from the
// breakdown snapshots of all progress records. Never persisted.
type SkillScore struct {
	Skill       Skill        `json:"skill"`
	Label       string       `json:"label"`
	Score       float64      `json:"score"`
	SampleCount int          `json:"sample_count"`
	Track       domain.Track `json:"track"`
}

// ComputeSkillScores aggregates every progress record's breakdown into
// per-skill means and returns them weakest first. Skills with zero samples
// are omitted entirely. Ties sort by skill key so the output is
// deterministic for a given progress map.
func ComputeSkillScores(progress map[string]domain.ChallengeProgress, table Table) []SkillScore {
	sums := make(map[Skill]float64)
	counts := make(map[Skill]int)
	for _, p := range progress {
		for key, score := range p.Breakdown {
			sums[Skill(key)] += score
			counts[Skill(key)]++
		}
	}

	out := make([]SkillScore, 0, len(sums))
	for skill, count := range counts {
		info := table.Info(skill)
		out = append(out, SkillScore{
			Skill:       skill,
			Label:       info.Label,
			Score:       sums[skill] / float64(count),
			SampleCount: count,
			Track:       info.Track,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score < out[j].Score
		}
		return out[i].Skill < out[j].Skill
	})
	return out
}

// WeaknessOptions tune weakness detection.
type WeaknessOptions struct {
	MinSamples int
	MaxResults int
	Threshold  float64
}

// DefaultWeaknessOptions are the dashboard defaults: at least two samples so
// one bad attempt is not a verdict, scores under 80, top three.
func DefaultWeaknessOptions() WeaknessOptions {
	return WeaknessOptions{MinSamples: 2, MaxResults: 3, Threshold: 80}
}

// Weaknesses filters an already weakest-first skill list down to the skills
// worth flagging, preserving input order.
func Weaknesses(skills []SkillScore, opts WeaknessOptions) []SkillScore {
	var out []SkillScore
	for _, s := range skills {
		if s.SampleCount >= opts.MinSamples && s.Score < opts.Threshold {
			out = append(out, s)
			if len(out) == opts.MaxResults {
				break
			}
		}
	}
	return out
}
