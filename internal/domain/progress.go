package domain

// ChallengeProgress is the persisted per-challenge record. Created on first
// submission; this engine updates it but never deletes it.
type ChallengeProgress struct {
	ChallengeID string             `json:"challenge_id"`
	BestScore   int                `json:"best_score"`
	Stars       int                `json:"stars"`
	Attempts    int                `json:"attempts"`
	Completed   bool               `json:"completed"`
	Breakdown   map[string]float64 `json:"breakdown,omitempty"`
	PackVersion string             `json:"pack_version,omitempty"`
	UpdatedAt   string             `json:"updated_at,omitempty"`
}

// Apply folds one attempt into the record: best wins, completion is sticky,
// attempts always count. The skill breakdown snapshot follows the best score
// so the skill model aggregates each learner's strongest evidence.
func (p ChallengeProgress) Apply(overall, stars int, breakdown map[string]float64) ChallengeProgress {
	p.Attempts++
	if overall > p.BestScore || p.Attempts == 1 {
		p.BestScore = overall
		if len(breakdown) > 0 {
			p.Breakdown = breakdown
		}
	}
	if stars > p.Stars {
		p.Stars = stars
	}
	if overall >= PassThreshold {
		p.Completed = true
	}
	return p
}
