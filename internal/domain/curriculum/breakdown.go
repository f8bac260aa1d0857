package curriculum

import "github.com/earcraft/earcraft/internal/domain"

// The extractors project track-specific results into the common skill map
// consumed by ComputeSkillScores. A missing dimension is omitted from the
// map, never written as 0: omission means "no evidence", 0 means "measured
// and bad", and the weakness detector must be able to tell them apart.

func entryScores(r domain.ScoreResult) map[string]float64 {
	out := make(map[string]float64, len(r.Breakdown))
	for _, e := range r.Breakdown {
		out[e.Name] = float64(e.Score)
	}
	return out
}

// ExtractSoundDesign projects a subtractive-track result. Breakdown names
// are already skill keys for this track.
func ExtractSoundDesign(r domain.ScoreResult) map[string]float64 {
	return entryScores(r)
}

// ExtractFM projects an FM-track result. The comparison scorer reuses the
// generic breakdown shape under FM semantics, so the attack slot really
// measures carrier/modulator harmonicity and the filter slot measures
// modulation depth; both are relabeled here.
func ExtractFM(r domain.ScoreResult) map[string]float64 {
	scores := entryScores(r)
	out := make(map[string]float64, len(scores))
	for name, score := range scores {
		switch name {
		case "attack":
			out["harmonicity"] = score
		case "filter":
			out["modulation"] = score
		case "oscillator", "amplitude":
			// Carrier setup and amp envelope read the same on every track.
			out[name] = score
		default:
			out[name] = score
		}
	}
	return out
}

// ExtractAdditive projects an additive-track result. The spectrum slot
// measures harmonic balance and the oscillator slot partial shaping.
func ExtractAdditive(r domain.ScoreResult) map[string]float64 {
	scores := entryScores(r)
	out := make(map[string]float64, len(scores))
	for name, score := range scores {
		switch name {
		case "spectrum":
			out["harmonics"] = score
		case "oscillator":
			out["partials"] = score
		default:
			out[name] = score
		}
	}
	return out
}

// ExtractMixing projects a mixing-track mix result: layer scores average
// into "levels", condition outcomes into a "conditions" percentage.
func ExtractMixing(r domain.ProductionScoreResult) map[string]float64 {
	out := make(map[string]float64, 2)
	if mean, ok := meanLayerScore(r.LayerScores); ok {
		out["levels"] = mean
	}
	if pct, ok := conditionPercentage(r.ConditionResults); ok {
		out["conditions"] = pct
	}
	return out
}

// ExtractProduction projects a production-track mix result: the layer mean
// lands on "balance"; goal outcomes share the "conditions" skill with the
// mixing track.
func ExtractProduction(r domain.ProductionScoreResult) map[string]float64 {
	out := make(map[string]float64, 2)
	if mean, ok := meanLayerScore(r.LayerScores); ok {
		out["balance"] = mean
	}
	if pct, ok := conditionPercentage(r.ConditionResults); ok {
		out["conditions"] = pct
	}
	return out
}

func meanLayerScore(layers []domain.LayerScore) (float64, bool) {
	if len(layers) == 0 {
		return 0, false
	}
	var sum float64
	for _, l := range layers {
		sum += float64(l.Score)
	}
	return sum / float64(len(layers)), true
}

func conditionPercentage(results []domain.ConditionResult) (float64, bool) {
	if len(results) == 0 {
		return 0, false
	}
	passed := 0
	for _, c := range results {
		if c.Passed {
			passed++
		}
	}
	return float64(passed) / float64(len(results)) * 100, true
}

// SamplingResult is the sampling station's score shape. Nil fields mean the
// dimension was not exercised by the challenge.
type SamplingResult struct {
	Chop       *float64 `json:"chop,omitempty"`
	PitchMatch *float64 `json:"pitch_match,omitempty"`
	LoopTiming *float64 `json:"loop_timing,omitempty"`
}

// ExtractSampling projects a sampling-track result.
func ExtractSampling(r SamplingResult) map[string]float64 {
	out := make(map[string]float64, 3)
	putOptional(out, "chop", r.Chop)
	putOptional(out, "pitchMatch", r.PitchMatch)
	putOptional(out, "loopTiming", r.LoopTiming)
	return out
}

// DrumResult is the drum sequencer's score shape.
type DrumResult struct {
	Pattern  *float64 `json:"pattern,omitempty"`
	Velocity *float64 `json:"velocity,omitempty"`
	Swing    *float64 `json:"swing,omitempty"`
}

// ExtractDrums projects a drum-track result.
func ExtractDrums(r DrumResult) map[string]float64 {
	out := make(map[string]float64, 3)
	putOptional(out, "pattern", r.Pattern)
	putOptional(out, "velocity", r.Velocity)
	putOptional(out, "swing", r.Swing)
	return out
}

func putOptional(m map[string]float64, key string, v *float64) {
	if v != nil {
		m[key] = *v
	}
}

// ExtractForTrack dispatches a sound-comparison result to the right
// projection for its track.
func ExtractForTrack(track domain.Track, r domain.ScoreResult) map[string]float64 {
	switch track {
	case domain.TrackFM:
		return ExtractFM(r)
	case domain.TrackAdditive:
		return ExtractAdditive(r)
	default:
		return ExtractSoundDesign(r)
	}
}

// ExtractForMixTrack dispatches a mix result by track.
func ExtractForMixTrack(track domain.Track, r domain.ProductionScoreResult) map[string]float64 {
	if track == domain.TrackProduction {
		return ExtractProduction(r)
	}
	return ExtractMixing(r)
}
