package scoring

import (
	"fmt"
	"math"

	"github.com/earcraft/earcraft/internal/domain"
)

// Tolerances for reference-mode layer comparison.
const (
	volumeToleranceDB = 3.0
	panTolerance      = 0.2
	eqToleranceDB     = 2.0
)

// Per-layer feedback thresholds for reference mode.
const (
	layerCloseCutoff = 85
	layerAdjustCutoff = 60
)

// EvaluateProduction grades a mix submission against its challenge. The
// target type selects the mode: per-layer proximity to a reference mix, or a
// declarative goal-condition set over the live layer states.
func EvaluateProduction(challenge domain.ProductionChallenge, layers []domain.LayerState) domain.ProductionScoreResult {
	if challenge.Target.Type == domain.TargetGoal {
		return evaluateGoal(challenge.Target.Conditions, layers)
	}
	return evaluateReference(challenge, layers)
}

func evaluateReference(challenge domain.ProductionChallenge, layers []domain.LayerState) domain.ProductionScoreResult {
	n := len(layers)
	if len(challenge.Target.Layers) < n {
		n = len(challenge.Target.Layers)
	}

	result := domain.ProductionScoreResult{Mode: domain.ModeReference}
	var total float64
	var detail []string
	for i := 0; i < n; i++ {
		layer := layers[i].Clamped()
		score := scoreLayer(layer, challenge.Target.Layers[i], challenge.AvailableControls)
		total += score

		name := layer.Name
		if name == "" {
			name = layer.ID
		}
		clamped := domain.ClampScore(score)
		result.LayerScores = append(result.LayerScores, domain.LayerScore{
			LayerID: layer.ID,
			Name:    name,
			Score:   clamped,
		})
		switch {
		case clamped < layerAdjustCutoff:
			detail = append(detail, fmt.Sprintf("%s needs adjustment", name))
		case clamped < layerCloseCutoff:
			detail = append(detail, fmt.Sprintf("%s is close, fine-tune it", name))
		}
	}

	var overall int
	if n > 0 {
		overall = domain.ClampScore(total / float64(n))
	}
	result.Overall = overall
	result.Stars = domain.MixStarsFor(overall)
	result.Passed = overall >= domain.PassThreshold
	result.Feedback = append([]string{referenceSummary(overall)}, detail...)
	return result
}

// scoreLayer is the unweighted mean of the applicable component scores.
// Mute state and volume always count; pan and EQ only when the challenge
// exposes the control and the reference specifies a target for it.
func scoreLayer(layer domain.LayerState, ref domain.ReferenceLayer, controls domain.AvailableControls) float64 {
	var sum float64
	count := 0

	if layer.Muted == ref.Muted {
		sum += 100
	}
	count++

	sum += ToleranceScore(layer.Volume, ref.Volume, volumeToleranceDB)
	count++

	if controls.Pan && ref.Pan != nil {
		sum += ToleranceScore(layer.Pan, *ref.Pan, panTolerance)
		count++
	}
	if controls.EQ && ref.EQLow != nil {
		sum += ToleranceScore(layer.EQLow, *ref.EQLow, eqToleranceDB)
		count++
	}
	if controls.EQ && ref.EQHigh != nil {
		sum += ToleranceScore(layer.EQHigh, *ref.EQHigh, eqToleranceDB)
		count++
	}

	return sum / float64(count)
}

func referenceSummary(overall int) string {
	switch {
	case overall >= domain.MixThreeStarCutoff:
		return "Excellent balance!"
	case overall >= domain.MixTwoStarCutoff:
		return "Good work - the mix is nearly there"
	case overall >= domain.PassThreshold:
		return "Keep refining - some layers are off"
	default:
		return "Listen to the reference again and compare layer by layer"
	}
}

func evaluateGoal(conditions []domain.ProductionCondition, layers []domain.LayerState) domain.ProductionScoreResult {
	result := domain.ProductionScoreResult{Mode: domain.ModeGoal}

	passed := 0
	var detail []string
	for _, cond := range conditions {
		ok := EvaluateCondition(cond, layers)
		if ok {
			passed++
		} else {
			detail = append(detail, "Not met: "+DescribeCondition(cond))
		}
		result.ConditionResults = append(result.ConditionResults, domain.ConditionResult{
			Description: DescribeCondition(cond),
			Passed:      ok,
		})
	}

	var overall int
	if len(conditions) > 0 {
		overall = domain.ClampScore(float64(passed) / float64(len(conditions)) * 100)
	}
	result.Overall = overall
	result.Stars = domain.MixStarsFor(overall)
	result.Passed = overall >= domain.PassThreshold
	result.Feedback = append([]string{referenceSummary(overall)}, detail...)
	return result
}

// EvaluateCondition checks a single goal condition against the layer
// snapshot. A condition referencing a missing layer evaluates to false, and
// an unrecognized condition type fails closed.
func EvaluateCondition(cond domain.ProductionCondition, layers []domain.LayerState) bool {
	find := func(id string) *domain.LayerState {
		for i := range layers {
			if layers[i].ID == id {
				return &layers[i]
			}
		}
		return nil
	}

	switch cond.Type {
	case domain.CondLevelOrder:
		louder, quieter := find(cond.Louder), find(cond.Quieter)
		if louder == nil || quieter == nil {
			return false
		}
		return effectiveLevel(*louder) > effectiveLevel(*quieter)

	case domain.CondPanSpread:
		if len(layers) < 2 {
			return false
		}
		lo, hi := layers[0].Pan, layers[0].Pan
		for _, l := range layers[1:] {
			lo = math.Min(lo, l.Pan)
			hi = math.Max(hi, l.Pan)
		}
		return hi-lo >= cond.MinWidth

	case domain.CondLayerActive:
		l := find(cond.LayerID)
		if l == nil {
			return false
		}
		return !l.Muted == cond.Active

	case domain.CondLayerMuted:
		l := find(cond.LayerID)
		if l == nil {
			return false
		}
		return l.Muted == cond.Muted

	case domain.CondRelativeLevel:
		l1, l2 := find(cond.Layer1), find(cond.Layer2)
		if l1 == nil || l2 == nil {
			return false
		}
		diff := l1.Volume - l2.Volume
		return diff >= cond.Difference[0] && diff <= cond.Difference[1]

	case domain.CondPanPosition:
		l := find(cond.LayerID)
		if l == nil {
			return false
		}
		return l.Pan >= cond.Position[0] && l.Pan <= cond.Position[1]

	default:
		return false
	}
}

// effectiveLevel is the audible level of a layer. Muting removes a layer
// from audibility regardless of its fader position, so a muted layer can
// never win a loudness comparison.
func effectiveLevel(l domain.LayerState) float64 {
	if l.Muted {
		return math.Inf(-1)
	}
	return l.Volume
}

// DescribeCondition renders a condition as one human-readable sentence.
func DescribeCondition(cond domain.ProductionCondition) string {
	switch cond.Type {
	case domain.CondLevelOrder:
		return fmt.Sprintf("%s should be louder than %s", cond.Louder, cond.Quieter)
	case domain.CondPanSpread:
		return fmt.Sprintf("spread the layers across the stereo field (width at least %.1f)", cond.MinWidth)
	case domain.CondLayerActive:
		if cond.Active {
			return fmt.Sprintf("%s should be audible", cond.LayerID)
		}
		return fmt.Sprintf("%s should be silent", cond.LayerID)
	case domain.CondLayerMuted:
		if cond.Muted {
			return fmt.Sprintf("%s should be muted", cond.LayerID)
		}
		return fmt.Sprintf("%s should be unmuted", cond.LayerID)
	case domain.CondRelativeLevel:
		return fmt.Sprintf("%s should sit %.0f to %.0f dB relative to %s",
			cond.Layer1, cond.Difference[0], cond.Difference[1], cond.Layer2)
	case domain.CondPanPosition:
		return fmt.Sprintf("%s should be panned between %.1f and %.1f",
			cond.LayerID, cond.Position[0], cond.Position[1])
	default:
		return "Unknown condition"
	}
}
