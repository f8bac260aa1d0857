package scoring

import (
	"fmt"
	"math"

	"github.com/earcraft/earcraft/internal/domain"
)

// Breakdown category names, in the fixed order they appear in a sound
// ScoreResult. The order doubles as the tie-break when Summarize picks the
// weakest category.
const (
	CategoryBrightness = "brightness"
	CategoryAttack     = "attack"
	CategoryEnvelope   = "envelope"
	CategorySpectrum   = "spectrum"
	CategoryFilter     = "filter"
	CategoryOscillator = "oscillator"
	CategoryAmplitude  = "amplitude"
)

// Acoustic features carry 70% of the grade, parameter proximity 30%.
const (
	audioWeight = 0.7
	paramWeight = 0.3
)

// Weights of the audio sub-scores within the audio share.
const (
	brightnessWeight = 0.3
	attackWeight     = 0.25
	envelopeWeight   = 0.25
	spectrumWeight   = 0.2
)

// Weights of the parameter sub-scores within the parameter share.
const (
	filterWeight     = 0.5
	oscillatorWeight = 0.3
	amplitudeWeight  = 0.2
)

// attackWindowFrames is the window over which attack-time deviation decays
// the grade linearly to zero.
const attackWindowFrames = 10.0

// Normalizers for the parameter comparisons.
const (
	cutoffCapOctaves   = 2.0  // log2 cutoff distance worth the full grade
	resonanceCap       = 10.0 // linear resonance distance worth the full grade
	typeMismatchCredit = 0.5  // a wrong filter type still shapes the sound
	octaveCap          = 4.0
	detuneCapCents     = 50.0
)

// CompareSound grades a learner's rendered sound and parameter snapshot
// against a target's, producing the full breakdown and feedback.
func CompareSound(player, target domain.SoundFeatures, playerParams, targetParams domain.SynthParams) domain.ScoreResult {
	brightness := scoreBrightness(player.SpectralCentroid, target.SpectralCentroid)
	attack := scoreAttack(player.AttackTime, target.AttackTime)
	envelope := scoreEnvelope(player.RMSEnvelope, target.RMSEnvelope)
	spectrum := CosineSimilarity(player.AverageSpectrum, target.AverageSpectrum)

	filter := scoreFilter(playerParams.Filter, targetParams.Filter)
	oscillator := scoreOscillator(playerParams.Oscillator, targetParams.Oscillator)
	amplitude := scoreAmplitude(playerParams.Envelope, targetParams.Envelope)

	audio := brightness*brightnessWeight + attack*attackWeight +
		envelope*envelopeWeight + spectrum*spectrumWeight
	params := filter*filterWeight + oscillator*oscillatorWeight + amplitude*amplitudeWeight

	overall := domain.ClampScore(audio*audioWeight + params*paramWeight)

	result := domain.ScoreResult{
		Overall: overall,
		Stars:   domain.StarsFor(overall),
		Passed:  overall >= domain.PassThreshold,
		Breakdown: []domain.BreakdownEntry{
			{Name: CategoryBrightness, Score: domain.ClampScore(brightness),
				Feedback: brightnessFeedback(player.SpectralCentroid, target.SpectralCentroid)},
			{Name: CategoryAttack, Score: domain.ClampScore(attack),
				Feedback: attackFeedback(player.AttackTime, target.AttackTime)},
			{Name: CategoryEnvelope, Score: domain.ClampScore(envelope),
				Feedback: envelopeFeedback(envelope)},
			{Name: CategorySpectrum, Score: domain.ClampScore(spectrum),
				Feedback: spectrumFeedback(spectrum)},
			{Name: CategoryFilter, Score: domain.ClampScore(filter),
				Feedback: filterFeedback(playerParams.Filter, targetParams.Filter)},
			{Name: CategoryOscillator, Score: domain.ClampScore(oscillator),
				Feedback: oscillatorFeedback(playerParams.Oscillator, targetParams.Oscillator)},
			{Name: CategoryAmplitude, Score: domain.ClampScore(amplitude),
				Feedback: amplitudeFeedback(playerParams.Envelope, targetParams.Envelope)},
		},
	}
	result.Feedback = []string{Summarize(result)}
	return result
}

// scoreBrightness grades spectral centroid proximity. Deviation is measured
// relative to the target centroid (floored at 1 Hz to avoid dividing by
// silence) and doubled, so half the target's brightness away is a zero.
func scoreBrightness(player, target float64) float64 {
	diff := math.Abs(player - target)
	ref := math.Max(target, 1)
	return math.Max(0, 1-2*diff/ref) * 100
}

// scoreAttack grades attack-time proximity with a linear decay over a fixed
// ten-frame window.
func scoreAttack(player, target float64) float64 {
	diff := math.Abs(player - target)
	return math.Max(0, 1-diff/attackWindowFrames) * 100
}

// scoreEnvelope grades the element-wise closeness of the two RMS envelopes
// over their overlapping length. The mean absolute difference is doubled
// before grading; envelopes live in 0-1, so a mean gap of 0.5 is a zero.
func scoreEnvelope(player, target []float64) float64 {
	n := len(player)
	if len(target) < n {
		n = len(target)
	}
	if n == 0 {
		return neutralScore
	}
	var sum float64
	for i := 0; i < n; i++ {
		sum += math.Abs(player[i] - target[i])
	}
	avgDiff := sum / float64(n)
	return math.Max(0, 1-avgDiff*2) * 100
}

// scoreFilter grades the filter section: cutoff on log2 distance capped at
// two octaves, resonance linearly capped at 10, and the filter type as a
// match-or-half-credit bonus.
func scoreFilter(player, target domain.FilterParams) float64 {
	var cutoff float64
	switch {
	case player.Cutoff > 0 && target.Cutoff > 0:
		octaves := math.Abs(math.Log2(player.Cutoff / target.Cutoff))
		cutoff = 1 - math.Min(octaves, cutoffCapOctaves)/cutoffCapOctaves
	case player.Cutoff == target.Cutoff:
		cutoff = 1
	default:
		cutoff = 0
	}

	resonance := 1 - math.Min(math.Abs(player.Resonance-target.Resonance), resonanceCap)/resonanceCap

	typ := typeMismatchCredit
	if player.Type == target.Type {
		typ = 1
	}

	return (cutoff*0.5 + resonance*0.3 + typ*0.2) * 100
}

// scoreOscillator grades the oscillator section. Waveform identity dominates;
// octave and detune proximity fill out the rest.
func scoreOscillator(player, target domain.OscillatorParams) float64 {
	var wave float64
	if player.Waveform == target.Waveform {
		wave = 1
	}
	octave := 1 - math.Min(math.Abs(float64(player.Octave-target.Octave)), octaveCap)/octaveCap
	detune := 1 - math.Min(math.Abs(player.Detune-target.Detune), detuneCapCents)/detuneCapCents
	return (wave*0.6 + octave*0.3 + detune*0.1) * 100
}

// scoreAmplitude grades the amplitude envelope parameters: attack, decay and
// release on the octave scale, sustain linearly.
func scoreAmplitude(player, target domain.EnvelopeParams) float64 {
	attack := LogTimeScore(player.Attack, target.Attack)
	decay := LogTimeScore(player.Decay, target.Decay)
	release := LogTimeScore(player.Release, target.Release)
	sustain := 1 - math.Min(math.Abs(player.Sustain-target.Sustain), 1)
	return (attack*0.3 + decay*0.25 + release*0.25 + sustain*0.2) * 100
}

func brightnessFeedback(player, target float64) string {
	switch {
	case player > target*1.2:
		return "Your sound is too bright - try lowering the filter cutoff"
	case player < target*0.8:
		return "Your sound is too dark - try raising the filter cutoff"
	default:
		return "Brightness is close to the target"
	}
}

func attackFeedback(player, target float64) string {
	diff := player - target
	switch {
	case diff > 2:
		return "The attack is too slow - the sound should start faster"
	case diff < -2:
		return "The attack is too fast - let the sound fade in more"
	default:
		return "Attack timing is close to the target"
	}
}

func envelopeFeedback(score float64) string {
	switch {
	case score >= 80:
		return "The amplitude shape matches well"
	case score >= 50:
		return "The amplitude shape is roughly right - listen to how the target fades"
	default:
		return "The amplitude shape is off - compare how the two sounds evolve over time"
	}
}

func spectrumFeedback(score float64) string {
	switch {
	case score >= 80:
		return "The harmonic content matches well"
	case score >= 50:
		return "The harmonic content is in the right area"
	default:
		return "The harmonic content differs - try a different waveform or filter setting"
	}
}

func filterFeedback(player, target domain.FilterParams) string {
	if player.Type != target.Type {
		return fmt.Sprintf("Try a %s filter instead of %s", target.Type, player.Type)
	}
	switch {
	case player.Cutoff > target.Cutoff*1.3:
		return "The filter cutoff is too high"
	case target.Cutoff > 0 && player.Cutoff < target.Cutoff*0.7:
		return "The filter cutoff is too low"
	default:
		return "Filter settings are close to the target"
	}
}

func oscillatorFeedback(player, target domain.OscillatorParams) string {
	if player.Waveform != target.Waveform {
		return fmt.Sprintf("Try the %s waveform", target.Waveform)
	}
	if player.Octave != target.Octave {
		return "The octave setting is off"
	}
	return "Oscillator settings are close to the target"
}

func amplitudeFeedback(player, target domain.EnvelopeParams) string {
	switch {
	case LogTimeScore(player.Attack, target.Attack) < 0.5:
		return "Adjust the envelope attack time"
	case LogTimeScore(player.Release, target.Release) < 0.5:
		return "Adjust the envelope release time"
	case math.Abs(player.Sustain-target.Sustain) > 0.3:
		return "Adjust the sustain level"
	default:
		return "Envelope settings are close to the target"
	}
}

// Summarize returns the one-line verdict for a result. Below the pass line
// it names the weakest breakdown category's feedback as the focus area; ties
// resolve to the earlier category in breakdown order.
func Summarize(result domain.ScoreResult) string {
	switch {
	case result.Stars == 3:
		return "Perfect match! You nailed this sound."
	case result.Stars == 2:
		return "Very close! A small tweak away from perfect."
	case result.Overall >= domain.PassThreshold:
		return "Good attempt - the sound is recognizable but needs refining."
	}

	if len(result.Breakdown) == 0 {
		return "Keep experimenting and compare against the target."
	}
	worst := result.Breakdown[0]
	for _, entry := range result.Breakdown[1:] {
		if entry.Score < worst.Score {
			worst = entry
		}
	}
	return "Focus on this first: " + worst.Feedback
}
