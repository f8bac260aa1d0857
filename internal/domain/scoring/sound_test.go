package scoring

import (
	"testing"

	"github.com/earcraft/earcraft/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func referenceFeatures() domain.SoundFeatures {
	return domain.SoundFeatures{
		SpectralCentroid: 1200,
		AttackTime:       3,
		RMSEnvelope:      []float64{0.1, 0.6, 0.9, 0.7, 0.4, 0.2},
		AverageSpectrum:  []float64{0.9, 0.7, 0.5, 0.3, 0.2, 0.1},
	}
}

func referenceParams() domain.SynthParams {
	return domain.SynthParams{
		Oscillator: domain.OscillatorParams{Waveform: domain.WaveSawtooth, Octave: -1, Detune: 5},
		Filter:     domain.FilterParams{Type: domain.FilterLowpass, Cutoff: 800, Resonance: 2},
		Envelope:   domain.EnvelopeParams{Attack: 0.01, Decay: 0.3, Sustain: 0.6, Release: 0.5},
	}
}

func TestCompareSound_IdenticalIsPerfect(t *testing.T) {
	feat := referenceFeatures()
	params := referenceParams()

	result := CompareSound(feat, feat, params, params)

	assert.Equal(t, 100, result.Overall)
	assert.Equal(t, 3, result.Stars)
	assert.True(t, result.Passed)
	for _, entry := range result.Breakdown {
		assert.Equal(t, 100, entry.Score, "category %s", entry.Name)
	}
}

func TestCompareSound_OverallAlwaysClamped(t *testing.T) {
	player := domain.SoundFeatures{
		SpectralCentroid: 9000,
		AttackTime:       40,
		RMSEnvelope:      []float64{1, 1, 1},
		AverageSpectrum:  []float64{0, 0, 1},
	}
	playerParams := domain.SynthParams{
		Oscillator: domain.OscillatorParams{Waveform: domain.WaveNoise, Octave: 3, Detune: 99},
		Filter:     domain.FilterParams{Type: domain.FilterHighpass, Cutoff: 18000, Resonance: 30},
		Envelope:   domain.EnvelopeParams{Attack: 5, Decay: 5, Sustain: 0, Release: 9},
	}

	result := CompareSound(player, referenceFeatures(), playerParams, referenceParams())

	assert.GreaterOrEqual(t, result.Overall, 0)
	assert.LessOrEqual(t, result.Overall, 100)
	assert.Contains(t, []int{1, 2, 3}, result.Stars)
	for _, entry := range result.Breakdown {
		assert.GreaterOrEqual(t, entry.Score, 0)
		assert.LessOrEqual(t, entry.Score, 100)
	}
}

func TestCompareSound_BreakdownOrderIsFixed(t *testing.T) {
	feat := referenceFeatures()
	params := referenceParams()

	result := CompareSound(feat, feat, params, params)

	require.Len(t, result.Breakdown, 7)
	names := make([]string, 0, 7)
	for _, entry := range result.Breakdown {
		names = append(names, entry.Name)
	}
	assert.Equal(t, []string{
		CategoryBrightness, CategoryAttack, CategoryEnvelope, CategorySpectrum,
		CategoryFilter, CategoryOscillator, CategoryAmplitude,
	}, names)
}

func TestCompareSound_TooBrightFeedback(t *testing.T) {
	player := referenceFeatures()
	player.SpectralCentroid = 3000 // > 1.2x the 1200 Hz target

	result := CompareSound(player, referenceFeatures(), referenceParams(), referenceParams())

	assert.Contains(t, result.Breakdown[0].Feedback, "too bright")
}

func TestCompareSound_TooDarkFeedback(t *testing.T) {
	player := referenceFeatures()
	player.SpectralCentroid = 400 // < 0.8x the 1200 Hz target

	result := CompareSound(player, referenceFeatures(), referenceParams(), referenceParams())

	assert.Contains(t, result.Breakdown[0].Feedback, "too dark")
}

func TestCompareSound_EmptyEnvelopesAreNeutral(t *testing.T) {
	player := referenceFeatures()
	target := referenceFeatures()
	player.RMSEnvelope = nil
	target.RMSEnvelope = nil

	result := CompareSound(player, target, referenceParams(), referenceParams())

	assert.Equal(t, 50, result.Breakdown[2].Score)
}

func TestCompareSound_WrongWaveformSuggestsTarget(t *testing.T) {
	playerParams := referenceParams()
	playerParams.Oscillator.Waveform = domain.WaveSine

	result := CompareSound(referenceFeatures(), referenceFeatures(), playerParams, referenceParams())

	assert.Contains(t, result.Breakdown[5].Feedback, "sawtooth")
	assert.Less(t, result.Breakdown[5].Score, 100)
}

func TestScoreFilter_TypeMismatchHalfCredit(t *testing.T) {
	target := domain.FilterParams{Type: domain.FilterLowpass, Cutoff: 800, Resonance: 2}
	player := target
	player.Type = domain.FilterHighpass

	// Cutoff and resonance perfect, type 0.5 credit: 50 + 30 + 10.
	assert.InDelta(t, 90.0, scoreFilter(player, target), 1e-9)
}

func TestScoreFilter_CutoffCappedAtTwoOctaves(t *testing.T) {
	target := domain.FilterParams{Type: domain.FilterLowpass, Cutoff: 1000, Resonance: 0}
	fourOctavesOff := domain.FilterParams{Type: domain.FilterLowpass, Cutoff: 16000, Resonance: 0}
	twoOctavesOff := domain.FilterParams{Type: domain.FilterLowpass, Cutoff: 4000, Resonance: 0}

	assert.InDelta(t, scoreFilter(twoOctavesOff, target), scoreFilter(fourOctavesOff, target), 1e-9)
}

func TestScoreOscillator_WaveformDominates(t *testing.T) {
	target := domain.OscillatorParams{Waveform: domain.WaveSquare, Octave: 0, Detune: 0}
	wrongWave := domain.OscillatorParams{Waveform: domain.WaveSine, Octave: 0, Detune: 0}

	assert.InDelta(t, 40.0, scoreOscillator(wrongWave, target), 1e-9)
}

func TestScoreAttack_TenFrameWindow(t *testing.T) {
	assert.InDelta(t, 100.0, scoreAttack(3, 3), 1e-9)
	assert.InDelta(t, 50.0, scoreAttack(8, 3), 1e-9)
	assert.InDelta(t, 0.0, scoreAttack(13, 3), 1e-9)
	assert.InDelta(t, 0.0, scoreAttack(40, 3), 1e-9)
}

func TestSummarize_ThreeStars(t *testing.T) {
	result := domain.ScoreResult{Overall: 97, Stars: 3, Passed: true}
	assert.Contains(t, Summarize(result), "Perfect")
}

func TestSummarize_FailurePicksWorstCategory(t *testing.T) {
	result := domain.ScoreResult{
		Overall: 40, Stars: 1,
		Breakdown: []domain.BreakdownEntry{
			{Name: CategoryBrightness, Score: 80, Feedback: "bright fb"},
			{Name: CategoryAttack, Score: 20, Feedback: "attack fb"},
			{Name: CategoryEnvelope, Score: 55, Feedback: "env fb"},
		},
	}
	assert.Contains(t, Summarize(result), "attack fb")
}

func TestSummarize_TieBreaksToEarlierCategory(t *testing.T) {
	result := domain.ScoreResult{
		Overall: 40, Stars: 1,
		Breakdown: []domain.BreakdownEntry{
			{Name: CategoryBrightness, Score: 20, Feedback: "bright fb"},
			{Name: CategoryAttack, Score: 20, Feedback: "attack fb"},
		},
	}
	assert.Contains(t, Summarize(result), "bright fb")
}
