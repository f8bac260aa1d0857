package analysis_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/cwbudde/wav"
	"github.com/go-audio/audio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/earcraft/earcraft/internal/adapters/outbound/analysis"
)

const testSampleRate = 44100

// writeWAV renders samples to a 16-bit mono WAV file.
func writeWAV(t *testing.T, path string, samples []float32) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	enc := wav.NewEncoder(f, testSampleRate, 16, 1, 1)
	buf := &audio.Float32Buffer{
		Format:         &audio.Format{SampleRate: testSampleRate, NumChannels: 1},
		Data:           samples,
		SourceBitDepth: 16,
	}
	require.NoError(t, enc.Write(buf))
	require.NoError(t, enc.Close())
}

func sine(freq float64, seconds float64, gain float32) []float32 {
	n := int(seconds * testSampleRate)
	out := make([]float32, n)
	for i := range out {
		out[i] = gain * float32(math.Sin(2*math.Pi*freq*float64(i)/testSampleRate))
	}
	return out
}

func TestAnalyzer_SineCentroidNearFundamental(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a440.wav")
	writeWAV(t, path, sine(440, 1.0, 0.5))

	features, err := analysis.New().Analyze(path)
	require.NoError(t, err)

	assert.InDelta(t, 440, features.SpectralCentroid, 60)
	assert.NotEmpty(t, features.RMSEnvelope)
	assert.Len(t, features.AverageSpectrum, 128)
}

func TestAnalyzer_BrighterSignalHasHigherCentroid(t *testing.T) {
	dir := t.TempDir()
	low := filepath.Join(dir, "low.wav")
	high := filepath.Join(dir, "high.wav")
	writeWAV(t, low, sine(220, 0.5, 0.5))
	writeWAV(t, high, sine(1760, 0.5, 0.5))

	analyzer := analysis.New()
	lowFeatures, err := analyzer.Analyze(low)
	require.NoError(t, err)
	highFeatures, err := analyzer.Analyze(high)
	require.NoError(t, err)

	assert.Greater(t, highFeatures.SpectralCentroid, lowFeatures.SpectralCentroid)
}

func TestAnalyzer_AttackMeasuresRampToPeak(t *testing.T) {
	dir := t.TempDir()

	// Instant onset: full level from the first sample.
	instant := sine(440, 0.5, 0.5)
	instantPath := filepath.Join(dir, "instant.wav")
	writeWAV(t, instantPath, instant)

	// Slow onset: quarter second of silence before the tone.
	slow := append(make([]float32, testSampleRate/4), instant...)
	slowPath := filepath.Join(dir, "slow.wav")
	writeWAV(t, slowPath, slow)

	analyzer := analysis.New()
	instantFeatures, err := analyzer.Analyze(instantPath)
	require.NoError(t, err)
	slowFeatures, err := analyzer.Analyze(slowPath)
	require.NoError(t, err)

	assert.Greater(t, slowFeatures.AttackTime, instantFeatures.AttackTime)
}

func TestAnalyzer_EnvelopeTracksAmplitude(t *testing.T) {
	loudThenQuiet := sine(440, 0.5, 0.8)
	quiet := sine(440, 0.5, 0.1)
	signal := append(loudThenQuiet, quiet...)
	path := filepath.Join(t.TempDir(), "decay.wav")
	writeWAV(t, path, signal)

	features, err := analysis.New().Analyze(path)
	require.NoError(t, err)

	require.NotEmpty(t, features.RMSEnvelope)
	first := features.RMSEnvelope[1]
	last := features.RMSEnvelope[len(features.RMSEnvelope)-2]
	assert.Greater(t, first, last)
}

func TestAnalyzer_MissingFile(t *testing.T) {
	_, err := analysis.New().Analyze(filepath.Join(t.TempDir(), "missing.wav"))
	assert.Error(t, err)
}

func TestAnalyzer_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-audio.wav")
	require.NoError(t, os.WriteFile(path, []byte("not a wav"), 0644))

	_, err := analysis.New().Analyze(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid wav")
}

func TestCachedAnalyzer_ReturnsSameFeatures(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a440.wav")
	writeWAV(t, path, sine(440, 0.5, 0.5))

	analyzer := analysis.NewCached(filepath.Join(dir, "cache"))

	fresh, err := analyzer.Analyze(path)
	require.NoError(t, err)
	cached, err := analyzer.Analyze(path)
	require.NoError(t, err)

	assert.Equal(t, fresh, cached)

	entries, err := os.ReadDir(filepath.Join(dir, "cache"))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestCache_InvalidatesOnRewrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tone.wav")
	cache := analysis.NewCache(filepath.Join(dir, "cache"))

	writeWAV(t, path, sine(440, 0.5, 0.5))
	features, err := analysis.New().Analyze(path)
	require.NoError(t, err)
	require.NoError(t, cache.Save(path, features))

	_, ok := cache.Load(path)
	assert.True(t, ok)

	// A longer render changes the file size, which must miss the cache.
	writeWAV(t, path, sine(880, 1.0, 0.5))
	_, ok = cache.Load(path)
	assert.False(t, ok)
}
