// Package scoring contains the pure grading functions of the engine: the
// similarity primitives, the sound comparison scorer, and the production mix
// evaluator. Every function is a deterministic transformation of its inputs
// with no I/O and no internal state.
package scoring

import "math"

// spectrumCompareBins caps how many spectrum bins cosine similarity reads.
// Low bins carry most of the perceptual weight.
const spectrumCompareBins = 128

// neutralScore is returned where the input carries no evidence either way
// (zero-magnitude spectra, zero-length envelopes).
const neutralScore = 50.0

// ToleranceScore grades how close actual is to target, returning 0-100.
// Within tolerance the grade falls gently from 100 to 70; outside it decays
// linearly to zero at five times the tolerance. The slope change at the
// tolerance boundary is intentional: small deviations are graded softly,
// larger ones harshly.
func ToleranceScore(actual, target, tolerance float64) float64 {
	diff := math.Abs(actual - target)
	if tolerance <= 0 {
		if diff == 0 {
			return 100
		}
		return 0
	}
	if diff <= tolerance {
		return 100 - (diff/tolerance)*30
	}
	return 70 * (1 - math.Min(diff/(tolerance*5), 1))
}

// LogTimeScore grades time-like parameters (attack, decay, release) on the
// octave scale, returning 0-1. Doubling or halving the target costs the full
// grade. A zero target scores 1 only for a zero actual.
func LogTimeScore(actual, target float64) float64 {
	if target == 0 {
		if actual == 0 {
			return 1
		}
		return 0
	}
	if actual <= 0 {
		return 0
	}
	return math.Max(0, 1-math.Abs(math.Log2(actual/target)))
}

// CosineSimilarity grades the angular similarity of two magnitude spectra
// over their first min(128, len) bins, returning 0-100. When either side has
// zero magnitude there is no direction to compare, so the neutral 50 is
// returned rather than punishing silence asymmetrically.
func CosineSimilarity(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	if n > spectrumCompareBins {
		n = spectrumCompareBins
	}

	var dot, magA, magB float64
	for i := 0; i < n; i++ {
		dot += a[i] * b[i]
		magA += a[i] * a[i]
		magB += b[i] * b[i]
	}
	if magA == 0 || magB == 0 {
		return neutralScore
	}
	sim := dot / (math.Sqrt(magA) * math.Sqrt(magB))
	return math.Max(0, math.Min(sim, 1)) * 100
}
