package analysis

import (
	"fmt"
	"math"
	"math/cmplx"
	"os"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/wav"

	"github.com/earcraft/earcraft/internal/domain"
)

const (
	envelopeFrameSize = 1024
	envelopeHop       = 512

	fftSize      = 2048
	fftHop       = 1024
	spectrumBins = 128

	// A frame counts as the attack peak once it reaches 90% of the
	// envelope maximum; short transients overshoot less than that.
	attackPeakRatio = 0.9
)

// Analyzer implements domain.FeatureAnalyzer by decoding a WAV render and
// measuring its envelope and spectrum. Results are optionally memoized
// through a Cache since target renders never change between submissions.
type Analyzer struct {
	cache *Cache
}

func New() *Analyzer { return &Analyzer{} }

// NewCached returns an analyzer that memoizes features per file in cacheDir.
func NewCached(cacheDir string) *Analyzer {
	return &Analyzer{cache: NewCache(cacheDir)}
}

func (a *Analyzer) Analyze(wavPath string) (domain.SoundFeatures, error) {
	if a.cache != nil {
		if features, ok := a.cache.Load(wavPath); ok {
			return features, nil
		}
	}

	samples, sampleRate, err := readMono(wavPath)
	if err != nil {
		return domain.SoundFeatures{}, err
	}
	if len(samples) == 0 {
		return domain.SoundFeatures{}, fmt.Errorf("%s: no audio frames", wavPath)
	}

	envelope := rmsEnvelope(samples)
	spectrum, err := averageSpectrum(samples)
	if err != nil {
		return domain.SoundFeatures{}, fmt.Errorf("%s: %w", wavPath, err)
	}

	features := domain.SoundFeatures{
		SpectralCentroid: spectralCentroid(spectrum, sampleRate),
		AttackTime:       attackFrames(envelope),
		RMSEnvelope:      envelope,
		AverageSpectrum:  spectrum,
	}

	if a.cache != nil {
		if err := a.cache.Save(wavPath, features); err != nil {
			return features, nil // cache failure never fails analysis
		}
	}
	return features, nil
}

// readMono decodes a WAV file into normalized mono float64 samples.
func readMono(path string) ([]float64, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, 0, fmt.Errorf("invalid wav file: %s", path)
	}
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("decoding %s: %w", path, err)
	}
	if buf == nil || buf.Format == nil || buf.Format.NumChannels < 1 {
		return nil, 0, fmt.Errorf("invalid wav buffer: %s", path)
	}

	bitDepth := buf.SourceBitDepth
	if bitDepth == 0 {
		bitDepth = 16
	}
	scale := 1.0 / float64(int64(1)<<(bitDepth-1))

	ch := buf.Format.NumChannels
	frames := len(buf.Data) / ch
	out := make([]float64, frames)
	for i := 0; i < frames; i++ {
		var sum float64
		for c := 0; c < ch; c++ {
			sum += float64(buf.Data[i*ch+c])
		}
		out[i] = sum / float64(ch) * scale
	}
	return out, buf.Format.SampleRate, nil
}

// rmsEnvelope measures amplitude over time, one value per hop.
func rmsEnvelope(samples []float64) []float64 {
	var envelope []float64
	for pos := 0; pos < len(samples); pos += envelopeHop {
		end := pos + envelopeFrameSize
		if end > len(samples) {
			end = len(samples)
		}
		var sum float64
		for _, s := range samples[pos:end] {
			sum += s * s
		}
		envelope = append(envelope, math.Sqrt(sum/float64(end-pos)))
	}
	return envelope
}

// attackFrames is the index of the first envelope frame that reaches the
// peak, in frames.
func attackFrames(envelope []float64) float64 {
	peak := 0.0
	for _, v := range envelope {
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		return 0
	}
	for i, v := range envelope {
		if v >= peak*attackPeakRatio {
			return float64(i)
		}
	}
	return 0
}

// averageSpectrum is the Hann-windowed magnitude spectrum averaged across
// overlapping frames, truncated to the bins the comparison uses.
func averageSpectrum(samples []float64) ([]float64, error) {
	plan, err := algofft.NewPlanReal64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("fft plan: %w", err)
	}

	hann := make([]float64, fftSize)
	for i := range hann {
		hann[i] = 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(fftSize-1))
	}

	frame := make([]float64, fftSize)
	spec := make([]complex128, fftSize/2+1)
	avg := make([]float64, spectrumBins)

	frames := 0
	for pos := 0; pos == 0 || pos+fftSize <= len(samples); pos += fftHop {
		for i := range frame {
			if pos+i < len(samples) {
				frame[i] = samples[pos+i] * hann[i]
			} else {
				frame[i] = 0
			}
		}
		plan.Forward(spec, frame)
		for k := 0; k < spectrumBins; k++ {
			avg[k] += cmplx.Abs(spec[k+1]) // skip DC
		}
		frames++
	}

	for k := range avg {
		avg[k] /= float64(frames)
	}
	return avg, nil
}

// spectralCentroid is the magnitude-weighted mean frequency in Hz.
func spectralCentroid(spectrum []float64, sampleRate int) float64 {
	binHz := float64(sampleRate) / float64(fftSize)
	var weighted, total float64
	for k, mag := range spectrum {
		weighted += float64(k+1) * binHz * mag
		total += mag
	}
	if total == 0 {
		return 0
	}
	return weighted / total
}
