package domain

// Waveform is an oscillator wave shape.
type Waveform string

const (
	WaveSine     Waveform = "sine"
	WaveSquare   Waveform = "square"
	WaveSawtooth Waveform = "sawtooth"
	WaveTriangle Waveform = "triangle"
	WaveNoise    Waveform = "noise"
)

// FilterType is a filter topology.
type FilterType string

const (
	FilterLowpass  FilterType = "lowpass"
	FilterHighpass FilterType = "highpass"
	FilterBandpass FilterType = "bandpass"
	FilterNotch    FilterType = "notch"
)

// OscillatorParams is one oscillator's control state.
type OscillatorParams struct {
	Waveform Waveform `json:"waveform" yaml:"waveform"`
	Octave   int      `json:"octave" yaml:"octave"`
	Detune   float64  `json:"detune" yaml:"detune"` // cents
}

// FilterParams is the filter section's control state.
type FilterParams struct {
	Type      FilterType `json:"type" yaml:"type"`
	Cutoff    float64    `json:"cutoff" yaml:"cutoff"` // Hz
	Resonance float64    `json:"resonance" yaml:"resonance"`
}

// EnvelopeParams is an ADSR amplitude envelope. Times are in seconds,
// sustain is a 0-1 level.
type EnvelopeParams struct {
	Attack  float64 `json:"attack" yaml:"attack"`
	Decay   float64 `json:"decay" yaml:"decay"`
	Sustain float64 `json:"sustain" yaml:"sustain"`
	Release float64 `json:"release" yaml:"release"`
}

// SynthParams is the comparable control-state snapshot shared by all three
// synthesis tracks. Track-specific parameter sets project into this shape
// via Comparable.
type SynthParams struct {
	Oscillator OscillatorParams `json:"oscillator" yaml:"oscillator"`
	Filter     FilterParams     `json:"filter" yaml:"filter"`
	Envelope   EnvelopeParams   `json:"envelope" yaml:"envelope"`
}

// Comparable returns p itself; SynthParams is already the common shape.
func (p SynthParams) Comparable() SynthParams { return p }

// FMParams is the FM track's control state. The carrier oscillator fills the
// common oscillator slot; ratio and modulation index are graded through the
// acoustic features (they dominate the spectrum), not parameter proximity.
type FMParams struct {
	Carrier     OscillatorParams `json:"carrier" yaml:"carrier"`
	Ratio       float64          `json:"ratio" yaml:"ratio"`
	ModIndex    float64          `json:"mod_index" yaml:"mod_index"`
	Filter      FilterParams     `json:"filter" yaml:"filter"`
	Envelope    EnvelopeParams   `json:"envelope" yaml:"envelope"`
	ModEnvelope EnvelopeParams   `json:"mod_envelope" yaml:"mod_envelope"`
}

func (p FMParams) Comparable() SynthParams {
	return SynthParams{Oscillator: p.Carrier, Filter: p.Filter, Envelope: p.Envelope}
}

// AdditiveParams is the additive track's control state. Harmonics holds the
// per-partial amplitudes, 0-1 each.
type AdditiveParams struct {
	Fundamental OscillatorParams `json:"fundamental" yaml:"fundamental"`
	Harmonics   []float64        `json:"harmonics" yaml:"harmonics"`
	Filter      FilterParams     `json:"filter" yaml:"filter"`
	Envelope    EnvelopeParams   `json:"envelope" yaml:"envelope"`
}

func (p AdditiveParams) Comparable() SynthParams {
	return SynthParams{Oscillator: p.Fundamental, Filter: p.Filter, Envelope: p.Envelope}
}
