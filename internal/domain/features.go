package domain

// SoundFeatures are the measured acoustic descriptors of one rendered sound.
// They are produced once per render by the analysis collaborator and never
// recomputed by the scoring core.
type SoundFeatures struct {
	// SpectralCentroid is a brightness proxy on the Hz scale.
	SpectralCentroid float64 `json:"spectral_centroid"`
	// AttackTime is the time to peak amplitude, in envelope frames.
	AttackTime float64 `json:"attack_time"`
	// RMSEnvelope is amplitude over time, one value per frame, 0-1.
	RMSEnvelope []float64 `json:"rms_envelope"`
	// AverageSpectrum is the time-averaged per-bin magnitude spectrum.
	AverageSpectrum []float64 `json:"average_spectrum"`
}
