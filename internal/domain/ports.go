package domain

// CatalogLoader loads and validates a challenge pack from disk.
type CatalogLoader interface {
	Load(packDir string) (*Catalog, error)
}

// FeatureAnalyzer measures acoustic features of an already-rendered sound.
type FeatureAnalyzer interface {
	Analyze(wavPath string) (SoundFeatures, error)
}

// ProgressStore persists per-challenge progress records.
type ProgressStore interface {
	Get(challengeID string) (*ChallengeProgress, error)
	All() (map[string]ChallengeProgress, error)
	Put(progress ChallengeProgress) error
	Close() error
}

// PackInfo reports the version of a challenge pack's content.
type PackInfo interface {
	Version(packDir string) (string, error)
}

// PackAssets is the file inventory of a challenge pack directory.
type PackAssets struct {
	RootPath    string
	AudioFiles  []string // relative paths, forward slashes
	HasManifest bool
}

// PackScanner inventories the assets of a challenge pack directory.
type PackScanner interface {
	Scan(packDir string) (*PackAssets, error)
}
