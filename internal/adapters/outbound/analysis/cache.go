package analysis

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/earcraft/earcraft/internal/domain"
)

// Cache memoizes measured features per WAV file. Entries are invalidated by
// file size and modification time, so re-rendered submissions re-analyze.
type Cache struct {
	dir string
}

func NewCache(dir string) *Cache {
	return &Cache{dir: dir}
}

type cacheEntry struct {
	Path     string              `json:"path"`
	Size     int64               `json:"size"`
	ModTime  int64               `json:"mod_time"`
	Features domain.SoundFeatures `json:"features"`
}

// Load returns cached features for wavPath if the file is unchanged.
func (c *Cache) Load(wavPath string) (domain.SoundFeatures, bool) {
	info, err := os.Stat(wavPath)
	if err != nil {
		return domain.SoundFeatures{}, false
	}
	data, err := os.ReadFile(c.entryPath(wavPath))
	if err != nil {
		return domain.SoundFeatures{}, false
	}

	var entry cacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return domain.SoundFeatures{}, false
	}
	if entry.Size != info.Size() || entry.ModTime != info.ModTime().Unix() {
		return domain.SoundFeatures{}, false
	}
	return entry.Features, true
}

// Save writes features for wavPath, creating the cache dir as needed.
func (c *Cache) Save(wavPath string, features domain.SoundFeatures) error {
	info, err := os.Stat(wavPath)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(c.dir, 0755); err != nil {
		return err
	}

	entry := cacheEntry{
		Path:     wavPath,
		Size:     info.Size(),
		ModTime:  info.ModTime().Unix(),
		Features: features,
	}
	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(c.entryPath(wavPath), data, 0644)
}

func (c *Cache) entryPath(wavPath string) string {
	sum := sha256.Sum256([]byte(wavPath))
	return filepath.Join(c.dir, hex.EncodeToString(sum[:8])+".json")
}
