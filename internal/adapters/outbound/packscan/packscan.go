package packscan

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/earcraft/earcraft/internal/domain"
)

var skipDirs = map[string]bool{
	".git":  true,
	"cache": true,
	"dist":  true,
}

// Scanner implements domain.PackScanner by walking the pack directory, so
// the catalog's audio references can be cross-checked against what is
// actually shipped.
type Scanner struct{}

func New() *Scanner {
	return &Scanner{}
}

func (s *Scanner) Scan(packDir string) (*domain.PackAssets, error) {
	absPath, err := filepath.Abs(packDir)
	if err != nil {
		return nil, err
	}

	assets := &domain.PackAssets{RootPath: absPath}

	err = filepath.WalkDir(absPath, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}

		relPath, _ := filepath.Rel(absPath, path)
		relPath = filepath.ToSlash(relPath)

		if relPath == "pack.yaml" {
			assets.HasManifest = true
			return nil
		}
		if strings.EqualFold(filepath.Ext(relPath), ".wav") {
			assets.AudioFiles = append(assets.AudioFiles, relPath)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return assets, nil
}
