package catalog

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/earcraft/earcraft/internal/domain"
	"gopkg.in/yaml.v3"
)

const fileName = "pack.yaml"

// YAMLLoader implements domain.CatalogLoader by reading pack.yaml from a
// challenge pack directory.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads and validates packDir/pack.yaml. Unlike a config file, a
// missing manifest is an error: there is nothing to grade without one.
func (l *YAMLLoader) Load(packDir string) (*domain.Catalog, error) {
	data, err := os.ReadFile(filepath.Join(packDir, fileName))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", fileName, err)
	}

	var cat domain.Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", fileName, err)
	}
	cat.Dir = packDir

	if err := validate(&cat); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", fileName, err)
	}
	return &cat, nil
}

// Validate before handing the catalog to callers so every downstream
// consumer can assume well-formed entries.
func validate(cat *domain.Catalog) error {
	if cat.Pack == "" {
		return fmt.Errorf("missing pack name")
	}
	if len(cat.Challenges) == 0 {
		return fmt.Errorf("pack %s has no challenges", cat.Pack)
	}

	seen := make(map[string]bool, len(cat.Challenges))
	for _, challenge := range cat.Challenges {
		if err := challenge.Validate(); err != nil {
			return err
		}
		if seen[challenge.ID] {
			return fmt.Errorf("duplicate challenge id %q", challenge.ID)
		}
		seen[challenge.ID] = true
	}
	return nil
}
