package application

import (
	"fmt"

	"github.com/earcraft/earcraft/internal/domain"
)

// ValidateService checks a challenge pack's integrity before it is shipped:
// the manifest must parse and validate, every referenced audio file must
// exist, and unreferenced audio is flagged as a warning.
type ValidateService struct {
	catalog domain.CatalogLoader
	scanner domain.PackScanner
}

func NewValidateService(catalog domain.CatalogLoader, scanner domain.PackScanner) *ValidateService {
	return &ValidateService{catalog: catalog, scanner: scanner}
}

// PackReport is the result of validating one pack directory.
type PackReport struct {
	Pack       string   `json:"pack"`
	Challenges int      `json:"challenges"`
	Errors     []string `json:"errors,omitempty"`
	Warnings   []string `json:"warnings,omitempty"`
}

// Valid reports whether the pack can be used for grading as-is.
func (r PackReport) Valid() bool { return len(r.Errors) == 0 }

func (s *ValidateService) Validate(packDir string) (*PackReport, error) {
	assets, err := s.scanner.Scan(packDir)
	if err != nil {
		return nil, fmt.Errorf("scanning pack: %w", err)
	}

	report := &PackReport{}
	if !assets.HasManifest {
		report.Errors = append(report.Errors, "pack.yaml not found")
		return report, nil
	}

	cat, err := s.catalog.Load(packDir)
	if err != nil {
		report.Errors = append(report.Errors, err.Error())
		return report, nil
	}
	report.Pack = cat.Pack
	report.Challenges = len(cat.Challenges)

	available := make(map[string]bool, len(assets.AudioFiles))
	for _, f := range assets.AudioFiles {
		available[f] = true
	}

	referenced := make(map[string]bool)
	for _, challenge := range cat.Challenges {
		if challenge.Kind != domain.KindSound {
			continue
		}
		audio := challenge.Sound.Audio
		referenced[audio] = true
		if !available[audio] {
			report.Errors = append(report.Errors,
				fmt.Sprintf("challenge %s: audio %s not found in pack", challenge.ID, audio))
		}
	}

	for _, f := range assets.AudioFiles {
		if !referenced[f] {
			report.Warnings = append(report.Warnings, fmt.Sprintf("unreferenced audio file %s", f))
		}
	}
	return report, nil
}
