package application

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/earcraft/earcraft/internal/domain"
	"github.com/earcraft/earcraft/internal/domain/curriculum"
	"github.com/earcraft/earcraft/internal/domain/scoring"
)

// GradeService orchestrates the sound-challenge pipeline:
// load catalog → analyze target and player audio → compare → project skills
// → merge progress → suggest follow-up practice.
type GradeService struct {
	catalog  domain.CatalogLoader
	analyzer domain.FeatureAnalyzer
	store    domain.ProgressStore
	packInfo domain.PackInfo
	table    curriculum.Table
}

func NewGradeService(
	catalog domain.CatalogLoader,
	analyzer domain.FeatureAnalyzer,
	store domain.ProgressStore,
	packInfo domain.PackInfo,
	table curriculum.Table,
) *GradeService {
	return &GradeService{
		catalog:  catalog,
		analyzer: analyzer,
		store:    store,
		packInfo: packInfo,
		table:    table,
	}
}

// GradeInput is one sound-challenge submission.
type GradeInput struct {
	PackDir      string
	ChallengeID  string
	PlayerAudio  string
	PlayerParams domain.SynthParams
}

// GradeOutcome bundles everything the presentation layer needs after a
// submission.
type GradeOutcome struct {
	Challenge   domain.Challenge            `json:"challenge"`
	Result      domain.ScoreResult          `json:"result"`
	Progress    domain.ChallengeProgress    `json:"progress"`
	Suggestions []curriculum.Recommendation `json:"suggestions,omitempty"`
}

func (s *GradeService) Grade(in GradeInput) (*GradeOutcome, error) {
	cat, err := s.catalog.Load(in.PackDir)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}

	challenge := cat.ByID(in.ChallengeID)
	if challenge == nil {
		return nil, fmt.Errorf("challenge %q not found in pack %s", in.ChallengeID, cat.Pack)
	}
	if challenge.Kind != domain.KindSound {
		return nil, fmt.Errorf("challenge %q is a %s challenge, not a sound challenge", in.ChallengeID, challenge.Kind)
	}

	targetFeatures, err := s.analyzer.Analyze(filepath.Join(cat.Dir, challenge.Sound.Audio))
	if err != nil {
		return nil, fmt.Errorf("analyzing target audio: %w", err)
	}
	playerFeatures, err := s.analyzer.Analyze(in.PlayerAudio)
	if err != nil {
		return nil, fmt.Errorf("analyzing submission audio: %w", err)
	}

	result := scoring.CompareSound(playerFeatures, targetFeatures, in.PlayerParams, challenge.Sound.TargetParams())
	breakdown := curriculum.ExtractForTrack(challenge.Track, result)

	progress, err := s.mergeProgress(*challenge, in.PackDir, result.Overall, result.Stars, breakdown)
	if err != nil {
		return nil, err
	}

	outcome := &GradeOutcome{Challenge: *challenge, Result: result, Progress: progress}
	if all, err := s.store.All(); err == nil {
		outcome.Suggestions = curriculum.PracticeMore(
			breakdown, all, cat.Challenges, s.table, curriculum.DefaultMaxRecommendations)
	}
	return outcome, nil
}

// mergeProgress folds an attempt into the stored record with the best-wins /
// sticky-completion semantics and stamps the pack version when available.
func (s *GradeService) mergeProgress(
	challenge domain.Challenge,
	packDir string,
	overall, stars int,
	breakdown map[string]float64,
) (domain.ChallengeProgress, error) {
	progress := domain.ChallengeProgress{ChallengeID: challenge.ID}
	if prev, err := s.store.Get(challenge.ID); err == nil && prev != nil {
		progress = *prev
	}
	progress = progress.Apply(overall, stars, breakdown)
	progress.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	if s.packInfo != nil {
		if version, err := s.packInfo.Version(packDir); err == nil {
			progress.PackVersion = version
		}
	}

	if err := s.store.Put(progress); err != nil {
		return progress, fmt.Errorf("saving progress: %w", err)
	}
	return progress, nil
}
