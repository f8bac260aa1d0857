package application

import (
	"fmt"
	"time"

	"github.com/earcraft/earcraft/internal/domain"
	"github.com/earcraft/earcraft/internal/domain/curriculum"
	"github.com/earcraft/earcraft/internal/domain/scoring"
)

// MixService orchestrates mix-challenge submissions the way GradeService
// handles sound ones; the evaluator needs no audio analysis, only the layer
// snapshot.
type MixService struct {
	catalog  domain.CatalogLoader
	store    domain.ProgressStore
	packInfo domain.PackInfo
	table    curriculum.Table
}

func NewMixService(
	catalog domain.CatalogLoader,
	store domain.ProgressStore,
	packInfo domain.PackInfo,
	table curriculum.Table,
) *MixService {
	return &MixService{catalog: catalog, store: store, packInfo: packInfo, table: table}
}

// MixOutcome bundles a mix evaluation with its merged progress.
type MixOutcome struct {
	Challenge   domain.Challenge            `json:"challenge"`
	Result      domain.ProductionScoreResult `json:"result"`
	Progress    domain.ChallengeProgress    `json:"progress"`
	Suggestions []curriculum.Recommendation `json:"suggestions,omitempty"`
}

func (s *MixService) Evaluate(packDir, challengeID string, layers []domain.LayerState) (*MixOutcome, error) {
	cat, err := s.catalog.Load(packDir)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}

	challenge := cat.ByID(challengeID)
	if challenge == nil {
		return nil, fmt.Errorf("challenge %q not found in pack %s", challengeID, cat.Pack)
	}
	if challenge.Kind != domain.KindMix {
		return nil, fmt.Errorf("challenge %q is a %s challenge, not a mix challenge", challengeID, challenge.Kind)
	}

	result := scoring.EvaluateProduction(*challenge.Mix, layers)
	breakdown := curriculum.ExtractForMixTrack(challenge.Track, result)

	progress := domain.ChallengeProgress{ChallengeID: challenge.ID}
	if prev, err := s.store.Get(challenge.ID); err == nil && prev != nil {
		progress = *prev
	}
	progress = progress.Apply(result.Overall, result.Stars, breakdown)
	progress.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	if s.packInfo != nil {
		if version, err := s.packInfo.Version(packDir); err == nil {
			progress.PackVersion = version
		}
	}
	if err := s.store.Put(progress); err != nil {
		return nil, fmt.Errorf("saving progress: %w", err)
	}

	outcome := &MixOutcome{Challenge: *challenge, Result: result, Progress: progress}
	if all, err := s.store.All(); err == nil {
		outcome.Suggestions = curriculum.PracticeMore(
			breakdown, all, cat.Challenges, s.table, curriculum.DefaultMaxRecommendations)
	}
	return outcome, nil
}
