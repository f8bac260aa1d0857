package application

import (
	"fmt"

	"github.com/earcraft/earcraft/internal/domain"
	"github.com/earcraft/earcraft/internal/domain/curriculum"
)

// DashboardService aggregates stored progress into the learner's competency
// view: skill scores, detected weaknesses, and challenge recommendations.
type DashboardService struct {
	catalog domain.CatalogLoader
	store   domain.ProgressStore
	table   curriculum.Table
}

func NewDashboardService(catalog domain.CatalogLoader, store domain.ProgressStore, table curriculum.Table) *DashboardService {
	return &DashboardService{catalog: catalog, store: store, table: table}
}

// Overview is everything the dashboard renders.
type Overview struct {
	Skills          []curriculum.SkillScore     `json:"skills"`
	Weaknesses      []curriculum.SkillScore     `json:"weaknesses"`
	Recommendations []curriculum.Recommendation `json:"recommendations"`
	Progress        map[string]domain.ChallengeProgress `json:"progress"`
}

func (s *DashboardService) Overview(packDir string) (*Overview, error) {
	cat, err := s.catalog.Load(packDir)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	all, err := s.store.All()
	if err != nil {
		return nil, fmt.Errorf("loading progress: %w", err)
	}

	skills := curriculum.ComputeSkillScores(all, s.table)
	weaknesses := curriculum.Weaknesses(skills, curriculum.DefaultWeaknessOptions())
	recommendations := curriculum.Recommendations(
		weaknesses, all, cat.Challenges, s.table, curriculum.DefaultMaxRecommendations)

	return &Overview{
		Skills:          skills,
		Weaknesses:      weaknesses,
		Recommendations: recommendations,
		Progress:        all,
	}, nil
}
