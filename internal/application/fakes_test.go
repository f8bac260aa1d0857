package application_test

import (
	"fmt"

	"github.com/earcraft/earcraft/internal/domain"
)

type fakeCatalog struct {
	cat *domain.Catalog
	err error
}

func (f *fakeCatalog) Load(string) (*domain.Catalog, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.cat, nil
}

type fakeAnalyzer struct {
	features map[string]domain.SoundFeatures
}

func (f *fakeAnalyzer) Analyze(path string) (domain.SoundFeatures, error) {
	feat, ok := f.features[path]
	if !ok {
		return domain.SoundFeatures{}, fmt.Errorf("no such audio file: %s", path)
	}
	return feat, nil
}

type memStore struct {
	records map[string]domain.ChallengeProgress
	putErr  error
}

func newMemStore() *memStore {
	return &memStore{records: make(map[string]domain.ChallengeProgress)}
}

func (s *memStore) Get(challengeID string) (*domain.ChallengeProgress, error) {
	p, ok := s.records[challengeID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (s *memStore) All() (map[string]domain.ChallengeProgress, error) {
	out := make(map[string]domain.ChallengeProgress, len(s.records))
	for k, v := range s.records {
		out[k] = v
	}
	return out, nil
}

func (s *memStore) Put(p domain.ChallengeProgress) error {
	if s.putErr != nil {
		return s.putErr
	}
	s.records[p.ChallengeID] = p
	return nil
}

func (s *memStore) Close() error { return nil }

type fakePackInfo struct {
	version string
}

func (f *fakePackInfo) Version(string) (string, error) {
	if f.version == "" {
		return "", fmt.Errorf("not a versioned pack")
	}
	return f.version, nil
}
