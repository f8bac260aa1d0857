package progress_test

import (
	"path/filepath"
	"testing"

	"github.com/earcraft/earcraft/internal/adapters/outbound/progress"
	"github.com/earcraft/earcraft/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openStore(t *testing.T) *progress.SQLiteStore {
	t.Helper()
	store, err := progress.Open(filepath.Join(t.TempDir(), "data", "progress.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStore_RoundTrip(t *testing.T) {
	store := openStore(t)

	record := domain.ChallengeProgress{
		ChallengeID: "sd-101",
		BestScore:   87,
		Stars:       2,
		Attempts:    3,
		Completed:   true,
		Breakdown:   map[string]float64{"filter": 72.5, "oscillator": 94},
		PackVersion: "abc1234",
		UpdatedAt:   "2026-08-29T10:00:00Z",
	}
	require.NoError(t, store.Put(record))

	got, err := store.Get("sd-101")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, record, *got)
}

func TestSQLiteStore_GetMissingReturnsNil(t *testing.T) {
	store := openStore(t)

	got, err := store.Get("nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSQLiteStore_PutReplacesRecord(t *testing.T) {
	store := openStore(t)

	first := domain.ChallengeProgress{ChallengeID: "sd-101", BestScore: 55, Attempts: 1}
	require.NoError(t, store.Put(first))

	updated := first.Apply(90, 2, map[string]float64{"filter": 90})
	require.NoError(t, store.Put(updated))

	got, err := store.Get("sd-101")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 90, got.BestScore)
	assert.Equal(t, 2, got.Attempts)
	assert.True(t, got.Completed)
}

func TestSQLiteStore_All(t *testing.T) {
	store := openStore(t)

	require.NoError(t, store.Put(domain.ChallengeProgress{ChallengeID: "sd-101", BestScore: 80}))
	require.NoError(t, store.Put(domain.ChallengeProgress{ChallengeID: "mix-101", BestScore: 65}))

	all, err := store.All()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, 80, all["sd-101"].BestScore)
	assert.Equal(t, 65, all["mix-101"].BestScore)
}

func TestSQLiteStore_EmptyAll(t *testing.T) {
	store := openStore(t)

	all, err := store.All()
	require.NoError(t, err)
	assert.Empty(t, all)
}
