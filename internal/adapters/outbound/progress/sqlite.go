package progress

import (
	"database/sql"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/earcraft/earcraft/internal/domain"
)

//go:embed schema.sql
var schema string

// SQLiteStore implements domain.ProgressStore on a single-file SQLite
// database. One row per challenge; Put replaces the whole record since the
// merge semantics live in the domain, not the store.
type SQLiteStore struct {
	db *sql.DB
}

// Open creates the parent directory if needed, opens the database and runs
// the embedded schema.
func Open(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening progress db: %w", err)
	}
	// WAL keeps concurrent reads from blocking behind submissions.
	if _, err := db.Exec("PRAGMA journal_mode=WAL; PRAGMA synchronous=NORMAL;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("configuring progress db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing progress schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Get(challengeID string) (*domain.ChallengeProgress, error) {
	row := s.db.QueryRow(`
		SELECT challenge_id, best_score, stars, attempts, completed, breakdown, pack_version, updated_at
		FROM challenge_progress WHERE challenge_id = ?`, challengeID)

	p, err := scanProgress(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *SQLiteStore) All() (map[string]domain.ChallengeProgress, error) {
	rows, err := s.db.Query(`
		SELECT challenge_id, best_score, stars, attempts, completed, breakdown, pack_version, updated_at
		FROM challenge_progress`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	all := make(map[string]domain.ChallengeProgress)
	for rows.Next() {
		p, err := scanProgress(rows)
		if err != nil {
			return nil, err
		}
		all[p.ChallengeID] = p
	}
	return all, rows.Err()
}

func (s *SQLiteStore) Put(p domain.ChallengeProgress) error {
	breakdown, err := json.Marshal(p.Breakdown)
	if err != nil {
		return fmt.Errorf("encoding breakdown: %w", err)
	}
	_, err = s.db.Exec(`
		INSERT INTO challenge_progress
			(challenge_id, best_score, stars, attempts, completed, breakdown, pack_version, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(challenge_id) DO UPDATE SET
			best_score   = excluded.best_score,
			stars        = excluded.stars,
			attempts     = excluded.attempts,
			completed    = excluded.completed,
			breakdown    = excluded.breakdown,
			pack_version = excluded.pack_version,
			updated_at   = excluded.updated_at`,
		p.ChallengeID, p.BestScore, p.Stars, p.Attempts, p.Completed,
		string(breakdown), p.PackVersion, p.UpdatedAt)
	return err
}

func (s *SQLiteStore) Close() error { return s.db.Close() }

type scannable interface {
	Scan(dest ...any) error
}

func scanProgress(row scannable) (domain.ChallengeProgress, error) {
	var p domain.ChallengeProgress
	var breakdown string
	if err := row.Scan(&p.ChallengeID, &p.BestScore, &p.Stars, &p.Attempts,
		&p.Completed, &breakdown, &p.PackVersion, &p.UpdatedAt); err != nil {
		return p, err
	}
	if breakdown != "" && breakdown != "{}" {
		if err := json.Unmarshal([]byte(breakdown), &p.Breakdown); err != nil {
			return p, fmt.Errorf("decoding breakdown for %s: %w", p.ChallengeID, err)
		}
	}
	return p, nil
}
