// Package storage persists the best score and the top-ranked run scores.
// A Store keeps the authoritative values in memory and writes them through
// a Backend; persistence failures are logged and never reach the game.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/charmbracelet/log"
)

// RankedLimit is the number of scores kept in the ranked list.
const RankedLimit = 5

// Backend reads and writes the two persisted records.
type Backend interface {
	LoadBest() (int, error)
	LoadRanked() ([]int, error)
	SaveBest(score int) error
	SaveRanked(scores []int) error
	Close() error
}

// Kind names a backend implementation.
type Kind string

const (
	KindText   Kind = "text"
	KindSQLite Kind = "sqlite"
)

// Store holds the best score and the ranked list for a data directory.
// It is safe for concurrent use; SSH sessions share one Store.
type Store struct {
	mu      sync.Mutex
	backend Backend
	logger  *log.Logger
	best    int
	ranked  []int
}

// New wraps backend and loads the persisted records.
// A nil logger discards warnings.
func New(backend Backend, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Store{backend: backend, logger: logger}
	s.Load()
	return s
}

// Open creates the data directory and opens a store of the given kind in it.
func Open(kind Kind, dataDir string, logger *log.Logger) (*Store, error) {
	dir, err := ExpandHome(dataDir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	var backend Backend
	switch kind {
	case KindText, "":
		backend = NewTextBackend(dir)
	case KindSQLite:
		backend, err = OpenSQLite(filepath.Join(dir, "flappy.db"))
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", kind)
	}

	return New(backend, logger), nil
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// Load replaces the in-memory records with the persisted ones.
// Unreadable records fall back to 0 and an empty list.
func (s *Store) Load() {
	s.mu.Lock()
	defer s.mu.Unlock()

	best, err := s.backend.LoadBest()
	if err != nil {
		s.logger.Warn("cannot load best score", "err", err)
		best = 0
	}

	// Keep whatever was read before a failure.
	ranked, err := s.backend.LoadRanked()
	if err != nil {
		s.logger.Warn("cannot load ranked scores", "err", err, "kept", len(ranked))
	}

	s.best = best
	s.ranked = topScores(ranked)
}

// RecordRun adds a finished run's score. The best score is persisted only
// when beaten; the ranked list is persisted after every run.
func (s *Store) RecordRun(score int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if score > s.best {
		s.best = score
		if err := s.backend.SaveBest(score); err != nil {
			s.logger.Warn("cannot save best score", "score", score, "err", err)
		}
	}

	s.ranked = topScores(append(s.ranked, score))
	if err := s.backend.SaveRanked(s.ranked); err != nil {
		s.logger.Warn("cannot save ranked scores", "err", err)
	}
}

// Best returns the best score.
func (s *Store) Best() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.best
}

// Ranked returns a copy of the ranked list, highest first.
func (s *Store) Ranked() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.ranked)
}

// Close releases the backend.
func (s *Store) Close() error {
	return s.backend.Close()
}

// topScores sorts scores descending and keeps the first RankedLimit.
func topScores(scores []int) []int {
	out := slices.Clone(scores)
	slices.SortFunc(out, func(a, b int) int { return b - a })
	if len(out) > RankedLimit {
		out = out[:RankedLimit]
	}
	return out
}
