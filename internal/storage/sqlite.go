package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SQLiteBackend stores the records in a SQLite database using the pure-Go
// modernc.org/sqlite driver, so no CGO is required.
type SQLiteBackend struct {
	db *sql.DB
}

// OpenSQLite creates or opens a database at dbPath.
// It creates the parent directories if needed and runs migrations.
func OpenSQLite(dbPath string) (*SQLiteBackend, error) {
	dbPath, err := ExpandHome(dbPath)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	b := &SQLiteBackend{db: db}
	if err := b.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return b, nil
}

// migrate creates the schema if it doesn't exist.
func (b *SQLiteBackend) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS best_score (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			score INTEGER NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS ranked_scores (
			position INTEGER PRIMARY KEY,
			score INTEGER NOT NULL
		);
	`

	_, err := b.db.Exec(schema)
	return err
}

// LoadBest returns the stored best score, or 0 when none is stored.
func (b *SQLiteBackend) LoadBest() (int, error) {
	var score int
	err := b.db.QueryRow("SELECT score FROM best_score WHERE id = 1").Scan(&score)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}
	return score, nil
}

// LoadRanked returns the stored ranked list in position order.
func (b *SQLiteBackend) LoadRanked() ([]int, error) {
	rows, err := b.db.Query("SELECT score FROM ranked_scores ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query ranked scores: %w", err)
	}
	defer rows.Close()

	var scores []int
	for rows.Next() {
		var score int
		if err := rows.Scan(&score); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		scores = append(scores, score)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return scores, nil
}

// SaveBest upserts the best score.
func (b *SQLiteBackend) SaveBest(score int) error {
	_, err := b.db.Exec(
		`INSERT INTO best_score (id, score) VALUES (1, ?)
		 ON CONFLICT(id) DO UPDATE SET score = excluded.score, updated_at = CURRENT_TIMESTAMP`,
		score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save best score: %w", err)
	}
	return nil
}

// SaveRanked replaces the ranked list in a single transaction.
func (b *SQLiteBackend) SaveRanked(scores []int) error {
	tx, err := b.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.Exec("DELETE FROM ranked_scores"); err != nil {
		return fmt.Errorf("storage: cannot clear ranked scores: %w", err)
	}
	for i, score := range scores {
		if _, err := tx.Exec("INSERT INTO ranked_scores (position, score) VALUES (?, ?)", i, score); err != nil {
			return fmt.Errorf("storage: cannot save ranked score: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit ranked scores: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (b *SQLiteBackend) Close() error {
	if b.db != nil {
		return b.db.Close()
	}
	return nil
}
