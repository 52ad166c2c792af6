package storage

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// File names used by TextBackend.
const (
	BestFile   = "highscore.txt"
	RankedFile = "scores.txt"
)

// TextBackend stores each record in a flat, human-editable text file:
// the best score on a single line and the ranked list one score per line.
type TextBackend struct {
	dir string
}

// NewTextBackend returns a backend rooted at dir.
func NewTextBackend(dir string) *TextBackend {
	return &TextBackend{dir: dir}
}

// LoadBest reads the best score. A missing file is 0.
func (b *TextBackend) LoadBest() (int, error) {
	data, err := os.ReadFile(filepath.Join(b.dir, BestFile))
	if errors.Is(err, os.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read best score: %w", err)
	}

	best, ok := parseScore(string(data))
	if !ok {
		return 0, fmt.Errorf("storage: malformed best score %q", strings.TrimSpace(string(data)))
	}
	return best, nil
}

// LoadRanked reads every parseable line of the ranked file.
// Malformed lines are skipped. A missing file is an empty list.
func (b *TextBackend) LoadRanked() ([]int, error) {
	f, err := os.Open(filepath.Join(b.dir, RankedFile))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot read ranked scores: %w", err)
	}
	defer f.Close()

	// Lines are read whole so an arbitrarily long bad line is skipped
	// like any other.
	var scores []int
	r := bufio.NewReader(f)
	for {
		line, err := r.ReadString('\n')
		if score, ok := parseScore(line); ok {
			scores = append(scores, score)
		}
		if errors.Is(err, io.EOF) {
			return scores, nil
		}
		if err != nil {
			return scores, fmt.Errorf("storage: cannot read ranked scores: %w", err)
		}
	}
}

// SaveBest overwrites the best score file.
func (b *TextBackend) SaveBest(score int) error {
	return b.write(BestFile, []byte(strconv.Itoa(score)+"\n"))
}

// SaveRanked overwrites the ranked file with scores, one per line.
func (b *TextBackend) SaveRanked(scores []int) error {
	var buf bytes.Buffer
	for _, score := range scores {
		buf.WriteString(strconv.Itoa(score))
		buf.WriteByte('\n')
	}
	return b.write(RankedFile, buf.Bytes())
}

// Close is a no-op; files are not held open.
func (b *TextBackend) Close() error {
	return nil
}

func (b *TextBackend) write(name string, data []byte) error {
	if err := os.MkdirAll(b.dir, 0o755); err != nil {
		return fmt.Errorf("storage: cannot create directory %s: %w", b.dir, err)
	}
	if err := os.WriteFile(filepath.Join(b.dir, name), data, 0o644); err != nil {
		return fmt.Errorf("storage: cannot write %s: %w", name, err)
	}
	return nil
}

// parseScore accepts a non-negative integer surrounded by optional whitespace.
func parseScore(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
