package document

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/kharcha/kharcha/internal/utils"
	log "github.com/sirupsen/logrus"
)

// Store loads and persists the single ledger document.
type Store interface {
	// Load returns the persisted document. It never fails on unreadable or
	// corrupt state; it recovers into a fallback document instead.
	Load(ctx context.Context) (*Document, error)
	// Save persists the full document, atomically from a reader's point of
	// view. Write failures are returned to the caller.
	Save(ctx context.Context, doc *Document) error
}

// FileStore keeps the document in one JSON file on disk.
type FileStore struct {
	path  string
	clock utils.Clock
}

func NewFileStore(path string, clock utils.Clock) *FileStore {
	return &FileStore{path: path, clock: clock}
}

func (s *FileStore) Load(ctx context.Context) (*Document, error) {
	monthKey := utils.MonthKey(s.clock.Now())

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debugf("no ledger file at %s, starting fresh", s.path)
			return NewDefault(monthKey), nil
		}
		log.Warnf("ledger file %s unreadable (%v), recovering with empty document", s.path, err)
		return NewFallback(monthKey), nil
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		log.Warnf("ledger file %s corrupted (%v), recovering with empty document", s.path, err)
		return NewFallback(monthKey), nil
	}

	doc.Backfill(monthKey)
	return &doc, nil
}

func (s *FileStore) Save(ctx context.Context, doc *Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize ledger document: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create ledger directory: %w", err)
	}

	// Write to a temp file in the same directory and rename it over the
	// target, so a crash mid-write never leaves a truncated document.
	tmp, err := os.CreateTemp(dir, ".ledger-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp ledger file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write ledger file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close ledger file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace ledger file: %w", err)
	}
	return nil
}
