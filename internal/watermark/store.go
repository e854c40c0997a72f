// Package watermark persists the "last viewed" listing id between
// sessions. The watermark is a single unsigned integer: every listing
// with an id at or below it is considered already seen.
package watermark

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Store loads and persists the watermark.
//
// Load never fails: a missing file, an unreadable file, or garbage
// content (e.g. from a crash mid-write) all mean "no watermark" and
// yield 0. Persist overwrites the stored value as a whole file.
type Store interface {
	Load() uint64
	Persist(id uint64) error
}

// FileStore keeps the watermark as a decimal string in a single file.
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by the given file path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultPath returns the per-user watermark location.
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, "torrview", "last_viewed")
}

// Load reads the persisted watermark, or 0 if there is none.
func (s *FileStore) Load() uint64 {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return 0
	}
	id, err := strconv.ParseUint(strings.TrimSpace(string(data)), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// Persist overwrites the stored watermark, creating the parent
// directory if needed.
func (s *FileStore) Persist(id uint64) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create watermark directory: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(strconv.FormatUint(id, 10)), 0644); err != nil {
		return fmt.Errorf("failed to write watermark: %w", err)
	}
	return nil
}

// MemStore is an in-memory Store for tests.
type MemStore struct {
	ID  uint64
	Err error // returned by Persist when set
}

// Load returns the in-memory watermark.
func (s *MemStore) Load() uint64 { return s.ID }

// Persist stores the watermark in memory.
func (s *MemStore) Persist(id uint64) error {
	if s.Err != nil {
		return s.Err
	}
	s.ID = id
	return nil
}
