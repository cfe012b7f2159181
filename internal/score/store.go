// Package score persists the single best score across runs.
package score

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/golang/glog"
)

// Key is the identifier the best score is stored under.
const Key = "snake_best_v2"

// Store loads and saves the best score. Load never fails: anything missing or
// unreadable counts as zero.
type Store interface {
	Load() int
	Save(best int) error
}

// Parse reads a stored value as a non-negative integer, defaulting to 0.
func Parse(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// FileStore keeps the score as a decimal string inside a small JSON object.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Path() string { return s.path }

func (s *FileStore) Load() int {
	entries, err := s.read()
	if err != nil {
		glog.Warningf("score: %v, starting from 0", err)
		return 0
	}
	return Parse(entries[Key])
}

func (s *FileStore) Save(best int) error {
	entries, err := s.read()
	if err != nil {
		// overwrite whatever was there
		entries = make(map[string]string)
	}
	entries[Key] = strconv.Itoa(best)

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode best score: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create score dir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write best score: %w", err)
	}
	return nil
}

// read returns an empty map when the file does not exist yet.
func (s *FileStore) read() (map[string]string, error) {
	entries := make(map[string]string)
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return entries, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}
	return entries, nil
}

// MemoryStore is a Store that lives only as long as the process.
type MemoryStore struct {
	raw string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// SetRaw replaces the stored value verbatim.
func (s *MemoryStore) SetRaw(raw string) { s.raw = raw }

func (s *MemoryStore) Load() int { return Parse(s.raw) }

func (s *MemoryStore) Save(best int) error {
	s.raw = strconv.Itoa(best)
	return nil
}

// Open returns a FileStore for path, or a MemoryStore when path is empty.
func Open(path string) Store {
	if path == "" {
		return NewMemoryStore()
	}
	return NewFileStore(path)
}
