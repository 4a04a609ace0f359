package policy

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// RefreshStore persists when the remote document was last fetched, so
// dynamic resolution can skip the network inside the refresh interval.
type RefreshStore interface {
	// Last returns the time of the most recent successful fetch. A zero
	// time means never fetched.
	Last() (time.Time, error)
	// Touch records a successful fetch at the given time.
	Touch(t time.Time) error
}

const refreshFileName = "last_refresh"

// FileStore keeps the refresh timestamp as a single RFC 3339 line in a
// state directory. A missing file reads as never fetched, so a fresh
// installation always refetches.
type FileStore struct {
	dir string
}

// NewFileStore returns a store rooted at dir, defaulting to the polite
// subdirectory of the user cache directory.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		cache, err := os.UserCacheDir()
		if err != nil {
			return nil, fmt.Errorf("resolve state directory: %w", err)
		}
		dir = filepath.Join(cache, "polite")
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path() string {
	return filepath.Join(s.dir, refreshFileName)
}

func (s *FileStore) Last() (time.Time, error) {
	raw, err := os.ReadFile(s.path())
	if os.IsNotExist(err) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("read refresh timestamp: %w", err)
	}
	t, err := time.Parse(time.RFC3339, strings.TrimSpace(string(raw)))
	if err != nil {
		return time.Time{}, fmt.Errorf("parse refresh timestamp: %w", err)
	}
	return t, nil
}

func (s *FileStore) Touch(t time.Time) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}
	data := []byte(t.UTC().Format(time.RFC3339) + "\n")
	if err := os.WriteFile(s.path(), data, 0o644); err != nil {
		return fmt.Errorf("write refresh timestamp: %w", err)
	}
	return nil
}
