package charts

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound indicates the chart file does not exist.
var ErrNotFound = errors.New("chart not found")

// Store is a flat directory of rendered chart files.
type Store struct {
	dir string
}

// NewStore creates the chart directory if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create chart dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Save writes a chart file.
func (s *Store) Save(name string, data []byte) error {
	clean, err := cleanName(name)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, clean), data, 0o644)
}

// Read returns a chart file's contents.
func (s *Store) Read(name string) ([]byte, error) {
	clean, err := cleanName(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Join(s.dir, clean))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return data, nil
}

// cleanName rejects anything that could escape the chart directory.
func cleanName(name string) (string, error) {
	if name == "" || strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return "", fmt.Errorf("invalid chart file name %q", name)
	}
	return name, nil
}
