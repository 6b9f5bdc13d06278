package appstate

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

const (
	appDirName   = "log-manager"
	dataFileName = "app_data.json"
)

// Persister loads and saves the whole State.
type Persister interface {
	// Load returns the stored State. A missing document is an empty State
	// and no error. On any other failure Load returns an empty State and
	// the error, so callers can report it and carry on.
	Load() (*State, error)
	// Save replaces the stored document with s.
	Save(s *State) error
}

// FileStore keeps the State as a single JSON file.
type FileStore struct {
	path string

	mu       sync.Mutex
	dirReady bool
}

// NewFileStore creates a FileStore writing to path. Nothing touches the disk
// until the first Load or Save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultPath returns <user config dir>/log-manager/app_data.json, or a path
// under the working directory when no config dir is known.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		dir = "."
	}
	return filepath.Join(dir, appDirName, dataFileName)
}

// Path is the document location.
func (f *FileStore) Path() string {
	return f.path
}

// Load reads the document. A missing file is an empty State and no error.
func (f *FileStore) Load() (*State, error) {
	b, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return New(), nil
		}
		return New(), fmt.Errorf("read %s: %w", f.path, err)
	}
	s, err := Decode(b)
	if err != nil {
		return New(), fmt.Errorf("parse %s: %w", f.path, err)
	}
	return s, nil
}

// Save writes s to a temp file beside the target and renames it into place.
func (f *FileStore) Save(s *State) error {
	b, err := Encode(s)
	if err != nil {
		return err
	}
	if err := f.ensureDir(); err != nil {
		return err
	}

	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, "app_data-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write %s: %w", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close %s: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, f.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace %s: %w", f.path, err)
	}
	return nil
}

// ensureDir creates the parent directory the first time it is needed.
func (f *FileStore) ensureDir() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.dirReady {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	f.dirReady = true
	return nil
}

var _ Persister = (*FileStore)(nil)
