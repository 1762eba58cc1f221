package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	defaultFileMode = 0o644
	dirMode         = 0o755
)

// FileStore is a CatalogStore backed by a single JSON file.
type FileStore struct {
	path     string
	fileMode os.FileMode
}

// NewFileStore creates a store for path.
func NewFileStore(path string, opts ...Option) (*FileStore, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	s := &FileStore{path: path, fileMode: defaultFileMode}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Path returns the snapshot location.
func (s *FileStore) Path() string { return s.path }

// Save writes data to a temporary file in the same directory and renames it
// over the snapshot, so readers never see a partial file.
func (s *FileStore) Save(ctx context.Context, data []byte) error {
	if len(data) == 0 {
		return ErrEmptyData
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, dirMode); err != nil {
		return fmt.Errorf("create catalog dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp catalog: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp catalog: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp catalog: %w", err)
	}
	if err := os.Chmod(tmpName, s.fileMode); err != nil {
		return fmt.Errorf("chmod temp catalog: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replace catalog: %w", err)
	}
	return nil
}

// Load reads the snapshot.
func (s *FileStore) Load(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, s.path)
	}
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return data, nil
}

// Exists reports whether the snapshot file is present.
func (s *FileStore) Exists(_ context.Context) bool {
	_, err := os.Stat(s.path)
	return err == nil
}
