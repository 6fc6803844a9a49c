package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"fridgemate/domain"
)

// FileStore persists a collection as a single JSON document on disk.
// It is the file-backed implementation behind the per-feature
// persistence ports, and doubles as the test double: no database is
// required to exercise a store end to end.
type FileStore[T any] struct {
	path string
}

func NewFileStore[T any](dir, fileName string) *FileStore[T] {
	return &FileStore[T]{path: filepath.Join(dir, fileName)}
}

// Load decodes the whole collection. A file that has never been
// written reports domain.ErrCollectionNotFound; unreadable JSON
// reports domain.ErrCollectionDecode.
func (f *FileStore[T]) Load() ([]T, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrCollectionNotFound
		}
		return nil, err
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCollectionDecode, err)
	}
	return items, nil
}

// Save replaces the whole collection. The write goes through a
// temporary file and a rename so a crash mid-write never leaves a
// half-encoded document behind.
func (f *FileStore[T]) Save(items []T) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return err
	}

	data, err := json.Marshal(items)
	if err != nil {
		return err
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}
