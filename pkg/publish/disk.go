package publish

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// DiskStore writes snapshots under a local directory.
type DiskStore struct {
	dir     string
	maxSize int64
}

// NewDiskStore creates a DiskStore rooted at dir.
//
// Parameters:
//   - dir: directory to write snapshots into (created if missing)
//   - maxSize: maximum snapshot size in bytes (0 = no limit)
func NewDiskStore(dir string, maxSize int64) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	return &DiskStore{
		dir:     dir,
		maxSize: maxSize,
	}, nil
}

// Save writes the snapshot to a temp file and renames it into place, so
// a crash mid-write never leaves a torn page behind.
func (s *DiskStore) Save(ctx context.Context, key, contentType string, r io.Reader) error {
	path, err := s.keyPath(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".picklist-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	reader := r
	if s.maxSize > 0 {
		reader = io.LimitReader(r, s.maxSize+1) // +1 to detect overflow
	}

	written, err := io.Copy(tmp, reader)
	if err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if s.maxSize > 0 && written > s.maxSize {
		return ErrTooLarge
	}

	return os.Rename(tmp.Name(), path)
}

// URL returns a file:// URL for the snapshot.
func (s *DiskStore) URL(key string) string {
	path, err := s.keyPath(key)
	if err != nil {
		return ""
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return ""
	}
	return "file://" + filepath.ToSlash(abs)
}

// keyPath resolves a key inside the store root.
// SECURITY: keys are caller-controlled; reject anything that would
// escape the root directory.
func (s *DiskStore) keyPath(key string) (string, error) {
	if key == "" {
		return "", ErrBadKey
	}
	clean := filepath.Clean(filepath.FromSlash(key))
	if clean == "." || filepath.IsAbs(clean) || strings.HasPrefix(clean, "..") {
		return "", ErrBadKey
	}
	return filepath.Join(s.dir, clean), nil
}
