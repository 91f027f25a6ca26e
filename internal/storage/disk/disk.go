// Package disk implements attachment storage on the local filesystem.
package disk

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dtroode/itemvault/internal/model"
)

var _ model.Storage = (*Storage)(nil)

// Storage keeps every object as a file directly under root.
// Keys are plain file names, never paths.
type Storage struct {
	root string
}

// New creates the root directory if needed and returns a Storage over it.
func New(root string) (*Storage, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage dir: %w", err)
	}
	return &Storage{root: root}, nil
}

// Upload writes the object to a file named after the key. An existing
// file with the same key is overwritten.
func (s *Storage) Upload(_ context.Context, key string, reader io.Reader) error {
	f, err := os.Create(s.path(key))
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, reader); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// Download opens the object for reading. Missing objects map to
// model.ErrNotFound.
func (s *Storage) Download(_ context.Context, key string) (io.ReadCloser, error) {
	f, err := os.Open(s.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return f, nil
}

// Delete removes the object. Deleting a missing object is not an error.
func (s *Storage) Delete(_ context.Context, key string) error {
	if err := os.Remove(s.path(key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove file: %w", err)
	}
	return nil
}

// Exists reports whether the object is present.
func (s *Storage) Exists(_ context.Context, key string) (bool, error) {
	_, err := os.Stat(s.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat file: %w", err)
	}
	return true, nil
}

// Locate returns the path under which the key is served, relative to
// the storage root's parent. It is recorded alongside the item so a
// client can tell where its attachment lives.
func (s *Storage) Locate(key string) string {
	return s.path(key)
}

func (s *Storage) path(key string) string {
	return filepath.Join(s.root, filepath.Base(key))
}
