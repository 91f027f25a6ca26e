package model

import (
	"context"
	"io"
)

// Storage is the attachment byte store. A single Upload is atomic; the
// system never assumes atomicity across a Storage write and an ItemStore
// write.
type Storage interface {
	Upload(ctx context.Context, key string, reader io.Reader) error
	Download(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	// Locate returns the externally addressable path for a stored key.
	Locate(key string) string
}
