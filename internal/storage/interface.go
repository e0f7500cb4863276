package storage

import (
	"context"
	"errors"
	"io"
	"time"
)

var (
	ErrFileNotFound = errors.New("file not found")
	ErrFileTooLarge = errors.New("file exceeds size limit")
	ErrInvalidKey   = errors.New("invalid file key")
)

// StorageInterface defines the content store for uploaded artwork images.
// Keys are bare file names generated by Save.
type StorageInterface interface {
	// Save writes r under a freshly generated key ending in ext. Writes larger
	// than maxBytes fail with ErrFileTooLarge and leave nothing behind.
	Save(ctx context.Context, ext string, r io.Reader, maxBytes int64) (key string, size int64, err error)

	// Open returns the stored file for reading.
	Open(ctx context.Context, key string) (*Object, error)

	// Delete removes a file. Deleting a missing file is not an error.
	Delete(ctx context.Context, key string) error

	// List returns every stored file.
	List(ctx context.Context) ([]FileInfo, error)

	// URL returns the public locator for key.
	URL(key string) string
}

// Object is an opened stored file.
type Object struct {
	io.ReadSeekCloser
	Key     string
	Size    int64
	ModTime time.Time
}

type FileInfo struct {
	Key     string
	Size    int64
	ModTime time.Time
}
