package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"skkuri-backend/internal/logger"

	"github.com/google/uuid"
)

// ImageRoutePrefix is the public path artwork images are served under.
const ImageRoutePrefix = "/activity/artwork/image/"

// LocalStorageService stores files in a single flat directory on local disk.
type LocalStorageService struct {
	baseURL   string // Server URL (e.g., "http://localhost:8080")
	uploadDir string
}

// NewLocalStorageService creates the upload directory if needed.
func NewLocalStorageService(baseURL, uploadDir string) (*LocalStorageService, error) {
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalStorageService{
		baseURL:   strings.TrimRight(baseURL, "/"),
		uploadDir: uploadDir,
	}, nil
}

func (s *LocalStorageService) Save(ctx context.Context, ext string, r io.Reader, maxBytes int64) (string, int64, error) {
	ext = strings.ToLower(ext)
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	if strings.ContainsAny(ext, `/\`) {
		return "", 0, ErrInvalidKey
	}
	key := uuid.NewString() + ext

	logger.ExternalServiceCall("storage", "Save", "key", key)

	// Write to a hidden temp file first so a partial upload never shows up under a real key.
	tmp, err := os.CreateTemp(s.uploadDir, ".upload-*")
	if err != nil {
		logger.ExternalServiceResult("storage", "Save", err, "key", key)
		return "", 0, fmt.Errorf("failed to create file: %w", err)
	}
	tmpName := tmp.Name()
	cleanup := func() {
		tmp.Close()
		os.Remove(tmpName)
	}

	src := r
	if maxBytes > 0 {
		src = io.LimitReader(r, maxBytes+1)
	}
	n, err := io.Copy(tmp, src)
	if err != nil {
		cleanup()
		logger.ExternalServiceResult("storage", "Save", err, "key", key)
		return "", 0, fmt.Errorf("failed to write file: %w", err)
	}
	if maxBytes > 0 && n > maxBytes {
		cleanup()
		return "", 0, ErrFileTooLarge
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", 0, fmt.Errorf("failed to write file: %w", err)
	}
	if err := os.Rename(tmpName, filepath.Join(s.uploadDir, key)); err != nil {
		os.Remove(tmpName)
		logger.ExternalServiceResult("storage", "Save", err, "key", key)
		return "", 0, fmt.Errorf("failed to store file: %w", err)
	}

	logger.ExternalServiceResult("storage", "Save", nil, "key", key, "size", n)
	return key, n, nil
}

func (s *LocalStorageService) Open(ctx context.Context, key string) (*Object, error) {
	path, err := s.path(key)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrFileNotFound
		}
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	if info.IsDir() {
		f.Close()
		return nil, ErrFileNotFound
	}
	return &Object{ReadSeekCloser: f, Key: key, Size: info.Size(), ModTime: info.ModTime()}, nil
}

func (s *LocalStorageService) Delete(ctx context.Context, key string) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}
	logger.ExternalServiceCall("storage", "Delete", "key", key)
	err = os.Remove(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.ExternalServiceResult("storage", "Delete", err, "key", key)
		return fmt.Errorf("failed to delete file: %w", err)
	}
	logger.ExternalServiceResult("storage", "Delete", nil, "key", key)
	return nil
}

func (s *LocalStorageService) List(ctx context.Context) ([]FileInfo, error) {
	entries, err := os.ReadDir(s.uploadDir)
	if err != nil {
		return nil, fmt.Errorf("failed to list upload directory: %w", err)
	}
	files := make([]FileInfo, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			// removed between ReadDir and Info
			continue
		}
		files = append(files, FileInfo{Key: e.Name(), Size: info.Size(), ModTime: info.ModTime()})
	}
	return files, nil
}

func (s *LocalStorageService) URL(key string) string {
	return s.baseURL + ImageRoutePrefix + key
}

// ValidKey reports whether key is a bare, visible file name.
func ValidKey(key string) bool {
	if key == "" || key == "." || key == ".." || strings.HasPrefix(key, ".") {
		return false
	}
	return !strings.ContainsAny(key, `/\`) && filepath.Base(key) == key
}

func (s *LocalStorageService) path(key string) (string, error) {
	if !ValidKey(key) {
		return "", ErrInvalidKey
	}
	return filepath.Join(s.uploadDir, key), nil
}
