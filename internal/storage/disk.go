package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DiskStorage implements Storage using the local filesystem.
type DiskStorage struct {
	logger  *zap.Logger
	baseDir string
	baseURL string
}

// NewDiskStorage creates a disk storage rooted at baseDir. Stored names are
// served under baseURL.
func NewDiskStorage(logger *zap.Logger, baseDir, baseURL string) (*DiskStorage, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, err
	}

	return &DiskStorage{
		logger:  logger,
		baseDir: baseDir,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}, nil
}

// BaseDir returns the root directory of the store.
func (s *DiskStorage) BaseDir() string {
	return s.baseDir
}

// Save stores a file under category with a uuid-prefixed name so repeated
// uploads of the same filename never collide.
func (s *DiskStorage) Save(ctx context.Context, category, filename string, content io.Reader) (string, error) {
	dir := filepath.Join(s.baseDir, category)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	stored := fmt.Sprintf("%s_%s", uuid.New().String()[:8], sanitizeFilename(filename))
	filePath := filepath.Join(dir, stored)

	file, err := os.Create(filePath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	if _, err := io.Copy(file, content); err != nil {
		return "", err
	}

	name := path.Join(category, stored)
	s.logger.Debug("stored media file",
		zap.String("name", name),
		zap.String("original", filename))
	return name, nil
}

// Open opens a stored file.
func (s *DiskStorage) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(s.baseDir, filepath.FromSlash(name)))
}

// Delete removes a stored file.
func (s *DiskStorage) Delete(ctx context.Context, name string) error {
	err := os.Remove(filepath.Join(s.baseDir, filepath.FromSlash(name)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// URL returns the public URL for a stored name.
func (s *DiskStorage) URL(name string) string {
	if name == "" {
		return ""
	}
	return s.baseURL + "/" + name
}

// sanitizeFilename keeps only the base name and strips path separators.
func sanitizeFilename(filename string) string {
	base := filepath.Base(filepath.Clean(filename))
	base = strings.ReplaceAll(base, " ", "_")
	if base == "." || base == string(filepath.Separator) {
		return "archivo"
	}
	return base
}
