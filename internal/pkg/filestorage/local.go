package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/eduplat/courses/internal/pkg/logger"
)

// LocalStorage handles saving uploaded files to the local filesystem.
type LocalStorage struct {
	basePath string // The root directory where files will be stored
	baseURL  string // The base URL prepended to returned file references
}

// NewLocalStorage creates a new LocalStorage instance.
// basePath is the required directory path on the server.
// baseURL is optional; if provided, it will be prepended to returned file paths.
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}

	return &LocalStorage{
		basePath: basePath,
		baseURL:  baseURL,
	}, nil
}

// SaveFile saves an uploaded file under a subdirectory and returns its
// reference (URL path when baseURL is set, filesystem-relative otherwise).
// A nil fileHeader is not an error; it returns an empty reference.
func (ls *LocalStorage) SaveFile(fileHeader *multipart.FileHeader, subPath string) (string, error) {
	if fileHeader == nil {
		return "", nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	fullDirPath := ls.basePath
	if subPath != "" {
		fullDirPath = filepath.Join(ls.basePath, subPath)
		if err := os.MkdirAll(fullDirPath, os.ModePerm); err != nil {
			return "", fmt.Errorf("failed to create subdirectory: %w", err)
		}
	}

	// Unique filename to prevent collisions between uploads
	ext := filepath.Ext(fileHeader.Filename)
	uniqueFilename := uuid.New().String() + ext
	dstPath := filepath.Join(fullDirPath, uniqueFilename)

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		os.Remove(dstPath)
		return "", fmt.Errorf("failed to write uploaded file: %w", err)
	}

	relPath := filepath.ToSlash(filepath.Join(subPath, uniqueFilename))
	if ls.baseURL != "" {
		return strings.TrimSuffix(ls.baseURL, "/") + "/" + relPath, nil
	}
	return relPath, nil
}

// DeleteFile removes a previously stored file. Unknown references are ignored.
func (ls *LocalStorage) DeleteFile(fileRef string) error {
	if fileRef == "" {
		return nil
	}

	rel := fileRef
	if ls.baseURL != "" {
		rel = strings.TrimPrefix(rel, strings.TrimSuffix(ls.baseURL, "/")+"/")
	}
	fullPath := filepath.Join(ls.basePath, filepath.FromSlash(rel))

	if err := os.Remove(fullPath); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to delete file %s: %w", fullPath, err)
	}
	return nil
}

// GetFullPath returns the full filesystem path for a stored file reference.
func (ls *LocalStorage) GetFullPath(fileRef string) string {
	rel := fileRef
	if ls.baseURL != "" {
		rel = strings.TrimPrefix(rel, strings.TrimSuffix(ls.baseURL, "/")+"/")
	}
	return filepath.Join(ls.basePath, filepath.FromSlash(rel))
}

// BasePath returns the storage root directory.
func (ls *LocalStorage) BasePath() string {
	return ls.basePath
}
