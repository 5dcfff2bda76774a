package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/dishaportal/disha-backend/internal/pkg/logger"
)

// MaxImageSize is the largest accepted upload for program and gallery images.
const MaxImageSize = 2 << 20 // 2 MB

// ErrFileTooLarge is returned when an upload exceeds the size cap.
var ErrFileTooLarge = fmt.Errorf("file exceeds the %d byte limit", MaxImageSize)

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// LocalStorage handles saving uploaded files to the local filesystem.
type LocalStorage struct {
	basePath string // root directory where files are stored
}

// NewLocalStorage creates a LocalStorage rooted at basePath, creating the
// directory when missing.
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	return &LocalStorage{basePath: basePath}, nil
}

// BasePath returns the storage root.
func (ls *LocalStorage) BasePath() string {
	return ls.basePath
}

// SaveFile saves an uploaded file under subPath and returns the relative path
// recorded in the owning document (e.g. "programs/<id>/<uuid>.jpg").
func (ls *LocalStorage) SaveFile(fileHeader *multipart.FileHeader, subPath string) (string, error) {
	if fileHeader == nil {
		return "", nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	fullDirPath := ls.basePath
	if subPath != "" {
		fullDirPath = filepath.Join(ls.basePath, subPath)
		if err := os.MkdirAll(fullDirPath, os.ModePerm); err != nil {
			logger.Error().Err(err).Str("path", fullDirPath).Msg("Failed to create subdirectory")
			return "", fmt.Errorf("failed to create subdirectory: %w", err)
		}
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	uniqueFilename := uuid.New().String() + ext
	dstPath := filepath.Join(fullDirPath, uniqueFilename)

	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy uploaded file content")
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	relPath := uniqueFilename
	if subPath != "" {
		relPath = path(subPath, uniqueFilename)
	}
	logger.Info().Str("filename", fileHeader.Filename).Str("saved_as", relPath).Msg("File saved")
	return relPath, nil
}

// SaveImage saves an uploaded image, rejecting non-image extensions and any
// file over MaxImageSize.
func (ls *LocalStorage) SaveImage(fileHeader *multipart.FileHeader, subPath string) (string, error) {
	if fileHeader == nil {
		return "", nil
	}
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !imageExtensions[ext] {
		return "", fmt.Errorf("unsupported image type %q", ext)
	}
	if fileHeader.Size > MaxImageSize {
		return "", ErrFileTooLarge
	}
	return ls.SaveFile(fileHeader, subPath)
}

// DeleteFile removes a stored file by its recorded relative path. Missing
// files are not an error.
func (ls *LocalStorage) DeleteFile(relPath string) error {
	if relPath == "" {
		return nil
	}
	fullPath := filepath.Join(ls.basePath, filepath.FromSlash(relPath))
	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		logger.Error().Err(err).Str("path", fullPath).Msg("Failed to delete file")
		return err
	}
	return nil
}

// path joins URL-style relative segments with forward slashes regardless of OS.
func path(parts ...string) string {
	return strings.Join(parts, "/")
}
