// Package filestore accepts, validates and stores uploaded word documents on
// the local filesystem. It knows nothing about the entities that reference the
// stored files.
package filestore

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dopagraming/wastewater-records/pkg/apperr"
)

// MaxFileSize is the upload size limit (10 MiB).
const MaxFileSize = 10 << 20

var allowedExtensions = map[string]bool{
	".doc":  true,
	".docx": true,
}

// Store writes accepted uploads under a single directory.
type Store struct {
	dir string
}

// New creates the upload directory if needed and returns a store over it.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the directory files are stored under.
func (s *Store) Dir() string { return s.dir }

// Save validates the upload and writes it to disk, returning the generated
// filename. The name is unique within the directory: form field, timestamp and
// a random component, with the original extension preserved.
func (s *Store) Save(field, originalName string, size int64, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if !allowedExtensions[ext] {
		return "", apperr.UnsupportedFileType(ext)
	}
	if size > MaxFileSize {
		return "", apperr.FileTooLarge(MaxFileSize)
	}

	filename := fmt.Sprintf("%s-%d-%s%s", field, time.Now().UnixMilli(), uuid.New().String()[:8], ext)
	dst, err := os.Create(filepath.Join(s.dir, filename))
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	// The declared size is client-supplied; cap the copy as well.
	n, err := io.Copy(dst, io.LimitReader(r, MaxFileSize+1))
	if err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("write file: %w", err)
	}
	if n > MaxFileSize {
		os.Remove(dst.Name())
		return "", apperr.FileTooLarge(MaxFileSize)
	}
	return filename, nil
}
