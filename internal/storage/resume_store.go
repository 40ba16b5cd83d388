// Package storage keeps uploaded résumé documents on local disk under
// opaque, generated filenames.
package storage

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"jobboard/internal/apperr"
)

const maxResumeSize = 5 * 1024 * 1024

type ResumeStore struct {
	Dir string
}

func NewResumeStore(dir string) (*ResumeStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &ResumeStore{Dir: dir}, nil
}

// Save validates and stores a résumé, returning its opaque filename.
// PDF only, 5 MB max.
func (s *ResumeStore) Save(originalName string, size int64, r io.Reader) (string, error) {
	if !strings.EqualFold(filepath.Ext(originalName), ".pdf") {
		return "", apperr.NewValidation("file", "only PDF files are accepted")
	}
	if size > maxResumeSize {
		return "", apperr.NewValidation("file", "maximum file size is 5 MB")
	}

	filename := uuid.NewString() + ".pdf"
	f, err := os.Create(filepath.Join(s.Dir, filename))
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, io.LimitReader(r, maxResumeSize)); err != nil {
		return "", err
	}
	return filename, nil
}

// Path resolves a stored filename to its on-disk path. The name is reduced
// to its base component so callers cannot escape the upload directory.
func (s *ResumeStore) Path(filename string) string {
	return filepath.Join(s.Dir, filepath.Base(filename))
}

type FileMeta struct {
	Filename   string    `json:"filename"`
	Size       int64     `json:"size"`
	UploadedAt time.Time `json:"uploaded_at"`
}

func (s *ResumeStore) Stat(filename string) (*FileMeta, error) {
	info, err := os.Stat(s.Path(filename))
	if os.IsNotExist(err) {
		return nil, apperr.NotFound("file")
	}
	if err != nil {
		return nil, err
	}
	return &FileMeta{
		Filename:   filepath.Base(filename),
		Size:       info.Size(),
		UploadedAt: info.ModTime().UTC(),
	}, nil
}
