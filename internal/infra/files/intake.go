// Package files writes uploaded content under a fixed base directory.
package files

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"userpay-app/internal/domain/media"
)

var ErrInvalidName = errors.New("files: name must be a plain local file name")

type Intake struct {
	baseDir string
}

func NewIntake(baseDir string) *Intake {
	return &Intake{baseDir: baseDir}
}

func (in *Intake) BaseDir() string {
	return in.baseDir
}

// Store writes content to <baseDir>/<name>, replacing any earlier file of the
// same name. Concurrent writes to one name are not serialized.
func (in *Intake) Store(name string, content io.Reader) (media.StoredFile, error) {
	if !validName(name) {
		return media.StoredFile{}, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	if err := os.MkdirAll(in.baseDir, 0o755); err != nil {
		return media.StoredFile{}, fmt.Errorf("create upload dir: %w", err)
	}

	path := filepath.Join(in.baseDir, name)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return media.StoredFile{}, fmt.Errorf("open %s: %w", path, err)
	}

	n, err := io.Copy(f, content)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return media.StoredFile{}, fmt.Errorf("write %s: %w", path, err)
	}

	return media.StoredFile{Name: name, Path: path, Size: n}, nil
}

// validName accepts the name unmodified as long as it stays directly inside
// the base directory.
func validName(name string) bool {
	if name == "" || name == "." || !filepath.IsLocal(name) {
		return false
	}
	return filepath.Base(name) == name
}
