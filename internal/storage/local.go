package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// PublicPrefix is the URL prefix the router serves the uploads directory on.
const PublicPrefix = "/uploads"

type Local struct {
	basePath string
}

func NewLocal(basePath string) *Local {
	return &Local{basePath: basePath}
}

func (s *Local) BasePath() string {
	return s.basePath
}

func (s *Local) Upload(ctx context.Context, r io.Reader, path, _ string) (string, error) {
	full, err := s.resolve(path)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", errors.Wrap(err, "create upload directory")
	}

	out, err := os.Create(full)
	if err != nil {
		return "", errors.Wrap(err, "create file")
	}
	defer out.Close()

	if _, err := io.Copy(out, r); err != nil {
		return "", errors.Wrap(err, "write file")
	}

	return PublicPrefix + "/" + filepath.ToSlash(filepath.Clean(path)), nil
}

func (s *Local) Delete(ctx context.Context, path string) error {
	full, err := s.resolve(path)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "delete file")
	}
	return nil
}

// resolve keeps every path inside basePath.
func (s *Local) resolve(path string) (string, error) {
	clean := filepath.Clean("/" + path)
	if clean == "/" || strings.Contains(path, "..") {
		return "", errors.Errorf("invalid storage path %q", path)
	}
	return filepath.Join(s.basePath, clean), nil
}
