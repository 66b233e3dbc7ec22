package storage

import (
	"context"
	"io"

	"github.com/pkg/errors"

	"github.com/BruksfildServices01/agendapro/internal/config"
)

// Driver stores public files such as company logos.
type Driver interface {
	// Upload writes r under path and returns the URL clients should use.
	Upload(ctx context.Context, r io.Reader, path, contentType string) (publicURL string, err error)
	Delete(ctx context.Context, path string) error
}

func NewDriver(ctx context.Context, cfg config.StorageConfig) (Driver, error) {
	switch cfg.Driver {
	case "local", "":
		path := cfg.UploadsPath
		if path == "" {
			path = "./uploads"
		}
		return NewLocal(path), nil

	case "s3":
		return NewS3(cfg)

	default:
		return nil, errors.Errorf("unsupported storage driver: %s", cfg.Driver)
	}
}
