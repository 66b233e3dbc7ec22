package cache

import (
	"context"
	"errors"
	"time"
)

// ErrMiss is returned by Get when the key is absent or expired.
var ErrMiss = errors.New("cache miss")

// Cache stores opaque values by key.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// Nop never stores anything. Used when no redis address is configured.
type Nop struct{}

func (Nop) Get(context.Context, string) ([]byte, error) {
	return nil, ErrMiss
}

func (Nop) Set(context.Context, string, []byte, time.Duration) error {
	return nil
}

func (Nop) Delete(context.Context, ...string) error {
	return nil
}
