package company

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/agendapro/internal/cache"
)

const directoryKey = "empresas:list"

// Directory caches the public company listing. Cache failures are logged and
// never fail a request.
type Directory struct {
	cache cache.Cache
	ttl   time.Duration
	log   *zap.Logger
}

func NewDirectory(c cache.Cache, ttl time.Duration, log *zap.Logger) *Directory {
	return &Directory{cache: c, ttl: ttl, log: log}
}

func (d *Directory) load(ctx context.Context) ([]Summary, bool) {
	raw, err := d.cache.Get(ctx, directoryKey)
	if err != nil {
		if err != cache.ErrMiss {
			d.log.Warn("company cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var out []Summary
	if err := json.Unmarshal(raw, &out); err != nil {
		d.log.Warn("company cache entry unreadable", zap.Error(err))
		return nil, false
	}
	return out, true
}

func (d *Directory) store(ctx context.Context, list []Summary) {
	raw, err := json.Marshal(list)
	if err != nil {
		return
	}
	if err := d.cache.Set(ctx, directoryKey, raw, d.ttl); err != nil {
		d.log.Warn("company cache write failed", zap.Error(err))
	}
}

func (d *Directory) Invalidate(ctx context.Context) {
	if err := d.cache.Delete(ctx, directoryKey); err != nil {
		d.log.Warn("company cache invalidation failed", zap.Error(err))
	}
}
