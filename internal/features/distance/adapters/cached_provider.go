package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"quote-engine/internal/core/cache"
	"quote-engine/internal/core/logger"
	"quote-engine/internal/features/distance/domain"
	"quote-engine/internal/features/distance/ports"

	"go.uber.org/zap"
)

var _ ports.DistanceProvider = (*CachedProvider)(nil)

// CachedProvider memoizes another DistanceProvider in the cache.
// Cache failures never fail a lookup; the wrapped provider is asked instead.
type CachedProvider struct {
	next  ports.DistanceProvider
	cache cache.Cache
	ttl   time.Duration
	log   *zap.Logger
}

// NewCachedProvider creates a new CachedProvider.
func NewCachedProvider(next ports.DistanceProvider, c cache.Cache, ttl time.Duration) *CachedProvider {
	return &CachedProvider{
		next:  next,
		cache: c,
		ttl:   ttl,
		log:   logger.Named("distance.cache"),
	}
}

type cachedDistance struct {
	Miles float64 `json:"miles"`
}

func distanceKey(origin, dest string) string {
	return fmt.Sprintf("distance:%s:%s", origin, dest)
}

// DistanceMiles implements ports.DistanceProvider.
func (p *CachedProvider) DistanceMiles(ctx context.Context, originZip, destZip string) (float64, error) {
	origin, err := domain.NormalizeZip(originZip)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", err, originZip)
	}
	dest, err := domain.NormalizeZip(destZip)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", err, destZip)
	}
	key := distanceKey(origin, dest)

	data, err := p.cache.Get(ctx, key)
	switch {
	case err == nil:
		var cached cachedDistance
		if jsonErr := json.Unmarshal(data, &cached); jsonErr == nil {
			return cached.Miles, nil
		}
		p.log.Warn("Discarding unreadable cached distance", zap.String("key", key))
	case !errors.Is(err, cache.ErrCacheMiss):
		p.log.Warn("Distance cache unavailable", zap.String("key", key), zap.Error(err))
	}

	miles, err := p.next.DistanceMiles(ctx, origin, dest)
	if err != nil {
		return 0, err
	}

	payload, err := json.Marshal(cachedDistance{Miles: miles})
	if err != nil {
		return miles, nil
	}
	if err := p.cache.Set(ctx, key, payload, p.ttl); err != nil {
		p.log.Warn("Failed to cache distance", zap.String("key", key), zap.Error(err))
	}

	return miles, nil
}
