package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"quote-engine/internal/core/logger"
	"quote-engine/internal/features/rates/domain"
	"quote-engine/internal/features/rates/ports"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

var _ ports.CatalogService = (*Catalog)(nil)

// ErrCatalogStopped is returned by Start when the catalog has already been stopped.
var ErrCatalogStopped = errors.New("catalog stopped")

// CatalogOptions configures a Catalog.
type CatalogOptions struct {
	// RefreshTimeout bounds each provider load. Defaults to 10s.
	RefreshTimeout time.Duration
	// RefreshInterval enables periodic reloads after Start when greater than zero.
	RefreshInterval time.Duration
}

// Catalog serves the current rate snapshot and swaps in a new one on reload.
// Readers get either the old or the new snapshot in full, never a mix.
type Catalog struct {
	provider ports.RateProvider
	current  atomic.Pointer[Snapshot]
	loaded   atomic.Bool
	running  atomic.Bool

	sf singleflight.Group

	refreshTimeout  time.Duration
	refreshInterval time.Duration

	startOnce sync.Once
	stopOnce  sync.Once
	stopCh    chan struct{}
	done      chan struct{}

	logger *zap.Logger
	now    func() time.Time
}

// NewCatalog creates a Catalog backed by provider. It serves an empty
// snapshot until the first successful Reload.
func NewCatalog(provider ports.RateProvider, opts CatalogOptions) *Catalog {
	timeout := opts.RefreshTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	c := &Catalog{
		provider:        provider,
		refreshTimeout:  timeout,
		refreshInterval: opts.RefreshInterval,
		stopCh:          make(chan struct{}),
		done:            make(chan struct{}),
		logger:          logger.Named("rates.catalog"),
		now:             time.Now,
	}
	c.current.Store(NewSnapshot(nil, time.Time{}))
	return c
}

// Current implements ports.RateSource.
func (c *Catalog) Current() ports.RateCatalog {
	return c.current.Load()
}

// Reload loads every table from the provider and swaps the snapshot.
// Concurrent callers share a single load. On failure the previous snapshot
// stays in place.
func (c *Catalog) Reload(ctx context.Context) error {
	_, err, shared := c.sf.Do("reload", func() (any, error) {
		return nil, c.reload(ctx)
	})
	if shared {
		c.logger.Debug("Rate reload deduplicated")
	}
	return err
}

func (c *Catalog) reload(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.refreshTimeout)
	defer cancel()

	start := c.now()
	tables, err := c.provider.Load(ctx)
	if err != nil {
		c.logger.Error("Rate reload failed", zap.Error(err))
		return fmt.Errorf("failed to load rate tables: %w", err)
	}

	snap := NewSnapshot(tables, c.now())
	c.current.Store(snap)
	c.loaded.Store(true)

	if missing := snap.MissingTables(domain.AllTables...); len(missing) > 0 {
		c.logger.Warn("Rate tables missing or empty", zap.Any("tables", missing))
	}
	c.logger.Info("Rate tables reloaded",
		zap.Int("zip_zones", snap.Count(domain.TableZipZone)),
		zap.Int("cost_zones", snap.Count(domain.TableCostZone)),
		zap.Int("air_cost_zones", snap.Count(domain.TableAirCostZone)),
		zap.Int("hotshot_rates", snap.Count(domain.TableHotshotRate)),
		zap.Int("beyond_rates", snap.Count(domain.TableBeyondRate)),
		zap.Int("accessorials", snap.Count(domain.TableAccessorial)),
		zap.Duration("duration", c.now().Sub(start)),
	)
	return nil
}

// Status implements ports.CatalogService.
func (c *Catalog) Status() domain.CatalogStatus {
	snap := c.current.Load()
	counts := make(map[domain.Table]int, len(domain.AllTables))
	for _, t := range domain.AllTables {
		counts[t] = snap.Count(t)
	}
	missing := snap.MissingTables(domain.AllTables...)
	if missing == nil {
		missing = []domain.Table{}
	}
	return domain.CatalogStatus{
		Loaded:   c.loaded.Load(),
		LoadedAt: snap.LoadedAt(),
		Counts:   counts,
		Missing:  missing,
	}
}

// Start runs periodic reloads in the background when a refresh interval is
// configured. It is a no-op otherwise.
func (c *Catalog) Start() error {
	select {
	case <-c.stopCh:
		return ErrCatalogStopped
	default:
	}
	if c.refreshInterval <= 0 {
		return nil
	}
	c.startOnce.Do(func() {
		c.running.Store(true)
		go c.run()
	})
	return nil
}

func (c *Catalog) run() {
	defer close(c.done)

	ticker := time.NewTicker(c.refreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stopCh:
			return
		case <-ticker.C:
			// Errors are logged by reload; the old snapshot keeps serving.
			_ = c.Reload(context.Background())
		}
	}
}

// Stop halts periodic reloads and waits for the background loop to exit.
func (c *Catalog) Stop() {
	c.stopOnce.Do(func() {
		close(c.stopCh)
	})
	if c.running.Load() {
		<-c.done
	}
}
