package ports

import (
	"context"

	"quote-engine/internal/features/rates/domain"

	"github.com/shopspring/decimal"
)

// RateProvider is the secondary port that bulk-loads every rate table.
// A table that does not exist in the backing store is returned empty.
type RateProvider interface {
	Load(ctx context.Context) (*domain.Tables, error)
}

// RateCatalog is a read-only, consistent view of the rate tables.
type RateCatalog interface {
	// MissingTables returns the tables among required that are absent or empty.
	MissingTables(required ...domain.Table) []domain.Table
	// Zip returns the ZipZone row for zip.
	Zip(zip string) (domain.ZipZone, bool)
	// CostZone returns the CostZone row for a concatenated zone key.
	CostZone(concat string) (domain.CostZone, bool)
	// AirCostZone returns the air pricing row for a cost zone.
	AirCostZone(zone string) (domain.AirCostZone, bool)
	// BeyondRate returns the beyond surcharge for zone, zero when absent.
	BeyondRate(zone string) decimal.Decimal
	// HotshotZoneForMiles returns the zone of the smallest mileage band covering
	// miles, falling back to the band with the largest ceiling.
	HotshotZoneForMiles(miles int) (string, bool)
	// HotshotRate returns the rate row for a hotshot zone.
	HotshotRate(zone string) (domain.HotshotRate, bool)
	// Accessorial returns the accessorial named name, case-insensitively.
	Accessorial(name string) (domain.Accessorial, bool)
	// Accessorials returns every accessorial in catalog order.
	Accessorials() []domain.Accessorial
}

// RateSource hands out the rate snapshot current at the time of the call.
type RateSource interface {
	Current() RateCatalog
}

// ZoneResolver resolves ZIPs and zone pairs for air pricing.
type ZoneResolver interface {
	// ResolveZip returns the ZipZone row for zip or a *domain.ResolutionError.
	ResolveZip(side domain.Side, zip string) (domain.ZipZone, error)
	// ResolveCostZone looks up the forward concatenation, then the reversed one.
	ResolveCostZone(originZone, destZone int) (domain.CostZone, error)
}

// CatalogService is the primary port used by the rates HTTP handler.
type CatalogService interface {
	RateSource
	Reload(ctx context.Context) error
	Status() domain.CatalogStatus
}
