package service

import (
	"strings"

	"quote-engine/internal/features/rates/domain"
	"quote-engine/internal/features/rates/ports"
)

var _ ports.ZoneResolver = (*ZoneResolver)(nil)

// ZoneResolver resolves ZIPs and zone pairs against a single rate snapshot.
type ZoneResolver struct {
	catalog ports.RateCatalog
}

// NewZoneResolver creates a ZoneResolver reading from catalog.
func NewZoneResolver(catalog ports.RateCatalog) *ZoneResolver {
	return &ZoneResolver{catalog: catalog}
}

// ResolveZip implements ports.ZoneResolver.
func (r *ZoneResolver) ResolveZip(side domain.Side, zip string) (domain.ZipZone, error) {
	zip = strings.TrimSpace(zip)
	row, ok := r.catalog.Zip(zip)
	if !ok {
		return domain.ZipZone{}, &domain.ResolutionError{Side: side, Zip: zip, Err: domain.ErrZipNotFound}
	}
	if row.DestZone == nil {
		return domain.ZipZone{}, &domain.ResolutionError{Side: side, Zip: zip, Err: domain.ErrMissingDestZone}
	}
	if row.Beyond == nil {
		return domain.ZipZone{}, &domain.ResolutionError{Side: side, Zip: zip, Err: domain.ErrMissingBeyond}
	}
	return row, nil
}

// ResolveCostZone implements ports.ZoneResolver. Cost zone tables may hold
// only one direction of a zone pair; the reversed key is tried on a miss.
func (r *ZoneResolver) ResolveCostZone(originZone, destZone int) (domain.CostZone, error) {
	forward := domain.ConcatZones(originZone, destZone)
	if row, ok := r.catalog.CostZone(forward); ok {
		return row, nil
	}
	reverse := domain.ConcatZones(destZone, originZone)
	if row, ok := r.catalog.CostZone(reverse); ok {
		return row, nil
	}
	return domain.CostZone{}, &domain.CostZoneError{Forward: forward, Reverse: reverse}
}
