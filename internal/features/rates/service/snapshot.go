package service

import (
	"sort"
	"strings"
	"time"

	"quote-engine/internal/features/rates/domain"
	"quote-engine/internal/features/rates/ports"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

var _ ports.RateCatalog = (*Snapshot)(nil)

// Snapshot is an immutable, indexed copy of the rate tables.
// It is never modified after NewSnapshot returns, so any number of
// goroutines may read it without locking.
type Snapshot struct {
	loadedAt time.Time
	counts   map[domain.Table]int

	zips         map[string]domain.ZipZone
	costZones    map[string]domain.CostZone
	airCostZones map[string]domain.AirCostZone
	beyondRates  map[string]decimal.Decimal

	// hotshotBands is sorted by MilesCeiling ascending.
	hotshotBands  []domain.HotshotRate
	hotshotByZone map[string]domain.HotshotRate

	accessorials      []domain.Accessorial
	accessorialByName map[string]domain.Accessorial
}

func normalizeKey(s string) string {
	return strings.TrimSpace(s)
}

func normalizeZone(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// NewSnapshot indexes tables. A nil tables value yields an empty snapshot in
// which every table is missing.
func NewSnapshot(tables *domain.Tables, loadedAt time.Time) *Snapshot {
	if tables == nil {
		tables = &domain.Tables{}
	}

	s := &Snapshot{
		loadedAt: loadedAt,
		counts:   make(map[domain.Table]int, len(domain.AllTables)),
	}
	for _, t := range domain.AllTables {
		s.counts[t] = tables.Count(t)
	}

	s.zips = lo.KeyBy(tables.ZipZones, func(z domain.ZipZone) string { return normalizeKey(z.Zip) })
	s.costZones = lo.KeyBy(tables.CostZones, func(c domain.CostZone) string { return normalizeKey(c.Concat) })
	s.airCostZones = lo.KeyBy(tables.AirCostZones, func(a domain.AirCostZone) string { return normalizeZone(a.Zone) })
	s.beyondRates = lo.SliceToMap(tables.BeyondRates, func(b domain.BeyondRate) (string, decimal.Decimal) {
		return normalizeZone(b.Zone), b.Rate
	})

	s.hotshotBands = make([]domain.HotshotRate, len(tables.HotshotRates))
	copy(s.hotshotBands, tables.HotshotRates)
	sort.SliceStable(s.hotshotBands, func(i, j int) bool {
		return s.hotshotBands[i].MilesCeiling < s.hotshotBands[j].MilesCeiling
	})
	// Later bands overwrite earlier ones, so each zone keeps its largest ceiling.
	s.hotshotByZone = lo.KeyBy(s.hotshotBands, func(r domain.HotshotRate) string { return normalizeZone(r.Zone) })

	s.accessorials = lo.Filter(tables.Accessorials, func(a domain.Accessorial, _ int) bool {
		return strings.TrimSpace(a.Name) != ""
	})
	s.accessorialByName = lo.KeyBy(s.accessorials, func(a domain.Accessorial) string {
		return strings.ToLower(strings.TrimSpace(a.Name))
	})

	return s
}

// LoadedAt returns when the snapshot was built.
func (s *Snapshot) LoadedAt() time.Time {
	return s.loadedAt
}

// Count returns the number of rows loaded for table.
func (s *Snapshot) Count(table domain.Table) int {
	return s.counts[table]
}

// MissingTables implements ports.RateCatalog.
func (s *Snapshot) MissingTables(required ...domain.Table) []domain.Table {
	var missing []domain.Table
	for _, t := range required {
		if s.counts[t] == 0 {
			missing = append(missing, t)
		}
	}
	return missing
}

// Zip implements ports.RateCatalog.
func (s *Snapshot) Zip(zip string) (domain.ZipZone, bool) {
	z, ok := s.zips[normalizeKey(zip)]
	return z, ok
}

// CostZone implements ports.RateCatalog.
func (s *Snapshot) CostZone(concat string) (domain.CostZone, bool) {
	c, ok := s.costZones[normalizeKey(concat)]
	return c, ok
}

// AirCostZone implements ports.RateCatalog.
func (s *Snapshot) AirCostZone(zone string) (domain.AirCostZone, bool) {
	a, ok := s.airCostZones[normalizeZone(zone)]
	return a, ok
}

// BeyondRate implements ports.RateCatalog.
func (s *Snapshot) BeyondRate(zone string) decimal.Decimal {
	if zone == "" {
		return decimal.Zero
	}
	return s.beyondRates[normalizeZone(zone)]
}

// HotshotZoneForMiles implements ports.RateCatalog.
func (s *Snapshot) HotshotZoneForMiles(miles int) (string, bool) {
	if len(s.hotshotBands) == 0 {
		return "", false
	}
	i := sort.Search(len(s.hotshotBands), func(i int) bool {
		return s.hotshotBands[i].MilesCeiling >= miles
	})
	if i == len(s.hotshotBands) {
		i = len(s.hotshotBands) - 1
	}
	return normalizeZone(s.hotshotBands[i].Zone), true
}

// HotshotRate implements ports.RateCatalog.
func (s *Snapshot) HotshotRate(zone string) (domain.HotshotRate, bool) {
	r, ok := s.hotshotByZone[normalizeZone(zone)]
	return r, ok
}

// Accessorial implements ports.RateCatalog.
func (s *Snapshot) Accessorial(name string) (domain.Accessorial, bool) {
	a, ok := s.accessorialByName[strings.ToLower(strings.TrimSpace(name))]
	return a, ok
}

// Accessorials implements ports.RateCatalog.
func (s *Snapshot) Accessorials() []domain.Accessorial {
	out := make([]domain.Accessorial, len(s.accessorials))
	copy(out, s.accessorials)
	return out
}
