package adapters

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"quote-engine/internal/core/logger"
	"quote-engine/internal/features/distance/domain"
	"quote-engine/internal/features/distance/ports"

	"github.com/umahmood/haversine"
	"go.uber.org/zap"
)

// geonames postal code dump layout.
const (
	geonamesFields = 12
	geonamesZipCol = 1
	geonamesLatCol = 9
	geonamesLonCol = 10
)

var _ ports.DistanceProvider = (*HaversineProvider)(nil)

// HaversineProvider implements ports.DistanceProvider as the great-circle
// distance between ZIP code centroids.
type HaversineProvider struct {
	centroids map[string]haversine.Coord
}

// NewHaversineProvider loads centroids from a geonames US.txt file.
func NewHaversineProvider(path string) (*HaversineProvider, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open centroids file: %w", err)
	}
	defer f.Close()

	return NewHaversineProviderFromReader(f)
}

// NewHaversineProviderFromReader loads centroids from tab-separated geonames rows.
// Malformed rows are skipped.
func NewHaversineProviderFromReader(r io.Reader) (*HaversineProvider, error) {
	reader := csv.NewReader(r)
	reader.Comma = '\t'
	reader.FieldsPerRecord = geonamesFields
	reader.LazyQuotes = true

	log := logger.Named("distance.haversine")
	centroids := make(map[string]haversine.Coord)
	skipped := 0

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				skipped++
				continue
			}
			return nil, fmt.Errorf("failed to read centroids: %w", err)
		}

		zip, err := domain.NormalizeZip(record[geonamesZipCol])
		if err != nil {
			skipped++
			continue
		}
		lat, err := strconv.ParseFloat(record[geonamesLatCol], 64)
		if err != nil {
			skipped++
			continue
		}
		lon, err := strconv.ParseFloat(record[geonamesLonCol], 64)
		if err != nil {
			skipped++
			continue
		}

		centroids[zip] = haversine.Coord{Lat: lat, Lon: lon}
	}

	if len(centroids) == 0 {
		return nil, errors.New("no zip centroids loaded")
	}

	log.Info("ZIP centroids loaded", zap.Int("zips", len(centroids)), zap.Int("skipped", skipped))
	return &HaversineProvider{centroids: centroids}, nil
}

// DistanceMiles implements ports.DistanceProvider.
func (p *HaversineProvider) DistanceMiles(ctx context.Context, originZip, destZip string) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	origin, err := p.lookup(originZip)
	if err != nil {
		return 0, err
	}
	dest, err := p.lookup(destZip)
	if err != nil {
		return 0, err
	}

	mi, _ := haversine.Distance(origin, dest)
	return mi, nil
}

func (p *HaversineProvider) lookup(zip string) (haversine.Coord, error) {
	normalized, err := domain.NormalizeZip(zip)
	if err != nil {
		return haversine.Coord{}, fmt.Errorf("%w: %q", err, zip)
	}
	c, ok := p.centroids[normalized]
	if !ok {
		return haversine.Coord{}, fmt.Errorf("%w: %s", domain.ErrZipNotFound, normalized)
	}
	return c, nil
}
