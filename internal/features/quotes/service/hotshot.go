package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"quote-engine/internal/core/logger"
	distanceports "quote-engine/internal/features/distance/ports"
	"quote-engine/internal/features/quotes/domain"
	"quote-engine/internal/features/quotes/ports"
	ratesports "quote-engine/internal/features/rates/ports"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// DistanceFailurePolicy decides what a failed distance lookup does to a hotshot quote.
type DistanceFailurePolicy string

const (
	// DistanceFail rejects the quote with domain.ErrDistanceUnavailable.
	DistanceFail DistanceFailurePolicy = "fail"
	// DistanceZero prices the quote as if the distance were 0 miles.
	DistanceZero DistanceFailurePolicy = "zero"
)

// zoneX is priced from fixed per-pound and per-mile constants instead of its rate row.
const zoneX = "X"

var (
	zoneXPerLb   = decimal.RequireFromString("5.1")
	zoneXPerMile = decimal.RequireFromString("5.2")
	one          = decimal.NewFromInt(1)
)

var _ ports.HotshotPricer = (*HotshotPricer)(nil)

// HotshotPricer implements ports.HotshotPricer.
type HotshotPricer struct {
	distance distanceports.DistanceProvider
	timeout  time.Duration
	policy   DistanceFailurePolicy
	log      *zap.Logger
}

// NewHotshotPricer creates a new HotshotPricer. A zero timeout leaves the
// distance lookup bounded only by the caller's context.
func NewHotshotPricer(distance distanceports.DistanceProvider, timeout time.Duration, policy DistanceFailurePolicy) *HotshotPricer {
	if policy != DistanceZero {
		policy = DistanceFail
	}
	return &HotshotPricer{
		distance: distance,
		timeout:  timeout,
		policy:   policy,
		log:      logger.Named("quotes.hotshot"),
	}
}

// Price implements ports.HotshotPricer.
func (p *HotshotPricer) Price(ctx context.Context, rates ratesports.RateCatalog, originZip, destZip string, weight, accessorialTotal decimal.Decimal) (*domain.HotshotBreakdown, error) {
	if missing := rates.MissingTables(domain.ModeHotshot.RequiredTables()...); len(missing) > 0 {
		return nil, &domain.MissingTablesError{Mode: domain.ModeHotshot, Tables: missing}
	}

	miles, err := p.miles(ctx, originZip, destZip)
	if err != nil {
		return nil, err
	}

	zone, ok := rates.HotshotZoneForMiles(int(math.Ceil(miles)))
	if !ok {
		return nil, fmt.Errorf("%w: %.1f miles", domain.ErrHotshotZoneNotFound, miles)
	}
	rate, ok := rates.HotshotRate(zone)
	if !ok {
		return nil, fmt.Errorf("%w: zone %s", domain.ErrHotshotRateNotFound, zone)
	}

	out := &domain.HotshotBreakdown{
		Zone:        zone,
		Miles:       miles,
		WeightBreak: rate.WeightBreak,
		FuelPct:     rate.FuelPct,
	}

	if strings.EqualFold(zone, zoneX) {
		perMile := zoneXPerMile
		out.PerLb = zoneXPerLb
		out.PerMile = &perMile
		out.MinCharge = decimal.NewFromFloat(miles).Mul(zoneXPerMile)
	} else {
		out.PerLb = rate.PerLb
		out.MinCharge = rate.MinCharge
	}

	out.Base = decimal.Max(out.MinCharge, weight.Mul(out.PerLb))
	out.QuoteTotal = out.Base.Mul(one.Add(rate.FuelPct)).Add(accessorialTotal)

	return out, nil
}

// miles looks up the distance under the configured timeout and applies the
// failure policy. The result is never negative.
func (p *HotshotPricer) miles(ctx context.Context, originZip, destZip string) (float64, error) {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	miles, err := p.distance.DistanceMiles(ctx, originZip, destZip)
	if err != nil {
		if p.policy == DistanceFail {
			return 0, fmt.Errorf("%w: %w", domain.ErrDistanceUnavailable, err)
		}
		p.log.Warn("Distance lookup failed, pricing as 0 miles",
			zap.String("origin", originZip),
			zap.String("destination", destZip),
			zap.Error(err),
		)
		return 0, nil
	}

	if math.IsNaN(miles) || math.IsInf(miles, 0) || miles < 0 {
		return 0, nil
	}
	return miles, nil
}
