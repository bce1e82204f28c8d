package service

import (
	"context"
	"time"

	"quote-engine/internal/core/logger"
	"quote-engine/internal/features/quotes/domain"
	"quote-engine/internal/features/quotes/ports"
	ratesports "quote-engine/internal/features/rates/ports"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var _ ports.QuoteService = (*QuoteService)(nil)

// QuoteService implements ports.QuoteService.
type QuoteService struct {
	rates      ratesports.RateSource
	hotshot    ports.HotshotPricer
	air        ports.AirPricer
	composer   *AccessorialComposer
	thresholds ThresholdPolicy
	log        *zap.Logger
	now        func() time.Time
	newID      func() string
}

// NewQuoteService creates a new QuoteService.
func NewQuoteService(rates ratesports.RateSource, hotshot ports.HotshotPricer, air ports.AirPricer, composer *AccessorialComposer, thresholds ThresholdPolicy) *QuoteService {
	return &QuoteService{
		rates:      rates,
		hotshot:    hotshot,
		air:        air,
		composer:   composer,
		thresholds: thresholds,
		log:        logger.Named("quotes.service"),
		now:        time.Now,
		newID:      uuid.NewString,
	}
}

// CreateQuote validates and prices req against the current rate snapshot.
// Hotshot failures are returned as errors. Air failures come back as a
// result with Error set and a zero QuoteTotal. A selected guarantee is
// charged on air quotes only.
func (s *QuoteService) CreateQuote(ctx context.Context, req domain.QuoteRequest) (*domain.QuoteResult, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// One snapshot per quote, so a concurrent reload cannot mix tables.
	rates := s.rates.Current()

	billable, method := req.BillableWeight()
	sel := s.composer.Select(rates, req.Accessorials)

	result := &domain.QuoteResult{
		ID:               s.newID(),
		CreatedAt:        s.now().UTC(),
		Mode:             req.Mode,
		OriginZip:        req.OriginZip,
		DestZip:          req.DestZip,
		ActualWeight:     req.Weight(),
		DimWeight:        req.DimensionalWeight(),
		BillableWeight:   billable,
		WeightMethod:     method,
		Pieces:           req.PieceCount(),
		Accessorials:     sel.Charges,
		AccessorialTotal: sel.FixedTotal,
		Warnings:         []string{},
	}

	var subtotal decimal.Decimal
	switch req.Mode {
	case domain.ModeAir:
		air := s.air.Price(rates, req.OriginZip, req.DestZip, billable, sel.FixedTotal)
		result.Air = &air
		result.Zone = air.Zone
		result.Base = air.Base
		if air.Error != "" {
			s.log.Info("Air quote could not be priced",
				zap.String("origin", req.OriginZip),
				zap.String("destination", req.DestZip),
				zap.String("error", air.Error),
			)
			result.Error = air.Error
			result.QuoteTotal = decimal.Zero
			return result, nil
		}
		subtotal = air.QuoteTotal

	default:
		hotshot, err := s.hotshot.Price(ctx, rates, req.OriginZip, req.DestZip, billable, sel.FixedTotal)
		if err != nil {
			return nil, err
		}
		miles := hotshot.Miles
		result.Hotshot = hotshot
		result.Zone = hotshot.Zone
		result.Miles = &miles
		result.Base = hotshot.Base
		subtotal = hotshot.QuoteTotal

		// The guarantee covers air linehaul and beyond charges only.
		if sel.Guarantee {
			s.log.Debug("Ignoring guarantee on hotshot quote", zap.String("id", result.ID))
			sel.Guarantee = false
		}
	}

	composed := s.composer.Compose(rates, sel, subtotal)
	result.Accessorials = composed.Charges
	result.AccessorialTotal = composed.AccessorialTotal
	result.QuoteTotal = composed.QuoteTotal

	if warning := s.thresholds.Check(req.Mode, billable, result.QuoteTotal); warning != "" {
		result.Warnings = append(result.Warnings, warning)
		result.ExceedsThreshold = true
	}

	s.log.Debug("Quote priced",
		zap.String("id", result.ID),
		zap.String("mode", string(result.Mode)),
		zap.String("zone", result.Zone),
		zap.String("total", result.QuoteTotal.String()),
	)

	return result, nil
}
