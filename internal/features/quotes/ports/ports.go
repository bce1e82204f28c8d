package ports

import (
	"context"

	"quote-engine/internal/features/quotes/domain"
	ratesports "quote-engine/internal/features/rates/ports"

	"github.com/shopspring/decimal"
)

// HotshotPricer prices ground shipments by distance. Failures are returned
// as errors wrapping one of the domain sentinels.
type HotshotPricer interface {
	Price(ctx context.Context, rates ratesports.RateCatalog, originZip, destZip string, weight, accessorialTotal decimal.Decimal) (*domain.HotshotBreakdown, error)
}

// AirPricer prices air shipments by zone. Failures are reported in the
// breakdown's Error field.
type AirPricer interface {
	Price(rates ratesports.RateCatalog, originZip, destZip string, weight, accessorialTotal decimal.Decimal) domain.AirBreakdown
}

// QuoteService is the primary port used by the quotes HTTP handler.
type QuoteService interface {
	CreateQuote(ctx context.Context, req domain.QuoteRequest) (*domain.QuoteResult, error)
}
