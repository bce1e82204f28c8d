package service

import (
	"fmt"

	"quote-engine/internal/features/quotes/domain"
	"quote-engine/internal/features/quotes/ports"
	ratesdomain "quote-engine/internal/features/rates/domain"
	ratesports "quote-engine/internal/features/rates/ports"
	ratesservice "quote-engine/internal/features/rates/service"

	"github.com/shopspring/decimal"
)

var _ ports.AirPricer = (*AirPricer)(nil)

// AirPricer implements ports.AirPricer.
type AirPricer struct {
	newResolver func(ratesports.RateCatalog) ratesports.ZoneResolver
}

// NewAirPricer creates a new AirPricer using the catalog-backed zone resolver.
func NewAirPricer() *AirPricer {
	return &AirPricer{
		newResolver: func(rates ratesports.RateCatalog) ratesports.ZoneResolver {
			return ratesservice.NewZoneResolver(rates)
		},
	}
}

func airError(msg string) domain.AirBreakdown {
	return domain.AirBreakdown{
		MinCharge:    decimal.Zero,
		PerLb:        decimal.Zero,
		WeightBreak:  decimal.Zero,
		Base:         decimal.Zero,
		OriginCharge: decimal.Zero,
		DestCharge:   decimal.Zero,
		BeyondTotal:  decimal.Zero,
		QuoteTotal:   decimal.Zero,
		Error:        msg,
	}
}

// Price implements ports.AirPricer.
func (p *AirPricer) Price(rates ratesports.RateCatalog, originZip, destZip string, weight, accessorialTotal decimal.Decimal) domain.AirBreakdown {
	if missing := rates.MissingTables(domain.ModeAir.RequiredTables()...); len(missing) > 0 {
		return airError((&domain.MissingTablesError{Mode: domain.ModeAir, Tables: missing}).Error())
	}

	resolver := p.newResolver(rates)

	origin, err := resolver.ResolveZip(ratesdomain.SideOrigin, originZip)
	if err != nil {
		return airError(err.Error())
	}
	dest, err := resolver.ResolveZip(ratesdomain.SideDestination, destZip)
	if err != nil {
		return airError(err.Error())
	}

	costZone, err := resolver.ResolveCostZone(*origin.DestZone, *dest.DestZone)
	if err != nil {
		return airError(err.Error())
	}

	air, ok := rates.AirCostZone(costZone.CostZone)
	if !ok {
		return airError(fmt.Sprintf("Air cost zone %s not found", costZone.CostZone))
	}

	base := air.MinCharge
	if weight.GreaterThan(air.WeightBreak) {
		base = weight.Sub(air.WeightBreak).Mul(air.PerLb).Add(air.MinCharge)
	}

	originBeyond := ratesdomain.ParseBeyond(origin.Beyond)
	destBeyond := ratesdomain.ParseBeyond(dest.Beyond)
	originCharge := rates.BeyondRate(originBeyond)
	destCharge := rates.BeyondRate(destBeyond)
	beyondTotal := originCharge.Add(destCharge)

	return domain.AirBreakdown{
		Zone:         ratesdomain.ConcatZones(*origin.DestZone, *dest.DestZone),
		CostZone:     costZone.CostZone,
		MinCharge:    air.MinCharge,
		PerLb:        air.PerLb,
		WeightBreak:  air.WeightBreak,
		Base:         base,
		OriginBeyond: originBeyond,
		DestBeyond:   destBeyond,
		OriginCharge: originCharge,
		DestCharge:   destCharge,
		BeyondTotal:  beyondTotal,
		QuoteTotal:   base.Add(accessorialTotal).Add(beyondTotal),
	}
}
