package service

import (
	"quote-engine/internal/features/quotes/domain"

	"github.com/shopspring/decimal"
)

// ThresholdWarning is the advisory attached to quotes outside the tool's limits.
const ThresholdWarning = "Warning! Quote exceeds the limits of this tool please call FSI directly for the most accurate quote. " +
	"Main Office: 800-651-0423 | Fax: 520-777-3853 | Email: Operations@freightservices.net"

// ThresholdPolicy flags quotes that are too heavy or too expensive to trust.
type ThresholdPolicy struct {
	AirWeightLimit decimal.Decimal
	WeightLimit    decimal.Decimal
	TotalLimit     decimal.Decimal
}

// DefaultThresholdPolicy returns the standard limits: 1200 lbs for air,
// 3000 lbs for any mode and a 6000 total.
func DefaultThresholdPolicy() ThresholdPolicy {
	return ThresholdPolicy{
		AirWeightLimit: decimal.NewFromInt(1200),
		WeightLimit:    decimal.NewFromInt(3000),
		TotalLimit:     decimal.NewFromInt(6000),
	}
}

// Check returns ThresholdWarning when a limit is exceeded, otherwise "".
func (p ThresholdPolicy) Check(mode domain.Mode, billableWeight, total decimal.Decimal) string {
	if mode == domain.ModeAir && billableWeight.GreaterThan(p.AirWeightLimit) {
		return ThresholdWarning
	}
	if billableWeight.GreaterThan(p.WeightLimit) || total.GreaterThan(p.TotalLimit) {
		return ThresholdWarning
	}
	return ""
}
