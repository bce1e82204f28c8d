package service

import (
	"testing"

	"quote-engine/internal/features/quotes/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestThresholdPolicy_Check(t *testing.T) {
	policy := DefaultThresholdPolicy()

	tests := []struct {
		name   string
		mode   domain.Mode
		weight int64
		total  int64
		want   string
	}{
		{"AirUnderLimit", domain.ModeAir, 1200, 500, ""},
		{"AirOverAirLimit", domain.ModeAir, 1201, 500, ThresholdWarning},
		{"HotshotIgnoresAirLimit", domain.ModeHotshot, 1201, 500, ""},
		{"HotshotOverWeightLimit", domain.ModeHotshot, 3001, 500, ThresholdWarning},
		{"TotalAtLimit", domain.ModeHotshot, 100, 6000, ""},
		{"TotalOverLimit", domain.ModeHotshot, 100, 6001, ThresholdWarning},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := policy.Check(tt.mode, decimal.NewFromInt(tt.weight), decimal.NewFromInt(tt.total))
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestThresholdPolicy_Monotonic checks that once a weight trips the warning,
// every larger weight does too.
func TestThresholdPolicy_Monotonic(t *testing.T) {
	policy := DefaultThresholdPolicy()
	total := decimal.NewFromInt(100)

	for _, mode := range []domain.Mode{domain.ModeAir, domain.ModeHotshot} {
		tripped := false
		for w := int64(0); w <= 4000; w += 50 {
			warned := policy.Check(mode, decimal.NewFromInt(w), total) != ""
			if tripped {
				assert.True(t, warned, "%s at %d lbs", mode, w)
			}
			tripped = tripped || warned
		}
		assert.True(t, tripped, mode)
	}
}

func TestThresholdPolicy_CustomLimits(t *testing.T) {
	policy := ThresholdPolicy{
		AirWeightLimit: decimal.NewFromInt(10),
		WeightLimit:    decimal.NewFromInt(20),
		TotalLimit:     decimal.NewFromInt(30),
	}

	assert.Equal(t, ThresholdWarning, policy.Check(domain.ModeAir, decimal.NewFromInt(11), decimal.Zero))
	assert.Empty(t, policy.Check(domain.ModeHotshot, decimal.NewFromInt(11), decimal.Zero))
	assert.Equal(t, ThresholdWarning, policy.Check(domain.ModeHotshot, decimal.Zero, decimal.NewFromInt(31)))
}
