package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"quote-engine/internal/features/quotes/domain"
	ratesdomain "quote-engine/internal/features/rates/domain"
	ratesports "quote-engine/internal/features/rates/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func assertDec(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Truef(t, dec(want).Equal(got), "want %s, got %s", want, got)
}

func distanceOf(miles float64, err error) *MockDistanceProvider {
	m := new(MockDistanceProvider)
	m.On("DistanceMiles", mock.Anything, mock.Anything, mock.Anything).Return(miles, err)
	return m
}

func TestHotshotPricer_ZoneA(t *testing.T) {
	pricer := NewHotshotPricer(distanceOf(100, nil), 0, DistanceFail)

	out, err := pricer.Price(context.Background(), newSnapshot(quoteTables()), "11111", "22222", dec("1000"), dec("10"))
	require.NoError(t, err)

	assert.Equal(t, "A", out.Zone)
	assert.Equal(t, 100.0, out.Miles)
	assertDec(t, "2000", out.Base)
	assertDec(t, "2210", out.QuoteTotal)
	assert.Nil(t, out.PerMile)
	require.NotNil(t, out.WeightBreak)
	assertDec(t, "100", *out.WeightBreak)
	assertDec(t, "50", out.MinCharge)
}

func TestHotshotPricer_ZoneX(t *testing.T) {
	tables := quoteTables()
	tables.HotshotRates = []ratesdomain.HotshotRate{
		{MilesCeiling: 1000, Zone: "X", PerLb: dec("1"), MinCharge: dec("1"), FuelPct: dec("0.2")},
	}
	pricer := NewHotshotPricer(distanceOf(150, nil), 0, DistanceFail)

	out, err := pricer.Price(context.Background(), newSnapshot(tables), "11111", "22222", dec("120"), dec("10"))
	require.NoError(t, err)

	assert.Equal(t, "X", out.Zone)
	assertDec(t, "5.1", out.PerLb)
	require.NotNil(t, out.PerMile)
	assertDec(t, "5.2", *out.PerMile)
	assertDec(t, "780", out.MinCharge)
	assertDec(t, "780", out.Base)
	assertDec(t, "946", out.QuoteTotal)
	assert.Nil(t, out.WeightBreak)
}

func TestHotshotPricer_ZoneXWeightDominates(t *testing.T) {
	pricer := NewHotshotPricer(distanceOf(300, nil), 0, DistanceFail)

	out, err := pricer.Price(context.Background(), newSnapshot(quoteTables()), "11111", "22222", dec("400"), decimal.Zero)
	require.NoError(t, err)

	// 300 miles is past every band except X. max(300*5.2, 400*5.1) = 2040
	assert.Equal(t, "X", out.Zone)
	assertDec(t, "2040", out.Base)
	assertDec(t, "2448", out.QuoteTotal)
}

func TestHotshotPricer_ZoneSelection(t *testing.T) {
	tests := []struct {
		name  string
		miles float64
		want  string
	}{
		{"Zero", 0, "A"},
		{"OnCeiling", 100, "A"},
		{"FractionRoundsUp", 100.2, "B"},
		{"PastLargestFallsBack", 9000, "X"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pricer := NewHotshotPricer(distanceOf(tt.miles, nil), 0, DistanceFail)
			out, err := pricer.Price(context.Background(), newSnapshot(quoteTables()), "11111", "22222", dec("10"), decimal.Zero)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.Zone)
		})
	}
}

// TestHotshotPricer_NonXFormula checks base = max(minCharge, weight*perLb) and
// subtotal = base*(1+fuel)+accessorials across zones A and B.
func TestHotshotPricer_NonXFormula(t *testing.T) {
	snap := newSnapshot(quoteTables())
	acc := dec("12.5")

	for _, miles := range []float64{1, 50, 99.9, 150, 199} {
		for _, w := range []string{"0", "10", "25", "200", "1999.5"} {
			pricer := NewHotshotPricer(distanceOf(miles, nil), 0, DistanceFail)
			weight := dec(w)

			out, err := pricer.Price(context.Background(), snap, "11111", "22222", weight, acc)
			require.NoError(t, err)

			rate, ok := snap.HotshotRate(out.Zone)
			require.True(t, ok)
			base := decimal.Max(rate.MinCharge, weight.Mul(rate.PerLb))
			total := base.Mul(one.Add(rate.FuelPct)).Add(acc)
			assert.Truef(t, base.Equal(out.Base), "base at %v miles, %s lbs: %s", miles, w, out.Base)
			assert.Truef(t, total.Equal(out.QuoteTotal), "total at %v miles, %s lbs: %s", miles, w, out.QuoteTotal)
		}
	}
}

func TestHotshotPricer_DistanceFailure(t *testing.T) {
	lookupErr := errors.New("distance API returned status: 500")

	t.Run("FailPolicy", func(t *testing.T) {
		pricer := NewHotshotPricer(distanceOf(0, lookupErr), 0, DistanceFail)

		_, err := pricer.Price(context.Background(), newSnapshot(quoteTables()), "11111", "22222", dec("10"), decimal.Zero)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrDistanceUnavailable)
		assert.ErrorIs(t, err, lookupErr)
	})

	t.Run("ZeroPolicy", func(t *testing.T) {
		pricer := NewHotshotPricer(distanceOf(0, lookupErr), 0, DistanceZero)

		out, err := pricer.Price(context.Background(), newSnapshot(quoteTables()), "11111", "22222", dec("10"), decimal.Zero)
		require.NoError(t, err)
		assert.Zero(t, out.Miles)
		assert.Equal(t, "A", out.Zone)
		assertDec(t, "55", out.QuoteTotal)
	})

	t.Run("UnknownPolicyFails", func(t *testing.T) {
		pricer := NewHotshotPricer(distanceOf(0, lookupErr), 0, "guess")

		_, err := pricer.Price(context.Background(), newSnapshot(quoteTables()), "11111", "22222", dec("10"), decimal.Zero)
		assert.ErrorIs(t, err, domain.ErrDistanceUnavailable)
	})

	t.Run("NegativeDistanceIsZero", func(t *testing.T) {
		pricer := NewHotshotPricer(distanceOf(-12, nil), 0, DistanceFail)

		out, err := pricer.Price(context.Background(), newSnapshot(quoteTables()), "11111", "22222", dec("10"), decimal.Zero)
		require.NoError(t, err)
		assert.Zero(t, out.Miles)
	})
}

func TestHotshotPricer_AppliesTimeout(t *testing.T) {
	slow := new(MockDistanceProvider)
	slow.On("DistanceMiles", mock.Anything, "11111", "22222").
		Run(func(args mock.Arguments) {
			<-args.Get(0).(context.Context).Done()
		}).
		Return(0.0, context.DeadlineExceeded)

	pricer := NewHotshotPricer(slow, 10*time.Millisecond, DistanceFail)

	_, err := pricer.Price(context.Background(), newSnapshot(quoteTables()), "11111", "22222", dec("10"), decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrDistanceUnavailable)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestHotshotPricer_MissingTable(t *testing.T) {
	distance := new(MockDistanceProvider)
	pricer := NewHotshotPricer(distance, 0, DistanceFail)

	tables := quoteTables()
	tables.HotshotRates = nil

	_, err := pricer.Price(context.Background(), newSnapshot(tables), "11111", "22222", dec("10"), decimal.Zero)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTableMissing)
	assert.EqualError(t, err, "Hotshot rate table(s) missing or empty: HotshotRate")
	distance.AssertNotCalled(t, "DistanceMiles", mock.Anything, mock.Anything, mock.Anything)
}

// noRateCatalog hides every hotshot rate row while keeping the bands.
type noRateCatalog struct {
	ratesports.RateCatalog
}

func (noRateCatalog) HotshotRate(string) (ratesdomain.HotshotRate, bool) {
	return ratesdomain.HotshotRate{}, false
}

func TestHotshotPricer_RateNotFound(t *testing.T) {
	pricer := NewHotshotPricer(distanceOf(10, nil), 0, DistanceFail)

	_, err := pricer.Price(context.Background(), noRateCatalog{newSnapshot(quoteTables())}, "11111", "22222", dec("10"), decimal.Zero)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrHotshotRateNotFound)
	assert.Contains(t, err.Error(), "zone A")
}
