package domain

import (
	"errors"
	"testing"

	ratesdomain "quote-engine/internal/features/rates/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func intPtr(i int) *int { return &i }

func TestParseMode(t *testing.T) {
	tests := []struct {
		input   string
		want    Mode
		wantErr bool
	}{
		{"", ModeHotshot, false},
		{"hotshot", ModeHotshot, false},
		{"HOTSHOT", ModeHotshot, false},
		{" Air ", ModeAir, false},
		{"ocean", "", true},
	}

	for _, tt := range tests {
		got, err := ParseMode(tt.input)
		if tt.wantErr {
			assert.Error(t, err, tt.input)
			continue
		}
		assert.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}
}

func TestMode_RequiredTables(t *testing.T) {
	assert.Equal(t, []ratesdomain.Table{ratesdomain.TableZipZone, ratesdomain.TableCostZone, ratesdomain.TableAirCostZone}, ModeAir.RequiredTables())
	assert.Equal(t, []ratesdomain.Table{ratesdomain.TableHotshotRate}, ModeHotshot.RequiredTables())
	assert.Nil(t, Mode("Ocean").RequiredTables())
}

func TestQuoteRequest_Validate(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		req := QuoteRequest{Mode: "air", OriginZip: "85001", DestZip: "10001", ActualWeight: decPtr("10")}
		req.Normalize()
		assert.NoError(t, req.Validate())
		assert.Equal(t, ModeAir, req.Mode)
		assert.Nil(t, req.Pieces)
		assert.Equal(t, 1, req.PieceCount())
	})

	t.Run("ExplicitZeroPieces", func(t *testing.T) {
		req := QuoteRequest{OriginZip: "85001", DestZip: "10001", ActualWeight: decPtr("10"), Pieces: intPtr(0)}
		req.Normalize()
		assert.Equal(t, []string{"pieces must be at least 1"}, ValidationMessages(req.Validate()))
	})

	t.Run("CollectsEveryProblem", func(t *testing.T) {
		req := QuoteRequest{
			Mode:      "ocean",
			DimWeight: decPtr("-1"),
			Length:    decimal.NewFromInt(-2),
			Pieces:    intPtr(-1),
		}

		err := req.Validate()
		require.Error(t, err)
		assert.ElementsMatch(t, []string{
			"mode must be Hotshot or Air",
			"origin_zip is required",
			"dest_zip is required",
			"weight is required",
			"dim_weight must be zero or greater",
			"length must be zero or greater",
			"pieces must be at least 1",
		}, ValidationMessages(err))

		var vErr *ValidationError
		assert.True(t, errors.As(err, &vErr))
	})

	t.Run("NegativeWeight", func(t *testing.T) {
		req := QuoteRequest{OriginZip: "1", DestZip: "2", ActualWeight: decPtr("-5"), Pieces: intPtr(1)}
		assert.Equal(t, []string{"weight must be zero or greater"}, ValidationMessages(req.Validate()))
	})
}

func TestQuoteRequest_DimensionalWeight(t *testing.T) {
	t.Run("Derived", func(t *testing.T) {
		req := QuoteRequest{
			Length: decimal.NewFromInt(20),
			Width:  decimal.NewFromInt(20),
			Height: decimal.NewFromInt(83),
			Pieces: intPtr(2),
		}
		// 20*20*83 = 33200; /166 = 200; *2 = 400
		assert.Equal(t, "400", req.DimensionalWeight().String())
	})

	t.Run("Declared", func(t *testing.T) {
		req := QuoteRequest{DimWeight: decPtr("55.5"), Length: decimal.NewFromInt(100)}
		assert.Equal(t, "55.5", req.DimensionalWeight().String())
	})

	t.Run("MissingDimension", func(t *testing.T) {
		req := QuoteRequest{Length: decimal.NewFromInt(20), Width: decimal.NewFromInt(20), Pieces: intPtr(1)}
		assert.True(t, req.DimensionalWeight().IsZero())
	})
}

func TestQuoteRequest_BillableWeight(t *testing.T) {
	tests := []struct {
		name       string
		actual     string
		dim        string
		want       string
		wantMethod WeightMethod
	}{
		{"ActualHeavier", "500", "200", "500", WeightActual},
		{"DimHeavier", "100", "200", "200", WeightDimensional},
		{"TiePrefersDimensional", "200", "200", "200", WeightDimensional},
		{"ZeroTieIsActual", "0", "0", "0", WeightActual},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := QuoteRequest{ActualWeight: decPtr(tt.actual), DimWeight: decPtr(tt.dim)}
			got, method := req.BillableWeight()
			assert.Equal(t, tt.want, got.String())
			assert.Equal(t, tt.wantMethod, method)
		})
	}
}

func TestMissingTablesError(t *testing.T) {
	err := &MissingTablesError{Mode: ModeAir, Tables: []ratesdomain.Table{ratesdomain.TableZipZone, ratesdomain.TableAirCostZone}}

	assert.EqualError(t, err, "Air rate table(s) missing or empty: ZipZone, AirCostZone")
	assert.ErrorIs(t, err, ErrTableMissing)
}
