package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// HotshotBreakdown is the outcome of pricing a hotshot shipment.
type HotshotBreakdown struct {
	Zone  string  `json:"zone"`
	Miles float64 `json:"miles"`
	// WeightBreak is carried from the rate row for display; nil when unset.
	WeightBreak *decimal.Decimal `json:"weight_break"`
	PerLb       decimal.Decimal  `json:"per_lb"`
	// PerMile is only set for zone X.
	PerMile    *decimal.Decimal `json:"per_mile"`
	MinCharge  decimal.Decimal  `json:"min_charge"`
	FuelPct    decimal.Decimal  `json:"fuel_pct"`
	Base       decimal.Decimal  `json:"base"`
	QuoteTotal decimal.Decimal  `json:"quote_total"`
}

// AirBreakdown is the outcome of pricing an air shipment. Resolution
// failures are reported through Error with a zero QuoteTotal.
type AirBreakdown struct {
	// Zone is the forward origin/destination zone concatenation.
	Zone         string          `json:"zone,omitempty"`
	CostZone     string          `json:"cost_zone,omitempty"`
	MinCharge    decimal.Decimal `json:"min_charge"`
	PerLb        decimal.Decimal `json:"per_lb"`
	WeightBreak  decimal.Decimal `json:"weight_break"`
	Base         decimal.Decimal `json:"base"`
	OriginBeyond string          `json:"origin_beyond,omitempty"`
	DestBeyond   string          `json:"dest_beyond,omitempty"`
	OriginCharge decimal.Decimal `json:"origin_charge"`
	DestCharge   decimal.Decimal `json:"dest_charge"`
	BeyondTotal  decimal.Decimal `json:"beyond_total"`
	QuoteTotal   decimal.Decimal `json:"quote_total"`
	Error        string          `json:"error,omitempty"`
}

// QuoteResult is a priced quote.
type QuoteResult struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Mode      Mode      `json:"mode"`
	OriginZip string    `json:"origin_zip"`
	DestZip   string    `json:"dest_zip"`
	Zone      string    `json:"zone,omitempty"`
	// Miles is set for hotshot quotes only.
	Miles *float64 `json:"miles,omitempty"`

	ActualWeight   decimal.Decimal `json:"actual_weight"`
	DimWeight      decimal.Decimal `json:"dim_weight"`
	BillableWeight decimal.Decimal `json:"billable_weight"`
	WeightMethod   WeightMethod    `json:"weight_method"`
	Pieces         int             `json:"pieces"`

	Base    decimal.Decimal   `json:"base"`
	Hotshot *HotshotBreakdown `json:"hotshot,omitempty"`
	Air     *AirBreakdown     `json:"air,omitempty"`

	Accessorials     map[string]decimal.Decimal `json:"accessorials"`
	AccessorialTotal decimal.Decimal            `json:"accessorial_total"`
	QuoteTotal       decimal.Decimal            `json:"quote_total"`

	Warnings         []string `json:"warnings"`
	ExceedsThreshold bool     `json:"exceeds_threshold"`
	Error            string   `json:"error,omitempty"`
}
