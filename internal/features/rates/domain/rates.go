package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Table names a rate table. The values match the labels shown to operators
// in "missing or empty" messages.
type Table string

const (
	TableZipZone     Table = "ZipZone"
	TableCostZone    Table = "CostZone"
	TableAirCostZone Table = "AirCostZone"
	TableHotshotRate Table = "HotshotRate"
	TableBeyondRate  Table = "BeyondRate"
	TableAccessorial Table = "Accessorial"
)

// AllTables lists every table in display order.
var AllTables = []Table{
	TableZipZone,
	TableCostZone,
	TableAirCostZone,
	TableHotshotRate,
	TableBeyondRate,
	TableAccessorial,
}

// ZipZone maps a serviceable ZIP code to its air destination zone.
type ZipZone struct {
	// Zip is the five digit ZIP code.
	Zip string `json:"zip"`
	// DestZone is the numeric air zone; nil when the row has no zone.
	DestZone *int `json:"dest_zone"`
	// Beyond is the raw beyond qualifier; nil when the row has no beyond column value.
	Beyond *string `json:"beyond"`
}

// CostZone maps a concatenated origin/destination zone pair to an air cost zone.
type CostZone struct {
	Concat   string `json:"concat"`
	CostZone string `json:"cost_zone"`
}

// AirCostZone holds the air pricing parameters of a cost zone.
type AirCostZone struct {
	Zone        string          `json:"zone"`
	MinCharge   decimal.Decimal `json:"min_charge"`
	PerLb       decimal.Decimal `json:"per_lb"`
	WeightBreak decimal.Decimal `json:"weight_break"`
}

// HotshotRate is one mileage band of the hotshot rate table.
type HotshotRate struct {
	// MilesCeiling is the upper mileage bound of the band.
	MilesCeiling int              `json:"miles"`
	Zone         string           `json:"zone"`
	PerLb        decimal.Decimal  `json:"per_lb"`
	PerMile      *decimal.Decimal `json:"per_mile"`
	MinCharge    decimal.Decimal  `json:"min_charge"`
	WeightBreak  *decimal.Decimal `json:"weight_break"`
	FuelPct      decimal.Decimal  `json:"fuel_pct"`
}

// BeyondRate is the flat surcharge for a beyond qualifier zone.
type BeyondRate struct {
	Zone string          `json:"zone"`
	Rate decimal.Decimal `json:"rate"`
}

// Accessorial is an optional service charge selectable on a quote.
type Accessorial struct {
	Name         string          `json:"name"`
	Amount       decimal.Decimal `json:"amount"`
	IsPercentage bool            `json:"is_percentage"`
}

var hundred = decimal.NewFromInt(100)

// Fraction returns a percentage accessorial's amount as a multiplier.
// Amounts above 1 are stored in percent (25 means 25%); smaller values are
// already fractions (0.25 means 25%).
func (a Accessorial) Fraction() decimal.Decimal {
	if a.Amount.GreaterThan(decimal.NewFromInt(1)) {
		return a.Amount.Div(hundred)
	}
	return a.Amount
}

// Tables is a complete bulk load of every rate table.
type Tables struct {
	ZipZones     []ZipZone
	CostZones    []CostZone
	AirCostZones []AirCostZone
	HotshotRates []HotshotRate
	BeyondRates  []BeyondRate
	Accessorials []Accessorial
}

// Count returns the number of rows loaded for table.
func (t *Tables) Count(table Table) int {
	if t == nil {
		return 0
	}
	switch table {
	case TableZipZone:
		return len(t.ZipZones)
	case TableCostZone:
		return len(t.CostZones)
	case TableAirCostZone:
		return len(t.AirCostZones)
	case TableHotshotRate:
		return len(t.HotshotRates)
	case TableBeyondRate:
		return len(t.BeyondRates)
	case TableAccessorial:
		return len(t.Accessorials)
	default:
		return 0
	}
}

// ConcatZones builds the cost zone lookup key for an origin/destination pair.
func ConcatZones(originZone, destZone int) string {
	return fmt.Sprintf("%d%d", originZone, destZone)
}

var noBeyond = map[string]bool{
	"":     true,
	"N/A":  true,
	"NO":   true,
	"NONE": true,
	"NAN":  true,
}

// ParseBeyond normalizes a raw beyond qualifier to the zone code used for
// BeyondRate lookups. It returns "" when no beyond charge applies.
func ParseBeyond(raw *string) string {
	if raw == nil {
		return ""
	}
	val := strings.ToUpper(strings.TrimSpace(*raw))
	if noBeyond[val] {
		return ""
	}
	fields := strings.Fields(val)
	return fields[len(fields)-1]
}
