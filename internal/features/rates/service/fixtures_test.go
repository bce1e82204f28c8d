package service

import (
	"quote-engine/internal/features/rates/domain"

	"github.com/shopspring/decimal"
)

func intPtr(i int) *int { return &i }

func strPtr(s string) *string { return &s }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func fixtureTables() *domain.Tables {
	return &domain.Tables{
		ZipZones: []domain.ZipZone{
			{Zip: "12345", DestZone: intPtr(1), Beyond: strPtr("NO")},
			{Zip: "67890", DestZone: intPtr(2), Beyond: strPtr("B1")},
			{Zip: "44444", DestZone: intPtr(4), Beyond: strPtr("")},
			{Zip: "55555", DestZone: nil, Beyond: strPtr("NO")},
			{Zip: "66666", DestZone: intPtr(3), Beyond: nil},
		},
		CostZones: []domain.CostZone{
			{Concat: "12", CostZone: "C1"},
			{Concat: "41", CostZone: "C4"},
		},
		AirCostZones: []domain.AirCostZone{
			{Zone: "C1", MinCharge: dec("100"), PerLb: dec("1.0"), WeightBreak: dec("50")},
		},
		HotshotRates: []domain.HotshotRate{
			{MilesCeiling: 500, Zone: "C", PerLb: dec("1.5"), MinCharge: dec("300"), FuelPct: dec("0.1")},
			{MilesCeiling: 100, Zone: "A", PerLb: dec("2.0"), MinCharge: dec("50"), WeightBreak: decPtr("100"), FuelPct: dec("0.1")},
			{MilesCeiling: 200, Zone: "b", PerLb: dec("1.8"), MinCharge: dec("120"), FuelPct: dec("0.1")},
			{MilesCeiling: 150, Zone: "A", PerLb: dec("2.2"), MinCharge: dec("60"), FuelPct: dec("0.1")},
			{MilesCeiling: 1000, Zone: "X", PerLb: dec("0.5"), PerMile: decPtr("1.5"), MinCharge: dec("50"), FuelPct: dec("0.2")},
		},
		BeyondRates: []domain.BeyondRate{
			{Zone: "B1", Rate: dec("20")},
		},
		Accessorials: []domain.Accessorial{
			{Name: "Liftgate", Amount: dec("25")},
			{Name: "", Amount: dec("99")},
			{Name: "Residential", Amount: dec("15")},
			{Name: "Guarantee", Amount: dec("25"), IsPercentage: true},
		},
	}
}
