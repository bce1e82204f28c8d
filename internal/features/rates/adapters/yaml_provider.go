package adapters

import (
	"context"
	"fmt"
	"os"

	"quote-engine/internal/features/rates/domain"
	"quote-engine/internal/features/rates/ports"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

var _ ports.RateProvider = (*FileProvider)(nil)

// FileProvider implements ports.RateProvider by reading a YAML document
// holding every rate table. The file is re-read on each Load so an edited
// file is picked up by the next reload.
type FileProvider struct {
	// path is the location of the YAML rate file.
	path string
}

// NewFileProvider creates a new FileProvider for the file at path.
func NewFileProvider(path string) *FileProvider {
	return &FileProvider{path: path}
}

type rateFile struct {
	ZipZones     []zipZoneRow     `yaml:"zip_zones"`
	CostZones    []costZoneRow    `yaml:"cost_zones"`
	AirCostZones []airCostZoneRow `yaml:"air_cost_zones"`
	HotshotRates []hotshotRateRow `yaml:"hotshot_rates"`
	BeyondRates  []beyondRateRow  `yaml:"beyond_rates"`
	Accessorials []accessorialRow `yaml:"accessorials"`
}

type zipZoneRow struct {
	Zip      string  `yaml:"zip"`
	DestZone *int    `yaml:"dest_zone"`
	Beyond   *string `yaml:"beyond"`
}

type costZoneRow struct {
	Concat   string `yaml:"concat"`
	CostZone string `yaml:"cost_zone"`
}

type airCostZoneRow struct {
	Zone        string  `yaml:"zone"`
	MinCharge   float64 `yaml:"min_charge"`
	PerLb       float64 `yaml:"per_lb"`
	WeightBreak float64 `yaml:"weight_break"`
}

type hotshotRateRow struct {
	Miles       int      `yaml:"miles"`
	Zone        string   `yaml:"zone"`
	PerLb       float64  `yaml:"per_lb"`
	PerMile     *float64 `yaml:"per_mile"`
	MinCharge   float64  `yaml:"min_charge"`
	WeightBreak *float64 `yaml:"weight_break"`
	FuelPct     float64  `yaml:"fuel_pct"`
}

type beyondRateRow struct {
	Zone string  `yaml:"zone"`
	Rate float64 `yaml:"rate"`
}

type accessorialRow struct {
	Name         string  `yaml:"name"`
	Amount       float64 `yaml:"amount"`
	IsPercentage bool    `yaml:"is_percentage"`
}

// Load reads and decodes the rate file.
func (p *FileProvider) Load(ctx context.Context) (*domain.Tables, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(p.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rate file %s: %w", p.path, err)
	}

	return decodeRateFile(data)
}

func decodeRateFile(data []byte) (*domain.Tables, error) {
	var f rateFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to decode rate file: %w", err)
	}

	return &domain.Tables{
		ZipZones: lo.Map(f.ZipZones, func(r zipZoneRow, _ int) domain.ZipZone {
			return domain.ZipZone{Zip: r.Zip, DestZone: r.DestZone, Beyond: r.Beyond}
		}),
		CostZones: lo.Map(f.CostZones, func(r costZoneRow, _ int) domain.CostZone {
			return domain.CostZone{Concat: r.Concat, CostZone: r.CostZone}
		}),
		AirCostZones: lo.Map(f.AirCostZones, func(r airCostZoneRow, _ int) domain.AirCostZone {
			return domain.AirCostZone{
				Zone:        r.Zone,
				MinCharge:   decimal.NewFromFloat(r.MinCharge),
				PerLb:       decimal.NewFromFloat(r.PerLb),
				WeightBreak: decimal.NewFromFloat(r.WeightBreak),
			}
		}),
		HotshotRates: lo.Map(f.HotshotRates, func(r hotshotRateRow, _ int) domain.HotshotRate {
			return domain.HotshotRate{
				MilesCeiling: r.Miles,
				Zone:         r.Zone,
				PerLb:        decimal.NewFromFloat(r.PerLb),
				PerMile:      decimalPtr(r.PerMile),
				MinCharge:    decimal.NewFromFloat(r.MinCharge),
				WeightBreak:  decimalPtr(r.WeightBreak),
				FuelPct:      decimal.NewFromFloat(r.FuelPct),
			}
		}),
		BeyondRates: lo.Map(f.BeyondRates, func(r beyondRateRow, _ int) domain.BeyondRate {
			return domain.BeyondRate{Zone: r.Zone, Rate: decimal.NewFromFloat(r.Rate)}
		}),
		Accessorials: lo.Map(f.Accessorials, func(r accessorialRow, _ int) domain.Accessorial {
			return domain.Accessorial{
				Name:         r.Name,
				Amount:       decimal.NewFromFloat(r.Amount),
				IsPercentage: r.IsPercentage,
			}
		}),
	}, nil
}

func decimalPtr(f *float64) *decimal.Decimal {
	if f == nil {
		return nil
	}
	d := decimal.NewFromFloat(*f)
	return &d
}
