package adapters

import (
	"context"
	"errors"
	"fmt"

	"quote-engine/internal/core/logger"
	"quote-engine/internal/features/rates/domain"
	"quote-engine/internal/features/rates/ports"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// pgUndefinedTable is the SQLSTATE for a relation that does not exist.
const pgUndefinedTable = "42P01"

// Querier is the subset of pgxpool.Pool used by PostgresProvider.
// *pgxpool.Pool, *pgxpool.Conn and *pgx.Conn all satisfy it.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

var _ ports.RateProvider = (*PostgresProvider)(nil)

// PostgresProvider implements ports.RateProvider over the rate tables kept
// in Postgres. A table that has not been created yet loads as empty.
type PostgresProvider struct {
	db Querier
}

// NewPostgresProvider creates a new PostgresProvider.
func NewPostgresProvider(db Querier) *PostgresProvider {
	return &PostgresProvider{db: db}
}

const (
	zipZonesSQL     = `SELECT zipcode, dest_zone, COALESCE(beyond, '') AS beyond FROM zip_zones`
	costZonesSQL    = `SELECT concat, cost_zone FROM cost_zones`
	airCostZonesSQL = `SELECT zone, min_charge::float8 AS min_charge, per_lb::float8 AS per_lb,
		weight_break::float8 AS weight_break FROM air_cost_zones`
	hotshotRatesSQL = `SELECT miles, zone, per_lb::float8 AS per_lb, per_mile::float8 AS per_mile,
		min_charge::float8 AS min_charge, weight_break::float8 AS weight_break,
		fuel_pct::float8 AS fuel_pct FROM hotshot_rates ORDER BY miles`
	beyondRatesSQL  = `SELECT zone, rate::float8 AS rate FROM beyond_rates`
	accessorialsSQL = `SELECT name, amount::float8 AS amount, COALESCE(is_percentage, false) AS is_percentage
		FROM accessorials ORDER BY id`
)

type pgZipZone struct {
	Zipcode  string  `db:"zipcode"`
	DestZone *int    `db:"dest_zone"`
	Beyond   *string `db:"beyond"`
}

type pgCostZone struct {
	Concat   string `db:"concat"`
	CostZone string `db:"cost_zone"`
}

type pgAirCostZone struct {
	Zone        string  `db:"zone"`
	MinCharge   float64 `db:"min_charge"`
	PerLb       float64 `db:"per_lb"`
	WeightBreak float64 `db:"weight_break"`
}

type pgHotshotRate struct {
	Miles       int      `db:"miles"`
	Zone        string   `db:"zone"`
	PerLb       float64  `db:"per_lb"`
	PerMile     *float64 `db:"per_mile"`
	MinCharge   float64  `db:"min_charge"`
	WeightBreak *float64 `db:"weight_break"`
	FuelPct     float64  `db:"fuel_pct"`
}

type pgBeyondRate struct {
	Zone string  `db:"zone"`
	Rate float64 `db:"rate"`
}

type pgAccessorial struct {
	Name         string  `db:"name"`
	Amount       float64 `db:"amount"`
	IsPercentage bool    `db:"is_percentage"`
}

// Load reads every rate table.
func (p *PostgresProvider) Load(ctx context.Context) (*domain.Tables, error) {
	var (
		tables domain.Tables
		err    error
	)

	if tables.ZipZones, err = queryTable(ctx, p.db, domain.TableZipZone, zipZonesSQL,
		func(r pgZipZone) domain.ZipZone {
			return domain.ZipZone{Zip: r.Zipcode, DestZone: r.DestZone, Beyond: r.Beyond}
		}); err != nil {
		return nil, err
	}

	if tables.CostZones, err = queryTable(ctx, p.db, domain.TableCostZone, costZonesSQL,
		func(r pgCostZone) domain.CostZone {
			return domain.CostZone{Concat: r.Concat, CostZone: r.CostZone}
		}); err != nil {
		return nil, err
	}

	if tables.AirCostZones, err = queryTable(ctx, p.db, domain.TableAirCostZone, airCostZonesSQL,
		func(r pgAirCostZone) domain.AirCostZone {
			return domain.AirCostZone{
				Zone:        r.Zone,
				MinCharge:   decimal.NewFromFloat(r.MinCharge),
				PerLb:       decimal.NewFromFloat(r.PerLb),
				WeightBreak: decimal.NewFromFloat(r.WeightBreak),
			}
		}); err != nil {
		return nil, err
	}

	if tables.HotshotRates, err = queryTable(ctx, p.db, domain.TableHotshotRate, hotshotRatesSQL,
		func(r pgHotshotRate) domain.HotshotRate {
			return domain.HotshotRate{
				MilesCeiling: r.Miles,
				Zone:         r.Zone,
				PerLb:        decimal.NewFromFloat(r.PerLb),
				PerMile:      decimalPtr(r.PerMile),
				MinCharge:    decimal.NewFromFloat(r.MinCharge),
				WeightBreak:  decimalPtr(r.WeightBreak),
				FuelPct:      decimal.NewFromFloat(r.FuelPct),
			}
		}); err != nil {
		return nil, err
	}

	if tables.BeyondRates, err = queryTable(ctx, p.db, domain.TableBeyondRate, beyondRatesSQL,
		func(r pgBeyondRate) domain.BeyondRate {
			return domain.BeyondRate{Zone: r.Zone, Rate: decimal.NewFromFloat(r.Rate)}
		}); err != nil {
		return nil, err
	}

	if tables.Accessorials, err = queryTable(ctx, p.db, domain.TableAccessorial, accessorialsSQL,
		func(r pgAccessorial) domain.Accessorial {
			return domain.Accessorial{
				Name:         r.Name,
				Amount:       decimal.NewFromFloat(r.Amount),
				IsPercentage: r.IsPercentage,
			}
		}); err != nil {
		return nil, err
	}

	return &tables, nil
}

// queryTable runs sql and converts each row with conv.
func queryTable[R, T any](ctx context.Context, q Querier, table domain.Table, sql string, conv func(R) T) ([]T, error) {
	rows, err := q.Query(ctx, sql)
	if err == nil {
		var recs []R
		recs, err = pgx.CollectRows(rows, pgx.RowToStructByName[R])
		if err == nil {
			return lo.Map(recs, func(r R, _ int) T { return conv(r) }), nil
		}
	}

	if isUndefinedTable(err) {
		logger.Get().Warn("Rate table does not exist, treating as empty", zap.String("table", string(table)))
		return nil, nil
	}
	return nil, fmt.Errorf("failed to query %s: %w", table, err)
}

func isUndefinedTable(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUndefinedTable
}
