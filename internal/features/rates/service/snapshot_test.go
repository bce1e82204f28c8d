package service

import (
	"testing"
	"time"

	"quote-engine/internal/features/rates/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSnapshot_Empty(t *testing.T) {
	snap := NewSnapshot(nil, time.Time{})

	assert.Equal(t, domain.AllTables, snap.MissingTables(domain.AllTables...))
	_, ok := snap.HotshotZoneForMiles(10)
	assert.False(t, ok)
	assert.Empty(t, snap.Accessorials())
	assert.True(t, snap.BeyondRate("B1").IsZero())
}

func TestSnapshot_MissingTables(t *testing.T) {
	tables := fixtureTables()
	tables.CostZones = nil
	snap := NewSnapshot(tables, time.Now())

	assert.Equal(t,
		[]domain.Table{domain.TableCostZone},
		snap.MissingTables(domain.TableZipZone, domain.TableCostZone, domain.TableAirCostZone),
	)
	assert.Empty(t, snap.MissingTables(domain.TableHotshotRate))
}

func TestSnapshot_HotshotZoneForMiles(t *testing.T) {
	snap := NewSnapshot(fixtureTables(), time.Now())

	tests := []struct {
		miles int
		want  string
	}{
		{miles: 0, want: "A"},
		{miles: 99, want: "A"},
		{miles: 100, want: "A"},
		{miles: 101, want: "A"},
		{miles: 150, want: "A"},
		{miles: 151, want: "B"},
		{miles: 200, want: "B"},
		{miles: 201, want: "C"},
		{miles: 1000, want: "X"},
		// Beyond every ceiling falls back to the largest band.
		{miles: 5000, want: "X"},
	}

	for _, tt := range tests {
		zone, ok := snap.HotshotZoneForMiles(tt.miles)
		require.True(t, ok)
		assert.Equal(t, tt.want, zone, "miles=%d", tt.miles)
	}
}

func TestSnapshot_HotshotRate(t *testing.T) {
	snap := NewSnapshot(fixtureTables(), time.Now())

	// Zone A has two bands; the largest ceiling wins.
	rate, ok := snap.HotshotRate("a")
	require.True(t, ok)
	assert.Equal(t, 150, rate.MilesCeiling)
	assert.True(t, dec("2.2").Equal(rate.PerLb))

	rate, ok = snap.HotshotRate(" B ")
	require.True(t, ok)
	assert.Equal(t, 200, rate.MilesCeiling)

	_, ok = snap.HotshotRate("Q")
	assert.False(t, ok)
}

func TestSnapshot_DoesNotAliasInput(t *testing.T) {
	tables := fixtureTables()
	snap := NewSnapshot(tables, time.Now())

	tables.HotshotRates[0].Zone = "Z"
	tables.Accessorials[0].Name = "Changed"

	zone, _ := snap.HotshotZoneForMiles(400)
	assert.Equal(t, "C", zone)

	accs := snap.Accessorials()
	accs[0].Name = "Mutated"
	assert.Equal(t, "Liftgate", snap.Accessorials()[0].Name)
}

func TestSnapshot_Lookups(t *testing.T) {
	snap := NewSnapshot(fixtureTables(), time.Now())

	z, ok := snap.Zip(" 12345 ")
	require.True(t, ok)
	assert.Equal(t, 1, *z.DestZone)

	cz, ok := snap.CostZone("12")
	require.True(t, ok)
	assert.Equal(t, "C1", cz.CostZone)

	air, ok := snap.AirCostZone("c1")
	require.True(t, ok)
	assert.True(t, dec("100").Equal(air.MinCharge))

	assert.True(t, dec("20").Equal(snap.BeyondRate("b1")))
	assert.True(t, snap.BeyondRate("B9").IsZero())
	assert.True(t, snap.BeyondRate("").IsZero())
}

func TestSnapshot_Accessorials(t *testing.T) {
	snap := NewSnapshot(fixtureTables(), time.Now())

	names := make([]string, 0)
	for _, a := range snap.Accessorials() {
		names = append(names, a.Name)
	}
	assert.Equal(t, []string{"Liftgate", "Residential", "Guarantee"}, names)

	acc, ok := snap.Accessorial("LIFTgate")
	require.True(t, ok)
	assert.Equal(t, "Liftgate", acc.Name)

	_, ok = snap.Accessorial("")
	assert.False(t, ok)
}
