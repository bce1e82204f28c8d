package domain

import (
	"errors"
	"fmt"
	"strings"

	ratesdomain "quote-engine/internal/features/rates/domain"

	"github.com/samber/lo"
)

var (
	// ErrTableMissing is returned when a rate table needed by a mode is absent or empty.
	ErrTableMissing = errors.New("rate table missing or empty")
	// ErrHotshotZoneNotFound is returned when no hotshot band covers a distance.
	ErrHotshotZoneNotFound = errors.New("hotshot zone not found")
	// ErrHotshotRateNotFound is returned when a hotshot zone has no rate row.
	ErrHotshotRateNotFound = errors.New("hotshot rate not found")
	// ErrDistanceUnavailable is returned when the distance lookup fails under the fail policy.
	ErrDistanceUnavailable = errors.New("distance unavailable")
)

// MissingTablesError lists the tables that prevent pricing a mode.
type MissingTablesError struct {
	Mode   Mode
	Tables []ratesdomain.Table
}

func (e *MissingTablesError) Error() string {
	names := lo.Map(e.Tables, func(t ratesdomain.Table, _ int) string { return string(t) })
	return fmt.Sprintf("%s rate table(s) missing or empty: %s", e.Mode, strings.Join(names, ", "))
}

func (e *MissingTablesError) Unwrap() error {
	return ErrTableMissing
}
