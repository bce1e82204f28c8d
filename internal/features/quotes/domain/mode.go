package domain

import (
	"fmt"
	"strings"

	ratesdomain "quote-engine/internal/features/rates/domain"
)

// Mode is the transport mode being priced.
type Mode string

const (
	// ModeHotshot is expedited ground freight priced by distance.
	ModeHotshot Mode = "Hotshot"
	// ModeAir is air freight priced by zone.
	ModeAir Mode = "Air"
)

// ParseMode returns the canonical Mode for s, ignoring case.
// An empty string selects Hotshot.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "hotshot":
		return ModeHotshot, nil
	case "air":
		return ModeAir, nil
	default:
		return "", fmt.Errorf("unknown mode %q", s)
	}
}

// RequiredTables lists the rate tables that must be loaded to price m.
func (m Mode) RequiredTables() []ratesdomain.Table {
	switch m {
	case ModeAir:
		return []ratesdomain.Table{ratesdomain.TableZipZone, ratesdomain.TableCostZone, ratesdomain.TableAirCostZone}
	case ModeHotshot:
		return []ratesdomain.Table{ratesdomain.TableHotshotRate}
	default:
		return nil
	}
}
