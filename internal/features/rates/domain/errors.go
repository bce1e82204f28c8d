package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrZipNotFound is returned when a ZIP has no ZipZone row.
	ErrZipNotFound = errors.New("zip not found")
	// ErrMissingDestZone is returned when a ZipZone row has no destination zone.
	ErrMissingDestZone = errors.New("missing dest_zone")
	// ErrMissingBeyond is returned when a ZipZone row has no beyond value.
	ErrMissingBeyond = errors.New("missing beyond")
	// ErrCostZoneNotFound is returned when neither zone concatenation has a CostZone row.
	ErrCostZoneNotFound = errors.New("cost zone not found")
)

// Side identifies the shipment endpoint a ZIP belongs to.
type Side string

const (
	SideOrigin      Side = "Origin"
	SideDestination Side = "Destination"
)

// ResolutionError reports why a ZIP could not be resolved to an air zone.
// Its message is shown to users verbatim.
type ResolutionError struct {
	Side Side
	Zip  string
	Err  error
}

func (e *ResolutionError) Error() string {
	if errors.Is(e.Err, ErrZipNotFound) {
		return fmt.Sprintf("%s ZIP code %s not found", e.Side, e.Zip)
	}
	return fmt.Sprintf("%s ZIP code %s %s", e.Side, e.Zip, e.Err)
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}

// CostZoneError reports a zone pair with no cost zone in either direction.
type CostZoneError struct {
	Forward string
	Reverse string
}

func (e *CostZoneError) Error() string {
	return fmt.Sprintf("Cost zone not found for concatenated zone %s or %s", e.Forward, e.Reverse)
}

func (e *CostZoneError) Unwrap() error {
	return ErrCostZoneNotFound
}
