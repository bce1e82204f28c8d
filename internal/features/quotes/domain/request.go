package domain

import (
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/multierr"
)

// DimFactor is the cubic inches per pound used for dimensional weight.
const DimFactor = 166

// WeightMethod records which weight a quote was billed on.
type WeightMethod string

const (
	WeightActual      WeightMethod = "Actual"
	WeightDimensional WeightMethod = "Dimensional"
)

// QuoteRequest describes the shipment to price.
type QuoteRequest struct {
	Mode      Mode
	OriginZip string
	DestZip   string
	// ActualWeight is the scale weight in pounds; nil when not supplied.
	ActualWeight *decimal.Decimal
	// DimWeight is a declared dimensional weight. When nil it is derived
	// from the dimensions.
	DimWeight *decimal.Decimal
	Length    decimal.Decimal
	Width     decimal.Decimal
	Height    decimal.Decimal
	// Pieces is the piece count; nil means a single piece.
	Pieces *int
	// Accessorials are the selected accessorial names.
	Accessorials []string
}

// ValidationError describes one invalid request field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + " " + e.Message
}

// Normalize trims the ZIP codes and canonicalizes the mode.
func (r *QuoteRequest) Normalize() {
	r.OriginZip = strings.TrimSpace(r.OriginZip)
	r.DestZip = strings.TrimSpace(r.DestZip)
	if m, err := ParseMode(string(r.Mode)); err == nil {
		r.Mode = m
	}
}

// Validate reports every problem with the request. The returned error
// combines *ValidationError values; use ValidationMessages to list them.
func (r QuoteRequest) Validate() error {
	var err error

	if _, modeErr := ParseMode(string(r.Mode)); modeErr != nil {
		err = multierr.Append(err, &ValidationError{Field: "mode", Message: "must be Hotshot or Air"})
	}
	if strings.TrimSpace(r.OriginZip) == "" {
		err = multierr.Append(err, &ValidationError{Field: "origin_zip", Message: "is required"})
	}
	if strings.TrimSpace(r.DestZip) == "" {
		err = multierr.Append(err, &ValidationError{Field: "dest_zip", Message: "is required"})
	}
	if r.ActualWeight == nil {
		err = multierr.Append(err, &ValidationError{Field: "weight", Message: "is required"})
	} else if r.ActualWeight.IsNegative() {
		err = multierr.Append(err, &ValidationError{Field: "weight", Message: "must be zero or greater"})
	}
	if r.DimWeight != nil && r.DimWeight.IsNegative() {
		err = multierr.Append(err, &ValidationError{Field: "dim_weight", Message: "must be zero or greater"})
	}
	for _, d := range []struct {
		field string
		value decimal.Decimal
	}{{"length", r.Length}, {"width", r.Width}, {"height", r.Height}} {
		if d.value.IsNegative() {
			err = multierr.Append(err, &ValidationError{Field: d.field, Message: "must be zero or greater"})
		}
	}
	if r.Pieces != nil && *r.Pieces < 1 {
		err = multierr.Append(err, &ValidationError{Field: "pieces", Message: "must be at least 1"})
	}

	return err
}

// ValidationMessages flattens an error returned by Validate.
func ValidationMessages(err error) []string {
	errs := multierr.Errors(err)
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.Error())
	}
	return msgs
}

// Weight returns the actual weight, zero when unset.
func (r QuoteRequest) Weight() decimal.Decimal {
	if r.ActualWeight == nil {
		return decimal.Zero
	}
	return *r.ActualWeight
}

// DimensionalWeight returns the declared dimensional weight or derives it as
// L*W*H/166 per piece. Missing dimensions yield zero.
func (r QuoteRequest) DimensionalWeight() decimal.Decimal {
	if r.DimWeight != nil {
		return *r.DimWeight
	}
	if !r.Length.IsPositive() || !r.Width.IsPositive() || !r.Height.IsPositive() {
		return decimal.Zero
	}
	return r.Length.Mul(r.Width).Mul(r.Height).
		Div(decimal.NewFromInt(DimFactor)).
		Mul(decimal.NewFromInt(int64(r.PieceCount())))
}

// PieceCount returns the piece count, 1 when unset or invalid.
func (r QuoteRequest) PieceCount() int {
	if r.Pieces == nil || *r.Pieces < 1 {
		return 1
	}
	return *r.Pieces
}

// BillableWeight returns the greater of actual and dimensional weight.
// Dimensional wins a tie only when it is positive.
func (r QuoteRequest) BillableWeight() (decimal.Decimal, WeightMethod) {
	actual := r.Weight()
	dim := r.DimensionalWeight()
	if dim.IsPositive() && dim.GreaterThanOrEqual(actual) {
		return dim, WeightDimensional
	}
	return actual, WeightActual
}
