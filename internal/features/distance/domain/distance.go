package domain

import (
	"errors"
	"strings"
	"unicode"
)

// MetersPerMile converts API distances reported in meters.
const MetersPerMile = 1609.344

var (
	// ErrInvalidZip is returned when a ZIP has fewer than five digits.
	ErrInvalidZip = errors.New("invalid zip code")
	// ErrZipNotFound is returned when a ZIP has no known location.
	ErrZipNotFound = errors.New("zip code not found")
	// ErrNoRoute is returned when the distance service reports no usable result.
	ErrNoRoute = errors.New("no route between zip codes")
)

// NormalizeZip strips separators from zip and returns its first five ASCII digits.
// ZIP+4 values such as "85001-1234" become "85001".
func NormalizeZip(zip string) (string, error) {
	var b strings.Builder
	for _, r := range zip {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case unicode.IsSpace(r), r == '-':
		default:
			return "", ErrInvalidZip
		}
	}
	digits := b.String()
	if len(digits) < 5 {
		return "", ErrInvalidZip
	}
	return digits[:5], nil
}
