package ports

import "context"

// DistanceProvider returns the distance in miles between two ZIP codes.
type DistanceProvider interface {
	DistanceMiles(ctx context.Context, originZip, destZip string) (float64, error)
}
