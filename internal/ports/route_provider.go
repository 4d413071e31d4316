package ports

import (
	"context"

	"github.com/paulmach/orb"

	"trip-route-service/internal/domain"
)

// Raw routing result for a single origin->destination pair, exactly as
// the provider returned it: geometry as decoded WGS84 lon/lat points,
// distance in meters, duration in seconds. Unit conversion and
// rounding happen downstream, never here.
type RouteResult struct {
	Geometry        orb.LineString
	DistanceMeters  float64
	DurationSeconds float64
}

// Contract for obtaining a driving route between two coordinates from
// an external routing service.
//
// Implementations classify failures with the domain sentinels:
// transient faults wrap domain.ErrRoutingUnavailable (after the
// adapter's own bounded retries), an unroutable pair wraps
// domain.ErrNoRouteFound. Implementations must be safe for concurrent
// use; per-segment calls are issued in parallel.
type RouteProvider interface {
	GetRoute(ctx context.Context, origin, destination domain.Coordinates) (RouteResult, error)
}
