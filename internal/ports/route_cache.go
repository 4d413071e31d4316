package ports

import (
	"context"

	"trip-route-service/internal/domain"
)

// Contract for a persistent origin->destination route cache layered on
// top of a RouteProvider. The pipeline itself never caches; this is an
// opt-in adapter concern.
type RouteCache interface {
	// Get returns the cached result and true on a hit.
	Get(ctx context.Context, origin, destination domain.Coordinates) (RouteResult, bool, error)
	Put(ctx context.Context, origin, destination domain.Coordinates, result RouteResult) error
}
