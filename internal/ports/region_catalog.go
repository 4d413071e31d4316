package ports

import (
	"context"

	"trip-route-service/internal/domain"
)

// Contract for loading the administrative-boundary catalog that routes
// are tested against. The returned slice is read-only for the run and
// its order is preserved in coverage output.
type RegionCatalog interface {
	Regions(ctx context.Context) ([]domain.Region, error)
}
