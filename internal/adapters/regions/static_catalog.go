package regions

import (
	"context"

	"trip-route-service/internal/domain"
)

// StaticCatalog serves a fixed in-memory region list. Used by tests
// and by callers that build their catalog elsewhere.
type StaticCatalog struct {
	regions []domain.Region
}

func NewStaticCatalog(regions []domain.Region) *StaticCatalog {
	return &StaticCatalog{regions: regions}
}

func (c *StaticCatalog) Regions(ctx context.Context) ([]domain.Region, error) {
	return c.regions, nil
}
