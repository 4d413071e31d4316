// Package regions loads the administrative-boundary catalog the
// coverage resolver tests routes against.
package regions

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"trip-route-service/internal/domain"
	"trip-route-service/internal/platform/obs"
)

// GeoJSONCatalog reads regions from a GeoJSON FeatureCollection file
// (e.g., a states/provinces dataset at a fixed resolution). Features
// need a Polygon or MultiPolygon geometry plus id/name properties;
// anything else is skipped with a log line. The file is read once and
// memoized; the catalog is read-only for the run.
type GeoJSONCatalog struct {
	path string

	once    sync.Once
	regions []domain.Region
	loadErr error
}

func NewGeoJSONCatalog(path string) *GeoJSONCatalog {
	return &GeoJSONCatalog{path: path}
}

func (c *GeoJSONCatalog) Regions(ctx context.Context) (_ []domain.Region, err error) {
	defer obs.Time(ctx, "regions.Load")(&err)

	c.once.Do(func() {
		c.regions, c.loadErr = c.load()
	})
	if c.loadErr != nil {
		return nil, fmt.Errorf("load region catalog %q: %w", c.path, c.loadErr)
	}
	return c.regions, nil
}

func (c *GeoJSONCatalog) load() ([]domain.Region, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("parse feature collection: %w", err)
	}

	regions := make([]domain.Region, 0, len(fc.Features))
	for i, feature := range fc.Features {
		var boundary orb.MultiPolygon
		switch g := feature.Geometry.(type) {
		case orb.Polygon:
			boundary = orb.MultiPolygon{g}
		case orb.MultiPolygon:
			boundary = g
		default:
			log.Printf("region catalog: feature %d has non-polygonal geometry %T, skipping", i, feature.Geometry)
			continue
		}

		regions = append(regions, domain.Region{
			ID:       featureID(feature, i),
			Name:     featureName(feature),
			Boundary: boundary,
		})
	}

	return regions, nil
}

// featureID prefers the GeoJSON feature id, then an "id" property,
// then the feature's position as a last resort so every region has a
// stable identity within the run.
func featureID(f *geojson.Feature, index int) string {
	if f.ID != nil {
		return fmt.Sprintf("%v", f.ID)
	}
	if id, ok := f.Properties["id"]; ok {
		return fmt.Sprintf("%v", id)
	}
	return fmt.Sprintf("feature-%d", index)
}

func featureName(f *geojson.Feature) string {
	for _, key := range []string{"name", "NAME"} {
		if name, ok := f.Properties[key].(string); ok && name != "" {
			return name
		}
	}
	return ""
}
