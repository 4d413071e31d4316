package regions

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalogFixture = `{
	"type": "FeatureCollection",
	"features": [
		{
			"type": "Feature",
			"properties": {"id": "OR", "name": "Oregon"},
			"geometry": {
				"type": "Polygon",
				"coordinates": [[[-124, 42], [-117, 42], [-117, 46], [-124, 46], [-124, 42]]]
			}
		},
		{
			"type": "Feature",
			"properties": {"id": "WA", "name": "Washington"},
			"geometry": {
				"type": "MultiPolygon",
				"coordinates": [
					[[[-124, 46], [-117, 46], [-117, 49], [-124, 49], [-124, 46]]],
					[[[-123.2, 48.4], [-122.8, 48.4], [-122.8, 48.8], [-123.2, 48.8], [-123.2, 48.4]]]
				]
			}
		},
		{
			"type": "Feature",
			"properties": {"name": "Not a region"},
			"geometry": {"type": "Point", "coordinates": [-120, 45]}
		}
	]
}`

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "regions.geojson")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestGeoJSONCatalogLoads(t *testing.T) {
	catalog := NewGeoJSONCatalog(writeCatalog(t, catalogFixture))

	regions, err := catalog.Regions(context.Background())
	require.NoError(t, err)

	// The point feature is skipped; polygonal features survive.
	require.Len(t, regions, 2)

	assert.Equal(t, "OR", regions[0].ID)
	assert.Equal(t, "Oregon", regions[0].Name)
	assert.Len(t, regions[0].Boundary, 1)

	assert.Equal(t, "WA", regions[1].ID)
	assert.Len(t, regions[1].Boundary, 2, "multipolygon keeps both parts")
}

func TestGeoJSONCatalogMemoizes(t *testing.T) {
	path := writeCatalog(t, catalogFixture)
	catalog := NewGeoJSONCatalog(path)

	first, err := catalog.Regions(context.Background())
	require.NoError(t, err)

	// Removing the file after the first load must not matter.
	require.NoError(t, os.Remove(path))

	second, err := catalog.Regions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, len(first), len(second))
}

func TestGeoJSONCatalogMissingFile(t *testing.T) {
	catalog := NewGeoJSONCatalog(filepath.Join(t.TempDir(), "nope.geojson"))

	_, err := catalog.Regions(context.Background())
	assert.Error(t, err)
}

func TestGeoJSONCatalogMalformed(t *testing.T) {
	catalog := NewGeoJSONCatalog(writeCatalog(t, `{"type": "FeatureCollection", "features": [`))

	_, err := catalog.Regions(context.Background())
	assert.Error(t, err)
}
