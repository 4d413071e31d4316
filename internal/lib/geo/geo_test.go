package geo

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-polyline"
)

func TestDecodePolyline(t *testing.T) {
	coords := [][]float64{
		{38.5, -120.2},
		{40.7, -120.95},
		{43.252, -126.453},
	}
	encoded := string(polyline.EncodeCoords(coords))

	line, err := DecodePolyline(encoded)
	require.NoError(t, err)
	require.Len(t, line, 3)

	// Decoded points come back as (lon, lat).
	assert.InDelta(t, -120.2, line[0][0], 1e-5)
	assert.InDelta(t, 38.5, line[0][1], 1e-5)
	assert.InDelta(t, -126.453, line[2][0], 1e-5)
	assert.InDelta(t, 43.252, line[2][1], 1e-5)
}

func TestDecodePolylineEmpty(t *testing.T) {
	_, err := DecodePolyline("")
	assert.Error(t, err)
}

func square(minX, minY, maxX, maxY float64) orb.MultiPolygon {
	return orb.MultiPolygon{
		orb.Polygon{orb.Ring{
			{minX, minY}, {maxX, minY}, {maxX, maxY}, {minX, maxY}, {minX, minY},
		}},
	}
}

func TestValidateBoundary(t *testing.T) {
	assert.NoError(t, ValidateBoundary(square(0, 0, 1, 1)))

	assert.Error(t, ValidateBoundary(orb.MultiPolygon{}), "empty boundary")
	assert.Error(t, ValidateBoundary(orb.MultiPolygon{orb.Polygon{}}), "polygon without rings")
	assert.Error(t, ValidateBoundary(orb.MultiPolygon{
		orb.Polygon{orb.Ring{{0, 0}, {1, 0}, {0, 1}}},
	}), "open three-point ring")
}

func TestLineIntersectsBoundary(t *testing.T) {
	boundary := square(0, 0, 2, 2)

	tests := []struct {
		name string
		line orb.LineString
		want bool
	}{
		{"vertex inside", orb.LineString{{1, 1}, {5, 5}}, true},
		{"crosses without interior vertex", orb.LineString{{-1, 1}, {3, 1}}, true},
		{"entirely outside", orb.LineString{{5, 5}, {6, 6}}, false},
		{"runs along the shared edge", orb.LineString{{0, 0}, {0, 2}}, true},
		{"touches a corner", orb.LineString{{2, 2}, {4, 4}}, true},
		{"parallel and clear of the edge", orb.LineString{{-1, -1}, {3, -1}}, false},
		{"empty line", orb.LineString{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LineIntersectsBoundary(tt.line, boundary))
		})
	}
}

func TestLineIntersectsBoundaryRespectsHoles(t *testing.T) {
	// Square with a hole in the middle; a line living entirely inside
	// the hole does not intersect the region.
	boundary := orb.MultiPolygon{
		orb.Polygon{
			orb.Ring{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}},
			orb.Ring{{4, 4}, {6, 4}, {6, 6}, {4, 6}, {4, 4}},
		},
	}

	assert.False(t, LineIntersectsBoundary(orb.LineString{{4.5, 4.5}, {5.5, 5.5}}, boundary))
	assert.True(t, LineIntersectsBoundary(orb.LineString{{1, 1}, {2, 2}}, boundary))
	// Crossing the hole still crosses the surrounding ring.
	assert.True(t, LineIntersectsBoundary(orb.LineString{{-1, 5}, {11, 5}}, boundary))
}
