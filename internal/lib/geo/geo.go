// Package geo provides the planar geometry primitives used by route
// decoding and coverage resolution. All coordinates are WGS84 lon/lat;
// callers normalize at the adapter boundary before anything here runs,
// so intersection tests operate in a single shared reference system.
package geo

import (
	"errors"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/twpayne/go-polyline"
)

// DecodePolyline decodes a Google encoded polyline into a lon/lat
// line string.
func DecodePolyline(encoded string) (orb.LineString, error) {
	if encoded == "" {
		return nil, errors.New("encoded polyline is empty")
	}

	coords, _, err := polyline.DecodeCoords([]byte(encoded))
	if err != nil {
		return nil, fmt.Errorf("decode polyline: %w", err)
	}

	// go-polyline yields [lat, lng]; orb points are (lon, lat).
	line := make(orb.LineString, len(coords))
	for i, c := range coords {
		line[i] = orb.Point{c[1], c[0]}
	}
	return line, nil
}

// ValidateBoundary rejects degenerate region boundaries before they
// reach intersection testing. Every ring must be a closed loop of at
// least four points.
func ValidateBoundary(boundary orb.MultiPolygon) error {
	if len(boundary) == 0 {
		return errors.New("boundary has no polygons")
	}
	for pi, poly := range boundary {
		if len(poly) == 0 {
			return fmt.Errorf("polygon %d has no rings", pi)
		}
		for ri, ring := range poly {
			if len(ring) < 4 {
				return fmt.Errorf("polygon %d ring %d has %d points, need at least 4", pi, ri, len(ring))
			}
			if !ring.Closed() {
				return fmt.Errorf("polygon %d ring %d is not closed", pi, ri)
			}
		}
	}
	return nil
}

// LineIntersectsBoundary reports whether a route line string has a
// non-empty planar intersection with a region boundary. True when any
// vertex of the line lies inside the boundary, or when any line
// segment crosses any ring edge. Touching a shared edge counts as an
// intersection.
func LineIntersectsBoundary(line orb.LineString, boundary orb.MultiPolygon) bool {
	if len(line) == 0 || len(boundary) == 0 {
		return false
	}

	for _, pt := range line {
		if planar.MultiPolygonContains(boundary, pt) {
			return true
		}
	}

	for i := 0; i+1 < len(line); i++ {
		for _, poly := range boundary {
			for _, ring := range poly {
				for j := 0; j+1 < len(ring); j++ {
					if segmentsIntersect(line[i], line[i+1], ring[j], ring[j+1]) {
						return true
					}
				}
			}
		}
	}
	return false
}

// cross returns the z component of (b-a) x (c-a). Zero means
// collinear; the sign gives the orientation of c relative to ab.
func cross(a, b, c orb.Point) float64 {
	return (b[0]-a[0])*(c[1]-a[1]) - (b[1]-a[1])*(c[0]-a[0])
}

// onSegment assumes a, b, p collinear and reports whether p lies
// within the bounding box of segment ab.
func onSegment(a, b, p orb.Point) bool {
	return min(a[0], b[0]) <= p[0] && p[0] <= max(a[0], b[0]) &&
		min(a[1], b[1]) <= p[1] && p[1] <= max(a[1], b[1])
}

// segmentsIntersect reports whether segments p1p2 and q1q2 share at
// least one point, including endpoint touches and collinear overlap.
func segmentsIntersect(p1, p2, q1, q2 orb.Point) bool {
	d1 := cross(q1, q2, p1)
	d2 := cross(q1, q2, p2)
	d3 := cross(p1, p2, q1)
	d4 := cross(p1, p2, q2)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}

	if d1 == 0 && onSegment(q1, q2, p1) {
		return true
	}
	if d2 == 0 && onSegment(q1, q2, p2) {
		return true
	}
	if d3 == 0 && onSegment(p1, p2, q1) {
		return true
	}
	if d4 == 0 && onSegment(p1, p2, q2) {
		return true
	}
	return false
}
