package services

import (
	"testing"

	"github.com/paulmach/orb"

	"trip-route-service/internal/domain"
)

func band(yMin, yMax float64) orb.MultiPolygon {
	return orb.MultiPolygon{
		orb.Polygon{orb.Ring{
			{-1, yMin}, {1, yMin}, {1, yMax}, {-1, yMax}, {-1, yMin},
		}},
	}
}

func straightRoute(index int, from, to domain.Coordinates) domain.Route {
	return domain.Route{
		Segment: domain.Segment{
			Index:       index,
			Origin:      domain.Waypoint{Coord: from},
			Destination: domain.Waypoint{Coord: to},
		},
		Geometry: orb.LineString{{from.Lon, from.Lat}, {to.Lon, to.Lat}},
	}
}

// Trip A(0,0) -> B(0,1) -> C(0,2) across two stacked regions sharing
// the boundary at y=1: each region is visited exactly once even though
// the shared boundary is touched by both legs.
func TestResolveCoverageSharedBoundary(t *testing.T) {
	regions := []domain.Region{
		{ID: "r1", Name: "South", Boundary: band(0, 1)},
		{ID: "r2", Name: "North", Boundary: band(1, 2)},
	}
	routes := []domain.Route{
		straightRoute(0, domain.Coordinates{Lon: 0, Lat: 0}, domain.Coordinates{Lon: 0, Lat: 1}),
		straightRoute(1, domain.Coordinates{Lon: 0, Lat: 1}, domain.Coordinates{Lon: 0, Lat: 2}),
	}

	result := ResolveCoverage(regions, routes)

	if len(result.Regions) != 2 {
		t.Fatalf("got %d region entries, want 2 (one per catalog region)", len(result.Regions))
	}
	for _, rc := range result.Regions {
		if !rc.Visited {
			t.Errorf("region %s: visited = false, want true", rc.Region.ID)
		}
	}

	visited := result.VisitedIDs()
	if len(visited) != 2 {
		t.Fatalf("visited = %v, want exactly [r1 r2]", visited)
	}

	// Raw hits keep every positive (region, route) pair for diagnostics.
	if len(result.Hits) < 2 {
		t.Errorf("got %d hits, want at least one per region", len(result.Hits))
	}
}

func TestResolveCoverageExcludesUntouchedRegions(t *testing.T) {
	regions := []domain.Region{
		{ID: "near", Boundary: band(0, 1)},
		{ID: "far", Boundary: band(50, 60)},
	}
	routes := []domain.Route{
		straightRoute(0, domain.Coordinates{Lon: 0, Lat: 0.2}, domain.Coordinates{Lon: 0, Lat: 0.8}),
	}

	result := ResolveCoverage(regions, routes)

	visited := result.VisitedIDs()
	if len(visited) != 1 || visited[0] != "near" {
		t.Fatalf("visited = %v, want [near]", visited)
	}
	for _, hit := range result.Hits {
		if hit.RegionID == "far" {
			t.Fatalf("region far should have no hits")
		}
	}
}

func TestResolveCoverageDeduplicatesMultipleEntries(t *testing.T) {
	// One region straddled by two disjoint legs: membership still
	// collapses to a single entry.
	regions := []domain.Region{{ID: "r", Boundary: band(0, 10)}}
	routes := []domain.Route{
		straightRoute(0, domain.Coordinates{Lon: 0, Lat: 1}, domain.Coordinates{Lon: 0, Lat: 2}),
		straightRoute(3, domain.Coordinates{Lon: 0, Lat: 8}, domain.Coordinates{Lon: 0, Lat: 9}),
	}

	result := ResolveCoverage(regions, routes)

	if got := result.VisitedIDs(); len(got) != 1 {
		t.Fatalf("visited = %v, want single entry", got)
	}
	if len(result.Hits) != 2 {
		t.Fatalf("got %d hits, want 2 (one per intersecting route)", len(result.Hits))
	}
}

func TestResolveCoverageInvalidBoundaryContinues(t *testing.T) {
	regions := []domain.Region{
		{ID: "broken", Boundary: orb.MultiPolygon{orb.Polygon{orb.Ring{{0, 0}, {1, 1}}}}},
		{ID: "ok", Boundary: band(0, 1)},
	}
	routes := []domain.Route{
		straightRoute(0, domain.Coordinates{Lon: 0, Lat: 0.5}, domain.Coordinates{Lon: 0.5, Lat: 0.5}),
	}

	result := ResolveCoverage(regions, routes)

	if len(result.Failed) != 1 {
		t.Fatalf("got %d failed regions, want 1", len(result.Failed))
	}
	if result.Failed[0].RegionID != "broken" {
		t.Errorf("failed region = %q, want broken", result.Failed[0].RegionID)
	}

	if got := result.VisitedIDs(); len(got) != 1 || got[0] != "ok" {
		t.Fatalf("visited = %v, want [ok]", got)
	}
}

func TestResolveCoverageNoRoutes(t *testing.T) {
	regions := []domain.Region{{ID: "r", Boundary: band(0, 1)}}

	result := ResolveCoverage(regions, nil)

	if got := result.VisitedIDs(); len(got) != 0 {
		t.Fatalf("visited = %v, want empty", got)
	}
	if len(result.Regions) != 1 || result.Regions[0].Visited {
		t.Fatalf("catalog region should be present and unvisited")
	}
}
