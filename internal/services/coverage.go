package services

import (
	"fmt"

	"trip-route-service/internal/domain"
	"trip-route-service/internal/lib/geo"
)

// CoverageHit records one positive (region, route) intersection test,
// kept for diagnostics (auditing why a region was flagged). Membership
// in the coverage set is keyed by region ID, so a region crossed by
// several segments still counts once.
type CoverageHit struct {
	RegionID     string
	SegmentIndex int
}

// RegionCoverage is one catalog region with its visited flag. Consumed
// by presentation as a boolean per region.
type RegionCoverage struct {
	Region  domain.Region
	Visited bool
}

// CoverageResult is the deduplicated coverage of a trip: every catalog
// region exactly once (in catalog order) with its flag, the raw hit
// pairs behind the flags, and the regions whose boundaries could not
// be evaluated.
type CoverageResult struct {
	Regions []RegionCoverage
	Hits    []CoverageHit
	Failed  []domain.RegionFailure
}

// VisitedIDs returns the IDs of visited regions in catalog order.
func (c CoverageResult) VisitedIDs() []string {
	ids := make([]string, 0, len(c.Regions))
	for _, rc := range c.Regions {
		if rc.Visited {
			ids = append(ids, rc.Region.ID)
		}
	}
	return ids
}

// ResolveCoverage computes which regions the trip passes through: a
// region is visited when its boundary has a non-empty intersection
// with at least one route geometry.
//
// A region entered and re-entered, or straddled by two segments,
// produces multiple hits but a single membership entry. An invalid
// boundary fails that region's evaluation only; the resolver continues
// with the rest and reports the failure.
func ResolveCoverage(regions []domain.Region, routes []domain.Route) CoverageResult {
	visited := make(map[string]bool, len(regions))
	var hits []CoverageHit
	var failed []domain.RegionFailure

	for _, region := range regions {
		if err := geo.ValidateBoundary(region.Boundary); err != nil {
			failed = append(failed, domain.RegionFailure{
				RegionID: region.ID,
				Err:      fmt.Errorf("invalid boundary: %w", err),
			})
			continue
		}

		for _, route := range routes {
			if !geo.LineIntersectsBoundary(route.Geometry, region.Boundary) {
				continue
			}
			visited[region.ID] = true
			hits = append(hits, CoverageHit{
				RegionID:     region.ID,
				SegmentIndex: route.Segment.Index,
			})
		}
	}

	out := make([]RegionCoverage, 0, len(regions))
	for _, region := range regions {
		out = append(out, RegionCoverage{
			Region:  region,
			Visited: visited[region.ID],
		})
	}

	return CoverageResult{Regions: out, Hits: hits, Failed: failed}
}
