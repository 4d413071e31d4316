package services

import (
	"context"
	"fmt"
	"time"

	"trip-route-service/internal/domain"
	"trip-route-service/internal/lib/format"
	"trip-route-service/internal/platform/obs"
	"trip-route-service/internal/ports"
)

// Leg is one routed segment with its display strings attached.
type Leg struct {
	Route    domain.Route
	Distance string
	Duration string
}

// TripPlan is the pipeline's complete output: the itinerary, the
// routed legs in trip order, the segments that could not be routed,
// and the region coverage computed over the successful geometries.
// Totals cover successful legs only.
type TripPlan struct {
	Waypoints  []domain.Waypoint
	Legs       []Leg
	FailedLegs []domain.SegmentFailure
	Coverage   CoverageResult

	TotalDistanceMeters  float64
	TotalDurationSeconds float64
	TotalDistance        string
	TotalDuration        string
}

type PlanTripRequest struct {
	Waypoints []domain.Waypoint

	// Concurrency bounds simultaneous provider calls; zero means the
	// service default.
	Concurrency int

	// RouteTimeout bounds each individual provider call; zero means no
	// per-request timeout beyond the surrounding context.
	RouteTimeout time.Duration

	Rounding format.Rounding
}

// PlanTrip runs the full pipeline: validate the itinerary, derive
// segments, fetch routes concurrently, attach formatted measurements,
// and resolve region coverage.
//
// Waypoint validation failures are fatal (InputError). Per-segment
// routing failures and per-region evaluation failures are accumulated
// in the plan, never aborting the run; the caller decides whether
// partial results are acceptable. A catalog of nil skips coverage.
func PlanTrip(
	ctx context.Context,
	req PlanTripRequest,
	provider ports.RouteProvider,
	catalog ports.RegionCatalog,
) (_ *TripPlan, err error) {
	defer obs.Time(ctx, "services.PlanTrip")(&err)

	for i, wp := range req.Waypoints {
		if err := wp.Coord.Validate(); err != nil {
			return nil, fmt.Errorf("plan trip: waypoint %d %q: %w", i, wp.Name, err)
		}
	}

	segments := DeriveSegments(req.Waypoints)

	routes, failures, err := FetchRoutes(ctx, segments, provider, req.Concurrency, req.RouteTimeout)
	if err != nil {
		return nil, fmt.Errorf("plan trip: %w", err)
	}

	f := format.NewFormatter(req.Rounding)

	plan := &TripPlan{
		Waypoints:  req.Waypoints,
		Legs:       make([]Leg, 0, len(routes)),
		FailedLegs: failures,
	}

	for _, route := range routes {
		plan.Legs = append(plan.Legs, Leg{
			Route:    route,
			Distance: f.Distance(route.DistanceMeters),
			Duration: f.Duration(route.DurationSeconds),
		})
		plan.TotalDistanceMeters += route.DistanceMeters
		plan.TotalDurationSeconds += route.DurationSeconds
	}
	plan.TotalDistance = f.Distance(plan.TotalDistanceMeters)
	plan.TotalDuration = f.Duration(plan.TotalDurationSeconds)

	if catalog != nil {
		regions, err := catalog.Regions(ctx)
		if err != nil {
			return nil, fmt.Errorf("plan trip: load regions: %w", err)
		}
		plan.Coverage = ResolveCoverage(regions, routes)
	}

	return plan, nil
}
