package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/destel/rill"

	"trip-route-service/internal/domain"
	"trip-route-service/internal/ports"
)

const defaultRouteConcurrency = 4

// routeOutcome tags one segment's fetch as success or failure. Errors
// travel in the value, not the stream, so one segment's failure never
// tears down the others.
type routeOutcome struct {
	segment domain.Segment
	result  ports.RouteResult
	err     error
}

// FetchRoutes requests a route for every segment, issuing provider
// calls concurrently up to the given limit while restoring results to
// segment order before returning. Downstream consumers (coverage,
// rendering) depend on route order matching the trip's chronological
// order.
//
// Failed segments are collected and returned alongside the successful
// routes; the only hard error is cancellation of the surrounding
// context.
func FetchRoutes(
	ctx context.Context,
	segments []domain.Segment,
	provider ports.RouteProvider,
	concurrency int,
	perRequestTimeout time.Duration,
) ([]domain.Route, []domain.SegmentFailure, error) {
	if len(segments) == 0 {
		return []domain.Route{}, nil, nil
	}
	if concurrency <= 0 {
		concurrency = defaultRouteConcurrency
	}

	in := rill.FromSlice(segments, nil)

	outcomes := rill.OrderedMap(in, concurrency, func(seg domain.Segment) (routeOutcome, error) {
		result, err := fetchOne(ctx, provider, seg, perRequestTimeout)
		if err != nil {
			return routeOutcome{segment: seg, err: err}, nil
		}
		return routeOutcome{segment: seg, result: result}, nil
	})

	routes := make([]domain.Route, 0, len(segments))
	var failures []domain.SegmentFailure

	err := rill.ForEach(outcomes, 1, func(o routeOutcome) error {
		if o.err != nil {
			failures = append(failures, domain.SegmentFailure{Segment: o.segment, Err: o.err})
			return nil
		}
		routes = append(routes, domain.Route{
			Segment:         o.segment,
			Geometry:        o.result.Geometry,
			DistanceMeters:  o.result.DistanceMeters,
			DurationSeconds: o.result.DurationSeconds,
		})
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("fetch routes: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, nil, fmt.Errorf("fetch routes: %w", err)
	}

	return routes, failures, nil
}

// fetchOne runs a single provider call under the per-request timeout.
// A timeout is indistinguishable from provider unavailability to the
// caller, so it is classified the same way.
func fetchOne(
	ctx context.Context,
	provider ports.RouteProvider,
	seg domain.Segment,
	timeout time.Duration,
) (ports.RouteResult, error) {
	callCtx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	result, err := provider.GetRoute(callCtx, seg.Origin.Coord, seg.Destination.Coord)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, domain.ErrRoutingUnavailable) {
			err = fmt.Errorf("%w: %v", domain.ErrRoutingUnavailable, err)
		}
		return ports.RouteResult{}, err
	}
	return result, nil
}
