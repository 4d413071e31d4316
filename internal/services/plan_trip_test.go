package services

import (
	"context"
	"math"
	"testing"

	"trip-route-service/internal/adapters/regions"
	"trip-route-service/internal/adapters/routing"
	"trip-route-service/internal/domain"
)

func TestPlanTripEndToEnd(t *testing.T) {
	waypoints := []domain.Waypoint{
		{Name: "A", Coord: domain.Coordinates{Lon: 0, Lat: 0}},
		{Name: "B", Coord: domain.Coordinates{Lon: 0, Lat: 1}},
		{Name: "C", Coord: domain.Coordinates{Lon: 0, Lat: 2}},
	}
	catalog := regions.NewStaticCatalog([]domain.Region{
		{ID: "r1", Name: "South", Boundary: band(0, 1)},
		{ID: "r2", Name: "North", Boundary: band(1, 2)},
	})

	plan, err := PlanTrip(context.Background(), PlanTripRequest{
		Waypoints: waypoints,
	}, routing.NewMockRouteProvider(), catalog)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(plan.Legs) != 2 {
		t.Fatalf("got %d legs, want 2", len(plan.Legs))
	}
	if len(plan.FailedLegs) != 0 {
		t.Fatalf("unexpected failed legs: %v", plan.FailedLegs)
	}

	// Mock routes are one degree long: 111,319 m at 25 m/s.
	leg := plan.Legs[0]
	if math.Abs(leg.Route.DistanceMeters-111319) > 1 {
		t.Errorf("leg distance = %v, want ~111319", leg.Route.DistanceMeters)
	}
	if leg.Distance != "70 miles" {
		t.Errorf("leg distance string = %q, want %q", leg.Distance, "70 miles")
	}
	if leg.Duration != "1 hour 15 minutes" {
		t.Errorf("leg duration string = %q, want %q", leg.Duration, "1 hour 15 minutes")
	}

	if plan.TotalDistance != "140 miles" {
		t.Errorf("total distance = %q, want %q", plan.TotalDistance, "140 miles")
	}
	if plan.TotalDuration != "2 hours 30 minutes" {
		t.Errorf("total duration = %q, want %q", plan.TotalDuration, "2 hours 30 minutes")
	}

	visited := plan.Coverage.VisitedIDs()
	if len(visited) != 2 {
		t.Fatalf("visited = %v, want both regions", visited)
	}
}

func TestPlanTripPartialFailureStillResolvesCoverage(t *testing.T) {
	waypoints := []domain.Waypoint{
		{Name: "A", Coord: domain.Coordinates{Lon: 0, Lat: 0}},
		{Name: "B", Coord: domain.Coordinates{Lon: 0, Lat: 1}},
		{Name: "C", Coord: domain.Coordinates{Lon: 0, Lat: 2}},
	}
	catalog := regions.NewStaticCatalog([]domain.Region{
		{ID: "r1", Boundary: band(0, 1)},
		{ID: "r2", Boundary: band(1.5, 2)},
	})

	provider := routing.NewMockRouteProvider()
	provider.FailPair(waypoints[1].Coord, waypoints[2].Coord, domain.ErrNoRouteFound)

	plan, err := PlanTrip(context.Background(), PlanTripRequest{
		Waypoints: waypoints,
	}, provider, catalog)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(plan.Legs) != 1 {
		t.Fatalf("got %d legs, want 1", len(plan.Legs))
	}
	if len(plan.FailedLegs) != 1 {
		t.Fatalf("got %d failed legs, want 1", len(plan.FailedLegs))
	}

	// Coverage runs over the surviving geometry only.
	if got := plan.Coverage.VisitedIDs(); len(got) != 1 || got[0] != "r1" {
		t.Fatalf("visited = %v, want [r1]", got)
	}
}

func TestPlanTripRejectsMalformedCoordinates(t *testing.T) {
	waypoints := []domain.Waypoint{
		{Name: "A", Coord: domain.Coordinates{Lon: 0, Lat: 0}},
		{Name: "bad", Coord: domain.Coordinates{Lon: 190, Lat: 0}},
	}

	_, err := PlanTrip(context.Background(), PlanTripRequest{
		Waypoints: waypoints,
	}, routing.NewMockRouteProvider(), nil)
	if err == nil {
		t.Fatal("expected error for out-of-range longitude")
	}
	if !domain.IsInputError(err) {
		t.Fatalf("error = %v, want InputError", err)
	}
}

func TestPlanTripSingleWaypointIsEmptyPlan(t *testing.T) {
	plan, err := PlanTrip(context.Background(), PlanTripRequest{
		Waypoints: []domain.Waypoint{{Name: "only", Coord: domain.Coordinates{Lon: 1, Lat: 1}}},
	}, routing.NewMockRouteProvider(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(plan.Legs) != 0 || len(plan.FailedLegs) != 0 {
		t.Fatalf("single waypoint: got %d legs, %d failures; want none", len(plan.Legs), len(plan.FailedLegs))
	}
	if plan.TotalDuration != "0 minutes" {
		t.Errorf("total duration = %q, want %q", plan.TotalDuration, "0 minutes")
	}
	if plan.TotalDistance != "0 miles" {
		t.Errorf("total distance = %q, want %q", plan.TotalDistance, "0 miles")
	}
}
