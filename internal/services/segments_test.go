package services

import (
	"fmt"
	"testing"

	"trip-route-service/internal/domain"
)

func makeWaypoints(n int) []domain.Waypoint {
	wps := make([]domain.Waypoint, 0, n)
	for i := 0; i < n; i++ {
		wps = append(wps, domain.Waypoint{
			Name:  fmt.Sprintf("stop-%d", i),
			Coord: domain.Coordinates{Lon: float64(i), Lat: float64(i) / 2},
		})
	}
	return wps
}

func TestDeriveSegmentsCount(t *testing.T) {
	for n := 0; n <= 6; n++ {
		segments := DeriveSegments(makeWaypoints(n))

		want := n - 1
		if want < 0 {
			want = 0
		}
		if len(segments) != want {
			t.Errorf("n=%d: got %d segments, want %d", n, len(segments), want)
		}
	}
}

func TestDeriveSegmentsAdjacency(t *testing.T) {
	waypoints := makeWaypoints(5)
	segments := DeriveSegments(waypoints)

	for k, seg := range segments {
		if seg.Index != k {
			t.Errorf("segment %d: index = %d, want %d", k, seg.Index, k)
		}
		if seg.Origin != waypoints[k] {
			t.Errorf("segment %d: origin = %v, want waypoint %d", k, seg.Origin, k)
		}
		if seg.Destination != waypoints[k+1] {
			t.Errorf("segment %d: destination = %v, want waypoint %d", k, seg.Destination, k+1)
		}
	}
}

func TestDeriveSegmentsEmptyTrip(t *testing.T) {
	if got := DeriveSegments(nil); len(got) != 0 {
		t.Fatalf("nil waypoints: got %d segments, want 0", len(got))
	}
	if got := DeriveSegments(makeWaypoints(1)); len(got) != 0 {
		t.Fatalf("single waypoint: got %d segments, want 0", len(got))
	}
}

func TestDeriveSegmentsAllowsRevisits(t *testing.T) {
	wp := domain.Waypoint{Name: "same", Coord: domain.Coordinates{Lon: 1, Lat: 1}}
	segments := DeriveSegments([]domain.Waypoint{wp, wp})

	if len(segments) != 1 {
		t.Fatalf("got %d segments, want 1", len(segments))
	}
	if segments[0].Origin != segments[0].Destination {
		t.Fatalf("degenerate segment should connect identical waypoints")
	}
}
