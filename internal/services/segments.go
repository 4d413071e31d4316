package services

import "trip-route-service/internal/domain"

// DeriveSegments converts an ordered waypoint sequence into the
// adjacent origin->destination pairs to route between.
//
// A sequence of n waypoints yields exactly n-1 segments in itinerary
// order; segment k connects waypoint k to waypoint k+1 and never skips
// a stop. Fewer than two waypoints is an empty trip, not an error.
// Pure function, no side effects.
func DeriveSegments(waypoints []domain.Waypoint) []domain.Segment {
	if len(waypoints) < 2 {
		return []domain.Segment{}
	}

	segments := make([]domain.Segment, 0, len(waypoints)-1)
	for i := 0; i+1 < len(waypoints); i++ {
		segments = append(segments, domain.Segment{
			Index:       i,
			Origin:      waypoints[i],
			Destination: waypoints[i+1],
		})
	}
	return segments
}
