package domain

import "github.com/paulmach/orb"

// An adjacent origin->destination pair derived from the waypoint
// sequence. Index is the segment's position in the derived sequence,
// which equals the origin waypoint's index in the itinerary.
type Segment struct {
	Index       int
	Origin      Waypoint
	Destination Waypoint
}

// Represents the realized path for one Segment as returned by a
// routing provider.
//
// A Route is immutable planning data: geometry ownership belongs
// solely to the Route, and distance/duration are the provider's raw
// values (meters, seconds) with no unit conversion applied. A
// zero-length route (origin == destination) is a valid degenerate
// case.
type Route struct {
	Segment         Segment
	Geometry        orb.LineString
	DistanceMeters  float64
	DurationSeconds float64
}
