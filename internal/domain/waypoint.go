package domain

// Represents a single named stop in a trip itinerary.
// Ordering is significant: the waypoint sequence defines the travel
// order. Names and positions need not be unique (a trip may revisit a
// place). Waypoints are immutable once loaded.
type Waypoint struct {
	Name  string
	Coord Coordinates
}
