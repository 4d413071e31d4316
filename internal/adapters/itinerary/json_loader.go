// Package itinerary loads waypoint lists from structured input. The
// shape contract is {name, lon, lat} ordered by visit sequence;
// resolving raw addresses to coordinates belongs to an external
// geocoder, not here.
package itinerary

import (
	"encoding/json"
	"fmt"
	"os"

	"trip-route-service/internal/domain"
)

type waypointRecord struct {
	Name string  `json:"name"`
	Lon  float64 `json:"lon"`
	Lat  float64 `json:"lat"`
}

// LoadWaypoints reads an ordered JSON waypoint array from path. Every
// coordinate is validated on load; a malformed entry fails the whole
// load (InputError) since a trip with a broken stop cannot be planned.
func LoadWaypoints(path string) ([]domain.Waypoint, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load waypoints: read %q: %w", path, err)
	}

	var records []waypointRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("load waypoints: parse %q: %w", path, err)
	}

	waypoints := make([]domain.Waypoint, 0, len(records))
	for i, rec := range records {
		wp := domain.Waypoint{
			Name:  rec.Name,
			Coord: domain.Coordinates{Lon: rec.Lon, Lat: rec.Lat},
		}
		if err := wp.Coord.Validate(); err != nil {
			return nil, fmt.Errorf("load waypoints: entry %d %q: %w", i, rec.Name, err)
		}
		waypoints = append(waypoints, wp)
	}

	return waypoints, nil
}
