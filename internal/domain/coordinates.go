package domain

import (
	"fmt"
	"math"
)

// Immutable geographic coordinates (longitude, latitude), WGS84.
type Coordinates struct {
	Lon float64
	Lat float64
}

// Return coordinates as [lon, lat] for external API compatibility.
func (c Coordinates) CoordsToList() []float64 { return []float64{c.Lon, c.Lat} }

// Validate reports whether the coordinates are finite and inside the
// WGS84 longitude/latitude ranges.
func (c Coordinates) Validate() error {
	if math.IsNaN(c.Lon) || math.IsInf(c.Lon, 0) || math.IsNaN(c.Lat) || math.IsInf(c.Lat, 0) {
		return &InputError{Msg: fmt.Sprintf("coordinates must be finite, got lon=%v lat=%v", c.Lon, c.Lat)}
	}
	if c.Lat < -90 || c.Lat > 90 {
		return &InputError{Msg: fmt.Sprintf("latitude %v out of range [-90, 90]", c.Lat)}
	}
	if c.Lon < -180 || c.Lon > 180 {
		return &InputError{Msg: fmt.Sprintf("longitude %v out of range [-180, 180]", c.Lon)}
	}
	return nil
}
