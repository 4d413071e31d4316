package routing

import (
	"context"
	"fmt"
	"math"

	"github.com/paulmach/orb"

	"trip-route-service/internal/domain"
	"trip-route-service/internal/ports"
)

// Rough planar meters per degree at mid latitudes, good enough for
// deterministic test distances.
const mockMetersPerDegree = 111_319.0

// MockRouteProvider returns a straight-line route for any pair, with a
// synthetic distance and duration derived from the coordinate delta.
// Individual pairs can be forced to fail for partial-failure tests.
type MockRouteProvider struct {
	// SpeedMPS converts mock distance into duration; defaults to 25 m/s.
	SpeedMPS float64

	fail map[string]error
}

func NewMockRouteProvider() *MockRouteProvider {
	return &MockRouteProvider{fail: make(map[string]error)}
}

// FailPair makes GetRoute return err for one origin->destination pair.
func (p *MockRouteProvider) FailPair(origin, destination domain.Coordinates, err error) {
	p.fail[pairKey(origin, destination)] = err
}

func (p *MockRouteProvider) GetRoute(
	ctx context.Context,
	origin, destination domain.Coordinates,
) (ports.RouteResult, error) {
	if err, ok := p.fail[pairKey(origin, destination)]; ok {
		return ports.RouteResult{}, err
	}

	dLon := destination.Lon - origin.Lon
	dLat := destination.Lat - origin.Lat
	meters := mockMetersPerDegree * math.Hypot(dLon, dLat)

	speed := p.SpeedMPS
	if speed <= 0 {
		speed = 25
	}

	return ports.RouteResult{
		Geometry: orb.LineString{
			{origin.Lon, origin.Lat},
			{destination.Lon, destination.Lat},
		},
		DistanceMeters:  meters,
		DurationSeconds: meters / speed,
	}, nil
}

func pairKey(o, d domain.Coordinates) string {
	return fmt.Sprintf("%v,%v|%v,%v", o.Lon, o.Lat, d.Lon, d.Lat)
}
