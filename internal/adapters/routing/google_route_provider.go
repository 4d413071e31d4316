package routing

import (
	"context"
	"errors"
	"fmt"

	"googlemaps.github.io/maps"

	"trip-route-service/internal/domain"
	"trip-route-service/internal/lib/geo"
	"trip-route-service/internal/platform/obs"
	"trip-route-service/internal/ports"
)

// GoogleRouteProvider implements RouteProvider on the Google Directions
// API via the official client. The client handles its own rate
// limiting; failure classification mirrors the OSRM adapter so callers
// never see provider-specific error shapes.
type GoogleRouteProvider struct {
	client *maps.Client
}

func NewGoogleRouteProvider(apiKey string) (*GoogleRouteProvider, error) {
	if apiKey == "" {
		return nil, errors.New("google maps api key is empty")
	}

	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("new google maps client: %w", err)
	}

	return &GoogleRouteProvider{client: client}, nil
}

// GetRoute requests a driving route for one origin->destination pair.
func (g *GoogleRouteProvider) GetRoute(
	ctx context.Context,
	origin, destination domain.Coordinates,
) (_ ports.RouteResult, err error) {
	defer obs.Time(ctx, "google.GetRoute")(&err)

	if err := origin.Validate(); err != nil {
		return ports.RouteResult{}, fmt.Errorf("get route: origin: %w", err)
	}
	if err := destination.Validate(); err != nil {
		return ports.RouteResult{}, fmt.Errorf("get route: destination: %w", err)
	}

	req := &maps.DirectionsRequest{
		Origin:      fmt.Sprintf("%f,%f", origin.Lat, origin.Lon),
		Destination: fmt.Sprintf("%f,%f", destination.Lat, destination.Lon),
		Mode:        maps.TravelModeDriving,
	}

	routes, _, err := g.client.Directions(ctx, req)
	if err != nil {
		return ports.RouteResult{}, fmt.Errorf("%w: %v", domain.ErrRoutingUnavailable, err)
	}
	if len(routes) == 0 {
		return ports.RouteResult{}, fmt.Errorf("%w: directions returned no routes", domain.ErrNoRouteFound)
	}

	route := routes[0]

	line, err := geo.DecodePolyline(route.OverviewPolyline.Points)
	if err != nil {
		return ports.RouteResult{}, fmt.Errorf("%w: %v", domain.ErrRoutingUnavailable, err)
	}

	var distanceMeters, durationSeconds float64
	for _, leg := range route.Legs {
		distanceMeters += float64(leg.Distance.Meters)
		durationSeconds += leg.Duration.Seconds()
	}

	return ports.RouteResult{
		Geometry:        line,
		DistanceMeters:  distanceMeters,
		DurationSeconds: durationSeconds,
	}, nil
}
