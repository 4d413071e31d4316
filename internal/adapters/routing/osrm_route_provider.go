package routing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"trip-route-service/internal/domain"
	"trip-route-service/internal/lib/geo"
	"trip-route-service/internal/platform/obs"
	"trip-route-service/internal/ports"
)

const defaultOSRMBaseURL = "https://router.project-osrm.org"

// OSRMRouteProvider implements RouteProvider against an OSRM HTTP
// instance (public router or self-hosted).
//
// It returns the provider's values untouched: geometry decoded from
// the encoded polyline, distance in meters, duration in seconds.
// Transient failures are retried with backoff; an unroutable pair is
// reported as domain.ErrNoRouteFound and never retried. The provider
// is safe for concurrent use and does not cache across runs.
type OSRMRouteProvider struct {
	session *http.Client
	baseURL string
	profile string
}

func NewOSRMRouteProvider(baseURL string) *OSRMRouteProvider {
	if baseURL == "" {
		baseURL = defaultOSRMBaseURL
	}

	return &OSRMRouteProvider{
		session: &http.Client{Timeout: 30 * time.Second},
		baseURL: baseURL,
		profile: "driving",
	}
}

type osrmResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Routes  []struct {
		Geometry string  `json:"geometry"`
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
	} `json:"routes"`
}

// GetRoute requests a driving route for one origin->destination pair.
func (o *OSRMRouteProvider) GetRoute(
	ctx context.Context,
	origin, destination domain.Coordinates,
) (_ ports.RouteResult, err error) {
	defer obs.Time(ctx, "osrm.GetRoute")(&err)

	if err := origin.Validate(); err != nil {
		return ports.RouteResult{}, fmt.Errorf("get route: origin: %w", err)
	}
	if err := destination.Validate(); err != nil {
		return ports.RouteResult{}, fmt.Errorf("get route: destination: %w", err)
	}

	endpoint := fmt.Sprintf(
		"%s/route/v1/%s/%f,%f;%f,%f?overview=full&geometries=polyline",
		o.baseURL, o.profile,
		origin.Lon, origin.Lat,
		destination.Lon, destination.Lat,
	)

	resp, err := o.doWithRetry(ctx, func() (*http.Request, error) {
		return o.newRequest(ctx, http.MethodGet, endpoint)
	})
	if err != nil {
		// OSRM reports NoRoute as a 400 with the code in the body.
		if noRoute, msg := isNoRouteStatus(err); noRoute {
			return ports.RouteResult{}, fmt.Errorf("%w: %s", domain.ErrNoRouteFound, msg)
		}
		return ports.RouteResult{}, fmt.Errorf("%w: %v", domain.ErrRoutingUnavailable, err)
	}
	defer resp.Body.Close()

	var decoded osrmResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return ports.RouteResult{}, fmt.Errorf("%w: decode response: %v", domain.ErrRoutingUnavailable, err)
	}

	switch decoded.Code {
	case "Ok":
	case "NoRoute", "NoSegment":
		return ports.RouteResult{}, fmt.Errorf("%w: %s", domain.ErrNoRouteFound, decoded.Message)
	default:
		return ports.RouteResult{}, fmt.Errorf("%w: unexpected code %q: %s", domain.ErrRoutingUnavailable, decoded.Code, decoded.Message)
	}

	if len(decoded.Routes) == 0 {
		return ports.RouteResult{}, fmt.Errorf("%w: response contains no routes", domain.ErrNoRouteFound)
	}

	route := decoded.Routes[0]
	line, err := geo.DecodePolyline(route.Geometry)
	if err != nil {
		return ports.RouteResult{}, fmt.Errorf("%w: %v", domain.ErrRoutingUnavailable, err)
	}

	return ports.RouteResult{
		Geometry:        line,
		DistanceMeters:  route.Distance,
		DurationSeconds: route.Duration,
	}, nil
}

// isNoRouteStatus inspects a failed HTTP exchange for OSRM's NoRoute
// body shape.
func isNoRouteStatus(err error) (bool, string) {
	var he *httpStatusError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		return false, ""
	}

	var decoded osrmResponse
	if jsonErr := json.Unmarshal([]byte(he.Body), &decoded); jsonErr != nil {
		return false, ""
	}
	if decoded.Code == "NoRoute" || decoded.Code == "NoSegment" {
		return true, decoded.Message
	}
	return false, ""
}
