package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"time"

	"trip-route-service/internal/api/dto"
	"trip-route-service/internal/domain"
	"trip-route-service/internal/lib/format"
	"trip-route-service/internal/ports"
	"trip-route-service/internal/services"
)

type TripHandler struct {
	Provider ports.RouteProvider
	Catalog  ports.RegionCatalog

	Concurrency  int
	RouteTimeout time.Duration
	Rounding     format.Rounding
}

// Plan runs the trip pipeline for a posted waypoint list and returns
// routed legs, reported failures, and region coverage. Partial results
// are a 200: the caller decides whether a trip with failed legs is
// acceptable.
func (h *TripHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.TripRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	waypoints := make([]domain.Waypoint, 0, len(req.Waypoints))
	for _, wp := range req.Waypoints {
		waypoints = append(waypoints, domain.Waypoint{
			Name:  wp.Name,
			Coord: domain.Coordinates{Lon: wp.Lon, Lat: wp.Lat},
		})
	}

	plan, err := services.PlanTrip(r.Context(), services.PlanTripRequest{
		Waypoints:    waypoints,
		Concurrency:  h.Concurrency,
		RouteTimeout: h.RouteTimeout,
		Rounding:     h.Rounding,
	}, h.Provider, h.Catalog)
	if err != nil {
		if domain.IsInputError(err) {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("plan trip failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, toTripResponse(req.Waypoints, plan))
}

func toTripResponse(waypoints []dto.WaypointInput, plan *services.TripPlan) dto.TripResponse {
	res := dto.TripResponse{
		Waypoints:            waypoints,
		Legs:                 make([]dto.LegResponse, 0, len(plan.Legs)),
		FailedLegs:           make([]dto.FailedLegResponse, 0, len(plan.FailedLegs)),
		Regions:              make([]dto.RegionResponse, 0, len(plan.Coverage.Regions)),
		FailedRegions:        make([]dto.RegionFailureResponse, 0, len(plan.Coverage.Failed)),
		TotalDistanceMeters:  plan.TotalDistanceMeters,
		TotalDurationSeconds: plan.TotalDurationSeconds,
		TotalDistance:        plan.TotalDistance,
		TotalDuration:        plan.TotalDuration,
	}

	for _, leg := range plan.Legs {
		geometry := make([][]float64, len(leg.Route.Geometry))
		for i, pt := range leg.Route.Geometry {
			geometry[i] = []float64{pt[0], pt[1]}
		}
		res.Legs = append(res.Legs, dto.LegResponse{
			Origin:          leg.Route.Segment.Origin.Name,
			Destination:     leg.Route.Segment.Destination.Name,
			DistanceMeters:  leg.Route.DistanceMeters,
			DurationSeconds: leg.Route.DurationSeconds,
			Distance:        leg.Distance,
			Duration:        leg.Duration,
			Geometry:        geometry,
		})
	}

	for _, f := range plan.FailedLegs {
		res.FailedLegs = append(res.FailedLegs, dto.FailedLegResponse{
			SegmentIndex: f.Segment.Index,
			Origin:       f.Segment.Origin.Name,
			Destination:  f.Segment.Destination.Name,
			Reason:       f.Err.Error(),
		})
	}

	for _, rc := range plan.Coverage.Regions {
		res.Regions = append(res.Regions, dto.RegionResponse{
			ID:      rc.Region.ID,
			Name:    rc.Region.Name,
			Visited: rc.Visited,
		})
	}

	for _, f := range plan.Coverage.Failed {
		res.FailedRegions = append(res.FailedRegions, dto.RegionFailureResponse{
			ID:     f.RegionID,
			Reason: f.Err.Error(),
		})
	}

	return res
}
