package api

import (
	"net/http"
	"time"

	"trip-route-service/internal/api/handlers"
	"trip-route-service/internal/lib/format"
	"trip-route-service/internal/ports"
)

// PlanOptions carries the pipeline tuning the trips handler threads
// through to the service layer.
type PlanOptions struct {
	Concurrency  int
	RouteTimeout time.Duration
	Rounding     format.Rounding
}

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root (handlers stay
// unaware of concrete adapters).
func NewRouter(provider ports.RouteProvider, catalog ports.RegionCatalog, opts PlanOptions) http.Handler {
	mux := http.NewServeMux()

	tripHandler := &handlers.TripHandler{
		Provider:     provider,
		Catalog:      catalog,
		Concurrency:  opts.Concurrency,
		RouteTimeout: opts.RouteTimeout,
		Rounding:     opts.Rounding,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/trips", tripHandler.Plan)

	return loggingMiddleware(mux)
}
