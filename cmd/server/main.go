package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"trip-route-service/internal/adapters/cache"
	"trip-route-service/internal/adapters/regions"
	"trip-route-service/internal/adapters/routing"
	"trip-route-service/internal/api"
	"trip-route-service/internal/config"
	"trip-route-service/internal/platform/db"
	"trip-route-service/internal/ports"
)

// main is the application composition root.
// It wires concrete adapters (OSRM/Google, Postgres route cache,
// GeoJSON region catalog) behind ports and starts the HTTP server.
func main() {
	cfg := config.Load()

	provider, err := buildProvider(cfg)
	if err != nil {
		log.Fatal(err)
	}

	// Optional persistent route cache, layered over the provider.
	if cfg.DatabaseURL != "" {
		database, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			log.Fatal(err)
		}
		defer database.Close()

		if err := cache.InitSchema(context.Background(), database); err != nil {
			log.Fatal(err)
		}

		provider = cache.NewCachedRouteProvider(provider, cache.NewSQLRouteCache(database))
		log.Println("route cache enabled")
	}

	var catalog ports.RegionCatalog
	if cfg.RegionsPath != "" {
		catalog = regions.NewGeoJSONCatalog(cfg.RegionsPath)
	} else {
		log.Println("REGIONS_PATH not set; coverage resolution disabled")
	}

	router := api.NewRouter(provider, catalog, api.PlanOptions{
		Concurrency:  cfg.Concurrency,
		RouteTimeout: cfg.RouteTimeout,
		Rounding:     cfg.Rounding,
	})

	// Timeouts are tuned for multi-leg trips against a cold provider
	// (one external call per leg).
	log.Printf("Server listening addr=:%s provider=%s", cfg.Port, cfg.Provider)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func buildProvider(cfg config.Config) (ports.RouteProvider, error) {
	switch cfg.Provider {
	case "osrm", "":
		return routing.NewOSRMRouteProvider(cfg.OSRMBaseURL), nil
	case "google":
		provider, err := routing.NewGoogleRouteProvider(cfg.GoogleAPIKey)
		if err != nil {
			return nil, fmt.Errorf("build provider: %w", err)
		}
		return provider, nil
	default:
		return nil, fmt.Errorf("build provider: unknown ROUTE_PROVIDER %q", cfg.Provider)
	}
}
