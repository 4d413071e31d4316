// tripmap plans a trip once and prints the result: routed legs with
// display measurements, failed legs, and the regions the trip passes
// through. Optionally writes a KML handoff file for map rendering.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"trip-route-service/internal/adapters/export"
	"trip-route-service/internal/adapters/itinerary"
	"trip-route-service/internal/adapters/regions"
	"trip-route-service/internal/adapters/routing"
	"trip-route-service/internal/config"
	"trip-route-service/internal/ports"
	"trip-route-service/internal/services"
)

var (
	waypointsPath string
	regionsPath   string
	providerName  string
	osrmBaseURL   string
	concurrency   int
	kmlPath       string
)

var rootCmd = &cobra.Command{
	Use:   "tripmap",
	Short: "Plan a multi-stop trip and report routes and region coverage",
	RunE:  run,

	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().StringVarP(&waypointsPath, "waypoints", "w", "", "JSON waypoint list, ordered by visit sequence")
	rootCmd.Flags().StringVarP(&regionsPath, "regions", "r", "", "GeoJSON region catalog (optional)")
	rootCmd.Flags().StringVarP(&providerName, "provider", "p", "", "routing provider: osrm or google (default from env)")
	rootCmd.Flags().StringVar(&osrmBaseURL, "osrm-url", "", "OSRM base URL override")
	rootCmd.Flags().IntVarP(&concurrency, "concurrency", "c", 0, "max concurrent route requests")
	rootCmd.Flags().StringVar(&kmlPath, "kml", "", "write a KML file for the trip")
	_ = rootCmd.MarkFlagRequired("waypoints")
}

func run(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	if providerName != "" {
		cfg.Provider = providerName
	}
	if osrmBaseURL != "" {
		cfg.OSRMBaseURL = osrmBaseURL
	}
	if concurrency > 0 {
		cfg.Concurrency = concurrency
	}
	if regionsPath != "" {
		cfg.RegionsPath = regionsPath
	}

	provider, err := buildProvider(cfg)
	if err != nil {
		return err
	}

	waypoints, err := itinerary.LoadWaypoints(waypointsPath)
	if err != nil {
		return err
	}

	var catalog ports.RegionCatalog
	if cfg.RegionsPath != "" {
		catalog = regions.NewGeoJSONCatalog(cfg.RegionsPath)
	}

	plan, err := services.PlanTrip(cmd.Context(), services.PlanTripRequest{
		Waypoints:    waypoints,
		Concurrency:  cfg.Concurrency,
		RouteTimeout: cfg.RouteTimeout,
		Rounding:     cfg.Rounding,
	}, provider, catalog)
	if err != nil {
		return err
	}

	printPlan(cmd, plan)

	if kmlPath != "" {
		f, err := os.Create(kmlPath)
		if err != nil {
			return fmt.Errorf("create %q: %w", kmlPath, err)
		}
		defer f.Close()

		if err := export.WriteKML(f, plan); err != nil {
			return err
		}
		cmd.Printf("Wrote %s\n", kmlPath)
	}

	return nil
}

func printPlan(cmd *cobra.Command, plan *services.TripPlan) {
	cmd.Printf("Trip: %d stops, %d legs\n", len(plan.Waypoints), len(plan.Legs))

	for _, leg := range plan.Legs {
		cmd.Printf(
			"  %s -> %s: %s, %s\n",
			leg.Route.Segment.Origin.Name, leg.Route.Segment.Destination.Name,
			leg.Distance, leg.Duration,
		)
	}

	if len(plan.FailedLegs) > 0 {
		cmd.Printf("Failed legs:\n")
		for _, f := range plan.FailedLegs {
			cmd.Printf("  %v\n", f)
		}
	}

	if len(plan.Coverage.Regions) > 0 {
		cmd.Printf("Regions visited:\n")
		for _, rc := range plan.Coverage.Regions {
			if !rc.Visited {
				continue
			}
			name := rc.Region.Name
			if name == "" {
				name = rc.Region.ID
			}
			cmd.Printf("  %s\n", name)
		}
		for _, f := range plan.Coverage.Failed {
			cmd.Printf("Region not evaluated: %v\n", f)
		}
	}

	cmd.Printf("Total: %s, %s\n", plan.TotalDistance, plan.TotalDuration)
}

func buildProvider(cfg config.Config) (ports.RouteProvider, error) {
	switch cfg.Provider {
	case "osrm", "":
		return routing.NewOSRMRouteProvider(cfg.OSRMBaseURL), nil
	case "google":
		return routing.NewGoogleRouteProvider(cfg.GoogleAPIKey)
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
