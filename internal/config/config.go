package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"trip-route-service/internal/lib/format"
)

// Config holds everything the composition roots wire from the
// environment. Display granularities live here, not as literals in the
// formatter, because they are observable output choices.
type Config struct {
	Port string

	// Provider selects the routing backend: "osrm" (default) or "google".
	Provider     string
	OSRMBaseURL  string
	GoogleAPIKey string

	// DatabaseURL enables the persistent route cache when non-empty.
	DatabaseURL string

	// RegionsPath points at the GeoJSON region catalog; empty skips
	// coverage resolution.
	RegionsPath string

	Concurrency  int
	RouteTimeout time.Duration

	Rounding format.Rounding
}

// Load reads .env (when present) and assembles the config with
// defaults for anything unset.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	return Config{
		Port:         getEnv("PORT", "8080"),
		Provider:     getEnv("ROUTE_PROVIDER", "osrm"),
		OSRMBaseURL:  getEnv("OSRM_BASE_URL", ""),
		GoogleAPIKey: os.Getenv("GOOGLE_MAPS_API_KEY"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		RegionsPath:  os.Getenv("REGIONS_PATH"),
		Concurrency:  getEnvInt("ROUTE_CONCURRENCY", 4),
		RouteTimeout: time.Duration(getEnvInt("ROUTE_TIMEOUT_SECONDS", 60)) * time.Second,
		Rounding: format.Rounding{
			DistanceGranularityMiles: getEnvFloat("ROUND_DISTANCE_MILES", 10),
			DurationIncrement:        time.Duration(getEnvInt("ROUND_DURATION_MINUTES", 15)) * time.Minute,
		},
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("config: %s=%q is not an integer, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func getEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("config: %s=%q is not a number, using %v", key, v, fallback)
		return fallback
	}
	return f
}
