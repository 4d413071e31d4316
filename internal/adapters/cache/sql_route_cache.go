package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/twpayne/go-polyline"

	"trip-route-service/internal/domain"
	"trip-route-service/internal/lib/geo"
	"trip-route-service/internal/platform/obs"
	"trip-route-service/internal/ports"
)

// SQLRouteCache is a SQL-backed cache of provider route results, keyed
// by the exact origin/destination coordinate pair. Geometry is stored
// as an encoded polyline to keep rows compact.
type SQLRouteCache struct {
	DB *sql.DB
}

func NewSQLRouteCache(db *sql.DB) *SQLRouteCache {
	return &SQLRouteCache{DB: db}
}

// InitSchema creates the cache table if it does not exist yet.
func InitSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
	CREATE TABLE IF NOT EXISTS route_cache (
		origin_lon       double precision NOT NULL,
		origin_lat       double precision NOT NULL,
		destination_lon  double precision NOT NULL,
		destination_lat  double precision NOT NULL,
		distance_meters  double precision NOT NULL,
		duration_seconds double precision NOT NULL,
		geometry         text NOT NULL,
		PRIMARY KEY (origin_lon, origin_lat, destination_lon, destination_lat)
	);
	`)
	if err != nil {
		return fmt.Errorf("init route cache schema: %w", err)
	}
	return nil
}

// Get fetches one cached pair; the second return is false on a miss.
func (s *SQLRouteCache) Get(
	ctx context.Context,
	origin, destination domain.Coordinates,
) (_ ports.RouteResult, _ bool, err error) {
	defer obs.Time(ctx, "route.cache.Get")(&err)

	if s.DB == nil {
		return ports.RouteResult{}, false, errors.New("route cache: db is nil")
	}

	q := `
	SELECT distance_meters, duration_seconds, geometry
	FROM route_cache
	WHERE origin_lon = $1 AND origin_lat = $2
		AND destination_lon = $3 AND destination_lat = $4;
	`

	var meters, seconds float64
	var encoded string
	row := s.DB.QueryRowContext(ctx, q, origin.Lon, origin.Lat, destination.Lon, destination.Lat)
	if err := row.Scan(&meters, &seconds, &encoded); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ports.RouteResult{}, false, nil
		}
		return ports.RouteResult{}, false, fmt.Errorf("get route cache: scan row: %w", err)
	}

	line, err := geo.DecodePolyline(encoded)
	if err != nil {
		// A corrupt row is treated as a miss so the provider can refill it.
		return ports.RouteResult{}, false, nil
	}

	return ports.RouteResult{
		Geometry:        line,
		DistanceMeters:  meters,
		DurationSeconds: seconds,
	}, true, nil
}

// Put stores one pair's result, replacing any previous entry.
func (s *SQLRouteCache) Put(
	ctx context.Context,
	origin, destination domain.Coordinates,
	result ports.RouteResult,
) error {
	if s.DB == nil {
		return errors.New("route cache: db is nil")
	}

	coords := make([][]float64, len(result.Geometry))
	for i, pt := range result.Geometry {
		coords[i] = []float64{pt[1], pt[0]} // polyline wants [lat, lng]
	}
	encoded := string(polyline.EncodeCoords(coords))

	q := `
	INSERT INTO route_cache (
		origin_lon, origin_lat, destination_lon, destination_lat,
		distance_meters, duration_seconds, geometry
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	ON CONFLICT (origin_lon, origin_lat, destination_lon, destination_lat) DO UPDATE
	SET distance_meters = EXCLUDED.distance_meters,
		duration_seconds = EXCLUDED.duration_seconds,
		geometry = EXCLUDED.geometry;
	`

	if _, err := s.DB.ExecContext(
		ctx, q,
		origin.Lon, origin.Lat, destination.Lon, destination.Lat,
		result.DistanceMeters, result.DurationSeconds, encoded,
	); err != nil {
		return fmt.Errorf("insert route cache: %w", err)
	}

	return nil
}
