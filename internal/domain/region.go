package domain

import "github.com/paulmach/orb"

// An administrative boundary polygon (e.g., a state) against which
// routes are tested for coverage. Loaded once from a static catalog
// and read-only for the pipeline's lifetime. Boundaries are WGS84
// lon/lat, normalized at the catalog adapter.
type Region struct {
	ID       string
	Name     string
	Boundary orb.MultiPolygon
}
