package dto

type WaypointInput struct {
	Name string  `json:"name"`
	Lon  float64 `json:"lon"`
	Lat  float64 `json:"lat"`
}

type TripRequest struct {
	Waypoints []WaypointInput `json:"waypoints"`
}

type LegResponse struct {
	Origin          string      `json:"origin"`
	Destination     string      `json:"destination"`
	DistanceMeters  float64     `json:"distance_meters"`
	DurationSeconds float64     `json:"duration_seconds"`
	Distance        string      `json:"distance"`
	Duration        string      `json:"duration"`
	Geometry        [][]float64 `json:"geometry"` // [lon, lat] pairs
}

type FailedLegResponse struct {
	SegmentIndex int    `json:"segment_index"`
	Origin       string `json:"origin"`
	Destination  string `json:"destination"`
	Reason       string `json:"reason"`
}

type RegionResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Visited bool   `json:"visited"`
}

type RegionFailureResponse struct {
	ID     string `json:"id"`
	Reason string `json:"reason"`
}

type TripResponse struct {
	Waypoints            []WaypointInput         `json:"waypoints"`
	Legs                 []LegResponse           `json:"legs"`
	FailedLegs           []FailedLegResponse     `json:"failed_legs"`
	Regions              []RegionResponse        `json:"regions"`
	FailedRegions        []RegionFailureResponse `json:"failed_regions"`
	TotalDistanceMeters  float64                 `json:"total_distance_meters"`
	TotalDurationSeconds float64                 `json:"total_duration_seconds"`
	TotalDistance        string                  `json:"total_distance"`
	TotalDuration        string                  `json:"total_duration"`
}
