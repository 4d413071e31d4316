package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the two provider failure classes. Adapters wrap
// these with provider-specific detail; callers classify with
// errors.Is.
var (
	// Transient provider failure (network, timeout, 5xx-equivalent).
	// Adapters retry these with backoff before giving up.
	ErrRoutingUnavailable = errors.New("routing unavailable")

	// Provider reachable but no viable path exists between the two
	// points. Never retried.
	ErrNoRouteFound = errors.New("no route found")
)

// InputError marks malformed caller input: non-finite or out-of-range
// coordinates. Fatal for the run, surfaced immediately, no retry.
type InputError struct {
	Msg string
}

func (e *InputError) Error() string { return "input error: " + e.Msg }

// IsInputError reports whether err is (or wraps) an InputError.
func IsInputError(err error) bool {
	var ie *InputError
	return errors.As(err, &ie)
}

// SegmentFailure records one segment the provider could not route.
// Failed segments are accumulated and reported alongside successful
// routes, never silently dropped.
type SegmentFailure struct {
	Segment Segment
	Err     error
}

func (f SegmentFailure) Error() string {
	return fmt.Sprintf(
		"segment %d %q -> %q: %v",
		f.Segment.Index, f.Segment.Origin.Name, f.Segment.Destination.Name, f.Err,
	)
}

func (f SegmentFailure) Unwrap() error { return f.Err }

// RegionFailure records one region whose boundary could not be
// evaluated during coverage resolution. The resolver continues with
// the remaining regions.
type RegionFailure struct {
	RegionID string
	Err      error
}

func (f RegionFailure) Error() string {
	return fmt.Sprintf("region %q: %v", f.RegionID, f.Err)
}

func (f RegionFailure) Unwrap() error { return f.Err }
