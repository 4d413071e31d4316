// Package format renders raw route measurements (meters, seconds) as
// the human-readable strings attached to trip legs.
package format

import (
	"fmt"
	"math"
	"time"

	"github.com/dustin/go-humanize"
)

const metersPerMile = 1609.344

// Rounding holds the display granularities. These are presentation
// choices observable in output, so they are configuration rather than
// hard-coded literals.
type Rounding struct {
	// Distances are rounded to the nearest multiple of this many miles.
	DistanceGranularityMiles float64

	// Durations are rounded to the nearest multiple of this increment.
	DurationIncrement time.Duration
}

// DefaultRounding returns the granularities used by the original tool:
// nearest 10 miles, nearest 15 minutes.
func DefaultRounding() Rounding {
	return Rounding{
		DistanceGranularityMiles: 10,
		DurationIncrement:        15 * time.Minute,
	}
}

// Formatter renders distances and durations. The zero value is not
// usable; construct with NewFormatter.
type Formatter struct {
	rounding Rounding
}

// NewFormatter builds a Formatter, falling back to DefaultRounding for
// any granularity left at zero.
func NewFormatter(r Rounding) Formatter {
	def := DefaultRounding()
	if r.DistanceGranularityMiles <= 0 {
		r.DistanceGranularityMiles = def.DistanceGranularityMiles
	}
	if r.DurationIncrement <= 0 {
		r.DurationIncrement = def.DurationIncrement
	}
	return Formatter{rounding: r}
}

// Distance converts meters to miles, rounds to the configured
// granularity and renders with thousands separators, e.g. "1,240
// miles". Note the granularity rounding is literal: one mile rounds
// down to "0 miles" at the default nearest-10 setting.
func (f Formatter) Distance(meters float64) string {
	miles := meters / metersPerMile
	g := f.rounding.DistanceGranularityMiles
	rounded := math.Round(miles/g) * g
	return humanize.Commaf(rounded) + " miles"
}

// Duration rounds seconds to the configured increment and renders
// hours and minutes, e.g. "1 hour 30 minutes".
//
// The decomposition never rolls over into a day unit: whole days are
// folded back into the hour component, so 1500 minutes renders as "25
// hours 0 minutes". When the rounded hour component is zero the hour
// clause is omitted entirely, including for a zero duration ("0
// minutes").
func (f Formatter) Duration(seconds float64) string {
	inc := f.rounding.DurationIncrement.Seconds()
	rounded := int64(math.Round(seconds/inc) * inc)

	totalMinutes := rounded / 60
	days := totalMinutes / (24 * 60)
	hours := totalMinutes/60 - days*24
	minutes := totalMinutes % 60

	// Explicit day->hour rollover: the output unit system stops at
	// hours, however large the trip.
	hours += days * 24

	if hours == 0 {
		return fmt.Sprintf("%d minutes", minutes)
	}

	hourWord := "hours"
	if hours == 1 {
		hourWord = "hour"
	}
	return fmt.Sprintf("%s %s %d minutes", humanize.Comma(hours), hourWord, minutes)
}
