// Package export writes the presentation handoff artifact: a KML
// document a mapping tool can render without knowing anything about
// the pipeline.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/twpayne/go-kml/v2"

	"trip-route-service/internal/services"
)

// WriteKML renders a trip plan as KML: one Placemark per stop, one
// LineString Placemark per routed leg (with the formatted distance and
// duration in its description), and the visited region names in the
// document description.
func WriteKML(w io.Writer, plan *services.TripPlan) error {
	if plan == nil {
		return fmt.Errorf("write kml: plan is nil")
	}

	elements := []kml.Element{kml.Name("Trip")}

	if visited := plan.Coverage.VisitedIDs(); len(visited) > 0 {
		names := make([]string, 0, len(visited))
		for _, rc := range plan.Coverage.Regions {
			if rc.Visited {
				name := rc.Region.Name
				if name == "" {
					name = rc.Region.ID
				}
				names = append(names, name)
			}
		}
		elements = append(elements, kml.Description("Regions: "+strings.Join(names, ", ")))
	}

	for _, wp := range plan.Waypoints {
		elements = append(elements, kml.Placemark(
			kml.Name(wp.Name),
			kml.Point(kml.Coordinates(kml.Coordinate{Lon: wp.Coord.Lon, Lat: wp.Coord.Lat})),
		))
	}

	for _, leg := range plan.Legs {
		coords := make([]kml.Coordinate, len(leg.Route.Geometry))
		for i, pt := range leg.Route.Geometry {
			coords[i] = kml.Coordinate{Lon: pt[0], Lat: pt[1]}
		}

		elements = append(elements, kml.Placemark(
			kml.Name(fmt.Sprintf(
				"%s to %s",
				leg.Route.Segment.Origin.Name, leg.Route.Segment.Destination.Name,
			)),
			kml.Description(fmt.Sprintf("%s, %s", leg.Distance, leg.Duration)),
			kml.LineString(kml.Coordinates(coords...)),
		))
	}

	doc := kml.KML(kml.Document(elements...))
	if err := doc.WriteIndent(w, "", "  "); err != nil {
		return fmt.Errorf("write kml: %w", err)
	}
	return nil
}
