// Package waypoint stores a single position as a GPX waypoint.
package waypoint

import (
	"fmt"
	"os"

	"github.com/tkrajina/gpxgo/gpx"

	"github.com/gwbres/dms-coordinates/coords"
)

const creator = "dms-coordinates"

// Marshal renders pos as a GPX 1.1 document holding one waypoint.
func Marshal(pos coords.Position) ([]byte, error) {
	lat, lon := pos.ToDDeg()
	wpt := gpx.GPXPoint{
		Point: gpx.Point{
			Latitude:  lat,
			Longitude: lon,
		},
	}
	if pos.Altitude != nil {
		wpt.Elevation = *gpx.NewNullableFloat64(*pos.Altitude)
	}
	doc := gpx.GPX{
		Creator:   creator,
		Waypoints: []gpx.GPXPoint{wpt},
	}
	return doc.ToXml(gpx.ToXmlParams{Version: "1.1", Indent: true})
}

// Unmarshal returns the first waypoint of a GPX document, nil when there
// is none.
func Unmarshal(b []byte) (*coords.Position, error) {
	doc, err := gpx.ParseBytes(b)
	if err != nil {
		return nil, err
	}
	if len(doc.Waypoints) == 0 {
		return nil, nil
	}
	wpt := doc.Waypoints[0]
	var alt *float64
	if wpt.Elevation.NotNull() {
		alt = coords.Alt(wpt.Elevation.Value())
	}
	pos := coords.PositionFromDDeg(wpt.Latitude, wpt.Longitude, alt)
	return &pos, nil
}

// WriteGPX stores pos in path.
func WriteGPX(path string, pos coords.Position) error {
	b, err := Marshal(pos)
	if err != nil {
		return fmt.Errorf("gpx %s: %w", path, err)
	}
	return os.WriteFile(path, b, 0o644)
}

// ReadGPX loads the first waypoint of path, nil when it has none.
func ReadGPX(path string) (*coords.Position, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	pos, err := Unmarshal(b)
	if err != nil {
		return nil, fmt.Errorf("gpx %s: %w", path, err)
	}
	return pos, nil
}
