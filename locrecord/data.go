// Package locrecord publishes positions as DNS LOC records on Cloudflare.
package locrecord

import (
	"math"

	"github.com/gwbres/dms-coordinates/coords"
)

// Data formats pos into the LOC data map, matching what the Cloudflare API
// returns for existing records. size is the diameter of the located
// entity in meters. Seconds are kept to the millisecond of arc.
func Data(pos coords.Position, size float64) map[string]interface{} {
	d := make(map[string]interface{})

	alt := 0.0
	if pos.Altitude != nil {
		alt = *pos.Altitude
	}
	d["altitude"] = alt
	d["size"] = size

	lat := roundSeconds(pos.Latitude)
	d["lat_direction"] = direction(lat, "N")
	d["lat_degrees"] = float64(lat.Degrees)
	d["lat_minutes"] = float64(lat.Minutes)
	d["lat_seconds"] = lat.Seconds

	lon := roundSeconds(pos.Longitude)
	d["long_direction"] = direction(lon, "E")
	d["long_degrees"] = float64(lon.Degrees)
	d["long_minutes"] = float64(lon.Minutes)
	d["long_seconds"] = lon.Seconds

	d["precision_horz"] = 0.0
	d["precision_vert"] = 0.0

	return d
}

// roundSeconds rounds to 1e-3" and carries a rounded-up 60" into the minutes.
func roundSeconds(a coords.DMS) coords.DMS {
	total := math.Round(a.TotalSeconds()*1000) / 1000
	r := coords.DMSFromSeconds(total)
	r.Seconds = math.Round(r.Seconds*1000) / 1000
	r.Cardinal = a.Cardinal
	return r
}

func direction(a coords.DMS, fallback string) string {
	if a.Cardinal == nil {
		return fallback
	}
	return a.Cardinal.String()
}
