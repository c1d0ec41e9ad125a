package coords

import "math"

// EarthRadius is the mean radius of the Earth in meters (spherical model).
const EarthRadius = 6.37e6

func deg2rad(deg float64) float64 { return deg * math.Pi / 180 }
func rad2deg(rad float64) float64 { return rad * 180 / math.Pi }

// ProjectedDistance returns the great-circle distance in meters between two
// points given in signed decimal degrees, using the haversine formula.
func ProjectedDistance(lat1, lon1, lat2, lon2 float64) float64 {
	φ1 := deg2rad(lat1)
	φ2 := deg2rad(lat2)
	Δφ := φ2 - φ1
	Δλ := deg2rad(lon2) - deg2rad(lon1)

	a := math.Sin(Δφ/2)*math.Sin(Δφ/2) +
		math.Cos(φ1)*math.Cos(φ2)*
			math.Sin(Δλ/2)*math.Sin(Δλ/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadius * c
}

// InitialBearing returns the forward azimuth in degrees from point 1 towards
// point 2, in the (-180,180] range of atan2.
func InitialBearing(lat1, lon1, lat2, lon2 float64) float64 {
	φ1 := deg2rad(lat1)
	φ2 := deg2rad(lat2)
	Δλ := deg2rad(lon2) - deg2rad(lon1)

	y := math.Sin(Δλ) * math.Cos(φ2)
	x := math.Cos(φ1)*math.Sin(φ2) - math.Sin(φ1)*math.Cos(φ2)*math.Cos(Δλ)
	return rad2deg(math.Atan2(y, x))
}

// NormalizeBearing wraps deg into [0,360).
func NormalizeBearing(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		return 0
	}
	return deg
}
