package coords

import (
	"fmt"
	"math"
	"strconv"
)

// feetPerMeter converts altitudes given in feet.
const feetPerMeter = 3.28084

// Position is a latitude/longitude pair with an optional altitude in meters.
type Position struct {
	Latitude  DMS      `json:"latitude" yaml:"latitude"`
	Longitude DMS      `json:"longitude" yaml:"longitude"`
	Altitude  *float64 `json:"altitude" yaml:"altitude"`
}

// Cartesian is an Earth-centred, Earth-fixed point in meters.
type Cartesian struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

// Alt returns a pointer to v, for the altitude arguments of the
// Position constructors.
func Alt(v float64) *float64 {
	return &v
}

// NewPosition checks that latitude carries N/S and longitude E/W.
// Angles are stored as given.
func NewPosition(latitude, longitude DMS, altitude *float64) (Position, error) {
	if err := checkAxis(latitude, Cardinal.IsLatitude); err != nil {
		return Position{}, fmt.Errorf("latitude %s: %w", latitude, err)
	}
	if err := checkAxis(longitude, Cardinal.IsLongitude); err != nil {
		return Position{}, fmt.Errorf("longitude %s: %w", longitude, err)
	}
	return Position{
		Latitude:  latitude,
		Longitude: longitude,
		Altitude:  copyAlt(altitude),
	}, nil
}

func checkAxis(d DMS, ok func(Cardinal) bool) error {
	if d.Cardinal == nil {
		return ErrMissingCardinal
	}
	if !ok(*d.Cardinal) {
		return ErrInvalidCardinalAxis
	}
	return nil
}

func copyAlt(a *float64) *float64 {
	if a == nil {
		return nil
	}
	return Alt(*a)
}

// PositionFromDDeg builds a position from signed decimal degrees.
func PositionFromDDeg(latitude, longitude float64, altitude *float64) Position {
	return Position{
		Latitude:  DMSFromDDegLatitude(latitude),
		Longitude: DMSFromDDegLongitude(longitude),
		Altitude:  copyAlt(altitude),
	}
}

// DefaultPosition is 0°N 0°E with no altitude.
func DefaultPosition() Position {
	return PositionFromDDeg(0, 0, nil)
}

// PositionFromCartesian projects an ECEF point back on the sphere.
// The altitude is set to c.Z, not to a height above the sphere.
func PositionFromCartesian(c Cartesian) Position {
	return Position{
		Latitude:  DMSFromDDegLatitude(rad2deg(math.Asin(c.Z / EarthRadius))),
		Longitude: DMSFromDDegLongitude(rad2deg(math.Atan2(c.Y, c.X))),
		Altitude:  Alt(c.Z),
	}
}

// ToCartesian projects p on a sphere of radius EarthRadius.
// Altitude is ignored.
func (p Position) ToCartesian() Cartesian {
	lat := p.Latitude.ToRadians()
	lon := p.Longitude.ToRadians()
	return Cartesian{
		X: EarthRadius * math.Cos(lat) * math.Cos(lon),
		Y: EarthRadius * math.Cos(lat) * math.Sin(lon),
		Z: EarthRadius * math.Sin(lat),
	}
}

// ToDDeg returns latitude and longitude in signed decimal degrees.
func (p Position) ToDDeg() (float64, float64) {
	return p.Latitude.ToDDegAngle(), p.Longitude.ToDDegAngle()
}

// Distance returns the great-circle distance to other in meters.
func (p Position) Distance(other Position) float64 {
	lat1, lon1 := p.ToDDeg()
	lat2, lon2 := other.ToDDeg()
	return ProjectedDistance(lat1, lon1, lat2, lon2)
}

// Azimuth returns the initial bearing from p towards other, in degrees
// clockwise from North, within [0,360).
func (p Position) Azimuth(other Position) float64 {
	lat1, lon1 := p.ToDDeg()
	lat2, lon2 := other.ToDDeg()
	return NormalizeBearing(InitialBearing(lat1, lon1, lat2, lon2))
}

// WithAltitude returns a copy of p at the given altitude in meters.
func (p Position) WithAltitude(meters float64) Position {
	p.Altitude = Alt(meters)
	return p
}

func (p Position) WithAltitudeFeet(feet float64) Position {
	return p.WithAltitude(feet / feetPerMeter)
}

// AddAltitude raises p by meters. An unknown altitude becomes meters.
func (p *Position) AddAltitude(meters float64) {
	if p.Altitude == nil {
		p.Altitude = Alt(meters)
		return
	}
	p.Altitude = Alt(*p.Altitude + meters)
}

func (p *Position) AddAltitudeFeet(feet float64) {
	p.AddAltitude(feet / feetPerMeter)
}

// Add sums latitudes and longitudes. The altitude is other's when known,
// p's otherwise.
func (p Position) Add(other Position) (Position, error) {
	lat, err := p.Latitude.Add(other.Latitude)
	if err != nil {
		return Position{}, fmt.Errorf("latitude: %w", err)
	}
	lon, err := p.Longitude.Add(other.Longitude)
	if err != nil {
		return Position{}, fmt.Errorf("longitude: %w", err)
	}
	alt := p.Altitude
	if other.Altitude != nil {
		alt = other.Altitude
	}
	return Position{Latitude: lat, Longitude: lon, Altitude: copyAlt(alt)}, nil
}

// ToEurope50 applies DMS.ToEurope50 to both angles.
func (p Position) ToEurope50() (Position, error) {
	lat, err := p.Latitude.ToEurope50()
	if err != nil {
		return Position{}, fmt.Errorf("latitude: %w", err)
	}
	lon, err := p.Longitude.ToEurope50()
	if err != nil {
		return Position{}, fmt.Errorf("longitude: %w", err)
	}
	return Position{Latitude: lat, Longitude: lon, Altitude: copyAlt(p.Altitude)}, nil
}

func (p Position) String() string {
	alt := 0.0
	if p.Altitude != nil {
		alt = *p.Altitude
	}
	return fmt.Sprintf(`lat: "%s"  lon: "%s" alt: "%s"`,
		p.Latitude, p.Longitude, strconv.FormatFloat(alt, 'f', -1, 64))
}
