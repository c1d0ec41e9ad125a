// Package coords represents geographic angles in D°M'S" notation and the
// latitude/longitude positions built from them.
package coords

import (
	"math"
	"strconv"
	"strings"
)

const (
	secondsPerMinute = 60.0
	secondsPerDegree = 3600.0
	// one full turn, 360°
	secondsPerTurn = 360 * secondsPerDegree
)

// DMS is an angle in degrees, minutes and seconds, with an optional cardinal
// marking it as a latitude or longitude (and giving its sign).
//
// Values produced by this package always hold 0 <= Minutes < 60 and
// 0 <= Seconds < 60.
type DMS struct {
	Degrees  uint16    `json:"degrees" yaml:"degrees"`
	Minutes  uint8     `json:"minutes" yaml:"minutes"`
	Seconds  float64   `json:"seconds" yaml:"seconds"`
	Cardinal *Cardinal `json:"cardinal" yaml:"cardinal"`
}

// NewDMS builds a cardinal-less angle. It never fails: overflowing minutes
// or seconds are carried into the upper fields and degrees wrap at 360.
func NewDMS(degrees, minutes uint, seconds float64) DMS {
	total := float64(degrees)*secondsPerDegree + float64(minutes)*secondsPerMinute + seconds
	return DMSFromSeconds(total)
}

// NewCardinalDMS is NewDMS with the given cardinal attached.
func NewCardinalDMS(degrees, minutes uint, seconds float64, c Cardinal) DMS {
	return NewDMS(degrees, minutes, seconds).WithCardinal(c)
}

// NewBoundedDMS is the validating constructor: nothing is wrapped, and the
// angle must fit the range of its cardinal (90° for N/S, 180° for E/W,
// 45° for diagonals).
func NewBoundedDMS(degrees, minutes uint, seconds float64, c Cardinal) (DMS, error) {
	if minutes >= 60 || seconds < 0 || seconds >= secondsPerMinute {
		return DMS{}, ErrDegreesOutOfRange
	}
	bound := 180.0
	switch {
	case c.IsLatitude():
		bound = 90
	case c.IsSubQuadrant():
		bound = 45
	}
	ddeg := float64(degrees) + float64(minutes)/60 + seconds/secondsPerDegree
	if ddeg > bound {
		return DMS{}, ErrDegreesOutOfRange
	}
	return DMS{
		Degrees:  uint16(degrees),
		Minutes:  uint8(minutes),
		Seconds:  seconds,
		Cardinal: c.ptr(),
	}, nil
}

// DMSFromSeconds builds a cardinal-less angle from a total amount of
// arc-seconds. Totals outside one full turn are wrapped into [0°,360°).
// The fractional part of the total is carried through to Seconds as is.
func DMSFromSeconds(total float64) DMS {
	if total < 0 || total >= secondsPerTurn {
		total = math.Mod(total, secondsPerTurn)
		if total < 0 {
			total += secondsPerTurn
		}
		// a tiny negative rounds up to a full turn
		if total >= secondsPerTurn {
			total = 0
		}
	}
	whole := math.Floor(total)
	degrees := math.Floor(total / secondsPerDegree)
	minutes := math.Floor((total - degrees*secondsPerDegree) / secondsPerMinute)
	seconds := math.Mod(whole, secondsPerMinute) + (total - whole)
	return DMS{
		Degrees: uint16(degrees),
		Minutes: uint8(minutes),
		Seconds: seconds,
	}
}

// DMSFromDDegAngle builds a cardinal-less angle from |angle| in decimal degrees.
// Degrees are not reduced, so |angle| must stay below 65536°.
func DMSFromDDegAngle(angle float64) DMS {
	return decompose(angle)
}

// DMSFromDDegLatitude builds a latitude from signed decimal degrees:
// South when angle < 0, North otherwise. Degrees are taken mod 90.
func DMSFromDDegLatitude(angle float64) DMS {
	d := decompose(angle)
	d.Degrees %= 90
	if angle < 0 {
		return d.WithCardinal(South)
	}
	return d.WithCardinal(North)
}

// DMSFromDDegLongitude builds a longitude from signed decimal degrees:
// West when angle < 0, East otherwise. Degrees are taken mod 180.
func DMSFromDDegLongitude(angle float64) DMS {
	d := decompose(angle)
	d.Degrees %= 180
	if angle < 0 {
		return d.WithCardinal(West)
	}
	return d.WithCardinal(East)
}

// decompose splits |decimal| into degrees, minutes and seconds.
func decompose(decimal float64) DMS {
	decimal = math.Abs(decimal)

	degs := math.Floor(decimal)
	mins := math.Floor((decimal - degs) * 60)
	secs := (decimal - degs - mins/60) * secondsPerDegree

	// float noise around the minute boundary
	if secs < 0 {
		secs = 0
	}
	if secs >= secondsPerMinute {
		secs -= secondsPerMinute
		mins++
	}
	if mins >= 60 {
		mins -= 60
		degs++
	}

	return DMS{
		Degrees: uint16(degs),
		Minutes: uint8(mins),
		Seconds: secs,
	}
}

// ToDDegAngle returns the angle in decimal degrees, negative when the
// cardinal is southern or western.
func (d DMS) ToDDegAngle() float64 {
	ddeg := float64(d.Degrees) + float64(d.Minutes)/60 + d.Seconds/secondsPerDegree
	if d.Cardinal != nil && (d.Cardinal.IsSouthern() || d.Cardinal.IsWestern()) {
		return -ddeg
	}
	return ddeg
}

// TotalSeconds returns the unsigned angle in arc-seconds.
func (d DMS) TotalSeconds() float64 {
	return float64(d.Degrees)*secondsPerDegree + float64(d.Minutes)*secondsPerMinute + d.Seconds
}

func (d DMS) ToRadians() float64 {
	return d.ToDDegAngle() * math.Pi / 180
}

// WithCardinal returns a copy of d carrying c, replacing any previous cardinal.
func (d DMS) WithCardinal(c Cardinal) DMS {
	d.Cardinal = c.ptr()
	return d
}

func (d DMS) WithoutCardinal() DMS {
	d.Cardinal = nil
	return d
}

// HasCardinal reports whether d carries c.
func (d DMS) HasCardinal(c Cardinal) bool {
	return d.Cardinal != nil && *d.Cardinal == c
}

// IsLatitude reports whether d carries a N/S cardinal.
func (d DMS) IsLatitude() bool {
	return d.Cardinal != nil && d.Cardinal.IsLatitude()
}

// IsLongitude reports whether d carries an E/W cardinal.
func (d DMS) IsLongitude() bool {
	return d.Cardinal != nil && d.Cardinal.IsLongitude()
}

// fromDDegSameAxis rebuilds a decimal-degree value along d's axis.
func (d DMS) fromDDegSameAxis(ddeg float64) DMS {
	switch {
	case d.IsLatitude():
		return DMSFromDDegLatitude(ddeg)
	case d.IsLongitude():
		return DMSFromDDegLongitude(ddeg)
	}
	return DMSFromDDegAngle(ddeg)
}

// AddDDeg adds angle (decimal degrees) to d. Latitudes and longitudes keep
// their axis and get the cardinal of the resulting sign, anything else
// comes back cardinal-less.
func (d DMS) AddDDeg(angle float64) DMS {
	return d.fromDDegSameAxis(d.ToDDegAngle() + angle)
}

// WithDDegAngle replaces the value of d with angle (decimal degrees),
// keeping its axis.
func (d DMS) WithDDegAngle(angle float64) DMS {
	return d.fromDDegSameAxis(angle)
}

// Equal compares two angles, allowing tol arc-seconds of difference on the
// seconds field.
func (d DMS) Equal(other DMS, tol float64) bool {
	if d.Degrees != other.Degrees || d.Minutes != other.Minutes {
		return false
	}
	if (d.Cardinal == nil) != (other.Cardinal == nil) {
		return false
	}
	if d.Cardinal != nil && *d.Cardinal != *other.Cardinal {
		return false
	}
	return math.Abs(d.Seconds-other.Seconds) <= tol
}

// String renders d as D°M'S" followed by the cardinal, e.g. 40°43'50.196"N.
// Seconds are rounded to 1e-4, carrying into minutes and degrees.
func (d DMS) String() string {
	degs, mins := uint64(d.Degrees), uint64(d.Minutes)
	secs := math.Round(d.Seconds*1e4) / 1e4
	if secs >= secondsPerMinute {
		secs -= secondsPerMinute
		mins++
	}
	if mins >= 60 {
		mins -= 60
		degs++
	}

	var sb strings.Builder
	sb.WriteString(strconv.FormatUint(degs, 10))
	sb.WriteString("°")
	sb.WriteString(strconv.FormatUint(mins, 10))
	sb.WriteByte('\'')
	sb.WriteString(formatSeconds(secs))
	sb.WriteByte('"')
	if d.Cardinal != nil {
		sb.WriteString(d.Cardinal.String())
	}
	return sb.String()
}

func formatSeconds(s float64) string {
	out := strconv.FormatFloat(s, 'f', 4, 64)
	out = strings.TrimRight(out, "0")
	return strings.TrimSuffix(out, ".")
}
