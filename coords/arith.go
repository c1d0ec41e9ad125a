package coords

import "fmt"

// Fixed WGS84 to European Datum 1950 shift. This is a flat approximation,
// not a datum transform.
var (
	europe50Latitude  = NewCardinalDMS(0, 0, 3.6, North)
	europe50Longitude = NewCardinalDMS(0, 0, 2.4, East)
)

// Add returns d + other.
//
// When both angles carry a cardinal they must be of the same axis, the sum
// is computed in decimal degrees and rebuilt as a latitude or longitude.
// Otherwise the angles are added in arc-seconds and the result has no
// cardinal.
func (d DMS) Add(other DMS) (DMS, error) {
	return d.combine(other, 1)
}

// Sub returns d - other, following the same rules as Add. Cardinal-less
// differences wrap into [0°,360°).
func (d DMS) Sub(other DMS) (DMS, error) {
	return d.combine(other, -1)
}

func (d DMS) combine(other DMS, sign float64) (DMS, error) {
	if d.Cardinal != nil && other.Cardinal != nil {
		if !d.Cardinal.SameKind(*other.Cardinal) {
			return DMS{}, fmt.Errorf("%s with %s: %w", d, other, ErrIncompatibleCardinals)
		}
		return d.fromDDegSameAxis(d.ToDDegAngle() + sign*other.ToDDegAngle()), nil
	}
	return DMSFromSeconds(d.TotalSeconds() + sign*other.TotalSeconds()), nil
}

// AddInPlace replaces d with d + other. d is left untouched on error.
func (d *DMS) AddInPlace(other DMS) error {
	sum, err := d.Add(other)
	if err != nil {
		return err
	}
	*d = sum
	return nil
}

// SubInPlace replaces d with d - other. d is left untouched on error.
func (d *DMS) SubInPlace(other DMS) error {
	diff, err := d.Sub(other)
	if err != nil {
		return err
	}
	*d = diff
	return nil
}

// Scale multiplies d by k. Latitudes and longitudes are scaled in decimal
// degrees and rebuilt on their axis, other angles are scaled in arc-seconds
// and keep their cardinal.
func (d DMS) Scale(k float64) DMS {
	if d.IsLatitude() || d.IsLongitude() {
		return d.fromDDegSameAxis(d.ToDDegAngle() * k)
	}
	out := DMSFromSeconds(d.TotalSeconds() * k)
	if d.Cardinal != nil {
		out = out.WithCardinal(*d.Cardinal)
	}
	return out
}

// Divide divides d by k, see Scale. Dividing by zero is the caller's
// problem, as with NaN inputs.
func (d DMS) Divide(k float64) DMS {
	return d.Scale(1 / k)
}

// ToEurope50 shifts a latitude 3.6" North or a longitude 2.4" East.
func (d DMS) ToEurope50() (DMS, error) {
	switch {
	case d.Cardinal == nil:
		return DMS{}, ErrMissingCardinal
	case d.IsLatitude():
		return d.Add(europe50Latitude)
	case d.IsLongitude():
		return d.Add(europe50Longitude)
	}
	return DMS{}, fmt.Errorf("%s: %w", *d.Cardinal, ErrInvalidCardinalAxis)
}
