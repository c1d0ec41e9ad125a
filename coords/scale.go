package coords

// Precision names the size of things an angle resolution can tell apart
// on the ground.
type Precision uint8

const (
	// Country is 1°0'0"
	Country Precision = iota
	// LargeCity is 0°6'0"
	LargeCity
	// City is 0°0'36"
	City
	// Neighborhood is 0°0'3.6"
	Neighborhood
	// Street is 0°0'0.36"
	Street
	// Tree is 0°0'0.036"
	Tree
	// Human is 0°0'0.0036"
	Human
	// RoughSurveying is 360e-6", commercial survey devices
	RoughSurveying
	// PreciseSurveying is 36e-6", e.g. tectonic plate mapping
	PreciseSurveying
)

var precisions = [...]struct {
	name    string
	seconds float64
}{
	Country:          {"country", 3600},
	LargeCity:        {"large city", 360},
	City:             {"city", 36},
	Neighborhood:     {"neighborhood", 3.6},
	Street:           {"street", 0.36},
	Tree:             {"tree", 0.036},
	Human:            {"human", 3.6e-3},
	RoughSurveying:   {"rough surveying", 360e-6},
	PreciseSurveying: {"precise surveying", 36e-6},
}

// Resolution returns the angle matching p.
func (p Precision) Resolution() DMS {
	if int(p) >= len(precisions) {
		return DMS{}
	}
	return DMSFromSeconds(precisions[p].seconds)
}

func (p Precision) String() string {
	if int(p) >= len(precisions) {
		return "unknown"
	}
	return precisions[p].name
}

// PrecisionOf returns the coarsest precision whose resolution is not
// larger than the given angle, PreciseSurveying for anything finer.
func PrecisionOf(d DMS) Precision {
	s := d.TotalSeconds()
	for i, p := range precisions {
		if p.seconds <= s {
			return Precision(i)
		}
	}
	return PreciseSurveying
}
