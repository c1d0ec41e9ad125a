package coords

import "testing"

func TestPrecision_Resolution(t *testing.T) {
	expectDMS(t, Country.Resolution(), 1, 0, 0)
	expectDMS(t, LargeCity.Resolution(), 0, 6, 0)
	expectDMS(t, City.Resolution(), 0, 0, 36)
	expectDMS(t, Neighborhood.Resolution(), 0, 0, 3.6)
	expectDMS(t, PreciseSurveying.Resolution(), 0, 0, 36e-6)
	if Street.String() != "street" || Precision(99).String() != "unknown" {
		t.Fatalf("unexpected names")
	}
}

func TestPrecisionOf(t *testing.T) {
	cases := []struct {
		d    DMS
		want Precision
	}{
		{NewDMS(2, 0, 0), Country},
		{NewDMS(0, 10, 0), LargeCity},
		{NewDMS(0, 0, 40), City},
		{NewDMS(0, 0, 0.5), Street},
		{NewDMS(0, 0, 0), PreciseSurveying},
	}
	for _, tc := range cases {
		if got := PrecisionOf(tc.d); got != tc.want {
			t.Errorf("%s: expected %s, got %s", tc.d, tc.want, got)
		}
	}
}
