package coords

import (
	"errors"
	"testing"
)

var allCardinals = []Cardinal{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}

func TestCardinal_AngleBijection(t *testing.T) {
	for i, c := range allCardinals {
		if got := c.ToAngle(); got != uint16(i*45) {
			t.Fatalf("%s: expected angle %d, got %d", c, i*45, got)
		}
		if got := CardinalFromAngle(int(c.ToAngle())); got != c {
			t.Fatalf("expected %s, got %s", c, got)
		}
	}
}

func TestCardinalFromAngle_Buckets(t *testing.T) {
	cases := []struct {
		angle int
		want  Cardinal
	}{
		{0, North},
		{44, North},
		{45, NorthEast},
		{90, East},
		{134, East},
		{135, SouthEast},
		{180, South},
		{269, SouthWest},
		{315, NorthWest},
		{359, NorthWest},
		{360, North},
		{405, NorthEast},
		{-1, NorthWest},
		{-90, West},
		{-720, North},
	}
	for _, tc := range cases {
		if got := CardinalFromAngle(tc.angle); got != tc.want {
			t.Errorf("CardinalFromAngle(%d): expected %s, got %s", tc.angle, tc.want, got)
		}
	}
}

func TestCardinal_AddWraps(t *testing.T) {
	cases := []struct {
		c    Cardinal
		deg  int
		want Cardinal
	}{
		{North, 90, East},
		{North, 360 + 180, South},
		{NorthEast, 360 + 180, SouthWest},
		{West, 90, North},
		{South, -90, East},
		{NorthWest, 3 * 360, NorthWest},
	}
	for _, tc := range cases {
		if got := tc.c.Add(tc.deg); got != tc.want {
			t.Errorf("%s + %d: expected %s, got %s", tc.c, tc.deg, tc.want, got)
		}
	}
}

func TestCardinal_Predicates(t *testing.T) {
	type preds struct{ lat, lon, n, s, e, w, sub bool }
	want := map[Cardinal]preds{
		North:     {lat: true, n: true},
		NorthEast: {n: true, e: true, sub: true},
		East:      {lon: true, e: true},
		SouthEast: {s: true, e: true, sub: true},
		South:     {lat: true, s: true},
		SouthWest: {s: true, w: true, sub: true},
		West:      {lon: true, w: true},
		NorthWest: {n: true, w: true, sub: true},
	}
	for c, p := range want {
		got := preds{c.IsLatitude(), c.IsLongitude(), c.IsNorthern(), c.IsSouthern(), c.IsEastern(), c.IsWestern(), c.IsSubQuadrant()}
		if got != p {
			t.Errorf("%s: expected %+v, got %+v", c, p, got)
		}
	}
}

func TestCardinal_SameKind(t *testing.T) {
	if !North.SameKind(South) || !East.SameKind(West) {
		t.Fatalf("expected N/S and E/W to be the same kind")
	}
	if North.SameKind(East) {
		t.Fatalf("expected N and E to differ")
	}
	if NorthEast.SameKind(NorthEast) {
		t.Fatalf("diagonals belong to no axis")
	}
}

func TestCardinal_Default(t *testing.T) {
	var zero Cardinal
	if DefaultCardinal() != North || zero != North {
		t.Fatalf("expected North")
	}
}

func TestCardinal_Text(t *testing.T) {
	for _, c := range allCardinals {
		b, err := c.MarshalText()
		if err != nil {
			t.Fatalf("marshal %d: %v", c, err)
		}
		var back Cardinal
		if err := back.UnmarshalText(b); err != nil {
			t.Fatalf("unmarshal %q: %v", b, err)
		}
		if back != c {
			t.Fatalf("expected %s, got %s", c, back)
		}
	}

	var c Cardinal
	if err := c.UnmarshalText([]byte(" southWest ")); err != nil || c != SouthWest {
		t.Fatalf("expected SouthWest, got %s (%v)", c, err)
	}
	if err := c.UnmarshalText([]byte("up")); !errors.Is(err, ErrUnknownCardinal) {
		t.Fatalf("expected ErrUnknownCardinal, got %v", err)
	}
	if _, err := Cardinal(42).MarshalText(); !errors.Is(err, ErrUnknownCardinal) {
		t.Fatalf("expected ErrUnknownCardinal, got %v", err)
	}
}
