package waypoint

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/gwbres/dms-coordinates/coords"
)

func TestGPXRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ny.gpx")
	ny := coords.PositionFromDDeg(40.730610, -73.935242, coords.Alt(10))
	if err := WriteGPX(path, ny); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := ReadGPX(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got == nil {
		t.Fatalf("expected a waypoint")
	}
	if d := got.Distance(ny); d > 0.5 {
		t.Fatalf("expected same place, %v m apart", d)
	}
	if got.Altitude == nil || math.Abs(*got.Altitude-10) > 1e-9 {
		t.Fatalf("expected altitude 10")
	}
}

func TestGPXNoAltitude(t *testing.T) {
	b, err := Marshal(coords.PositionFromDDeg(-33.8698439, 151.2082848, nil))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	got, err := Unmarshal(b)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Altitude != nil {
		t.Fatalf("expected no altitude, got %v", *got.Altitude)
	}
	if !got.Latitude.HasCardinal(coords.South) || !got.Longitude.HasCardinal(coords.East) {
		t.Fatalf("unexpected cardinals %s", got)
	}
}

func TestGPXWithoutWaypoint(t *testing.T) {
	doc := []byte(`<?xml version="1.0" encoding="UTF-8"?>
<gpx version="1.1" creator="test" xmlns="http://www.topografix.com/GPX/1/1"></gpx>`)
	got, err := Unmarshal(doc)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil, got %s", got)
	}
}

func TestReadGPX_Missing(t *testing.T) {
	if _, err := ReadGPX(filepath.Join(t.TempDir(), "missing.gpx")); err == nil {
		t.Fatalf("expected error")
	}
}
