package coords

import (
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestPosition_JSONFields(t *testing.T) {
	b, err := json.Marshal(PositionFromDDeg(-33.5, 151.25, nil))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(b)
	for _, want := range []string{`"latitude":{`, `"longitude":{`, `"degrees":33`, `"minutes":30`, `"seconds":0`, `"cardinal":"S"`, `"cardinal":"E"`, `"altitude":null`} {
		if !strings.Contains(s, want) {
			t.Fatalf("expected %s in %s", want, s)
		}
	}

	b, err = json.Marshal(NewDMS(1, 2, 3))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(b), `"cardinal":null`) {
		t.Fatalf("expected null cardinal in %s", b)
	}
}

func TestPosition_JSONRoundTrip(t *testing.T) {
	in := PositionFromDDeg(40.730610, -73.935242, Alt(10))
	b, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out Position
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !out.Latitude.Equal(in.Latitude, 0) || !out.Longitude.Equal(in.Longitude, 0) {
		t.Fatalf("expected %s, got %s", in, out)
	}
	if out.Altitude == nil || *out.Altitude != 10 {
		t.Fatalf("expected altitude 10")
	}
}

func TestPosition_YAMLRoundTrip(t *testing.T) {
	in := PositionFromDDeg(-12.25, 45.5, nil)
	b, err := yaml.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(b), "cardinal: S") || !strings.Contains(string(b), "cardinal: E") {
		t.Fatalf("expected cardinals in\n%s", b)
	}
	var out Position
	if err := yaml.Unmarshal(b, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !out.Latitude.Equal(in.Latitude, 0) || !out.Longitude.Equal(in.Longitude, 0) || out.Altitude != nil {
		t.Fatalf("expected %s, got %s", in, out)
	}
}

func TestDMS_JSONUnknownCardinal(t *testing.T) {
	var d DMS
	err := json.Unmarshal([]byte(`{"degrees":1,"minutes":0,"seconds":0,"cardinal":"Q"}`), &d)
	if err == nil {
		t.Fatalf("expected error")
	}
}
