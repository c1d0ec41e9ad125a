package coords

import (
	"fmt"
	"strings"
)

// Cardinal is one of the 8 compass directions.
// The zero value is North.
type Cardinal uint8

const (
	North Cardinal = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

var cardinalNames = [...]struct {
	abbrev string
	name   string
}{
	North:     {"N", "north"},
	NorthEast: {"NE", "northeast"},
	East:      {"E", "east"},
	SouthEast: {"SE", "southeast"},
	South:     {"S", "south"},
	SouthWest: {"SW", "southwest"},
	West:      {"W", "west"},
	NorthWest: {"NW", "northwest"},
}

// DefaultCardinal returns North.
func DefaultCardinal() Cardinal {
	return North
}

// CardinalFromAngle quantizes a compass angle in degrees into its 45° bucket.
// Any integer is accepted, it is reduced into [0,360) first.
func CardinalFromAngle(angle int) Cardinal {
	a := angle % 360
	if a < 0 {
		a += 360
	}
	return Cardinal(a / 45)
}

// ToAngle returns the compass angle of c in degrees.
func (c Cardinal) ToAngle() uint16 {
	return uint16(c%8) * 45
}

// Add rotates c clockwise by the given number of degrees.
func (c Cardinal) Add(degrees int) Cardinal {
	return CardinalFromAngle(int(c.ToAngle()) + degrees%360)
}

func (c Cardinal) IsLatitude() bool {
	return c == North || c == South
}

func (c Cardinal) IsLongitude() bool {
	return c == East || c == West
}

func (c Cardinal) IsNorthern() bool {
	return c == North || c == NorthEast || c == NorthWest
}

func (c Cardinal) IsSouthern() bool {
	return c == South || c == SouthEast || c == SouthWest
}

func (c Cardinal) IsEastern() bool {
	return c == East || c == NorthEast || c == SouthEast
}

func (c Cardinal) IsWestern() bool {
	return c == West || c == NorthWest || c == SouthWest
}

// IsSubQuadrant reports whether c is a diagonal direction like NE or SW.
func (c Cardinal) IsSubQuadrant() bool {
	return (c.ToAngle()/45)%2 == 1
}

// SameKind reports whether c and other are both latitude or both
// longitude cardinals.
func (c Cardinal) SameKind(other Cardinal) bool {
	return (c.IsLatitude() && other.IsLatitude()) ||
		(c.IsLongitude() && other.IsLongitude())
}

func (c Cardinal) String() string {
	if int(c) >= len(cardinalNames) {
		return fmt.Sprintf("Cardinal(%d)", uint8(c))
	}
	return cardinalNames[c].abbrev
}

func (c Cardinal) MarshalText() ([]byte, error) {
	if int(c) >= len(cardinalNames) {
		return nil, fmt.Errorf("%d: %w", uint8(c), ErrUnknownCardinal)
	}
	return []byte(cardinalNames[c].abbrev), nil
}

// UnmarshalText accepts abbreviations ("SW") and full names ("southwest"),
// case-insensitive.
func (c *Cardinal) UnmarshalText(text []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	for i, n := range cardinalNames {
		if s == strings.ToLower(n.abbrev) || s == n.name {
			*c = Cardinal(i)
			return nil
		}
	}
	return fmt.Errorf("%q: %w", string(text), ErrUnknownCardinal)
}

// ptr returns a pointer to a copy of c.
func (c Cardinal) ptr() *Cardinal {
	return &c
}
