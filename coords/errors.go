package coords

import "errors"

var (
	// ErrInvalidCardinalAxis is returned when a cardinal of the wrong axis is
	// supplied where a latitude (N/S) or longitude (E/W) one is required.
	ErrInvalidCardinalAxis = errors.New("invalid cardinal axis")

	// ErrMissingCardinal is returned when an angle needs a cardinal and has none.
	ErrMissingCardinal = errors.New("missing cardinal")

	// ErrIncompatibleCardinals is returned by arithmetic between two angles
	// whose cardinals belong to different axes.
	ErrIncompatibleCardinals = errors.New("incompatible cardinals")

	// ErrDegreesOutOfRange is returned by NewBoundedDMS for values outside
	// the range of their axis.
	ErrDegreesOutOfRange = errors.New("degrees out of range")

	// ErrUnknownCardinal is returned when decoding an unrecognized cardinal name.
	ErrUnknownCardinal = errors.New("unknown cardinal")
)
