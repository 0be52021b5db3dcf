package geom

import "math"

// Coord is the scalar used for all device-independent measurements.
// NaN is a valid value meaning "unset".
type Coord = float64

// Unset returns the "unset" sentinel (NaN).
func Unset() Coord {
	return math.NaN()
}

// IsUnset reports whether v is the "unset" sentinel.
func IsUnset(v Coord) bool {
	return math.IsNaN(v)
}

// PixelFromDip converts a DIP value to pixels, rounding away from zero.
func PixelFromDip(value, scaleFactor Coord) int {
	return int(math.Round(value * scaleFactor))
}

// PixelToDip converts a pixel value to DIPs.
func PixelToDip(value int, scaleFactor Coord) Coord {
	return Coord(value) / scaleFactor
}

// MidpointRounding selects how Round resolves values.
// The zero value rounds halves away from zero.
type MidpointRounding uint8

const (
	// AwayFromZero rounds halves away from zero (0.5 -> 1, -0.5 -> -1).
	AwayFromZero MidpointRounding = iota

	// ToEven rounds halves to the nearest even integer (0.5 -> 0, 1.5 -> 2).
	ToEven

	// ToZero truncates toward zero.
	ToZero

	// ToNegativeInfinity rounds down.
	ToNegativeInfinity

	// ToPositiveInfinity rounds up.
	ToPositiveInfinity
)

// String returns the name of the rounding mode.
func (m MidpointRounding) String() string {
	switch m {
	case AwayFromZero:
		return "AwayFromZero"
	case ToEven:
		return "ToEven"
	case ToZero:
		return "ToZero"
	case ToNegativeInfinity:
		return "ToNegativeInfinity"
	case ToPositiveInfinity:
		return "ToPositiveInfinity"
	default:
		return "Unknown"
	}
}

// RoundCoord rounds v to an integral value using mode.
func RoundCoord(v Coord, mode MidpointRounding) Coord {
	switch mode {
	case ToEven:
		return math.RoundToEven(v)
	case ToZero:
		return math.Trunc(v)
	case ToNegativeInfinity:
		return math.Floor(v)
	case ToPositiveInfinity:
		return math.Ceil(v)
	default:
		return math.Round(v)
	}
}

// Clamp limits v to [lo, hi]. Unset bounds are ignored.
func Clamp(v, lo, hi Coord) Coord {
	if !IsUnset(lo) && v < lo {
		v = lo
	}
	if !IsUnset(hi) && v > hi {
		v = hi
	}
	return v
}
