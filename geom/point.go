package geom

import "math"

// PointD is a point or vector in device-independent units.
type PointD struct {
	X, Y Coord
}

// Pt is a convenience function to create a PointD.
func Pt(x, y Coord) PointD {
	return PointD{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p PointD) Add(q PointD) PointD {
	return PointD{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p PointD) Sub(q PointD) PointD {
	return PointD{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p PointD) Mul(s Coord) PointD {
	return PointD{X: p.X * s, Y: p.Y * s}
}

// Div returns the point divided by a scalar.
func (p PointD) Div(s Coord) PointD {
	return PointD{X: p.X / s, Y: p.Y / s}
}

// Offset returns the point moved by (dx, dy).
func (p PointD) Offset(dx, dy Coord) PointD {
	return PointD{X: p.X + dx, Y: p.Y + dy}
}

// Neg returns the point with both components negated.
func (p PointD) Neg() PointD {
	return PointD{X: -p.X, Y: -p.Y}
}

// Length returns the distance from the origin.
func (p PointD) Length() Coord {
	return math.Hypot(p.X, p.Y)
}

// Distance returns the distance between two points.
func (p PointD) Distance(q PointD) Coord {
	return p.Sub(q).Length()
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q.
func (p PointD) Lerp(q PointD, t Coord) PointD {
	return PointD{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// IsUnset reports whether either component is NaN.
func (p PointD) IsUnset() bool {
	return IsUnset(p.X) || IsUnset(p.Y)
}

// ClampToMinMax limits X to [min.X, max.X] and Y to [min.Y, max.Y].
func (p PointD) ClampToMinMax(min, max PointD) PointD {
	return PointD{
		X: Clamp(p.X, min.X, max.X),
		Y: Clamp(p.Y, min.Y, max.Y),
	}
}

// Truncate converts to PointI, rounding toward zero.
func (p PointD) Truncate() PointI {
	return PointI{X: int(p.X), Y: int(p.Y)}
}

// Ceiling converts to PointI, rounding up.
func (p PointD) Ceiling() PointI {
	return PointI{X: int(math.Ceil(p.X)), Y: int(math.Ceil(p.Y))}
}

// Round converts to PointI using mode for both components.
func (p PointD) Round(mode MidpointRounding) PointI {
	return PointI{X: int(RoundCoord(p.X, mode)), Y: int(RoundCoord(p.Y, mode))}
}

// PixelFromDip converts a DIP point to pixels, rounding away from zero.
func (p PointD) PixelFromDip(scaleFactor Coord) PointI {
	return PointI{X: PixelFromDip(p.X, scaleFactor), Y: PixelFromDip(p.Y, scaleFactor)}
}

// PointI is an integer point, usually in physical pixels.
type PointI struct {
	X, Y int
}

// PtI is a convenience function to create a PointI.
func PtI(x, y int) PointI {
	return PointI{X: x, Y: y}
}

// Add returns the sum of two points.
func (p PointI) Add(q PointI) PointI {
	return PointI{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points.
func (p PointI) Sub(q PointI) PointI {
	return PointI{X: p.X - q.X, Y: p.Y - q.Y}
}

// Offset returns the point moved by (dx, dy).
func (p PointI) Offset(dx, dy int) PointI {
	return PointI{X: p.X + dx, Y: p.Y + dy}
}

// ToPointD converts to a double point without scaling.
func (p PointI) ToPointD() PointD {
	return PointD{X: Coord(p.X), Y: Coord(p.Y)}
}

// PixelToDip converts a pixel point to DIPs.
func (p PointI) PixelToDip(scaleFactor Coord) PointD {
	return PointD{X: PixelToDip(p.X, scaleFactor), Y: PixelToDip(p.Y, scaleFactor)}
}

// Packed returns both components packed into one int64: X in the low
// 32 bits and Y in the high 32 bits. Components outside the int32 range
// are truncated.
func (p PointI) Packed() int64 {
	return int64(uint32(int32(p.X))) | int64(int32(p.Y))<<32
}

// UnpackPointI is the inverse of PointI.Packed.
func UnpackPointI(v int64) PointI {
	return PointI{X: int(int32(uint32(v))), Y: int(int32(v >> 32))}
}
