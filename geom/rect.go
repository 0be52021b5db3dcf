package geom

import "math"

// RectD is an axis-aligned rectangle in device-independent units.
// Right and Bottom are derived from X+Width and Y+Height.
type RectD struct {
	X, Y          Coord
	Width, Height Coord
}

// Rect is a convenience function to create a RectD.
func Rect(x, y, w, h Coord) RectD {
	return RectD{X: x, Y: y, Width: w, Height: h}
}

// RectFromLTRB creates a rectangle from its left, top, right and bottom edges.
func RectFromLTRB(left, top, right, bottom Coord) RectD {
	return RectD{X: left, Y: top, Width: right - left, Height: bottom - top}
}

// RectFromPoints creates a rectangle spanning two corner points.
func RectFromPoints(topLeft, bottomRight PointD) RectD {
	return RectFromLTRB(topLeft.X, topLeft.Y, bottomRight.X, bottomRight.Y)
}

// RectFromSize creates a rectangle at location with the given size.
func RectFromSize(location PointD, size SizeD) RectD {
	return RectD{X: location.X, Y: location.Y, Width: size.Width, Height: size.Height}
}

// Left returns X.
func (r RectD) Left() Coord { return r.X }

// Top returns Y.
func (r RectD) Top() Coord { return r.Y }

// Right returns X + Width.
func (r RectD) Right() Coord { return r.X + r.Width }

// Bottom returns Y + Height.
func (r RectD) Bottom() Coord { return r.Y + r.Height }

// Location returns the top-left corner.
func (r RectD) Location() PointD { return PointD{X: r.X, Y: r.Y} }

// Size returns the width and height.
func (r RectD) Size() SizeD { return SizeD{Width: r.Width, Height: r.Height} }

// TopLeft returns the top-left corner.
func (r RectD) TopLeft() PointD { return PointD{X: r.X, Y: r.Y} }

// TopRight returns the top-right corner.
func (r RectD) TopRight() PointD { return PointD{X: r.Right(), Y: r.Y} }

// BottomLeft returns the bottom-left corner.
func (r RectD) BottomLeft() PointD { return PointD{X: r.X, Y: r.Bottom()} }

// BottomRight returns the bottom-right corner.
func (r RectD) BottomRight() PointD { return PointD{X: r.Right(), Y: r.Bottom()} }

// Center returns the center point.
func (r RectD) Center() PointD {
	return PointD{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// IsEmpty reports whether all four fields are zero.
func (r RectD) IsEmpty() bool {
	return r.X == 0 && r.Y == 0 && r.Width == 0 && r.Height == 0
}

// SizeIsEmpty reports whether Width or Height is <= 0.
func (r RectD) SizeIsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// HasEmptyWidth reports whether Width is <= 0.
func (r RectD) HasEmptyWidth() bool { return r.Width <= 0 }

// HasEmptyHeight reports whether Height is <= 0.
func (r RectD) HasEmptyHeight() bool { return r.Height <= 0 }

// WithX returns a copy with X replaced.
func (r RectD) WithX(x Coord) RectD { r.X = x; return r }

// WithY returns a copy with Y replaced.
func (r RectD) WithY(y Coord) RectD { r.Y = y; return r }

// WithWidth returns a copy with Width replaced.
func (r RectD) WithWidth(w Coord) RectD { r.Width = w; return r }

// WithHeight returns a copy with Height replaced.
func (r RectD) WithHeight(h Coord) RectD { r.Height = h; return r }

// WithLocation returns a copy moved to p.
func (r RectD) WithLocation(p PointD) RectD {
	r.X, r.Y = p.X, p.Y
	return r
}

// WithSize returns a copy resized to s.
func (r RectD) WithSize(s SizeD) RectD {
	r.Width, r.Height = s.Width, s.Height
	return r
}

// Offset returns the rectangle moved by (dx, dy).
func (r RectD) Offset(dx, dy Coord) RectD {
	r.X += dx
	r.Y += dy
	return r
}

// Inflate grows the rectangle by dx on the left and right and by dy on
// the top and bottom. Negative values shrink it.
func (r RectD) Inflate(dx, dy Coord) RectD {
	return RectD{X: r.X - dx, Y: r.Y - dy, Width: r.Width + 2*dx, Height: r.Height + 2*dy}
}

// Deflate shrinks the rectangle by the edges of t.
func (r RectD) Deflate(t Thickness) RectD {
	return RectD{
		X:      r.X + t.Left(),
		Y:      r.Y + t.Top(),
		Width:  r.Width - t.Horizontal(),
		Height: r.Height - t.Vertical(),
	}
}

// Contains reports whether p lies inside the rectangle.
// The left and top edges are inclusive, the right and bottom exclusive.
func (r RectD) Contains(p PointD) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// ContainsRect reports whether o lies entirely inside r.
func (r RectD) ContainsRect(o RectD) bool {
	return o.X >= r.X && o.Right() <= r.Right() && o.Y >= r.Y && o.Bottom() <= r.Bottom()
}

// IntersectsWith reports whether the two rectangles overlap with a
// positive area.
func (r RectD) IntersectsWith(o RectD) bool {
	return o.X < r.Right() && r.X < o.Right() && o.Y < r.Bottom() && r.Y < o.Bottom()
}

// Intersect returns the overlapping area, or the zero rectangle when the
// two do not overlap.
func (r RectD) Intersect(o RectD) RectD {
	left := math.Max(r.X, o.X)
	top := math.Max(r.Y, o.Y)
	right := math.Min(r.Right(), o.Right())
	bottom := math.Min(r.Bottom(), o.Bottom())
	if right < left || bottom < top {
		return RectD{}
	}
	return RectFromLTRB(left, top, right, bottom)
}

// Union returns the smallest rectangle containing both.
func (r RectD) Union(o RectD) RectD {
	return RectFromLTRB(
		math.Min(r.X, o.X),
		math.Min(r.Y, o.Y),
		math.Max(r.Right(), o.Right()),
		math.Max(r.Bottom(), o.Bottom()),
	)
}

// Truncate converts to RectI, rounding every field toward zero.
func (r RectD) Truncate() RectI {
	return RectI{X: int(r.X), Y: int(r.Y), Width: int(r.Width), Height: int(r.Height)}
}

// Ceiling converts to RectI, rounding every field up.
func (r RectD) Ceiling() RectI {
	return RectI{
		X:      int(math.Ceil(r.X)),
		Y:      int(math.Ceil(r.Y)),
		Width:  int(math.Ceil(r.Width)),
		Height: int(math.Ceil(r.Height)),
	}
}

// Round converts to RectI, rounding X, Y, Width and Height independently
// with mode. Right and Bottom are not rounded, so the result may differ
// by one pixel from rounding the edges.
func (r RectD) Round(mode MidpointRounding) RectI {
	return RectI{
		X:      int(RoundCoord(r.X, mode)),
		Y:      int(RoundCoord(r.Y, mode)),
		Width:  int(RoundCoord(r.Width, mode)),
		Height: int(RoundCoord(r.Height, mode)),
	}
}

// PixelFromDip converts a DIP rectangle to pixels, rounding every field
// away from zero.
func (r RectD) PixelFromDip(scaleFactor Coord) RectI {
	return RectI{
		X:      PixelFromDip(r.X, scaleFactor),
		Y:      PixelFromDip(r.Y, scaleFactor),
		Width:  PixelFromDip(r.Width, scaleFactor),
		Height: PixelFromDip(r.Height, scaleFactor),
	}
}

// Mul returns the rectangle with every field multiplied by f.
func (r RectD) Mul(f Coord) RectD {
	return RectD{X: r.X * f, Y: r.Y * f, Width: r.Width * f, Height: r.Height * f}
}

// Div returns the rectangle with every field divided by f.
func (r RectD) Div(f Coord) RectD {
	return RectD{X: r.X / f, Y: r.Y / f, Width: r.Width / f, Height: r.Height / f}
}

// RectI is an integer rectangle, usually in physical pixels.
type RectI struct {
	X, Y          int
	Width, Height int
}

// RectInt is a convenience function to create a RectI.
func RectInt(x, y, w, h int) RectI {
	return RectI{X: x, Y: y, Width: w, Height: h}
}

// RectIFromLTRB creates an integer rectangle from its edges.
func RectIFromLTRB(left, top, right, bottom int) RectI {
	return RectI{X: left, Y: top, Width: right - left, Height: bottom - top}
}

// Right returns X + Width.
func (r RectI) Right() int { return r.X + r.Width }

// Bottom returns Y + Height.
func (r RectI) Bottom() int { return r.Y + r.Height }

// Location returns the top-left corner.
func (r RectI) Location() PointI { return PointI{X: r.X, Y: r.Y} }

// Size returns the width and height.
func (r RectI) Size() SizeI { return SizeI{Width: r.Width, Height: r.Height} }

// IsEmpty reports whether all four fields are zero.
func (r RectI) IsEmpty() bool {
	return r.X == 0 && r.Y == 0 && r.Width == 0 && r.Height == 0
}

// SizeIsEmpty reports whether Width or Height is <= 0.
func (r RectI) SizeIsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Offset returns the rectangle moved by (dx, dy).
func (r RectI) Offset(dx, dy int) RectI {
	r.X += dx
	r.Y += dy
	return r
}

// Inflate grows the rectangle by dx horizontally and dy vertically on each side.
func (r RectI) Inflate(dx, dy int) RectI {
	return RectI{X: r.X - dx, Y: r.Y - dy, Width: r.Width + 2*dx, Height: r.Height + 2*dy}
}

// Contains reports whether p lies inside the rectangle.
func (r RectI) Contains(p PointI) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// ContainsRect reports whether o lies entirely inside r.
func (r RectI) ContainsRect(o RectI) bool {
	return o.X >= r.X && o.Right() <= r.Right() && o.Y >= r.Y && o.Bottom() <= r.Bottom()
}

// Intersect returns the overlapping area, or the zero rectangle.
func (r RectI) Intersect(o RectI) RectI {
	left := max(r.X, o.X)
	top := max(r.Y, o.Y)
	right := min(r.Right(), o.Right())
	bottom := min(r.Bottom(), o.Bottom())
	if right < left || bottom < top {
		return RectI{}
	}
	return RectIFromLTRB(left, top, right, bottom)
}

// ToRectD converts to a double rectangle without scaling.
func (r RectI) ToRectD() RectD {
	return RectD{X: Coord(r.X), Y: Coord(r.Y), Width: Coord(r.Width), Height: Coord(r.Height)}
}

// PixelToDip converts a pixel rectangle to DIPs.
func (r RectI) PixelToDip(scaleFactor Coord) RectD {
	return r.ToRectD().Div(scaleFactor)
}
