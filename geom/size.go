package geom

import "math"

// SizeD is a width/height pair in device-independent units.
// Either dimension may be negative during intermediate computation.
type SizeD struct {
	Width, Height Coord
}

// Sz is a convenience function to create a SizeD.
func Sz(w, h Coord) SizeD {
	return SizeD{Width: w, Height: h}
}

// IsEmpty reports whether either dimension is <= 0.
func (s SizeD) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// IsZero reports whether both dimensions are exactly zero.
func (s SizeD) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}

// WithWidth returns a copy with Width replaced.
func (s SizeD) WithWidth(w Coord) SizeD {
	s.Width = w
	return s
}

// WithHeight returns a copy with Height replaced.
func (s SizeD) WithHeight(h Coord) SizeD {
	s.Height = h
	return s
}

// Add returns the component-wise sum.
func (s SizeD) Add(o SizeD) SizeD {
	return SizeD{Width: s.Width + o.Width, Height: s.Height + o.Height}
}

// Sub returns the component-wise difference.
func (s SizeD) Sub(o SizeD) SizeD {
	return SizeD{Width: s.Width - o.Width, Height: s.Height - o.Height}
}

// Mul returns the size scaled by f.
func (s SizeD) Mul(f Coord) SizeD {
	return SizeD{Width: s.Width * f, Height: s.Height * f}
}

// Max returns the component-wise maximum.
func (s SizeD) Max(o SizeD) SizeD {
	return SizeD{Width: math.Max(s.Width, o.Width), Height: math.Max(s.Height, o.Height)}
}

// Min returns the component-wise minimum.
func (s SizeD) Min(o SizeD) SizeD {
	return SizeD{Width: math.Min(s.Width, o.Width), Height: math.Min(s.Height, o.Height)}
}

// Truncate converts to SizeI, rounding toward zero.
func (s SizeD) Truncate() SizeI {
	return SizeI{Width: int(s.Width), Height: int(s.Height)}
}

// Ceiling converts to SizeI, rounding up.
func (s SizeD) Ceiling() SizeI {
	return SizeI{Width: int(math.Ceil(s.Width)), Height: int(math.Ceil(s.Height))}
}

// Round converts to SizeI using mode for both dimensions.
func (s SizeD) Round(mode MidpointRounding) SizeI {
	return SizeI{Width: int(RoundCoord(s.Width, mode)), Height: int(RoundCoord(s.Height, mode))}
}

// PixelFromDip converts a DIP size to pixels, rounding away from zero.
func (s SizeD) PixelFromDip(scaleFactor Coord) SizeI {
	return SizeI{Width: PixelFromDip(s.Width, scaleFactor), Height: PixelFromDip(s.Height, scaleFactor)}
}

// SizeI is an integer width/height pair.
type SizeI struct {
	Width, Height int
}

// SzI is a convenience function to create a SizeI.
func SzI(w, h int) SizeI {
	return SizeI{Width: w, Height: h}
}

// IsEmpty reports whether either dimension is <= 0.
func (s SizeI) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// IsZero reports whether both dimensions are exactly zero.
func (s SizeI) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}

// WithWidth returns a copy with Width replaced.
func (s SizeI) WithWidth(w int) SizeI {
	s.Width = w
	return s
}

// WithHeight returns a copy with Height replaced.
func (s SizeI) WithHeight(h int) SizeI {
	s.Height = h
	return s
}

// ToSizeD converts to a double size without scaling.
func (s SizeI) ToSizeD() SizeD {
	return SizeD{Width: Coord(s.Width), Height: Coord(s.Height)}
}

// PixelToDip converts a pixel size to DIPs.
func (s SizeI) PixelToDip(scaleFactor Coord) SizeD {
	return SizeD{Width: PixelToDip(s.Width, scaleFactor), Height: PixelToDip(s.Height, scaleFactor)}
}
