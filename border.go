package uigfx

import (
	"github.com/gogpu/uigfx/geom"
)

// BorderSettings describes a rectangular border.
type BorderSettings struct {
	// Width holds the width of each edge.
	Width geom.Thickness

	// Color is used for edges without their own color.
	Color Color

	// Per-edge colors; empty ones fall back to Color.
	LeftColor, TopColor, RightColor, BottomColor Color

	// CornerRadius rounds the corners when all edges share width and
	// color.
	CornerRadius Coord

	// CornerRadiusIsPercent interprets CornerRadius as a percentage of
	// the smaller side of the border rectangle.
	CornerRadiusIsPercent bool
}

// UniformBorder creates a border with the same width and color on every
// edge.
func UniformBorder(width Coord, c Color) BorderSettings {
	return BorderSettings{Width: geom.UniformThickness(width), Color: c}
}

// Colors returns the effective left, top, right and bottom colors.
func (b BorderSettings) Colors() (left, top, right, bottom Color) {
	return b.LeftColor.Or(b.Color), b.TopColor.Or(b.Color),
		b.RightColor.Or(b.Color), b.BottomColor.Or(b.Color)
}

// IsUniform reports whether all edges share width and color.
func (b BorderSettings) IsUniform() bool {
	l, t, r, bt := b.Colors()
	return b.Width.IsUniform() && l == t && t == r && r == bt
}

// Radius returns the corner radius for r, clamped to half the smaller
// side.
func (b BorderSettings) Radius(r geom.RectD) Coord {
	limit := min(r.Width, r.Height) / 2
	radius := b.CornerRadius
	if b.CornerRadiusIsPercent {
		radius = min(r.Width, r.Height) * radius / 100
	}
	return max(0, min(radius, limit))
}

// ClientRect returns r without the border.
func (b BorderSettings) ClientRect(r geom.RectD) geom.RectD {
	return r.Deflate(b.Width)
}

// DrawBorder draws a border along the inside of rect. Uniform borders with
// a corner radius are stroked as a rounded rectangle; all other borders
// are filled edge by edge with the top and bottom edges spanning the full
// width.
func (g *Graphics) DrawBorder(rect geom.RectD, b BorderSettings) {
	if rect.SizeIsEmpty() || b.Width.IsEmpty() {
		return
	}
	if radius := b.Radius(rect); radius > 0 && b.IsUniform() {
		w := b.Width.Left()
		pen := NewPen(b.Color, w)
		g.DrawRoundedRectangle(pen, rect.Inflate(-w/2, -w/2), max(0, radius-w/2))
		return
	}

	left, top, right, bottom := b.Colors()
	wl, wt, wr, wb := b.Width.Left(), b.Width.Top(), b.Width.Right(), b.Width.Bottom()
	middle := rect.Height - wt - wb

	fill := func(c Color, r geom.RectD) {
		if c.IsVisible() && !r.SizeIsEmpty() {
			g.FillRectangle(NewSolidBrush(c), r)
		}
	}
	fill(top, geom.Rect(rect.X, rect.Y, rect.Width, wt))
	fill(bottom, geom.Rect(rect.X, rect.Bottom()-wb, rect.Width, wb))
	fill(left, geom.Rect(rect.X, rect.Y+wt, wl, middle))
	fill(right, geom.Rect(rect.Right()-wr, rect.Y+wt, wr, middle))
}

// FillBorderRectangle fills rect with brush and then draws the border on
// top.
func (g *Graphics) FillBorderRectangle(rect geom.RectD, brush Brush, b BorderSettings) {
	if brush != nil {
		if radius := b.Radius(rect); radius > 0 && b.IsUniform() {
			g.FillRoundedRectangle(brush, rect, radius)
		} else {
			g.FillRectangle(brush, rect)
		}
	}
	g.DrawBorder(rect, b)
}
