package uigfx

import (
	"slices"

	"github.com/gogpu/uigfx/geom"
)

// StyledText is text that knows how to measure and draw itself on a
// Graphics with a given font and colors.
type StyledText interface {
	Measure(g *Graphics, font *Font) geom.SizeD
	Draw(g *Graphics, location geom.PointD, font *Font, fore, back Color) geom.SizeD
}

// PlainText is a single line drawn as is.
type PlainText string

// Measure implements StyledText.
func (t PlainText) Measure(g *Graphics, font *Font) geom.SizeD {
	return g.MeasureText(string(t), font)
}

// Draw implements StyledText.
func (t PlainText) Draw(g *Graphics, location geom.PointD, font *Font, fore, back Color) geom.SizeD {
	g.DrawText(string(t), font, fore, back, location)
	return t.Measure(g, font)
}

// SimpleStyledText is a list of lines stacked vertically. Its measured
// size is cached per font and scale factor until Changed is called.
type SimpleStyledText struct {
	lines    []string
	distance Coord

	cacheFont  *Font
	cacheScale Coord
	cacheSize  geom.SizeD
	cacheValid bool
}

// NewSimpleStyledText creates styled text from lines.
func NewSimpleStyledText(lines ...string) *SimpleStyledText {
	return &SimpleStyledText{lines: lines}
}

// Lines returns the lines.
func (s *SimpleStyledText) Lines() []string { return s.lines }

// SetLines replaces the lines.
func (s *SimpleStyledText) SetLines(lines ...string) {
	s.lines = slices.Clone(lines)
	s.Changed()
}

// Distance returns the space between lines.
func (s *SimpleStyledText) Distance() Coord { return s.distance }

// SetDistance sets the space between lines.
func (s *SimpleStyledText) SetDistance(d Coord) {
	s.distance = d
	s.Changed()
}

// Changed drops the cached size.
func (s *SimpleStyledText) Changed() { s.cacheValid = false }

// Measure implements StyledText.
func (s *SimpleStyledText) Measure(g *Graphics, font *Font) geom.SizeD {
	font = g.fontOr(font)
	scale := g.ScaleFactor()
	if s.cacheValid && s.cacheFont == font && s.cacheScale == scale {
		return s.cacheSize
	}
	var size geom.SizeD
	for i, line := range s.lines {
		ls := g.measureLine(line, font)
		size.Width = max(size.Width, ls.Width)
		size.Height += ls.Height
		if i > 0 {
			size.Height += s.distance
		}
	}
	s.cacheFont, s.cacheScale, s.cacheSize, s.cacheValid = font, scale, size, true
	return size
}

// Draw implements StyledText.
func (s *SimpleStyledText) Draw(g *Graphics, location geom.PointD, font *Font, fore, back Color) geom.SizeD {
	font = g.fontOr(font)
	y := location.Y
	for _, line := range s.lines {
		g.DrawText(line, font, fore, back, geom.Pt(location.X, y))
		y += g.measureLine(line, font).Height + s.distance
	}
	return s.Measure(g, font)
}

// StyledTextWithFontAndColor overrides the font and colors given to
// Measure and Draw with its own when they are set.
type StyledTextWithFontAndColor struct {
	SimpleStyledText

	font       *Font
	fore, back Color
}

// NewStyledTextWithFontAndColor creates styled text. A nil font and empty
// colors defer to the values passed to Measure and Draw.
func NewStyledTextWithFontAndColor(font *Font, fore, back Color, lines ...string) *StyledTextWithFontAndColor {
	return &StyledTextWithFontAndColor{
		SimpleStyledText: SimpleStyledText{lines: lines},
		font:             font,
		fore:             fore,
		back:             back,
	}
}

// Font returns the own font, or nil.
func (s *StyledTextWithFontAndColor) Font() *Font { return s.font }

// SetFont sets the own font.
func (s *StyledTextWithFontAndColor) SetFont(f *Font) {
	s.font = f
	s.Changed()
}

// ForegroundColor returns the own text color.
func (s *StyledTextWithFontAndColor) ForegroundColor() Color { return s.fore }

// SetForegroundColor sets the own text color.
func (s *StyledTextWithFontAndColor) SetForegroundColor(c Color) { s.fore = c }

// BackgroundColor returns the own background color.
func (s *StyledTextWithFontAndColor) BackgroundColor() Color { return s.back }

// SetBackgroundColor sets the own background color.
func (s *StyledTextWithFontAndColor) SetBackgroundColor(c Color) { s.back = c }

func (s *StyledTextWithFontAndColor) resolveFont(font *Font) *Font {
	if s.font != nil {
		return s.font
	}
	return font
}

// Measure implements StyledText.
func (s *StyledTextWithFontAndColor) Measure(g *Graphics, font *Font) geom.SizeD {
	return s.SimpleStyledText.Measure(g, s.resolveFont(font))
}

// Draw implements StyledText. The text color falls back to Black when
// neither the own nor the given color is set.
func (s *StyledTextWithFontAndColor) Draw(g *Graphics, location geom.PointD, font *Font, fore, back Color) geom.SizeD {
	return s.SimpleStyledText.Draw(g, location,
		s.resolveFont(font), s.fore.Or(fore).Or(Black), s.back.Or(back))
}

// MeasureLines returns the size of items stacked vertically with distance
// between them.
func (g *Graphics) MeasureLines(items []StyledText, font *Font, distance Coord) geom.SizeD {
	var size geom.SizeD
	for i, item := range items {
		s := item.Measure(g, font)
		size.Width = max(size.Width, s.Width)
		size.Height += s.Height
		if i > 0 {
			size.Height += distance
		}
	}
	return size
}

// DrawStyledLines draws items stacked vertically from location and
// returns the covered size.
func (g *Graphics) DrawStyledLines(items []StyledText, font *Font, fore, back Color, location geom.PointD, distance Coord) geom.SizeD {
	y := location.Y
	var width Coord
	for _, item := range items {
		s := item.Draw(g, geom.Pt(location.X, y), font, fore, back)
		width = max(width, s.Width)
		y += s.Height + distance
	}
	if len(items) == 0 {
		return geom.SizeD{}
	}
	return geom.Sz(width, y-distance-location.Y)
}
