package uigfx

import (
	"io"

	"github.com/gogpu/uigfx/geom"
)

// Stroker draws outlines.
type Stroker interface {
	DrawLine(pen *Pen, a, b geom.PointD)
	DrawLines(pen *Pen, points []geom.PointD)
	DrawRectangle(pen *Pen, r geom.RectD)
	DrawEllipse(pen *Pen, r geom.RectD)
	DrawPolygon(pen *Pen, points []geom.PointD)
	DrawPath(pen *Pen, path *Path)
}

// Filler fills interiors.
type Filler interface {
	FillRectangle(brush Brush, r geom.RectD)
	FillEllipse(brush Brush, r geom.RectD)
	FillPolygon(brush Brush, points []geom.PointD, mode FillMode)
	FillPath(brush Brush, path *Path, mode FillMode)
}

// TextRenderer measures and draws single-line text. location is the
// top-left corner of the text box. An empty back color means no
// background.
type TextRenderer interface {
	GetTextExtent(text string, font *Font) geom.SizeD
	DrawText(text string, font *Font, fore, back Color, location geom.PointD)
}

// ImageDrawer blits images. Destination rectangles are in user
// coordinates, source rectangles in image pixels.
type ImageDrawer interface {
	DrawImage(img *Image, origin geom.PointD)
	DrawImageRect(img *Image, dest geom.RectD)
	DrawImagePortion(img *Image, dest, src geom.RectD)
}

// Backend is the set of primitives a surface must provide. Coordinates
// passed to drawing methods are user coordinates; the backend maps them
// through the matrix last given to SetHandlerTransform. Clip regions are
// in device coordinates.
//
// A Backend is driven by exactly one Graphics and never concurrently.
type Backend interface {
	Stroker
	Filler
	TextRenderer
	ImageDrawer

	// SetClip restricts drawing to region.
	SetClip(region *Region)

	// DestroyClip removes the clip.
	DestroyClip()

	// SetHandlerTransform is called whenever the effective transform of
	// the owning Graphics changes.
	SetHandlerTransform(m geom.TransformMatrix)

	// DPI returns the horizontal and vertical resolution.
	DPI() geom.SizeD

	io.Closer
}

// ArcDrawer is implemented by backends with native arcs and pies.
// Angles are in degrees, clockwise from the positive X axis.
type ArcDrawer interface {
	DrawArc(pen *Pen, center geom.PointD, radius, startAngle, sweepAngle Coord)
	DrawPie(pen *Pen, center geom.PointD, radius, startAngle, sweepAngle Coord)
	FillPie(brush Brush, center geom.PointD, radius, startAngle, sweepAngle Coord)
}

// BezierDrawer is implemented by backends with native cubic curves.
type BezierDrawer interface {
	DrawBeziers(pen *Pen, points []geom.PointD)
}

// RoundedRectDrawer is implemented by backends with native rounded
// rectangles.
type RoundedRectDrawer interface {
	DrawRoundedRectangle(pen *Pen, r geom.RectD, radius Coord)
	FillRoundedRectangle(brush Brush, r geom.RectD, radius Coord)
}

// PixelAccessor is implemented by backends with addressable device
// pixels.
type PixelAccessor interface {
	GetPixel(x, y int) Color
	SetPixel(x, y int, c Color)
}

// AntialiasSetter is implemented by backends that can toggle smoothing.
type AntialiasSetter interface {
	SetAntialias(on bool)
}

// InterpolationSetter is implemented by backends that support several
// image filters.
type InterpolationSetter interface {
	SetInterpolation(i Interpolation)
}
