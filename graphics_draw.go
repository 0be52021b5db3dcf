package uigfx

import (
	"github.com/gogpu/uigfx/geom"
	"github.com/gogpu/uigfx/internal/debugcheck"
)

// DrawLine strokes a line from a to b.
func (g *Graphics) DrawLine(pen *Pen, a, b geom.PointD) {
	if debugcheck.Enabled {
		g.debugAssertPen(pen)
	}
	g.backend.DrawLine(pen, a, b)
}

// DrawLines strokes a polyline. Fewer than two points draw nothing.
func (g *Graphics) DrawLines(pen *Pen, points []geom.PointD) {
	if debugcheck.Enabled {
		g.debugAssertPen(pen)
	}
	if len(points) < 2 {
		return
	}
	g.backend.DrawLines(pen, points)
}

// DrawRectangle strokes the outline of r.
func (g *Graphics) DrawRectangle(pen *Pen, r geom.RectD) {
	if debugcheck.Enabled {
		g.debugAssertPen(pen)
	}
	g.backend.DrawRectangle(pen, r)
}

// DrawRectangles strokes several rectangles.
func (g *Graphics) DrawRectangles(pen *Pen, rects []geom.RectD) {
	for _, r := range rects {
		g.DrawRectangle(pen, r)
	}
}

// FillRectangle fills r.
func (g *Graphics) FillRectangle(brush Brush, r geom.RectD) {
	if debugcheck.Enabled {
		g.debugAssertBrush(brush)
	}
	if r.SizeIsEmpty() {
		return
	}
	g.backend.FillRectangle(brush, r)
}

// FillRectangles fills several rectangles.
func (g *Graphics) FillRectangles(brush Brush, rects []geom.RectD) {
	for _, r := range rects {
		g.FillRectangle(brush, r)
	}
}

// Rectangle fills r with brush and then strokes it with pen. Either may
// be nil to skip that step.
func (g *Graphics) Rectangle(pen *Pen, brush Brush, r geom.RectD) {
	if brush != nil {
		g.FillRectangle(brush, r)
	}
	if pen != nil {
		g.DrawRectangle(pen, r)
	}
}

// DrawEllipse strokes the ellipse inscribed in r.
func (g *Graphics) DrawEllipse(pen *Pen, r geom.RectD) {
	if debugcheck.Enabled {
		g.debugAssertPen(pen)
	}
	g.backend.DrawEllipse(pen, r)
}

// FillEllipse fills the ellipse inscribed in r.
func (g *Graphics) FillEllipse(brush Brush, r geom.RectD) {
	if debugcheck.Enabled {
		g.debugAssertBrush(brush)
	}
	if r.SizeIsEmpty() {
		return
	}
	g.backend.FillEllipse(brush, r)
}

// DrawCircle strokes a circle.
func (g *Graphics) DrawCircle(pen *Pen, center geom.PointD, radius Coord) {
	g.DrawEllipse(pen, circleRect(center, radius))
}

// FillCircle fills a circle.
func (g *Graphics) FillCircle(brush Brush, center geom.PointD, radius Coord) {
	g.FillEllipse(brush, circleRect(center, radius))
}

func circleRect(center geom.PointD, radius Coord) geom.RectD {
	return geom.Rect(center.X-radius, center.Y-radius, radius*2, radius*2)
}

// DrawPolygon strokes a closed polygon.
func (g *Graphics) DrawPolygon(pen *Pen, points []geom.PointD) {
	if debugcheck.Enabled {
		g.debugAssertPen(pen)
	}
	if len(points) < 2 {
		return
	}
	g.backend.DrawPolygon(pen, points)
}

// FillPolygon fills a closed polygon.
func (g *Graphics) FillPolygon(brush Brush, points []geom.PointD, mode FillMode) {
	if debugcheck.Enabled {
		g.debugAssertBrush(brush)
	}
	if len(points) < 3 {
		return
	}
	g.backend.FillPolygon(brush, points, mode)
}

// DrawPath strokes path.
func (g *Graphics) DrawPath(pen *Pen, path *Path) {
	if debugcheck.Enabled {
		g.debugAssertPen(pen)
	}
	if path == nil || path.IsEmpty() {
		return
	}
	g.backend.DrawPath(pen, path)
}

// FillPath fills path.
func (g *Graphics) FillPath(brush Brush, path *Path, mode FillMode) {
	if debugcheck.Enabled {
		g.debugAssertBrush(brush)
	}
	if path == nil || path.IsEmpty() {
		return
	}
	g.backend.FillPath(brush, path, mode)
}

// DrawArc strokes a circular arc. Angles are in degrees, clockwise from
// the positive X axis.
func (g *Graphics) DrawArc(pen *Pen, center geom.PointD, radius, startAngle, sweepAngle Coord) {
	if debugcheck.Enabled {
		g.debugAssertPen(pen)
	}
	if sweepAngle == 0 {
		return
	}
	if a, ok := g.backend.(ArcDrawer); ok {
		a.DrawArc(pen, center, radius, startAngle, sweepAngle)
		return
	}
	p := NewPath()
	p.Arc(center, radius, radius, startAngle, sweepAngle)
	g.backend.DrawPath(pen, p)
}

// DrawPie strokes the outline of a circular wedge.
func (g *Graphics) DrawPie(pen *Pen, center geom.PointD, radius, startAngle, sweepAngle Coord) {
	if debugcheck.Enabled {
		g.debugAssertPen(pen)
	}
	if sweepAngle == 0 {
		return
	}
	if a, ok := g.backend.(ArcDrawer); ok {
		a.DrawPie(pen, center, radius, startAngle, sweepAngle)
		return
	}
	g.backend.DrawPath(pen, piePath(center, radius, startAngle, sweepAngle))
}

// FillPie fills a circular wedge.
func (g *Graphics) FillPie(brush Brush, center geom.PointD, radius, startAngle, sweepAngle Coord) {
	if debugcheck.Enabled {
		g.debugAssertBrush(brush)
	}
	if sweepAngle == 0 {
		return
	}
	if a, ok := g.backend.(ArcDrawer); ok {
		a.FillPie(brush, center, radius, startAngle, sweepAngle)
		return
	}
	g.backend.FillPath(brush, piePath(center, radius, startAngle, sweepAngle), FillWinding)
}

func piePath(center geom.PointD, radius, startAngle, sweepAngle Coord) *Path {
	p := NewPath()
	p.Pie(circleRect(center, radius), startAngle, sweepAngle)
	return p
}

// DrawBezier strokes one cubic curve.
func (g *Graphics) DrawBezier(pen *Pen, start, c1, c2, end geom.PointD) {
	g.DrawBeziers(pen, []geom.PointD{start, c1, c2, end})
}

// DrawBeziers strokes connected cubic curves. points holds a start point
// followed by three points per curve, so its length must be 3n+1.
func (g *Graphics) DrawBeziers(pen *Pen, points []geom.PointD) {
	if debugcheck.Enabled {
		g.debugAssertPen(pen)
		g.debugAssertBezierPoints(len(points))
	}
	if len(points) < 4 {
		return
	}
	if b, ok := g.backend.(BezierDrawer); ok {
		b.DrawBeziers(pen, points)
		return
	}
	p := NewPath()
	p.Beziers(points)
	g.backend.DrawPath(pen, p)
}

// DrawRoundedRectangle strokes a rectangle with rounded corners.
func (g *Graphics) DrawRoundedRectangle(pen *Pen, r geom.RectD, radius Coord) {
	if debugcheck.Enabled {
		g.debugAssertPen(pen)
	}
	if radius <= 0 {
		g.backend.DrawRectangle(pen, r)
		return
	}
	if rr, ok := g.backend.(RoundedRectDrawer); ok {
		rr.DrawRoundedRectangle(pen, r, radius)
		return
	}
	p := NewPath()
	p.RoundedRectangle(r, radius)
	g.backend.DrawPath(pen, p)
}

// FillRoundedRectangle fills a rectangle with rounded corners.
func (g *Graphics) FillRoundedRectangle(brush Brush, r geom.RectD, radius Coord) {
	if debugcheck.Enabled {
		g.debugAssertBrush(brush)
	}
	if r.SizeIsEmpty() {
		return
	}
	if radius <= 0 {
		g.backend.FillRectangle(brush, r)
		return
	}
	if rr, ok := g.backend.(RoundedRectDrawer); ok {
		rr.FillRoundedRectangle(brush, r, radius)
		return
	}
	p := NewPath()
	p.RoundedRectangle(r, radius)
	g.backend.FillPath(brush, p, FillWinding)
}

// DrawImage draws img unscaled with its top-left corner at origin.
func (g *Graphics) DrawImage(img *Image, origin geom.PointD) {
	if debugcheck.Enabled {
		g.debugAssertImage(img)
	}
	g.backend.DrawImage(img, origin)
}

// DrawImageRect draws img scaled into dest.
func (g *Graphics) DrawImageRect(img *Image, dest geom.RectD) {
	if debugcheck.Enabled {
		g.debugAssertImage(img)
	}
	if dest.SizeIsEmpty() {
		return
	}
	g.backend.DrawImageRect(img, dest)
}

// DrawImagePortion draws the src pixel rectangle of img scaled into dest.
func (g *Graphics) DrawImagePortion(img *Image, dest, src geom.RectD) {
	if debugcheck.Enabled {
		g.debugAssertImage(img)
	}
	if dest.SizeIsEmpty() || src.SizeIsEmpty() {
		return
	}
	g.backend.DrawImagePortion(img, dest, src)
}

// GetPixel reads a device pixel. It returns ErrNotImplemented when the
// backend has no addressable pixels.
func (g *Graphics) GetPixel(x, y int) (Color, error) {
	p, ok := g.backend.(PixelAccessor)
	if !ok {
		return Color{}, ErrNotImplemented
	}
	return p.GetPixel(x, y), nil
}

// SetPixel writes a device pixel. It returns ErrNotImplemented when the
// backend has no addressable pixels.
func (g *Graphics) SetPixel(x, y int, c Color) error {
	p, ok := g.backend.(PixelAccessor)
	if !ok {
		return ErrNotImplemented
	}
	p.SetPixel(x, y, c)
	return nil
}
