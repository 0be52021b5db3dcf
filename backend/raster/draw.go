package raster

import (
	"image"

	"github.com/gogpu/uigfx"
	"github.com/gogpu/uigfx/geom"
)

// DrawLine implements uigfx.Stroker.
func (b *Backend) DrawLine(pen *uigfx.Pen, p1, p2 geom.PointD) {
	p := uigfx.NewPath()
	p.MoveTo(p1.X, p1.Y)
	p.LineTo(p2.X, p2.Y)
	b.strokePath(pen, p)
}

// DrawLines implements uigfx.Stroker.
func (b *Backend) DrawLines(pen *uigfx.Pen, points []geom.PointD) {
	p := uigfx.NewPath()
	p.Lines(points)
	b.strokePath(pen, p)
}

// DrawRectangle implements uigfx.Stroker.
func (b *Backend) DrawRectangle(pen *uigfx.Pen, r geom.RectD) {
	p := uigfx.NewPath()
	p.Rectangle(r)
	b.strokePath(pen, p)
}

// DrawEllipse implements uigfx.Stroker.
func (b *Backend) DrawEllipse(pen *uigfx.Pen, r geom.RectD) {
	p := uigfx.NewPath()
	p.Ellipse(r)
	b.strokePath(pen, p)
}

// DrawPolygon implements uigfx.Stroker.
func (b *Backend) DrawPolygon(pen *uigfx.Pen, points []geom.PointD) {
	p := uigfx.NewPath()
	p.Polygon(points)
	b.strokePath(pen, p)
}

// DrawPath implements uigfx.Stroker.
func (b *Backend) DrawPath(pen *uigfx.Pen, path *uigfx.Path) {
	b.strokePath(pen, path)
}

// FillRectangle implements uigfx.Filler.
func (b *Backend) FillRectangle(brush uigfx.Brush, r geom.RectD) {
	p := uigfx.NewPath()
	p.Rectangle(r)
	b.fillPath(brush, p)
}

// FillEllipse implements uigfx.Filler.
func (b *Backend) FillEllipse(brush uigfx.Brush, r geom.RectD) {
	p := uigfx.NewPath()
	p.Ellipse(r)
	b.fillPath(brush, p)
}

// FillPolygon implements uigfx.Filler. Both fill modes are rendered by
// the non-zero rule.
func (b *Backend) FillPolygon(brush uigfx.Brush, points []geom.PointD, _ uigfx.FillMode) {
	p := uigfx.NewPath()
	p.Polygon(points)
	b.fillPath(brush, p)
}

// FillPath implements uigfx.Filler. Both fill modes are rendered by the
// non-zero rule.
func (b *Backend) FillPath(brush uigfx.Brush, path *uigfx.Path, _ uigfx.FillMode) {
	b.fillPath(brush, path)
}

func (b *Backend) fillPath(brush uigfx.Brush, path *uigfx.Path) {
	src := b.source(brush)
	if src == nil || path.IsEmpty() {
		return
	}
	figs := path.Transform(b.transform).Flatten(flattenTolerance)
	polys := make([][]geom.PointD, 0, len(figs))
	for _, f := range figs {
		if len(f.Points) >= 3 {
			polys = append(polys, f.Points)
		}
	}
	b.paint(polys, src)
}

func (b *Backend) strokePath(pen *uigfx.Pen, path *uigfx.Path) {
	src := uniform(pen.Color)
	if src == nil || path.IsEmpty() {
		return
	}
	figs := path.Transform(b.transform).Flatten(flattenTolerance)
	b.paint(strokePolygons(figs, b.strokeStyle(pen)), src)
}

func (b *Backend) paint(polys [][]geom.PointD, src image.Image) {
	if len(polys) == 0 {
		return
	}
	if mask, r := b.coverage(polys); mask != nil {
		b.composite(mask, r, src)
	}
}
