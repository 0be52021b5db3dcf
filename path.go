package uigfx

import (
	"math"

	"github.com/gogpu/uigfx/geom"
)

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new figure at a point.
type MoveTo struct {
	Point geom.PointD
}

func (MoveTo) isPathElement() {}

// LineTo adds a straight segment.
type LineTo struct {
	Point geom.PointD
}

func (LineTo) isPathElement() {}

// QuadTo adds a quadratic Bezier segment.
type QuadTo struct {
	Control geom.PointD
	Point   geom.PointD
}

func (QuadTo) isPathElement() {}

// CubicTo adds a cubic Bezier segment.
type CubicTo struct {
	Control1 geom.PointD
	Control2 geom.PointD
	Point    geom.PointD
}

func (CubicTo) isPathElement() {}

// Close closes the current figure.
type Close struct{}

func (Close) isPathElement() {}

// Path is a sequence of figures in user coordinates. Backends without a
// native equivalent of an operation receive the operation as a Path.
type Path struct {
	elements []PathElement
	start    geom.PointD
	current  geom.PointD
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo starts a new figure at (x, y).
func (p *Path) MoveTo(x, y geom.Coord) {
	pt := geom.Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo adds a line from the current point to (x, y).
// On an empty path it behaves like MoveTo.
func (p *Path) LineTo(x, y geom.Coord) {
	if len(p.elements) == 0 {
		p.MoveTo(x, y)
		return
	}
	pt := geom.Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// QuadraticTo adds a quadratic Bezier curve.
func (p *Path) QuadraticTo(cx, cy, x, y geom.Coord) {
	pt := geom.Pt(x, y)
	p.elements = append(p.elements, QuadTo{Control: geom.Pt(cx, cy), Point: pt})
	p.current = pt
}

// CubicTo adds a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y geom.Coord) {
	pt := geom.Pt(x, y)
	p.elements = append(p.elements, CubicTo{
		Control1: geom.Pt(c1x, c1y),
		Control2: geom.Pt(c2x, c2y),
		Point:    pt,
	})
	p.current = pt
}

// Close closes the current figure by returning to its start point.
func (p *Path) Close() {
	if len(p.elements) == 0 {
		return
	}
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Clear removes all elements from the path.
func (p *Path) Clear() {
	p.elements = p.elements[:0]
	p.start = geom.PointD{}
	p.current = geom.PointD{}
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() geom.PointD {
	return p.current
}

// IsEmpty reports whether the path has no elements.
func (p *Path) IsEmpty() bool {
	return len(p.elements) == 0
}

// Transform returns a copy of the path with m applied to every point.
func (p *Path) Transform(m geom.TransformMatrix) *Path {
	result := NewPath()
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			pt := m.TransformPoint(e.Point)
			result.MoveTo(pt.X, pt.Y)
		case LineTo:
			pt := m.TransformPoint(e.Point)
			result.LineTo(pt.X, pt.Y)
		case QuadTo:
			ctrl := m.TransformPoint(e.Control)
			pt := m.TransformPoint(e.Point)
			result.QuadraticTo(ctrl.X, ctrl.Y, pt.X, pt.Y)
		case CubicTo:
			c1 := m.TransformPoint(e.Control1)
			c2 := m.TransformPoint(e.Control2)
			pt := m.TransformPoint(e.Point)
			result.CubicTo(c1.X, c1.Y, c2.X, c2.Y, pt.X, pt.Y)
		case Close:
			result.Close()
		}
	}
	return result
}

// Rectangle adds a closed rectangle figure.
func (p *Path) Rectangle(r geom.RectD) {
	p.MoveTo(r.X, r.Y)
	p.LineTo(r.Right(), r.Y)
	p.LineTo(r.Right(), r.Bottom())
	p.LineTo(r.X, r.Bottom())
	p.Close()
}

// Polygon adds a closed figure through points.
func (p *Path) Polygon(points []geom.PointD) {
	if len(points) == 0 {
		return
	}
	p.MoveTo(points[0].X, points[0].Y)
	for _, pt := range points[1:] {
		p.LineTo(pt.X, pt.Y)
	}
	p.Close()
}

// Lines adds an open polyline.
func (p *Path) Lines(points []geom.PointD) {
	if len(points) == 0 {
		return
	}
	p.MoveTo(points[0].X, points[0].Y)
	for _, pt := range points[1:] {
		p.LineTo(pt.X, pt.Y)
	}
}

// Beziers adds connected cubic curves. points holds a start point
// followed by three points per curve; trailing points that do not form a
// full curve are ignored.
func (p *Path) Beziers(points []geom.PointD) {
	if len(points) < 4 {
		return
	}
	p.MoveTo(points[0].X, points[0].Y)
	for i := 1; i+2 < len(points); i += 3 {
		c1, c2, end := points[i], points[i+1], points[i+2]
		p.CubicTo(c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y)
	}
}

// Ellipse adds an ellipse inscribed in r.
func (p *Path) Ellipse(r geom.RectD) {
	const k = 0.5522847498307936 // 4/3 * (sqrt(2) - 1)
	c := r.Center()
	rx, ry := r.Width/2, r.Height/2
	ox, oy := rx*k, ry*k

	p.MoveTo(c.X+rx, c.Y)
	p.CubicTo(c.X+rx, c.Y+oy, c.X+ox, c.Y+ry, c.X, c.Y+ry)
	p.CubicTo(c.X-ox, c.Y+ry, c.X-rx, c.Y+oy, c.X-rx, c.Y)
	p.CubicTo(c.X-rx, c.Y-oy, c.X-ox, c.Y-ry, c.X, c.Y-ry)
	p.CubicTo(c.X+ox, c.Y-ry, c.X+rx, c.Y-oy, c.X+rx, c.Y)
	p.Close()
}

// Arc adds an elliptical arc around center. Angles are in degrees,
// measured clockwise from the positive X axis; a negative sweep runs
// counter-clockwise. The arc is connected to the current figure with a
// line, or starts a new figure on an empty path.
func (p *Path) Arc(center geom.PointD, rx, ry, startAngle, sweepAngle geom.Coord) {
	if sweepAngle == 0 {
		return
	}
	sweepAngle = math.Max(-360, math.Min(360, sweepAngle))
	a1 := startAngle * math.Pi / 180
	total := sweepAngle * math.Pi / 180

	start := geom.Pt(center.X+rx*math.Cos(a1), center.Y+ry*math.Sin(a1))
	if len(p.elements) == 0 {
		p.MoveTo(start.X, start.Y)
	} else if p.current.Distance(start) > 1e-9 {
		p.LineTo(start.X, start.Y)
	}

	// At most 90 degrees per cubic segment.
	n := int(math.Ceil(math.Abs(total) / (math.Pi / 2)))
	step := total / geom.Coord(n)
	for i := 0; i < n; i++ {
		from := a1 + geom.Coord(i)*step
		p.arcSegment(center, rx, ry, from, from+step)
	}
}

// arcSegment adds a single elliptical arc segment of at most 90 degrees.
func (p *Path) arcSegment(c geom.PointD, rx, ry, a1, a2 geom.Coord) {
	alpha := math.Sin(a2-a1) * (math.Sqrt(4+3*math.Tan((a2-a1)/2)*math.Tan((a2-a1)/2)) - 1) / 3

	cos1, sin1 := math.Cos(a1), math.Sin(a1)
	cos2, sin2 := math.Cos(a2), math.Sin(a2)

	x1, y1 := c.X+rx*cos1, c.Y+ry*sin1
	x2, y2 := c.X+rx*cos2, c.Y+ry*sin2

	p.CubicTo(
		x1-alpha*rx*sin1, y1+alpha*ry*cos1,
		x2+alpha*rx*sin2, y2-alpha*ry*cos2,
		x2, y2)
}

// Pie adds a closed wedge of the ellipse inscribed in r.
func (p *Path) Pie(r geom.RectD, startAngle, sweepAngle geom.Coord) {
	c := r.Center()
	p.MoveTo(c.X, c.Y)
	p.Arc(c, r.Width/2, r.Height/2, startAngle, sweepAngle)
	p.Close()
}

// RoundedRectangle adds a rectangle with corners of the given radius.
// The radius is clamped to half of the smaller side.
func (p *Path) RoundedRectangle(r geom.RectD, radius geom.Coord) {
	radius = math.Min(radius, math.Min(r.Width, r.Height)/2)
	if radius <= 0 {
		p.Rectangle(r)
		return
	}
	x, y, w, h := r.X, r.Y, r.Width, r.Height

	p.MoveTo(x+radius, y)
	p.LineTo(x+w-radius, y)
	p.Arc(geom.Pt(x+w-radius, y+radius), radius, radius, -90, 90)
	p.LineTo(x+w, y+h-radius)
	p.Arc(geom.Pt(x+w-radius, y+h-radius), radius, radius, 0, 90)
	p.LineTo(x+radius, y+h)
	p.Arc(geom.Pt(x+radius, y+h-radius), radius, radius, 90, 90)
	p.LineTo(x, y+radius)
	p.Arc(geom.Pt(x+radius, y+radius), radius, radius, 180, 90)
	p.Close()
}

// Bounds returns the bounding box of all points of the path, control
// points included.
func (p *Path) Bounds() geom.RectD {
	first := true
	var minX, minY, maxX, maxY geom.Coord
	add := func(pt geom.PointD) {
		if first {
			minX, minY, maxX, maxY = pt.X, pt.Y, pt.X, pt.Y
			first = false
			return
		}
		minX, minY = math.Min(minX, pt.X), math.Min(minY, pt.Y)
		maxX, maxY = math.Max(maxX, pt.X), math.Max(maxY, pt.Y)
	}
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			add(e.Point)
		case LineTo:
			add(e.Point)
		case QuadTo:
			add(e.Control)
			add(e.Point)
		case CubicTo:
			add(e.Control1)
			add(e.Control2)
			add(e.Point)
		}
	}
	return geom.RectFromLTRB(minX, minY, maxX, maxY)
}

// Figure is a flattened subpath.
type Figure struct {
	Points []geom.PointD
	Closed bool
}

// Flatten converts the path into polylines. Curves are subdivided so that
// the chord deviation stays below tolerance.
func (p *Path) Flatten(tolerance geom.Coord) []Figure {
	if tolerance <= 0 {
		tolerance = 0.25
	}
	var figures []Figure
	var cur *Figure
	var last geom.PointD
	begin := func(pt geom.PointD) {
		figures = append(figures, Figure{Points: []geom.PointD{pt}})
		cur = &figures[len(figures)-1]
		last = pt
	}
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			begin(e.Point)
		case LineTo:
			if cur == nil {
				begin(last)
			}
			cur.Points = append(cur.Points, e.Point)
			last = e.Point
		case QuadTo:
			if cur == nil {
				begin(last)
			}
			n := curveSteps(last.Distance(e.Control)+e.Control.Distance(e.Point), tolerance)
			for i := 1; i <= n; i++ {
				t := geom.Coord(i) / geom.Coord(n)
				a := last.Lerp(e.Control, t)
				b := e.Control.Lerp(e.Point, t)
				cur.Points = append(cur.Points, a.Lerp(b, t))
			}
			last = e.Point
		case CubicTo:
			if cur == nil {
				begin(last)
			}
			n := curveSteps(last.Distance(e.Control1)+e.Control1.Distance(e.Control2)+e.Control2.Distance(e.Point), tolerance)
			for i := 1; i <= n; i++ {
				t := geom.Coord(i) / geom.Coord(n)
				cur.Points = append(cur.Points, cubicAt(last, e.Control1, e.Control2, e.Point, t))
			}
			last = e.Point
		case Close:
			if cur != nil {
				cur.Closed = true
				last = cur.Points[0]
				cur = nil
			}
		}
	}
	return figures
}

func curveSteps(length, tolerance geom.Coord) int {
	n := int(math.Ceil(math.Sqrt(length / tolerance)))
	return max(1, min(n, 256))
}

func cubicAt(p0, p1, p2, p3 geom.PointD, t geom.Coord) geom.PointD {
	u := 1 - t
	a := u * u * u
	b := 3 * u * u * t
	c := 3 * u * t * t
	d := t * t * t
	return geom.Pt(
		a*p0.X+b*p1.X+c*p2.X+d*p3.X,
		a*p0.Y+b*p1.Y+c*p2.Y+d*p3.Y)
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := NewPath()
	result.elements = make([]PathElement, len(p.elements))
	copy(result.elements, p.elements)
	result.start = p.start
	result.current = p.current
	return result
}
