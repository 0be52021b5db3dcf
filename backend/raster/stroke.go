package raster

import (
	"math"
	"slices"

	"github.com/gogpu/uigfx"
	"github.com/gogpu/uigfx/geom"
)

// miterLimit is the longest miter allowed, in pen half-widths.
const miterLimit = 4.0

type strokeStyle struct {
	width geom.Coord
	cap   uigfx.LineCap
	join  uigfx.LineJoin
	dash  []geom.Coord
}

// strokeStyle maps pen to device space. Pens of width zero or less draw
// one device pixel wide.
func (b *Backend) strokeStyle(pen *uigfx.Pen) strokeStyle {
	w := pen.Width * b.transform.ScaleFactor()
	if pen.Width <= 0 || w < 1 {
		w = 1
	}
	st := strokeStyle{width: w, cap: pen.Cap, join: pen.Join}
	for _, d := range pen.Dash.Pattern() {
		st.dash = append(st.dash, d*w)
	}
	return st
}

// strokePolygons outlines device-space polylines. Every returned polygon
// has positive orientation, so that the non-zero rule unions them.
func strokePolygons(figs []uigfx.Figure, st strokeStyle) [][]geom.PointD {
	var out [][]geom.PointD
	for _, f := range figs {
		pts := dedupe(f.Points)
		if len(pts) == 0 {
			continue
		}
		closed := f.Closed && len(pts) > 2
		if closed && pts[0].Distance(pts[len(pts)-1]) < 1e-9 {
			pts = pts[:len(pts)-1]
		}
		if len(st.dash) > 0 {
			for _, part := range dashPolyline(pts, closed, st.dash) {
				out = strokePolyline(out, part, false, st)
			}
			continue
		}
		out = strokePolyline(out, pts, closed, st)
	}
	return out
}

func dedupe(pts []geom.PointD) []geom.PointD {
	out := make([]geom.PointD, 0, len(pts))
	for _, p := range pts {
		if len(out) > 0 && out[len(out)-1].Distance(p) < 1e-9 {
			continue
		}
		out = append(out, p)
	}
	return out
}

func strokePolyline(out [][]geom.PointD, pts []geom.PointD, closed bool, st strokeStyle) [][]geom.PointD {
	hw := st.width / 2
	n := len(pts)
	if n == 1 {
		switch st.cap {
		case uigfx.LineCapRound:
			out = append(out, disc(pts[0], hw))
		case uigfx.LineCapSquare:
			c := pts[0]
			out = append(out, []geom.PointD{
				c.Offset(-hw, -hw), c.Offset(hw, -hw), c.Offset(hw, hw), c.Offset(-hw, hw),
			})
		}
		return out
	}

	segs := n - 1
	if closed {
		segs = n
	}
	for i := 0; i < segs; i++ {
		a, b := pts[i], pts[(i+1)%n]
		d := unit(b.Sub(a))
		if !closed && st.cap == uigfx.LineCapSquare {
			if i == 0 {
				a = a.Sub(d.Mul(hw))
			}
			if i == segs-1 {
				b = b.Add(d.Mul(hw))
			}
		}
		nv := perp(d).Mul(hw)
		out = append(out, orient([]geom.PointD{a.Add(nv), b.Add(nv), b.Sub(nv), a.Sub(nv)}))
	}

	for i := 0; i < n; i++ {
		if !closed && (i == 0 || i == n-1) {
			continue
		}
		out = appendJoin(out, pts[(i-1+n)%n], pts[i], pts[(i+1)%n], hw, st.join)
	}

	if !closed && st.cap == uigfx.LineCapRound {
		out = append(out, disc(pts[0], hw), disc(pts[n-1], hw))
	}
	return out
}

func appendJoin(out [][]geom.PointD, prev, v, next geom.PointD, hw geom.Coord, join uigfx.LineJoin) [][]geom.PointD {
	if join == uigfx.LineJoinRound {
		return append(out, disc(v, hw))
	}
	d1 := unit(v.Sub(prev))
	d2 := unit(next.Sub(v))
	if math.Abs(d1.X*d2.Y-d1.Y*d2.X) < 1e-12 {
		return out
	}
	n1, n2 := perp(d1).Mul(hw), perp(d2).Mul(hw)
	turn := d2.Sub(d1)
	if n1.X*turn.X+n1.Y*turn.Y > 0 {
		n1, n2 = n1.Neg(), n2.Neg()
	}
	cos := d1.X*d2.X + d1.Y*d2.Y
	if join == uigfx.LineJoinMiter && 1+cos > 2/(miterLimit*miterLimit) {
		tip := v.Add(n1.Add(n2).Div(1 + cos))
		return append(out, orient([]geom.PointD{v, v.Add(n1), tip, v.Add(n2)}))
	}
	return append(out, orient([]geom.PointD{v, v.Add(n1), v.Add(n2)}))
}

// dashPolyline splits a polyline into the "on" parts of pattern, which
// holds alternating on and off lengths starting with on.
func dashPolyline(pts []geom.PointD, closed bool, pattern []geom.Coord) [][]geom.PointD {
	for _, d := range pattern {
		if d <= 0 {
			return [][]geom.PointD{pts}
		}
	}
	if closed {
		pts = append(slices.Clip(pts), pts[0])
	}

	var parts [][]geom.PointD
	k, left, on := 0, pattern[0], true
	cur := []geom.PointD{pts[0]}
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		segLen := a.Distance(b)
		pos := 0.0
		for segLen-pos > left {
			pos += left
			p := a.Lerp(b, pos/segLen)
			if on {
				parts = append(parts, append(cur, p))
				cur = nil
			} else {
				cur = []geom.PointD{p}
			}
			on = !on
			k = (k + 1) % len(pattern)
			left = pattern[k]
		}
		left -= segLen - pos
		if on {
			cur = append(cur, b)
		}
	}
	if on && len(cur) > 1 {
		parts = append(parts, cur)
	}
	return parts
}

// disc approximates a circle with enough vertices to stay within a
// quarter pixel.
func disc(c geom.PointD, r geom.Coord) []geom.PointD {
	n := int(math.Ceil(math.Pi / math.Acos(math.Max(1-0.25/math.Max(r, 0.25), -1))))
	n = min(max(n, 8), 128)
	pts := make([]geom.PointD, n)
	for i := range pts {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(n))
		pts[i] = geom.Pt(c.X+r*cos, c.Y+r*sin)
	}
	return pts
}

func unit(v geom.PointD) geom.PointD {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Div(l)
}

func perp(v geom.PointD) geom.PointD {
	return geom.Pt(-v.Y, v.X)
}

// orient reverses poly in place if its signed area is negative.
func orient(poly []geom.PointD) []geom.PointD {
	var area geom.Coord
	for i, p := range poly {
		q := poly[(i+1)%len(poly)]
		area += p.X*q.Y - q.X*p.Y
	}
	if area < 0 {
		slices.Reverse(poly)
	}
	return poly
}
