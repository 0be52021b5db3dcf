package uigfx

import (
	"slices"

	"github.com/gogpu/uigfx/geom"
)

// Region is an immutable union of rectangles in device coordinates.
// A nil *Region means "no clipping" wherever a region is accepted.
type Region struct {
	rects []geom.RectD
}

// NewRegion creates a region covering rects. Rectangles with an empty
// size are ignored.
func NewRegion(rects ...geom.RectD) *Region {
	r := &Region{}
	for _, rect := range rects {
		if !rect.SizeIsEmpty() {
			r.rects = append(r.rects, rect)
		}
	}
	return r
}

// Rects returns a copy of the rectangles making up the region.
func (r *Region) Rects() []geom.RectD {
	if r == nil {
		return nil
	}
	return slices.Clone(r.rects)
}

// IsEmpty reports whether the region covers no area. A nil region is
// unbounded and therefore not empty.
func (r *Region) IsEmpty() bool {
	return r != nil && len(r.rects) == 0
}

// Bounds returns the smallest rectangle containing the region.
func (r *Region) Bounds() geom.RectD {
	if r == nil || len(r.rects) == 0 {
		return geom.RectD{}
	}
	b := r.rects[0]
	for _, rect := range r.rects[1:] {
		b = b.Union(rect)
	}
	return b
}

// Contains reports whether p lies inside the region.
func (r *Region) Contains(p geom.PointD) bool {
	if r == nil {
		return true
	}
	for _, rect := range r.rects {
		if rect.Contains(p) {
			return true
		}
	}
	return false
}

// Union returns a region covering r and rect.
func (r *Region) Union(rect geom.RectD) *Region {
	if r == nil {
		return nil
	}
	return NewRegion(append(r.Rects(), rect)...)
}

// IntersectRect returns the part of r inside rect.
func (r *Region) IntersectRect(rect geom.RectD) *Region {
	if r == nil {
		return NewRegion(rect)
	}
	out := &Region{}
	for _, a := range r.rects {
		if c := a.Intersect(rect); !c.SizeIsEmpty() {
			out.rects = append(out.rects, c)
		}
	}
	return out
}

// Intersect returns the part of r inside o. A nil operand leaves the
// other unchanged.
func (r *Region) Intersect(o *Region) *Region {
	switch {
	case r == nil:
		return o
	case o == nil:
		return r
	}
	out := &Region{}
	for _, b := range o.rects {
		out.rects = append(out.rects, r.IntersectRect(b).rects...)
	}
	return out
}

// Translate returns the region moved by (dx, dy).
func (r *Region) Translate(dx, dy Coord) *Region {
	if r == nil {
		return nil
	}
	out := &Region{rects: make([]geom.RectD, len(r.rects))}
	for i, rect := range r.rects {
		out.rects[i] = rect.Offset(dx, dy)
	}
	return out
}

// Equal reports whether both regions consist of the same rectangles in
// the same order.
func (r *Region) Equal(o *Region) bool {
	if r == nil || o == nil {
		return r == o
	}
	return slices.Equal(r.rects, o.rects)
}
