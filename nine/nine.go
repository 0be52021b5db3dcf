// Package nine partitions a container rectangle around an inner patch
// rectangle into nine parts (four corners, four edges and the center).
// It is the geometry behind nine-slice image drawing and scalable borders.
//
//	+----------+-------------+-----------+
//	| TopLeft  |  TopCenter  | TopRight  |
//	+----------+-------------+-----------+
//	|CenterLeft|   Center    |CenterRight|
//	|          |  (= patch)  |           |
//	+----------+-------------+-----------+
//	|BottomLeft|BottomCenter |BottomRight|
//	+----------+-------------+-----------+
//
// The patch shares the container's coordinate space; it is not relative to
// the container's origin. Parts are built from edges with
// geom.RectFromLTRB, so for a patch inside the container they tile it
// exactly.
package nine

import (
	"fmt"
	"math/bits"

	"github.com/gogpu/uigfx/geom"
)

// Part selects one or more of the nine parts.
type Part uint16

// Individual parts in canonical order.
const (
	TopLeft Part = 1 << iota
	TopCenter
	TopRight
	CenterLeft
	Center
	CenterRight
	BottomLeft
	BottomCenter
	BottomRight
)

// Part groups.
const (
	Corners = TopLeft | TopRight | BottomLeft | BottomRight
	Edges   = TopCenter | CenterLeft | CenterRight | BottomCenter
	Outer   = Corners | Edges
	All     = Outer | Center
)

// canonical lists the parts in the order used for every returned slice.
var canonical = [9]Part{
	TopLeft, TopCenter, TopRight,
	CenterLeft, Center, CenterRight,
	BottomLeft, BottomCenter, BottomRight,
}

var partNames = map[Part]string{
	TopLeft:      "TopLeft",
	TopCenter:    "TopCenter",
	TopRight:     "TopRight",
	CenterLeft:   "CenterLeft",
	Center:       "Center",
	CenterRight:  "CenterRight",
	BottomLeft:   "BottomLeft",
	BottomCenter: "BottomCenter",
	BottomRight:  "BottomRight",
}

// String returns the name of a single part, or "Part(0x..)" for groups.
func (p Part) String() string {
	if name, ok := partNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Part(%#x)", uint16(p))
}

// Count returns how many parts are selected.
func (p Part) Count() int {
	return bits.OnesCount16(uint16(p & All))
}

// Rects holds a container and a patch and derives the nine parts on demand.
// ScaleFactor converts the pixel-valued parts to DIPs in the Scaled
// methods; it is 1 unless set by NewScaled.
type Rects struct {
	Container   geom.RectD
	Patch       geom.RectD
	ScaleFactor geom.Coord
}

// New creates nine rects with a scale factor of 1.
func New(container, patch geom.RectD) Rects {
	return Rects{Container: container, Patch: patch, ScaleFactor: 1}
}

// NewI creates nine rects from pixel rectangles with a scale factor of 1.
func NewI(container, patch geom.RectI) Rects {
	return New(container.ToRectD(), patch.ToRectD())
}

// NewScaled creates nine rects from pixel rectangles whose Scaled values
// are divided by scaleFactor.
func NewScaled(container, patch geom.RectD, scaleFactor geom.Coord) Rects {
	return Rects{Container: container, Patch: patch, ScaleFactor: scaleFactor}
}

// NewFromDip converts DIP rectangles to pixels at scaleFactor and keeps
// the factor so Scaled returns DIPs again.
func NewFromDip(container, patch geom.RectD, scaleFactor geom.Coord) Rects {
	return NewScaled(
		container.PixelFromDip(scaleFactor).ToRectD(),
		patch.PixelFromDip(scaleFactor).ToRectD(),
		scaleFactor,
	)
}

func (r Rects) scale() geom.Coord {
	if r.ScaleFactor == 0 {
		return 1
	}
	return r.ScaleFactor
}

// TopLeft spans from the container's top-left corner to the patch's.
func (r Rects) TopLeft() geom.RectD {
	return geom.RectFromLTRB(r.Container.X, r.Container.Y, r.Patch.X, r.Patch.Y)
}

// TopCenter lies above the patch.
func (r Rects) TopCenter() geom.RectD {
	return geom.RectFromLTRB(r.Patch.X, r.Container.Y, r.Patch.Right(), r.Patch.Y)
}

// TopRight spans from the patch's top-right corner to the container's.
func (r Rects) TopRight() geom.RectD {
	return geom.RectFromLTRB(r.Patch.Right(), r.Container.Y, r.Container.Right(), r.Patch.Y)
}

// CenterLeft lies left of the patch.
func (r Rects) CenterLeft() geom.RectD {
	return geom.RectFromLTRB(r.Container.X, r.Patch.Y, r.Patch.X, r.Patch.Bottom())
}

// Center is the patch itself.
func (r Rects) Center() geom.RectD {
	return r.Patch
}

// CenterRight lies right of the patch.
func (r Rects) CenterRight() geom.RectD {
	return geom.RectFromLTRB(r.Patch.Right(), r.Patch.Y, r.Container.Right(), r.Patch.Bottom())
}

// BottomLeft spans from the patch's bottom-left corner to the container's.
func (r Rects) BottomLeft() geom.RectD {
	return geom.RectFromLTRB(r.Container.X, r.Patch.Bottom(), r.Patch.X, r.Container.Bottom())
}

// BottomCenter lies below the patch.
func (r Rects) BottomCenter() geom.RectD {
	return geom.RectFromLTRB(r.Patch.X, r.Patch.Bottom(), r.Patch.Right(), r.Container.Bottom())
}

// BottomRight spans from the patch's bottom-right corner to the container's.
func (r Rects) BottomRight() geom.RectD {
	return geom.RectFromLTRB(r.Patch.Right(), r.Patch.Bottom(), r.Container.Right(), r.Container.Bottom())
}

// TopRect is the full-width strip above the patch.
func (r Rects) TopRect() geom.RectD {
	return geom.RectFromLTRB(r.Container.X, r.Container.Y, r.Container.Right(), r.Patch.Y)
}

// BottomRect is the full-width strip below the patch.
func (r Rects) BottomRect() geom.RectD {
	return geom.RectFromLTRB(r.Container.X, r.Patch.Bottom(), r.Container.Right(), r.Container.Bottom())
}

// LeftRect is the full-height strip left of the patch.
func (r Rects) LeftRect() geom.RectD {
	return geom.RectFromLTRB(r.Container.X, r.Container.Y, r.Patch.X, r.Container.Bottom())
}

// RightRect is the full-height strip right of the patch.
func (r Rects) RightRect() geom.RectD {
	return geom.RectFromLTRB(r.Patch.Right(), r.Container.Y, r.Container.Right(), r.Container.Bottom())
}

// IsTopRectLarger reports whether there is more room above the patch than
// below it.
func (r Rects) IsTopRectLarger() bool {
	return r.TopRect().Height > r.BottomRect().Height
}

// IsLeftRectLarger reports whether there is more room left of the patch
// than right of it.
func (r Rects) IsLeftRectLarger() bool {
	return r.LeftRect().Width > r.RightRect().Width
}

// GetPart returns a single part. Passing a group or zero returns the zero
// rectangle.
func (r Rects) GetPart(p Part) geom.RectD {
	switch p {
	case TopLeft:
		return r.TopLeft()
	case TopCenter:
		return r.TopCenter()
	case TopRight:
		return r.TopRight()
	case CenterLeft:
		return r.CenterLeft()
	case Center:
		return r.Center()
	case CenterRight:
		return r.CenterRight()
	case BottomLeft:
		return r.BottomLeft()
	case BottomCenter:
		return r.BottomCenter()
	case BottomRight:
		return r.BottomRight()
	default:
		return geom.RectD{}
	}
}

// GetParts returns the selected parts in canonical order
// (TL, TC, TR, CL, C, CR, BL, BC, BR), whatever order the flags were
// combined in.
func (r Rects) GetParts(flags Part) []geom.RectD {
	result := make([]geom.RectD, 0, flags.Count())
	for _, p := range canonical {
		if flags&p != 0 {
			result = append(result, r.GetPart(p))
		}
	}
	return result
}

// All returns the nine parts in canonical order.
func (r Rects) All() [9]geom.RectD {
	var result [9]geom.RectD
	for i, p := range canonical {
		result[i] = r.GetPart(p)
	}
	return result
}

// Each calls fn for every selected part in canonical order.
func (r Rects) Each(flags Part, fn func(p Part, rect geom.RectD)) {
	for _, p := range canonical {
		if flags&p != 0 {
			fn(p, r.GetPart(p))
		}
	}
}

// OuterRectsInsideContainer returns the outer parts (all but Center) that
// lie entirely inside bounds, in canonical order.
func (r Rects) OuterRectsInsideContainer(bounds geom.RectD) []geom.RectD {
	var result []geom.RectD
	r.Each(Outer, func(_ Part, rect geom.RectD) {
		if bounds.ContainsRect(rect) {
			result = append(result, rect)
		}
	})
	return result
}

// OuterRectInsideContainer returns the first outer part, in canonical
// order, that lies entirely inside bounds.
func (r Rects) OuterRectInsideContainer(bounds geom.RectD) (geom.RectD, Part, bool) {
	for _, p := range canonical {
		if p == Center {
			continue
		}
		rect := r.GetPart(p)
		if bounds.ContainsRect(rect) {
			return rect, p, true
		}
	}
	return geom.RectD{}, 0, false
}

// Scaled returns the rects divided by the scale factor, with a scale
// factor of 1.
func (r Rects) Scaled() Rects {
	s := r.scale()
	return New(r.Container.Div(s), r.Patch.Div(s))
}

// ScaledPart returns a single part divided by the scale factor.
func (r Rects) ScaledPart(p Part) geom.RectD {
	return r.GetPart(p).Div(r.scale())
}

// PixelPart returns a single part truncated to integer pixels.
func (r Rects) PixelPart(p Part) geom.RectI {
	return r.GetPart(p).Truncate()
}
