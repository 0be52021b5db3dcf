package geom

// edgeClamp is an optional [min, max] range for one edge.
type edgeClamp struct {
	min, max       Coord
	hasMin, hasMax bool
}

func (c edgeClamp) apply(v Coord) Coord {
	if c.hasMin && v < c.min {
		v = c.min
	}
	if c.hasMax && v > c.max {
		v = c.max
	}
	return v
}

// Thickness holds the widths of the four edges of a frame, such as a
// border or padding. Each edge may carry its own min/max clamp; once set,
// every write to that edge is clamped into range. Clamps never affect
// other edges.
//
// The zero value is a zero thickness with no clamps.
type Thickness struct {
	left, top, right, bottom Coord

	clampLeft, clampTop, clampRight, clampBottom edgeClamp
}

// NewThickness creates a thickness from four edges.
func NewThickness(left, top, right, bottom Coord) Thickness {
	return Thickness{left: left, top: top, right: right, bottom: bottom}
}

// UniformThickness creates a thickness with all edges equal to v.
func UniformThickness(v Coord) Thickness {
	return NewThickness(v, v, v, v)
}

// Left returns the left edge.
func (t Thickness) Left() Coord { return t.left }

// Top returns the top edge.
func (t Thickness) Top() Coord { return t.top }

// Right returns the right edge.
func (t Thickness) Right() Coord { return t.right }

// Bottom returns the bottom edge.
func (t Thickness) Bottom() Coord { return t.bottom }

// SetLeft sets the left edge, applying its clamp.
func (t *Thickness) SetLeft(v Coord) { t.left = t.clampLeft.apply(v) }

// SetTop sets the top edge, applying its clamp.
func (t *Thickness) SetTop(v Coord) { t.top = t.clampTop.apply(v) }

// SetRight sets the right edge, applying its clamp.
func (t *Thickness) SetRight(v Coord) { t.right = t.clampRight.apply(v) }

// SetBottom sets the bottom edge, applying its clamp.
func (t *Thickness) SetBottom(v Coord) { t.bottom = t.clampBottom.apply(v) }

// SetAll sets all four edges, applying their clamps.
func (t *Thickness) SetAll(left, top, right, bottom Coord) {
	t.SetLeft(left)
	t.SetTop(top)
	t.SetRight(right)
	t.SetBottom(bottom)
}

// SetMinLeft sets the lower bound of the left edge and re-clamps it.
func (t *Thickness) SetMinLeft(v Coord) {
	t.clampLeft.min, t.clampLeft.hasMin = v, true
	t.SetLeft(t.left)
}

// SetMaxLeft sets the upper bound of the left edge and re-clamps it.
func (t *Thickness) SetMaxLeft(v Coord) {
	t.clampLeft.max, t.clampLeft.hasMax = v, true
	t.SetLeft(t.left)
}

// SetMinTop sets the lower bound of the top edge and re-clamps it.
func (t *Thickness) SetMinTop(v Coord) {
	t.clampTop.min, t.clampTop.hasMin = v, true
	t.SetTop(t.top)
}

// SetMaxTop sets the upper bound of the top edge and re-clamps it.
func (t *Thickness) SetMaxTop(v Coord) {
	t.clampTop.max, t.clampTop.hasMax = v, true
	t.SetTop(t.top)
}

// SetMinRight sets the lower bound of the right edge and re-clamps it.
func (t *Thickness) SetMinRight(v Coord) {
	t.clampRight.min, t.clampRight.hasMin = v, true
	t.SetRight(t.right)
}

// SetMaxRight sets the upper bound of the right edge and re-clamps it.
func (t *Thickness) SetMaxRight(v Coord) {
	t.clampRight.max, t.clampRight.hasMax = v, true
	t.SetRight(t.right)
}

// SetMinBottom sets the lower bound of the bottom edge and re-clamps it.
func (t *Thickness) SetMinBottom(v Coord) {
	t.clampBottom.min, t.clampBottom.hasMin = v, true
	t.SetBottom(t.bottom)
}

// SetMaxBottom sets the upper bound of the bottom edge and re-clamps it.
func (t *Thickness) SetMaxBottom(v Coord) {
	t.clampBottom.max, t.clampBottom.hasMax = v, true
	t.SetBottom(t.bottom)
}

// ClearClamps removes all min/max bounds. Edge values are kept.
func (t *Thickness) ClearClamps() {
	t.clampLeft = edgeClamp{}
	t.clampTop = edgeClamp{}
	t.clampRight = edgeClamp{}
	t.clampBottom = edgeClamp{}
}

// ApplyMin raises every edge to at least the matching edge of min.
// Per-edge clamps still apply afterwards.
func (t *Thickness) ApplyMin(min Thickness) {
	t.SetLeft(max(t.left, min.left))
	t.SetTop(max(t.top, min.top))
	t.SetRight(max(t.right, min.right))
	t.SetBottom(max(t.bottom, min.bottom))
}

// ApplyMinMax limits every edge to the range given by the matching edges
// of min and max.
func (t *Thickness) ApplyMinMax(min, max Thickness) {
	t.SetLeft(Clamp(t.left, min.left, max.left))
	t.SetTop(Clamp(t.top, min.top, max.top))
	t.SetRight(Clamp(t.right, min.right, max.right))
	t.SetBottom(Clamp(t.bottom, min.bottom, max.bottom))
}

// Horizontal returns Left + Right.
func (t Thickness) Horizontal() Coord { return t.left + t.right }

// Vertical returns Top + Bottom.
func (t Thickness) Vertical() Coord { return t.top + t.bottom }

// Size returns (Horizontal, Vertical).
func (t Thickness) Size() SizeD {
	return SizeD{Width: t.Horizontal(), Height: t.Vertical()}
}

// IsEmpty reports whether all four edges are zero.
func (t Thickness) IsEmpty() bool {
	return t.left == 0 && t.top == 0 && t.right == 0 && t.bottom == 0
}

// IsUniform reports whether all four edges are equal.
func (t Thickness) IsUniform() bool {
	return t.left == t.top && t.left == t.right && t.left == t.bottom
}

// Mul returns the edges multiplied by f. Clamps are not carried over.
func (t Thickness) Mul(f Coord) Thickness {
	return NewThickness(t.left*f, t.top*f, t.right*f, t.bottom*f)
}

// Equal reports whether the edges are equal. Clamps are ignored.
func (t Thickness) Equal(o Thickness) bool {
	return t.left == o.left && t.top == o.top && t.right == o.right && t.bottom == o.bottom
}
