package geom

// HorizontalAlignment positions an element along the X axis.
type HorizontalAlignment uint8

const (
	// AlignLeft places the element at the left edge.
	AlignLeft HorizontalAlignment = iota
	// AlignCenterH centers the element horizontally.
	AlignCenterH
	// AlignRight places the element at the right edge.
	AlignRight
	// AlignStretchH makes the element as wide as its container.
	AlignStretchH
)

// String returns the name of the alignment.
func (a HorizontalAlignment) String() string {
	switch a {
	case AlignLeft:
		return "Left"
	case AlignCenterH:
		return "Center"
	case AlignRight:
		return "Right"
	case AlignStretchH:
		return "Stretch"
	default:
		return "Unknown"
	}
}

// VerticalAlignment positions an element along the Y axis.
type VerticalAlignment uint8

const (
	// AlignTop places the element at the top edge.
	AlignTop VerticalAlignment = iota
	// AlignCenterV centers the element vertically.
	AlignCenterV
	// AlignBottom places the element at the bottom edge.
	AlignBottom
	// AlignStretchV makes the element as tall as its container.
	AlignStretchV
)

// String returns the name of the alignment.
func (a VerticalAlignment) String() string {
	switch a {
	case AlignTop:
		return "Top"
	case AlignCenterV:
		return "Center"
	case AlignBottom:
		return "Bottom"
	case AlignStretchV:
		return "Stretch"
	default:
		return "Unknown"
	}
}

// Alignment combines a horizontal and a vertical alignment.
type Alignment struct {
	H HorizontalAlignment
	V VerticalAlignment
}

// Centered aligns to the center on both axes.
var Centered = Alignment{H: AlignCenterH, V: AlignCenterV}

// TopLeft aligns to the top-left corner.
var TopLeft = Alignment{H: AlignLeft, V: AlignTop}

// alignSpan positions a span of length size inside [start, start+avail).
// It returns the new start and length.
func alignSpan(start, avail, size Coord, center, far, stretch bool) (Coord, Coord) {
	switch {
	case stretch:
		return start, avail
	case center:
		return start + (avail-size)/2, size
	case far:
		return start + avail - size, size
	default:
		return start, size
	}
}

// AlignRectInRect positions child inside container. Only the size of child
// is used. When shrink is true the child is first reduced so it fits.
func AlignRectInRect(child, container RectD, a Alignment, shrink bool) RectD {
	w, h := child.Width, child.Height
	if shrink {
		w = min(w, container.Width)
		h = min(h, container.Height)
	}
	x, w := alignSpan(container.X, container.Width, w,
		a.H == AlignCenterH, a.H == AlignRight, a.H == AlignStretchH)
	y, h := alignSpan(container.Y, container.Height, h,
		a.V == AlignCenterV, a.V == AlignBottom, a.V == AlignStretchV)
	return RectD{X: x, Y: y, Width: w, Height: h}
}

// AlignSizeInRect positions a rectangle of size s inside container.
func AlignSizeInRect(s SizeD, container RectD, a Alignment) RectD {
	return AlignRectInRect(RectD{Width: s.Width, Height: s.Height}, container, a, false)
}
