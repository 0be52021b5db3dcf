package uigfx

import "github.com/gogpu/uigfx/geom"

// Coord is the scalar type of all drawing coordinates.
type Coord = geom.Coord

// DashStyle selects the dash pattern of a pen.
type DashStyle uint8

const (
	DashSolid DashStyle = iota
	DashDash
	DashDot
	DashDashDot
)

// Pattern returns the on/off lengths of the style in multiples of the pen
// width, or nil for a solid line.
func (d DashStyle) Pattern() []Coord {
	switch d {
	case DashDash:
		return []Coord{3, 1}
	case DashDot:
		return []Coord{1, 1}
	case DashDashDot:
		return []Coord{3, 1, 1, 1}
	default:
		return nil
	}
}

// LineCap specifies the shape of line endpoints.
type LineCap uint8

const (
	LineCapButt LineCap = iota
	LineCapRound
	LineCapSquare
)

// LineJoin specifies the shape of line joins.
type LineJoin uint8

const (
	LineJoinMiter LineJoin = iota
	LineJoinRound
	LineJoinBevel
)

// Pen describes how outlines are stroked.
type Pen struct {
	Color Color
	Width Coord
	Dash  DashStyle
	Cap   LineCap
	Join  LineJoin

	closed bool
}

// NewPen creates a solid pen. A width of zero or less draws hairlines.
func NewPen(c Color, width Coord) *Pen {
	return &Pen{Color: c, Width: width}
}

// Close releases the pen. Using a closed pen is a usage error.
func (p *Pen) Close() error {
	p.closed = true
	return nil
}

// IsClosed reports whether Close was called.
func (p *Pen) IsClosed() bool { return p.closed }

// Brush fills interiors. It is either a *SolidBrush or a *TextureBrush.
type Brush interface {
	IsClosed() bool
	Close() error
	isBrush()
}

// SolidBrush fills with a single color.
type SolidBrush struct {
	Color Color

	closed bool
}

// NewSolidBrush creates a solid brush.
func NewSolidBrush(c Color) *SolidBrush {
	return &SolidBrush{Color: c}
}

func (*SolidBrush) isBrush() {}

// Close releases the brush.
func (b *SolidBrush) Close() error {
	b.closed = true
	return nil
}

// IsClosed reports whether Close was called.
func (b *SolidBrush) IsClosed() bool { return b.closed }

// TextureBrush tiles an image. Origin is the user-space position of the
// image's top-left corner in the tiling grid.
type TextureBrush struct {
	Image  *Image
	Origin geom.PointD

	closed bool
}

// NewTextureBrush creates a brush tiling img from the user-space origin.
func NewTextureBrush(img *Image) *TextureBrush {
	return &TextureBrush{Image: img}
}

func (*TextureBrush) isBrush() {}

// Close releases the brush. The image stays open.
func (b *TextureBrush) Close() error {
	b.closed = true
	return nil
}

// IsClosed reports whether Close was called.
func (b *TextureBrush) IsClosed() bool { return b.closed }

// FillMode selects how self-intersecting figures are filled.
type FillMode uint8

const (
	// FillAlternate fills by the even-odd rule.
	FillAlternate FillMode = iota
	// FillWinding fills by the non-zero winding rule.
	FillWinding
)
