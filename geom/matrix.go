package geom

import "math"

// TransformMatrix is a 2D affine transformation in row-vector convention:
//
//	x' = M11*x + M21*y + DX
//	y' = M12*x + M22*y + DY
//
// The zero value is not the identity; use Identity.
type TransformMatrix struct {
	M11, M12 Coord
	M21, M22 Coord
	DX, DY   Coord
}

// MatrixOrder selects on which side an operation is combined with an
// existing matrix.
type MatrixOrder uint8

const (
	// Prepend applies the new operation before the existing transform,
	// so it acts in local coordinates.
	Prepend MatrixOrder = iota

	// Append applies the new operation after the existing transform.
	Append
)

// Identity returns the identity transformation matrix.
func Identity() TransformMatrix {
	return TransformMatrix{M11: 1, M22: 1}
}

// NewTranslation creates a translation matrix.
func NewTranslation(dx, dy Coord) TransformMatrix {
	return TransformMatrix{M11: 1, M22: 1, DX: dx, DY: dy}
}

// NewScaling creates a scaling matrix.
func NewScaling(sx, sy Coord) TransformMatrix {
	return TransformMatrix{M11: sx, M22: sy}
}

// NewRotation creates a rotation matrix. The angle is in degrees; positive
// angles rotate clockwise on a y-down surface.
func NewRotation(degrees Coord) TransformMatrix {
	rad := degrees * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return TransformMatrix{M11: cos, M12: sin, M21: -sin, M22: cos}
}

// NewMatrix creates a matrix from its six elements.
func NewMatrix(m11, m12, m21, m22, dx, dy Coord) TransformMatrix {
	return TransformMatrix{M11: m11, M12: m12, M21: m21, M22: m22, DX: dx, DY: dy}
}

// Multiply returns the matrix that applies a first and then b.
func Multiply(a, b TransformMatrix) TransformMatrix {
	return TransformMatrix{
		M11: a.M11*b.M11 + a.M12*b.M21,
		M12: a.M11*b.M12 + a.M12*b.M22,
		M21: a.M21*b.M11 + a.M22*b.M21,
		M22: a.M21*b.M12 + a.M22*b.M22,
		DX:  a.DX*b.M11 + a.DY*b.M21 + b.DX,
		DY:  a.DX*b.M12 + a.DY*b.M22 + b.DY,
	}
}

// Combine multiplies m in place by o in the given order.
func (m *TransformMatrix) Combine(o TransformMatrix, order MatrixOrder) {
	if order == Append {
		*m = Multiply(*m, o)
		return
	}
	*m = Multiply(o, *m)
}

// Prepend applies o before m, in place.
func (m *TransformMatrix) Prepend(o TransformMatrix) { m.Combine(o, Prepend) }

// Append applies o after m, in place.
func (m *TransformMatrix) Append(o TransformMatrix) { m.Combine(o, Append) }

// Translate prepends a translation to m in place.
func (m *TransformMatrix) Translate(dx, dy Coord) {
	m.Combine(NewTranslation(dx, dy), Prepend)
}

// Scale prepends a scaling to m in place.
func (m *TransformMatrix) Scale(sx, sy Coord) {
	m.Combine(NewScaling(sx, sy), Prepend)
}

// Rotate prepends a rotation (degrees) to m in place.
func (m *TransformMatrix) Rotate(degrees Coord) {
	m.Combine(NewRotation(degrees), Prepend)
}

// Reset sets m to the identity in place.
func (m *TransformMatrix) Reset() {
	*m = Identity()
}

// TransformPoint applies the transformation to a point.
func (m TransformMatrix) TransformPoint(p PointD) PointD {
	return PointD{
		X: m.M11*p.X + m.M21*p.Y + m.DX,
		Y: m.M12*p.X + m.M22*p.Y + m.DY,
	}
}

// TransformVector applies the transformation to a vector (no translation).
func (m TransformMatrix) TransformVector(p PointD) PointD {
	return PointD{
		X: m.M11*p.X + m.M21*p.Y,
		Y: m.M12*p.X + m.M22*p.Y,
	}
}

// TransformSize applies the linear part of the transformation to a size.
func (m TransformMatrix) TransformSize(s SizeD) SizeD {
	v := m.TransformVector(PointD{X: s.Width, Y: s.Height})
	return SizeD{Width: v.X, Height: v.Y}
}

// TransformRect returns the axis-aligned bounds of the transformed rectangle.
func (m TransformMatrix) TransformRect(r RectD) RectD {
	if m.IsIdentity() {
		return r
	}
	p1 := m.TransformPoint(r.TopLeft())
	p2 := m.TransformPoint(r.TopRight())
	p3 := m.TransformPoint(r.BottomLeft())
	p4 := m.TransformPoint(r.BottomRight())
	return RectFromLTRB(
		math.Min(math.Min(p1.X, p2.X), math.Min(p3.X, p4.X)),
		math.Min(math.Min(p1.Y, p2.Y), math.Min(p3.Y, p4.Y)),
		math.Max(math.Max(p1.X, p2.X), math.Max(p3.X, p4.X)),
		math.Max(math.Max(p1.Y, p2.Y), math.Max(p3.Y, p4.Y)),
	)
}

// Determinant returns the determinant of the linear part.
func (m TransformMatrix) Determinant() Coord {
	return m.M11*m.M22 - m.M12*m.M21
}

// IsInvertible reports whether the matrix has an inverse.
func (m TransformMatrix) IsInvertible() bool {
	return math.Abs(m.Determinant()) >= 1e-10
}

// Invert returns the inverse matrix. The second result is false and the
// identity is returned when the matrix is not invertible.
func (m TransformMatrix) Invert() (TransformMatrix, bool) {
	det := m.Determinant()
	if math.Abs(det) < 1e-10 {
		return Identity(), false
	}
	inv := 1 / det
	return TransformMatrix{
		M11: m.M22 * inv,
		M12: -m.M12 * inv,
		M21: -m.M21 * inv,
		M22: m.M11 * inv,
		DX:  (m.M21*m.DY - m.M22*m.DX) * inv,
		DY:  (m.M12*m.DX - m.M11*m.DY) * inv,
	}, true
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m TransformMatrix) IsIdentity() bool {
	return m.M11 == 1 && m.M12 == 0 && m.M21 == 0 && m.M22 == 1 && m.DX == 0 && m.DY == 0
}

// IsTranslation returns true if the matrix is only a translation.
func (m TransformMatrix) IsTranslation() bool {
	return m.M11 == 1 && m.M12 == 0 && m.M21 == 0 && m.M22 == 1
}

// ScaleFactor returns the larger of the two axis scale factors.
// Used to pick line widths and font sizes under a transform.
func (m TransformMatrix) ScaleFactor() Coord {
	sx := math.Hypot(m.M11, m.M12)
	sy := math.Hypot(m.M21, m.M22)
	return math.Max(sx, sy)
}

// Elements returns M11, M12, M21, M22, DX, DY.
func (m TransformMatrix) Elements() [6]Coord {
	return [6]Coord{m.M11, m.M12, m.M21, m.M22, m.DX, m.DY}
}
