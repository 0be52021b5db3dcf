package uigfx

import (
	"github.com/gogpu/uigfx/geom"
	"github.com/gogpu/uigfx/internal/debugcheck"
	"github.com/gogpu/uigfx/units"
)

// Graphics is a drawing context over a Backend. It owns a transform stack
// and a clip stack and implements composite drawing operations on top of
// the backend primitives.
//
// Graphics values are created by a Factory and must be closed.
type Graphics struct {
	factory *Factory
	backend Backend
	typ     units.GraphicsType
	name    string

	// scaleFactor overrides the configured and DPI derived scale when
	// positive.
	scaleFactor Coord
	antialias   bool
	interp      Interpolation

	transform  geom.TransformMatrix
	transforms []geom.TransformMatrix

	clip  *Region
	clips []*Region

	document *GraphicsDocument
	closed   bool
}

func newGraphics(f *Factory, b Backend, typ units.GraphicsType) *Graphics {
	g := &Graphics{
		factory:   f,
		backend:   b,
		typ:       typ,
		transform: geom.Identity(),
	}
	g.SetAntialias(f.config.Antialias)
	g.SetInterpolation(f.config.Interpolation)
	Logger().Debug("uigfx: graphics created", "type", typ, "dpi", b.DPI(), "native", capabilities(b))
	return g
}

// capabilities lists the optional interfaces b implements. Missing ones
// are emulated with paths.
func capabilities(b Backend) []string {
	var caps []string
	if _, ok := b.(ArcDrawer); ok {
		caps = append(caps, "arc")
	}
	if _, ok := b.(BezierDrawer); ok {
		caps = append(caps, "bezier")
	}
	if _, ok := b.(RoundedRectDrawer); ok {
		caps = append(caps, "roundrect")
	}
	if _, ok := b.(PixelAccessor); ok {
		caps = append(caps, "pixels")
	}
	return caps
}

// Backend returns the underlying backend.
func (g *Graphics) Backend() Backend { return g.backend }

// Factory returns the factory that created the Graphics.
func (g *Graphics) Factory() *Factory { return g.factory }

// Type returns the kind of surface the Graphics draws to.
func (g *Graphics) Type() units.GraphicsType { return g.typ }

// Name returns the debugging name.
func (g *Graphics) Name() string { return g.name }

// SetName sets a name shown in logs.
func (g *Graphics) SetName(name string) { g.name = name }

// DPI returns the backend resolution.
func (g *Graphics) DPI() geom.SizeD { return g.backend.DPI() }

// ScaleFactor returns the ratio of device pixels to DIPs. It is the
// configured scale factor when set, else the horizontal DPI divided by 96.
func (g *Graphics) ScaleFactor() Coord {
	if g.scaleFactor > 0 {
		return g.scaleFactor
	}
	if s := g.factory.config.ScaleFactor; s > 0 {
		return s
	}
	if dpi := g.backend.DPI().Width; dpi > 0 {
		return dpi / 96
	}
	return 1
}

// Units returns a converter for the resolution of this Graphics.
func (g *Graphics) Units() units.Converter {
	return units.NewConverter(g.DPI().Width, g.typ)
}

// DefaultFont returns the factory default font.
func (g *Graphics) DefaultFont() *Font { return g.factory.defaultFont }

// Antialias reports whether smoothing is requested.
func (g *Graphics) Antialias() bool { return g.antialias }

// SetAntialias toggles smoothing on backends that support it.
func (g *Graphics) SetAntialias(on bool) {
	g.antialias = on
	if s, ok := g.backend.(AntialiasSetter); ok {
		s.SetAntialias(on)
	}
}

// Interpolation returns the image filter.
func (g *Graphics) Interpolation() Interpolation { return g.interp }

// SetInterpolation selects the image filter on backends that support it.
func (g *Graphics) SetInterpolation(i Interpolation) {
	g.interp = i
	if s, ok := g.backend.(InterpolationSetter); ok {
		s.SetInterpolation(i)
	}
}

// Close releases the backend. Calling Close more than once is a no-op.
func (g *Graphics) Close() error {
	if g.closed {
		return nil
	}
	g.closed = true
	if len(g.transforms) != 0 || len(g.clips) != 0 {
		Logger().Warn("uigfx: graphics closed with unbalanced state",
			"name", g.name, "transforms", len(g.transforms), "clips", len(g.clips))
	}
	g.transforms = nil
	g.clips = nil
	g.document = nil
	Logger().Debug("uigfx: graphics closed", "name", g.name)
	return g.backend.Close()
}

// IsClosed reports whether Close was called.
func (g *Graphics) IsClosed() bool { return g.closed }

// Transform returns the current transform.
func (g *Graphics) Transform() geom.TransformMatrix { return g.transform }

// SetTransform replaces the current transform. The backend is notified
// only when the value changes.
func (g *Graphics) SetTransform(m geom.TransformMatrix) {
	if m == g.transform {
		return
	}
	g.transform = m
	g.backend.SetHandlerTransform(m)
}

// ResetTransform sets the identity transform.
func (g *Graphics) ResetTransform() {
	g.SetTransform(geom.Identity())
}

// PushTransform saves the current transform.
func (g *Graphics) PushTransform() {
	g.transforms = append(g.transforms, g.transform)
}

// PushTransformMatrix saves the current transform and then applies m
// before it, so that m acts in the current user space.
func (g *Graphics) PushTransformMatrix(m geom.TransformMatrix) {
	g.PushTransform()
	g.SetTransform(geom.Multiply(m, g.transform))
}

// PopTransform restores the most recently saved transform. Popping an
// empty stack is a usage error.
func (g *Graphics) PopTransform() {
	if debugcheck.Enabled {
		debugcheck.Assert(len(g.transforms) > 0, "PopTransform on empty transform stack")
	}
	n := len(g.transforms) - 1
	m := g.transforms[n]
	g.transforms = g.transforms[:n]
	g.SetTransform(m)
}

// unwindTransforms restores the transform saved at stack depth and drops
// every entry above it, including ones left behind by a failed action.
func (g *Graphics) unwindTransforms(depth int) {
	m := g.transforms[depth]
	g.transforms = g.transforms[:depth]
	g.SetTransform(m)
}

// TransformDepth returns the number of saved transforms.
func (g *Graphics) TransformDepth() int { return len(g.transforms) }

// Translate moves the user space origin.
func (g *Graphics) Translate(dx, dy Coord) {
	m := g.transform
	m.Translate(dx, dy)
	g.SetTransform(m)
}

// Scale scales the user space.
func (g *Graphics) Scale(sx, sy Coord) {
	m := g.transform
	m.Scale(sx, sy)
	g.SetTransform(m)
}

// Rotate rotates the user space by degrees clockwise.
func (g *Graphics) Rotate(degrees Coord) {
	m := g.transform
	m.Rotate(degrees)
	g.SetTransform(m)
}

// DoInsideTransform runs action with m applied on top of the current
// transform and restores the transform afterwards, also when action
// panics.
func (g *Graphics) DoInsideTransform(m geom.TransformMatrix, action func() error) error {
	depth := len(g.transforms)
	g.PushTransformMatrix(m)
	defer g.unwindTransforms(depth)
	return action()
}

// Document returns the per-Graphics text layout cache.
func (g *Graphics) Document() *GraphicsDocument {
	if g.document == nil {
		g.document = &GraphicsDocument{}
	}
	return g.document
}
