package raster

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/go-text/typesetting/shaping"

	"github.com/gogpu/uigfx"
	"github.com/gogpu/uigfx/geom"
)

// Option configures a Backend.
type Option func(*Backend)

// WithDPI sets the reported resolution. The default is 96.
func WithDPI(dpi geom.Coord) Option {
	return func(b *Backend) {
		b.dpi = geom.Sz(dpi, dpi)
	}
}

// WithShaping enables HarfBuzz shaping of text runs. Without it glyphs
// are placed by their advances and kerning only.
func WithShaping(on bool) Option {
	return func(b *Backend) {
		b.shaping = on
	}
}

// Backend draws into a draw.Image. Device coordinates are pixels
// relative to the top-left corner of the target bounds.
type Backend struct {
	dst    draw.Image
	origin image.Point
	size   image.Point
	dpi    geom.SizeD

	transform geom.TransformMatrix
	clip      *image.Alpha
	clipRgn   *uigfx.Region

	antialias bool
	interp    uigfx.Interpolation
	shaping   bool

	faces  *faceCache
	hb     *shaping.HarfbuzzShaper
	closed bool
}

var (
	_ uigfx.Backend             = (*Backend)(nil)
	_ uigfx.PixelAccessor       = (*Backend)(nil)
	_ uigfx.AntialiasSetter     = (*Backend)(nil)
	_ uigfx.InterpolationSetter = (*Backend)(nil)
)

// New creates a backend drawing into dst.
func New(dst draw.Image, opts ...Option) *Backend {
	r := dst.Bounds()
	b := &Backend{
		dst:       dst,
		origin:    r.Min,
		size:      r.Size(),
		dpi:       geom.Sz(96, 96),
		transform: geom.Identity(),
		antialias: true,
		interp:    uigfx.InterpolationBilinear,
		faces:     newFaceCache(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Target returns the image drawn into.
func (b *Backend) Target() draw.Image { return b.dst }

// Size returns the device size in pixels.
func (b *Backend) Size() geom.SizeI { return geom.SzI(b.size.X, b.size.Y) }

// Transform returns the current device transform.
func (b *Backend) Transform() geom.TransformMatrix { return b.transform }

// Clip returns the current clip region in device pixels, or nil.
func (b *Backend) Clip() *uigfx.Region { return b.clipRgn }

// SetHandlerTransform implements uigfx.Backend.
func (b *Backend) SetHandlerTransform(m geom.TransformMatrix) {
	b.transform = m
}

// SetClip implements uigfx.Backend. Partially covered pixels at
// fractional region edges get partial coverage.
func (b *Backend) SetClip(region *uigfx.Region) {
	if region == nil {
		b.DestroyClip()
		return
	}
	b.clipRgn = region
	b.clip = b.clipMask(region)
}

// DestroyClip implements uigfx.Backend.
func (b *Backend) DestroyClip() {
	b.clip = nil
	b.clipRgn = nil
}

// DPI implements uigfx.Backend.
func (b *Backend) DPI() geom.SizeD { return b.dpi }

// SetAntialias implements uigfx.AntialiasSetter.
func (b *Backend) SetAntialias(on bool) { b.antialias = on }

// SetInterpolation implements uigfx.InterpolationSetter.
func (b *Backend) SetInterpolation(i uigfx.Interpolation) { b.interp = i }

// GetPixel implements uigfx.PixelAccessor. Pixels outside the surface
// are empty.
func (b *Backend) GetPixel(x, y int) uigfx.Color {
	if !b.inside(x, y) {
		return uigfx.Color{}
	}
	return uigfx.FromColor(b.dst.At(b.origin.X+x, b.origin.Y+y))
}

// SetPixel implements uigfx.PixelAccessor. The pixel is replaced, not
// blended, and the clip is ignored.
func (b *Backend) SetPixel(x, y int, c uigfx.Color) {
	if !b.inside(x, y) {
		return
	}
	b.dst.Set(b.origin.X+x, b.origin.Y+y, color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A})
}

func (b *Backend) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.size.X && y < b.size.Y
}

// Close implements io.Closer. The target image is left untouched.
func (b *Backend) Close() error {
	b.closed = true
	b.faces.clear()
	return nil
}

// IsClosed reports whether Close was called.
func (b *Backend) IsClosed() bool { return b.closed }
