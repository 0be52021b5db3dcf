package uigfx

import (
	"fmt"
	"unicode/utf8"

	"github.com/gogpu/uigfx/geom"
)

// fakeBackend implements only the required primitives and logs every call.
// Text is 7 units per rune (8 when bold) and 12 units high.
type fakeBackend struct {
	ops            []string
	transformCalls int
	transform      geom.TransformMatrix
	clip           *Region
	dpi            geom.SizeD
	closed         bool
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{transform: geom.Identity(), dpi: geom.Sz(96, 96)}
}

func (b *fakeBackend) log(format string, args ...any) {
	b.ops = append(b.ops, fmt.Sprintf(format, args...))
}

func (b *fakeBackend) DrawLine(_ *Pen, a, c geom.PointD)     { b.log("line %v %v", a, c) }
func (b *fakeBackend) DrawLines(_ *Pen, pts []geom.PointD)   { b.log("lines %d", len(pts)) }
func (b *fakeBackend) DrawRectangle(_ *Pen, r geom.RectD)    { b.log("rect %v", r) }
func (b *fakeBackend) DrawEllipse(_ *Pen, r geom.RectD)      { b.log("ellipse %v", r) }
func (b *fakeBackend) DrawPolygon(_ *Pen, pts []geom.PointD) { b.log("polygon %d", len(pts)) }
func (b *fakeBackend) DrawPath(_ *Pen, p *Path)              { b.log("path %d", len(p.Elements())) }
func (b *fakeBackend) FillRectangle(_ Brush, r geom.RectD)   { b.log("fillrect %v", r) }
func (b *fakeBackend) FillEllipse(_ Brush, r geom.RectD)     { b.log("fillellipse %v", r) }
func (b *fakeBackend) FillPolygon(_ Brush, p []geom.PointD, _ FillMode) {
	b.log("fillpolygon %d", len(p))
}
func (b *fakeBackend) FillPath(_ Brush, p *Path, _ FillMode) { b.log("fillpath %d", len(p.Elements())) }

func (b *fakeBackend) GetTextExtent(text string, font *Font) geom.SizeD {
	w := Coord(7)
	if font.IsBold() {
		w = 8
	}
	return geom.Sz(w*Coord(utf8.RuneCountInString(text)), 12)
}

func (b *fakeBackend) DrawText(text string, font *Font, _, _ Color, loc geom.PointD) {
	b.log("text %q %s %v", text, font.Style(), loc)
}

func (b *fakeBackend) DrawImage(_ *Image, o geom.PointD)          { b.log("image %v", o) }
func (b *fakeBackend) DrawImageRect(_ *Image, d geom.RectD)       { b.log("imagerect %v", d) }
func (b *fakeBackend) DrawImagePortion(_ *Image, d, s geom.RectD) { b.log("imageportion %v %v", d, s) }
func (b *fakeBackend) SetClip(r *Region)                          { b.clip = r }
func (b *fakeBackend) DestroyClip()                               { b.clip = nil }
func (b *fakeBackend) DPI() geom.SizeD                            { return b.dpi }
func (b *fakeBackend) Close() error                               { b.closed = true; return nil }

func (b *fakeBackend) SetHandlerTransform(m geom.TransformMatrix) {
	b.transformCalls++
	b.transform = m
}

type fakeHandler struct {
	last *fakeBackend
}

func (h *fakeHandler) CreateForImage(*Image) (Backend, error) {
	h.last = newFakeBackend()
	return h.last, nil
}

func (h *fakeHandler) CreateForScreen() (Backend, error) { return nil, ErrNoScreen }

func (h *fakeHandler) CreateMeasure(Coord) (Backend, error) {
	h.last = newFakeBackend()
	return h.last, nil
}

// newTestGraphics returns a Graphics over a fresh fake backend.
func newTestGraphics(opts ...Option) (*Graphics, *fakeBackend) {
	h := &fakeHandler{}
	g, err := NewFactory(h, opts...).FromImage(NewImageSize(geom.SzI(100, 100)))
	if err != nil {
		panic(err)
	}
	return g, h.last
}
