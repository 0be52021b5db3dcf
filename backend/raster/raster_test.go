package raster

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/uigfx"
	"github.com/gogpu/uigfx/geom"
)

var (
	red         = color.RGBA{R: 255, A: 255}
	blue        = color.RGBA{B: 255, A: 255}
	transparent = color.RGBA{}
)

func newGraphics(t *testing.T, w, h int) (*uigfx.Graphics, *image.RGBA) {
	t.Helper()
	f, err := uigfx.OpenFactory(Name)
	if err != nil {
		t.Fatalf("OpenFactory: %v", err)
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	g, err := f.FromImage(uigfx.NewImage(dst))
	if err != nil {
		t.Fatalf("FromImage: %v", err)
	}
	t.Cleanup(func() { g.Close() })
	return g, dst
}

func checkPixels(t *testing.T, img *image.RGBA, want map[image.Point]color.RGBA) {
	t.Helper()
	for p, c := range want {
		if got := img.RGBAAt(p.X, p.Y); got != c {
			t.Errorf("pixel %v = %v, want %v", p, got, c)
		}
	}
}

func TestFillRectangle(t *testing.T) {
	g, dst := newGraphics(t, 10, 10)
	g.FillRectangle(uigfx.Red.AsBrush(), geom.Rect(2, 2, 4, 4))
	checkPixels(t, dst, map[image.Point]color.RGBA{
		{2, 2}: red,
		{5, 5}: red,
		{1, 2}: transparent,
		{6, 5}: transparent,
		{5, 6}: transparent,
	})
}

func TestFillTransformed(t *testing.T) {
	g, dst := newGraphics(t, 10, 10)
	g.Translate(5, 5)
	g.FillRectangle(uigfx.Red.AsBrush(), geom.Rect(0, 0, 2, 2))
	g.Scale(2, 2)
	g.FillRectangle(uigfx.Blue.AsBrush(), geom.Rect(1, 1, 1, 1))
	checkPixels(t, dst, map[image.Point]color.RGBA{
		{1, 1}: transparent,
		{5, 5}: red,
		{6, 6}: red,
		{7, 7}: blue,
		{8, 8}: blue,
		{9, 9}: transparent,
	})
}

func TestClip(t *testing.T) {
	g, dst := newGraphics(t, 10, 10)
	err := g.DoInsideClipped(geom.Rect(0, 0, 5, 10), func() error {
		g.FillRectangle(uigfx.Red.AsBrush(), geom.Rect(0, 0, 10, 10))
		return nil
	}, true)
	if err != nil {
		t.Fatal(err)
	}
	g.FillRectangle(uigfx.Blue.AsBrush(), geom.Rect(9, 9, 1, 1))
	checkPixels(t, dst, map[image.Point]color.RGBA{
		{2, 2}: red,
		{4, 9}: red,
		{5, 2}: transparent,
		{9, 9}: blue,
	})
}

func TestAntialias(t *testing.T) {
	g, dst := newGraphics(t, 4, 1)
	g.FillRectangle(uigfx.Red.AsBrush(), geom.Rect(0.5, 0, 1, 1))
	if a := dst.RGBAAt(0, 0).A; a == 0 || a == 255 {
		t.Errorf("antialiased edge alpha = %d, want partial", a)
	}

	g.SetAntialias(false)
	g.FillRectangle(uigfx.Red.AsBrush(), geom.Rect(2.4, 0, 1.2, 1))
	checkPixels(t, dst, map[image.Point]color.RGBA{{2, 0}: red, {3, 0}: red})
}

func TestHairline(t *testing.T) {
	g, dst := newGraphics(t, 10, 5)
	g.DrawLine(uigfx.NewPen(uigfx.Red, 0), geom.Pt(0, 2.5), geom.Pt(10, 2.5))
	checkPixels(t, dst, map[image.Point]color.RGBA{
		{5, 2}: red,
		{5, 1}: transparent,
		{5, 3}: transparent,
	})
}

func TestStrokeRectangle(t *testing.T) {
	g, dst := newGraphics(t, 10, 10)
	g.DrawRectangle(uigfx.NewPen(uigfx.Red, 2), geom.Rect(2, 2, 6, 6))
	checkPixels(t, dst, map[image.Point]color.RGBA{
		{1, 1}: red,
		{2, 5}: red,
		{8, 8}: red,
		{5, 5}: transparent,
		{0, 0}: transparent,
	})
}

func TestTextureBrush(t *testing.T) {
	tile := image.NewRGBA(image.Rect(0, 0, 2, 1))
	tile.SetRGBA(0, 0, red)
	tile.SetRGBA(1, 0, blue)
	brush := uigfx.NewImage(tile).AsBrush()
	brush.Origin = geom.Pt(1, 0)

	g, dst := newGraphics(t, 5, 1)
	g.FillRectangle(brush, geom.Rect(0, 0, 5, 1))
	checkPixels(t, dst, map[image.Point]color.RGBA{
		{0, 0}: blue,
		{1, 0}: red,
		{2, 0}: blue,
		{3, 0}: red,
		{4, 0}: blue,
	})
}

func checker() *uigfx.Image {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	src.SetRGBA(0, 0, red)
	src.SetRGBA(1, 1, red)
	src.SetRGBA(1, 0, blue)
	src.SetRGBA(0, 1, blue)
	return uigfx.NewImage(src)
}

func TestDrawImage(t *testing.T) {
	g, dst := newGraphics(t, 6, 6)
	g.DrawImage(checker(), geom.Pt(3, 3))
	checkPixels(t, dst, map[image.Point]color.RGBA{
		{3, 3}: red,
		{4, 3}: blue,
		{3, 4}: blue,
		{4, 4}: red,
		{2, 2}: transparent,
		{5, 5}: transparent,
	})
}

func TestDrawImageScaled(t *testing.T) {
	g, dst := newGraphics(t, 4, 4)
	g.SetInterpolation(uigfx.InterpolationNearest)
	g.DrawImageRect(checker(), geom.Rect(0, 0, 4, 4))
	checkPixels(t, dst, map[image.Point]color.RGBA{
		{0, 0}: red,
		{1, 1}: red,
		{2, 0}: blue,
		{3, 1}: blue,
		{0, 3}: blue,
		{3, 3}: red,
	})
}

func TestDrawImageClipped(t *testing.T) {
	g, dst := newGraphics(t, 4, 4)
	g.SetClip(uigfx.NewRegion(geom.Rect(0, 0, 1, 4)))
	g.DrawImage(checker(), geom.Pt(0, 0))
	checkPixels(t, dst, map[image.Point]color.RGBA{
		{0, 0}: red,
		{0, 1}: blue,
		{1, 0}: transparent,
		{1, 1}: transparent,
	})
}

func TestPixels(t *testing.T) {
	g, dst := newGraphics(t, 3, 3)
	if err := g.SetPixel(1, 1, uigfx.Blue); err != nil {
		t.Fatal(err)
	}
	g.SetPixel(5, 5, uigfx.Blue)
	got, err := g.GetPixel(1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if got != uigfx.Blue {
		t.Errorf("GetPixel = %v, want %v", got, uigfx.Blue)
	}
	if got, _ := g.GetPixel(-1, 0); !got.IsEmpty() {
		t.Errorf("GetPixel outside = %v, want empty", got)
	}
	checkPixels(t, dst, map[image.Point]color.RGBA{{1, 1}: blue, {0, 0}: transparent})
}

func TestSubImageTarget(t *testing.T) {
	full := image.NewRGBA(image.Rect(0, 0, 6, 6))
	sub := full.SubImage(image.Rect(2, 2, 6, 6)).(*image.RGBA)
	b := New(sub)
	b.FillRectangle(uigfx.Red.AsBrush(), geom.Rect(0, 0, 1, 1))
	checkPixels(t, full, map[image.Point]color.RGBA{
		{2, 2}: red,
		{0, 0}: transparent,
		{3, 3}: transparent,
	})
	if got := b.Size(); got != geom.SzI(4, 4) {
		t.Errorf("Size = %v, want 4x4", got)
	}
}

func TestHandler(t *testing.T) {
	f, err := uigfx.OpenFactory(Name)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if _, err := f.FromScreen(); !errors.Is(err, uigfx.ErrNoScreen) {
		t.Errorf("FromScreen error = %v, want ErrNoScreen", err)
	}
	if _, err := f.FromImage(uigfx.NewImage(image.NewUniform(red))); err == nil {
		t.Error("FromImage of a non-drawable image succeeded")
	}
	m, err := f.RequireMeasure(2)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(geom.Sz(192, 192), m.DPI()); diff != "" {
		t.Errorf("measure DPI mismatch (-want +got):\n%s", diff)
	}
}

func TestTiledWrapsNegative(t *testing.T) {
	src := image.NewRGBA(image.Rect(10, 10, 13, 11))
	src.SetRGBA(12, 10, red)
	tl := &tiled{src: src, off: image.Pt(1, 0)}
	for _, x := range []int{0, 3, -3, 6} {
		if got := color.RGBAModel.Convert(tl.At(x, 0)); got != red {
			t.Errorf("At(%d, 0) = %v, want red", x, got)
		}
	}
}
