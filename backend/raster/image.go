package raster

import (
	"image"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/gogpu/uigfx"
	"github.com/gogpu/uigfx/geom"
)

// DrawImage implements uigfx.ImageDrawer. One image pixel covers one
// user unit.
func (b *Backend) DrawImage(img *uigfx.Image, origin geom.PointD) {
	s := img.Size()
	full := geom.Rect(0, 0, geom.Coord(s.Width), geom.Coord(s.Height))
	b.DrawImagePortion(img, full.WithLocation(origin), full)
}

// DrawImageRect implements uigfx.ImageDrawer.
func (b *Backend) DrawImageRect(img *uigfx.Image, dest geom.RectD) {
	s := img.Size()
	b.DrawImagePortion(img, dest, geom.Rect(0, 0, geom.Coord(s.Width), geom.Coord(s.Height)))
}

// DrawImagePortion implements uigfx.ImageDrawer. Integer translations
// copy pixels directly; everything else is resampled with the current
// interpolation.
func (b *Backend) DrawImagePortion(img *uigfx.Image, dest, src geom.RectD) {
	if img == nil || dest.IsEmpty() || src.IsEmpty() {
		return
	}
	sb := img.Source().Bounds()
	sr := image.Rect(
		int(math.Floor(src.X)), int(math.Floor(src.Y)),
		int(math.Ceil(src.Right())), int(math.Ceil(src.Bottom())),
	).Add(sb.Min).Intersect(sb)
	if sr.Empty() {
		return
	}

	kx, ky := dest.Width/src.Width, dest.Height/src.Height
	m := geom.NewMatrix(kx, 0, 0, ky,
		dest.X-(src.X+geom.Coord(sb.Min.X))*kx,
		dest.Y-(src.Y+geom.Coord(sb.Min.Y))*ky)
	m = geom.Multiply(m, b.transform)
	m = geom.Multiply(m, geom.NewTranslation(geom.Coord(b.origin.X), geom.Coord(b.origin.Y)))

	if m.IsTranslation() && isInt(m.DX) && isInt(m.DY) {
		b.blit(img.Source(), sr, image.Pt(int(m.DX), int(m.DY)))
		return
	}

	aff := f64.Aff3{m.M11, m.M21, m.DX, m.M12, m.M22, m.DY}
	var opts *xdraw.Options
	if b.clip != nil {
		opts = &xdraw.Options{DstMask: b.clip, DstMaskP: image.Point{}.Sub(b.origin)}
	}
	b.interpolator().Transform(b.dst, aff, img.Source(), sr, xdraw.Over, opts)
}

// blit copies sr translated by off, through the clip.
func (b *Backend) blit(src image.Image, sr image.Rectangle, off image.Point) {
	dr := sr.Add(off).Intersect(image.Rectangle{Min: b.origin, Max: b.origin.Add(b.size)})
	if dr.Empty() {
		return
	}
	sp := dr.Min.Sub(off)
	if b.clip == nil {
		draw.Draw(b.dst, dr, src, sp, draw.Over)
		return
	}
	draw.DrawMask(b.dst, dr, src, sp, b.clip, dr.Min.Sub(b.origin), draw.Over)
}

func (b *Backend) interpolator() xdraw.Interpolator {
	switch b.interp {
	case uigfx.InterpolationNearest:
		return xdraw.NearestNeighbor
	case uigfx.InterpolationBicubic:
		return xdraw.CatmullRom
	default:
		return xdraw.ApproxBiLinear
	}
}

func isInt(v geom.Coord) bool {
	return v == math.Trunc(v)
}
