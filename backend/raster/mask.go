package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/gogpu/uigfx"
	"github.com/gogpu/uigfx/geom"
)

const flattenTolerance = 0.2

// coverage rasterizes closed device-space polygons with the non-zero
// rule. The returned mask has its origin at r.Min. A nil mask means
// nothing of the polygons lies on the surface.
func (b *Backend) coverage(polys [][]geom.PointD) (*image.Alpha, image.Rectangle) {
	r := polygonBounds(polys).Intersect(image.Rectangle{Max: b.size})
	if r.Empty() {
		return nil, r
	}
	z := vector.NewRasterizer(r.Dx(), r.Dy())
	z.DrawOp = draw.Src
	off := geom.Pt(float64(r.Min.X), float64(r.Min.Y))
	for _, poly := range polys {
		if len(poly) < 3 {
			continue
		}
		p := poly[0].Sub(off)
		z.MoveTo(float32(p.X), float32(p.Y))
		for _, q := range poly[1:] {
			q = q.Sub(off)
			z.LineTo(float32(q.X), float32(q.Y))
		}
		z.ClosePath()
	}
	mask := image.NewAlpha(image.Rect(0, 0, r.Dx(), r.Dy()))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask, r
}

func polygonBounds(polys [][]geom.PointD) image.Rectangle {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, poly := range polys {
		for _, p := range poly {
			minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
			minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
		}
	}
	if minX > maxX || minY > maxY {
		return image.Rectangle{}
	}
	return image.Rect(int(math.Floor(minX)), int(math.Floor(minY)), int(math.Ceil(maxX)), int(math.Ceil(maxY)))
}

// composite applies the clip and the antialias setting to mask, then
// draws src through it. src is addressed in target coordinates.
func (b *Backend) composite(mask *image.Alpha, r image.Rectangle, src image.Image) {
	w, h := r.Dx(), r.Dy()
	for y := 0; y < h; y++ {
		row := mask.Pix[y*mask.Stride : y*mask.Stride+w]
		if b.clip != nil {
			off := b.clip.PixOffset(r.Min.X, r.Min.Y+y)
			clipRow := b.clip.Pix[off : off+w]
			for x, a := range row {
				row[x] = uint8(uint32(a) * uint32(clipRow[x]) / 255)
			}
		}
		if !b.antialias {
			for x, a := range row {
				if a >= 128 {
					row[x] = 255
				} else {
					row[x] = 0
				}
			}
		}
	}
	dr := r.Add(b.origin)
	draw.DrawMask(b.dst, dr, src, dr.Min, mask, image.Point{}, draw.Over)
}

// clipMask rasterizes a region into a surface-sized mask.
func (b *Backend) clipMask(region *uigfx.Region) *image.Alpha {
	clip := image.NewAlpha(image.Rectangle{Max: b.size})
	rects := region.Rects()
	if len(rects) == 0 || b.size.X == 0 || b.size.Y == 0 {
		return clip
	}
	z := vector.NewRasterizer(b.size.X, b.size.Y)
	z.DrawOp = draw.Src
	for _, r := range rects {
		z.MoveTo(float32(r.X), float32(r.Y))
		z.LineTo(float32(r.Right()), float32(r.Y))
		z.LineTo(float32(r.Right()), float32(r.Bottom()))
		z.LineTo(float32(r.X), float32(r.Bottom()))
		z.ClosePath()
	}
	z.Draw(clip, clip.Bounds(), image.Opaque, image.Point{})
	return clip
}

// source returns the paint image for brush, or nil if it draws nothing.
func (b *Backend) source(brush uigfx.Brush) image.Image {
	switch br := brush.(type) {
	case *uigfx.SolidBrush:
		return uniform(br.Color)
	case *uigfx.TextureBrush:
		if br.Image == nil || br.Image.Size().Width <= 0 || br.Image.Size().Height <= 0 {
			return nil
		}
		o := b.transform.TransformPoint(br.Origin)
		return &tiled{
			src: br.Image.Source(),
			off: image.Pt(int(math.Round(o.X)), int(math.Round(o.Y))).Add(b.origin),
		}
	}
	return nil
}

func uniform(c uigfx.Color) image.Image {
	if !c.IsVisible() {
		return nil
	}
	return image.NewUniform(color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A})
}

// tiled repeats src endlessly with its top-left corner at off.
type tiled struct {
	src image.Image
	off image.Point
}

func (t *tiled) ColorModel() color.Model { return t.src.ColorModel() }

func (t *tiled) Bounds() image.Rectangle {
	return image.Rect(-1<<30, -1<<30, 1<<30, 1<<30)
}

func (t *tiled) At(x, y int) color.Color {
	sb := t.src.Bounds()
	w, h := sb.Dx(), sb.Dy()
	tx := ((x-t.off.X)%w + w) % w
	ty := ((y-t.off.Y)%h + h) % h
	return t.src.At(sb.Min.X+tx, sb.Min.Y+ty)
}
