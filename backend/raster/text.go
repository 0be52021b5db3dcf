package raster

import (
	"image"
	"image/draw"
	"math"

	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/uigfx"
	"github.com/gogpu/uigfx/geom"
)

// line is a laid out single line of text.
type line struct {
	runes []rune
	xs    []fixed.Int26_6
	width fixed.Int26_6
}

// layout positions the runes of text on face. With shaping enabled the
// advances come from HarfBuzz; runes sharing a glyph cluster are spread
// by their own advances inside it.
func (b *Backend) layout(text string, face font.Face, tf *typeface, size fixed.Int26_6) line {
	runes := []rune(norm.NFC.String(text))
	ln := line{runes: runes, xs: make([]fixed.Int26_6, len(runes))}

	if b.shaping && tf != nil {
		if b.hb == nil {
			b.hb = &shaping.HarfbuzzShaper{}
		}
		if glyphs, width, ok := shapeRunes(b.hb, tf, runes, size); ok {
			placed := make([]bool, len(runes))
			for _, g := range glyphs {
				x := g.x
				for i := g.index; i < g.index+g.count && i < len(runes); i++ {
					if !placed[i] {
						ln.xs[i], placed[i] = x, true
					}
					adv, _ := face.GlyphAdvance(runes[i])
					x += adv
				}
			}
			ln.width = width
			return ln
		}
	}

	var x fixed.Int26_6
	prev := rune(-1)
	for i, r := range runes {
		if prev >= 0 {
			x += face.Kern(prev, r)
		}
		ln.xs[i] = x
		adv, _ := face.GlyphAdvance(r)
		x += adv
		prev = r
	}
	ln.width = x
	return ln
}

// GetTextExtent implements uigfx.TextRenderer. The height is the line
// spacing of the face, also for empty text.
func (b *Backend) GetTextExtent(text string, f *uigfx.Font) geom.SizeD {
	if f == nil {
		return geom.SizeD{}
	}
	px := f.SizeInDips()
	face, tf := b.faces.face(f, px)
	ln := b.layout(text, face, tf, fixedOf(px))
	return geom.Sz(floatOf(ln.width), floatOf(face.Metrics().Height))
}

// DrawText implements uigfx.TextRenderer. Glyphs are placed at the
// transformed location and scaled by the transform scale factor but not
// rotated.
func (b *Backend) DrawText(text string, f *uigfx.Font, fore, back uigfx.Color, location geom.PointD) {
	if f == nil || text == "" {
		return
	}
	if back.IsVisible() {
		b.FillRectangle(back.AsBrush(), geom.RectFromSize(location, b.GetTextExtent(text, f)))
	}
	src := uniform(fore)
	if src == nil {
		return
	}

	px := f.SizeInDips() * b.transform.ScaleFactor()
	face, tf := b.faces.face(f, px)
	ln := b.layout(text, face, tf, fixedOf(px))
	m := face.Metrics()

	o := b.transform.TransformPoint(location)
	pad := int(math.Ceil(px / 2))
	r := image.Rect(
		int(math.Floor(o.X))-pad, int(math.Floor(o.Y))-pad,
		int(math.Ceil(o.X+floatOf(ln.width)))+pad, int(math.Ceil(o.Y+floatOf(m.Height)))+pad,
	).Intersect(image.Rectangle{Max: b.size})
	if r.Empty() {
		return
	}

	mask := image.NewAlpha(image.Rect(0, 0, r.Dx(), r.Dy()))
	originX := fixedOf(o.X - float64(r.Min.X))
	baseline := fixedOf(o.Y-float64(r.Min.Y)) + m.Ascent
	for i, ch := range ln.runes {
		dot := fixed.Point26_6{X: originX + ln.xs[i], Y: baseline}
		dr, gm, gmp, _, ok := face.Glyph(dot, ch)
		if !ok {
			continue
		}
		draw.DrawMask(mask, dr, image.Opaque, image.Point{}, gm, gmp, draw.Over)
	}

	thick := max(1, int(math.Round(px/16)))
	x0, x1 := originX.Round(), (originX + ln.width).Round()
	if f.IsUnderlined() {
		fillRows(mask, x0, x1, (baseline + m.Descent/3).Round(), thick)
	}
	if f.IsStrikeout() {
		fillRows(mask, x0, x1, (baseline - m.Ascent*3/10).Round(), thick)
	}

	b.composite(mask, r, src)
}

func fillRows(mask *image.Alpha, x0, x1, y, n int) {
	draw.Draw(mask, image.Rect(x0, y, x1, y+n), image.Opaque, image.Point{}, draw.Src)
}

func fixedOf(v geom.Coord) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}

func floatOf(v fixed.Int26_6) geom.Coord {
	return geom.Coord(v) / 64
}
