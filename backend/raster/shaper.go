package raster

import (
	"bytes"

	"github.com/go-text/typesetting/di"
	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// shapingFont is the go-text view of a typeface. The parsed font is
// read-only and shared by all backends.
type shapingFont struct {
	font *gotext.Font
	err  error
}

func (tf *typeface) shaping() *shapingFont {
	tf.shapeOnce.Do(func() {
		f, err := gotext.ParseTTF(bytes.NewReader(tf.data))
		if err != nil {
			tf.shape = &shapingFont{err: err}
			return
		}
		tf.shape = &shapingFont{font: f.Font}
	})
	return tf.shape
}

// shapedGlyph is a positioned glyph standing for the runes
// [index, index+count) of the input.
type shapedGlyph struct {
	index, count int
	x            fixed.Int26_6
	advance      fixed.Int26_6
}

// shapeRunes runs the HarfBuzz shaper over a left-to-right line.
// ok is false if the font could not be loaded.
//
// HarfBuzz rounds the size up to whole pixels, so the line is shaped at
// one pixel per font unit and the positions are scaled down to size.
func shapeRunes(hb *shaping.HarfbuzzShaper, tf *typeface, runes []rune, size fixed.Int26_6) (glyphs []shapedGlyph, width fixed.Int26_6, ok bool) {
	sf := tf.shaping()
	if sf.err != nil {
		return nil, 0, false
	}
	em := fixed.I(int(sf.font.Upem()))
	out := hb.Shape(shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      gotext.NewFace(sf.font),
		Size:      em,
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	})

	glyphs = make([]shapedGlyph, 0, len(out.Glyphs))
	var pen fixed.Int26_6
	for i, g := range out.Glyphs {
		end := len(runes)
		for _, next := range out.Glyphs[i+1:] {
			if next.TextIndex() > g.TextIndex() {
				end = next.TextIndex()
				break
			}
		}
		glyphs = append(glyphs, shapedGlyph{
			index:   g.TextIndex(),
			count:   end - g.TextIndex(),
			x:       scaleFixed(pen+g.XOffset, size, em),
			advance: scaleFixed(g.Advance, size, em),
		})
		pen += g.Advance
	}
	return glyphs, scaleFixed(pen, size, em), true
}

// scaleFixed returns v*num/den rounded to the nearest 1/64.
func scaleFixed(v, num, den fixed.Int26_6) fixed.Int26_6 {
	p := int64(v) * int64(num)
	if p < 0 {
		return -fixed.Int26_6((-p + int64(den)/2) / int64(den))
	}
	return fixed.Int26_6((p + int64(den)/2) / int64(den))
}

func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		switch r {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
