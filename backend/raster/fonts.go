package raster

import (
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/uigfx"
	"github.com/gogpu/uigfx/geom"
)

// Every font name maps to one of the Go font families: names mentioning
// a fixed-pitch font select Go Mono, all others Go.
const (
	familySans = iota
	familyMono
)

var monoHints = []string{"mono", "courier", "consol", "fixed", "terminal"}

func familyOf(name string) int {
	lower := strings.ToLower(name)
	for _, h := range monoHints {
		if strings.Contains(lower, h) {
			return familyMono
		}
	}
	return familySans
}

// variantOf returns 0 for regular, 1 for bold, 2 for italic and 3 for
// bold italic.
func variantOf(style uigfx.FontStyle) int {
	v := 0
	if style&uigfx.FontBold != 0 {
		v |= 1
	}
	if style&uigfx.FontItalic != 0 {
		v |= 2
	}
	return v
}

// typeface is one parsed font file.
type typeface struct {
	data []byte
	font *opentype.Font
	err  error

	shapeOnce sync.Once
	shape     *shapingFont
}

var typefaces = [2][4]*typeface{
	familySans: {
		{data: goregular.TTF}, {data: gobold.TTF},
		{data: goitalic.TTF}, {data: gobolditalic.TTF},
	},
	familyMono: {
		{data: gomono.TTF}, {data: gomonobold.TTF},
		{data: gomonoitalic.TTF}, {data: gomonobolditalic.TTF},
	},
}

var parseOnce sync.Once

func lookupTypeface(family, variant int) *typeface {
	parseOnce.Do(func() {
		for _, fam := range typefaces {
			for _, tf := range fam {
				tf.font, tf.err = opentype.Parse(tf.data)
			}
		}
	})
	return typefaces[family][variant]
}

type faceKey struct {
	family  int
	variant int
	size    fixed.Int26_6
}

// maxFaces bounds the face cache; it is emptied when full.
const maxFaces = 64

// faceCache holds the sized faces of one backend.
type faceCache struct {
	faces map[faceKey]font.Face
}

func newFaceCache() *faceCache {
	return &faceCache{faces: make(map[faceKey]font.Face)}
}

// face returns the face for f at px pixels per em. If the font cannot be
// parsed a fixed bitmap face is returned together with a nil typeface.
func (c *faceCache) face(f *uigfx.Font, px geom.Coord) (font.Face, *typeface) {
	key := faceKey{
		family:  familyOf(f.Name()),
		variant: variantOf(f.Style()),
		size:    fixed.Int26_6(px*64 + 0.5),
	}
	tf := lookupTypeface(key.family, key.variant)
	if tf.err != nil {
		return basicfont.Face7x13, nil
	}
	if face, ok := c.faces[key]; ok {
		return face, tf
	}
	if len(c.faces) >= maxFaces {
		c.clear()
	}
	face, err := opentype.NewFace(tf.font, &opentype.FaceOptions{
		Size:    float64(key.size) / 64,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		uigfx.Logger().Warn("raster: face creation failed", "font", f.Name(), "px", px, "err", err)
		return basicfont.Face7x13, nil
	}
	c.faces[key] = face
	return face, tf
}

func (c *faceCache) clear() {
	for k, face := range c.faces {
		face.Close()
		delete(c.faces, k)
	}
}
