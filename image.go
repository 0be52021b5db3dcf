package uigfx

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/gogpu/uigfx/geom"
)

// Image is a raster image drawn by a Graphics. Sizes are in pixels.
type Image struct {
	src    image.Image
	closed bool
}

// NewImage wraps src. Drawing on the image through a Graphics requires
// src to be a draw.Image.
func NewImage(src image.Image) *Image {
	return &Image{src: src}
}

// NewImageSize creates a transparent RGBA image of the given pixel size.
func NewImageSize(size geom.SizeI) *Image {
	return &Image{src: image.NewRGBA(image.Rect(0, 0, max(size.Width, 0), max(size.Height, 0)))}
}

// Source returns the wrapped image.
func (im *Image) Source() image.Image { return im.src }

// Size returns the pixel size.
func (im *Image) Size() geom.SizeI {
	b := im.src.Bounds()
	return geom.SzI(b.Dx(), b.Dy())
}

// Bounds returns the pixel rectangle with the origin at (0, 0).
func (im *Image) Bounds() geom.RectI {
	return geom.RectInt(0, 0, im.src.Bounds().Dx(), im.src.Bounds().Dy())
}

// SizeInDips returns the size in DIPs at the given scale factor.
func (im *Image) SizeInDips(scaleFactor Coord) geom.SizeD {
	return im.Size().PixelToDip(scaleFactor)
}

// Sub returns the part of the image inside r, relative to the image
// origin. The pixels are shared when the source supports SubImage and
// copied otherwise.
func (im *Image) Sub(r geom.RectI) *Image {
	b := im.src.Bounds()
	rect := image.Rect(r.X, r.Y, r.Right(), r.Bottom()).Add(b.Min).Intersect(b)
	if s, ok := im.src.(interface {
		SubImage(image.Rectangle) image.Image
	}); ok {
		return &Image{src: s.SubImage(rect)}
	}
	dst := image.NewRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	draw.Draw(dst, dst.Bounds(), im.src, rect.Min, draw.Src)
	return &Image{src: dst}
}

// AsBrush returns a texture brush tiling the image.
func (im *Image) AsBrush() *TextureBrush {
	return NewTextureBrush(im)
}

// Close releases the image. The wrapped image is left untouched.
func (im *Image) Close() error {
	im.closed = true
	return nil
}

// IsClosed reports whether Close was called.
func (im *Image) IsClosed() bool { return im.closed }
