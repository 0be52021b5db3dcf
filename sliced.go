package uigfx

import (
	"github.com/gogpu/uigfx/geom"
	"github.com/gogpu/uigfx/nine"
)

// DrawImageSlicedParams describes a nine-slice image draw.
type DrawImageSlicedParams struct {
	Image *Image

	// Source is the pixel rectangle of Image to use. An empty rectangle
	// selects the whole image.
	Source geom.RectI

	// Patch is the stretchable center of Source, in image pixels.
	Patch geom.RectI

	// Dest receives the image. One source pixel covers one user unit in
	// the corners.
	Dest geom.RectD

	// Tile repeats the edge and center parts instead of stretching them.
	Tile bool
}

// SlicedDestination returns the nine destination rectangles of a sliced
// draw. The corners keep the size of the source corners and the patch
// takes the remaining space.
func SlicedDestination(source, patch geom.RectI, dest geom.RectD) nine.Rects {
	dstPatch := geom.Rect(
		dest.X+Coord(patch.X-source.X),
		dest.Y+Coord(patch.Y-source.Y),
		dest.Width-Coord(source.Width-patch.Width),
		dest.Height-Coord(source.Height-patch.Height))
	return nine.New(dest, dstPatch)
}

// DrawImageSliced draws Image into Dest so that the corners are copied
// unscaled and the edges and center are stretched or tiled to fill the
// rest. Parts that end up empty are skipped.
func (g *Graphics) DrawImageSliced(p DrawImageSlicedParams) {
	if p.Image == nil || p.Dest.SizeIsEmpty() {
		return
	}
	source := p.Source
	if source.SizeIsEmpty() {
		source = p.Image.Bounds()
	}
	src := nine.NewI(source, p.Patch)
	dst := SlicedDestination(source, p.Patch, p.Dest)

	src.Each(nine.All, func(part nine.Part, s geom.RectD) {
		d := dst.GetPart(part)
		if s.SizeIsEmpty() || d.SizeIsEmpty() {
			return
		}
		if part&nine.Corners != 0 || !p.Tile {
			g.DrawImagePortion(p.Image, d, s)
			return
		}
		brush := p.Image.Sub(s.Truncate()).AsBrush()
		brush.Origin = d.Location()
		g.FillRectangle(brush, d)
		brush.Close()
	})
}
