// Package raster implements a software uigfx backend drawing into a
// draw.Image.
//
// Fills are rasterized with golang.org/x/image/vector into a coverage
// mask, which is combined with the clip mask and composited over the
// target with image/draw. Strokes are turned into polygons first.
// Images are resampled with golang.org/x/image/draw and text is
// rendered from the Go fonts with golang.org/x/image/font/opentype,
// optionally positioned by the go-text HarfBuzz shaper.
//
// Importing the package registers the "raster" handler:
//
//	import _ "github.com/gogpu/uigfx/backend/raster"
//
//	f, err := uigfx.OpenFactory(raster.Name)
package raster
