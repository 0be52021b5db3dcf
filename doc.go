// Package uigfx provides a device-independent 2D drawing abstraction for
// UI toolkits.
//
// # Overview
//
// A Graphics is a drawing context bound to a surface (an offscreen image,
// the screen, or a scratch measurement canvas). It keeps a transform stack
// and a clip stack and offers composite operations built once on top of a
// small primitive contract:
//
//   - labels with an image and styled text (DrawLabel, DrawElements)
//   - runs of differently styled text (DrawTextWithFontStyle)
//   - word wrapping (WrapTextToList, DrawWrappedText)
//   - nine-slice image drawing (DrawImageSliced)
//   - borders with per-edge widths and rounded corners (DrawBorder)
//
// The primitives (lines, rectangles, paths, text extent, image blits,
// clipping) are provided by a Backend. Backends register a FactoryHandler
// under a name, following the database/sql driver pattern:
//
//	import _ "github.com/gogpu/uigfx/backend/raster"
//
//	factory, err := uigfx.OpenFactory("raster")
//	if err != nil {
//	    return err
//	}
//	g, err := factory.FromImage(uigfx.NewImage(image.NewRGBA(image.Rect(0, 0, 200, 100))))
//	if err != nil {
//	    return err
//	}
//	defer g.Close()
//
//	font := uigfx.NewFont("sans-serif", 10, 0)
//	g.DrawLabel(&uigfx.DrawLabelParams{
//	    Text:            "Hello",
//	    Font:            font,
//	    ForegroundColor: uigfx.Black,
//	    Rect:            geom.Rect(0, 0, 200, 100),
//	    Alignment:       geom.Centered,
//	})
//
// # Geometry and Units
//
// Geometry value types live in package geom, unit conversion in package
// units and nine-part rectangle slicing in package nine. Coordinates
// passed to a Graphics are DIPs transformed by the current transform.
//
// # Usage Errors
//
// Passing closed pens, brushes, fonts or images, unbalanced PopTransform
// calls and malformed bezier point counts are usage errors. They are
// detected only when built with the uigfxdebug tag; otherwise behavior is
// undefined.
//
// # Concurrency
//
// A Graphics is not safe for concurrent use and must stay on one goroutine.
package uigfx
