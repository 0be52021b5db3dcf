// Package record provides a uigfx backend that records drawing calls as
// typed commands instead of producing pixels.
//
// Text is measured with fixed, font-independent metrics, which makes the
// backend suitable for deterministic layout tests and for capturing a
// drawing for later playback onto another Graphics.
//
// # Example
//
//	import "github.com/gogpu/uigfx/backend/record"
//
//	factory, _ := uigfx.OpenFactory(record.Name)
//	g, _ := factory.FromImage(uigfx.NewImageSize(geom.SzI(200, 100)))
//	g.DrawLabel(&uigfx.DrawLabelParams{Text: "Hi", Rect: geom.Rect(0, 0, 200, 100)})
//
//	rec := g.Backend().(*record.Backend)
//	for _, cmd := range rec.Commands() {
//	    fmt.Println(cmd.Type())
//	}
//
//	// Replay onto a raster surface.
//	err := rec.Playback(rasterGraphics)
package record
