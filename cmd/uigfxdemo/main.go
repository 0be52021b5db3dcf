// Command uigfxdemo renders a sample of labels, borders, sliced images
// and shapes with the raster backend and writes it as PNG.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/gogpu/uigfx"
	"github.com/gogpu/uigfx/backend/raster"
	"github.com/gogpu/uigfx/backend/record"
	"github.com/gogpu/uigfx/geom"
)

func main() {
	var (
		width   = flag.Int("width", 480, "image width in DIPs")
		height  = flag.Int("height", 320, "image height in DIPs")
		scale   = flag.Float64("scale", 1, "pixels per DIP")
		config  = flag.String("config", "", "YAML configuration file")
		output  = flag.String("output", "demo.png", `output file, "-" for stdout`)
		shaping = flag.Bool("shaping", false, "shape text with HarfBuzz")
		dump    = flag.Bool("dump", false, "print the drawing commands instead of rendering")
		verbose = flag.Bool("v", false, "log debug messages")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	uigfx.SetLogger(logger)

	cfg, err := loadConfig(*config)
	if err != nil {
		logger.Error("load config", "path", *config, "err", err)
		os.Exit(1)
	}
	size := geom.SzI(*width, *height)

	if *dump {
		if err := dumpScene(os.Stdout, cfg, size); err != nil {
			logger.Error("dump", "err", err)
			os.Exit(1)
		}
		return
	}

	img, err := render(cfg, size, *scale, *shaping)
	if err != nil {
		logger.Error("render", "err", err)
		os.Exit(1)
	}
	if err := save(*output, img); err != nil {
		logger.Error("save", "output", *output, "err", err)
		os.Exit(1)
	}
	logger.Info("demo saved", "output", *output, "width", img.Bounds().Dx(), "height", img.Bounds().Dy())
}

func loadConfig(path string) (uigfx.Config, error) {
	if path == "" {
		return uigfx.DefaultConfig(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return uigfx.Config{}, err
	}
	defer f.Close()
	return uigfx.LoadConfig(f)
}

func render(cfg uigfx.Config, size geom.SizeI, scale float64, shaping bool) (*image.RGBA, error) {
	factory := uigfx.NewFactory(raster.NewHandler(raster.WithShaping(shaping)),
		uigfx.WithConfig(cfg), uigfx.WithScaleFactor(scale))
	defer factory.Close()

	px := geom.Sz(geom.Coord(size.Width), geom.Coord(size.Height)).PixelFromDip(scale)
	dst := image.NewRGBA(image.Rect(0, 0, px.Width, px.Height))
	g, err := factory.FromImage(uigfx.NewImage(dst))
	if err != nil {
		return nil, err
	}
	defer g.Close()

	g.Scale(scale, scale)
	drawScene(g, geom.Rect(0, 0, geom.Coord(size.Width), geom.Coord(size.Height)))
	return dst, nil
}

func dumpScene(w io.Writer, cfg uigfx.Config, size geom.SizeI) error {
	factory := uigfx.NewFactory(record.NewHandler(), uigfx.WithConfig(cfg))
	defer factory.Close()

	g, err := factory.FromImage(uigfx.NewImageSize(size))
	if err != nil {
		return err
	}
	defer g.Close()

	drawScene(g, geom.Rect(0, 0, geom.Coord(size.Width), geom.Coord(size.Height)))
	return g.Backend().(*record.Backend).Dump(w)
}

func save(path string, img image.Image) error {
	if path == "-" {
		if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
			return errors.New("refusing to write PNG data to a terminal")
		}
		return png.Encode(os.Stdout, img)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// drawScene lays out four panels in r.
func drawScene(g *uigfx.Graphics, r geom.RectD) {
	g.FillRectangle(uigfx.White.AsBrush(), r)

	half := geom.Sz(r.Width/2, r.Height/2)
	panels := []geom.RectD{
		geom.RectFromSize(r.Location(), half),
		geom.RectFromSize(r.Location().Offset(half.Width, 0), half),
		geom.RectFromSize(r.Location().Offset(0, half.Height), half),
		geom.RectFromSize(r.Location().Offset(half.Width, half.Height), half),
	}
	border := uigfx.UniformBorder(1, uigfx.Gray)
	border.CornerRadius = 6
	for i, p := range panels {
		p = p.Inflate(-6, -6)
		g.DrawBorder(p, border)
		client := border.ClientRect(p).Inflate(-4, -4)
		g.DoInsideClipped(client, func() error {
			switch i {
			case 0:
				drawLabels(g, client)
			case 1:
				drawWrapped(g, client)
			case 2:
				drawSliced(g, client)
			case 3:
				drawShapes(g, client)
			}
			return nil
		}, true)
	}
}

func drawLabels(g *uigfx.Graphics, r geom.RectD) {
	icon := uigfx.NewImage(swatch(16, color.RGBA{R: 40, G: 120, B: 200, A: 255}))
	res := g.DrawLabel(&uigfx.DrawLabelParams{
		Text:        "Open <b>file</b>...",
		TextHasBold: true,
		Image:       icon,
		Rect:        r,
		Alignment:   geom.TopLeft,
		Distance:    4,
	})
	next := r.WithY(res.Bounds.Bottom() + 8).WithHeight(r.Bottom() - res.Bounds.Bottom() - 8)
	g.DrawLabel(&uigfx.DrawLabelParams{
		Text:            "E&xit",
		Mnemonic:        true,
		ForegroundColor: uigfx.Red,
		Rect:            next,
		Alignment:       geom.Centered,
	})
}

func drawWrapped(g *uigfx.Graphics, r geom.RectD) {
	g.DrawWrappedText(uigfx.DrawWrappedTextParams{
		Text: "Long lines are wrapped at word boundaries to fit the width of the rectangle.\n\n" +
			"Empty lines keep their height.",
		ForegroundColor: uigfx.Black,
		Rect:            r,
		Alignment:       geom.TopLeft,
		LineDistance:    2,
		Clip:            true,
	})
}

func drawSliced(g *uigfx.Graphics, r geom.RectD) {
	frame := uigfx.NewImage(ninePatch(24, 6))
	g.DrawImageSliced(uigfx.DrawImageSlicedParams{
		Image: frame,
		Patch: geom.RectInt(6, 6, 12, 12),
		Dest:  r.Inflate(-4, -4),
	})
	g.DrawImageSliced(uigfx.DrawImageSlicedParams{
		Image: frame,
		Patch: geom.RectInt(6, 6, 12, 12),
		Dest:  geom.Rect(r.X+20, r.Y+20, r.Width/2, r.Height/2),
		Tile:  true,
	})
}

func drawShapes(g *uigfx.Graphics, r geom.RectD) {
	c := r.Center()
	g.FillEllipse(uigfx.NewColor(255, 80, 80, 200).AsBrush(), geom.Rect(r.X+8, r.Y+8, 60, 40))
	g.FillPie(uigfx.NewColor(80, 160, 80, 220).AsBrush(), c, 30, -30, 240)
	g.DrawRoundedRectangle(uigfx.NewPen(uigfx.Blue, 2), geom.Rect(r.Right()-80, r.Y+8, 70, 40), 8)

	dashed := uigfx.NewPen(uigfx.Black, 1.5)
	dashed.Dash = uigfx.DashDash
	g.DrawLine(dashed, geom.Pt(r.X+8, r.Bottom()-12), geom.Pt(r.Right()-8, r.Bottom()-12))

	wave := uigfx.NewPen(uigfx.RGB(230, 120, 0), 3)
	wave.Cap = uigfx.LineCapRound
	g.DrawBezier(wave, geom.Pt(r.X+8, c.Y+30), geom.Pt(c.X-30, c.Y-10), geom.Pt(c.X+30, c.Y+70), geom.Pt(r.Right()-8, c.Y+30))

	g.DrawText(fmt.Sprintf("%.0fx%.0f", r.Width, r.Height), nil, uigfx.Gray, uigfx.Color{}, r.Location().Offset(8, 52))
}

func swatch(n int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, n, n))
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// ninePatch draws a framed square whose border is inset pixels wide.
func ninePatch(n, inset int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, n, n))
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			c := color.RGBA{R: 235, G: 235, B: 250, A: 255}
			if x < inset || y < inset || x >= n-inset || y >= n-inset {
				c = color.RGBA{R: 60, G: 60, B: 140, A: 255}
			}
			if (x+y)%4 == 0 {
				c.G += 15
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}
