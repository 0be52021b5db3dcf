package record

import (
	"unicode/utf8"

	"github.com/gogpu/uigfx"
	"github.com/gogpu/uigfx/geom"
)

// Metrics are the fixed text metrics of a recording backend. A line of
// text is CharWidth per rune wide (plus BoldExtra per rune for bold
// fonts) and LineHeight high, regardless of the font name or size.
type Metrics struct {
	CharWidth  geom.Coord
	BoldExtra  geom.Coord
	LineHeight geom.Coord
}

// DefaultMetrics are used unless WithMetrics is given.
var DefaultMetrics = Metrics{CharWidth: 8, BoldExtra: 1, LineHeight: 16}

// Option configures a Backend.
type Option func(*Backend)

// WithMetrics sets the text metrics.
func WithMetrics(m Metrics) Option {
	return func(b *Backend) {
		b.metrics = m
	}
}

// WithDPI sets the reported resolution.
func WithDPI(dpi geom.Coord) Option {
	return func(b *Backend) {
		b.dpi = geom.Sz(dpi, dpi)
	}
}

// Backend records drawing calls. It implements uigfx.Backend and all
// optional capability interfaces.
type Backend struct {
	size    geom.SizeI
	dpi     geom.SizeD
	metrics Metrics

	commands  []Command
	resources *ResourcePool

	transform geom.TransformMatrix
	clip      *uigfx.Region
	pixels    map[geom.PointI]uigfx.Color
	closed    bool
}

var (
	_ uigfx.Backend             = (*Backend)(nil)
	_ uigfx.ArcDrawer           = (*Backend)(nil)
	_ uigfx.BezierDrawer        = (*Backend)(nil)
	_ uigfx.RoundedRectDrawer   = (*Backend)(nil)
	_ uigfx.PixelAccessor       = (*Backend)(nil)
	_ uigfx.AntialiasSetter     = (*Backend)(nil)
	_ uigfx.InterpolationSetter = (*Backend)(nil)
)

// New creates a recording backend for a surface of the given pixel size.
func New(size geom.SizeI, opts ...Option) *Backend {
	b := &Backend{
		size:      size,
		dpi:       geom.Sz(96, 96),
		metrics:   DefaultMetrics,
		resources: NewResourcePool(),
		transform: geom.Identity(),
		pixels:    make(map[geom.PointI]uigfx.Color),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Size returns the surface size in pixels.
func (b *Backend) Size() geom.SizeI { return b.size }

// Commands returns the recorded commands in call order.
func (b *Backend) Commands() []Command { return b.commands }

// Resources returns the pool holding referenced images, fonts and paths.
func (b *Backend) Resources() *ResourcePool { return b.resources }

// Filter returns the commands of type t.
func (b *Backend) Filter(t CommandType) []Command {
	var out []Command
	for _, c := range b.commands {
		if c.Type() == t {
			out = append(out, c)
		}
	}
	return out
}

// Count returns the number of commands of type t.
func (b *Backend) Count(t CommandType) int {
	return len(b.Filter(t))
}

// Types returns the type of each command in order.
func (b *Backend) Types() []CommandType {
	out := make([]CommandType, len(b.commands))
	for i, c := range b.commands {
		out[i] = c.Type()
	}
	return out
}

// Reset drops all commands and resources. The transform, clip and pixels
// are kept.
func (b *Backend) Reset() {
	clear(b.commands)
	b.commands = b.commands[:0]
	b.resources.Clear()
}

// Transform returns the transform last set by the Graphics.
func (b *Backend) Transform() geom.TransformMatrix { return b.transform }

// Clip returns the current clip, or nil.
func (b *Backend) Clip() *uigfx.Region { return b.clip }

// IsClosed reports whether Close was called.
func (b *Backend) IsClosed() bool { return b.closed }

func (b *Backend) record(c Command) {
	b.commands = append(b.commands, c)
}

func (b *Backend) brushStyle(br uigfx.Brush) BrushStyle {
	switch v := br.(type) {
	case *uigfx.SolidBrush:
		return BrushStyle{Color: v.Color}
	case *uigfx.TextureBrush:
		return BrushStyle{Texture: true, Image: b.resources.AddImage(v.Image), Origin: v.Origin}
	default:
		return BrushStyle{}
	}
}

// SetHandlerTransform implements uigfx.Backend.
func (b *Backend) SetHandlerTransform(m geom.TransformMatrix) {
	b.transform = m
	b.record(SetTransformCommand{Matrix: m})
}

// SetClip implements uigfx.Backend.
func (b *Backend) SetClip(region *uigfx.Region) {
	b.clip = region
	b.record(SetClipCommand{Rects: region.Rects()})
}

// DestroyClip implements uigfx.Backend.
func (b *Backend) DestroyClip() {
	b.clip = nil
	b.record(DestroyClipCommand{})
}

// SetAntialias implements uigfx.AntialiasSetter.
func (b *Backend) SetAntialias(on bool) {
	b.record(SetAntialiasCommand{On: on})
}

// SetInterpolation implements uigfx.InterpolationSetter.
func (b *Backend) SetInterpolation(i uigfx.Interpolation) {
	b.record(SetInterpolationCommand{Mode: i})
}

// DPI implements uigfx.Backend.
func (b *Backend) DPI() geom.SizeD { return b.dpi }

// Close implements uigfx.Backend.
func (b *Backend) Close() error {
	b.closed = true
	return nil
}

// DrawLine implements uigfx.Backend.
func (b *Backend) DrawLine(pen *uigfx.Pen, p1, p2 geom.PointD) {
	b.record(DrawLineCommand{Pen: penStyle(pen), A: p1, B: p2})
}

// DrawLines implements uigfx.Backend.
func (b *Backend) DrawLines(pen *uigfx.Pen, points []geom.PointD) {
	b.record(DrawLinesCommand{Pen: penStyle(pen), Points: clonePoints(points)})
}

// DrawRectangle implements uigfx.Backend.
func (b *Backend) DrawRectangle(pen *uigfx.Pen, r geom.RectD) {
	b.record(DrawRectangleCommand{Pen: penStyle(pen), Rect: r})
}

// DrawEllipse implements uigfx.Backend.
func (b *Backend) DrawEllipse(pen *uigfx.Pen, r geom.RectD) {
	b.record(DrawEllipseCommand{Pen: penStyle(pen), Rect: r})
}

// DrawPolygon implements uigfx.Backend.
func (b *Backend) DrawPolygon(pen *uigfx.Pen, points []geom.PointD) {
	b.record(DrawPolygonCommand{Pen: penStyle(pen), Points: clonePoints(points)})
}

// DrawPath implements uigfx.Backend.
func (b *Backend) DrawPath(pen *uigfx.Pen, path *uigfx.Path) {
	b.record(DrawPathCommand{Pen: penStyle(pen), Path: b.resources.AddPath(path)})
}

// DrawArc implements uigfx.ArcDrawer.
func (b *Backend) DrawArc(pen *uigfx.Pen, center geom.PointD, radius, startAngle, sweepAngle geom.Coord) {
	b.record(DrawArcCommand{Pen: penStyle(pen), Arc: ArcShape{center, radius, startAngle, sweepAngle}})
}

// DrawPie implements uigfx.ArcDrawer.
func (b *Backend) DrawPie(pen *uigfx.Pen, center geom.PointD, radius, startAngle, sweepAngle geom.Coord) {
	b.record(DrawPieCommand{Pen: penStyle(pen), Arc: ArcShape{center, radius, startAngle, sweepAngle}})
}

// DrawBeziers implements uigfx.BezierDrawer.
func (b *Backend) DrawBeziers(pen *uigfx.Pen, points []geom.PointD) {
	b.record(DrawBeziersCommand{Pen: penStyle(pen), Points: clonePoints(points)})
}

// DrawRoundedRectangle implements uigfx.RoundedRectDrawer.
func (b *Backend) DrawRoundedRectangle(pen *uigfx.Pen, r geom.RectD, radius geom.Coord) {
	b.record(DrawRoundedRectangleCommand{Pen: penStyle(pen), Rect: r, Radius: radius})
}

// FillRectangle implements uigfx.Backend.
func (b *Backend) FillRectangle(brush uigfx.Brush, r geom.RectD) {
	b.record(FillRectangleCommand{Brush: b.brushStyle(brush), Rect: r})
}

// FillEllipse implements uigfx.Backend.
func (b *Backend) FillEllipse(brush uigfx.Brush, r geom.RectD) {
	b.record(FillEllipseCommand{Brush: b.brushStyle(brush), Rect: r})
}

// FillPolygon implements uigfx.Backend.
func (b *Backend) FillPolygon(brush uigfx.Brush, points []geom.PointD, mode uigfx.FillMode) {
	b.record(FillPolygonCommand{Brush: b.brushStyle(brush), Points: clonePoints(points), Mode: mode})
}

// FillPath implements uigfx.Backend.
func (b *Backend) FillPath(brush uigfx.Brush, path *uigfx.Path, mode uigfx.FillMode) {
	b.record(FillPathCommand{Brush: b.brushStyle(brush), Path: b.resources.AddPath(path), Mode: mode})
}

// FillPie implements uigfx.ArcDrawer.
func (b *Backend) FillPie(brush uigfx.Brush, center geom.PointD, radius, startAngle, sweepAngle geom.Coord) {
	b.record(FillPieCommand{Brush: b.brushStyle(brush), Arc: ArcShape{center, radius, startAngle, sweepAngle}})
}

// FillRoundedRectangle implements uigfx.RoundedRectDrawer.
func (b *Backend) FillRoundedRectangle(brush uigfx.Brush, r geom.RectD, radius geom.Coord) {
	b.record(FillRoundedRectangleCommand{Brush: b.brushStyle(brush), Rect: r, Radius: radius})
}

// GetTextExtent implements uigfx.Backend using the fixed metrics.
func (b *Backend) GetTextExtent(text string, font *uigfx.Font) geom.SizeD {
	w := b.metrics.CharWidth
	if font.IsBold() {
		w += b.metrics.BoldExtra
	}
	return geom.Sz(w*geom.Coord(utf8.RuneCountInString(text)), b.metrics.LineHeight)
}

// DrawText implements uigfx.Backend.
func (b *Backend) DrawText(text string, font *uigfx.Font, fore, back uigfx.Color, location geom.PointD) {
	b.record(DrawTextCommand{
		Text:     text,
		Font:     b.resources.AddFont(font),
		Fore:     fore,
		Back:     back,
		Location: location,
	})
}

// DrawImage implements uigfx.Backend.
func (b *Backend) DrawImage(img *uigfx.Image, origin geom.PointD) {
	b.record(DrawImageCommand{Image: b.resources.AddImage(img), Origin: origin})
}

// DrawImageRect implements uigfx.Backend.
func (b *Backend) DrawImageRect(img *uigfx.Image, dest geom.RectD) {
	b.record(DrawImageRectCommand{Image: b.resources.AddImage(img), Dest: dest})
}

// DrawImagePortion implements uigfx.Backend.
func (b *Backend) DrawImagePortion(img *uigfx.Image, dest, src geom.RectD) {
	b.record(DrawImagePortionCommand{Image: b.resources.AddImage(img), Dest: dest, Src: src})
}

// GetPixel implements uigfx.PixelAccessor. Only pixels written with
// SetPixel are known; others read as the empty color.
func (b *Backend) GetPixel(x, y int) uigfx.Color {
	return b.pixels[geom.PtI(x, y)]
}

// SetPixel implements uigfx.PixelAccessor.
func (b *Backend) SetPixel(x, y int, c uigfx.Color) {
	b.pixels[geom.PtI(x, y)] = c
	b.record(SetPixelCommand{X: x, Y: y, Color: c})
}

func clonePoints(points []geom.PointD) []geom.PointD {
	return append([]geom.PointD(nil), points...)
}
