package record

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/uigfx"
	"github.com/gogpu/uigfx/geom"
)

func newGraphics(t *testing.T) (*uigfx.Graphics, *Backend) {
	t.Helper()
	f, err := uigfx.OpenFactory(Name)
	if err != nil {
		t.Fatalf("OpenFactory: %v", err)
	}
	g, err := f.FromImage(uigfx.NewImageSize(geom.SzI(200, 100)))
	if err != nil {
		t.Fatalf("FromImage: %v", err)
	}
	t.Cleanup(func() { g.Close() })
	b := g.Backend().(*Backend)
	b.Reset()
	return g, b
}

func TestCommandTypeString(t *testing.T) {
	tests := []struct {
		c    CommandType
		want string
	}{
		{CmdSetTransform, "SetTransform"},
		{CmdFillPie, "FillPie"},
		{CmdSetPixel, "SetPixel"},
		{CommandType(200), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("CommandType(%d).String() = %q, want %q", tt.c, got, tt.want)
		}
	}
}

func TestTextMetrics(t *testing.T) {
	b := New(geom.SzI(10, 10), WithMetrics(Metrics{CharWidth: 5, BoldExtra: 2, LineHeight: 9}))
	font := uigfx.NewFont("any", 12, uigfx.FontRegular)
	if got := b.GetTextExtent("héllo", font); got != geom.Sz(25, 9) {
		t.Errorf("GetTextExtent = %v, want 25x9", got)
	}
	if got := b.GetTextExtent("ab", font.WithStyle(uigfx.FontBold)); got != geom.Sz(14, 9) {
		t.Errorf("bold GetTextExtent = %v, want 14x9", got)
	}
}

func TestRecordsGraphicsCalls(t *testing.T) {
	g, b := newGraphics(t)

	pen := uigfx.NewPen(uigfx.Red, 2)
	g.PushTransformMatrix(geom.NewTranslation(5, 5))
	g.DrawArc(pen, geom.Pt(10, 10), 4, 0, 90)
	g.FillRoundedRectangle(uigfx.NewSolidBrush(uigfx.Blue), geom.Rect(0, 0, 10, 10), 3)
	g.PopTransform()

	want := []CommandType{CmdSetTransform, CmdDrawArc, CmdFillRoundedRectangle, CmdSetTransform}
	if diff := cmp.Diff(want, b.Types()); diff != "" {
		t.Errorf("types mismatch (-want +got):\n%s", diff)
	}
	arc := b.Filter(CmdDrawArc)[0].(DrawArcCommand)
	if arc.Pen.Width != 2 || arc.Arc.SweepAngle != 90 {
		t.Errorf("arc = %+v", arc)
	}
	if !b.Transform().IsIdentity() {
		t.Errorf("transform after pop = %+v", b.Transform())
	}
}

func TestDrawLabelCommands(t *testing.T) {
	g, b := newGraphics(t)

	g.DrawLabel(&uigfx.DrawLabelParams{
		Text:            "<b>Bold</b> text",
		TextHasBold:     true,
		BackgroundColor: uigfx.White,
		Rect:            geom.Rect(0, 0, 200, 100),
		Alignment:       geom.Centered,
	})

	texts := b.Filter(CmdDrawText)
	if len(texts) != 2 {
		t.Fatalf("DrawText count = %d, want 2", len(texts))
	}
	bold := texts[0].(DrawTextCommand)
	plain := texts[1].(DrawTextCommand)
	// "Bold" is 4*9 wide, " text" 5*8, block 76x16 centered in 200x100.
	if bold.Location != geom.Pt(62, 42) || plain.Location != geom.Pt(98, 42) {
		t.Errorf("locations = %v, %v", bold.Location, plain.Location)
	}
	if !b.Resources().Font(bold.Font).IsBold() || b.Resources().Font(plain.Font).IsBold() {
		t.Error("font styles not recorded")
	}
	if b.Count(CmdFillRectangle) != 1 {
		t.Errorf("background fills = %d, want 1", b.Count(CmdFillRectangle))
	}
}

func TestResourcePoolDeduplicates(t *testing.T) {
	g, b := newGraphics(t)
	img := uigfx.NewImageSize(geom.SzI(4, 4))
	font := uigfx.NewFont("f", 9, uigfx.FontRegular)

	g.DrawImage(img, geom.PointD{})
	g.DrawImageRect(img, geom.Rect(0, 0, 8, 8))
	g.DrawText("a", font, uigfx.Black, uigfx.Color{}, geom.PointD{})
	g.DrawText("b", font, uigfx.Black, uigfx.Color{}, geom.PointD{})

	if n := b.Resources().ImageCount(); n != 1 {
		t.Errorf("ImageCount = %d, want 1", n)
	}
	if n := b.Resources().FontCount(); n != 1 {
		t.Errorf("FontCount = %d, want 1", n)
	}

	path := uigfx.NewPath()
	path.Rectangle(geom.Rect(0, 0, 1, 1))
	g.FillPath(uigfx.NewSolidBrush(uigfx.Red), path, uigfx.FillWinding)
	path.Clear()
	ref := b.Filter(CmdFillPath)[0].(FillPathCommand).Path
	if b.Resources().Path(ref).IsEmpty() {
		t.Error("recorded path must not change when the caller reuses it")
	}
}

func TestPlaybackReproducesCommands(t *testing.T) {
	src, rec := newGraphics(t)
	src.SetClip(uigfx.NewRegion(geom.Rect(0, 0, 50, 50)))
	src.Translate(3, 4)
	src.DrawBeziers(uigfx.NewPen(uigfx.Black, 1), []geom.PointD{{}, {X: 1}, {X: 2}, {X: 3}})
	src.DrawImageSliced(uigfx.DrawImageSlicedParams{
		Image: uigfx.NewImageSize(geom.SzI(9, 9)),
		Patch: geom.RectInt(3, 3, 3, 3),
		Dest:  geom.Rect(0, 0, 30, 30),
		Tile:  true,
	})
	src.DestroyClip()

	dst, out := newGraphics(t)
	if err := rec.Playback(dst); err != nil {
		t.Fatalf("Playback: %v", err)
	}
	if diff := cmp.Diff(rec.Types(), out.Types()); diff != "" {
		t.Errorf("playback types mismatch (-want +got):\n%s", diff)
	}
	if !dst.Transform().IsTranslation() || dst.Transform().DX != 3 {
		t.Errorf("playback transform = %+v", dst.Transform())
	}
}

func TestSetPixel(t *testing.T) {
	g, b := newGraphics(t)
	if err := g.SetPixel(1, 2, uigfx.Green); err != nil {
		t.Fatal(err)
	}
	c, err := g.GetPixel(1, 2)
	if err != nil || c != uigfx.Green {
		t.Errorf("GetPixel = %v, %v", c, err)
	}
	if got, _ := g.GetPixel(0, 0); !got.IsEmpty() {
		t.Errorf("unset pixel = %v, want empty", got)
	}
	if b.Count(CmdSetPixel) != 1 {
		t.Error("SetPixel not recorded")
	}
}

func TestDump(t *testing.T) {
	g, b := newGraphics(t)
	g.DrawLine(uigfx.NewPen(uigfx.Red, 1), geom.Pt(0, 0), geom.Pt(10, 10))

	var buf bytes.Buffer
	if err := b.Dump(&buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "0: DrawLineCommand{") {
		t.Errorf("Dump() = %q", out)
	}
}

func TestMeasureCanvasScale(t *testing.T) {
	f := uigfx.NewFactory(NewHandler())
	defer f.Close()

	g, err := f.RequireMeasure(2)
	if err != nil {
		t.Fatal(err)
	}
	if got := g.DPI(); got != geom.Sz(192, 192) {
		t.Errorf("DPI() = %v, want 192x192", got)
	}
	if _, err := f.FromScreen(); err == nil {
		t.Error("FromScreen must fail for the recording backend")
	}
}
