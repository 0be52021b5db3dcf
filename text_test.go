package uigfx

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/uigfx/geom"
)

func TestParseBoldMarkup(t *testing.T) {
	tests := []struct {
		in   string
		want []TextRun
	}{
		{"plain", []TextRun{{Text: "plain"}}},
		{"a <b>bold</b> c", []TextRun{{Text: "a "}, {Text: "bold", Style: FontBold}, {Text: " c"}}},
		{"<B>x<b>y</b>z</B>", []TextRun{{Text: "xyz", Style: FontBold}}},
		{"</b>stray", []TextRun{{Text: "stray"}}},
		{"<b></b>", nil},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, ParseBoldMarkup(tt.in)); diff != "" {
				t.Errorf("ParseBoldMarkup mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseMnemonic(t *testing.T) {
	tests := []struct {
		in    string
		text  string
		index int
	}{
		{"File", "File", -1},
		{"&File", "File", 0},
		{"Save &As", "Save As", 5},
		{"Fish && &Chips", "Fish & Chips", 7},
		{"trailing&", "trailing", -1},
		{"&a&b", "ab", 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			text, index := ParseMnemonic(tt.in)
			if text != tt.text || index != tt.index {
				t.Errorf("ParseMnemonic(%q) = %q, %d; want %q, %d", tt.in, text, index, tt.text, tt.index)
			}
		})
	}
}

func TestDrawTextWithFontStyle(t *testing.T) {
	g, b := newTestGraphics()
	defer g.Close()
	font := NewFont("sans", 10, FontRegular)
	runs := []TextRun{{Text: "ab"}, {Text: "cd", Style: FontBold}, {Text: ""}}

	size := g.DrawTextWithFontStyle(runs, font, Black, Color{}, geom.Pt(5, 5))
	if want := geom.Sz(14+16, 12); size != want {
		t.Errorf("size = %v, want %v", size, want)
	}
	want := []string{
		`text "ab" regular {5 5}`,
		`text "cd" bold {19 5}`,
	}
	if diff := cmp.Diff(want, b.ops); diff != "" {
		t.Errorf("ops mismatch (-want +got):\n%s", diff)
	}

	b.ops = nil
	if got := g.DrawTextWithFontStyle(runs, font, Transparent, Color{}, geom.PointD{}); got != size {
		t.Errorf("invisible size = %v, want %v", got, size)
	}
	if len(b.ops) != 0 {
		t.Errorf("invisible foreground drew %v", b.ops)
	}
}

// monoMeasurer measures every rune as 10 units wide.
type monoMeasurer struct{}

func (monoMeasurer) MeasureText(text string, _ *Font) geom.SizeD {
	return geom.Sz(10*Coord(len([]rune(text))), 10)
}

func TestWrapTextToList(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		maxWidth Coord
		want     []string
	}{
		{"empty", "", 100, nil},
		{"fits", "hello world", 200, []string{"hello world"}},
		{"wraps", "aa bb cc dd", 50, []string{"aa bb", "cc dd"}},
		{"long word", "a verylongword b", 50, []string{"a", "verylongword", "b"}},
		{"newlines", "one\r\ntwo\rthree\n\nfour", 1000, []string{"one", "two", "three", "", "four"}},
		{"unset width", "aa bb cc dd", geom.Unset(), []string{"aa bb cc dd"}},
		{"double space", "aaaa  bbbb", 50, []string{"aaaa", "bbbb"}},
		{"leading space", " aaaa bbbb", 50, []string{"aaaa", "bbbb"}},
		{"trailing space", "aaaa bbbb ", 50, []string{"aaaa", "bbbb"}},
		{"space run joins", "aa    bb cc", 50, []string{"aa bb", "cc"}},
		{"only spaces", "      ", 50, []string{""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapTextToList(monoMeasurer{}, tt.text, tt.maxWidth, nil)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("WrapTextToList mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGraphicsWrapSkipsEmptyWords(t *testing.T) {
	g, _ := newTestGraphics()
	defer g.Close()

	for _, text := range []string{"aaaa  bbbb", " aaaa bbbb", "aaaa bbbb "} {
		t.Run(text, func(t *testing.T) {
			got := g.WrapTextToList(text, 30, nil)
			if diff := cmp.Diff([]string{"aaaa", "bbbb"}, got); diff != "" {
				t.Errorf("WrapTextToList mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWrapTextLinesFitAndKeepWords(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	m := monoMeasurer{}
	for i := 0; i < 200; i++ {
		words := make([]string, 1+rng.Intn(20))
		for j := range words {
			words[j] = strings.Repeat("x", 1+rng.Intn(12))
		}
		line := strings.Join(words, " ")
		maxWidth := Coord(10 + rng.Intn(150))

		got := WrapTextLineToList(m, line, maxWidth, nil)
		for _, l := range got {
			if strings.Contains(l, " ") && m.MeasureText(l, nil).Width > maxWidth {
				t.Fatalf("line %q exceeds %v", l, maxWidth)
			}
		}
		if joined := strings.Join(got, " "); joined != line {
			t.Fatalf("words changed: %q -> %q", line, joined)
		}
	}
}

func TestDrawLabelLayout(t *testing.T) {
	g, b := newTestGraphics()
	defer g.Close()

	res := g.DrawLabel(&DrawLabelParams{
		Text:      "Hello",
		Image:     NewImageSize(geom.SzI(10, 10)),
		Rect:      geom.Rect(0, 0, 100, 50),
		Alignment: geom.Centered,
		Distance:  4,
	})
	if diff := cmp.Diff(geom.Rect(25.5, 19, 49, 12), res.Bounds); diff != "" {
		t.Errorf("Bounds mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(geom.Rect(25.5, 19, 10, 10), res.ImageRect); diff != "" {
		t.Errorf("ImageRect mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(geom.Rect(39.5, 19, 35, 12), res.TextRect); diff != "" {
		t.Errorf("TextRect mismatch (-want +got):\n%s", diff)
	}
	want := []string{
		"imagerect {25.5 19 10 10}",
		`text "Hello" regular {39.5 19}`,
	}
	if diff := cmp.Diff(want, b.ops); diff != "" {
		t.Errorf("ops mismatch (-want +got):\n%s", diff)
	}
}

func TestDrawLabelVertical(t *testing.T) {
	g, b := newTestGraphics()
	defer g.Close()

	res := g.DrawLabel(&DrawLabelParams{
		Text:           "Hi",
		Image:          NewImageSize(geom.SzI(20, 20)),
		Rect:           geom.Rect(0, 0, 100, 100),
		Vertical:       true,
		Distance:       2,
		ImageAlignment: geom.Alignment{H: geom.AlignCenterH},
		TextAlignment:  geom.Alignment{H: geom.AlignRight},
		MeasureOnly:    true,
	})
	if got := res.Size(); got != geom.Sz(20, 34) {
		t.Errorf("Size() = %v, want 20x34", got)
	}
	if diff := cmp.Diff(geom.Rect(6, 22, 14, 12), res.TextRect); diff != "" {
		t.Errorf("TextRect mismatch (-want +got):\n%s", diff)
	}
	if len(b.ops) != 0 {
		t.Errorf("MeasureOnly drew %v", b.ops)
	}
}

func TestDrawLabelMarkupPrecedence(t *testing.T) {
	tests := []struct {
		name   string
		params DrawLabelParams
		want   []string
	}{
		{
			name:   "mnemonic",
			params: DrawLabelParams{Text: "&Open", Mnemonic: true},
			want:   []string{`text "O" underline {0 0}`, `text "pen" regular {7 0}`},
		},
		{
			name:   "bold wins over mnemonic",
			params: DrawLabelParams{Text: "<b>&Open</b>", Mnemonic: true, TextHasBold: true},
			want:   []string{`text "Open" bold {0 0}`},
		},
		{
			name: "runs win over text",
			params: DrawLabelParams{
				Text:        "ignored",
				TextHasBold: true,
				Runs:        []TextRun{{Text: "r", Style: FontItalic}},
			},
			want: []string{`text "r" italic {0 0}`},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, b := newTestGraphics()
			defer g.Close()
			p := tt.params
			p.Rect = geom.Rect(0, 0, 100, 20)
			g.DrawLabel(&p)
			if diff := cmp.Diff(tt.want, b.ops); diff != "" {
				t.Errorf("ops mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDrawWrappedText(t *testing.T) {
	g, b := newTestGraphics()
	defer g.Close()

	size := g.DrawWrappedText(DrawWrappedTextParams{
		Text:         "aa bb cc",
		Rect:         geom.Rect(0, 0, 40, 100),
		Alignment:    geom.Alignment{H: geom.AlignRight},
		LineDistance: 1,
	})
	if size != geom.Sz(35, 25) {
		t.Errorf("size = %v, want 35x25", size)
	}
	want := []string{
		`text "aa bb" regular {5 0}`,
		`text "cc" regular {26 13}`,
	}
	if diff := cmp.Diff(want, b.ops); diff != "" {
		t.Errorf("ops mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"aa bb", "cc"}, g.Document().Lines()); diff != "" {
		t.Errorf("document lines mismatch (-want +got):\n%s", diff)
	}
}

func TestStyledTextCache(t *testing.T) {
	g, _ := newTestGraphics()
	defer g.Close()
	font := NewFont("sans", 10, FontRegular)

	st := NewSimpleStyledText("abc", "de")
	st.SetDistance(2)
	if got := st.Measure(g, font); got != geom.Sz(21, 26) {
		t.Errorf("Measure = %v, want 21x26", got)
	}
	st.lines = []string{"x"}
	if got := st.Measure(g, font); got != geom.Sz(21, 26) {
		t.Errorf("cached Measure = %v, want the cached 21x26", got)
	}
	st.Changed()
	if got := st.Measure(g, font); got != geom.Sz(7, 12) {
		t.Errorf("Measure after Changed = %v, want 7x12", got)
	}
	if got := st.Measure(g, font.WithStyle(FontBold)); got != geom.Sz(8, 12) {
		t.Errorf("Measure with another font = %v, want 8x12", got)
	}
}

func TestBlankLineHeightAgrees(t *testing.T) {
	g, b := newTestGraphics()
	defer g.Close()
	font := NewFont("sans", 10, FontRegular)

	st := NewSimpleStyledText("ab", "", "cd")
	st.SetDistance(1)
	want := geom.Sz(14, 38)
	if got := g.MeasureLines([]StyledText{st}, font, 0); got != want {
		t.Errorf("MeasureLines = %v, want %v", got, want)
	}
	wrapped := g.DrawWrappedText(DrawWrappedTextParams{
		Text:         "ab\n\ncd",
		Font:         font,
		LineDistance: 1,
		MeasureOnly:  true,
	})
	if wrapped != want {
		t.Errorf("DrawWrappedText = %v, want %v", wrapped, want)
	}

	st.Draw(g, geom.Pt(0, 0), font, Black, Color{})
	wantOps := []string{`text "ab" regular {0 0}`, `text "cd" regular {0 26}`}
	if diff := cmp.Diff(wantOps, b.ops); diff != "" {
		t.Errorf("ops mismatch (-want +got):\n%s", diff)
	}
}

func TestStyledTextOverrides(t *testing.T) {
	g, b := newTestGraphics()
	defer g.Close()
	bold := NewFont("sans", 10, FontBold)

	st := NewStyledTextWithFontAndColor(bold, Color{}, Color{}, "ab")
	size := g.DrawStyledLines([]StyledText{st, PlainText("xyz")}, nil, Color{}, Color{}, geom.Pt(1, 1), 3)
	if size != geom.Sz(21, 27) {
		t.Errorf("size = %v, want 21x27", size)
	}
	want := []string{`text "ab" bold {1 1}`, `text "xyz" regular {1 16}`}
	if diff := cmp.Diff(want, b.ops); diff != "" {
		t.Errorf("ops mismatch (-want +got):\n%s", diff)
	}
	if got := g.MeasureLines([]StyledText{st, PlainText("xyz")}, nil, 3); got != size {
		t.Errorf("MeasureLines = %v, want %v", got, size)
	}
}

func TestDrawBorder(t *testing.T) {
	g, b := newTestGraphics()
	defer g.Close()

	bs := BorderSettings{Width: geom.NewThickness(1, 2, 3, 4), Color: Red, LeftColor: Blue}
	g.DrawBorder(geom.Rect(0, 0, 20, 10), bs)
	want := []string{
		"fillrect {0 0 20 2}",
		"fillrect {0 6 20 4}",
		"fillrect {0 2 1 4}",
		"fillrect {17 2 3 4}",
	}
	if diff := cmp.Diff(want, b.ops); diff != "" {
		t.Errorf("ops mismatch (-want +got):\n%s", diff)
	}

	b.ops = nil
	round := UniformBorder(2, Red)
	round.CornerRadius = 50
	round.CornerRadiusIsPercent = true
	if got := round.Radius(geom.Rect(0, 0, 20, 10)); got != 5 {
		t.Errorf("Radius = %v, want 5", got)
	}
	g.DrawBorder(geom.Rect(0, 0, 20, 10), round)
	if len(b.ops) != 1 || !strings.HasPrefix(b.ops[0], "path ") {
		t.Errorf("rounded border ops = %v", b.ops)
	}
}

func TestDrawImageSliced(t *testing.T) {
	g, b := newTestGraphics()
	defer g.Close()

	g.DrawImageSliced(DrawImageSlicedParams{
		Image: NewImageSize(geom.SzI(30, 30)),
		Patch: geom.RectInt(10, 10, 10, 10),
		Dest:  geom.Rect(100, 100, 60, 40),
	})
	want := []string{
		"imageportion {100 100 10 10} {0 0 10 10}",
		"imageportion {110 100 40 10} {10 0 10 10}",
		"imageportion {150 100 10 10} {20 0 10 10}",
		"imageportion {100 110 10 20} {0 10 10 10}",
		"imageportion {110 110 40 20} {10 10 10 10}",
		"imageportion {150 110 10 20} {20 10 10 10}",
		"imageportion {100 130 10 10} {0 20 10 10}",
		"imageportion {110 130 40 10} {10 20 10 10}",
		"imageportion {150 130 10 10} {20 20 10 10}",
	}
	if diff := cmp.Diff(want, b.ops); diff != "" {
		t.Errorf("ops mismatch (-want +got):\n%s", diff)
	}

	b.ops = nil
	g.DrawImageSliced(DrawImageSlicedParams{
		Image: NewImageSize(geom.SzI(30, 30)),
		Patch: geom.RectInt(10, 10, 10, 10),
		Dest:  geom.Rect(0, 0, 60, 40),
		Tile:  true,
	})
	var fills int
	for _, op := range b.ops {
		if strings.HasPrefix(op, "fillrect") {
			fills++
		}
	}
	if fills != 5 {
		t.Errorf("tiled draw used %d fills, want 5: %v", fills, b.ops)
	}
}
