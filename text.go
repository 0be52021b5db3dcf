package uigfx

import (
	"strings"
	"unicode/utf8"

	"github.com/gogpu/uigfx/geom"
	"github.com/gogpu/uigfx/internal/debugcheck"
)

// TextMeasurer measures single-line text. *Graphics implements it.
type TextMeasurer interface {
	MeasureText(text string, font *Font) geom.SizeD
}

func (g *Graphics) fontOr(font *Font) *Font {
	if font == nil {
		return g.DefaultFont()
	}
	return font
}

// GetTextExtent returns the size of a single line of text. A nil font
// selects the default font.
func (g *Graphics) GetTextExtent(text string, font *Font) geom.SizeD {
	font = g.fontOr(font)
	if debugcheck.Enabled {
		g.debugAssertFont(font)
	}
	if text == "" {
		return geom.SizeD{}
	}
	return g.backend.GetTextExtent(text, font)
}

// MeasureText is GetTextExtent; it makes Graphics a TextMeasurer.
func (g *Graphics) MeasureText(text string, font *Font) geom.SizeD {
	return g.GetTextExtent(text, font)
}

// measureLine measures one line of a multi-line block. An empty line
// has no width but keeps the height of a text line.
func (g *Graphics) measureLine(line string, font *Font) geom.SizeD {
	if line == "" {
		return geom.Sz(0, g.MeasureText("Wg", font).Height)
	}
	return g.MeasureText(line, font)
}

// DrawText draws a single line of text with its top-left corner at
// location. An empty back color leaves the background untouched.
func (g *Graphics) DrawText(text string, font *Font, fore, back Color, location geom.PointD) {
	font = g.fontOr(font)
	if debugcheck.Enabled {
		g.debugAssertFont(font)
	}
	if text == "" {
		return
	}
	g.backend.DrawText(text, font, fore, back, location)
}

// TextRun is a piece of text drawn with extra style flags.
type TextRun struct {
	Text  string
	Style FontStyle
}

// DrawTextWithFontStyle draws runs left to right starting at location.
// Each run uses font with the run's style flags added. Runs are measured
// but not drawn when fore is not visible, so the call doubles as a
// measurement. It returns the total size.
func (g *Graphics) DrawTextWithFontStyle(runs []TextRun, font *Font, fore, back Color, location geom.PointD) geom.SizeD {
	font = g.fontOr(font)
	visible := fore.IsVisible()
	x := location.X
	var height Coord
	for _, run := range runs {
		if run.Text == "" {
			continue
		}
		f := font.WithStyle(font.Style() | run.Style)
		size := g.MeasureText(run.Text, f)
		if visible {
			g.DrawText(run.Text, f, fore, back, geom.Pt(x, location.Y))
		}
		x += size.Width
		height = max(height, size.Height)
	}
	return geom.Sz(x-location.X, height)
}

// MeasureTextWithFontStyle returns the size DrawTextWithFontStyle would
// cover.
func (g *Graphics) MeasureTextWithFontStyle(runs []TextRun, font *Font) geom.SizeD {
	return g.DrawTextWithFontStyle(runs, font, Color{}, Color{}, geom.PointD{})
}

// ParseBoldMarkup splits text with <b>...</b> tags into runs. Tags may
// nest and are matched case-insensitively; unbalanced closing tags are
// ignored.
func ParseBoldMarkup(text string) []TextRun {
	var runs []TextRun
	var sb strings.Builder
	depth := 0
	flush := func() {
		if sb.Len() == 0 {
			return
		}
		style := FontRegular
		if depth > 0 {
			style = FontBold
		}
		if n := len(runs); n > 0 && runs[n-1].Style == style {
			runs[n-1].Text += sb.String()
		} else {
			runs = append(runs, TextRun{Text: sb.String(), Style: style})
		}
		sb.Reset()
	}
	for i := 0; i < len(text); {
		switch {
		case hasPrefixFold(text[i:], "<b>"):
			flush()
			depth++
			i += 3
		case hasPrefixFold(text[i:], "</b>"):
			flush()
			depth = max(depth-1, 0)
			i += 4
		default:
			sb.WriteByte(text[i])
			i++
		}
	}
	flush()
	return runs
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

// ParseMnemonic removes mnemonic markers from text. "&x" marks x as the
// accelerator and "&&" is a literal ampersand. It returns the display
// text and the byte index of the first accelerator in it, or -1.
func ParseMnemonic(text string) (string, int) {
	if !strings.Contains(text, "&") {
		return text, -1
	}
	var sb strings.Builder
	index := -1
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c != '&' {
			sb.WriteByte(c)
			continue
		}
		if i+1 >= len(text) {
			break
		}
		i++
		if text[i] != '&' && index < 0 {
			index = sb.Len()
		}
		sb.WriteByte(text[i])
	}
	return sb.String(), index
}

// accelRuns splits text around the character at byte index, which gets
// the underline style.
func accelRuns(text string, index int) []TextRun {
	if index < 0 || index >= len(text) {
		return []TextRun{{Text: text}}
	}
	_, n := utf8.DecodeRuneInString(text[index:])
	runs := make([]TextRun, 0, 3)
	if index > 0 {
		runs = append(runs, TextRun{Text: text[:index]})
	}
	runs = append(runs, TextRun{Text: text[index : index+n], Style: FontUnderline})
	if rest := text[index+n:]; rest != "" {
		runs = append(runs, TextRun{Text: rest})
	}
	return runs
}
