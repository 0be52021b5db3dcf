package uigfx

import (
	"strings"

	"github.com/gogpu/uigfx/geom"
)

// SplitLines splits text at "\r\n", "\n" and "\r". Empty lines are kept.
func SplitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}

// WrapTextToList splits text into lines and wraps each line so that it
// fits maxWidth. Empty lines are kept. A maxWidth of geom.Unset() turns
// wrapping off. Empty text yields no lines.
func WrapTextToList(m TextMeasurer, text string, maxWidth Coord, font *Font) []string {
	if text == "" {
		return nil
	}
	lines := SplitLines(text)
	if geom.IsUnset(maxWidth) {
		return lines
	}
	var out []string
	for _, line := range lines {
		out = append(out, WrapTextLineToList(m, line, maxWidth, font)...)
	}
	return out
}

// WrapTextLineToList wraps a single line at spaces. Words are added
// greedily while the line stays within maxWidth; a word wider than
// maxWidth on its own is kept on a line by itself. Runs of spaces
// break like a single space and never produce blank lines.
func WrapTextLineToList(m TextMeasurer, line string, maxWidth Coord, font *Font) []string {
	if geom.IsUnset(maxWidth) || line == "" || m.MeasureText(line, font).Width <= maxWidth {
		return []string{line}
	}

	words := strings.Split(line, " ")
	space := m.MeasureText(" ", font).Width

	var out []string
	var cur strings.Builder
	var width Coord
	first := true
	for _, word := range words {
		if word == "" {
			continue
		}
		w := m.MeasureText(word, font).Width
		if first {
			cur.WriteString(word)
			width = w
			first = false
			continue
		}
		if width+space+w <= maxWidth {
			cur.WriteByte(' ')
			cur.WriteString(word)
			width += space + w
			continue
		}
		out = append(out, cur.String())
		cur.Reset()
		cur.WriteString(word)
		width = w
	}
	return append(out, cur.String())
}

// WrapTextToList wraps text using the backend metrics of g.
func (g *Graphics) WrapTextToList(text string, maxWidth Coord, font *Font) []string {
	return WrapTextToList(g, text, maxWidth, g.fontOr(font))
}
