package uigfx

import "github.com/gogpu/uigfx/geom"

// GraphicsDocument caches the wrapped layout of the last text drawn with
// DrawWrappedText on a Graphics. It is created lazily by
// Graphics.Document.
type GraphicsDocument struct {
	text     string
	maxWidth Coord
	font     *Font
	scale    Coord
	distance Coord
	valid    bool

	lines []string
	sizes []geom.SizeD
	size  geom.SizeD
}

// Lines returns the wrapped lines of the last layout.
func (d *GraphicsDocument) Lines() []string { return d.lines }

// Size returns the size of the last layout.
func (d *GraphicsDocument) Size() geom.SizeD { return d.size }

// Invalidate drops the cached layout.
func (d *GraphicsDocument) Invalidate() { d.valid = false }

// Layout wraps text to maxWidth and measures each line. The result is
// reused while the inputs and the scale factor stay the same.
func (d *GraphicsDocument) Layout(g *Graphics, text string, maxWidth Coord, font *Font, distance Coord) {
	font = g.fontOr(font)
	scale := g.ScaleFactor()
	if d.valid && d.text == text && sameCoord(d.maxWidth, maxWidth) &&
		d.font == font && d.scale == scale && d.distance == distance {
		return
	}
	d.text, d.maxWidth, d.font, d.scale, d.distance = text, maxWidth, font, scale, distance
	d.lines = g.WrapTextToList(text, maxWidth, font)
	d.sizes = make([]geom.SizeD, len(d.lines))
	d.size = geom.SizeD{}
	for i, line := range d.lines {
		s := g.measureLine(line, font)
		d.sizes[i] = s
		d.size.Width = max(d.size.Width, s.Width)
		d.size.Height += s.Height
		if i > 0 {
			d.size.Height += distance
		}
	}
	d.valid = true
}

func sameCoord(a, b Coord) bool {
	return a == b || (geom.IsUnset(a) && geom.IsUnset(b))
}

// DrawWrappedTextParams controls DrawWrappedText.
type DrawWrappedTextParams struct {
	Text string
	Font *Font

	ForegroundColor Color
	BackgroundColor Color

	// Rect bounds the text. Its width is the wrap width unless it is
	// empty, in which case lines are not wrapped.
	Rect geom.RectD

	// Alignment positions the text block in Rect; its horizontal part
	// also aligns each line within the block.
	Alignment geom.Alignment

	// LineDistance is extra space between lines.
	LineDistance Coord

	// Clip restricts drawing to Rect.
	Clip bool

	// MeasureOnly computes the layout without drawing.
	MeasureOnly bool
}

// DrawWrappedText wraps text into Rect and draws it line by line. It
// returns the size of the text block.
func (g *Graphics) DrawWrappedText(p DrawWrappedTextParams) geom.SizeD {
	maxWidth := geom.Unset()
	if p.Rect.Width > 0 {
		maxWidth = p.Rect.Width
	}
	doc := g.Document()
	doc.Layout(g, p.Text, maxWidth, p.Font, p.LineDistance)
	if p.MeasureOnly || len(doc.lines) == 0 {
		return doc.size
	}

	font := g.fontOr(p.Font)
	fore := p.ForegroundColor.Or(Black)
	block := geom.AlignSizeInRect(doc.size, p.Rect, p.Alignment)
	lineAlign := geom.Alignment{H: p.Alignment.H, V: geom.AlignTop}

	_ = g.DoInsideClipped(p.Rect, func() error {
		y := block.Y
		for i, line := range doc.lines {
			row := geom.Rect(block.X, y, block.Width, doc.sizes[i].Height)
			r := geom.AlignSizeInRect(doc.sizes[i], row, lineAlign)
			g.DrawText(line, font, fore, p.BackgroundColor, r.Location())
			y += doc.sizes[i].Height + p.LineDistance
		}
		return nil
	}, p.Clip)
	return doc.size
}
