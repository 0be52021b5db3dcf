package uigfx

import "github.com/gogpu/uigfx/geom"

// DrawLabelParams describes a label made of an optional image and text.
type DrawLabelParams struct {
	// Text is the label text. See TextHasBold and Mnemonic for markup.
	Text string

	// Runs, when set, replaces Text with pre-styled runs.
	Runs []TextRun

	// Font defaults to the Graphics default font.
	Font *Font

	// ForegroundColor paints the text; it defaults to Black.
	ForegroundColor Color

	// BackgroundColor fills Rect before drawing when visible.
	BackgroundColor Color

	// Image is drawn before the text, unscaled.
	Image *Image

	// Rect is the area the label is aligned in.
	Rect geom.RectD

	// Alignment positions the image and text block inside Rect.
	Alignment geom.Alignment

	// ImageAlignment and TextAlignment position each part across the
	// stacking direction.
	ImageAlignment geom.Alignment
	TextAlignment  geom.Alignment

	// Vertical places the image above the text instead of to its left.
	Vertical bool

	// Distance separates the image from the text.
	Distance Coord

	// TextHasBold enables <b>...</b> markup in Text.
	TextHasBold bool

	// Mnemonic enables "&" accelerator markup in Text. The accelerator
	// character is underlined unless TextHasBold is also set.
	Mnemonic bool

	// MeasureOnly computes the layout without drawing.
	MeasureOnly bool
}

// LabelResult is the layout of a label.
type LabelResult struct {
	// Bounds is the aligned image and text block.
	Bounds geom.RectD

	// ImageRect and TextRect are empty when the part is absent.
	ImageRect geom.RectD
	TextRect  geom.RectD
}

// Size returns the size of the label block.
func (r LabelResult) Size() geom.SizeD { return r.Bounds.Size() }

// DrawLabel lays out and draws a label: an optional image followed by
// text, aligned as a block inside Rect.
func (g *Graphics) DrawLabel(p *DrawLabelParams) LabelResult {
	font := g.fontOr(p.Font)
	fore := p.ForegroundColor.Or(Black)

	if !p.MeasureOnly && p.BackgroundColor.IsVisible() {
		g.FillRectangle(NewSolidBrush(p.BackgroundColor), p.Rect)
	}

	var elements []Element
	imageIndex, textIndex := -1, -1

	if p.Image != nil {
		img := p.Image
		scale := g.ScaleFactor()
		imageIndex = len(elements)
		elements = append(elements, Element{
			Size: func() geom.SizeD { return img.SizeInDips(scale) },
			Draw: func(rect geom.RectD) {
				g.DrawImageRect(img, rect)
			},
			Alignment: p.ImageAlignment,
		})
	}

	if runs := labelRuns(p); len(runs) > 0 {
		textIndex = len(elements)
		elements = append(elements, Element{
			Size: func() geom.SizeD { return g.MeasureTextWithFontStyle(runs, font) },
			Draw: func(rect geom.RectD) {
				g.DrawTextWithFontStyle(runs, font, fore, Color{}, rect.Location())
			},
			Alignment: p.TextAlignment,
		})
	}

	distance := p.Distance
	if imageIndex < 0 || textIndex < 0 {
		distance = 0
	}
	layout := g.DrawElements(DrawElementsParams{
		Elements:    elements,
		Rect:        p.Rect,
		Alignment:   p.Alignment,
		Vertical:    p.Vertical,
		Distance:    distance,
		MeasureOnly: p.MeasureOnly,
	})

	result := LabelResult{Bounds: layout.Bounds}
	if imageIndex >= 0 {
		result.ImageRect = layout.Rects[imageIndex]
	}
	if textIndex >= 0 {
		result.TextRect = layout.Rects[textIndex]
	}
	return result
}

// MeasureLabel returns the layout DrawLabel would produce without drawing.
func (g *Graphics) MeasureLabel(p DrawLabelParams) LabelResult {
	p.MeasureOnly = true
	return g.DrawLabel(&p)
}

// labelRuns resolves the text of a label into styled runs. Explicit runs
// win over bold markup, and bold markup wins over the accelerator.
func labelRuns(p *DrawLabelParams) []TextRun {
	if len(p.Runs) > 0 {
		return p.Runs
	}
	if p.Text == "" {
		return nil
	}
	text, accel := p.Text, -1
	if p.Mnemonic {
		text, accel = ParseMnemonic(text)
	}
	if p.TextHasBold {
		return ParseBoldMarkup(text)
	}
	return accelRuns(text, accel)
}
