package uigfx

import "github.com/gogpu/uigfx/geom"

// Element is one item laid out by DrawElements.
type Element struct {
	// Size returns the element size. It is called once per layout.
	Size func() geom.SizeD

	// Draw paints the element into its final rectangle. It may be nil.
	Draw func(rect geom.RectD)

	// Alignment positions the element across the stacking direction.
	Alignment geom.Alignment
}

// DrawElementsParams controls DrawElements.
type DrawElementsParams struct {
	Elements []Element

	// Rect is the container the block of elements is aligned in.
	Rect geom.RectD

	// Alignment positions the whole block inside Rect.
	Alignment geom.Alignment

	// Vertical stacks elements top to bottom instead of left to right.
	Vertical bool

	// Distance separates consecutive elements.
	Distance Coord

	// MeasureOnly computes the layout without drawing.
	MeasureOnly bool
}

// ElementsResult is the layout computed by DrawElements.
type ElementsResult struct {
	// Bounds is the aligned block.
	Bounds geom.RectD

	// Rects holds the rectangle of each element, in input order.
	Rects []geom.RectD
}

// Size returns the size of the block.
func (r ElementsResult) Size() geom.SizeD { return r.Bounds.Size() }

// DrawElements measures the elements, stacks them with Distance between
// neighbors, aligns the block in Rect and draws each element in its own
// rectangle. Inside a vertical stack every element is top aligned in the
// remaining space and positioned horizontally by its own alignment; in a
// horizontal stack it is left aligned and positioned vertically.
func (g *Graphics) DrawElements(p DrawElementsParams) ElementsResult {
	if len(p.Elements) == 0 {
		return ElementsResult{Bounds: geom.RectFromSize(p.Rect.Location(), geom.SizeD{})}
	}

	sizes := make([]geom.SizeD, len(p.Elements))
	var total geom.SizeD
	for i, el := range p.Elements {
		sizes[i] = el.Size()
		if p.Vertical {
			total.Width = max(total.Width, sizes[i].Width)
			total.Height += sizes[i].Height
		} else {
			total.Width += sizes[i].Width
			total.Height = max(total.Height, sizes[i].Height)
		}
	}
	gaps := p.Distance * Coord(len(p.Elements)-1)
	if p.Vertical {
		total.Height += gaps
	} else {
		total.Width += gaps
	}

	block := geom.AlignSizeInRect(total, p.Rect, p.Alignment)
	result := ElementsResult{Bounds: block, Rects: make([]geom.RectD, len(p.Elements))}

	remaining := block
	for i, el := range p.Elements {
		child := geom.RectFromSize(remaining.Location(), sizes[i])
		if p.Vertical {
			a := geom.Alignment{H: el.Alignment.H, V: geom.AlignTop}
			result.Rects[i] = geom.AlignRectInRect(child, remaining, a, false)
			step := sizes[i].Height + p.Distance
			remaining.Y += step
			remaining.Height -= step
		} else {
			a := geom.Alignment{H: geom.AlignLeft, V: el.Alignment.V}
			result.Rects[i] = geom.AlignRectInRect(child, remaining, a, false)
			step := sizes[i].Width + p.Distance
			remaining.X += step
			remaining.Width -= step
		}
	}

	if !p.MeasureOnly {
		for i, el := range p.Elements {
			if el.Draw != nil {
				el.Draw(result.Rects[i])
			}
		}
	}
	return result
}
