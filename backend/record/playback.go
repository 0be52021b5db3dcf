package record

import (
	"errors"
	"fmt"
	"io"

	"github.com/sanity-io/litter"

	"github.com/gogpu/uigfx"
)

// Playback replays the recorded commands onto g. Transforms and clips are
// applied through g so that g's stacks and capability fallbacks behave as
// they would for direct drawing. Pixel writes the target cannot perform
// are reported in the returned error.
func (b *Backend) Playback(g *uigfx.Graphics) error {
	var errs []error
	for i, cmd := range b.commands {
		if err := b.replay(g, cmd); err != nil {
			errs = append(errs, fmt.Errorf("record: command %d (%s): %w", i, cmd.Type(), err))
		}
	}
	return errors.Join(errs...)
}

func (b *Backend) brush(s BrushStyle) uigfx.Brush {
	if s.Texture {
		return &uigfx.TextureBrush{Image: b.resources.Image(s.Image), Origin: s.Origin}
	}
	return uigfx.NewSolidBrush(s.Color)
}

func (b *Backend) replay(g *uigfx.Graphics, cmd Command) error {
	switch c := cmd.(type) {
	case SetTransformCommand:
		g.SetTransform(c.Matrix)
	case SetClipCommand:
		g.SetClip(uigfx.NewRegion(c.Rects...))
	case DestroyClipCommand:
		g.DestroyClip()
	case SetAntialiasCommand:
		g.SetAntialias(c.On)
	case SetInterpolationCommand:
		g.SetInterpolation(c.Mode)
	case DrawLineCommand:
		g.DrawLine(c.Pen.Pen(), c.A, c.B)
	case DrawLinesCommand:
		g.DrawLines(c.Pen.Pen(), c.Points)
	case DrawRectangleCommand:
		g.DrawRectangle(c.Pen.Pen(), c.Rect)
	case DrawEllipseCommand:
		g.DrawEllipse(c.Pen.Pen(), c.Rect)
	case DrawPolygonCommand:
		g.DrawPolygon(c.Pen.Pen(), c.Points)
	case DrawPathCommand:
		g.DrawPath(c.Pen.Pen(), b.resources.Path(c.Path))
	case DrawArcCommand:
		g.DrawArc(c.Pen.Pen(), c.Arc.Center, c.Arc.Radius, c.Arc.StartAngle, c.Arc.SweepAngle)
	case DrawPieCommand:
		g.DrawPie(c.Pen.Pen(), c.Arc.Center, c.Arc.Radius, c.Arc.StartAngle, c.Arc.SweepAngle)
	case DrawBeziersCommand:
		g.DrawBeziers(c.Pen.Pen(), c.Points)
	case DrawRoundedRectangleCommand:
		g.DrawRoundedRectangle(c.Pen.Pen(), c.Rect, c.Radius)
	case FillRectangleCommand:
		g.FillRectangle(b.brush(c.Brush), c.Rect)
	case FillEllipseCommand:
		g.FillEllipse(b.brush(c.Brush), c.Rect)
	case FillPolygonCommand:
		g.FillPolygon(b.brush(c.Brush), c.Points, c.Mode)
	case FillPathCommand:
		g.FillPath(b.brush(c.Brush), b.resources.Path(c.Path), c.Mode)
	case FillPieCommand:
		g.FillPie(b.brush(c.Brush), c.Arc.Center, c.Arc.Radius, c.Arc.StartAngle, c.Arc.SweepAngle)
	case FillRoundedRectangleCommand:
		g.FillRoundedRectangle(b.brush(c.Brush), c.Rect, c.Radius)
	case DrawTextCommand:
		g.DrawText(c.Text, b.resources.Font(c.Font), c.Fore, c.Back, c.Location)
	case DrawImageCommand:
		g.DrawImage(b.resources.Image(c.Image), c.Origin)
	case DrawImageRectCommand:
		g.DrawImageRect(b.resources.Image(c.Image), c.Dest)
	case DrawImagePortionCommand:
		g.DrawImagePortion(b.resources.Image(c.Image), c.Dest, c.Src)
	case SetPixelCommand:
		return g.SetPixel(c.X, c.Y, c.Color)
	default:
		return fmt.Errorf("unknown command %T", cmd)
	}
	return nil
}

// dumpOptions prints one command per line with its type name.
var dumpOptions = litter.Options{
	Compact:           true,
	StripPackageNames: true,
	HidePrivateFields: true,
	Separator:         " ",
}

// Dump writes a readable listing of the recorded commands to w.
func (b *Backend) Dump(w io.Writer) error {
	for i, cmd := range b.commands {
		if _, err := fmt.Fprintf(w, "%d: %s\n", i, dumpOptions.Sdump(cmd)); err != nil {
			return err
		}
	}
	return nil
}
