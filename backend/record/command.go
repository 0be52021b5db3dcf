package record

import (
	"github.com/gogpu/uigfx"
	"github.com/gogpu/uigfx/geom"
)

// CommandType identifies the type of a command.
type CommandType uint8

const (
	// State commands
	CmdSetTransform CommandType = iota
	CmdSetClip
	CmdDestroyClip
	CmdSetAntialias
	CmdSetInterpolation

	// Outline commands
	CmdDrawLine
	CmdDrawLines
	CmdDrawRectangle
	CmdDrawEllipse
	CmdDrawPolygon
	CmdDrawPath
	CmdDrawArc
	CmdDrawPie
	CmdDrawBeziers
	CmdDrawRoundedRectangle

	// Fill commands
	CmdFillRectangle
	CmdFillEllipse
	CmdFillPolygon
	CmdFillPath
	CmdFillPie
	CmdFillRoundedRectangle

	// Text, image and pixel commands
	CmdDrawText
	CmdDrawImage
	CmdDrawImageRect
	CmdDrawImagePortion
	CmdSetPixel
)

var commandTypeNames = [...]string{
	CmdSetTransform:         "SetTransform",
	CmdSetClip:              "SetClip",
	CmdDestroyClip:          "DestroyClip",
	CmdSetAntialias:         "SetAntialias",
	CmdSetInterpolation:     "SetInterpolation",
	CmdDrawLine:             "DrawLine",
	CmdDrawLines:            "DrawLines",
	CmdDrawRectangle:        "DrawRectangle",
	CmdDrawEllipse:          "DrawEllipse",
	CmdDrawPolygon:          "DrawPolygon",
	CmdDrawPath:             "DrawPath",
	CmdDrawArc:              "DrawArc",
	CmdDrawPie:              "DrawPie",
	CmdDrawBeziers:          "DrawBeziers",
	CmdDrawRoundedRectangle: "DrawRoundedRectangle",
	CmdFillRectangle:        "FillRectangle",
	CmdFillEllipse:          "FillEllipse",
	CmdFillPolygon:          "FillPolygon",
	CmdFillPath:             "FillPath",
	CmdFillPie:              "FillPie",
	CmdFillRoundedRectangle: "FillRoundedRectangle",
	CmdDrawText:             "DrawText",
	CmdDrawImage:            "DrawImage",
	CmdDrawImageRect:        "DrawImageRect",
	CmdDrawImagePortion:     "DrawImagePortion",
	CmdSetPixel:             "SetPixel",
}

// String returns the name of the command type.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// PenStyle is a snapshot of a pen.
type PenStyle struct {
	Color uigfx.Color
	Width geom.Coord
	Dash  uigfx.DashStyle
	Cap   uigfx.LineCap
	Join  uigfx.LineJoin
}

func penStyle(p *uigfx.Pen) PenStyle {
	return PenStyle{Color: p.Color, Width: p.Width, Dash: p.Dash, Cap: p.Cap, Join: p.Join}
}

// Pen recreates the pen.
func (s PenStyle) Pen() *uigfx.Pen {
	return &uigfx.Pen{Color: s.Color, Width: s.Width, Dash: s.Dash, Cap: s.Cap, Join: s.Join}
}

// BrushStyle is a snapshot of a brush. Texture brushes reference their
// image in the resource pool.
type BrushStyle struct {
	Color   uigfx.Color
	Texture bool
	Image   ImageRef
	Origin  geom.PointD
}

// --------------------------------------------------------------------------
// State Commands
// --------------------------------------------------------------------------

// SetTransformCommand records a transform change.
type SetTransformCommand struct {
	Matrix geom.TransformMatrix
}

// Type implements Command.
func (SetTransformCommand) Type() CommandType { return CmdSetTransform }

// SetClipCommand records a clip in device coordinates.
type SetClipCommand struct {
	Rects []geom.RectD
}

// Type implements Command.
func (SetClipCommand) Type() CommandType { return CmdSetClip }

// DestroyClipCommand records removal of the clip.
type DestroyClipCommand struct{}

// Type implements Command.
func (DestroyClipCommand) Type() CommandType { return CmdDestroyClip }

// SetAntialiasCommand records a smoothing change.
type SetAntialiasCommand struct {
	On bool
}

// Type implements Command.
func (SetAntialiasCommand) Type() CommandType { return CmdSetAntialias }

// SetInterpolationCommand records an image filter change.
type SetInterpolationCommand struct {
	Mode uigfx.Interpolation
}

// Type implements Command.
func (SetInterpolationCommand) Type() CommandType { return CmdSetInterpolation }

// --------------------------------------------------------------------------
// Outline Commands
// --------------------------------------------------------------------------

// DrawLineCommand strokes a line.
type DrawLineCommand struct {
	Pen  PenStyle
	A, B geom.PointD
}

// Type implements Command.
func (DrawLineCommand) Type() CommandType { return CmdDrawLine }

// DrawLinesCommand strokes a polyline.
type DrawLinesCommand struct {
	Pen    PenStyle
	Points []geom.PointD
}

// Type implements Command.
func (DrawLinesCommand) Type() CommandType { return CmdDrawLines }

// DrawRectangleCommand strokes a rectangle.
type DrawRectangleCommand struct {
	Pen  PenStyle
	Rect geom.RectD
}

// Type implements Command.
func (DrawRectangleCommand) Type() CommandType { return CmdDrawRectangle }

// DrawEllipseCommand strokes an ellipse.
type DrawEllipseCommand struct {
	Pen  PenStyle
	Rect geom.RectD
}

// Type implements Command.
func (DrawEllipseCommand) Type() CommandType { return CmdDrawEllipse }

// DrawPolygonCommand strokes a polygon.
type DrawPolygonCommand struct {
	Pen    PenStyle
	Points []geom.PointD
}

// Type implements Command.
func (DrawPolygonCommand) Type() CommandType { return CmdDrawPolygon }

// DrawPathCommand strokes a path.
type DrawPathCommand struct {
	Pen  PenStyle
	Path PathRef
}

// Type implements Command.
func (DrawPathCommand) Type() CommandType { return CmdDrawPath }

// ArcShape describes a circular arc or wedge.
type ArcShape struct {
	Center     geom.PointD
	Radius     geom.Coord
	StartAngle geom.Coord
	SweepAngle geom.Coord
}

// DrawArcCommand strokes an arc.
type DrawArcCommand struct {
	Pen PenStyle
	Arc ArcShape
}

// Type implements Command.
func (DrawArcCommand) Type() CommandType { return CmdDrawArc }

// DrawPieCommand strokes a wedge outline.
type DrawPieCommand struct {
	Pen PenStyle
	Arc ArcShape
}

// Type implements Command.
func (DrawPieCommand) Type() CommandType { return CmdDrawPie }

// DrawBeziersCommand strokes connected cubic curves.
type DrawBeziersCommand struct {
	Pen    PenStyle
	Points []geom.PointD
}

// Type implements Command.
func (DrawBeziersCommand) Type() CommandType { return CmdDrawBeziers }

// DrawRoundedRectangleCommand strokes a rounded rectangle.
type DrawRoundedRectangleCommand struct {
	Pen    PenStyle
	Rect   geom.RectD
	Radius geom.Coord
}

// Type implements Command.
func (DrawRoundedRectangleCommand) Type() CommandType { return CmdDrawRoundedRectangle }

// --------------------------------------------------------------------------
// Fill Commands
// --------------------------------------------------------------------------

// FillRectangleCommand fills a rectangle.
type FillRectangleCommand struct {
	Brush BrushStyle
	Rect  geom.RectD
}

// Type implements Command.
func (FillRectangleCommand) Type() CommandType { return CmdFillRectangle }

// FillEllipseCommand fills an ellipse.
type FillEllipseCommand struct {
	Brush BrushStyle
	Rect  geom.RectD
}

// Type implements Command.
func (FillEllipseCommand) Type() CommandType { return CmdFillEllipse }

// FillPolygonCommand fills a polygon.
type FillPolygonCommand struct {
	Brush  BrushStyle
	Points []geom.PointD
	Mode   uigfx.FillMode
}

// Type implements Command.
func (FillPolygonCommand) Type() CommandType { return CmdFillPolygon }

// FillPathCommand fills a path.
type FillPathCommand struct {
	Brush BrushStyle
	Path  PathRef
	Mode  uigfx.FillMode
}

// Type implements Command.
func (FillPathCommand) Type() CommandType { return CmdFillPath }

// FillPieCommand fills a wedge.
type FillPieCommand struct {
	Brush BrushStyle
	Arc   ArcShape
}

// Type implements Command.
func (FillPieCommand) Type() CommandType { return CmdFillPie }

// FillRoundedRectangleCommand fills a rounded rectangle.
type FillRoundedRectangleCommand struct {
	Brush  BrushStyle
	Rect   geom.RectD
	Radius geom.Coord
}

// Type implements Command.
func (FillRoundedRectangleCommand) Type() CommandType { return CmdFillRoundedRectangle }

// --------------------------------------------------------------------------
// Text, Image and Pixel Commands
// --------------------------------------------------------------------------

// DrawTextCommand draws a line of text.
type DrawTextCommand struct {
	Text     string
	Font     FontRef
	Fore     uigfx.Color
	Back     uigfx.Color
	Location geom.PointD
}

// Type implements Command.
func (DrawTextCommand) Type() CommandType { return CmdDrawText }

// DrawImageCommand draws an image unscaled.
type DrawImageCommand struct {
	Image  ImageRef
	Origin geom.PointD
}

// Type implements Command.
func (DrawImageCommand) Type() CommandType { return CmdDrawImage }

// DrawImageRectCommand draws an image scaled into Dest.
type DrawImageRectCommand struct {
	Image ImageRef
	Dest  geom.RectD
}

// Type implements Command.
func (DrawImageRectCommand) Type() CommandType { return CmdDrawImageRect }

// DrawImagePortionCommand draws the Src pixels of an image into Dest.
type DrawImagePortionCommand struct {
	Image ImageRef
	Dest  geom.RectD
	Src   geom.RectD
}

// Type implements Command.
func (DrawImagePortionCommand) Type() CommandType { return CmdDrawImagePortion }

// SetPixelCommand writes a device pixel.
type SetPixelCommand struct {
	X, Y  int
	Color uigfx.Color
}

// Type implements Command.
func (SetPixelCommand) Type() CommandType { return CmdSetPixel }
