package uigfx

import "github.com/gogpu/uigfx/internal/debugcheck"

// The helpers below are no-ops unless built with the uigfxdebug tag;
// callers guard them with debugcheck.Enabled so the checks compile away.

func (g *Graphics) debugAssertOpen() {
	debugcheck.Assert(!g.closed, "use of closed Graphics %q", g.name)
}

func (g *Graphics) debugAssertPen(pen *Pen) {
	g.debugAssertOpen()
	debugcheck.Assert(pen != nil, "nil pen")
	debugcheck.Assert(!pen.IsClosed(), "use of closed pen")
}

func (g *Graphics) debugAssertBrush(brush Brush) {
	g.debugAssertOpen()
	debugcheck.Assert(brush != nil, "nil brush")
	debugcheck.Assert(!brush.IsClosed(), "use of closed brush")
	if tb, ok := brush.(*TextureBrush); ok {
		debugcheck.Assert(tb.Image != nil && !tb.Image.IsClosed(), "texture brush with closed image")
	}
}

func (g *Graphics) debugAssertFont(font *Font) {
	g.debugAssertOpen()
	debugcheck.Assert(font != nil, "nil font")
	debugcheck.Assert(!font.IsClosed(), "use of closed font")
}

func (g *Graphics) debugAssertImage(img *Image) {
	g.debugAssertOpen()
	debugcheck.Assert(img != nil, "nil image")
	debugcheck.Assert(!img.IsClosed(), "use of closed image")
}

func (g *Graphics) debugAssertBezierPoints(n int) {
	debugcheck.Assert(n >= 4 && (n-1)%3 == 0, "bezier point count %d is not 3n+1", n)
}
