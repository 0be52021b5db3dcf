package uigfx

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/uigfx/geom"
	"github.com/gogpu/uigfx/internal/debugcheck"
)

func TestPushPopRestoresTransform(t *testing.T) {
	g, _ := newTestGraphics()
	defer g.Close()

	matrices := []geom.TransformMatrix{
		geom.NewTranslation(10, 20),
		geom.NewScaling(2, 3),
		geom.NewRotation(30),
		geom.NewMatrix(1, 0.5, 0.25, 1, -4, 7),
	}
	g.Translate(1, 1)
	var saved []geom.TransformMatrix
	for _, m := range matrices {
		saved = append(saved, g.Transform())
		g.PushTransformMatrix(m)
	}
	for i := len(matrices) - 1; i >= 0; i-- {
		g.PopTransform()
		if got := g.Transform(); got != saved[i] {
			t.Errorf("after pop %d: transform = %+v, want %+v", i, got, saved[i])
		}
	}
	if g.TransformDepth() != 0 {
		t.Errorf("TransformDepth() = %d, want 0", g.TransformDepth())
	}
}

func TestPopUndoesMutationsSincePush(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(g *Graphics)
	}{
		{"translate", func(g *Graphics) { g.Translate(15, -4) }},
		{"scale", func(g *Graphics) { g.Scale(2, 0.5) }},
		{"rotate", func(g *Graphics) { g.Rotate(45) }},
		{"all", func(g *Graphics) {
			g.Translate(3, 4)
			g.Rotate(-30)
			g.Scale(1.5, 1.5)
			g.Translate(-7, 2)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _ := newTestGraphics()
			defer g.Close()

			g.Translate(5, 6)
			g.Scale(2, 2)
			before := g.Transform()

			g.PushTransform()
			tt.mutate(g)
			if g.Transform() == before {
				t.Fatal("mutation did not change the transform")
			}
			g.PushTransform()
			tt.mutate(g)
			g.PopTransform()
			g.PopTransform()

			if got := g.Transform(); got != before {
				t.Errorf("transform after pop = %+v, want %+v", got, before)
			}
			if g.TransformDepth() != 0 {
				t.Errorf("TransformDepth() = %d, want 0", g.TransformDepth())
			}
		})
	}
}

func TestPushTransformMatrixActsInUserSpace(t *testing.T) {
	g, _ := newTestGraphics()
	defer g.Close()

	g.Translate(100, 0)
	g.PushTransformMatrix(geom.NewScaling(2, 2))
	got := g.Transform().TransformPoint(geom.Pt(1, 1))
	if got != geom.Pt(102, 2) {
		t.Errorf("TransformPoint = %v, want (102, 2)", got)
	}
	g.PopTransform()
}

func TestSetTransformNotifiesOnlyOnChange(t *testing.T) {
	g, b := newTestGraphics()
	defer g.Close()

	g.SetTransform(geom.Identity())
	if b.transformCalls != 0 {
		t.Fatalf("identical transform notified backend %d times", b.transformCalls)
	}
	m := geom.NewTranslation(5, 5)
	g.SetTransform(m)
	g.SetTransform(m)
	if b.transformCalls != 1 {
		t.Errorf("transformCalls = %d, want 1", b.transformCalls)
	}
	if b.transform != m {
		t.Errorf("backend transform = %+v", b.transform)
	}

	g.PushTransform()
	g.PopTransform()
	if b.transformCalls != 1 {
		t.Errorf("push/pop without change notified backend: %d calls", b.transformCalls)
	}
}

func TestDoInsideClippedRestoresState(t *testing.T) {
	errAction := errors.New("action failed")

	tests := []struct {
		name      string
		action    func(g *Graphics) error
		panics    bool
		wantErr   error
		isClipped bool
	}{
		{
			name:      "success",
			action:    func(*Graphics) error { return nil },
			isClipped: true,
		},
		{
			name: "error after transform change",
			action: func(g *Graphics) error {
				g.Translate(50, 50)
				return errAction
			},
			wantErr:   errAction,
			isClipped: true,
		},
		{
			name: "panic after push",
			action: func(g *Graphics) error {
				g.PushTransformMatrix(geom.NewScaling(3, 3))
				panic("boom")
			},
			panics:    true,
			isClipped: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, b := newTestGraphics()
			defer g.Close()

			g.Translate(10, 10)
			g.SetClip(NewRegion(geom.Rect(0, 0, 80, 80)))
			wantTransform := g.Transform()
			wantClip := g.Clip()
			wantDepth := g.ClipDepth()

			var inner *Region
			func() {
				defer func() {
					if r := recover(); (r != nil) != tt.panics {
						t.Errorf("recover() = %v, panics %v", r, tt.panics)
					}
				}()
				err := g.DoInsideClipped(geom.Rect(0, 0, 20, 20), func() error {
					inner = g.Clip()
					return tt.action(g)
				}, tt.isClipped)
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("err = %v, want %v", err, tt.wantErr)
				}
			}()

			if diff := cmp.Diff(geom.Rect(10, 10, 20, 20), inner.Bounds()); diff != "" {
				t.Errorf("clip inside action mismatch (-want +got):\n%s", diff)
			}
			if g.Transform() != wantTransform {
				t.Errorf("transform = %+v, want %+v", g.Transform(), wantTransform)
			}
			if !g.Clip().Equal(wantClip) || !b.clip.Equal(wantClip) {
				t.Errorf("clip = %v, backend clip = %v, want %v", g.Clip(), b.clip, wantClip)
			}
			if g.ClipDepth() != wantDepth {
				t.Errorf("ClipDepth() = %d, want %d", g.ClipDepth(), wantDepth)
			}
			if g.TransformDepth() != 0 {
				t.Errorf("TransformDepth() = %d, want 0", g.TransformDepth())
			}
		})
	}
}

func TestDoInsideClippedDisabled(t *testing.T) {
	g, b := newTestGraphics()
	defer g.Close()

	ran := false
	err := g.DoInsideClipped(geom.Rect(0, 0, 1, 1), func() error {
		ran = true
		if g.Clip() != nil || b.clip != nil {
			t.Error("clip must not be applied when isClipped is false")
		}
		if g.ClipDepth() != 0 {
			t.Error("clip stack must not grow when isClipped is false")
		}
		return nil
	}, false)
	if err != nil || !ran {
		t.Fatalf("ran = %v, err = %v", ran, err)
	}
}

func TestNestedClipsIntersect(t *testing.T) {
	g, _ := newTestGraphics()
	defer g.Close()

	_ = g.DoInsideClipped(geom.Rect(0, 0, 50, 50), func() error {
		return g.DoInsideClipped(geom.Rect(25, 25, 50, 50), func() error {
			if diff := cmp.Diff(geom.Rect(25, 25, 25, 25), g.Clip().Bounds()); diff != "" {
				t.Errorf("nested clip mismatch (-want +got):\n%s", diff)
			}
			return nil
		}, true)
	}, true)
	if g.Clip() != nil {
		t.Errorf("clip after nested scopes = %v, want nil", g.Clip())
	}
}

func TestFallbacksUsePaths(t *testing.T) {
	g, b := newTestGraphics()
	defer g.Close()
	pen := NewPen(Black, 1)
	brush := NewSolidBrush(Red)

	g.DrawArc(pen, geom.Pt(10, 10), 5, 0, 90)
	g.FillPie(brush, geom.Pt(10, 10), 5, 0, 180)
	g.DrawBeziers(pen, []geom.PointD{{}, {X: 1}, {X: 2}, {X: 3}})
	g.DrawRoundedRectangle(pen, geom.Rect(0, 0, 10, 10), 2)
	g.FillRoundedRectangle(brush, geom.Rect(0, 0, 10, 10), 0)

	want := []string{"path 2", "fillpath 5", "path 2", "path 10", "fillrect {0 0 10 10}"}
	if diff := cmp.Diff(want, b.ops); diff != "" {
		t.Errorf("ops mismatch (-want +got):\n%s", diff)
	}

	if _, err := g.GetPixel(0, 0); !errors.Is(err, ErrNotImplemented) {
		t.Errorf("GetPixel err = %v, want ErrNotImplemented", err)
	}
	if err := g.SetPixel(0, 0, Red); !errors.Is(err, ErrNotImplemented) {
		t.Errorf("SetPixel err = %v, want ErrNotImplemented", err)
	}
}

func TestEmptyInputsDrawNothing(t *testing.T) {
	g, b := newTestGraphics()
	defer g.Close()
	pen := NewPen(Black, 1)
	brush := NewSolidBrush(Red)

	g.DrawLines(pen, []geom.PointD{{}})
	g.FillRectangle(brush, geom.Rect(0, 0, 0, 10))
	g.FillPolygon(brush, []geom.PointD{{}, {X: 1}}, FillWinding)
	g.DrawPath(pen, NewPath())
	g.DrawText("", nil, Black, Color{}, geom.PointD{})
	g.DrawArc(pen, geom.PointD{}, 5, 0, 0)
	if len(b.ops) != 0 {
		t.Errorf("ops = %v, want none", b.ops)
	}
}

func TestScaleFactor(t *testing.T) {
	g, b := newTestGraphics()
	b.dpi = geom.Sz(192, 192)
	if got := g.ScaleFactor(); got != 2 {
		t.Errorf("ScaleFactor() = %v, want 2", got)
	}
	g.Close()

	g, _ = newTestGraphics(WithScaleFactor(1.25))
	if got := g.ScaleFactor(); got != 1.25 {
		t.Errorf("configured ScaleFactor() = %v, want 1.25", got)
	}
	g.Close()
}

func TestUnbalancedPopIsUsageError(t *testing.T) {
	if !debugcheck.Enabled {
		t.Skip("usage checks need the uigfxdebug build tag")
	}
	g, _ := newTestGraphics()
	defer g.Close()

	defer func() {
		var ue *debugcheck.UsageError
		r := recover()
		if err, ok := r.(error); !ok || !errors.As(err, &ue) {
			t.Errorf("recover() = %v, want *debugcheck.UsageError", r)
		}
	}()
	g.PopTransform()
}

func TestClosedPenIsUsageError(t *testing.T) {
	if !debugcheck.Enabled {
		t.Skip("usage checks need the uigfxdebug build tag")
	}
	g, _ := newTestGraphics()
	defer g.Close()

	pen := NewPen(Black, 1)
	pen.Close()
	defer func() {
		if recover() == nil {
			t.Error("drawing with a closed pen must panic")
		}
	}()
	g.DrawLine(pen, geom.PointD{}, geom.Pt(1, 1))
}

func TestFactoryMeasureCache(t *testing.T) {
	h := &fakeHandler{}
	f := NewFactory(h)
	defer f.Close()

	a, err := f.RequireMeasure(1)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := f.RequireMeasure(1)
	c, _ := f.RequireMeasure(2)
	if a != b {
		t.Error("same scale must return the cached canvas")
	}
	if a == c {
		t.Error("different scales must use different canvases")
	}
	if c.ScaleFactor() != 2 {
		t.Errorf("measure ScaleFactor() = %v, want 2", c.ScaleFactor())
	}

	override, _ := NewFactory(&fakeHandler{}).FromImage(NewImageSize(geom.SzI(1, 1)))
	f.SetMeasureCanvasOverride(override)
	if got, _ := f.RequireMeasure(3); got != override {
		t.Error("override must win over the cache")
	}
	f.SetMeasureCanvasOverride(nil)
	if got, _ := f.RequireMeasure(1); got != a {
		t.Error("clearing the override must restore the cache")
	}

	if _, err := f.FromScreen(); !errors.Is(err, ErrNoScreen) {
		t.Errorf("FromScreen err = %v, want ErrNoScreen", err)
	}
}

func TestFactoryClosed(t *testing.T) {
	f := NewFactory(&fakeHandler{})
	m, err := f.RequireMeasure(1)
	if err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if !m.IsClosed() {
		t.Error("Close must close the cached measure canvases")
	}
	if err := f.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}

	tests := []struct {
		name string
		call func() (*Graphics, error)
	}{
		{"FromImage", func() (*Graphics, error) { return f.FromImage(NewImageSize(geom.SzI(1, 1))) }},
		{"FromScreen", f.FromScreen},
		{"RequireMeasure", func() (*Graphics, error) { return f.RequireMeasure(1) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := tt.call()
			if !errors.Is(err, ErrClosed) {
				t.Errorf("err = %v, want ErrClosed", err)
			}
			if g != nil {
				t.Error("closed factory returned a graphics")
			}
		})
	}
}

func TestRegistry(t *testing.T) {
	RegisterHandler("fake-test", func() FactoryHandler { return &fakeHandler{} })
	defer UnregisterHandler("fake-test")

	f, err := OpenFactory("fake-test", WithAntialias(false))
	if err != nil {
		t.Fatal(err)
	}
	if f.Config().Antialias {
		t.Error("options must be applied")
	}
	if _, err := OpenFactory("missing"); err == nil {
		t.Error("unknown backend must fail")
	}

	defer func() {
		if recover() == nil {
			t.Error("duplicate registration must panic")
		}
	}()
	RegisterHandler("fake-test", func() FactoryHandler { return &fakeHandler{} })
}
