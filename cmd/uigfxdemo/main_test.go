package main

import (
	"bytes"
	"image/color"
	"strings"
	"testing"

	"github.com/gogpu/uigfx"
	"github.com/gogpu/uigfx/geom"
)

func TestDumpScene(t *testing.T) {
	var buf bytes.Buffer
	if err := dumpScene(&buf, uigfx.DefaultConfig(), geom.SzI(320, 200)); err != nil {
		t.Fatalf("dumpScene: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"FillRectangleCommand", "DrawTextCommand", "DrawImagePortionCommand", "SetClipCommand"} {
		if !strings.Contains(out, want) {
			t.Errorf("dump lacks %s:\n%s", want, out)
		}
	}
}

func TestRender(t *testing.T) {
	img, err := render(uigfx.DefaultConfig(), geom.SzI(160, 100), 2, false)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got := img.Bounds().Size(); got.X != 320 || got.Y != 200 {
		t.Fatalf("image size = %v, want 320x200", got)
	}
	if got := img.RGBAAt(1, 1); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("background = %v, want white", got)
	}
	var ink int
	for y := 0; y < 200; y++ {
		for x := 0; x < 320; x++ {
			if img.RGBAAt(x, y) != (color.RGBA{255, 255, 255, 255}) {
				ink++
			}
		}
	}
	if ink == 0 {
		t.Error("render drew only background")
	}
}
