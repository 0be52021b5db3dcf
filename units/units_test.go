package units

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/uigfx/geom"
)

var roundTripUnits = []GraphicsUnit{Pixel, Dip, Point, Inch, Millimeter, Document}

func TestConvertExamples(t *testing.T) {
	tests := []struct {
		name     string
		from, to GraphicsUnit
		dpi, in  float64
		want     float64
	}{
		{"96 dip is one inch", Dip, Inch, 96, 96, 1},
		{"one inch is 96 dip", Inch, Dip, 96, 1, 96},
		{"72 points is one inch", Point, Inch, 96, 72, 1},
		{"pixels at 192 dpi", Pixel, Dip, 192, 192, 96},
		{"millimeters", Inch, Millimeter, 96, 2, 50.8},
		{"document", Document, Inch, 96, 600, 2},
		{"world follows dpi", World, Inch, 120, 240, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert(tt.from, tt.to, tt.dpi, tt.in, TypeDisplay)
			if err != nil {
				t.Fatalf("Convert: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Convert(%v, %v, %v, %v) = %v, want %v", tt.from, tt.to, tt.dpi, tt.in, got, tt.want)
			}
		})
	}
}

func TestConvertRoundTrip(t *testing.T) {
	dpis := []float64{72, 96, 120, 144.5, 300}
	values := []float64{0.001, 1, 13.37, 1000, 1e6}
	for _, u1 := range roundTripUnits {
		for _, u2 := range roundTripUnits {
			for _, dpi := range dpis {
				for _, x := range values {
					mid, err := Convert(u1, u2, dpi, x, TypeDisplay)
					if err != nil {
						t.Fatalf("Convert(%v,%v): %v", u1, u2, err)
					}
					back, err := Convert(u2, u1, dpi, mid, TypeDisplay)
					if err != nil {
						t.Fatalf("Convert(%v,%v): %v", u2, u1, err)
					}
					if rel := math.Abs(back-x) / x; rel > 1e-9 {
						t.Errorf("%v->%v->%v at dpi %v: %v -> %v (rel err %g)", u1, u2, u1, dpi, x, back, rel)
					}
				}
			}
		}
	}
}

func TestConvertIdentityIsExact(t *testing.T) {
	values := []float64{0.1, 1.0 / 3, math.Pi, -7.25, math.MaxFloat64, math.SmallestNonzeroFloat64}
	for u := World; u <= Dip; u++ {
		for _, x := range values {
			got, err := Convert(u, u, 96, x, TypeDisplay)
			if err != nil {
				t.Fatalf("Convert(%v,%v): %v", u, u, err)
			}
			if math.Float64bits(got) != math.Float64bits(x) {
				t.Errorf("Convert(%v,%v,%v) = %v, not bit-identical", u, u, x, got)
			}
		}
	}

	// Even unknown units short-circuit when from == to.
	if got, err := Convert(GraphicsUnit(99), GraphicsUnit(99), 96, 5, TypeDisplay); err != nil || got != 5 {
		t.Errorf("identity for unknown unit = %v, %v", got, err)
	}
}

func TestConvertDisplayDependsOnType(t *testing.T) {
	screen, err := Convert(Display, Inch, 96, 96, TypeDisplay)
	if err != nil || screen != 1 {
		t.Errorf("display on screen = %v, %v; want 1", screen, err)
	}
	printer, err := Convert(Display, Inch, 600, 100, TypePostScript)
	if err != nil || printer != 1 {
		t.Errorf("display on printer = %v, %v; want 1", printer, err)
	}
	mem, err := Convert(Inch, Display, 150, 1, TypeMemory)
	if err != nil || mem != 150 {
		t.Errorf("display on memory = %v, %v; want 150", mem, err)
	}
}

func TestConvertUnsupported(t *testing.T) {
	_, err := Convert(GraphicsUnit(42), Inch, 96, 1, TypeDisplay)
	if !errors.Is(err, ErrUnsupportedUnit) {
		t.Errorf("err = %v, want ErrUnsupportedUnit", err)
	}
	_, err = Convert(Inch, GraphicsUnit(42), 96, 1, TypeDisplay)
	if !errors.Is(err, ErrUnsupportedUnit) {
		t.Errorf("err = %v, want ErrUnsupportedUnit", err)
	}
	_, err = ConvertRect(GraphicsUnit(42), Inch, geom.Sz(96, 96), geom.Rect(0, 0, 1, 1), TypeDisplay)
	if !errors.Is(err, ErrUnsupportedUnit) {
		t.Errorf("ConvertRect err = %v, want ErrUnsupportedUnit", err)
	}
}

func TestConvertAxesUseOwnDPI(t *testing.T) {
	dpi := geom.Sz(96, 192)
	p, err := ConvertPoint(Inch, Pixel, dpi, geom.Pt(1, 1), TypeDisplay)
	if err != nil {
		t.Fatal(err)
	}
	if p != geom.Pt(96, 192) {
		t.Errorf("ConvertPoint = %v, want (96,192)", p)
	}
	r, err := ConvertRect(Pixel, Inch, dpi, geom.Rect(96, 192, 48, 96), TypeDisplay)
	if err != nil {
		t.Fatal(err)
	}
	if r != geom.Rect(1, 1, 0.5, 0.5) {
		t.Errorf("ConvertRect = %v, want (1,1,0.5,0.5)", r)
	}

	c := Converter{DPI: dpi}
	s, err := c.Size(Inch, Pixel, geom.Sz(2, 2))
	if err != nil || s != geom.Sz(192, 384) {
		t.Errorf("Converter.Size = %v, %v", s, err)
	}
}

func TestParseUnit(t *testing.T) {
	tests := []struct {
		in   string
		want GraphicsUnit
	}{
		{"px", Pixel},
		{"Pixel", Pixel},
		{" dip ", Dip},
		{"pt", Point},
		{"inches", Inch},
		{"mm", Millimeter},
		{"doc", Document},
		{"world", World},
		{"display", Display},
	}
	for _, tt := range tests {
		got, err := ParseUnit(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseUnit(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
	if _, err := ParseUnit("furlong"); !errors.Is(err, ErrUnsupportedUnit) {
		t.Errorf("ParseUnit(furlong) err = %v", err)
	}

	var u GraphicsUnit
	if err := u.UnmarshalText([]byte("mm")); err != nil || u != Millimeter {
		t.Errorf("UnmarshalText = %v, %v", u, err)
	}
}
