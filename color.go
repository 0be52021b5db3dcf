package uigfx

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color is a straight-alpha RGBA color. The zero value is the empty color,
// which means "not specified" and is distinct from transparent black.
type Color struct {
	R, G, B, A uint8
	set        bool
}

// Commonly used colors.
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(255, 255, 255)
	Red         = RGB(255, 0, 0)
	Green       = RGB(0, 128, 0)
	Blue        = RGB(0, 0, 255)
	Gray        = RGB(128, 128, 128)
	Transparent = NewColor(0, 0, 0, 0)
)

// RGB creates an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255, set: true}
}

// NewColor creates a color from straight-alpha components.
func NewColor(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a, set: true}
}

// FromColor converts a standard color.Color.
func FromColor(c color.Color) Color {
	if c == nil {
		return Color{}
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return NewColor(n.R, n.G, n.B, n.A)
}

// Hex parses "RGB", "RGBA", "RRGGBB" or "RRGGBBAA", with an optional
// leading '#'. Malformed input yields the empty color.
func Hex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		return Color{}
	}
	return c
}

// ParseHex is like Hex but reports malformed input.
func ParseHex(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")
	var digits int
	switch len(hex) {
	case 3, 4:
		digits = 1
	case 6, 8:
		digits = 2
	default:
		return Color{}, fmt.Errorf("uigfx: invalid hex color %q", s)
	}

	var comps [4]uint8
	comps[3] = 255
	for i := 0; i*digits < len(hex); i++ {
		v, err := strconv.ParseUint(hex[i*digits:(i+1)*digits], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("uigfx: invalid hex color %q: %w", s, err)
		}
		if digits == 1 {
			v *= 17
		}
		comps[i] = uint8(v)
	}
	return NewColor(comps[0], comps[1], comps[2], comps[3]), nil
}

// IsEmpty reports whether the color is unspecified.
func (c Color) IsEmpty() bool { return !c.set }

// IsVisible reports whether drawing with the color would change pixels.
func (c Color) IsVisible() bool { return c.set && c.A > 0 }

// IsOpaque reports whether the color is fully opaque.
func (c Color) IsOpaque() bool { return c.set && c.A == 255 }

// Or returns c, or fallback when c is empty.
func (c Color) Or(fallback Color) Color {
	if c.set {
		return c
	}
	return fallback
}

// WithAlpha returns the color with its alpha replaced.
func (c Color) WithAlpha(a uint8) Color {
	return NewColor(c.R, c.G, c.B, a)
}

// RGBA implements color.Color. The empty color converts to transparent.
func (c Color) RGBA() (r, g, b, a uint32) {
	if !c.set {
		return 0, 0, 0, 0
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// AsBrush returns a solid brush of the color.
func (c Color) AsBrush() *SolidBrush {
	return NewSolidBrush(c)
}

// AsPen returns a pen of the color with the given width.
func (c Color) AsPen(width Coord) *Pen {
	return NewPen(c, width)
}

// String returns "#rrggbbaa", or "empty".
func (c Color) String() string {
	if !c.set {
		return "empty"
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	if !c.set {
		return []byte{}, nil
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Empty text yields
// the empty color.
func (c *Color) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*c = Color{}
		return nil
	}
	parsed, err := ParseHex(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
