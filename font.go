package uigfx

import (
	"fmt"
	"strings"
	"sync"
)

// FontStyle is a set of font style flags.
type FontStyle uint8

const (
	FontBold FontStyle = 1 << iota
	FontItalic
	FontUnderline
	FontStrikeout

	// FontRegular is the empty style.
	FontRegular FontStyle = 0
)

func (s FontStyle) String() string {
	if s == FontRegular {
		return "regular"
	}
	var parts []string
	for _, f := range []struct {
		flag FontStyle
		name string
	}{
		{FontBold, "bold"},
		{FontItalic, "italic"},
		{FontUnderline, "underline"},
		{FontStrikeout, "strikeout"},
	} {
		if s&f.flag != 0 {
			parts = append(parts, f.name)
		}
	}
	return strings.Join(parts, "|")
}

// Font identifies a typeface, size in points and style. Backends map the
// name to a concrete face. Derived styles from WithStyle are cached so
// that the same style always yields the same *Font.
type Font struct {
	name  string
	size  Coord
	style FontStyle

	mu      sync.Mutex
	derived map[FontStyle]*Font
	base    *Font
	closed  bool
}

// NewFont creates a font. size is in points.
func NewFont(name string, size Coord, style FontStyle) *Font {
	return &Font{name: name, size: size, style: style}
}

// Name returns the family name.
func (f *Font) Name() string { return f.name }

// Size returns the size in points.
func (f *Font) Size() Coord { return f.size }

// SizeInDips returns the size in device-independent pixels.
func (f *Font) SizeInDips() Coord { return f.size * 96 / 72 }

// Style returns the style flags.
func (f *Font) Style() FontStyle { return f.style }

// IsBold reports whether the bold flag is set.
func (f *Font) IsBold() bool { return f.style&FontBold != 0 }

// IsItalic reports whether the italic flag is set.
func (f *Font) IsItalic() bool { return f.style&FontItalic != 0 }

// IsUnderlined reports whether the underline flag is set.
func (f *Font) IsUnderlined() bool { return f.style&FontUnderline != 0 }

// IsStrikeout reports whether the strikeout flag is set.
func (f *Font) IsStrikeout() bool { return f.style&FontStrikeout != 0 }

// WithStyle returns the font with the given style. The result for each
// style is created once and shared.
func (f *Font) WithStyle(style FontStyle) *Font {
	if style == f.style {
		return f
	}
	root := f
	if f.base != nil {
		root = f.base
	}
	if style == root.style {
		return root
	}

	root.mu.Lock()
	defer root.mu.Unlock()
	if d, ok := root.derived[style]; ok {
		return d
	}
	if root.derived == nil {
		root.derived = make(map[FontStyle]*Font)
	}
	d := &Font{name: root.name, size: root.size, style: style, base: root}
	root.derived[style] = d
	return d
}

// WithSize returns a new font with another size.
func (f *Font) WithSize(size Coord) *Font {
	return NewFont(f.name, size, f.style)
}

// Close releases the font and its derived styles.
func (f *Font) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

// IsClosed reports whether the font was closed.
func (f *Font) IsClosed() bool {
	if f.base != nil && f.base.IsClosed() {
		return true
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

func (f *Font) String() string {
	return fmt.Sprintf("%s %gpt %s", f.name, f.size, f.style)
}
