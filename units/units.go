// Package units converts scalar, point, size and rectangle values between
// graphics unit systems (pixels, DIPs, points, inches, millimeters and
// friends) given a DPI and the kind of drawing destination.
//
// Every conversion pivots through inches:
//
//	inches = value / perInch(from)
//	result = inches * perInch(to)
//
// Converting a unit to itself returns the input unchanged, bit for bit.
package units

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gogpu/uigfx/geom"
)

// ErrUnsupportedUnit is returned for unit kinds the converter does not know.
var ErrUnsupportedUnit = errors.New("units: unsupported graphics unit")

// GraphicsUnit identifies a unit of measure.
type GraphicsUnit uint8

const (
	// World is the world coordinate system unit; it maps to device pixels.
	World GraphicsUnit = iota

	// Display is the unit of the display device: pixels for video
	// displays and 1/100 inch for printers.
	Display

	// Pixel is a device pixel.
	Pixel

	// Point is a printer's point (1/72 inch).
	Point

	// Inch is one inch.
	Inch

	// Document is the document unit (1/300 inch).
	Document

	// Millimeter is one millimeter.
	Millimeter

	// Dip is a device-independent pixel (1/96 inch).
	Dip
)

var unitNames = [...]string{
	World:      "world",
	Display:    "display",
	Pixel:      "px",
	Point:      "pt",
	Inch:       "in",
	Document:   "doc",
	Millimeter: "mm",
	Dip:        "dip",
}

// String returns the short name of the unit.
func (u GraphicsUnit) String() string {
	if int(u) < len(unitNames) {
		return unitNames[u]
	}
	return fmt.Sprintf("GraphicsUnit(%d)", uint8(u))
}

// ParseUnit parses a unit name as returned by String. A few long forms
// ("pixel", "point", "inch", "millimeter", "document") are accepted too.
func ParseUnit(s string) (GraphicsUnit, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range unitNames {
		if s == name {
			return GraphicsUnit(i), nil
		}
	}
	switch s {
	case "pixel", "pixels":
		return Pixel, nil
	case "point", "points":
		return Point, nil
	case "inch", "inches":
		return Inch, nil
	case "millimeter", "millimeters":
		return Millimeter, nil
	case "document":
		return Document, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedUnit, s)
}

// MarshalText implements encoding.TextMarshaler.
func (u GraphicsUnit) MarshalText() ([]byte, error) {
	if int(u) >= len(unitNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedUnit, uint8(u))
	}
	return []byte(u.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *GraphicsUnit) UnmarshalText(text []byte) error {
	v, err := ParseUnit(string(text))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// GraphicsType is the kind of surface a Graphics draws to.
type GraphicsType uint8

const (
	// TypeDisplay is a video display.
	TypeDisplay GraphicsType = iota

	// TypePostScript is a printer; Display units are 1/100 inch.
	TypePostScript

	// TypeMemory is an offscreen image.
	TypeMemory
)

// String returns the name of the graphics type.
func (t GraphicsType) String() string {
	switch t {
	case TypeDisplay:
		return "Display"
	case TypePostScript:
		return "PostScript"
	case TypeMemory:
		return "Memory"
	default:
		return "Unknown"
	}
}

// postScriptDisplayUnits is the number of Display units per inch on a printer.
const postScriptDisplayUnits = 100

// perInch returns how many units of u make one inch.
func perInch(u GraphicsUnit, dpi geom.Coord, typ GraphicsType) (geom.Coord, error) {
	switch u {
	case Document:
		return 300, nil
	case Inch:
		return 1, nil
	case Millimeter:
		return 25.4, nil
	case Display:
		if typ == TypePostScript {
			return postScriptDisplayUnits, nil
		}
		return dpi, nil
	case Pixel, World:
		return dpi, nil
	case Point:
		return 72, nil
	case Dip:
		return 96, nil
	default:
		return 0, fmt.Errorf("%w: %v", ErrUnsupportedUnit, u)
	}
}

// Convert converts value from one unit to another at the given DPI.
func Convert(from, to GraphicsUnit, dpi, value geom.Coord, typ GraphicsType) (geom.Coord, error) {
	if from == to {
		return value, nil
	}
	fromPerInch, err := perInch(from, dpi, typ)
	if err != nil {
		return 0, err
	}
	toPerInch, err := perInch(to, dpi, typ)
	if err != nil {
		return 0, err
	}
	inches := value / fromPerInch
	return inches * toPerInch, nil
}

// ConvertPoint converts a point. X uses dpi.Width and Y uses dpi.Height.
func ConvertPoint(from, to GraphicsUnit, dpi geom.SizeD, p geom.PointD, typ GraphicsType) (geom.PointD, error) {
	x, err := Convert(from, to, dpi.Width, p.X, typ)
	if err != nil {
		return geom.PointD{}, err
	}
	y, err := Convert(from, to, dpi.Height, p.Y, typ)
	if err != nil {
		return geom.PointD{}, err
	}
	return geom.PointD{X: x, Y: y}, nil
}

// ConvertSize converts a size. Width uses dpi.Width and Height uses dpi.Height.
func ConvertSize(from, to GraphicsUnit, dpi geom.SizeD, s geom.SizeD, typ GraphicsType) (geom.SizeD, error) {
	w, err := Convert(from, to, dpi.Width, s.Width, typ)
	if err != nil {
		return geom.SizeD{}, err
	}
	h, err := Convert(from, to, dpi.Height, s.Height, typ)
	if err != nil {
		return geom.SizeD{}, err
	}
	return geom.SizeD{Width: w, Height: h}, nil
}

// ConvertRect converts a rectangle's location and size independently.
func ConvertRect(from, to GraphicsUnit, dpi geom.SizeD, r geom.RectD, typ GraphicsType) (geom.RectD, error) {
	loc, err := ConvertPoint(from, to, dpi, r.Location(), typ)
	if err != nil {
		return geom.RectD{}, err
	}
	size, err := ConvertSize(from, to, dpi, r.Size(), typ)
	if err != nil {
		return geom.RectD{}, err
	}
	return geom.RectFromSize(loc, size), nil
}

// Converter binds a DPI and destination type for repeated conversions.
type Converter struct {
	DPI  geom.SizeD
	Type GraphicsType
}

// NewConverter creates a converter for a display with the same DPI on
// both axes.
func NewConverter(dpi geom.Coord, typ GraphicsType) Converter {
	return Converter{DPI: geom.SizeD{Width: dpi, Height: dpi}, Type: typ}
}

// Convert converts a horizontal scalar.
func (c Converter) Convert(from, to GraphicsUnit, value geom.Coord) (geom.Coord, error) {
	return Convert(from, to, c.DPI.Width, value, c.Type)
}

// Point converts a point.
func (c Converter) Point(from, to GraphicsUnit, p geom.PointD) (geom.PointD, error) {
	return ConvertPoint(from, to, c.DPI, p, c.Type)
}

// Size converts a size.
func (c Converter) Size(from, to GraphicsUnit, s geom.SizeD) (geom.SizeD, error) {
	return ConvertSize(from, to, c.DPI, s, c.Type)
}

// Rect converts a rectangle.
func (c Converter) Rect(from, to GraphicsUnit, r geom.RectD) (geom.RectD, error) {
	return ConvertRect(from, to, c.DPI, r, c.Type)
}
