package uigfx

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Interpolation selects the resampling filter for scaled image drawing.
type Interpolation uint8

const (
	InterpolationNearest Interpolation = iota
	InterpolationBilinear
	InterpolationBicubic
)

var interpolationNames = [...]string{"nearest", "bilinear", "bicubic"}

func (i Interpolation) String() string {
	if int(i) < len(interpolationNames) {
		return interpolationNames[i]
	}
	return fmt.Sprintf("Interpolation(%d)", i)
}

// MarshalText implements encoding.TextMarshaler.
func (i Interpolation) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (i *Interpolation) UnmarshalText(text []byte) error {
	for n, name := range interpolationNames {
		if string(text) == name {
			*i = Interpolation(n)
			return nil
		}
	}
	return fmt.Errorf("uigfx: unknown interpolation %q", text)
}

// FontSpec names a font in configuration files.
type FontSpec struct {
	Name  string    `yaml:"name"`
	Size  Coord     `yaml:"size"`
	Style FontStyle `yaml:"-"`
	Bold  bool      `yaml:"bold"`
}

// Font creates the described font.
func (s FontSpec) Font() *Font {
	style := s.Style
	if s.Bold {
		style |= FontBold
	}
	return NewFont(s.Name, s.Size, style)
}

// Config holds defaults applied to every Graphics created by a Factory.
type Config struct {
	// Antialias enables smoothing of shapes and text.
	Antialias bool `yaml:"antialias"`

	// Interpolation is the filter for scaled image drawing.
	Interpolation Interpolation `yaml:"interpolation"`

	// ScaleFactor overrides the DPI derived scale factor when positive.
	ScaleFactor Coord `yaml:"scale_factor"`

	// DefaultFont is used when a drawing operation has no font.
	DefaultFont FontSpec `yaml:"default_font"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Antialias:     true,
		Interpolation: InterpolationBilinear,
		DefaultFont:   FontSpec{Name: "sans-serif", Size: 9},
	}
}

// LoadConfig reads a YAML configuration. Keys missing from the input keep
// their DefaultConfig values; an empty input yields the defaults.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return DefaultConfig(), fmt.Errorf("uigfx: load config: %w", err)
	}
	if cfg.ScaleFactor < 0 {
		return DefaultConfig(), fmt.Errorf("uigfx: load config: negative scale_factor %g", cfg.ScaleFactor)
	}
	return cfg, nil
}

// Option configures a Factory.
//
// Example:
//
//	factory, err := uigfx.OpenFactory("raster",
//	    uigfx.WithScaleFactor(2),
//	    uigfx.WithAntialias(false))
type Option func(*Config)

// WithConfig replaces the whole configuration.
func WithConfig(c Config) Option {
	return func(cfg *Config) {
		*cfg = c
	}
}

// WithAntialias enables or disables antialiasing.
func WithAntialias(on bool) Option {
	return func(cfg *Config) {
		cfg.Antialias = on
	}
}

// WithInterpolation sets the image interpolation filter.
func WithInterpolation(i Interpolation) Option {
	return func(cfg *Config) {
		cfg.Interpolation = i
	}
}

// WithScaleFactor fixes the scale factor instead of deriving it from the
// backend DPI.
func WithScaleFactor(f Coord) Option {
	return func(cfg *Config) {
		cfg.ScaleFactor = f
	}
}

// WithDefaultFont sets the default font.
func WithDefaultFont(name string, size Coord) Option {
	return func(cfg *Config) {
		cfg.DefaultFont = FontSpec{Name: name, Size: size}
	}
}
