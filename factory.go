package uigfx

import (
	"errors"
	"fmt"

	"github.com/gogpu/uigfx/units"
)

// FactoryHandler creates backends for one drawing technology.
type FactoryHandler interface {
	// CreateForImage returns a backend drawing into img.
	CreateForImage(img *Image) (Backend, error)

	// CreateForScreen returns a backend for the screen, or ErrNoScreen.
	CreateForScreen() (Backend, error)

	// CreateMeasure returns a backend suitable only for text measurement
	// at the given scale factor.
	CreateMeasure(scaleFactor Coord) (Backend, error)
}

// Factory creates Graphics objects for one backend and holds the defaults
// they share: the Config, the default font and the measure canvases.
//
// Creating Graphics objects is safe from any goroutine except for the
// first RequireMeasure call per scale factor, which must not race with
// other RequireMeasure calls or SetMeasureCanvasOverride.
type Factory struct {
	handler     FactoryHandler
	config      Config
	defaultFont *Font

	measure         map[Coord]*Graphics
	measureOverride *Graphics
	closed          bool
}

// NewFactory creates a factory over handler.
func NewFactory(handler FactoryHandler, opts ...Option) *Factory {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Factory{
		handler:     handler,
		config:      cfg,
		defaultFont: cfg.DefaultFont.Font(),
		measure:     make(map[Coord]*Graphics),
	}
}

// Config returns the factory configuration.
func (f *Factory) Config() Config { return f.config }

// Handler returns the backend handler.
func (f *Factory) Handler() FactoryHandler { return f.handler }

// DefaultFont returns the shared default font.
func (f *Factory) DefaultFont() *Font { return f.defaultFont }

// FromImage creates a Graphics drawing into img.
func (f *Factory) FromImage(img *Image) (*Graphics, error) {
	if f.closed {
		return nil, fmt.Errorf("uigfx: FromImage: %w", ErrClosed)
	}
	if img == nil {
		return nil, errors.New("uigfx: FromImage: nil image")
	}
	b, err := f.handler.CreateForImage(img)
	if err != nil {
		return nil, fmt.Errorf("uigfx: create image graphics: %w", err)
	}
	return newGraphics(f, b, units.TypeMemory), nil
}

// FromScreen creates a Graphics drawing to the screen.
func (f *Factory) FromScreen() (*Graphics, error) {
	if f.closed {
		return nil, fmt.Errorf("uigfx: FromScreen: %w", ErrClosed)
	}
	b, err := f.handler.CreateForScreen()
	if err != nil {
		return nil, fmt.Errorf("uigfx: create screen graphics: %w", err)
	}
	return newGraphics(f, b, units.TypeDisplay), nil
}

// RequireMeasure returns the shared measurement Graphics for a scale
// factor, creating it on first use. The override set with
// SetMeasureCanvasOverride wins over the cache.
func (f *Factory) RequireMeasure(scaleFactor Coord) (*Graphics, error) {
	if f.closed {
		return nil, fmt.Errorf("uigfx: RequireMeasure: %w", ErrClosed)
	}
	if f.measureOverride != nil {
		return f.measureOverride, nil
	}
	if g, ok := f.measure[scaleFactor]; ok {
		return g, nil
	}
	b, err := f.handler.CreateMeasure(scaleFactor)
	if err != nil {
		return nil, fmt.Errorf("uigfx: create measure graphics: %w", err)
	}
	g := newGraphics(f, b, units.TypeMemory)
	g.scaleFactor = scaleFactor
	g.SetName(fmt.Sprintf("measure@%g", scaleFactor))
	f.measure[scaleFactor] = g
	Logger().Debug("uigfx: measure canvas created", "scale", scaleFactor)
	return g, nil
}

// SetMeasureCanvasOverride makes RequireMeasure return g for every scale
// factor. Pass nil to restore the cache.
func (f *Factory) SetMeasureCanvasOverride(g *Graphics) {
	f.measureOverride = g
}

// MeasureCanvasOverride returns the override, if any.
func (f *Factory) MeasureCanvasOverride() *Graphics {
	return f.measureOverride
}

// Close releases the cached measure canvases. The override is owned by
// the caller and left open. Graphics created earlier stay usable; new
// ones fail with ErrClosed.
func (f *Factory) Close() error {
	f.closed = true
	var errs []error
	for scale, g := range f.measure {
		if err := g.Close(); err != nil {
			errs = append(errs, err)
		}
		delete(f.measure, scale)
	}
	return errors.Join(errs...)
}
