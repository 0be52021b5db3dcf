package raster

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/gogpu/uigfx"
	"github.com/gogpu/uigfx/geom"
)

// Name is the registry name of the raster backend.
const Name = "raster"

func init() {
	uigfx.RegisterHandler(Name, func() uigfx.FactoryHandler {
		return NewHandler()
	})
}

// Handler creates raster backends.
type Handler struct {
	opts []Option
}

var _ uigfx.FactoryHandler = (*Handler)(nil)

// NewHandler creates a handler passing opts to every backend it creates.
func NewHandler(opts ...Option) *Handler {
	return &Handler{opts: opts}
}

// CreateForImage implements uigfx.FactoryHandler. The image source must
// be a draw.Image.
func (h *Handler) CreateForImage(img *uigfx.Image) (uigfx.Backend, error) {
	dst, ok := img.Source().(draw.Image)
	if !ok {
		return nil, fmt.Errorf("raster: image of type %T is not drawable", img.Source())
	}
	return New(dst, h.opts...), nil
}

// CreateForScreen implements uigfx.FactoryHandler.
func (h *Handler) CreateForScreen() (uigfx.Backend, error) {
	return nil, uigfx.ErrNoScreen
}

// CreateMeasure implements uigfx.FactoryHandler. The backend draws into
// a single scratch pixel.
func (h *Handler) CreateMeasure(scaleFactor geom.Coord) (uigfx.Backend, error) {
	opts := append([]Option{WithDPI(96 * scaleFactor)}, h.opts...)
	return New(image.NewRGBA(image.Rect(0, 0, 1, 1)), opts...), nil
}
