package record

import (
	"github.com/gogpu/uigfx"
	"github.com/gogpu/uigfx/geom"
)

// Name is the registry name of the recording backend.
const Name = "record"

func init() {
	uigfx.RegisterHandler(Name, func() uigfx.FactoryHandler {
		return NewHandler()
	})
}

// Handler creates recording backends.
type Handler struct {
	opts []Option
}

var _ uigfx.FactoryHandler = (*Handler)(nil)

// NewHandler creates a handler passing opts to every backend it creates.
func NewHandler(opts ...Option) *Handler {
	return &Handler{opts: opts}
}

// CreateForImage implements uigfx.FactoryHandler. Nothing is drawn into
// the image.
func (h *Handler) CreateForImage(img *uigfx.Image) (uigfx.Backend, error) {
	return New(img.Size(), h.opts...), nil
}

// CreateForScreen implements uigfx.FactoryHandler.
func (h *Handler) CreateForScreen() (uigfx.Backend, error) {
	return nil, uigfx.ErrNoScreen
}

// CreateMeasure implements uigfx.FactoryHandler.
func (h *Handler) CreateMeasure(scaleFactor geom.Coord) (uigfx.Backend, error) {
	opts := append([]Option{WithDPI(96 * scaleFactor)}, h.opts...)
	return New(geom.SizeI{}, opts...), nil
}
