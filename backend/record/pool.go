package record

import (
	"github.com/gogpu/uigfx"
)

// ImageRef is a reference to an image in the resource pool.
type ImageRef uint32

// FontRef is a reference to a font in the resource pool.
type FontRef uint32

// PathRef is a reference to a path in the resource pool.
type PathRef uint32

// ResourcePool stores the images, fonts and paths referenced by commands.
// Images and fonts are deduplicated by identity; paths are cloned so later
// changes by the caller do not alter the recording.
//
// ResourcePool is not safe for concurrent use.
type ResourcePool struct {
	images   []*uigfx.Image
	imageIdx map[*uigfx.Image]ImageRef
	fonts    []*uigfx.Font
	fontIdx  map[*uigfx.Font]FontRef
	paths    []*uigfx.Path
}

// NewResourcePool creates an empty pool.
func NewResourcePool() *ResourcePool {
	return &ResourcePool{
		imageIdx: make(map[*uigfx.Image]ImageRef),
		fontIdx:  make(map[*uigfx.Font]FontRef),
		paths:    make([]*uigfx.Path, 0, 16),
	}
}

// AddImage adds img unless it is already pooled and returns its reference.
func (p *ResourcePool) AddImage(img *uigfx.Image) ImageRef {
	if ref, ok := p.imageIdx[img]; ok {
		return ref
	}
	// #nosec G115 -- pool size is bounded by available memory
	ref := ImageRef(uint32(len(p.images)))
	p.images = append(p.images, img)
	p.imageIdx[img] = ref
	return ref
}

// Image returns the image for ref, or nil.
func (p *ResourcePool) Image(ref ImageRef) *uigfx.Image {
	if int(ref) >= len(p.images) {
		return nil
	}
	return p.images[ref]
}

// AddFont adds font unless it is already pooled and returns its reference.
func (p *ResourcePool) AddFont(font *uigfx.Font) FontRef {
	if ref, ok := p.fontIdx[font]; ok {
		return ref
	}
	// #nosec G115 -- pool size is bounded by available memory
	ref := FontRef(uint32(len(p.fonts)))
	p.fonts = append(p.fonts, font)
	p.fontIdx[font] = ref
	return ref
}

// Font returns the font for ref, or nil.
func (p *ResourcePool) Font(ref FontRef) *uigfx.Font {
	if int(ref) >= len(p.fonts) {
		return nil
	}
	return p.fonts[ref]
}

// AddPath adds a clone of path and returns its reference.
func (p *ResourcePool) AddPath(path *uigfx.Path) PathRef {
	// #nosec G115 -- pool size is bounded by available memory
	ref := PathRef(uint32(len(p.paths)))
	p.paths = append(p.paths, path.Clone())
	return ref
}

// Path returns the path for ref, or nil.
func (p *ResourcePool) Path(ref PathRef) *uigfx.Path {
	if int(ref) >= len(p.paths) {
		return nil
	}
	return p.paths[ref]
}

// ImageCount returns the number of pooled images.
func (p *ResourcePool) ImageCount() int { return len(p.images) }

// FontCount returns the number of pooled fonts.
func (p *ResourcePool) FontCount() int { return len(p.fonts) }

// PathCount returns the number of pooled paths.
func (p *ResourcePool) PathCount() int { return len(p.paths) }

// Clear removes all resources.
func (p *ResourcePool) Clear() {
	clear(p.images)
	p.images = p.images[:0]
	clear(p.imageIdx)
	clear(p.fonts)
	p.fonts = p.fonts[:0]
	clear(p.fontIdx)
	p.paths = p.paths[:0]
}
