package uigfx

import (
	"github.com/gogpu/uigfx/geom"
)

// Clip returns the current clip region in device coordinates, or nil when
// drawing is not clipped.
func (g *Graphics) Clip() *Region { return g.clip }

// SetClip replaces the clip region. region is in device coordinates; nil
// removes clipping.
func (g *Graphics) SetClip(region *Region) {
	g.clip = region
	if region == nil {
		g.backend.DestroyClip()
		return
	}
	g.backend.SetClip(region)
}

// DestroyClip removes clipping.
func (g *Graphics) DestroyClip() {
	g.SetClip(nil)
}

// ClipDepth returns the number of saved clip regions.
func (g *Graphics) ClipDepth() int { return len(g.clips) }

// pushClip saves the clip and intersects it with region.
func (g *Graphics) pushClip(region *Region) {
	g.clips = append(g.clips, g.clip)
	g.SetClip(g.clip.Intersect(region))
}

// unwindClips restores the clip saved at stack depth and drops every
// entry above it.
func (g *Graphics) unwindClips(depth int) {
	prev := g.clips[depth]
	clear(g.clips[depth:])
	g.clips = g.clips[:depth]
	g.SetClip(prev)
}

// DoInsideClipped runs action with drawing clipped to rect, given in user
// coordinates. The transform and the clip are restored afterwards, also
// when action fails or panics. With isClipped false, action runs directly
// against the current state.
func (g *Graphics) DoInsideClipped(rect geom.RectD, action func() error, isClipped bool) error {
	if !isClipped {
		return action()
	}
	return g.DoInsideClippedRegion(NewRegion(g.transform.TransformRect(rect)), action, true)
}

// DoInsideClippedRegion is like DoInsideClipped for a device space region.
func (g *Graphics) DoInsideClippedRegion(region *Region, action func() error, isClipped bool) error {
	if !isClipped {
		return action()
	}
	depth := len(g.transforms)
	g.PushTransform()
	defer g.unwindTransforms(depth)

	clipDepth := len(g.clips)
	g.pushClip(region)
	defer g.unwindClips(clipDepth)

	return action()
}
