package pix

import (
	"fmt"
	"sync/atomic"
)

// Layer is one paintable plane of the canvas. Its buffer always has
// the same dimensions as the owning canvas.
type Layer struct {
	// ID is an opaque unique token assigned at creation. Persistence
	// collaborators round-trip it verbatim.
	ID string
	// Name is the user-visible layer name.
	Name string
	// Opacity in [0, 1]. Values outside the range are clamped by the
	// compositor.
	Opacity float64
	// Blend selects the channel-mixing function for compositing.
	Blend BlendMode
	// Visible layers participate in compositing; hidden ones are skipped.
	Visible bool
	// Locked layers reject paint-tool mutation at the application
	// level. The core carries the flag for persistence; it does not
	// enforce it per pixel.
	Locked bool
	// Pixels is the layer's raster. Exclusively owned by this layer.
	Pixels *Buffer
}

// layerSeq feeds NewLayer's ID generator.
var layerSeq atomic.Uint64

// NewLayer creates a visible, unlocked, fully opaque layer with a
// transparent buffer of the given canvas dimensions.
func NewLayer(name string, width, height int) *Layer {
	return &Layer{
		ID:      fmt.Sprintf("layer-%d", layerSeq.Add(1)),
		Name:    name,
		Opacity: 1,
		Blend:   BlendNormal,
		Visible: true,
		Pixels:  New(width, height),
	}
}

// Clone returns a deep copy of the layer with a fresh ID.
func (l *Layer) Clone() *Layer {
	return &Layer{
		ID:      fmt.Sprintf("layer-%d", layerSeq.Add(1)),
		Name:    l.Name,
		Opacity: l.Opacity,
		Blend:   l.Blend,
		Visible: l.Visible,
		Locked:  l.Locked,
		Pixels:  l.Pixels.Clone(),
	}
}

// LayerStack is the ordered layer list of a canvas.
// Index 0 is the topmost layer in paint order; the compositor iterates
// from the last index to the first to accumulate bottom to top.
type LayerStack []*Layer

// Add inserts a layer at the given index (0 = top). Out-of-range
// indices clamp to the nearest valid position.
func (s *LayerStack) Add(layer *Layer, index int) {
	if index < 0 {
		index = 0
	}
	if index > len(*s) {
		index = len(*s)
	}
	*s = append(*s, nil)
	copy((*s)[index+1:], (*s)[index:])
	(*s)[index] = layer
}

// Duplicate clones the layer at index and inserts the copy directly
// above it. It returns the new layer, or nil for an invalid index.
func (s *LayerStack) Duplicate(index int) *Layer {
	if index < 0 || index >= len(*s) {
		return nil
	}
	dup := (*s)[index].Clone()
	dup.Name = dup.Name + " copy"
	s.Add(dup, index)
	return dup
}

// Delete removes the layer at index. It reports whether a layer was
// removed; the last remaining layer is never deleted.
func (s *LayerStack) Delete(index int) bool {
	if index < 0 || index >= len(*s) || len(*s) <= 1 {
		return false
	}
	*s = append((*s)[:index], (*s)[index+1:]...)
	return true
}

// Move relocates the layer at from to position to. Out-of-range
// arguments are a silent no-op.
func (s *LayerStack) Move(from, to int) {
	if from < 0 || from >= len(*s) || to < 0 || to >= len(*s) || from == to {
		return
	}
	layer := (*s)[from]
	*s = append((*s)[:from], (*s)[from+1:]...)
	*s = append(*s, nil)
	copy((*s)[to+1:], (*s)[to:])
	(*s)[to] = layer
}

// Index returns the position of the layer with the given ID, or -1.
func (s LayerStack) Index(id string) int {
	for i, l := range s {
		if l.ID == id {
			return i
		}
	}
	return -1
}
