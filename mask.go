package pix

import "image"

// Mask is a boolean per-pixel selection mask.
// Values are 0 (unselected) or 1 (selected), one byte per pixel,
// row-major. A mask always matches the current canvas dimensions;
// selection tools replace it wholesale rather than patching it across
// unrelated invocations.
type Mask struct {
	width  int
	height int
	data   []uint8
}

// NewMask creates a new empty mask with the given dimensions.
// All values are initialized to 0 (unselected).
func NewMask(width, height int) *Mask {
	return &Mask{
		width:  width,
		height: height,
		data:   make([]uint8, width*height),
	}
}

// Bounds returns the mask dimensions as an image.Rectangle.
func (m *Mask) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.width, m.height)
}

// Width returns the mask width.
func (m *Mask) Width() int { return m.width }

// Height returns the mask height.
func (m *Mask) Height() int { return m.height }

// At reports whether (x, y) is selected.
// Coordinates outside the mask bounds are unselected.
func (m *Mask) At(x, y int) bool {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return false
	}
	return m.data[y*m.width+x] != 0
}

// Set marks (x, y) as selected or unselected.
// Coordinates outside the mask bounds are ignored.
func (m *Mask) Set(x, y int, selected bool) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	if selected {
		m.data[y*m.width+x] = 1
	} else {
		m.data[y*m.width+x] = 0
	}
}

// Fill selects or deselects every pixel.
func (m *Mask) Fill(selected bool) {
	v := uint8(0)
	if selected {
		v = 1
	}
	for i := range m.data {
		m.data[i] = v
	}
}

// Invert flips every value (selected becomes unselected and vice versa).
func (m *Mask) Invert() {
	for i := range m.data {
		m.data[i] ^= 1
	}
}

// Clone creates a copy of the mask.
func (m *Mask) Clone() *Mask {
	clone := NewMask(m.width, m.height)
	copy(clone.data, m.data)
	return clone
}

// Data returns the underlying 0/1 mask data slice.
func (m *Mask) Data() []uint8 {
	return m.data
}

// Count returns the number of selected pixels.
func (m *Mask) Count() int {
	n := 0
	for _, v := range m.data {
		if v != 0 {
			n++
		}
	}
	return n
}

// Any reports whether at least one pixel is selected.
func (m *Mask) Any() bool {
	for _, v := range m.data {
		if v != 0 {
			return true
		}
	}
	return false
}

// Grow returns a new mask dilated by one pixel: every pixel that is
// selected, or has a selected 4-neighbor, is selected in the result.
// Grow(S) is always a superset of S. The input is never written while
// it is being scanned. A matching "feather" soft-edge operation is a
// deliberate extension point and intentionally not provided here.
func (m *Mask) Grow() *Mask {
	out := NewMask(m.width, m.height)
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if m.At(x, y) || m.At(x-1, y) || m.At(x+1, y) || m.At(x, y-1) || m.At(x, y+1) {
				out.data[y*m.width+x] = 1
			}
		}
	}
	return out
}

// Shrink returns a new mask eroded by one pixel: only pixels whose
// four neighbors are all selected stay selected. Shrink(S) is always a
// subset of S; it is not the inverse of Grow.
func (m *Mask) Shrink() *Mask {
	out := NewMask(m.width, m.height)
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if m.At(x, y) && m.At(x-1, y) && m.At(x+1, y) && m.At(x, y-1) && m.At(x, y+1) {
				out.data[y*m.width+x] = 1
			}
		}
	}
	return out
}

// Outline returns a new mask containing only the border of the
// selection: selected pixels with at least one unselected 4-neighbor.
func (m *Mask) Outline() *Mask {
	out := NewMask(m.width, m.height)
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if !m.At(x, y) {
				continue
			}
			if !m.At(x-1, y) || !m.At(x+1, y) || !m.At(x, y-1) || !m.At(x, y+1) {
				out.data[y*m.width+x] = 1
			}
		}
	}
	return out
}

// SelectionBounds returns the tight bounding rectangle of the selected
// pixels, with inclusive extents converted to width/height
// (max-min+1). It returns nil when nothing is selected.
func (m *Mask) SelectionBounds() *image.Rectangle {
	minX, minY := m.width, m.height
	maxX, maxY := -1, -1
	for y := 0; y < m.height; y++ {
		row := m.data[y*m.width : (y+1)*m.width]
		for x, v := range row {
			if v == 0 {
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}
	if maxX < 0 {
		return nil
	}
	r := image.Rect(minX, minY, maxX+1, maxY+1)
	return &r
}
