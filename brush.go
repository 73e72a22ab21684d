package pix

import (
	"fmt"
	"math"
)

// BrushOptions carries the optional constraints shared by the stamping
// tools. The zero value paints unconstrained.
type BrushOptions struct {
	// Mask restricts painting to selected pixels when non-nil.
	Mask *Mask
	// Pattern gates coverage with a repeating stamp pattern when non-nil.
	Pattern StampPattern
}

// allows reports whether the constraints permit painting (x, y).
func (o BrushOptions) allows(x, y int) bool {
	if o.Mask != nil && !o.Mask.At(x, y) {
		return false
	}
	if o.Pattern != nil && !o.Pattern.Covers(x, y) {
		return false
	}
	return true
}

// StampBrush stamps one circular brush dab centered at (cx, cy).
// The radius is floor(size/2); a pixel belongs to the dab when
// dx*dx+dy*dy <= r*r, scanned over the dab's bounding box. Size 1
// paints the single center pixel. It reports whether any pixel
// changed.
func StampBrush(buf *Buffer, cx, cy, size int, c RGBA, opts BrushOptions) bool {
	if size < 1 {
		return false
	}
	r := size / 2
	changed := false
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy > r*r {
				continue
			}
			x, y := cx+dx, cy+dy
			if !opts.allows(x, y) {
				continue
			}
			if buf.Set(x, y, c) {
				changed = true
			}
		}
	}
	return changed
}

// DrawBrushLine stamps the brush at every step of the Bresenham line
// from (x0, y0) to (x1, y1). It reports whether any pixel changed.
func DrawBrushLine(buf *Buffer, x0, y0, x1, y1, size int, c RGBA, opts BrushOptions) bool {
	changed := false
	bresenhamSteps(x0, y0, x1, y1, func(x, y int) {
		if StampBrush(buf, x, y, size, c, opts) {
			changed = true
		}
	})
	return changed
}

// Erase stamps transparent black along the Bresenham line, i.e. the
// eraser is the brush with the clear color.
func Erase(buf *Buffer, x0, y0, x1, y1, size int, opts BrushOptions) bool {
	return DrawBrushLine(buf, x0, y0, x1, y1, size, Transparent, opts)
}

// SymmetryKind selects how a stroke is replicated.
type SymmetryKind uint8

const (
	// SymmetryNone draws the stroke once.
	SymmetryNone SymmetryKind = iota
	// SymmetryMirror reflects the stroke across an axis through
	// Center at Angle.
	SymmetryMirror
	// SymmetryRotational repeats the stroke Order times around Center.
	SymmetryRotational
)

// Symmetry describes stroke replication for symmetric painting.
type Symmetry struct {
	Kind   SymmetryKind
	Center Point
	// Angle is the mirror axis angle in radians (SymmetryMirror only).
	Angle float64
	// Order is the number of rotational copies (SymmetryRotational
	// only); values below 2 fall back to a single stroke.
	Order int
}

// transforms returns the full transform set, identity included.
func (s Symmetry) transforms() []Matrix {
	switch s.Kind {
	case SymmetryMirror:
		return []Matrix{Identity(), MirrorMatrix(s.Center, s.Angle)}
	case SymmetryRotational:
		if s.Order < 2 {
			return []Matrix{Identity()}
		}
		ms := make([]Matrix, 0, s.Order)
		for k := 0; k < s.Order; k++ {
			angle := 2 * math.Pi * float64(k) / float64(s.Order)
			ms = append(ms, RotateAboutMatrix(s.Center, angle))
		}
		return ms
	}
	return []Matrix{Identity()}
}

// DrawBrushLineWithSymmetry draws the stroke once per symmetry
// transform, mapping the line endpoints through each transform and
// quantizing back to pixel indices. Transformed segments that land on
// identical endpoints are drawn only once: segments are keyed by their
// endpoint pair with the endpoints in canonical order, so a stroke
// lying on the mirror axis is not double-painted. It reports whether
// any pixel changed.
func DrawBrushLineWithSymmetry(buf *Buffer, x0, y0, x1, y1, size int, c RGBA, opts BrushOptions, sym Symmetry) bool {
	changed := false
	seen := make(map[string]bool)
	for _, m := range sym.transforms() {
		p0 := m.TransformPoint(Pt(float64(x0), float64(y0)))
		p1 := m.TransformPoint(Pt(float64(x1), float64(y1)))
		ax := int(math.Round(p0.X))
		ay := int(math.Round(p0.Y))
		bx := int(math.Round(p1.X))
		by := int(math.Round(p1.Y))

		key := segmentKey(ax, ay, bx, by)
		if seen[key] {
			continue
		}
		seen[key] = true

		if DrawBrushLine(buf, ax, ay, bx, by, size, c, opts) {
			changed = true
		}
	}
	return changed
}

// segmentKey builds an order-independent key for a line segment.
func segmentKey(ax, ay, bx, by int) string {
	if bx < ax || (bx == ax && by < ay) {
		ax, ay, bx, by = bx, by, ax, ay
	}
	return fmt.Sprintf("%d,%d-%d,%d", ax, ay, bx, by)
}
