package pix

// smudgePixel blends the sampled source color into the destination
// pixel: dest*(1-strength) + src*strength per channel, alpha included.
func smudgePixel(buf *Buffer, x, y int, src RGBA, strength float64, opts BrushOptions) bool {
	if !opts.allows(x, y) {
		return false
	}
	dst, ok := buf.Get(x, y)
	if !ok {
		return false
	}
	return buf.Set(x, y, dst.Lerp(src, strength))
}

// smudgeStamp drags the color sampled at (fromX, fromY) into a
// circular dab at (toX, toY).
func smudgeStamp(buf *Buffer, fromX, fromY, toX, toY, size int, strength float64, opts BrushOptions) bool {
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
			src, ok := buf.Get(fromX+dx, fromY+dy)
			if !ok {
				continue
			}
			if smudgePixel(buf, toX+dx, toY+dy, src, strength, opts) {
				changed = true
			}
		}
	}
	return changed
}

// Smudge drags color along the Bresenham path from (x0, y0) to
// (x1, y1): at each step the previous path point is the smudge source,
// so pigment is pulled forward with the stroke. strength in [0, 1]
// controls how much of the source replaces the destination per stamp.
// It reports whether any pixel changed.
func Smudge(buf *Buffer, x0, y0, x1, y1, size int, strength float64, opts BrushOptions) bool {
	strength = clamp01(strength)
	if strength == 0 {
		return false
	}
	changed := false
	prevX, prevY := x0, y0
	first := true
	bresenhamSteps(x0, y0, x1, y1, func(x, y int) {
		if first {
			// Nothing to drag onto the stroke's first point.
			first = false
			return
		}
		if smudgeStamp(buf, prevX, prevY, x, y, size, strength, opts) {
			changed = true
		}
		prevX, prevY = x, y
	})
	return changed
}
