package pix

// fillMatch reports whether c is close enough to target to be filled.
// With tolerance 0 the match is exact; otherwise the sum of absolute
// per-channel differences must not exceed 4*tolerance.
func fillMatch(c, target RGBA, tolerance int) bool {
	if tolerance <= 0 {
		return c == target
	}
	sum := abs(int(c.R)-int(target.R)) +
		abs(int(c.G)-int(target.G)) +
		abs(int(c.B)-int(target.B)) +
		abs(int(c.A)-int(target.A))
	return sum <= 4*tolerance
}

// FloodFill bucket-fills the region connected to (x0, y0) with fill,
// replacing colors within tolerance of the seed pixel's color. A
// non-nil mask restricts the fill to selected pixels.
//
// The fill is a scanline BFS: each queued seed is extended left and
// right while the color matches, the whole horizontal span is written
// in one pass, and only the matching pixels directly above and below
// the span are enqueued. It reports whether any pixel changed; filling
// a region that already has the fill color, or seeding out of bounds
// or outside the mask, is a no-op.
func FloodFill(buf *Buffer, x0, y0 int, fill RGBA, tolerance int, mask *Mask) bool {
	target, ok := buf.Get(x0, y0)
	if !ok {
		return false
	}
	if target == fill {
		return false
	}
	if mask != nil && !mask.At(x0, y0) {
		return false
	}

	w, h := buf.Width(), buf.Height()
	visited := make([]bool, w*h)
	inside := func(x, y int) bool {
		if x < 0 || x >= w || y < 0 || y >= h {
			return false
		}
		if mask != nil && !mask.At(x, y) {
			return false
		}
		if visited[y*w+x] {
			return false
		}
		c, _ := buf.Get(x, y)
		return fillMatch(c, target, tolerance)
	}

	type span struct{ x, y int }
	queue := []span{{x0, y0}}
	visited[y0*w+x0] = true
	changed := false

	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]

		// Extend the span left and right from the seed.
		left := s.x
		for inside(left-1, s.y) {
			left--
			visited[s.y*w+left] = true
		}
		right := s.x
		for inside(right+1, s.y) {
			right++
			visited[s.y*w+right] = true
		}

		for x := left; x <= right; x++ {
			if buf.Set(x, s.y, fill) {
				changed = true
			}
			if inside(x, s.y-1) {
				visited[(s.y-1)*w+x] = true
				queue = append(queue, span{x, s.y - 1})
			}
			if inside(x, s.y+1) {
				visited[(s.y+1)*w+x] = true
				queue = append(queue, span{x, s.y + 1})
			}
		}
	}

	if changed {
		Logger().Debug("flood fill", "x", x0, "y", y0, "tolerance", tolerance)
	}
	return changed
}
