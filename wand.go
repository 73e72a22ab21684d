package pix

// colorsMatch reports whether two colors are within tolerance on every
// channel, alpha included.
func colorsMatch(a, b RGBA, tolerance int) bool {
	return abs(int(a.R)-int(b.R)) <= tolerance &&
		abs(int(a.G)-int(b.G)) <= tolerance &&
		abs(int(a.B)-int(b.B)) <= tolerance &&
		abs(int(a.A)-int(b.A)) <= tolerance
}

// MagicWand selects the 4-connected region of pixels whose color is
// within tolerance of the pixel at (x0, y0), per channel. The
// traversal is an iterative stack-based flood fill; recursion depth
// never depends on region size. It returns a fresh mask, which is
// empty when the start coordinate is out of bounds.
func MagicWand(buf *Buffer, x0, y0, tolerance int) *Mask {
	w, h := buf.Width(), buf.Height()
	mask := NewMask(w, h)
	target, ok := buf.Get(x0, y0)
	if !ok {
		return mask
	}

	visited := make([]bool, w*h)
	type point struct{ x, y int }
	stack := []point{{x0, y0}}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if p.x < 0 || p.x >= w || p.y < 0 || p.y >= h {
			continue
		}
		i := p.y*w + p.x
		if visited[i] {
			continue
		}
		visited[i] = true

		c, _ := buf.Get(p.x, p.y)
		if !colorsMatch(c, target, tolerance) {
			continue
		}
		mask.data[i] = 1

		stack = append(stack,
			point{p.x - 1, p.y},
			point{p.x + 1, p.y},
			point{p.x, p.y - 1},
			point{p.x, p.y + 1},
		)
	}

	return mask
}

// SelectRect returns a fresh mask selecting the axis-aligned rectangle
// between the two corners, inclusive, clipped to the canvas.
func SelectRect(w, h, x0, y0, x1, y1 int) *Mask {
	mask := NewMask(w, h)
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			mask.Set(x, y, true)
		}
	}
	return mask
}
