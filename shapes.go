package pix

// shapeSet writes one pixel subject to the brush constraints and
// reports whether it changed.
func shapeSet(buf *Buffer, x, y int, c RGBA, opts BrushOptions) bool {
	if !opts.allows(x, y) {
		return false
	}
	return buf.Set(x, y, c)
}

// DrawRect draws the 1-pixel outline of the axis-aligned rectangle
// spanning the two corners, inclusive. It reports whether any pixel
// changed.
func DrawRect(buf *Buffer, x0, y0, x1, y1 int, c RGBA, opts BrushOptions) bool {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	changed := false
	for x := x0; x <= x1; x++ {
		if shapeSet(buf, x, y0, c, opts) {
			changed = true
		}
		if shapeSet(buf, x, y1, c, opts) {
			changed = true
		}
	}
	for y := y0; y <= y1; y++ {
		if shapeSet(buf, x0, y, c, opts) {
			changed = true
		}
		if shapeSet(buf, x1, y, c, opts) {
			changed = true
		}
	}
	return changed
}

// FillRect fills the axis-aligned rectangle spanning the two corners,
// inclusive. It reports whether any pixel changed.
func FillRect(buf *Buffer, x0, y0, x1, y1 int, c RGBA, opts BrushOptions) bool {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	changed := false
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if shapeSet(buf, x, y, c, opts) {
				changed = true
			}
		}
	}
	return changed
}

// DrawCircle draws a 1-pixel circle outline of radius r centered at
// (cx, cy) with the integer midpoint algorithm: the decision term
// starts at 3-2r and each step mirrors the computed octant point to
// all eight octants. It reports whether any pixel changed.
func DrawCircle(buf *Buffer, cx, cy, r int, c RGBA, opts BrushOptions) bool {
	if r < 0 {
		return false
	}
	changed := false
	plot8 := func(x, y int) {
		pts := [8][2]int{
			{cx + x, cy + y}, {cx - x, cy + y},
			{cx + x, cy - y}, {cx - x, cy - y},
			{cx + y, cy + x}, {cx - y, cy + x},
			{cx + y, cy - x}, {cx - y, cy - x},
		}
		for _, p := range pts {
			if shapeSet(buf, p[0], p[1], c, opts) {
				changed = true
			}
		}
	}

	x, y := 0, r
	d := 3 - 2*r
	for x <= y {
		plot8(x, y)
		if d < 0 {
			d += 4*x + 6
		} else {
			d += 4*(x-y) + 10
			y--
		}
		x++
	}
	return changed
}

// FillCircle fills the disc of radius r centered at (cx, cy) with a
// bounding-box membership scan (dx*dx+dy*dy <= r*r). It reports
// whether any pixel changed.
func FillCircle(buf *Buffer, cx, cy, r int, c RGBA, opts BrushOptions) bool {
	if r < 0 {
		return false
	}
	changed := false
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy > r*r {
				continue
			}
			if shapeSet(buf, cx+dx, cy+dy, c, opts) {
				changed = true
			}
		}
	}
	return changed
}

// DrawEllipse draws a 1-pixel ellipse outline with radii rx, ry
// centered at (cx, cy) using the two-region midpoint algorithm:
// region 1 steps x while the tangent slope is shallower than -1,
// region 2 steps y for the steep remainder, each with its own decision
// recurrence. It reports whether any pixel changed.
func DrawEllipse(buf *Buffer, cx, cy, rx, ry int, c RGBA, opts BrushOptions) bool {
	if rx < 0 || ry < 0 {
		return false
	}
	changed := false
	plot4 := func(x, y int) {
		pts := [4][2]int{
			{cx + x, cy + y}, {cx - x, cy + y},
			{cx + x, cy - y}, {cx - x, cy - y},
		}
		for _, p := range pts {
			if shapeSet(buf, p[0], p[1], c, opts) {
				changed = true
			}
		}
	}

	rx2 := rx * rx
	ry2 := ry * ry

	// Region 1: slope > -1, step in x.
	x, y := 0, ry
	px := 0
	py := 2 * rx2 * y
	d1 := ry2 - rx2*ry + (rx2+2)/4
	for px < py {
		plot4(x, y)
		x++
		px += 2 * ry2
		if d1 < 0 {
			d1 += ry2 + px
		} else {
			y--
			py -= 2 * rx2
			d1 += ry2 + px - py
		}
	}

	// Region 2: slope <= -1, step in y.
	d2 := ry2*(2*x+1)*(2*x+1)/4 + rx2*(y-1)*(y-1) - rx2*ry2
	for y >= 0 {
		plot4(x, y)
		y--
		py -= 2 * rx2
		if d2 > 0 {
			d2 += rx2 - py
		} else {
			x++
			px += 2 * ry2
			d2 += rx2 - py + px
		}
	}
	return changed
}

// FillEllipse fills the ellipse with radii rx, ry centered at
// (cx, cy) using the (x/rx)^2 + (y/ry)^2 <= 1 membership test over the
// bounding box. It reports whether any pixel changed.
func FillEllipse(buf *Buffer, cx, cy, rx, ry int, c RGBA, opts BrushOptions) bool {
	if rx < 0 || ry < 0 {
		return false
	}
	if rx == 0 || ry == 0 {
		// Degenerate ellipse collapses to a line of pixels.
		return FillRect(buf, cx-rx, cy-ry, cx+rx, cy+ry, c, opts)
	}
	changed := false
	fx := float64(rx)
	fy := float64(ry)
	for dy := -ry; dy <= ry; dy++ {
		for dx := -rx; dx <= rx; dx++ {
			nx := float64(dx) / fx
			ny := float64(dy) / fy
			if nx*nx+ny*ny > 1 {
				continue
			}
			if shapeSet(buf, cx+dx, cy+dy, c, opts) {
				changed = true
			}
		}
	}
	return changed
}
