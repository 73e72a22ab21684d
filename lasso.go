package pix

// PointInPolygon reports whether (x, y) lies inside the polygon using
// the standard even-odd ray-casting rule: a horizontal ray from the
// point crosses edges whose endpoints straddle the point's y, and an
// odd crossing count means inside.
func PointInPolygon(x, y float64, poly []Point) bool {
	inside := false
	j := len(poly) - 1
	for i := 0; i < len(poly); i++ {
		xi, yi := poly[i].X, poly[i].Y
		xj, yj := poly[j].X, poly[j].Y
		if (yi > y) != (yj > y) &&
			x < (xj-xi)*(y-yi)/(yj-yi)+xi {
			inside = !inside
		}
		j = i
	}
	return inside
}

// SmoothLassoPoints applies a centered moving average of the given
// window size to a hand-drawn lasso path, reducing pointer jitter
// before rasterization. The window is clamped at the path ends so the
// first and last points stay anchored near their originals. A window
// below 2 returns the input unchanged.
func SmoothLassoPoints(points []Point, window int) []Point {
	if window < 2 || len(points) < 3 {
		return points
	}
	half := window / 2
	out := make([]Point, len(points))
	for i := range points {
		lo := i - half
		if lo < 0 {
			lo = 0
		}
		hi := i + half
		if hi > len(points)-1 {
			hi = len(points) - 1
		}
		var sx, sy float64
		for j := lo; j <= hi; j++ {
			sx += points[j].X
			sy += points[j].Y
		}
		n := float64(hi - lo + 1)
		out[i] = Point{X: sx / n, Y: sy / n}
	}
	return out
}

// LassoSelect rasterizes a closed freehand polygon into a fresh
// selection mask by testing every canvas pixel against the polygon,
// O(width*height*vertices) per invocation. Pixel centers (x+0.5,
// y+0.5) are tested so the selection matches what was traced rather
// than the top-left grid lines. A polygon with fewer than 3 vertices
// yields an empty selection.
func LassoSelect(w, h int, points []Point) *Mask {
	mask := NewMask(w, h)
	if len(points) < 3 {
		return mask
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if PointInPolygon(float64(x)+0.5, float64(y)+0.5, points) {
				mask.data[y*w+x] = 1
			}
		}
	}
	return mask
}
