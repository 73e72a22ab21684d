package pix

import "math"

// ApplyTransform remaps src into a fresh dstW x dstH buffer through
// the given forward matrix: every destination pixel is mapped through
// the inverse and nearest-neighbor-sampled from the source, with no
// anti-aliasing, so crisp pixel-art edges survive. Destination pixels
// that map outside the source stay transparent.
func ApplyTransform(src *Buffer, m Matrix, dstW, dstH int) *Buffer {
	dst := New(dstW, dstH)
	inv := m.Invert()
	for y := 0; y < dstH; y++ {
		for x := 0; x < dstW; x++ {
			p := inv.TransformPoint(Pt(float64(x), float64(y)))
			sx := int(math.Floor(p.X))
			sy := int(math.Floor(p.Y))
			if c, ok := src.Get(sx, sy); ok {
				dst.Set(x, y, c)
			}
		}
	}
	return dst
}

// FlipHorizontal returns a horizontally mirrored copy of the buffer.
// Applying it twice reproduces the original exactly.
func FlipHorizontal(src *Buffer) *Buffer {
	return ApplyTransform(src, FlipHorizontalMatrix(src.Width()), src.Width(), src.Height())
}

// FlipVertical returns a vertically mirrored copy of the buffer.
func FlipVertical(src *Buffer) *Buffer {
	return ApplyTransform(src, FlipVerticalMatrix(src.Height()), src.Width(), src.Height())
}

// Rotate90CW returns the buffer rotated a quarter turn clockwise.
// The result is height x width; four applications to a square buffer
// reproduce the original exactly.
func Rotate90CW(src *Buffer) *Buffer {
	return ApplyTransform(src, Rotate90CWMatrix(src.Width(), src.Height()), src.Height(), src.Width())
}

// Rotate90CCW returns the buffer rotated a quarter turn counter-clockwise.
func Rotate90CCW(src *Buffer) *Buffer {
	return ApplyTransform(src, Rotate90CCWMatrix(src.Width(), src.Height()), src.Height(), src.Width())
}

// Rotate180 returns the buffer rotated a half turn.
func Rotate180(src *Buffer) *Buffer {
	return ApplyTransform(src, Rotate180Matrix(src.Width(), src.Height()), src.Width(), src.Height())
}

// Scale returns the buffer scaled by the (possibly non-uniform)
// factors sx and sy using nearest-neighbor sampling. Factors at or
// below zero yield an empty buffer.
func Scale(src *Buffer, sx, sy float64) *Buffer {
	if sx <= 0 || sy <= 0 {
		return New(0, 0)
	}
	dstW := int(math.Round(float64(src.Width()) * sx))
	dstH := int(math.Round(float64(src.Height()) * sy))
	return ApplyTransform(src, ScaleMatrix(sx, sy), dstW, dstH)
}
