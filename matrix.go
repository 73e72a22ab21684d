package pix

import "math"

// Matrix represents a 2D affine transformation matrix.
// It uses a 2x3 matrix in row-major order:
//
//	| A  B  C |
//	| D  E  F |
//
// This represents the transformation:
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
//
// The prebuilt pixel transforms (FlipHorizontal, Rotate90CW, ...) are
// integer index maps: they send the source pixel index (x, y) to its
// destination index exactly, with no half-pixel center offset, so
// applying one never resamples.
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{
		A: 1, B: 0, C: x,
		D: 0, E: 1, F: y,
	}
}

// ScaleMatrix creates a (possibly non-uniform) scaling matrix.
func ScaleMatrix(x, y float64) Matrix {
	return Matrix{
		A: x, B: 0, C: 0,
		D: 0, E: y, F: 0,
	}
}

// Rotate creates a rotation matrix (angle in radians).
func Rotate(angle float64) Matrix {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Matrix{
		A: cos, B: -sin, C: 0,
		D: sin, E: cos, F: 0,
	}
}

// FlipHorizontalMatrix mirrors pixel indices across the vertical
// center of a width-wide canvas: x' = -x + (width-1).
func FlipHorizontalMatrix(width int) Matrix {
	return Matrix{
		A: -1, B: 0, C: float64(width - 1),
		D: 0, E: 1, F: 0,
	}
}

// FlipVerticalMatrix mirrors pixel indices across the horizontal
// center of a height-tall canvas: y' = -y + (height-1).
func FlipVerticalMatrix(height int) Matrix {
	return Matrix{
		A: 1, B: 0, C: 0,
		D: 0, E: -1, F: float64(height - 1),
	}
}

// Rotate90CWMatrix rotates a w x h canvas a quarter turn clockwise.
// Source index (x, y) lands at (h-1-y, x) in the h x w destination.
func Rotate90CWMatrix(w, h int) Matrix {
	_ = w
	return Matrix{
		A: 0, B: -1, C: float64(h - 1),
		D: 1, E: 0, F: 0,
	}
}

// Rotate90CCWMatrix rotates a w x h canvas a quarter turn
// counter-clockwise. Source index (x, y) lands at (y, w-1-x).
func Rotate90CCWMatrix(w, h int) Matrix {
	_ = h
	return Matrix{
		A: 0, B: 1, C: 0,
		D: -1, E: 0, F: float64(w - 1),
	}
}

// Rotate180Matrix rotates a w x h canvas a half turn:
// source index (x, y) lands at (w-1-x, h-1-y).
func Rotate180Matrix(w, h int) Matrix {
	return Matrix{
		A: -1, B: 0, C: float64(w - 1),
		D: 0, E: -1, F: float64(h - 1),
	}
}

// MirrorMatrix reflects across the line through center at the given
// angle (radians). Used by symmetry painting.
func MirrorMatrix(center Point, angle float64) Matrix {
	cos2 := math.Cos(2 * angle)
	sin2 := math.Sin(2 * angle)
	reflect := Matrix{
		A: cos2, B: sin2, C: 0,
		D: sin2, E: -cos2, F: 0,
	}
	return Translate(center.X, center.Y).
		Multiply(reflect).
		Multiply(Translate(-center.X, -center.Y))
}

// RotateAboutMatrix rotates by angle (radians) about center.
func RotateAboutMatrix(center Point, angle float64) Matrix {
	return Translate(center.X, center.Y).
		Multiply(Rotate(angle)).
		Multiply(Translate(-center.X, -center.Y))
}

// Multiply multiplies two matrices (m * other): the result applies
// other first, then m.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// Invert returns the inverse matrix.
// Returns the identity matrix if the matrix is not invertible.
func (m Matrix) Invert() Matrix {
	det := m.A*m.E - m.B*m.D
	if math.Abs(det) < 1e-10 {
		return Identity()
	}

	invDet := 1.0 / det
	return Matrix{
		A: m.E * invDet,
		B: -m.B * invDet,
		C: (m.B*m.F - m.C*m.E) * invDet,
		D: -m.D * invDet,
		E: m.A * invDet,
		F: (m.C*m.D - m.A*m.F) * invDet,
	}
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 &&
		m.D == 0 && m.E == 1 && m.F == 0
}
