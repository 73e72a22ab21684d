package pix

// StampPattern gates brush coverage with a deterministic repeating
// mask: the brush paints only where Covers reports true. Patterns tile
// the whole canvas in fixed 8x8 cells, so strokes laid down in
// multiple passes line up.
type StampPattern interface {
	// Covers reports whether the pattern paints the canvas pixel (x, y).
	Covers(x, y int) bool
}

// CheckerPattern paints alternating pixels: (x+y) even.
type CheckerPattern struct{}

// Covers implements StampPattern.
func (CheckerPattern) Covers(x, y int) bool {
	return (x+y)%2 == 0
}

// bayer8 is the classic 8x8 Bayer ordered-dither matrix with
// thresholds in [0, 63].
var bayer8 = [8][8]int{
	{0, 32, 8, 40, 2, 34, 10, 42},
	{48, 16, 56, 24, 50, 18, 58, 26},
	{12, 44, 4, 36, 14, 46, 6, 38},
	{60, 28, 52, 20, 62, 30, 54, 22},
	{3, 35, 11, 43, 1, 33, 9, 41},
	{51, 19, 59, 27, 49, 17, 57, 25},
	{15, 47, 7, 39, 13, 45, 5, 37},
	{63, 31, 55, 23, 61, 29, 53, 21},
}

// bayerThreshold returns the normalized Bayer threshold in (0, 1) for
// the canvas pixel (x, y). Adding 0.5 centers each cell's threshold in
// its quantization bucket.
func bayerThreshold(x, y int) float64 {
	// Go's % is negative for negative operands; wrap into [0, 8).
	bx := ((x % 8) + 8) % 8
	by := ((y % 8) + 8) % 8
	return (float64(bayer8[by][bx]) + 0.5) / 64
}

// BayerPattern paints pixels whose 8x8 Bayer threshold falls below a
// fixed 50% level (threshold 32 of 64), giving an even half-tone.
type BayerPattern struct{}

// Covers implements StampPattern.
func (BayerPattern) Covers(x, y int) bool {
	bx := ((x % 8) + 8) % 8
	by := ((y % 8) + 8) % 8
	return bayer8[by][bx] < 32
}

// NoisePattern paints a deterministic pseudo-random half-tone derived
// from the pixel coordinates and a seed. Equal seeds always produce
// the same speckle, so re-stamping is stable.
type NoisePattern struct {
	Seed uint32
}

// Covers implements StampPattern.
func (p NoisePattern) Covers(x, y int) bool {
	// Wrap into the 8x8 cell so the speckle tiles like the other
	// stamp patterns.
	nx := ((x % 8) + 8) % 8
	ny := ((y % 8) + 8) % 8
	return hashNoise(nx, ny, p.Seed) < 0.5
}

// hashNoise bit-mixes the coordinates and seed into a value in [0, 1).
// Multiply by large primes, then XOR-shift to spread low-bit patterns.
func hashNoise(x, y int, seed uint32) float64 {
	h := uint32(x)*374761393 + uint32(y)*668265263 + seed*2246822519
	h ^= h >> 13
	h *= 1274126177
	h ^= h >> 16
	return float64(h) / float64(1<<32)
}
