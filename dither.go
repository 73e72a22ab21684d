package pix

// NearestPaletteIndex returns the index of the palette entry closest
// to c by squared Euclidean RGB distance (alpha is ignored). Ties keep
// the first-encountered entry. A non-empty palette is a caller
// precondition; an empty palette returns -1 defensively.
func NearestPaletteIndex(c RGBA, palette []RGBA) int {
	best := -1
	bestDist := 1 << 30
	for i, p := range palette {
		dr := int(c.R) - int(p.R)
		dg := int(c.G) - int(p.G)
		db := int(c.B) - int(p.B)
		d := dr*dr + dg*dg + db*db
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

// diffusionTap is one neighbor share of an error-diffusion kernel.
type diffusionTap struct {
	dx, dy int
	weight float64
}

// Floyd-Steinberg kernel: the quantization error of each pixel flows
// right (7/16), down-left (3/16), down (5/16) and down-right (1/16),
// conserving the full error.
var floydSteinbergTaps = []diffusionTap{
	{1, 0, 7.0 / 16},
	{-1, 1, 3.0 / 16},
	{0, 1, 5.0 / 16},
	{1, 1, 1.0 / 16},
}

// Atkinson kernel: 1/8 of the error goes to each of six neighbors with
// no further normalization, so a quarter of the error is deliberately
// discarded. The lost error is what gives Atkinson its characteristic
// higher-contrast look.
var atkinsonTaps = []diffusionTap{
	{1, 0, 1.0 / 8},
	{2, 0, 1.0 / 8},
	{-1, 1, 1.0 / 8},
	{0, 1, 1.0 / 8},
	{1, 1, 1.0 / 8},
	{0, 2, 1.0 / 8},
}

// DitherFloydSteinberg constrains the buffer to the palette with
// Floyd-Steinberg error diffusion. Fully transparent pixels are left
// untouched and absorb no error; alpha is never modified. It reports
// whether any pixel changed. An empty palette is a no-op.
func DitherFloydSteinberg(buf *Buffer, palette []RGBA) bool {
	return errorDiffuse(buf, palette, floydSteinbergTaps)
}

// DitherAtkinson constrains the buffer to the palette with Atkinson
// error diffusion (see atkinsonTaps for the kernel). It reports
// whether any pixel changed. An empty palette is a no-op.
func DitherAtkinson(buf *Buffer, palette []RGBA) bool {
	return errorDiffuse(buf, palette, atkinsonTaps)
}

// errorDiffuse is the shared scan: pixels are processed left to right,
// top to bottom; each is snapped to its nearest palette entry and the
// per-channel error is pushed onto not-yet-processed neighbors through
// the kernel taps.
func errorDiffuse(buf *Buffer, palette []RGBA, taps []diffusionTap) bool {
	if len(palette) == 0 {
		return false
	}
	w, h := buf.Width(), buf.Height()

	// Working copy of the RGB channels so accumulated error can go
	// below 0 or above 255 before the final clamp.
	work := make([]float64, w*h*3)
	for i := 0; i < w*h; i++ {
		work[i*3] = float64(buf.data[i*4])
		work[i*3+1] = float64(buf.data[i*4+1])
		work[i*3+2] = float64(buf.data[i*4+2])
	}

	changed := false
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			pi := y*w + x
			if buf.data[pi*4+3] == 0 {
				continue
			}

			old := RGBA{
				R: clampByte(work[pi*3]),
				G: clampByte(work[pi*3+1]),
				B: clampByte(work[pi*3+2]),
				A: 255,
			}
			chosen := palette[NearestPaletteIndex(old, palette)]

			errR := work[pi*3] - float64(chosen.R)
			errG := work[pi*3+1] - float64(chosen.G)
			errB := work[pi*3+2] - float64(chosen.B)

			if buf.Set(x, y, RGBA{R: chosen.R, G: chosen.G, B: chosen.B, A: buf.data[pi*4+3]}) {
				changed = true
			}

			for _, tap := range taps {
				nx, ny := x+tap.dx, y+tap.dy
				if nx < 0 || nx >= w || ny < 0 || ny >= h {
					continue
				}
				ni := ny*w + nx
				work[ni*3] += errR * tap.weight
				work[ni*3+1] += errG * tap.weight
				work[ni*3+2] += errB * tap.weight
			}
		}
	}
	return changed
}

// DitherOrdered constrains the buffer to a two-entry dark/light pair
// per pixel by thresholding its BT.601 luma against the 8x8 Bayer
// matrix, then snapping to the palette. This is the buffer-level
// counterpart of the gradient stage's ordered dithering. An empty
// palette is a no-op.
func DitherOrdered(buf *Buffer, palette []RGBA) bool {
	if len(palette) == 0 {
		return false
	}
	changed := false
	for y := 0; y < buf.Height(); y++ {
		for x := 0; x < buf.Width(); x++ {
			c, _ := buf.Get(x, y)
			if c.A == 0 {
				continue
			}
			luma := (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255
			// Bias the channel toward black or white before the
			// palette snap, spreading banding into the Bayer pattern.
			var biased RGBA
			if luma > bayerThreshold(x, y) {
				biased = RGBA{R: 255, G: 255, B: 255, A: c.A}
			} else {
				biased = RGBA{A: c.A}
			}
			chosen := palette[NearestPaletteIndex(biased, palette)]
			chosen.A = c.A
			if buf.Set(x, y, chosen) {
				changed = true
			}
		}
	}
	return changed
}
