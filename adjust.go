package pix

import "math"

// adjustPixels runs fn over every pixel with alpha > 0 that the mask
// (when non-nil) selects, writing fn's result back. Fully transparent
// pixels never participate in color adjustments. It reports whether
// any pixel changed.
func adjustPixels(buf *Buffer, mask *Mask, fn func(c RGBA) RGBA) bool {
	changed := false
	for y := 0; y < buf.Height(); y++ {
		for x := 0; x < buf.Width(); x++ {
			if mask != nil && !mask.At(x, y) {
				continue
			}
			c, _ := buf.Get(x, y)
			if c.A == 0 {
				continue
			}
			if buf.Set(x, y, fn(c)) {
				changed = true
			}
		}
	}
	return changed
}

// AdjustHue rotates every pixel's hue by shift degrees, wrapping the
// result into [0, 360).
func AdjustHue(buf *Buffer, shift float64, mask *Mask) bool {
	return adjustPixels(buf, mask, func(c RGBA) RGBA {
		h, s, l := RGBToHSL(c.R, c.G, c.B)
		h = math.Mod(h+shift, 360)
		if h < 0 {
			h += 360
		}
		r, g, b := HSLToRGB(h, s, l)
		return RGBA{R: r, G: g, B: b, A: c.A}
	})
}

// AdjustSaturation shifts every pixel's HSL saturation by delta,
// clamped to [0, 1].
func AdjustSaturation(buf *Buffer, delta float64, mask *Mask) bool {
	return adjustPixels(buf, mask, func(c RGBA) RGBA {
		h, s, l := RGBToHSL(c.R, c.G, c.B)
		r, g, b := HSLToRGB(h, clamp01(s+delta), l)
		return RGBA{R: r, G: g, B: b, A: c.A}
	})
}

// AdjustLightness shifts every pixel's HSL lightness by delta,
// clamped to [0, 1].
func AdjustLightness(buf *Buffer, delta float64, mask *Mask) bool {
	return adjustPixels(buf, mask, func(c RGBA) RGBA {
		h, s, l := RGBToHSL(c.R, c.G, c.B)
		r, g, b := HSLToRGB(h, s, clamp01(l+delta))
		return RGBA{R: r, G: g, B: b, A: c.A}
	})
}

// Invert replaces each RGB channel with 255-channel, leaving alpha
// untouched. Applying it twice restores the original exactly.
func Invert(buf *Buffer, mask *Mask) bool {
	return adjustPixels(buf, mask, func(c RGBA) RGBA {
		return RGBA{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B, A: c.A}
	})
}

// Desaturate converts each pixel to its BT.601 luma
// (0.299R + 0.587G + 0.114B), setting all three color channels to it.
func Desaturate(buf *Buffer, mask *Mask) bool {
	return adjustPixels(buf, mask, func(c RGBA) RGBA {
		luma := clampByte(0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B))
		return RGBA{R: luma, G: luma, B: luma, A: c.A}
	})
}

// Posterize quantizes each RGB channel to levels evenly spaced steps:
// v' = round(round(v/step)*step) with step = 255/(levels-1). Fewer
// than 2 levels is a no-op.
func Posterize(buf *Buffer, levels int, mask *Mask) bool {
	if levels < 2 {
		return false
	}
	step := 255 / float64(levels-1)
	quant := func(v uint8) uint8 {
		return clampByte(math.Floor(float64(v)/step+0.5) * step)
	}
	return adjustPixels(buf, mask, func(c RGBA) RGBA {
		return RGBA{R: quant(c.R), G: quant(c.G), B: quant(c.B), A: c.A}
	})
}
