package pix

import (
	"math"
	"sort"
)

// LUT is a precomputed byte-to-byte channel mapping. Building the 256
// entries once and indexing per pixel avoids repeating transcendental
// and division work across the canvas.
type LUT [256]uint8

// IdentityLUT returns the mapping that leaves every value unchanged.
func IdentityLUT() LUT {
	var lut LUT
	for i := range lut {
		lut[i] = uint8(i)
	}
	return lut
}

// LevelsLUT builds a levels adjustment: input black/white points remap
// the channel range, gamma bends the midtones, and output black/white
// points compress the result. A degenerate input range (white <=
// black) or non-positive gamma yields the identity mapping.
func LevelsLUT(inBlack, inWhite, outBlack, outWhite uint8, gamma float64) LUT {
	if inWhite <= inBlack || gamma <= 0 {
		return IdentityLUT()
	}
	var lut LUT
	inRange := float64(inWhite) - float64(inBlack)
	outRange := float64(outWhite) - float64(outBlack)
	for i := range lut {
		t := clamp01((float64(i) - float64(inBlack)) / inRange)
		t = math.Pow(t, 1/gamma)
		lut[i] = clampByte(float64(outBlack) + t*outRange)
	}
	return lut
}

// CurvePoint is one control point of a curves adjustment, mapping an
// input channel value to an output value.
type CurvePoint struct {
	In, Out uint8
}

// CurvesLUT builds a curve from piecewise-linear interpolation over
// the control points. Points are sorted by input; values below the
// first point or above the last clamp to that point's output. With no
// points the mapping is the identity.
func CurvesLUT(points []CurvePoint) LUT {
	if len(points) == 0 {
		return IdentityLUT()
	}
	pts := make([]CurvePoint, len(points))
	copy(pts, points)
	sort.Slice(pts, func(i, j int) bool { return pts[i].In < pts[j].In })

	var lut LUT
	for i := range lut {
		v := uint8(i)
		switch {
		case v <= pts[0].In:
			lut[i] = pts[0].Out
		case v >= pts[len(pts)-1].In:
			lut[i] = pts[len(pts)-1].Out
		default:
			// Find the surrounding segment and interpolate.
			for j := 1; j < len(pts); j++ {
				if v > pts[j].In {
					continue
				}
				lo, hi := pts[j-1], pts[j]
				if hi.In == lo.In {
					lut[i] = hi.Out
					break
				}
				t := float64(v-lo.In) / float64(hi.In-lo.In)
				lut[i] = clampByte(float64(lo.Out) + t*(float64(hi.Out)-float64(lo.Out)))
				break
			}
		}
	}
	return lut
}

// BrightnessContrastLUT builds a combined brightness/contrast mapping.
// brightness and contrast are in [-1, 1]: brightness shifts the whole
// range, contrast scales it about the midpoint.
func BrightnessContrastLUT(brightness, contrast float64) LUT {
	var lut LUT
	scale := 1 + contrast
	for i := range lut {
		v := float64(i)/255 - 0.5
		lut[i] = clampByte((v*scale + 0.5 + brightness) * 255)
	}
	return lut
}

// ApplyLUT remaps the R, G and B channels of every pixel through the
// table, skipping fully transparent pixels and, when mask is non-nil,
// unselected ones. Alpha is untouched. It reports whether any pixel
// changed.
func ApplyLUT(buf *Buffer, lut LUT, mask *Mask) bool {
	changed := false
	data := buf.Data()
	w := buf.Width()
	for i := 0; i < len(data); i += 4 {
		if data[i+3] == 0 {
			continue
		}
		if mask != nil {
			px := i / 4
			if !mask.At(px%w, px/w) {
				continue
			}
		}
		r, g, b := lut[data[i]], lut[data[i+1]], lut[data[i+2]]
		if r != data[i] || g != data[i+1] || b != data[i+2] {
			data[i], data[i+1], data[i+2] = r, g, b
			changed = true
		}
	}
	return changed
}
