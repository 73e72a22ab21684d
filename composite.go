package pix

// CompositePixel combines one top pixel over one base pixel using the
// straight-alpha Porter-Duff "over" operator with the given blend mode
// applied to the color channels first.
//
// The math runs on channels normalized to [0, 1]:
//
//	outA = topA + baseA*(1-topA)
//	outC = (B(baseC, topC)*topA + baseC*baseA*(1-topA)) / outA
//
// Every output byte is rounded to the nearest integer with halves
// rounding up, then clamped to [0, 255]. A fully transparent top pixel
// returns base unchanged for all modes; a fully transparent result is
// transparent black.
func CompositePixel(base, top RGBA, mode BlendMode) RGBA {
	if top.A <= 0 {
		return base
	}

	ta := float64(top.A) / 255
	ba := float64(base.A) / 255
	outA := ta + ba*(1-ta)
	if outA <= 0 {
		return RGBA{}
	}

	tr := float64(top.R) / 255
	tg := float64(top.G) / 255
	tb := float64(top.B) / 255
	br := float64(base.R) / 255
	bg := float64(base.G) / 255
	bb := float64(base.B) / 255

	outR := (blendChannel(br, tr, mode)*ta + br*ba*(1-ta)) / outA
	outG := (blendChannel(bg, tg, mode)*ta + bg*ba*(1-ta)) / outA
	outB := (blendChannel(bb, tb, mode)*ta + bb*ba*(1-ta)) / outA

	return RGBA{
		R: clampByte(outR * 255),
		G: clampByte(outG * 255),
		B: clampByte(outB * 255),
		A: clampByte(outA * 255),
	}
}

// CompositeLayers flattens the layer stack into a fresh w x h buffer.
// Layers composite bottom to top, i.e. from the last index to index 0.
// Invisible layers and layers with opacity <= 0 are skipped, as is any
// pixel whose opacity-scaled alpha rounds to 0. The stack itself is
// never modified.
func CompositeLayers(layers LayerStack, w, h int) *Buffer {
	out := New(w, h)
	for i := len(layers) - 1; i >= 0; i-- {
		layer := layers[i]
		if layer == nil || layer.Pixels == nil || !layer.Visible {
			continue
		}
		opacity := clamp01(layer.Opacity)
		if opacity <= 0 {
			continue
		}
		compositeBufferOver(out, layer.Pixels, opacity, layer.Blend, w, h)
	}
	return out
}

// Flatten is CompositeLayers under its export-facing name.
func Flatten(layers LayerStack, w, h int) *Buffer {
	return CompositeLayers(layers, w, h)
}

// compositeBufferOver composites src over dst in place.
// src alpha is scaled by opacity before the per-pixel math.
func compositeBufferOver(dst, src *Buffer, opacity float64, mode BlendMode, w, h int) {
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sc, ok := src.Get(x, y)
			if !ok {
				continue
			}
			a := clampByte(float64(sc.A) * opacity)
			if a <= 0 {
				continue
			}
			sc.A = a
			base, _ := dst.Get(x, y)
			dst.Set(x, y, CompositePixel(base, sc, mode))
		}
	}
}

// MergeLayerIntoBelow composites above over below into a fresh buffer,
// applying the given opacity and blend mode to the upper pixels. This
// is the two-buffer form of the compositing math used by MergeDown.
func MergeLayerIntoBelow(below, above *Buffer, opacity float64, mode BlendMode, w, h int) *Buffer {
	out := below.Clone()
	compositeBufferOver(out, above, clamp01(opacity), mode, w, h)
	return out
}

// MergeDown merges the layer at index into the layer directly below it
// (index+1, since index 0 is topmost). The merged pixels replace the
// lower layer's buffer and the upper layer is removed. It reports
// whether a merge happened: merging the bottom layer, a pair with a
// missing buffer, or an invisible upper layer is a no-op.
func MergeDown(s *LayerStack, index, w, h int) bool {
	if index < 0 || index >= len(*s)-1 {
		return false
	}
	upper := (*s)[index]
	lower := (*s)[index+1]
	if upper == nil || lower == nil || upper.Pixels == nil || lower.Pixels == nil {
		return false
	}
	if !upper.Visible {
		return false
	}

	lower.Pixels = MergeLayerIntoBelow(lower.Pixels, upper.Pixels, upper.Opacity, upper.Blend, w, h)
	*s = append((*s)[:index], (*s)[index+1:]...)
	return true
}
