package pix

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// DrawText stamps a line of text onto the buffer with the given font
// face, anchored at the baseline point (x, y). Glyphs rasterize
// through the face's coverage mask and every covered pixel is written
// as the solid color, so text stays crisp on a pixel canvas rather
// than anti-aliasing against it. A nil face uses the built-in 7x13
// bitmap face. It reports whether any pixel changed.
func DrawText(buf *Buffer, x, y int, s string, c RGBA, face font.Face, opts BrushOptions) bool {
	if face == nil {
		face = basicfont.Face7x13
	}

	// Render the string into a standalone alpha mask first; the mask
	// is then thresholded onto the canvas.
	bounds, advance := font.BoundString(face, s)
	if s == "" || advance == 0 {
		return false
	}
	w := (bounds.Max.X - bounds.Min.X).Ceil()
	h := (bounds.Max.Y - bounds.Min.Y).Ceil()
	if w <= 0 || h <= 0 {
		return false
	}

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	d := font.Drawer{
		Dst:  mask,
		Src:  image.White,
		Face: face,
		Dot:  fixed.Point26_6{X: -bounds.Min.X, Y: -bounds.Min.Y},
	}
	d.DrawString(s)

	originX := x + bounds.Min.X.Floor()
	originY := y + bounds.Min.Y.Floor()

	changed := false
	for my := 0; my < h; my++ {
		for mx := 0; mx < w; mx++ {
			// Half-coverage threshold keeps glyph edges hard.
			if mask.AlphaAt(mx, my).A < 128 {
				continue
			}
			px, py := originX+mx, originY+my
			if !opts.allows(px, py) {
				continue
			}
			if buf.Set(px, py, c) {
				changed = true
			}
		}
	}
	return changed
}
