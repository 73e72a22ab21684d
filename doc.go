// Package pix implements the raster core of a pixel-art editor.
//
// The package manipulates fixed-size RGBA pixel buffers with straight
// (non-premultiplied) alpha: multi-layer compositing with per-layer
// blend modes, boolean selection masks and region algebra, paint-tool
// rasterization (brush, line, shapes, flood fill, gradients, smudge),
// affine transforms with a floating-selection lifecycle, LUT-based
// color adjustments, error-diffusion dithering, and snapshot undo/redo.
//
// # Quick Start
//
//	import "github.com/gopix/pix"
//
//	// Create a 64x64 canvas with one layer
//	stack := pix.LayerStack{pix.NewLayer("background", 64, 64)}
//
//	// Paint on it
//	pix.FloodFill(stack[0].Pixels, 0, 0, pix.RGB(40, 40, 48), 0, nil)
//	pix.DrawBrushLine(stack[0].Pixels, 4, 4, 60, 60, 3, pix.Red, pix.BrushOptions{})
//
//	// Composite and save
//	out := pix.CompositeLayers(stack, 64, 64)
//	out.SavePNG("output.png")
//
// # Execution model
//
// Everything runs single-threaded on the CPU. All operations are
// bounded by O(width*height) or O(width*height*k) for a small constant
// k, so nothing suspends internally and no cancellation mechanism is
// needed. Buffers are explicitly owned values: mutating tools operate
// in place on the buffer they are handed, and callers clone the
// "before" state for history prior to mutation.
//
// Tool functions follow a defensive-no-op policy: out-of-range
// coordinates are silently ignored and every mutating tool reports
// whether it actually changed at least one pixel, so callers can skip
// history commits for no-op operations.
//
// Expensive whole-canvas operations can optionally be dispatched to a
// background executor via RegisterExecutor; the synchronous algorithms
// remain the source of truth and are always the fallback.
package pix
