package pix

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
)

// Buffer represents a rectangular RGBA pixel buffer.
// Pixels are stored row-major, 4 bytes per pixel, with the pixel at
// (x, y) starting at index (y*width+x)*4 as [R, G, B, A].
// Alpha is straight (not premultiplied).
type Buffer struct {
	width  int
	height int
	data   []uint8
}

// New creates a new buffer with the given dimensions.
// All pixels are initialized to transparent black.
func New(width, height int) *Buffer {
	return &Buffer{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// NewFilled creates a new buffer with every pixel set to fill.
func NewFilled(width, height int, fill RGBA) *Buffer {
	b := New(width, height)
	b.Clear(fill)
	return b
}

// Width returns the width of the buffer.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the height of the buffer.
func (b *Buffer) Height() int {
	return b.height
}

// Data returns the raw pixel data (straight-alpha RGBA).
func (b *Buffer) Data() []uint8 {
	return b.data
}

// In reports whether (x, y) lies inside the buffer.
func (b *Buffer) In(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the color of a single pixel.
// The second return value is false when (x, y) is out of range,
// in which case the color is zero.
func (b *Buffer) Get(x, y int) (RGBA, bool) {
	if !b.In(x, y) {
		return RGBA{}, false
	}
	i := (y*b.width + x) * 4
	return RGBA{R: b.data[i], G: b.data[i+1], B: b.data[i+2], A: b.data[i+3]}, true
}

// Set sets the color of a single pixel.
// It reports whether the stored bytes actually changed, so callers can
// skip history commits for no-op operations. Out-of-range coordinates
// are silently ignored.
func (b *Buffer) Set(x, y int, c RGBA) bool {
	if !b.In(x, y) {
		return false
	}
	i := (y*b.width + x) * 4
	if b.data[i] == c.R && b.data[i+1] == c.G && b.data[i+2] == c.B && b.data[i+3] == c.A {
		return false
	}
	b.data[i] = c.R
	b.data[i+1] = c.G
	b.data[i+2] = c.B
	b.data[i+3] = c.A
	return true
}

// Clear fills the entire buffer with a color.
func (b *Buffer) Clear(c RGBA) {
	for i := 0; i < len(b.data); i += 4 {
		b.data[i] = c.R
		b.data[i+1] = c.G
		b.data[i+2] = c.B
		b.data[i+3] = c.A
	}
}

// Clone creates a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	clone := New(b.width, b.height)
	copy(clone.data, b.data)
	return clone
}

// Equal reports whether two buffers have identical dimensions and
// identical pixel bytes.
func (b *Buffer) Equal(other *Buffer) bool {
	if b.width != other.width || b.height != other.height {
		return false
	}
	for i, v := range b.data {
		if v != other.data[i] {
			return false
		}
	}
	return true
}

// ResizeNearest resamples the buffer to the given dimensions using
// nearest-neighbor mapping: destination pixel (x, y) reads source
// pixel (floor(x*srcW/dstW), floor(y*srcH/dstH)). No interpolation,
// so hard pixel edges are preserved.
func (b *Buffer) ResizeNearest(dstW, dstH int) *Buffer {
	dst := New(dstW, dstH)
	if dstW <= 0 || dstH <= 0 || b.width <= 0 || b.height <= 0 {
		return dst
	}
	ratioX := float64(b.width) / float64(dstW)
	ratioY := float64(b.height) / float64(dstH)
	for y := 0; y < dstH; y++ {
		srcY := int(float64(y) * ratioY)
		for x := 0; x < dstW; x++ {
			srcX := int(float64(x) * ratioX)
			si := (srcY*b.width + srcX) * 4
			di := (y*dstW + x) * 4
			copy(dst.data[di:di+4], b.data[si:si+4])
		}
	}
	return dst
}

// DrawLine draws a 1-pixel line from (x0, y0) to (x1, y1) using the
// integer Bresenham algorithm (equal-error-term stepping, no
// anti-aliasing). It reports whether any pixel differed from its
// prior value. Segments outside the buffer are clipped silently.
func (b *Buffer) DrawLine(x0, y0, x1, y1 int, c RGBA) bool {
	changed := false
	bresenhamSteps(x0, y0, x1, y1, func(x, y int) {
		if b.Set(x, y, c) {
			changed = true
		}
	})
	return changed
}

// bresenhamSteps visits every point of the Bresenham line from
// (x0, y0) to (x1, y1), including both endpoints. Tools that stamp
// along a stroke share this walk so brush lines and plain lines cover
// the same pixels.
func bresenhamSteps(x0, y0, x1, y1 int, visit func(x, y int)) {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy

	for {
		visit(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// ToImage converts the buffer to an image.NRGBA (straight alpha).
func (b *Buffer) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.width, b.height))
	copy(img.Pix, b.data)
	return img
}

// FromImage creates a buffer from an image.
func FromImage(img image.Image) *Buffer {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	buf := New(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := img.At(bounds.Min.X+x, bounds.Min.Y+y)
			buf.Set(x, y, FromColor(c))
		}
	}

	return buf
}

// SavePNG saves the buffer to a PNG file.
func (b *Buffer) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("pix: create %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	if err := png.Encode(f, b.ToImage()); err != nil {
		return fmt.Errorf("pix: encode %s: %w", path, err)
	}
	return nil
}

// LoadPNG loads a PNG file into a new buffer.
func LoadPNG(path string) (*Buffer, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("pix: open %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("pix: decode %s: %w", path, err)
	}
	return FromImage(img), nil
}

// At implements the image.Image interface.
func (b *Buffer) At(x, y int) color.Color {
	c, _ := b.Get(x, y)
	return c.Color()
}

// Bounds implements the image.Image interface.
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// ColorModel implements the image.Image interface.
func (b *Buffer) ColorModel() color.Model {
	return color.NRGBAModel
}
