package pix

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// ExportScaled returns the buffer enlarged by an integer zoom factor
// for preview and export surfaces. Scaling uses x/image's
// nearest-neighbor kernel so pixel edges stay hard. A zoom below 1 is
// treated as 1.
func ExportScaled(buf *Buffer, zoom int) *image.NRGBA {
	if zoom < 1 {
		zoom = 1
	}
	src := buf.ToImage()
	dst := image.NewNRGBA(image.Rect(0, 0, buf.Width()*zoom, buf.Height()*zoom))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// PackSpritesheet lays a sequence of equally sized frame buffers out
// in a fixed-column grid, left to right then top to bottom, and
// returns the packed sheet. Frames are copied verbatim; compositing
// happens before packing. Columns below 1 become a single row; an
// empty frame list yields an empty buffer.
func PackSpritesheet(frames []*Buffer, columns int) *Buffer {
	if len(frames) == 0 {
		return New(0, 0)
	}
	if columns < 1 {
		columns = len(frames)
	}
	fw := frames[0].Width()
	fh := frames[0].Height()
	rows := (len(frames) + columns - 1) / columns

	sheet := New(fw*columns, fh*rows)
	for i, frame := range frames {
		if frame == nil {
			continue
		}
		ox := (i % columns) * fw
		oy := (i / columns) * fh
		for y := 0; y < fh; y++ {
			for x := 0; x < fw; x++ {
				if c, ok := frame.Get(x, y); ok {
					sheet.Set(ox+x, oy+y, c)
				}
			}
		}
	}
	return sheet
}
