package pix

import (
	"testing"
)

func TestNewBuffer(t *testing.T) {
	buf := New(16, 9)
	if buf.Width() != 16 || buf.Height() != 9 {
		t.Errorf("expected 16x9, got %dx%d", buf.Width(), buf.Height())
	}
	if len(buf.Data()) != 16*9*4 {
		t.Errorf("expected %d data bytes, got %d", 16*9*4, len(buf.Data()))
	}
	// Freshly allocated buffers are fully transparent.
	c, ok := buf.Get(3, 3)
	if !ok || c != (RGBA{}) {
		t.Errorf("expected transparent black, got %+v (ok=%v)", c, ok)
	}
}

func TestBufferGetOutOfRange(t *testing.T) {
	buf := New(8, 8)
	oob := []struct{ x, y int }{
		{-1, 4}, {8, 4}, {4, -1}, {4, 8}, {-100, -100}, {100, 100},
	}
	for _, p := range oob {
		if _, ok := buf.Get(p.x, p.y); ok {
			t.Errorf("Get(%d, %d) reported in range", p.x, p.y)
		}
	}
}

func TestBufferSetReportsChange(t *testing.T) {
	buf := New(8, 8)
	if !buf.Set(2, 2, Red) {
		t.Error("first Set should report a change")
	}
	if buf.Set(2, 2, Red) {
		t.Error("writing identical bytes should not report a change")
	}
	if buf.Set(-1, 0, Red) {
		t.Error("out-of-range Set should be a silent no-op")
	}
}

func TestBufferClone(t *testing.T) {
	buf := New(4, 4)
	buf.Set(1, 1, Blue)

	clone := buf.Clone()
	if !clone.Equal(buf) {
		t.Fatal("clone should equal original")
	}

	buf.Set(1, 1, Green)
	if c, _ := clone.Get(1, 1); c != Blue {
		t.Errorf("clone should not be affected, expected blue, got %+v", c)
	}
}

func TestResizeNearest(t *testing.T) {
	// 2x2 four-color buffer upscaled to 4x4 should give 2x2 blocks
	// with hard edges.
	src := New(2, 2)
	src.Set(0, 0, Red)
	src.Set(1, 0, Green)
	src.Set(0, 1, Blue)
	src.Set(1, 1, Yellow)

	dst := src.ResizeNearest(4, 4)
	tests := []struct {
		x, y int
		want RGBA
	}{
		{0, 0, Red}, {1, 1, Red},
		{2, 0, Green}, {3, 1, Green},
		{0, 2, Blue}, {1, 3, Blue},
		{2, 2, Yellow}, {3, 3, Yellow},
	}
	for _, tt := range tests {
		if c, _ := dst.Get(tt.x, tt.y); c != tt.want {
			t.Errorf("pixel (%d, %d) = %+v, want %+v", tt.x, tt.y, c, tt.want)
		}
	}
}

func TestResizeNearestDownscale(t *testing.T) {
	src := New(4, 4)
	src.Clear(Red)
	dst := src.ResizeNearest(2, 2)
	if dst.Width() != 2 || dst.Height() != 2 {
		t.Fatalf("expected 2x2, got %dx%d", dst.Width(), dst.Height())
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if c, _ := dst.Get(x, y); c != Red {
				t.Errorf("pixel (%d, %d) = %+v, want red", x, y, c)
			}
		}
	}
}

func TestDrawLineDiagonal(t *testing.T) {
	// 4x4 transparent buffer, opaque red line (0,0)-(3,3): exactly the
	// main diagonal is set, everything else stays transparent.
	buf := New(4, 4)
	if !buf.DrawLine(0, 0, 3, 3, Red) {
		t.Fatal("line over transparent pixels should report a change")
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			c, _ := buf.Get(x, y)
			if x == y {
				if c != Red {
					t.Errorf("diagonal pixel (%d, %d) = %+v, want red", x, y, c)
				}
			} else if c != (RGBA{}) {
				t.Errorf("pixel (%d, %d) = %+v, want transparent", x, y, c)
			}
		}
	}
}

func TestDrawLineNoChange(t *testing.T) {
	buf := New(4, 4)
	buf.Clear(Red)
	if buf.DrawLine(0, 0, 3, 3, Red) {
		t.Error("drawing the existing color should not report a change")
	}
}

func TestDrawLineHorizontalAndVertical(t *testing.T) {
	buf := New(5, 5)
	buf.DrawLine(0, 2, 4, 2, Green)
	for x := 0; x < 5; x++ {
		if c, _ := buf.Get(x, 2); c != Green {
			t.Errorf("horizontal pixel (%d, 2) = %+v, want green", x, c)
		}
	}
	buf.DrawLine(2, 0, 2, 4, Blue)
	for y := 0; y < 5; y++ {
		if y == 2 {
			continue // overwritten by the vertical line
		}
		if c, _ := buf.Get(2, y); c != Blue {
			t.Errorf("vertical pixel (2, %d) = %+v, want blue", y, c)
		}
	}
}

func TestBufferImageRoundTrip(t *testing.T) {
	buf := New(3, 3)
	buf.Set(0, 0, RGBA{R: 10, G: 20, B: 30, A: 255})
	buf.Set(2, 2, RGBA{R: 200, G: 100, B: 50, A: 128})

	back := FromImage(buf.ToImage())
	if !back.Equal(buf) {
		t.Error("ToImage/FromImage round trip should be bit-exact")
	}
}
