package pix

import (
	"math"
	"testing"
)

func TestGradientLinearEndpoints(t *testing.T) {
	buf := New(8, 1)
	FillGradient(buf, GradientLinear, Pt(0, 0), Pt(7, 0), Black, White, GradientOptions{})
	if c, _ := buf.Get(0, 0); c != Black {
		t.Errorf("start pixel = %+v, want black", c)
	}
	if c, _ := buf.Get(7, 0); c != White {
		t.Errorf("end pixel = %+v, want white", c)
	}
	// Monotone ramp in between.
	prev := -1
	for x := 0; x < 8; x++ {
		c, _ := buf.Get(x, 0)
		if int(c.R) < prev {
			t.Fatalf("ramp not monotone at x=%d", x)
		}
		prev = int(c.R)
	}
}

func TestGradientLinearZeroLength(t *testing.T) {
	buf := New(4, 4)
	FillGradient(buf, GradientLinear, Pt(2, 2), Pt(2, 2), Red, Blue, GradientOptions{})
	// Degenerate vector: t = 0 everywhere.
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if c, _ := buf.Get(x, y); c != Red {
				t.Fatalf("pixel (%d, %d) = %+v, want start color", x, y, c)
			}
		}
	}
}

func TestGradientRadial(t *testing.T) {
	buf := New(9, 9)
	FillGradient(buf, GradientRadial, Pt(4, 4), Pt(8, 4), Black, White, GradientOptions{})
	if c, _ := buf.Get(4, 4); c != Black {
		t.Errorf("center = %+v, want black", c)
	}
	if c, _ := buf.Get(8, 4); c != White {
		t.Errorf("pixel at radius = %+v, want white", c)
	}
	if c, _ := buf.Get(0, 0); c != White {
		t.Errorf("corner beyond radius should clamp to end color, got %+v", c)
	}
	// Radial symmetry: equal distances get equal colors.
	l, _ := buf.Get(2, 4)
	r, _ := buf.Get(6, 4)
	u, _ := buf.Get(4, 2)
	if l != r || l != u {
		t.Errorf("equidistant pixels differ: %+v %+v %+v", l, r, u)
	}
}

func TestGradientReflected(t *testing.T) {
	buf := New(9, 1)
	FillGradient(buf, GradientReflected, Pt(0, 0), Pt(8, 0), Black, White, GradientOptions{})
	// Triangle wave: dark at both ends, bright in the middle.
	start, _ := buf.Get(0, 0)
	mid, _ := buf.Get(4, 0)
	end, _ := buf.Get(8, 0)
	if start != Black || end != Black {
		t.Errorf("ends = %+v / %+v, want black", start, end)
	}
	if mid != White {
		t.Errorf("midpoint = %+v, want white", mid)
	}
	a, _ := buf.Get(2, 0)
	b, _ := buf.Get(6, 0)
	if a != b {
		t.Errorf("reflected gradient should be symmetric, got %+v vs %+v", a, b)
	}
}

func TestGradientDiamond(t *testing.T) {
	buf := New(9, 9)
	FillGradient(buf, GradientDiamond, Pt(4, 4), Pt(8, 4), Black, White, GradientOptions{})
	if c, _ := buf.Get(4, 4); c != Black {
		t.Errorf("center = %+v, want black", c)
	}
	// L1 distance: (6, 6) is |2|+|2| = 4 away, same as (8, 4).
	a, _ := buf.Get(6, 6)
	b, _ := buf.Get(8, 4)
	if a != b {
		t.Errorf("equal L1 distances should match: %+v vs %+v", a, b)
	}
}

func TestGradientAngleRange(t *testing.T) {
	buf := New(9, 9)
	FillGradient(buf, GradientAngle, Pt(4, 4), Pt(8, 4), Black, White, GradientOptions{})
	// Every t must be in [0, 1]; spot-check opposite sides differ.
	l, _ := buf.Get(0, 4)
	r, _ := buf.Get(8, 4)
	if l == r {
		t.Error("angle gradient should vary around the center")
	}
}

func TestGradientAngleT(t *testing.T) {
	// atan2 of the +x direction is 0, mapping to t = 0.5.
	tv := gradientT(GradientAngle, 8, 4, Pt(4, 4), Pt(8, 4))
	if math.Abs(tv-0.5) > 1e-9 {
		t.Errorf("t for +x direction = %v, want 0.5", tv)
	}
}

func TestGradientDithered(t *testing.T) {
	buf := New(16, 16)
	FillGradient(buf, GradientLinear, Pt(0, 0), Pt(15, 0), Black, White,
		GradientOptions{Dither: true})
	// Ordered dithering collapses every pixel to one of the two ends.
	blacks, whites := 0, 0
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			switch c, _ := buf.Get(x, y); c {
			case Black:
				blacks++
			case White:
				whites++
			default:
				t.Fatalf("dithered pixel (%d, %d) = %+v, want pure black or white", x, y, c)
			}
		}
	}
	if blacks == 0 || whites == 0 {
		t.Error("dithered ramp should contain both end colors")
	}
}

func TestGradientMasked(t *testing.T) {
	buf := NewFilled(8, 8, Red)
	mask := SelectRect(8, 8, 0, 0, 3, 7)
	FillGradient(buf, GradientLinear, Pt(0, 0), Pt(7, 0), Black, White,
		GradientOptions{Mask: mask})
	if c, _ := buf.Get(5, 0); c != Red {
		t.Errorf("unselected pixel = %+v, want untouched red", c)
	}
	if c, _ := buf.Get(0, 0); c != Black {
		t.Errorf("selected pixel = %+v, want gradient start", c)
	}
}
