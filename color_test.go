package pix

import "testing"

func TestHex(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want RGBA
	}{
		{"RRGGBB", "#ff8000", RGBA{R: 255, G: 128, B: 0, A: 255}},
		{"no hash", "ff8000", RGBA{R: 255, G: 128, B: 0, A: 255}},
		{"RRGGBBAA", "#11223344", RGBA{R: 0x11, G: 0x22, B: 0x33, A: 0x44}},
		{"short RGB", "#f80", RGBA{R: 255, G: 136, B: 0, A: 255}},
		{"short RGBA", "#f808", RGBA{R: 255, G: 136, B: 0, A: 136}},
		{"upper case", "#FF8000", RGBA{R: 255, G: 128, B: 0, A: 255}},
		{"invalid length", "#ff800", White},
		{"invalid digit", "#gg0000", White},
		{"empty", "", White},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Hex(tt.in); got != tt.want {
				t.Errorf("Hex(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestHSLRoundTrip(t *testing.T) {
	// HSL round-trips must reproduce the RGB bytes exactly for a
	// sample across the color cube.
	colors := []RGBA{
		Red, Green, Blue, Yellow, Cyan, Magenta, Black, White,
		{R: 128, G: 128, B: 128, A: 255},
		{R: 37, G: 89, B: 201, A: 255},
		{R: 250, G: 12, B: 112, A: 255},
	}
	for _, c := range colors {
		h, s, l := RGBToHSL(c.R, c.G, c.B)
		r, g, b := HSLToRGB(h, s, l)
		if r != c.R || g != c.G || b != c.B {
			t.Errorf("round trip of (%d, %d, %d) gave (%d, %d, %d) via h=%.2f s=%.3f l=%.3f",
				c.R, c.G, c.B, r, g, b, h, s, l)
		}
	}
}

func TestRGBToHSLKnownValues(t *testing.T) {
	h, s, l := RGBToHSL(255, 0, 0)
	if h != 0 || s != 1 || l != 0.5 {
		t.Errorf("red: got h=%v s=%v l=%v, want 0, 1, 0.5", h, s, l)
	}
	h, s, l = RGBToHSL(0, 255, 0)
	if h != 120 || s != 1 || l != 0.5 {
		t.Errorf("green: got h=%v s=%v l=%v, want 120, 1, 0.5", h, s, l)
	}
	h, s, _ = RGBToHSL(128, 128, 128)
	if h != 0 || s != 0 {
		t.Errorf("gray: got h=%v s=%v, want achromatic 0, 0", h, s)
	}
}

func TestHSLToRGBWrapsHue(t *testing.T) {
	r1, g1, b1 := HSLToRGB(480, 1, 0.5) // 480 wraps to 120 (green)
	r2, g2, b2 := HSLToRGB(120, 1, 0.5)
	if r1 != r2 || g1 != g2 || b1 != b2 {
		t.Errorf("hue 480 gave (%d, %d, %d), hue 120 gave (%d, %d, %d)",
			r1, g1, b1, r2, g2, b2)
	}
	r1, g1, b1 = HSLToRGB(-240, 1, 0.5) // -240 also wraps to 120
	if r1 != r2 || g1 != g2 || b1 != b2 {
		t.Errorf("hue -240 gave (%d, %d, %d), want green (%d, %d, %d)",
			r1, g1, b1, r2, g2, b2)
	}
}

func TestLerp(t *testing.T) {
	got := Black.Lerp(White, 0.5)
	want := RGBA{R: 128, G: 128, B: 128, A: 255}
	if got != want {
		t.Errorf("midpoint lerp = %+v, want %+v", got, want)
	}
	if got := Red.Lerp(Blue, 0); got != Red {
		t.Errorf("t=0 should return start, got %+v", got)
	}
	if got := Red.Lerp(Blue, 1); got != Blue {
		t.Errorf("t=1 should return end, got %+v", got)
	}
	if got := Red.Lerp(Blue, 2); got != Blue {
		t.Errorf("t>1 should clamp to end, got %+v", got)
	}
}

func TestClampByteRoundsHalfUp(t *testing.T) {
	tests := []struct {
		in   float64
		want uint8
	}{
		{0.5, 1},
		{1.5, 2},
		{127.5, 128},
		{127.49, 127},
		{-3, 0},
		{300, 255},
		{254.5, 255},
	}
	for _, tt := range tests {
		if got := clampByte(tt.in); got != tt.want {
			t.Errorf("clampByte(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
