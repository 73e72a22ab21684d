package pix

import (
	"image/color"
	"math"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is a byte in the range [0, 255]. Alpha is straight
// (not premultiplied): color channels are stored independently of
// transparency.
type RGBA struct {
	R, G, B, A uint8
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA{R: n.R, G: n.G, B: n.B, A: n.A}
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b uint8) RGBA {
	return RGBA{R: r, G: g, B: b, A: 255}
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with or
// without a leading '#'. Malformed input yields opaque white.
func Hex(hex string) RGBA {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint32
	a = 255
	ok := true

	switch len(hex) {
	case 3: // RGB
		ok = parseHex(hex[0:1], &r) && parseHex(hex[1:2], &g) && parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		ok = parseHex(hex[0:1], &r) && parseHex(hex[1:2], &g) &&
			parseHex(hex[2:3], &b) && parseHex(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		ok = parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) && parseHex(hex[4:6], &b)
	case 8: // RRGGBBAA
		ok = parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) &&
			parseHex(hex[4:6], &b) && parseHex(hex[6:8], &a)
	default:
		ok = false
	}

	if !ok {
		return White
	}
	return RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}
}

// parseHex is a helper for hex parsing.
func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}

// Lerp performs linear interpolation between two colors.
// t is clamped to [0, 1]; each channel rounds half up.
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	t = clamp01(t)
	return RGBA{
		R: clampByte(float64(c.R) + (float64(other.R)-float64(c.R))*t),
		G: clampByte(float64(c.G) + (float64(other.G)-float64(c.G))*t),
		B: clampByte(float64(c.B) + (float64(other.B)-float64(c.B))*t),
		A: clampByte(float64(c.A) + (float64(other.A)-float64(c.A))*t),
	}
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(255, 255, 255)
	Red         = RGB(255, 0, 0)
	Green       = RGB(0, 255, 0)
	Blue        = RGB(0, 0, 255)
	Yellow      = RGB(255, 255, 0)
	Cyan        = RGB(0, 255, 255)
	Magenta     = RGB(255, 0, 255)
	Transparent = RGBA{}
)

// RGBToHSL converts byte RGB channels to HSL.
// h is hue in [0, 360), s is saturation [0, 1], l is lightness [0, 1].
func RGBToHSL(r, g, b uint8) (h, s, l float64) {
	rf := float64(r) / 255
	gf := float64(g) / 255
	bf := float64(b) / 255

	maxC := math.Max(rf, math.Max(gf, bf))
	minC := math.Min(rf, math.Min(gf, bf))
	delta := maxC - minC

	l = (maxC + minC) / 2

	if delta == 0 {
		return 0, 0, l
	}

	if l > 0.5 {
		s = delta / (2 - maxC - minC)
	} else {
		s = delta / (maxC + minC)
	}

	switch maxC {
	case rf:
		h = (gf - bf) / delta
		if gf < bf {
			h += 6
		}
	case gf:
		h = (bf-rf)/delta + 2
	default:
		h = (rf-gf)/delta + 4
	}
	h *= 60
	return h, s, l
}

// HSLToRGB converts HSL back to byte RGB channels.
// h is hue in degrees (wrapped into [0, 360)), s and l in [0, 1].
func HSLToRGB(h, s, l float64) (r, g, b uint8) {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	s = clamp01(s)
	l = clamp01(l)

	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2

	var rf, gf, bf float64
	switch {
	case h < 60:
		rf, gf, bf = c, x, 0
	case h < 120:
		rf, gf, bf = x, c, 0
	case h < 180:
		rf, gf, bf = 0, c, x
	case h < 240:
		rf, gf, bf = 0, x, c
	case h < 300:
		rf, gf, bf = x, 0, c
	default:
		rf, gf, bf = c, 0, x
	}

	return clampByte((rf + m) * 255), clampByte((gf + m) * 255), clampByte((bf + m) * 255)
}

// clamp01 clamps a value to [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// clampByte rounds a value to the nearest integer byte (half rounds
// up, matching the compositing convention) and clamps to [0, 255].
func clampByte(x float64) uint8 {
	v := math.Floor(x + 0.5)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
