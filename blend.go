package pix

import "math"

// BlendMode selects the channel-mixing function applied to a layer's
// color channels before alpha compositing. The enumeration is closed:
// CompositePixel dispatches with an exhaustive switch, so adding a
// mode is a compile-time-checked change rather than a silent default
// fallthrough.
type BlendMode uint8

const (
	// BlendNormal uses the top color unchanged.
	BlendNormal BlendMode = iota
	// BlendMultiply multiplies base and top: base*top.
	BlendMultiply
	// BlendScreen inverts, multiplies, inverts: 1-(1-base)*(1-top).
	BlendScreen
	// BlendOverlay multiplies dark bases and screens light ones.
	BlendOverlay
	// BlendAdd sums the channels, clamped to 1.
	BlendAdd
	// BlendSubtract subtracts top from base, clamped to 0.
	BlendSubtract
	// BlendDarken keeps the darker channel.
	BlendDarken
	// BlendLighten keeps the lighter channel.
	BlendLighten
	// BlendDifference takes |base-top|.
	BlendDifference
	// BlendExclusion takes base+top-2*base*top.
	BlendExclusion
)

// String returns the blend mode name as used by persistence collaborators.
func (m BlendMode) String() string {
	switch m {
	case BlendNormal:
		return "normal"
	case BlendMultiply:
		return "multiply"
	case BlendScreen:
		return "screen"
	case BlendOverlay:
		return "overlay"
	case BlendAdd:
		return "add"
	case BlendSubtract:
		return "subtract"
	case BlendDarken:
		return "darken"
	case BlendLighten:
		return "lighten"
	case BlendDifference:
		return "difference"
	case BlendExclusion:
		return "exclusion"
	}
	return "normal"
}

// BlendModeFromString maps a persisted name back to a BlendMode.
// Unknown names yield BlendNormal, matching the defensive-no-op policy.
func BlendModeFromString(s string) BlendMode {
	switch s {
	case "multiply":
		return BlendMultiply
	case "screen":
		return BlendScreen
	case "overlay":
		return BlendOverlay
	case "add":
		return BlendAdd
	case "subtract":
		return BlendSubtract
	case "darken":
		return BlendDarken
	case "lighten":
		return BlendLighten
	case "difference":
		return BlendDifference
	case "exclusion":
		return BlendExclusion
	}
	return BlendNormal
}

// blendChannel applies the per-channel blend function B(base, top) for
// the given mode. Inputs and output are normalized to [0, 1].
func blendChannel(base, top float64, mode BlendMode) float64 {
	switch mode {
	case BlendNormal:
		return top
	case BlendMultiply:
		return base * top
	case BlendScreen:
		return 1 - (1-base)*(1-top)
	case BlendOverlay:
		if base < 0.5 {
			return 2 * base * top
		}
		return 1 - 2*(1-base)*(1-top)
	case BlendAdd:
		return clamp01(base + top)
	case BlendSubtract:
		return clamp01(base - top)
	case BlendDarken:
		return math.Min(base, top)
	case BlendLighten:
		return math.Max(base, top)
	case BlendDifference:
		return math.Abs(base - top)
	case BlendExclusion:
		return base + top - 2*base*top
	}
	return top
}
