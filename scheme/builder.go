package scheme

import (
	"math"

	"xiwal/lch"
)

// Builder derives the palette from the selected accents and the dominant color
type Builder struct {
	tuning Tuning
}

// NewBuilder creates a Builder for the given tuning
func NewBuilder(tuning Tuning) *Builder {
	return &Builder{tuning: tuning}
}

// BuildBase lays out the 16 base colors: background, six accents and
// foreground at dark lightness (0-7), then the same at light lightness (8-15).
// Greys take the dominant hue with at most GreyChroma.
func (b *Builder) BuildBase(six [SlotCount]lch.LCH, dominant lch.LCH) [BaseSize]lch.LCH {
	grey := math.Min(dominant.C, b.tuning.GreyChroma)

	var out [BaseSize]lch.LCH
	for half, lightness := range [2][8]float64{b.tuning.DarkLightness, b.tuning.LightLightness} {
		offset := half * 8
		out[offset] = lch.LCH{L: lightness[0], C: grey, H: dominant.H}
		for i, c := range six {
			out[offset+i+1] = lch.LCH{L: lightness[i+1], C: b.accentChroma(c, i), H: c.H}
		}
		out[offset+7] = lch.LCH{L: lightness[7], C: grey, H: dominant.H}
	}
	return out
}

func (b *Builder) accentChroma(c lch.LCH, slot int) float64 {
	chroma := c.C * b.tuning.ChromaFactor
	if IsSignalSlot(slot) {
		chroma = math.Max(chroma, b.tuning.SignalChroma)
	}
	return chroma
}

// ExpandTo256 returns the 240 colors that follow the base 16 in a 256 color
// palette: a 6x6x6 cube interpolated between black, the six accents and
// white, with red outermost and blue innermost, then a 24 step ramp from
// background to foreground.
// Cube layout follows xterm: index = 16 + 36*r + 6*g + b.
func ExpandTo256(base [BaseSize]lch.LCH) []lch.LCH {
	// Cube corners: black, red, green, yellow, blue, magenta, cyan, white
	var corners [8]lch.LCH
	corners[0] = base[0]
	copy(corners[1:7], base[1:7])
	corners[7] = base[15]

	out := make([]lch.LCH, 0, ExtendedSize)
	for r := 0; r < 6; r++ {
		tr := float64(r) / 5
		c0 := lch.Mix(corners[0], corners[1], tr)
		c1 := lch.Mix(corners[2], corners[3], tr)
		c2 := lch.Mix(corners[4], corners[5], tr)
		c3 := lch.Mix(corners[6], corners[7], tr)
		for g := 0; g < 6; g++ {
			tg := float64(g) / 5
			c4 := lch.Mix(c0, c1, tg)
			c5 := lch.Mix(c2, c3, tg)
			for b := 0; b < 6; b++ {
				out = append(out, lch.Mix(c4, c5, float64(b)/5))
			}
		}
	}

	for i := 0; i < GreyRampSize; i++ {
		out = append(out, lch.Mix(corners[0], corners[7], float64(i+1)/25))
	}

	return out
}

// ToHex formats every color as an in-gamut hex string
func ToHex(colors []lch.LCH) []string {
	out := make([]string, len(colors))
	for i, c := range colors {
		out[i] = lch.ToHex(c)
	}
	return out
}
