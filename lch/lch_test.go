package lch

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  RGB
	}{
		{"six digits with hash", "#ff8000", RGB{255, 128, 0}},
		{"six digits without hash", "102030", RGB{16, 32, 48}},
		{"uppercase", "#ABCDEF", RGB{171, 205, 239}},
		{"three digits", "#f80", RGB{255, 136, 0}},
		{"three digits without hash", "fff", RGB{255, 255, 255}},
		{"twelve digits", "#ffff80800000", RGB{255, 128, 0}},
		{"twelve digits black", "000000000000", RGB{0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.input)
			require.NoError(t, err)
			assert.InDelta(t, tt.want.R, got.R, 1e-9)
			assert.InDelta(t, tt.want.G, got.G, 1e-9)
			assert.InDelta(t, tt.want.B, got.B, 1e-9)
		})
	}
}

func TestParseHexInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"hash only", "#"},
		{"two digits", "#ff"},
		{"four digits", "#ffff"},
		{"five digits", "#fffff"},
		{"seven digits", "#fffffff"},
		{"eight digits", "#ffffffff"},
		{"non hex digit", "#gg0000"},
		{"sign character", "#+ff000"},
		{"non hex in short form", "#fzf"},
		{"non hex in long form", "#ffff8080000x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseHex(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidFormat)
		})
	}
}

func TestFormatHex(t *testing.T) {
	assert.Equal(t, "#ff8000", FormatHex(RGB{255, 128, 0}))
	assert.Equal(t, "#000000", FormatHex(RGB{0, 0, 0}))
	// Channels are truncated, not rounded
	assert.Equal(t, "#0a0a0a", FormatHex(RGB{10.99, 10.5, 10.01}))
}

func TestHexRoundTrip(t *testing.T) {
	// Stride through the 24-bit space and hit both ends
	for v := 0; v <= 0xffffff; v += 0x010307 {
		s := fmt.Sprintf("#%06X", v)
		rgb, err := ParseHex(s)
		require.NoError(t, err)
		assert.Equal(t, strings.ToLower(s), FormatHex(rgb))
	}

	rgb, err := ParseHex("#ffffff")
	require.NoError(t, err)
	assert.Equal(t, "#ffffff", FormatHex(rgb))
}

func TestParseHexMatchesColorful(t *testing.T) {
	for _, s := range []string{"#002b36", "#eee8d5", "#b58900", "#cb4b16", "#dc322f", "#d33682"} {
		want, err := colorful.Hex(s)
		require.NoError(t, err)

		got, err := ParseHex(s)
		require.NoError(t, err)

		assert.InDelta(t, want.R*255, got.R, 1e-9, s)
		assert.InDelta(t, want.G*255, got.G, 1e-9, s)
		assert.InDelta(t, want.B*255, got.B, 1e-9, s)
	}
}

func TestRGBToLCHKnownColors(t *testing.T) {
	tests := []struct {
		name       string
		rgb        RGB
		want       LCH
		achromatic bool
	}{
		{"white", RGB{255, 255, 255}, LCH{L: 1, C: 0}, true},
		{"black", RGB{0, 0, 0}, LCH{L: 0, C: 0}, true},
		{"red", RGB{255, 0, 0}, LCH{L: 0.62796, C: 0.25768, H: 29.2339 * math.Pi / 180}, false},
		{"green", RGB{0, 255, 0}, LCH{L: 0.86644, C: 0.29483, H: 142.4953 * math.Pi / 180}, false},
		{"blue", RGB{0, 0, 255}, LCH{L: 0.45201, C: 0.31321, H: 264.052 * math.Pi / 180}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RGBToLCH(tt.rgb)
			assert.InDelta(t, tt.want.L, got.L, 1e-3)
			assert.InDelta(t, tt.want.C, got.C, 1e-3)
			if !tt.achromatic {
				assert.InDelta(t, tt.want.H, got.H, 1e-2)
			}
		})
	}
}

func TestGreyHasZeroHue(t *testing.T) {
	// Near white the matrix round-off alone exceeds the epsilon
	for _, v := range []float64{0, 1, 64, 128, 200} {
		got := RGBToLCH(RGB{v, v, v})
		assert.Equal(t, 0.0, got.H, "grey %v", v)
		assert.Less(t, got.C, achromaticEpsilon*2)
	}
}

func TestHueIsCanonical(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 2000; i++ {
		rgb := RGB{float64(rng.Intn(256)), float64(rng.Intn(256)), float64(rng.Intn(256))}
		h := RGBToLCH(rgb).H
		assert.GreaterOrEqual(t, h, 0.0)
		assert.Less(t, h, 2*math.Pi)
	}
}

func TestRGBRoundTrip(t *testing.T) {
	channels := []float64{0, 1, 15, 30, 45, 60, 75, 90, 105, 120, 127, 128, 135, 150, 165, 180, 195, 210, 225, 240, 254, 255}

	for _, r := range channels {
		for _, g := range channels {
			for _, b := range channels {
				in := RGB{r, g, b}
				out := LCHToRGB(RGBToLCH(in))
				assert.InDelta(t, r, math.Round(out.R), 1, "%v -> %v", in, out)
				assert.InDelta(t, g, math.Round(out.G), 1, "%v -> %v", in, out)
				assert.InDelta(t, b, math.Round(out.B), 1, "%v -> %v", in, out)
			}
		}
	}
}

func TestLCHToRGBStaysInGamut(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 5000; i++ {
		c := LCH{
			L: rng.Float64()*1.2 - 0.1,
			C: rng.Float64() * 0.6,
			H: rng.Float64() * 2 * math.Pi,
		}
		rgb := LCHToRGB(c)
		for _, v := range []float64{rgb.R, rgb.G, rgb.B} {
			require.GreaterOrEqual(t, v, 0.0, "%+v -> %+v", c, rgb)
			require.LessOrEqual(t, v, 255.0, "%+v -> %+v", c, rgb)
		}
	}
}

func TestLCHToRGBReducesChromaOnly(t *testing.T) {
	// Far outside the gamut: a very saturated mid-lightness green
	in := LCH{L: 0.6, C: 0.5, H: 140 * math.Pi / 180}
	require.False(t, InGamut(LabToRGB(in.Lab())))

	got := RGBToLCH(LCHToRGB(in))
	assert.InDelta(t, in.L, got.L, 0.01)
	assert.InDelta(t, in.H, got.H, 0.05)
	assert.Less(t, got.C, in.C)
	assert.Greater(t, got.C, 0.05)
}

func TestLCHToRGBExtremes(t *testing.T) {
	white := LCHToRGB(RGBToLCH(RGB{255, 255, 255}))
	assert.InDelta(t, 255, white.R, 0.001)
	assert.InDelta(t, 255, white.G, 0.001)
	assert.InDelta(t, 255, white.B, 0.001)
	assert.Equal(t, "#000000", ToHex(LCH{L: 0, C: 0, H: 0}))

	// L = 1 overshoots red and undershoots blue slightly, so it is clamped
	// rather than bisected
	rgb := LCHToRGB(LCH{L: 1, C: 0, H: 0})
	assert.Equal(t, 255.0, rgb.R)
	assert.InDelta(t, 255, rgb.G, 1)
	assert.InDelta(t, 255, rgb.B, 1)
}

func TestMixEndpoints(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		a := LCH{L: rng.Float64(), C: 0.01 + rng.Float64()*0.3, H: rng.Float64() * 2 * math.Pi}
		b := LCH{L: rng.Float64(), C: 0.01 + rng.Float64()*0.3, H: rng.Float64() * 2 * math.Pi}

		assertLCHNear(t, a, Mix(a, b, 0))
		assertLCHNear(t, b, Mix(a, b, 1))
	}
}

func TestMixAchromatic(t *testing.T) {
	black := LCH{L: 0, C: 0, H: 0}
	white := LCH{L: 1, C: 0, H: 0}

	mid := Mix(black, white, 0.5)
	assert.InDelta(t, 0.5, mid.L, 1e-12)
	assert.InDelta(t, 0, mid.C, 1e-12)
}

func TestMixPassesThroughOpponentSpace(t *testing.T) {
	// Opposite hues at equal chroma meet at the neutral axis instead of
	// sweeping around the hue wheel
	a := LCH{L: 0.5, C: 0.1, H: 0}
	b := LCH{L: 0.5, C: 0.1, H: math.Pi}

	mid := Mix(a, b, 0.5)
	assert.InDelta(t, 0.5, mid.L, 1e-12)
	assert.InDelta(t, 0, mid.C, 1e-9)
}

func TestFromHexToHex(t *testing.T) {
	for _, s := range []string{"#002b36", "#dc322f", "#859900", "#268bd2", "#808080"} {
		c, err := FromHex(s)
		require.NoError(t, err)

		rgb, err := ParseHex(ToHex(c))
		require.NoError(t, err)
		want, err := ParseHex(s)
		require.NoError(t, err)

		assert.InDelta(t, want.R, rgb.R, 1, s)
		assert.InDelta(t, want.G, rgb.G, 1, s)
		assert.InDelta(t, want.B, rgb.B, 1, s)
	}

	_, err := FromHex("#12345")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func assertLCHNear(t *testing.T, want, got LCH) {
	t.Helper()
	assert.InDelta(t, want.L, got.L, 1e-9)
	assert.InDelta(t, want.C, got.C, 1e-9)

	d := math.Abs(want.H - got.H)
	if d > math.Pi {
		d = 2*math.Pi - d
	}
	assert.InDelta(t, 0, d, 1e-6)
}
