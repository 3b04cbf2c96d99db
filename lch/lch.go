// Package lch converts colors between hex-encoded sRGB and Oklab, in both its
// rectangular (L, a, b) and cylindrical (lightness, chroma, hue) forms.
//
// Lightness is in [0, 1]. Chroma is unbounded in theory and stays below
// roughly 0.37 inside the sRGB gamut. Hue is in radians, in [0, 2π).
package lch

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/mat"
)

// achromaticEpsilon is the opponent magnitude below which hue is reported as 0
const achromaticEpsilon = 0.0001

// chromaTolerance is the width at which the gamut bisection stops
const chromaTolerance = 0.01

// gamutEpsilon absorbs matrix round-off so in-gamut colors round-trip unchanged
const gamutEpsilon = 0.005

// RGB is an sRGB color with channels nominally in [0, 255]
type RGB struct {
	R, G, B float64
}

// Lab is a color in rectangular Oklab coordinates
type Lab struct {
	L, A, B float64
}

// LCH is a color in cylindrical Oklab coordinates
type LCH struct {
	L float64 // Lightness, 0 (black) to 1 (white)
	C float64 // Chroma, >= 0
	H float64 // Hue in radians, [0, 2π); meaningless when C is close to 0
}

// Oklab matrices (https://bottosson.github.io/posts/oklab/)
var (
	linearToLMS = mat.NewDense(3, 3, []float64{
		0.4121656120, 0.5362752080, 0.0514575653,
		0.2118591070, 0.6807189584, 0.1074065790,
		0.0883097947, 0.2818474174, 0.6302613616,
	})
	lmsToLab = mat.NewDense(3, 3, []float64{
		0.2104542553, 0.7936177850, -0.0040720468,
		1.9779984951, -2.4285922050, 0.4505937099,
		0.0259040371, 0.7827717662, -0.8086757660,
	})
	labToLMS = mat.NewDense(3, 3, []float64{
		1, 0.3963377774, 0.2158037573,
		1, -0.1055613458, -0.0638541728,
		1, -0.0894841775, -1.2914855480,
	})
	lmsToLinear = mat.NewDense(3, 3, []float64{
		4.0767245293, -3.3072168827, 0.2307590544,
		-1.2681437731, 2.6093323231, -0.3411344290,
		-0.0041119885, -0.7034763098, 1.7068625689,
	})
)

func transform(m mat.Matrix, x, y, z float64) (float64, float64, float64) {
	var out mat.VecDense
	out.MulVec(m, mat.NewVecDense(3, []float64{x, y, z}))
	return out.AtVec(0), out.AtVec(1), out.AtVec(2)
}

// RGBToLab converts an sRGB color to Oklab
func RGBToLab(rgb RGB) Lab {
	r, g, b := colorful.Color{R: rgb.R / 255, G: rgb.G / 255, B: rgb.B / 255}.LinearRgb()

	l, m, s := transform(linearToLMS, r, g, b)
	L, A, B := transform(lmsToLab, math.Cbrt(l), math.Cbrt(m), math.Cbrt(s))

	return Lab{L: L, A: A, B: B}
}

// LabToRGB converts an Oklab color to sRGB without any gamut handling.
// Channels may fall outside [0, 255].
func LabToRGB(lab Lab) RGB {
	l, m, s := transform(labToLMS, lab.L, lab.A, lab.B)
	r, g, b := transform(lmsToLinear, l*l*l, m*m*m, s*s*s)

	c := colorful.LinearRgb(r, g, b)
	return RGB{R: c.R * 255, G: c.G * 255, B: c.B * 255}
}

// LCH converts a rectangular Oklab color to its cylindrical form
func (lab Lab) LCH() LCH {
	h := 0.0
	if math.Abs(lab.A) > achromaticEpsilon || math.Abs(lab.B) > achromaticEpsilon {
		h = normalizeHue(math.Atan2(lab.B, lab.A))
	}
	return LCH{L: lab.L, C: math.Hypot(lab.A, lab.B), H: h}
}

// Lab converts a cylindrical Oklab color to its rectangular form
func (c LCH) Lab() Lab {
	return Lab{L: c.L, A: math.Cos(c.H) * c.C, B: math.Sin(c.H) * c.C}
}

// RGBToLCH converts an sRGB color to Oklab LCH
func RGBToLCH(rgb RGB) LCH {
	return RGBToLab(rgb).LCH()
}

// LCHToRGB converts an Oklab LCH color to sRGB, reducing chroma at fixed
// lightness and hue until the result fits the sRGB gamut.
// Every channel of the result is in [0, 255].
func LCHToRGB(c LCH) RGB {
	rgb := LabToRGB(c.Lab())
	if !InGamut(rgb) {
		lo, hi := 0.0, c.C
		for hi-lo > chromaTolerance {
			mid := (lo + hi) / 2
			if InGamut(LabToRGB(LCH{L: c.L, C: mid, H: c.H}.Lab())) {
				lo = mid
			} else {
				hi = mid
			}
		}
		rgb = LabToRGB(LCH{L: c.L, C: lo, H: c.H}.Lab())
	}

	// Lightness outside the gamut (or matrix round-off at white) survives a zero chroma
	return rgb.Clamped()
}

// InGamut reports whether every channel is in [0, 255], give or take round-off
func InGamut(rgb RGB) bool {
	for _, v := range [3]float64{rgb.R, rgb.G, rgb.B} {
		if v < -gamutEpsilon || v > 255+gamutEpsilon || math.IsNaN(v) {
			return false
		}
	}
	return true
}

// Clamped returns the color with every channel limited to [0, 255]
func (rgb RGB) Clamped() RGB {
	return RGB{R: clamp(rgb.R), G: clamp(rgb.G), B: clamp(rgb.B)}
}

// Mix interpolates between a and b in rectangular Oklab space.
// t = 0 yields a and t = 1 yields b.
func Mix(a, b LCH, t float64) LCH {
	la, lb := a.Lab(), b.Lab()
	return Lab{
		L: la.L*(1-t) + lb.L*t,
		A: la.A*(1-t) + lb.A*t,
		B: la.B*(1-t) + lb.B*t,
	}.LCH()
}

func normalizeHue(h float64) float64 {
	h = math.Mod(h, 2*math.Pi)
	if h < 0 {
		h += 2 * math.Pi
	}
	if h >= 2*math.Pi {
		h = 0
	}
	return h
}

func clamp(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
