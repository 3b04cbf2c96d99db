// Package scheme turns a set of sampled colors into an ordered 16 color
// terminal palette, optionally expanded to 256 colors.
package scheme

import (
	"errors"
	"fmt"
	"math"
)

// SlotCount is the number of accent colors picked from the candidates
const SlotCount = 6

// BaseSize is the number of colors in a base scheme
const BaseSize = 16

// ExtendedSize is the number of colors ExpandTo256 adds to a base scheme
const ExtendedSize = 6*6*6 + GreyRampSize

// GreyRampSize is the number of entries in the extended grey ramp
const GreyRampSize = 24

// SlotOrder maps an accent slot (terminal color order: red, green, yellow,
// blue, magenta, cyan) to its position on the hue wheel (red, yellow,
// green, cyan, blue, magenta).
var SlotOrder = [SlotCount]int{0, 2, 1, 4, 5, 3}

// IsSignalSlot reports whether the slot is red or green. Those keep a
// minimum chroma because terminal users rely on them for status.
func IsSignalSlot(slot int) bool {
	return slot == 0 || slot == 1
}

// ErrInvalidTuning is returned by Tuning.Validate
var ErrInvalidTuning = errors.New("invalid tuning")

// Tuning holds the calibrated constants of the engine
type Tuning struct {
	// Minimum chroma for the signal slots
	SignalChroma float64 `json:"signal_chroma"`
	// Maximum chroma for the greys
	GreyChroma float64 `json:"grey_chroma"`
	// Accent chroma multiplier
	ChromaFactor float64 `json:"chroma_factor"`
	// Lightness for background, six accents and foreground.
	// Dark accents should contrast with both black and white; light accents
	// should differ from each other in lightness so they stay distinguishable.
	DarkLightness  [8]float64 `json:"dark_lightness"`
	LightLightness [8]float64 `json:"light_lightness"`
	// Hue of the red reference, in radians
	HueOffset float64 `json:"hue_offset"`
}

// DefaultTuning returns the calibrated defaults
func DefaultTuning() Tuning {
	return Tuning{
		SignalChroma:   0.15,
		GreyChroma:     0.02,
		ChromaFactor:   1.2,
		DarkLightness:  [8]float64{0.15, 0.50, 0.60, 0.60, 0.55, 0.55, 0.60, 0.90},
		LightLightness: [8]float64{0.30, 0.65, 0.75, 0.85, 0.65, 0.65, 0.80, 1.00},
		HueOffset:      math.Pi * 2 / 14,
	}
}

// Validate checks that the constants keep the engine well defined.
// SignalChroma is capped at 1 so every slot weight stays at or below the
// placeholder weight the selector uses for unassigned slots.
func (t Tuning) Validate() error {
	if t.SignalChroma <= 0 || t.SignalChroma > 1 {
		return fmt.Errorf("%w: signal_chroma must be in (0, 1], got %v", ErrInvalidTuning, t.SignalChroma)
	}
	if t.GreyChroma < 0 {
		return fmt.Errorf("%w: grey_chroma must not be negative, got %v", ErrInvalidTuning, t.GreyChroma)
	}
	if t.ChromaFactor <= 0 {
		return fmt.Errorf("%w: chroma_factor must be positive, got %v", ErrInvalidTuning, t.ChromaFactor)
	}
	for i := range t.DarkLightness {
		if !inUnitRange(t.DarkLightness[i]) || !inUnitRange(t.LightLightness[i]) {
			return fmt.Errorf("%w: lightness values must be in [0, 1]", ErrInvalidTuning)
		}
	}
	if math.IsNaN(t.HueOffset) || math.IsInf(t.HueOffset, 0) {
		return fmt.Errorf("%w: hue_offset must be finite", ErrInvalidTuning)
	}
	return nil
}

func inUnitRange(v float64) bool {
	return v >= 0 && v <= 1
}
