package scheme

import (
	"math"

	"xiwal/lch"
)

// Scorer measures how well colors fit the six accent hue slots
type Scorer struct {
	tuning Tuning
}

// NewScorer creates a Scorer for the given tuning
func NewScorer(tuning Tuning) *Scorer {
	return &Scorer{tuning: tuning}
}

// TargetHue returns the hue, in radians, that the slot aims for
func (s *Scorer) TargetHue(slot int) float64 {
	return math.Pi/3*float64(SlotOrder[slot]) + s.tuning.HueOffset
}

// Distance returns the penalty of placing c in the slot, and the weight the
// slot carries in the average. The quartic exponent keeps close matches
// almost free while punishing misses hard.
func (s *Scorer) Distance(c lch.LCH, slot int) (penalty, weight float64) {
	d := math.Abs(c.H - s.TargetHue(slot))
	if d > math.Pi {
		d = 2*math.Pi - d
	}

	weight = c.C
	if IsSignalSlot(slot) {
		weight = math.Max(weight, s.tuning.SignalChroma)
		// Desaturated candidates would otherwise hide behind the floor
		d += (weight - c.C) / (weight + c.C)
	}

	return d * d * d * d * weight, weight
}

// Score returns the chroma-weighted mean penalty of an ordered selection.
// Lower is better.
func (s *Scorer) Score(six [SlotCount]lch.LCH) float64 {
	var penalties, weights float64
	for slot, c := range six {
		p, w := s.Distance(c, slot)
		penalties += p
		weights += w
	}
	return penalties / weights
}
