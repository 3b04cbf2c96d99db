package scheme

import (
	"context"
	"fmt"

	"xiwal/lch"
	"xiwal/logging"
)

// Options controls a single Generate call
type Options struct {
	// Full appends the 240 extended colors to the base 16
	Full bool
	// Workers > 1 splits the subset search across goroutines
	Workers int
}

// Scheme is a generated palette
type Scheme struct {
	Colors    []string  // 16 or 256 hex colors
	Selection Selection // Candidates chosen for the six accent slots
	Full      bool
}

// Generator runs the whole pipeline from hex candidates to hex palette
type Generator struct {
	builder  *Builder
	scorer   *Scorer
	selector *Selector
}

// NewGenerator creates a Generator after validating the tuning
func NewGenerator(tuning Tuning) (*Generator, error) {
	if err := tuning.Validate(); err != nil {
		return nil, err
	}

	scorer := NewScorer(tuning)
	return &Generator{
		builder:  NewBuilder(tuning),
		scorer:   scorer,
		selector: NewSelector(scorer),
	}, nil
}

// Generate builds a scheme from candidate hex colors. The first candidate
// is the dominant color: it sets the hue of the greys and stays eligible as
// an accent. Every candidate is parsed before anything else runs, so a
// malformed color fails the whole call.
func (g *Generator) Generate(ctx context.Context, hexColors []string, opts Options) (*Scheme, error) {
	colors := make([]lch.LCH, len(hexColors))
	for i, s := range hexColors {
		c, err := lch.FromHex(s)
		if err != nil {
			return nil, fmt.Errorf("color %d: %w", i+1, err)
		}
		colors[i] = c
	}

	var selection Selection
	var err error
	if opts.Workers > 1 {
		selection, err = g.selector.SelectParallel(ctx, colors, opts.Workers)
	} else {
		selection, err = g.selector.Select(colors)
	}
	if err != nil {
		return nil, err
	}

	logging.Logger.Debug("Selected accent colors",
		"candidates", len(colors),
		"indices", selection.Indices,
		"score", selection.Score)

	base := g.builder.BuildBase(selection.Colors(colors), colors[0])
	palette := base[:]
	if opts.Full {
		palette = append(palette, ExpandTo256(base)...)
	}

	return &Scheme{
		Colors:    ToHex(palette),
		Selection: selection,
		Full:      opts.Full,
	}, nil
}
