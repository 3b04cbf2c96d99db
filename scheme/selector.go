package scheme

import (
	"context"
	"errors"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"xiwal/lch"
)

// ErrTooFewColors is returned when fewer than SlotCount candidates are given
var ErrTooFewColors = errors.New("need at least 6 colors")

// Selection is an ordered choice of distinct candidate indices, one per slot
type Selection struct {
	Indices [SlotCount]int
	Score   float64
}

// Colors returns the selected candidates in slot order
func (s Selection) Colors(candidates []lch.LCH) [SlotCount]lch.LCH {
	var six [SlotCount]lch.LCH
	for slot, i := range s.Indices {
		six[slot] = candidates[i]
	}
	return six
}

// Selector searches for the ordered subset of candidates with the lowest score
type Selector struct {
	scorer *Scorer
}

// NewSelector creates a Selector that ranks subsets with the given scorer
func NewSelector(scorer *Scorer) *Selector {
	return &Selector{scorer: scorer}
}

// distanceTable holds Distance for every (candidate, slot) pair of one search
type distanceTable struct {
	penalties [][SlotCount]float64
	weights   [][SlotCount]float64
}

func newDistanceTable(scorer *Scorer, colors []lch.LCH) *distanceTable {
	t := &distanceTable{
		penalties: make([][SlotCount]float64, len(colors)),
		weights:   make([][SlotCount]float64, len(colors)),
	}
	for i, c := range colors {
		for slot := 0; slot < SlotCount; slot++ {
			t.penalties[i][slot], t.weights[i][slot] = scorer.Distance(c, slot)
		}
	}
	return t
}

func (t *distanceTable) size() int {
	return len(t.penalties)
}

// Select returns the global optimum over all ordered selections of six
// distinct candidates. Ties go to the selection whose index sequence comes
// first lexicographically.
func (s *Selector) Select(colors []lch.LCH) (Selection, error) {
	if len(colors) < SlotCount {
		return Selection{}, fmt.Errorf("%w: got %d", ErrTooFewColors, len(colors))
	}

	table := newDistanceTable(s.scorer, colors)
	return search(table, 0, len(colors)), nil
}

// SelectParallel splits the search by first-slot candidate and runs the
// branches on at most workers goroutines (unlimited when workers <= 0).
// The result is identical to Select.
func (s *Selector) SelectParallel(ctx context.Context, colors []lch.LCH, workers int) (Selection, error) {
	if len(colors) < SlotCount {
		return Selection{}, fmt.Errorf("%w: got %d", ErrTooFewColors, len(colors))
	}

	table := newDistanceTable(s.scorer, colors)
	results := make([]Selection, len(colors))

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for first := range colors {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[first] = search(table, first, first+1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Selection{}, err
	}

	// Strict comparison in branch order keeps the lexicographic tie-break
	best := results[0]
	for _, r := range results[1:] {
		if r.Score < best.Score {
			best = r
		}
	}
	return best, nil
}

// search is a depth-first branch and bound over slot positions. The slot at
// depth 0 only takes candidates in [first, last).
//
// Slots below the current depth hold a placeholder of penalty 0 and weight 1,
// so a partial selection has a score too. A branch is dropped as soon as that
// score is not strictly below the best complete score. While every weight is
// at most 1 (chroma inside sRGB never exceeds 0.4 and Tuning caps the signal
// floor at 1) completing a branch can only raise its score, so the bound
// never discards the optimum.
func search(table *distanceTable, first, last int) Selection {
	n := table.size()

	var (
		indices   [SlotCount]int
		penalties [SlotCount]float64
		weights   = [SlotCount]float64{1, 1, 1, 1, 1, 1}
		best      = Selection{Score: math.Inf(1)}
		pos       int
	)
	indices[0] = first

	for {
		penalties[pos] = table.penalties[indices[pos]][pos]
		weights[pos] = table.weights[indices[pos]][pos]
		score := sum(penalties) / sum(weights)

		switch {
		case score < best.Score && pos == SlotCount-1:
			best = Selection{Indices: indices, Score: score}
			indices[pos]++
		case score < best.Score:
			pos++
		default:
			indices[pos]++
		}

		// Advance to the next unused candidate, backtracking when a depth runs out
		for {
			limit := n
			if pos == 0 {
				limit = last
			}

			if indices[pos] >= limit {
				if pos == 0 {
					return best
				}
				indices[pos] = 0
				penalties[pos] = 0
				weights[pos] = 1
				pos--
				indices[pos]++
			} else if isUsed(indices[:pos], indices[pos]) {
				indices[pos]++
			} else {
				break
			}
		}
	}
}

// ExhaustiveSelect scores every ordered selection of six distinct candidates.
// It is far slower than Select and exists to check it.
func (s *Selector) ExhaustiveSelect(colors []lch.LCH) (Selection, error) {
	if len(colors) < SlotCount {
		return Selection{}, fmt.Errorf("%w: got %d", ErrTooFewColors, len(colors))
	}

	best := Selection{Score: math.Inf(1)}
	var indices [SlotCount]int

	var walk func(pos int)
	walk = func(pos int) {
		if pos == SlotCount {
			sel := Selection{Indices: indices}
			if score := s.scorer.Score(sel.Colors(colors)); score < best.Score {
				best = Selection{Indices: indices, Score: score}
			}
			return
		}
		for i := range colors {
			if isUsed(indices[:pos], i) {
				continue
			}
			indices[pos] = i
			walk(pos + 1)
		}
	}
	walk(0)

	return best, nil
}

func isUsed(used []int, i int) bool {
	for _, u := range used {
		if u == i {
			return true
		}
	}
	return false
}

func sum(values [SlotCount]float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}
