package rules

import (
	"slices"

	"github.com/pkg/errors"
)

// maxNeighbors is the largest neighbor count a cell can have on a bounded grid
const maxNeighbors = 8

// ErrInvalidRules is returned when a threshold can never be evaluated meaningfully
var ErrInvalidRules = errors.New("invalid rules")

// Rules holds the four thresholds evaluated by NextState
type Rules struct {
	UnderpopulationMax int   `json:"underpopulation_max"`
	SurviveSet         []int `json:"survive_set"`
	OverpopulationMin  int   `json:"overpopulation_min"`
	ReproductionCount  int   `json:"reproduction_count"`
}

// DefaultRules returns Conway's classic thresholds
func DefaultRules() Rules {
	return Rules{
		UnderpopulationMax: 1,
		SurviveSet:         []int{2, 3},
		OverpopulationMin:  4,
		ReproductionCount:  3,
	}
}

/*
NextState returns the next state of a cell given its current state and live neighbor count.

The checks are sequential overwrites applied in a fixed order: underpopulation, survival,
overpopulation, reproduction. The first three only run for a cell that started alive and the
last only for a cell that started dead. With overlapping thresholds a later check wins.
*/
func (r Rules) NextState(alive bool, neighbors int) bool {
	state := alive

	if alive && neighbors <= r.UnderpopulationMax {
		state = false
	}
	if alive && r.Survives(neighbors) {
		state = true
	}
	if alive && r.Overcrowded(neighbors) {
		state = false
	}
	if !alive && neighbors == r.ReproductionCount {
		state = true
	}

	return state
}

// Survives reports whether neighbors is in the survive set
func (r Rules) Survives(neighbors int) bool {
	return slices.Contains(r.SurviveSet, neighbors)
}

// Overcrowded reports whether a live cell with this many neighbors dies of overpopulation
func (r Rules) Overcrowded(neighbors int) bool {
	return neighbors >= r.OverpopulationMin
}

// Validate rejects negative thresholds and survive counts no cell can have
func (r Rules) Validate() error {
	if r.UnderpopulationMax < 0 {
		return errors.Wrapf(ErrInvalidRules, "[Validate] underpopulation_max must be >= 0, got %d", r.UnderpopulationMax)
	}
	if r.OverpopulationMin < 0 {
		return errors.Wrapf(ErrInvalidRules, "[Validate] overpopulation_min must be >= 0, got %d", r.OverpopulationMin)
	}
	if r.ReproductionCount < 0 {
		return errors.Wrapf(ErrInvalidRules, "[Validate] reproduction_count must be >= 0, got %d", r.ReproductionCount)
	}
	for _, n := range r.SurviveSet {
		if n < 0 || n > maxNeighbors {
			return errors.Wrapf(ErrInvalidRules, "[Validate] survive_set entry %d outside [0,%d]", n, maxNeighbors)
		}
	}
	return nil
}

// Clone returns a copy that shares no memory with r
func (r Rules) Clone() Rules {
	r.SurviveSet = slices.Clone(r.SurviveSet)
	return r
}

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}
