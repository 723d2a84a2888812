package model

import (
	"sort"

	"github.com/pkg/errors"
)

// ErrUnknownPattern is returned by PatternByName for names with no pattern
var ErrUnknownPattern = errors.New("unknown pattern")

// Pattern is a small block of cells indexed [y][x]
type Pattern [][]bool

// Glider moves one cell diagonally towards +x,+y every four generations
var Glider = Pattern{
	{false, true, false},
	{false, false, true},
	{true, true, true},
}

// Blinker oscillates between horizontal and vertical with period 2
var Blinker = Pattern{
	{true, true, true},
}

// Block is a still life
var Block = Pattern{
	{true, true},
	{true, true},
}

var patterns = map[string]Pattern{
	"glider":  Glider,
	"blinker": Blinker,
	"block":   Block,
}

// PatternByName looks up a built-in pattern
func PatternByName(name string) (Pattern, error) {
	p, ok := patterns[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownPattern, "[PatternByName] %q, known: %v", name, PatternNames())
	}
	return p, nil
}

// PatternNames lists the built-in pattern names in sorted order
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Width returns the widest row of the pattern
func (p Pattern) Width() (w int) {
	for _, row := range p {
		w = max(w, len(row))
	}
	return
}

// Height returns the number of rows in the pattern
func (p Pattern) Height() int {
	return len(p)
}

// Stamp writes the pattern with its top-left corner at (startX, startY). Nothing
// is written when any part of the pattern falls outside the grid.
func (g *Grid) Stamp(p Pattern, startX, startY int) error {
	if p.Height() == 0 {
		return nil
	}
	if !g.InBounds(startX, startY) || !g.InBounds(startX+p.Width()-1, startY+p.Height()-1) {
		return errors.Wrapf(ErrOutOfBounds, "[Stamp] %dx%d pattern at (%d,%d) outside %dx%d",
			p.Width(), p.Height(), startX, startY, g.width, g.height)
	}

	for y, row := range p {
		for x, cell := range row {
			g.cells[startY+y][startX+x] = cell
		}
	}
	return nil
}
