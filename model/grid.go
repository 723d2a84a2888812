package model

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidDimension is returned when a grid is requested with a non-positive width or height
	ErrInvalidDimension = errors.New("invalid dimension")
	// ErrOutOfBounds is returned for coordinates outside the grid rectangle
	ErrOutOfBounds = errors.New("coordinate out of bounds")
)

// Grid represents the game board. Edges are hard boundaries, nothing wraps.
type Grid struct {
	width  int
	height int
	cells  [][]bool
}

// NewGrid creates an all-dead grid with the specified dimensions
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimension, "[NewGrid] width=%d height=%d", width, height)
	}
	return newGrid(width, height), nil
}

func newGrid(width, height int) *Grid {
	cells := make([][]bool, height)
	for i := range cells {
		cells[i] = make([]bool, width)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
	}
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// InBounds reports whether (x, y) lies inside the grid
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Set sets a cell to alive (true) or dead (false)
func (g *Grid) Set(x, y int, alive bool) error {
	if !g.InBounds(x, y) {
		return errors.Wrapf(ErrOutOfBounds, "[Set] (%d,%d) outside %dx%d", x, y, g.width, g.height)
	}
	g.cells[y][x] = alive
	return nil
}

// Get returns the state of a cell
func (g *Grid) Get(x, y int) (bool, error) {
	if !g.InBounds(x, y) {
		return false, errors.Wrapf(ErrOutOfBounds, "[Get] (%d,%d) outside %dx%d", x, y, g.width, g.height)
	}
	return g.cells[y][x], nil
}

// Alive returns the state of an in-bounds cell without checking the coordinates
func (g *Grid) Alive(x, y int) bool {
	return g.cells[y][x]
}

// Clear kills every cell
func (g *Grid) Clear() {
	for y := range g.height {
		clear(g.cells[y])
	}
}

// CountNeighbors counts living neighbors of an in-bounds cell. Cells past the
// edge are not neighbors at all, so corners have at most 3 and edges at most 5.
func (g *Grid) CountNeighbors(x, y int) int {
	count := 0

	minX := max(0, x-1)
	maxX := min(g.width-1, x+1)
	minY := max(0, y-1)
	maxY := min(g.height-1, y+1)

	for ny := minY; ny <= maxY; ny++ {
		for nx := minX; nx <= maxX; nx++ {
			if nx == x && ny == y {
				continue
			}
			if g.cells[ny][nx] {
				count++
			}
		}
	}

	return count
}

// Clone returns a deep copy of the grid
func (g *Grid) Clone() *Grid {
	c := newGrid(g.width, g.height)
	c.CopyFrom(g)
	return c
}

// CopyFrom overwrites g with the cells of src. Both grids must have the same dimensions.
func (g *Grid) CopyFrom(src *Grid) {
	for y := range g.height {
		copy(g.cells[y], src.cells[y])
	}
}

// Equal reports whether both grids have the same dimensions and cells
func (g *Grid) Equal(other *Grid) bool {
	if g.width != other.width || g.height != other.height {
		return false
	}
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] != other.cells[y][x] {
				return false
			}
		}
	}
	return true
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] {
				count++
			}
		}
	}
	return
}

// GetGridHash returns an MD5 hash of the current grid state
func (g *Grid) GetGridHash() string {
	h := md5.New()
	row := make([]byte, g.width)
	for y := range g.height {
		for x := range g.width {
			row[x] = 0
			if g.cells[y][x] {
				row[x] = 1
			}
		}
		h.Write(row)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Rows returns a copy of the cells as rows indexed [y][x]
func (g *Grid) Rows() [][]bool {
	return g.Clone().cells
}

// String renders the grid as lines of '#' (alive) and '.' (dead)
func (g *Grid) String() string {
	buf := make([]byte, 0, (g.width+1)*g.height)
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] {
				buf = append(buf, '#')
			} else {
				buf = append(buf, '.')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
