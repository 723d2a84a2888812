package model

// View is a read-only handle to a grid. The engine never mutates a grid after
// handing out a View of it, so a View keeps showing the generation it was taken from.
type View struct {
	g *Grid
}

// NewView wraps g. The caller must not mutate g afterwards.
func NewView(g *Grid) View {
	return View{g: g}
}

// GetWidth returns the width of the grid
func (v View) GetWidth() int { return v.g.width }

// GetHeight returns the height of the grid
func (v View) GetHeight() int { return v.g.height }

// Get returns the state of a cell, or ErrOutOfBounds
func (v View) Get(x, y int) (bool, error) { return v.g.Get(x, y) }

// InBounds reports whether (x, y) lies inside the grid
func (v View) InBounds(x, y int) bool { return v.g.InBounds(x, y) }

// CountNeighbors counts living neighbors of an in-bounds cell
func (v View) CountNeighbors(x, y int) int { return v.g.CountNeighbors(x, y) }

// CountLivingCells returns the total number of living cells
func (v View) CountLivingCells() int { return v.g.CountLivingCells() }

// GetGridHash returns an MD5 hash of the grid state
func (v View) GetGridHash() string { return v.g.GetGridHash() }

// Rows returns a copy of the cells as rows indexed [y][x]
func (v View) Rows() [][]bool { return v.g.Rows() }

// Grid returns a mutable deep copy of the viewed grid
func (v View) Grid() *Grid { return v.g.Clone() }

// Equal reports whether both views show identical grids
func (v View) Equal(other View) bool { return v.g.Equal(other.g) }

func (v View) String() string { return v.g.String() }
