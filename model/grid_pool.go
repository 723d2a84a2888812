package model

import "sync"

// GridPool for memory efficiency. Only grids that were never published through
// a View may be returned to the pool.
type GridPool struct {
	pool sync.Pool
}

func NewGridPool() *GridPool {
	return &GridPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Grid{}
			},
		},
	}
}

// Get retrieves an all-dead grid with the given dimensions from the pool
func (p *GridPool) Get(width, height int) *Grid {
	g := p.pool.Get().(*Grid)
	g.reset(width, height)
	return g
}

// Put returns a grid to the pool, clearing its state
func (p *GridPool) Put(g *Grid) {
	if g == nil {
		return
	}
	g.Clear()
	p.pool.Put(g)
}

// reset resizes a pooled grid. Reused rows are cleared by Put.
func (g *Grid) reset(width, height int) {
	if g.width == width && g.height == height {
		return
	}
	g.width = width
	g.height = height
	g.cells = make([][]bool, height)
	for i := range g.cells {
		g.cells[i] = make([]bool, width)
	}
}
