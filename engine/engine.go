package engine

import (
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/life-engine/model"
	"github.com/sheikhrachel/life-engine/rules"
)

// Config controls how an Engine is built
type Config struct {
	Width  int
	Height int
	Rules  rules.Rules

	// Workers > 1 splits each generation into row stripes computed concurrently
	Workers int
	// Pool, when set, supplies the scratch grid used while seeding
	Pool *model.GridPool
}

// DefaultConfig returns a sequential engine configuration with Conway's rules
func DefaultConfig(width, height int) Config {
	return Config{
		Width:   width,
		Height:  height,
		Rules:   rules.DefaultRules(),
		Workers: 1,
	}
}

// Engine owns a bounded Life grid and advances it one generation at a time.
// Writers are serialized; readers always see a complete generation.
type Engine struct {
	width, height int
	rules         rules.Rules
	workers       int
	pool          *model.GridPool

	mu         sync.Mutex
	grid       atomic.Pointer[model.Grid]
	generation atomic.Int64
	seeded     atomic.Bool
}

// New creates an engine with an all-dead grid and Conway's rules
func New(width, height int) (*Engine, error) {
	return NewWithConfig(DefaultConfig(width, height))
}

// NewWithConfig creates an engine with an all-dead grid
func NewWithConfig(cfg Config) (*Engine, error) {
	grid, err := model.NewGrid(cfg.Width, cfg.Height)
	if err != nil {
		return nil, errors.Wrap(err, "[NewWithConfig] failed to create grid")
	}
	if err = cfg.Rules.Validate(); err != nil {
		return nil, errors.Wrap(err, "[NewWithConfig] failed to validate rules")
	}

	e := &Engine{
		width:   cfg.Width,
		height:  cfg.Height,
		rules:   cfg.Rules.Clone(),
		workers: max(1, cfg.Workers),
		pool:    cfg.Pool,
	}
	e.grid.Store(grid)
	return e, nil
}

// NewFromGrid creates a seeded engine starting from a copy of g. The
// dimensions in cfg are ignored in favour of the grid's own.
func NewFromGrid(g *model.Grid, cfg Config) (*Engine, error) {
	if g == nil {
		return nil, errors.Wrap(model.ErrInvalidDimension, "[NewFromGrid] nil grid")
	}
	cfg.Width, cfg.Height = g.GetWidth(), g.GetHeight()

	e, err := NewWithConfig(cfg)
	if err != nil {
		return nil, err
	}
	e.grid.Store(g.Clone())
	e.seeded.Store(true)
	return e, nil
}

// GetWidth returns the grid width fixed at construction
func (e *Engine) GetWidth() int { return e.width }

// GetHeight returns the grid height fixed at construction
func (e *Engine) GetHeight() int { return e.height }

// Rules returns a copy of the engine's thresholds
func (e *Engine) Rules() rules.Rules { return e.rules.Clone() }

// Generation returns the number of generations advanced since the last seed
func (e *Engine) Generation() int { return int(e.generation.Load()) }

// Seeded reports whether Seed has run or the engine was built from a grid
func (e *Engine) Seeded() bool { return e.seeded.Load() }

// CurrentGrid returns a read-only view of the latest generation
func (e *Engine) CurrentGrid() model.View {
	return model.NewView(e.grid.Load())
}

// NeighborCount counts the live in-bounds neighbors of (x, y) in g
func (e *Engine) NeighborCount(g model.View, x, y int) (int, error) {
	if !g.InBounds(x, y) {
		return 0, errors.Wrapf(model.ErrOutOfBounds, "[NeighborCount] (%d,%d) outside %dx%d",
			x, y, g.GetWidth(), g.GetHeight())
	}
	return g.CountNeighbors(x, y), nil
}

// NextCellState evaluates the engine's rules for (x, y) against g
func (e *Engine) NextCellState(g model.View, x, y int) (bool, error) {
	alive, err := g.Get(x, y)
	if err != nil {
		return false, errors.Wrap(err, "[NextCellState] failed to read cell")
	}
	return e.rules.NextState(alive, g.CountNeighbors(x, y)), nil
}

// AdvanceGeneration computes the next generation from the current grid into a
// fresh grid and publishes it in one step.
func (e *Engine) AdvanceGeneration() {
	e.mu.Lock()
	defer e.mu.Unlock()

	cur := e.grid.Load()
	next, _ := model.NewGrid(e.width, e.height)

	if e.workers > 1 {
		e.nextGenerationParallel(cur, next)
	} else {
		e.nextRows(cur, next, 0, e.height)
	}

	e.grid.Store(next)
	e.generation.Add(1)
}

// nextRows writes rows [startRow, endRow) of the generation after cur into next
func (e *Engine) nextRows(cur, next *model.Grid, startRow, endRow int) {
	for y := startRow; y < endRow; y++ {
		for x := range e.width {
			if e.rules.NextState(cur.Alive(x, y), cur.CountNeighbors(x, y)) {
				_ = next.Set(x, y, true)
			}
		}
	}
}

// nextGenerationParallel stripes rows across workers. Each worker only reads cur
// and writes its own rows of next.
func (e *Engine) nextGenerationParallel(cur, next *model.Grid) {
	var (
		eg            errgroup.Group
		numWorkers    = min(e.workers, e.height)
		rowsPerWorker = (e.height + numWorkers - 1) / numWorkers
	)

	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, e.height)
		)
		if startRow >= e.height {
			break
		}

		eg.Go(func() error {
			e.nextRows(cur, next, startRow, endRow)
			return nil
		})
	}

	_ = eg.Wait()
}

/*
Seed replaces the grid with a random initial state drawn from src.

Every cell first gets src.Bool(), row by row. A stabilization pass then kills
each live cell whose neighbor count in that random snapshot reaches the
overpopulation threshold. No other rule is applied. The generation counter
restarts at zero.
*/
func (e *Engine) Seed(src BoolSource) {
	e.mu.Lock()
	defer e.mu.Unlock()

	snapshot := e.scratchGrid()
	for y := range e.height {
		for x := range e.width {
			_ = snapshot.Set(x, y, src.Bool())
		}
	}

	stable := snapshot.Clone()
	for y := range e.height {
		for x := range e.width {
			if snapshot.Alive(x, y) && e.rules.Overcrowded(snapshot.CountNeighbors(x, y)) {
				_ = stable.Set(x, y, false)
			}
		}
	}
	e.releaseScratch(snapshot)

	e.grid.Store(stable)
	e.generation.Store(0)
	e.seeded.Store(true)
}

func (e *Engine) scratchGrid() *model.Grid {
	if e.pool != nil {
		return e.pool.Get(e.width, e.height)
	}
	g, _ := model.NewGrid(e.width, e.height)
	return g
}

func (e *Engine) releaseScratch(g *model.Grid) {
	if e.pool != nil {
		e.pool.Put(g)
	}
}
