// Package life implements Conway's Game of Life on a fixed 64x64 torus,
// together with the text codec used to load and display grids.
package life

import (
	"io"
	"os"

	"lifegrid/internal/core"
)

// seedDensity is the fraction of cells Reset brings to life.
const seedDensity = 0.3

// Engine owns a grid and advances it one generation at a time.
type Engine struct {
	cur, nxt   *Grid
	initial    Grid
	generation int
	cells      []uint8
}

// New returns an engine starting from a copy of g.
func New(g Grid) *Engine {
	cur := g
	return &Engine{cur: &cur, nxt: new(Grid), initial: g}
}

// Load reads and decodes the grid file at path.
func Load(path string) (*Engine, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	return parse(string(data))
}

// LoadReader decodes a grid from r. name labels the source in errors.
func LoadReader(name string, r io.Reader) (*Engine, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &IOError{Path: name, Err: err}
	}
	return parse(string(data))
}

func parse(text string) (*Engine, error) {
	g, err := Decode(text)
	if err != nil {
		return nil, err
	}
	return New(g), nil
}

// Name returns the simulation identifier.
func (e *Engine) Name() string { return "life" }

// Size returns the grid dimensions.
func (e *Engine) Size() core.Size { return core.Size{W: Cols, H: Rows} }

// Grid returns a copy of the current generation.
func (e *Engine) Grid() Grid { return *e.cur }

// Generation counts the Advance calls since the engine was created or last
// restarted.
func (e *Engine) Generation() int { return e.generation }

// Population counts the live cells of the current generation.
func (e *Engine) Population() int { return e.cur.Population() }

// Neighbors counts the live cells among the eight wrapped neighbours of
// (row, col). The result is always in [0, 8].
func (e *Engine) Neighbors(row, col int) int {
	n := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if e.cur.Alive(row+dr, col+dc) {
				n++
			}
		}
	}
	return n
}

// Advance computes the next generation. Every cell is evaluated against the
// current grid before the new one replaces it.
func (e *Engine) Advance() {
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			e.nxt[r][c] = nextState(e.cur[r][c], e.Neighbors(r, c))
		}
	}
	e.cur, e.nxt = e.nxt, e.cur
	e.generation++
}

func nextState(alive bool, neighbors int) bool {
	switch {
	case alive && (neighbors == 2 || neighbors == 3):
		// survival
		return true
	case !alive && neighbors == 3:
		// birth
		return true
	default:
		return false
	}
}

// Step advances by one generation.
func (e *Engine) Step() { e.Advance() }

// Restart puts back the grid the engine started from.
func (e *Engine) Restart() {
	*e.cur = e.initial
	e.generation = 0
}

// Reset replaces the board with a random one derived from seed and makes it
// the new restart point.
func (e *Engine) Reset(seed int64) {
	rng := core.NewRNG(seed)
	var g Grid
	for r := range g {
		for c := range g[r] {
			g[r][c] = rng.Chance(seedDensity)
		}
	}
	e.initial = g
	e.Restart()
}

// Cells exposes the current generation as row-major 0/1 values. The slice is
// reused between calls.
func (e *Engine) Cells() []uint8 {
	if e.cells == nil {
		e.cells = make([]uint8, Rows*Cols)
	}
	for r := range e.cur {
		for c, alive := range e.cur[r] {
			var v uint8
			if alive {
				v = 1
			}
			e.cells[r*Cols+c] = v
		}
	}
	return e.cells
}
