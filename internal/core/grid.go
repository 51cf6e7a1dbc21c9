package core

import (
	"math/rand/v2"

	"github.com/pkg/errors"
)

// ErrInvalidDimension reports a non-positive width or height at construction.
var ErrInvalidDimension = errors.New("grid dimension must be positive")

// ErrOutOfRange reports a Set call with coordinates outside grid bounds.
var ErrOutOfRange = errors.New("coordinates out of range")

// Grid stores a 2D field of alive/dead cells in row-major order. Dimensions
// are fixed at construction and never change.
type Grid struct {
	w, h  int
	cells []bool
}

// NewGrid allocates an all-dead grid with the given dimensions.
func NewGrid(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimension, "%dx%d", w, h)
	}
	return &Grid{w: w, h: h, cells: make([]bool, w*h)}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.w, H: g.h} }

// Cells exposes the backing slice so callers can read values directly.
func (g *Grid) Cells() []bool { return g.cells }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.w + x }

// Get reports whether the cell at (x, y) is alive. Coordinates outside
// [0,w)×[0,h) answer dead: the world is bounded, and every off-grid neighbor
// reads as part of an infinite dead border. This grid deliberately does not
// wrap toroidally.
func (g *Grid) Get(x, y int) bool {
	if x < 0 || x >= g.w || y < 0 || y >= g.h {
		return false
	}
	return g.cells[y*g.w+x]
}

// Set writes a cell's state. Unlike Get it is strict: Set is only ever called
// with coordinates the caller believes are on the grid, so anything outside
// bounds returns ErrOutOfRange rather than being dropped.
func (g *Grid) Set(x, y int, alive bool) error {
	if x < 0 || x >= g.w || y < 0 || y >= g.h {
		return errors.Wrapf(ErrOutOfRange, "(%d,%d) on %dx%d grid", x, y, g.w, g.h)
	}
	g.cells[y*g.w+x] = alive
	return nil
}

// Blank returns an all-dead grid with the same dimensions. Dimensions were
// validated when g was constructed, so Blank cannot fail.
func (g *Grid) Blank() *Grid {
	return &Grid{w: g.w, h: g.h, cells: make([]bool, len(g.cells))}
}

// Clone returns an independent snapshot of the grid.
func (g *Grid) Clone() *Grid {
	c := g.Blank()
	copy(c.cells, g.cells)
	return c
}

// Clear kills every cell.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = false
	}
}

// Population returns the number of alive cells.
func (g *Grid) Population() int {
	n := 0
	for _, alive := range g.cells {
		if alive {
			n++
		}
	}
	return n
}

// SeedRandom sets every cell independently alive with probability p using the
// provided source, fully overwriting the grid contents.
func (g *Grid) SeedRandom(r *rand.Rand, p float64) {
	for i := range g.cells {
		g.cells[i] = r.Float64() < p
	}
}
