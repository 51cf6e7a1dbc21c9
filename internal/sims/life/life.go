package life

import (
	"strconv"

	"lifegrid/internal/core"
)

// Config holds parameters for the Life simulation.
type Config struct {
	Width   int
	Height  int
	Density float64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 256, Height: 192, Density: 0.5}
}

// FromMap populates a Config from a string map, keeping defaults for keys that
// are missing or out of range.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	return c
}

// Life implements Conway's Game of Life on a bounded grid. The sim owns the
// current generation; each Step replaces it wholesale with a freshly
// allocated successor, so a grid handed out before a Step is never mutated.
type Life struct {
	cfg Config
	cur *core.Grid
	gen int
}

// New returns a Life simulation for the provided configuration.
func New(cfg Config) (*Life, error) {
	g, err := core.NewGrid(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	return &Life{cfg: cfg, cur: g}, nil
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return l.cur.Size() }

// Cells exposes the current generation's cell values.
func (l *Life) Cells() []bool { return l.cur.Cells() }

// Grid returns the current generation.
func (l *Life) Grid() *core.Grid { return l.cur }

// Generation returns how many steps have run since the last reset.
func (l *Life) Generation() int { return l.gen }

// Population returns the number of alive cells in the current generation.
func (l *Life) Population() int { return l.cur.Population() }

// Reset randomizes the board using the provided seed at the configured
// alive density and restarts the generation counter.
func (l *Life) Reset(seed int64) {
	l.cur.SeedRandom(core.NewRNG(seed).Source(), l.cfg.Density)
	l.gen = 0
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	l.cur = Next(l.cur)
	l.gen++
}

var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// survives applies the classic B3/S23 rule.
func survives(alive bool, neighbors int) bool {
	return (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3)
}

// Next computes the next generation from current and returns it as a new
// grid of identical dimensions. It reads only from current and never mutates
// it, so calling it twice on the same grid yields identical results. Neighbor
// lookups go through Get, which answers dead for off-grid coordinates.
func Next(current *core.Grid) *core.Grid {
	next := current.Blank()
	w, h := current.Width(), current.Height()
	cells := next.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			neighbors := 0
			for _, d := range neighborOffsets {
				if current.Get(x+d[0], y+d[1]) {
					neighbors++
				}
			}
			if survives(current.Get(x, y), neighbors) {
				cells[next.Index(x, y)] = true
			}
		}
	}
	return next
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		sim, err := New(FromMap(cfg))
		if err != nil {
			return nil
		}
		return sim
	})
}
