package life

import "lifegrid/internal/core"

// stamp writes a list of alive cells relative to an anchor, failing if any
// cell falls outside the grid.
func stamp(g *core.Grid, x, y int, cells [][2]int) error {
	for _, c := range cells {
		if err := g.Set(x+c[0], y+c[1], true); err != nil {
			return err
		}
	}
	return nil
}

// StampGlider places the classic glider with its 3x3 bounding box anchored at
// (x, y). The glider translates by (+1,+1) every four generations.
func StampGlider(g *core.Grid, x, y int) error {
	return stamp(g, x, y, [][2]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}})
}

// StampBlinker places a horizontal three-cell blinker starting at (x, y). The
// blinker oscillates with period two around its center cell (x+1, y).
func StampBlinker(g *core.Grid, x, y int) error {
	return stamp(g, x, y, [][2]int{{0, 0}, {1, 0}, {2, 0}})
}

// StampBlock places a 2x2 still-life block anchored at (x, y).
func StampBlock(g *core.Grid, x, y int) error {
	return stamp(g, x, y, [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}})
}
