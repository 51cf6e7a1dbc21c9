//go:build ebiten

package app

import (
	"image/color"
	"time"

	"lifegrid/internal/core"
	"lifegrid/internal/render"
	"lifegrid/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core simulation to the ebiten.Game interface. The render loop
// runs at display rate while a fixed-step clock decides when the simulation
// advances, so the tick period is independent of the frame rate. Update runs
// to completion before ebiten calls it again, so a new generation is never
// computed while the previous one is still being installed.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD
	clock   *core.FixedStep
	stats   *Stats

	aliveColor color.Color
	deadColor  color.Color

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
	lastStep time.Time
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) *Game {
	size := sim.Size()
	return &Game{
		sim:        sim,
		painter:    render.NewGridPainter(size.W, size.H),
		hud:        ui.NewHUD(sim),
		clock:      core.NewFixedStep(cfg.TPS),
		stats:      NewStats(),
		aliveColor: render.DefaultAlive,
		deadColor:  render.DefaultDead,
		scale:      cfg.Scale,
		seed:       cfg.Seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.stats = NewStats()
	g.tickOnce = false
	g.lastStep = time.Time{}
}

// Update handles per-frame input and advances the simulation on its cadence.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	g.hud.Update()

	if (g.clock.ShouldStep() && !g.paused) || g.tickOnce {
		now := time.Now()
		if g.lastStep.IsZero() {
			g.lastStep = now
		}
		g.sim.Step()
		g.observe(now.Sub(g.lastStep))
		g.lastStep = now
		g.tickOnce = false
	}
	return nil
}

func (g *Game) observe(sinceLast time.Duration) {
	population := 0
	for _, alive := range g.sim.Cells() {
		if alive {
			population++
		}
	}
	generation := g.stats.TotalGenerations + 1
	if p, ok := g.sim.(interface{ Generation() int }); ok {
		generation = p.Generation()
	}
	g.stats.Update(generation, population, sinceLast)
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.aliveColor, g.deadColor, g.scale)
	g.hud.Draw(screen, g.stats.GenerationsPerSecond, g.paused)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H * g.scale
}
