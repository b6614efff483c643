//go:build ebiten

package app

import (
	"image/color"
	"time"

	"tilegen/internal/core"
	"tilegen/internal/render"
	"tilegen/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a generation session to the ebiten.Game interface. Each tick
// that the pacer allows pulls exactly one step.
type Game struct {
	session *Session
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	pacer   *core.Pacer
	lines   *render.GridLines

	scale    int
	hudWidth int
	paused   bool
	tickOnce bool
	showGrid bool
}

// New constructs a Game for the provided session.
func New(s *Session, cfg *Config) *Game {
	size := s.Grid().Size()
	g := &Game{
		session:  s,
		painter:  render.NewGridPainter(size.W, size.H, nil),
		pacer:    core.NewPacer(cfg.Rate),
		scale:    cfg.Scale,
		hudWidth: cfg.HUDWidth,
	}
	if lines, err := render.NewGridLines(color.RGBA{A: 0x60}); err == nil {
		g.lines = lines
	}
	g.rebind()
	return g
}

func (g *Game) rebind() {
	g.overlay = ui.NewOverlay(g.session.Method(), g.scale)
	g.hud = ui.NewHUD(g.session.Method(), g.hudWidth, func(delta int64) {
		g.Reset(g.session.Seed() + delta)
	})
}

// Reset restarts generation with the provided seed.
func (g *Game) Reset(seed int64) {
	if err := g.session.Reset(seed); err != nil {
		return
	}
	g.tickOnce = false
	g.rebind()
}

// Update handles per-frame logic and advances generation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.session.Close()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.showGrid = !g.showGrid
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.session.Finish()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.session.Seed())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	g.overlay.Update()

	if (!g.paused && g.pacer.ShouldStep()) || g.tickOnce {
		g.session.Advance()
		g.tickOnce = false
	}

	st := g.session.Status()
	st.Paused = g.paused
	size := g.session.Grid().Size()
	g.hud.Update(size.W*g.scale, st)
	return nil
}

// Draw renders the current grid state.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	grid := g.session.Grid()
	g.painter.Blit(screen, grid, g.scale)
	g.overlay.Draw(screen, grid.Size())
	size := grid.Size()
	if g.showGrid && g.lines != nil {
		g.lines.Draw(screen, size.W, size.H, g.scale)
	}
	g.hud.Draw(screen, size.W*g.scale, size.H*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.session.Grid().Size()
	return s.W*g.scale + g.hudWidth, s.H * g.scale
}
