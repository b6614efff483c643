// Package roomplacement scatters random rooms over the grid and joins them
// with L-shaped corridors in placement order.
package roomplacement

import (
	"context"

	"tilegen/internal/core"
	"tilegen/internal/rooms"
	random "tilegen/pkg/core"
)

// Name is the registry key for this method.
const Name = "rooms"

// Generator implements random room placement.
type Generator struct {
	cfg   Config
	rooms rooms.List
}

// New returns a Generator using cfg.
func New(cfg Config) *Generator {
	return &Generator{cfg: cfg}
}

// Name returns the method identifier.
func (g *Generator) Name() string { return Name }

// Config returns the active configuration.
func (g *Generator) Config() Config { return g.cfg }

// Parameters describes the active configuration.
func (g *Generator) Parameters() core.ParameterSnapshot { return g.cfg.Parameters() }

// Rooms returns the rooms accepted by the last run.
func (g *Generator) Rooms() []core.Rect { return g.rooms.Rects() }

// Generate clears grid and paints rooms, corridors and ground onto it. When
// the step budget runs out before MaxRooms rooms fit, the grid is still
// completed and a *core.ShortfallError is returned.
func (g *Generator) Generate(ctx context.Context, grid *core.Grid, observe core.Observer) error {
	cfg := g.cfg
	if err := cfg.Validate(grid.W, grid.L); err != nil {
		return err
	}
	grid.Clear()
	g.rooms.Reset()
	rng := random.NewRNG(cfg.Seed)

	steps := 0
	for steps < cfg.MaxSteps && g.rooms.Len() < cfg.MaxRooms {
		if err := ctx.Err(); err != nil {
			return err
		}
		steps++
		r := core.Rect{
			X: rng.Range(0, grid.W-cfg.MaxW),
			Y: rng.Range(0, grid.L-cfg.MaxH),
			W: rng.Range(cfg.MinW, cfg.MaxW),
			H: rng.Range(cfg.MinH, cfg.MaxH),
		}
		if !g.rooms.CanPlace(r, cfg.Margin, grid.W, grid.L) {
			continue
		}
		g.rooms.Add(r)
		rooms.Paint(grid, r, core.KindRoom)
		if err := observe.Emit(core.Step{Method: Name, Phase: core.PhaseRooms, Index: g.rooms.Len() - 1, Grid: grid}); err != nil {
			return err
		}
	}

	carver := rooms.NewCarver(grid, &g.rooms)
	for i := 0; i+1 < g.rooms.Len(); i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		carver.Connect(i, i+1, true)
		if err := observe.Emit(core.Step{Method: Name, Phase: core.PhaseCorridors, Index: i, Grid: grid}); err != nil {
			return err
		}
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	grid.Fill(cfg.Ground, false)
	if err := observe.Emit(core.Step{Method: Name, Phase: core.PhaseGround, Grid: grid}); err != nil {
		return err
	}

	if g.rooms.Len() < cfg.MaxRooms {
		return &core.ShortfallError{Method: Name, Requested: cfg.MaxRooms, Placed: g.rooms.Len(), Steps: steps}
	}
	return nil
}

func init() {
	core.Register(Name, func(cfg map[string]string) core.Method {
		return New(FromMap(cfg))
	})
}
