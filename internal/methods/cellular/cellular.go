// Package cellular seeds a random alive/dead field and evolves it with a
// round-synchronous neighbourhood rule.
package cellular

import (
	"context"

	"tilegen/internal/core"
	random "tilegen/pkg/core"
)

// Name is the registry key for this method.
const Name = "cellular"

// Mutation is a pending state change collected during a sweep.
type Mutation struct {
	X, Z  int
	Alive bool
}

// Generator implements the cellular automaton.
type Generator struct {
	cfg    Config
	rule   Rule
	swap   bool
	rounds int
}

// New returns a Generator using cfg.
func New(cfg Config) *Generator {
	return &Generator{cfg: cfg, rule: ruleFor(cfg)}
}

// Name returns the method identifier.
func (g *Generator) Name() string { return Name }

// Config returns the active configuration.
func (g *Generator) Config() Config { return g.cfg }

// Parameters describes the active configuration.
func (g *Generator) Parameters() core.ParameterSnapshot { return g.cfg.Parameters() }

// Rounds returns how many evolution rounds changed the grid in the last run.
func (g *Generator) Rounds() int { return g.rounds }

// Generate seeds grid and evolves it for up to MaxSteps rounds, stopping
// early once a round produces no flips.
func (g *Generator) Generate(ctx context.Context, grid *core.Grid, observe core.Observer) error {
	cfg := g.cfg
	if err := cfg.Validate(grid.W, grid.L); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	g.rounds = 0
	g.swap = grid.W*grid.L > cfg.SwapThreshold
	g.seed(grid, random.NewRNG(cfg.Seed))
	if err := observe.Emit(core.Step{Method: Name, Phase: core.PhaseSeed, Grid: grid}); err != nil {
		return err
	}

	for round := 0; round < cfg.MaxSteps; round++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		muts := g.Sweep(grid)
		if len(muts) == 0 {
			break
		}
		g.Apply(grid, muts)
		g.rounds++
		if err := observe.Emit(core.Step{Method: Name, Phase: core.PhaseEvolve, Index: round, Grid: grid}); err != nil {
			return err
		}
	}
	return nil
}

func (g *Generator) seed(grid *core.Grid, rng *random.RNG) {
	grid.Clear()
	alive, dead := g.cfg.Alive, g.cfg.Dead
	for z := 0; z < grid.L; z++ {
		for x := 0; x < grid.W; x++ {
			top, under := dead, alive
			if rng.Chance(g.cfg.NoiseDensity) {
				top, under = alive, dead
			}
			if g.swap {
				grid.SetTilePair(x, z, top, under, true)
				continue
			}
			c, _ := grid.TryGetCell(x, z)
			grid.SetTile(c, top, true)
		}
	}
}

// Sweep evaluates the rule for every cell against the current grid and
// returns the flips without applying them. Neighbours outside the grid count
// as dead.
func (g *Generator) Sweep(grid *core.Grid) []Mutation {
	kinds := grid.Kinds()
	alive := g.cfg.Alive
	var muts []Mutation
	for z := 0; z < grid.L; z++ {
		for x := 0; x < grid.W; x++ {
			neighbors := 0
			for dz := -1; dz <= 1; dz++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dz == 0 {
						continue
					}
					nx, nz := x+dx, z+dz
					if !grid.InBounds(nx, nz) {
						continue
					}
					if kinds[grid.Index(nx, nz)] == alive {
						neighbors++
					}
				}
			}
			cur := kinds[grid.Index(x, z)] == alive
			if next := g.rule.Next(cur, neighbors); next != cur {
				muts = append(muts, Mutation{X: x, Z: z, Alive: next})
			}
		}
	}
	return muts
}

// Apply writes a sweep's flips. Large grids exchange layers, small grids
// repaint; both leave the same primary kinds.
func (g *Generator) Apply(grid *core.Grid, muts []Mutation) {
	for _, m := range muts {
		if g.swap {
			if top, under, ok := grid.TryGetCellPair(m.X, m.Z); ok && top.Kind() != g.kindFor(m.Alive) && under.Kind() == g.kindFor(m.Alive) {
				grid.Swap(m.X, m.Z)
				continue
			}
		}
		c, ok := grid.TryGetCell(m.X, m.Z)
		if !ok {
			continue
		}
		grid.SetTile(c, g.kindFor(m.Alive), true)
	}
}

func (g *Generator) kindFor(alive bool) core.TileKind {
	if alive {
		return g.cfg.Alive
	}
	return g.cfg.Dead
}

func init() {
	core.Register(Name, func(cfg map[string]string) core.Method {
		return New(FromMap(cfg))
	})
}
