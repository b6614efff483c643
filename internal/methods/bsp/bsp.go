// Package bsp partitions the grid into a binary tree of rectangles, places
// one room per leaf and joins sibling subtrees bottom-up.
package bsp

import (
	"context"

	"tilegen/internal/core"
	"tilegen/internal/rooms"
	random "tilegen/pkg/core"
)

// Name is the registry key for this method.
const Name = "bsp"

// Generator implements BSP room placement.
type Generator struct {
	cfg   Config
	tree  *Tree
	rooms rooms.List
	rng   *random.RNG
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

// Tree returns the partition built by the last run.
func (g *Generator) Tree() *Tree { return g.tree }

// Generate partitions grid, carves rooms and corridors, then fills the rest
// with ground. A *core.ShortfallError reports fewer rooms than MaxRooms.
func (g *Generator) Generate(ctx context.Context, grid *core.Grid, observe core.Observer) error {
	cfg := g.cfg
	if err := cfg.Validate(grid.W, grid.L); err != nil {
		return err
	}
	grid.Clear()
	g.rooms.Reset()
	g.rng = random.NewRNG(cfg.Seed)
	g.tree = newTree(core.Rect{W: grid.W, H: grid.L})

	steps := 0
	for steps < cfg.MaxSteps && g.tree.LeafCount() < cfg.MaxRooms {
		if err := ctx.Err(); err != nil {
			return err
		}
		steps++
		for _, leaf := range g.tree.Leaves() {
			if g.tree.LeafCount() >= cfg.MaxRooms {
				break
			}
			g.cut(leaf)
		}
		if err := observe.Emit(core.Step{Method: Name, Phase: core.PhasePartition, Index: steps - 1, Grid: grid}); err != nil {
			return err
		}
	}

	for _, leaf := range g.tree.Leaves() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if g.rooms.Len() >= cfg.MaxRooms {
			break
		}
		if !g.buildRoom(grid, g.tree.Nodes[leaf].Rect) {
			continue
		}
		if err := observe.Emit(core.Step{Method: Name, Phase: core.PhaseRooms, Index: g.rooms.Len() - 1, Grid: grid}); err != nil {
			return err
		}
	}

	carver := rooms.NewCarver(grid, &g.rooms)
	links := 0
	if err := g.connect(ctx, g.tree.Root(), carver, grid, observe, &links); err != nil {
		return err
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

// cut splits a leaf across its width when the coin flip asks for it and the
// leaf is wide enough, otherwise across its height. Leaves too small for the
// chosen split stay whole this round.
func (g *Generator) cut(leaf int) {
	r := g.tree.Nodes[leaf].Rect
	minW, minH := g.cfg.MinW, g.cfg.MinH
	if g.rng.Chance(g.cfg.ChanceCutHorizontal) && r.W > 2*minW {
		w := g.rng.Range(minW, r.W-minW)
		g.tree.split(leaf,
			core.Rect{X: r.X, Y: r.Y, W: w, H: r.H},
			core.Rect{X: r.X + w, Y: r.Y, W: r.W - w, H: r.H})
		return
	}
	if r.H > 2*minH {
		h := g.rng.Range(minH, r.H-minH)
		g.tree.split(leaf,
			core.Rect{X: r.X, Y: r.Y, W: r.W, H: h},
			core.Rect{X: r.X, Y: r.Y + h, W: r.W, H: r.H - h})
	}
}

func (g *Generator) buildRoom(grid *core.Grid, leaf core.Rect) bool {
	cfg := g.cfg
	x := g.rng.Range(leaf.X, leaf.XMax()-cfg.MinW)
	y := g.rng.Range(leaf.Y, leaf.YMax()-cfg.MinH)
	room := core.Rect{
		X: x,
		Y: y,
		W: g.rng.Range(cfg.MinW, min(leaf.XMax()-x, cfg.MaxW)),
		H: g.rng.Range(cfg.MinH, min(leaf.YMax()-y, cfg.MaxH)),
	}
	if !g.rooms.CanPlace(room, cfg.Margin, grid.W, grid.L) {
		return false
	}
	g.rooms.Add(room)
	rooms.Paint(grid, room, core.KindRoom)
	return true
}

// connect joins the two subtrees of node after both are joined internally.
func (g *Generator) connect(ctx context.Context, node int, carver *rooms.Carver, grid *core.Grid, observe core.Observer, links *int) error {
	if node < 0 {
		return nil
	}
	n := g.tree.Nodes[node]
	if n.Leaf() || n.Left < 0 || n.Right < 0 {
		return nil
	}
	if err := g.connect(ctx, n.Left, carver, grid, observe, links); err != nil {
		return err
	}
	if err := g.connect(ctx, n.Right, carver, grid, observe, links); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	a := g.findRoomInBranch(n.Left)
	b := g.findRoomInBranch(n.Right)
	if a < 0 || b < 0 {
		return nil
	}
	carver.Connect(a, b, g.rng.Chance(g.cfg.ChanceHorizontalCorridorFirst))
	*links++
	return observe.Emit(core.Step{Method: Name, Phase: core.PhaseCorridors, Index: *links - 1, Grid: grid})
}

// findRoomInBranch returns the index of the first room whose centre lies in a
// leaf under node, searching depth first and left child first.
func (g *Generator) findRoomInBranch(node int) int {
	n := g.tree.Nodes[node]
	if n.Leaf() {
		for i := 0; i < g.rooms.Len(); i++ {
			if n.Rect.Contains(g.rooms.At(i).Center()) {
				return i
			}
		}
		return -1
	}
	if i := g.findRoomInBranch(n.Left); i >= 0 {
		return i
	}
	return g.findRoomInBranch(n.Right)
}

func init() {
	core.Register(Name, func(cfg map[string]string) core.Method {
		return New(FromMap(cfg))
	})
}
