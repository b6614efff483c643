package bsp

import (
	"context"
	"errors"
	"slices"
	"testing"

	"tilegen/internal/core"
	"tilegen/internal/rooms"
)

func denseConfig(seed int64) Config {
	c := DefaultConfig()
	c.Seed = seed
	c.MaxRooms = 8
	return c
}

func TestLeavesTileTheRoot(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		grid := core.NewGrid(64, 64)
		gen := New(denseConfig(seed))
		err := gen.Generate(context.Background(), grid, nil)
		if core.OutcomeOf(err) != core.OutcomeSuccess && core.OutcomeOf(err) != core.OutcomeIncomplete {
			t.Fatalf("seed %d: %v", seed, err)
		}
		tree := gen.Tree()
		if tree.Nodes[tree.Root()].Rect != (core.Rect{W: 64, H: 64}) {
			t.Fatalf("seed %d: root %+v", seed, tree.Nodes[0].Rect)
		}
		if tree.LeafCount() > 8 {
			t.Fatalf("seed %d: %d leaves exceeds max_rooms", seed, tree.LeafCount())
		}
		cover := make([]int, 64*64)
		for _, leaf := range tree.Leaves() {
			r := tree.Nodes[leaf].Rect
			if r.W < gen.cfg.MinW || r.H < gen.cfg.MinH {
				t.Fatalf("seed %d: leaf %+v below minimum size", seed, r)
			}
			for y := r.Y; y < r.YMax(); y++ {
				for x := r.X; x < r.XMax(); x++ {
					cover[y*64+x]++
				}
			}
		}
		for i, n := range cover {
			if n != 1 {
				t.Fatalf("seed %d: cell %d covered by %d leaves", seed, i, n)
			}
		}
	}
}

func TestRoomsRespectLeavesAndMargin(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		grid := core.NewGrid(64, 64)
		gen := New(denseConfig(seed))
		_ = gen.Generate(context.Background(), grid, nil)
		tree := gen.Tree()
		rects := gen.Rooms()
		if len(rects) > 8 {
			t.Fatalf("seed %d: %d rooms", seed, len(rects))
		}
		for i, room := range rects {
			inside := false
			for _, leaf := range tree.Leaves() {
				lr := tree.Nodes[leaf].Rect
				if room.X >= lr.X && room.Y >= lr.Y && room.XMax() <= lr.XMax() && room.YMax() <= lr.YMax() {
					inside = true
				}
			}
			if !inside {
				t.Fatalf("seed %d: room %+v escapes its leaf", seed, room)
			}
			for j, other := range rects {
				if i != j && room.Expand(2).Overlaps(other) {
					t.Fatalf("seed %d: rooms %d and %d violate the margin", seed, i, j)
				}
			}
		}
		if slices.Contains(grid.Kinds(), core.KindNone) {
			t.Fatalf("seed %d: grid left partially painted", seed)
		}
	}
}

func TestOneCorridorPerMergedPair(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		gen := New(denseConfig(seed))
		corridors := 0
		for s := range core.Steps(context.Background(), gen, core.NewGrid(64, 64)) {
			if s.Phase == core.PhaseCorridors {
				corridors++
			}
		}
		n := len(gen.Rooms())
		if n > 0 && corridors != n-1 {
			t.Fatalf("seed %d: %d rooms joined by %d corridors", seed, n, corridors)
		}
	}
}

func TestZeroRoomsPaintsOnlyGround(t *testing.T) {
	c := DefaultConfig()
	c.MaxRooms = 0
	grid := core.NewGrid(32, 32)
	gen := New(c)
	if err := gen.Generate(context.Background(), grid, nil); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(gen.Rooms()) != 0 || len(gen.Tree().Nodes) != 1 {
		t.Fatalf("expected a bare root and no rooms")
	}
	for i, k := range grid.Kinds() {
		if k != core.KindGrass {
			t.Fatalf("cell %d is %v", i, k)
		}
	}
}

func TestFindRoomInBranchPrefersLeftChild(t *testing.T) {
	gen := New(DefaultConfig())
	gen.tree = newTree(core.Rect{W: 20, H: 10})
	gen.tree.split(0, core.Rect{W: 10, H: 10}, core.Rect{X: 10, W: 10, H: 10})
	gen.rooms = rooms.List{}
	gen.rooms.Add(core.Rect{X: 12, Y: 2, W: 4, H: 4})
	gen.rooms.Add(core.Rect{X: 2, Y: 2, W: 4, H: 4})

	if got := gen.findRoomInBranch(0); got != 1 {
		t.Fatalf("findRoomInBranch(root) = %d, want 1", got)
	}
	if got := gen.findRoomInBranch(2); got != 0 {
		t.Fatalf("findRoomInBranch(right) = %d, want 0", got)
	}
}

func TestValidateRejectsBadChances(t *testing.T) {
	c := DefaultConfig()
	c.ChanceCutHorizontal = 1.5
	err := New(c).Generate(context.Background(), core.NewGrid(64, 64), nil)
	if !errors.Is(err, core.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestSameSeedSameGrid(t *testing.T) {
	a, b := core.NewGrid(64, 64), core.NewGrid(64, 64)
	_ = New(denseConfig(3)).Generate(context.Background(), a, nil)
	_ = New(denseConfig(3)).Generate(context.Background(), b, nil)
	if !slices.Equal(a.Kinds(), b.Kinds()) {
		t.Fatalf("equal seeds produced different grids")
	}
}
