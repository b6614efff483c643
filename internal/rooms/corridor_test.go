package rooms

import (
	"testing"

	"tilegen/internal/core"
)

type expect struct {
	x, z int
	kind core.TileKind
}

func carverFor(g *core.Grid, rects ...core.Rect) (*Carver, *List) {
	l := &List{}
	for _, r := range rects {
		l.Add(r)
		Paint(g, r, core.KindRoom)
	}
	return NewCarver(g, l), l
}

func checkKinds(t *testing.T, g *core.Grid, want []expect) {
	t.Helper()
	for _, e := range want {
		got, ok := g.KindAt(e.x, e.z)
		if !ok || got != e.kind {
			t.Fatalf("cell (%d,%d) = %v, want %v", e.x, e.z, got, e.kind)
		}
	}
}

func TestConnectStraightCorridor(t *testing.T) {
	g := core.NewGrid(16, 6)
	c, _ := carverFor(g,
		core.Rect{X: 1, Y: 1, W: 3, H: 3},
		core.Rect{X: 10, Y: 1, W: 3, H: 3},
	)
	c.Connect(0, 1, true)

	want := []expect{
		{2, 2, core.KindRock},
		{3, 2, core.KindRock},
		{1, 2, core.KindRoom},
		{10, 2, core.KindRock},
		{11, 2, core.KindRock},
		{12, 2, core.KindRoom},
	}
	for x := 4; x <= 9; x++ {
		want = append(want, expect{x, 2, core.KindCorridor})
	}
	checkKinds(t, g, want)
}

func TestConnectDeflectsAroundForeignRoom(t *testing.T) {
	g := core.NewGrid(18, 10)
	c, _ := carverFor(g,
		core.Rect{X: 0, Y: 4, W: 3, H: 3},
		core.Rect{X: 14, Y: 4, W: 3, H: 3},
		core.Rect{X: 6, Y: 3, W: 3, H: 5},
	)
	c.Connect(0, 1, true)

	want := []expect{
		{1, 5, core.KindRock},
		{2, 5, core.KindRock},
		{3, 5, core.KindCorridor},
		{5, 5, core.KindCorridor},
		// back-fill before the first deflection
		{5, 4, core.KindSand},
		{5, 3, core.KindSand},
		{5, 2, core.KindSand},
		{6, 2, core.KindSand},
		{7, 2, core.KindSand},
		{8, 2, core.KindSand},
		// return to the base row
		{9, 2, core.KindSand},
		{9, 3, core.KindSand},
		{9, 4, core.KindSand},
		{9, 5, core.KindSand},
		{10, 5, core.KindCorridor},
		{13, 5, core.KindCorridor},
		{14, 5, core.KindRock},
		{15, 5, core.KindRock},
	}
	checkKinds(t, g, want)

	for y := 3; y < 8; y++ {
		for x := 6; x < 9; x++ {
			if k, _ := g.KindAt(x, y); k != core.KindRoom {
				t.Fatalf("foreign room cell (%d,%d) became %v", x, y, k)
			}
		}
	}
}

func TestConnectDeflectsTowardFarSideOfBlocker(t *testing.T) {
	g := core.NewGrid(18, 12)
	c, _ := carverFor(g,
		core.Rect{X: 0, Y: 4, W: 3, H: 3},
		core.Rect{X: 14, Y: 4, W: 3, H: 3},
		core.Rect{X: 6, Y: 4, W: 3, H: 5},
	)
	c.Connect(0, 1, true)

	checkKinds(t, g, []expect{
		{5, 6, core.KindSand},
		{5, 9, core.KindSand},
		{7, 9, core.KindSand},
		{9, 9, core.KindSand},
		{9, 5, core.KindSand},
		{10, 5, core.KindCorridor},
	})
	if k, _ := g.KindAt(7, 3); k != core.KindNone {
		t.Fatalf("detour went the wrong way: (7,3) = %v", k)
	}
}

func TestConnectFallsBackWhenDetourLeavesGrid(t *testing.T) {
	g := core.NewGrid(18, 10)
	c, _ := carverFor(g,
		core.Rect{X: 0, Y: 4, W: 3, H: 3},
		core.Rect{X: 14, Y: 4, W: 3, H: 3},
		core.Rect{X: 6, Y: 0, W: 3, H: 7},
	)
	c.Connect(0, 1, true)

	checkKinds(t, g, []expect{
		{5, 6, core.KindSand},
		{5, 7, core.KindSand},
		{7, 7, core.KindSand},
		{9, 7, core.KindSand},
		{9, 5, core.KindSand},
	})
}

func TestConnectVerticalFirstUsesOtherCorner(t *testing.T) {
	g := core.NewGrid(12, 12)
	c, _ := carverFor(g,
		core.Rect{X: 0, Y: 0, W: 3, H: 3},
		core.Rect{X: 8, Y: 8, W: 3, H: 3},
	)
	c.Connect(0, 1, false)

	checkKinds(t, g, []expect{
		{1, 1, core.KindRock},
		{1, 5, core.KindCorridor},
		{1, 9, core.KindCorridor},
		{5, 9, core.KindCorridor},
		{9, 9, core.KindRock},
	})
	if k, _ := g.KindAt(9, 1); k != core.KindNone {
		t.Fatalf("horizontal-first corner carved: (9,1) = %v", k)
	}
}

func TestConnectStaysInsideGrid(t *testing.T) {
	g := core.NewGrid(10, 5)
	c, _ := carverFor(g,
		core.Rect{X: 0, Y: 0, W: 2, H: 2},
		core.Rect{X: 7, Y: 3, W: 2, H: 2},
		core.Rect{X: 3, Y: 0, W: 2, H: 5},
	)
	// The blocker spans the whole column range, so the sweep must skip it
	// without touching anything out of range.
	c.Connect(0, 1, true)
	if k, _ := g.KindAt(2, 1); k != core.KindCorridor {
		t.Fatalf("(2,1) = %v, want corridor", k)
	}
	if k, _ := g.KindAt(3, 1); k != core.KindRoom {
		t.Fatalf("blocker was overwritten: %v", k)
	}
}
