package analysis

import (
	"testing"

	"tilegen/internal/core"
)

// gridFrom builds a grid from rows of glyphs: '#' room, '.' corridor, 'g' grass.
func gridFrom(rows ...string) *core.Grid {
	g := core.NewGrid(len(rows[0]), len(rows))
	kinds := map[byte]core.TileKind{'#': core.KindRoom, '.': core.KindCorridor, 'g': core.KindGrass}
	for z, row := range rows {
		for x := 0; x < len(row); x++ {
			c, _ := g.TryGetCell(x, z)
			g.SetTile(c, kinds[row[x]], true)
		}
	}
	return g
}

func TestCount(t *testing.T) {
	g := gridFrom(
		"##g",
		"g.g",
	)
	c := Count(g)
	if c[core.KindRoom] != 2 || c[core.KindCorridor] != 1 || c[core.KindGrass] != 3 {
		t.Fatalf("unexpected census %v", c)
	}
	if c.Dominant() != core.KindGrass {
		t.Fatalf("Dominant = %v", c.Dominant())
	}
	if got := c.String(); got != "ROOM_TILE=2 CORRIDOR_TILE=1 GRASS_TILE=3" {
		t.Fatalf("String = %q", got)
	}
}

func TestRegionsAreFourConnected(t *testing.T) {
	g := gridFrom(
		"#g#",
		"g#g",
		"###",
	)
	regions := Regions(g, DungeonWalkable)
	if len(regions) != 3 {
		t.Fatalf("expected 3 regions, got %+v", regions)
	}
	if regions[0].Size != 4 || regions[1].Size != 1 || regions[2].Size != 1 {
		t.Fatalf("unexpected sizes %+v", regions)
	}
}

func TestReachableFromBlockedStart(t *testing.T) {
	g := gridFrom("g#")
	if s := Reachable(g, Point{0, 0}, DungeonWalkable); s.Size() != 0 {
		t.Fatalf("grass start reached %d cells", s.Size())
	}
	if s := Reachable(g, Point{5, 5}, DungeonWalkable); s.Size() != 0 {
		t.Fatalf("out of range start reached %d cells", s.Size())
	}
}

func TestRoomsReachable(t *testing.T) {
	g := gridFrom(
		"###ggg###",
		"###...###",
		"###ggg###",
		"ggggggggg",
		"ggggggg##",
		"ggggggg##",
	)
	rooms := []core.Rect{
		{X: 0, Y: 0, W: 3, H: 3},
		{X: 6, Y: 0, W: 3, H: 3},
		{X: 7, Y: 4, W: 2, H: 2},
	}
	if got := RoomsReachable(g, rooms); got != 2 {
		t.Fatalf("RoomsReachable = %d, want 2", got)
	}
	r := Summarize(g, rooms)
	if r.Rooms != 3 || r.RoomsReachable != 2 || r.Regions != 2 {
		t.Fatalf("unexpected report %+v", r)
	}
}
