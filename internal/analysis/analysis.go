// Package analysis inspects finished grids: tile counts and 4-connected
// regions.
package analysis

import (
	"fmt"
	"sort"
	"strings"

	"github.com/zyedidia/generic/mapset"

	"tilegen/internal/core"
)

// Point is a grid coordinate.
type Point struct {
	X, Z int
}

// Census counts primary tiles per kind.
type Census map[core.TileKind]int

// Count tallies every primary cell of g, including empty ones.
func Count(g *core.Grid) Census {
	c := Census{}
	for _, k := range g.Kinds() {
		c[k]++
	}
	return c
}

// String lists non-zero counts ordered by kind.
func (c Census) String() string {
	kinds := make([]core.TileKind, 0, len(c))
	for k, n := range c {
		if n > 0 {
			kinds = append(kinds, k)
		}
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	parts := make([]string, len(kinds))
	for i, k := range kinds {
		parts[i] = fmt.Sprintf("%s=%d", k, c[k])
	}
	return strings.Join(parts, " ")
}

// Walkable reports whether a tile kind can be crossed.
type Walkable func(core.TileKind) bool

// DungeonWalkable treats rooms, their walls and corridors as passable.
func DungeonWalkable(k core.TileKind) bool {
	switch k {
	case core.KindRoom, core.KindRock, core.KindCorridor, core.KindSand:
		return true
	}
	return false
}

// SameKind returns a predicate matching exactly k.
func SameKind(k core.TileKind) Walkable {
	return func(o core.TileKind) bool { return o == k }
}

var offsets = [4]Point{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Reachable returns every walkable cell 4-connected to start. A start cell
// that is out of range or not walkable yields an empty set.
func Reachable(g *core.Grid, start Point, walk Walkable) mapset.Set[Point] {
	visited := mapset.New[Point]()
	if k, ok := g.KindAt(start.X, start.Z); !ok || !walk(k) {
		return visited
	}
	queue := []Point{start}
	visited.Put(start)
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range offsets {
			n := Point{cur.X + d.X, cur.Z + d.Z}
			if visited.Has(n) {
				continue
			}
			if k, ok := g.KindAt(n.X, n.Z); ok && walk(k) {
				visited.Put(n)
				queue = append(queue, n)
			}
		}
	}
	return visited
}

// Region is one 4-connected component.
type Region struct {
	Start Point
	Size  int
}

// Regions labels the walkable components of g, largest first.
func Regions(g *core.Grid, walk Walkable) []Region {
	seen := mapset.New[Point]()
	var out []Region
	for z := 0; z < g.L; z++ {
		for x := 0; x < g.W; x++ {
			p := Point{x, z}
			if seen.Has(p) {
				continue
			}
			if k, _ := g.KindAt(x, z); !walk(k) {
				continue
			}
			comp := Reachable(g, p, walk)
			comp.Each(func(q Point) { seen.Put(q) })
			out = append(out, Region{Start: p, Size: comp.Size()})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Size > out[j].Size })
	return out
}

// RoomsReachable counts rooms whose centre is reachable from the first
// room's centre over dungeon tiles.
func RoomsReachable(g *core.Grid, rooms []core.Rect) int {
	if len(rooms) == 0 {
		return 0
	}
	x, z := rooms[0].Center()
	reach := Reachable(g, Point{x, z}, DungeonWalkable)
	n := 0
	for _, r := range rooms {
		cx, cz := r.Center()
		if reach.Has(Point{cx, cz}) {
			n++
		}
	}
	return n
}

// Report summarises a finished grid.
type Report struct {
	Census         Census
	Regions        int
	Largest        int
	Rooms          int
	RoomsReachable int
}

// Summarize builds a Report. Regions are counted over dungeon tiles when rooms
// are given, otherwise over the most common kind.
func Summarize(g *core.Grid, rooms []core.Rect) Report {
	r := Report{Census: Count(g), Rooms: len(rooms)}
	walk := Walkable(DungeonWalkable)
	if len(rooms) == 0 {
		walk = SameKind(r.Census.Dominant())
	}
	regions := Regions(g, walk)
	r.Regions = len(regions)
	if len(regions) > 0 {
		r.Largest = regions[0].Size
	}
	r.RoomsReachable = RoomsReachable(g, rooms)
	return r
}

// Dominant returns the most common kind, lowest kind on ties.
func (c Census) Dominant() core.TileKind {
	best, bestN := core.KindNone, -1
	for k, n := range c {
		if n > bestN || (n == bestN && k < best) {
			best, bestN = k, n
		}
	}
	return best
}

func (r Report) String() string {
	s := fmt.Sprintf("tiles: %s\nregions: %d (largest %d)", r.Census, r.Regions, r.Largest)
	if r.Rooms > 0 {
		s += fmt.Sprintf("\nrooms: %d (%d reachable from the first)", r.Rooms, r.RoomsReachable)
	}
	return s
}
