package rooms

import "tilegen/internal/core"

// Carver cuts L-shaped corridors between rooms of a List.
//
// Every swept cell falls in one of three classes. Cells inside either
// endpoint room become Wall. Cells inside any other room are routed around:
// the sweep steps perpendicular to its axis until it clears the room and
// marks the detour with Repair, back-filling the column before the first
// deflection so the path stays 4-connected. Open cells become Corridor.
type Carver struct {
	Grid  *core.Grid
	Rooms *List

	Corridor core.TileKind
	Wall     core.TileKind
	Repair   core.TileKind
}

// NewCarver returns a carver using the standard corridor, rock and sand kinds.
func NewCarver(g *core.Grid, l *List) *Carver {
	return &Carver{
		Grid:     g,
		Rooms:    l,
		Corridor: core.KindCorridor,
		Wall:     core.KindRock,
		Repair:   core.KindSand,
	}
}

type axis int

const (
	horizontal axis = iota
	vertical
)

// Connect carves a corridor from room i to room j. With horizontalFirst the
// horizontal leg runs along room i's centre row and the vertical leg along
// room j's centre column; otherwise the vertical leg runs along room i's
// centre column and the horizontal leg along room j's centre row. Both legs
// are always carved. It returns the number of cells painted.
func (c *Carver) Connect(i, j int, horizontalFirst bool) int {
	xi, yi := c.Rooms.At(i).Center()
	xj, yj := c.Rooms.At(j).Center()
	if horizontalFirst {
		return c.sweep(horizontal, yi, xi, xj, i, j) + c.sweep(vertical, xj, yi, yj, i, j)
	}
	return c.sweep(vertical, xi, yi, yj, i, j) + c.sweep(horizontal, yj, xi, xj, i, j)
}

// at maps sweep coordinate s and perpendicular coordinate p to grid x, z.
func (a axis) at(s, p int) (int, int) {
	if a == horizontal {
		return s, p
	}
	return p, s
}

// perp returns the blocking room's centre along the perpendicular axis.
func (a axis) perp(r core.Rect) int {
	x, y := r.Center()
	if a == horizontal {
		return y
	}
	return x
}

func (c *Carver) sweep(ax axis, base, from, to, i, j int) int {
	lo, hi := from, to
	if lo > hi {
		lo, hi = hi, lo
	}
	changed := 0
	detouring := false
	dir := 0
	detourP := base
	for s := lo; s <= hi; s++ {
		x, z := ax.at(s, base)
		if !c.Grid.InBounds(x, z) {
			continue
		}
		owner := c.Rooms.IndexAt(x, z)
		switch {
		case owner == i || owner == j:
			if detouring {
				changed += c.fill(ax, s, detourP, base, false)
				detouring = false
			}
			changed += c.paint(x, z, c.Wall, true)
		case owner >= 0:
			if !detouring {
				dir = -1
				if ax.perp(c.Rooms.At(owner)) > base {
					dir = 1
				}
			}
			p, used, ok := c.clear(ax, s, base, dir)
			if !ok {
				continue
			}
			dir = used
			if !detouring {
				changed += c.fill(ax, s-1, base+dir, p, true)
				detouring = true
			} else if p != detourP {
				changed += c.fill(ax, s, detourP, p, true)
			}
			px, pz := ax.at(s, p)
			changed += c.paint(px, pz, c.Repair, false)
			detourP = p
		default:
			if detouring {
				changed += c.fill(ax, s, detourP, base, true)
				detouring = false
				continue
			}
			changed += c.paint(x, z, c.Corridor, false)
		}
	}
	return changed
}

// clear walks column s away from base in dir until it leaves every room. When
// that runs off the grid the opposite direction is tried.
func (c *Carver) clear(ax axis, s, base, dir int) (int, int, bool) {
	for _, d := range [2]int{dir, -dir} {
		for p := base + d; ; p += d {
			x, z := ax.at(s, p)
			if !c.Grid.InBounds(x, z) {
				break
			}
			if c.Rooms.IndexAt(x, z) < 0 {
				return p, d, true
			}
		}
	}
	return 0, dir, false
}

// fill paints the Repair kind along column s between a and b. The end b is
// included only when inclusive is set. Cells inside rooms are left alone.
func (c *Carver) fill(ax axis, s, a, b int, inclusive bool) int {
	step := 1
	if b < a {
		step = -1
	}
	end := b
	if !inclusive {
		end = b - step
	}
	changed := 0
	for p := a; ; p += step {
		if (step > 0 && p > end) || (step < 0 && p < end) {
			break
		}
		x, z := ax.at(s, p)
		if c.Rooms.IndexAt(x, z) < 0 {
			changed += c.paint(x, z, c.Repair, false)
		}
	}
	return changed
}

func (c *Carver) paint(x, z int, kind core.TileKind, override bool) int {
	cell, ok := c.Grid.TryGetCell(x, z)
	if !ok || !c.Grid.SetTile(cell, kind, override) {
		return 0
	}
	return 1
}
