// Package rooms holds the room bookkeeping and corridor carving shared by the
// room-based generators.
package rooms

import "tilegen/internal/core"

// List is the ordered set of rooms accepted during one generation pass.
type List struct {
	rects []core.Rect
}

// Reset drops every room.
func (l *List) Reset() { l.rects = l.rects[:0] }

// Add appends r in placement order.
func (l *List) Add(r core.Rect) { l.rects = append(l.rects, r) }

// Len returns the number of accepted rooms.
func (l *List) Len() int { return len(l.rects) }

// At returns room i.
func (l *List) At(i int) core.Rect { return l.rects[i] }

// Rects returns a copy of the rooms in placement order.
func (l *List) Rects() []core.Rect {
	out := make([]core.Rect, len(l.rects))
	copy(out, l.rects)
	return out
}

// IndexAt returns the index of the room covering (x, y), or -1.
func (l *List) IndexAt(x, y int) int {
	for i, r := range l.rects {
		if r.Contains(x, y) {
			return i
		}
	}
	return -1
}

// CanPlace reports whether r fits inside a w×length grid and keeps at least
// margin cells of clearance from every accepted room.
func (l *List) CanPlace(r core.Rect, margin, w, length int) bool {
	if !r.Within(w, length) {
		return false
	}
	grown := r.Expand(margin)
	for _, o := range l.rects {
		if grown.Overlaps(o) {
			return false
		}
	}
	return true
}

// Paint covers r with kind, overriding earlier tiles. Cells outside the grid
// are skipped.
func Paint(g *core.Grid, r core.Rect, kind core.TileKind) int {
	changed := 0
	for y := r.Y; y < r.YMax(); y++ {
		for x := r.X; x < r.XMax(); x++ {
			if c, ok := g.TryGetCell(x, y); ok && g.SetTile(c, kind, true) {
				changed++
			}
		}
	}
	return changed
}
