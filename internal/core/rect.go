package core

// Rect is an axis-aligned integer rectangle covering [X, X+W) × [Y, Y+H).
// Y runs along the grid's z axis.
type Rect struct {
	X, Y, W, H int
}

// XMax returns the exclusive right edge.
func (r Rect) XMax() int { return r.X + r.W }

// YMax returns the exclusive far edge.
func (r Rect) YMax() int { return r.Y + r.H }

// Area returns W*H, or 0 for degenerate rectangles.
func (r Rect) Area() int {
	if r.Empty() {
		return 0
	}
	return r.W * r.H
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Center returns the integer centre, rounded toward the origin corner.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.XMax() && y >= r.Y && y < r.YMax()
}

// Expand grows the rectangle by m cells on every side.
func (r Rect) Expand(m int) Rect {
	return Rect{X: r.X - m, Y: r.Y - m, W: r.W + 2*m, H: r.H + 2*m}
}

// Overlaps reports whether the two rectangles share at least one cell.
func (r Rect) Overlaps(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.X < o.XMax() && o.X < r.XMax() && r.Y < o.YMax() && o.Y < r.YMax()
}

// Within reports whether the rectangle fits inside a w×l grid.
func (r Rect) Within(w, l int) bool {
	return !r.Empty() && r.X >= 0 && r.Y >= 0 && r.XMax() <= w && r.YMax() <= l
}
