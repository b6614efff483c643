package core

// Vec3 is a world-space position.
type Vec3 struct {
	X, Y, Z float64
}

// GridConfig controls grid dimensions and world placement.
type GridConfig struct {
	Width    int
	Length   int
	CellSize float64
	Origin   Vec3
}

// DefaultGridConfig returns the standard 64×64 grid with unit cells.
func DefaultGridConfig() GridConfig {
	return GridConfig{Width: 64, Length: 64, CellSize: 1}
}

// Tile is the occupant of a cell. Top distinguishes the primary layer from the
// underlay layer.
type Tile struct {
	Kind TileKind
	Top  bool
}

// Cell is one addressable grid position.
type Cell struct {
	X, Z int
	tile Tile
}

// Tile returns the current occupant and whether one is present.
func (c *Cell) Tile() (Tile, bool) { return c.tile, c.tile.Kind != KindNone }

// Kind returns the occupant's kind, KindNone when empty.
func (c *Cell) Kind() TileKind { return c.tile.Kind }

// Occupied reports whether the cell holds a tile.
func (c *Cell) Occupied() bool { return c.tile.Kind != KindNone }

// Clear removes the occupant.
func (c *Cell) Clear() { c.tile.Kind = KindNone }

// Grid stores W×L cells in row-major order plus a paired underlay cell per
// coordinate.
type Grid struct {
	W, L     int
	CellSize float64
	Origin   Vec3

	cells []Cell
	under []Cell
}

// NewGrid allocates a grid with the given dimensions at the origin.
func NewGrid(w, l int) *Grid {
	cfg := DefaultGridConfig()
	cfg.Width = w
	cfg.Length = l
	return NewGridWithConfig(cfg)
}

// NewGridWithConfig allocates a grid from cfg. Non-positive dimensions are
// raised to 1 and a non-positive cell size to 1.
func NewGridWithConfig(cfg GridConfig) *Grid {
	if cfg.Width <= 0 {
		cfg.Width = 1
	}
	if cfg.Length <= 0 {
		cfg.Length = 1
	}
	if cfg.CellSize <= 0 {
		cfg.CellSize = 1
	}
	total := cfg.Width * cfg.Length
	g := &Grid{
		W:        cfg.Width,
		L:        cfg.Length,
		CellSize: cfg.CellSize,
		Origin:   cfg.Origin,
		cells:    make([]Cell, total),
		under:    make([]Cell, total),
	}
	for i := 0; i < total; i++ {
		x, z := g.Coords(i)
		g.cells[i] = Cell{X: x, Z: z, tile: Tile{Top: true}}
		g.under[i] = Cell{X: x, Z: z}
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.W }

// Length returns the number of rows.
func (g *Grid) Length() int { return g.L }

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.W, H: g.L} }

// Index returns the linear slice index for coordinates (x, z).
func (g *Grid) Index(x, z int) int { return z*g.W + x }

// Coords is the inverse of Index.
func (g *Grid) Coords(i int) (int, int) { return i % g.W, i / g.W }

// InBounds reports whether (x, z) addresses a cell.
func (g *Grid) InBounds(x, z int) bool {
	return x >= 0 && x < g.W && z >= 0 && z < g.L
}

// TryGetCell returns the primary cell at (x, z), or false when out of range.
func (g *Grid) TryGetCell(x, z int) (*Cell, bool) {
	if !g.InBounds(x, z) {
		return nil, false
	}
	return &g.cells[g.Index(x, z)], true
}

// TryGetCellPair returns the primary and underlay cells at (x, z).
func (g *Grid) TryGetCellPair(x, z int) (top, under *Cell, ok bool) {
	if !g.InBounds(x, z) {
		return nil, nil, false
	}
	i := g.Index(x, z)
	return &g.cells[i], &g.under[i], true
}

// KindAt returns the primary occupant kind at (x, z).
func (g *Grid) KindAt(x, z int) (TileKind, bool) {
	c, ok := g.TryGetCell(x, z)
	if !ok {
		return KindNone, false
	}
	return c.Kind(), true
}

// SetTile paints kind onto c. An occupied cell is only repainted when
// override is set and the occupant's kind differs, so repeated paints with the
// same kind are no-ops. It reports whether the cell changed.
func (g *Grid) SetTile(c *Cell, kind TileKind, override bool) bool {
	if c == nil || kind == KindNone {
		return false
	}
	if c.Occupied() && (!override || c.tile.Kind == kind) {
		return false
	}
	c.tile.Kind = kind
	return true
}

// SetTilePair paints the primary and underlay cells at (x, z) together.
// Both writes follow SetTile's override rule.
func (g *Grid) SetTilePair(x, z int, top, under TileKind, override bool) bool {
	tc, uc, ok := g.TryGetCellPair(x, z)
	if !ok {
		return false
	}
	a := g.SetTile(tc, top, override)
	b := g.SetTile(uc, under, override)
	return a || b
}

// Swap exchanges the primary and underlay occupants at (x, z). Layer flags
// stay with their layer.
func (g *Grid) Swap(x, z int) bool {
	tc, uc, ok := g.TryGetCellPair(x, z)
	if !ok {
		return false
	}
	tc.tile.Kind, uc.tile.Kind = uc.tile.Kind, tc.tile.Kind
	return true
}

// Fill paints every primary cell and returns how many changed.
func (g *Grid) Fill(kind TileKind, override bool) int {
	changed := 0
	for i := range g.cells {
		if g.SetTile(&g.cells[i], kind, override) {
			changed++
		}
	}
	return changed
}

// Clear empties both layers.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i].Clear()
		g.under[i].Clear()
	}
}

// Kinds returns a row-major snapshot of the primary layer.
func (g *Grid) Kinds() []TileKind {
	out := make([]TileKind, len(g.cells))
	for i := range g.cells {
		out[i] = g.cells[i].tile.Kind
	}
	return out
}

// UnderlayKinds returns a row-major snapshot of the underlay layer.
func (g *Grid) UnderlayKinds() []TileKind {
	out := make([]TileKind, len(g.under))
	for i := range g.under {
		out[i] = g.under[i].tile.Kind
	}
	return out
}

// WorldPosition returns the world-space corner of cell (x, z).
func (g *Grid) WorldPosition(x, z int) Vec3 {
	return Vec3{
		X: g.Origin.X + float64(x)*g.CellSize,
		Y: g.Origin.Y,
		Z: g.Origin.Z + float64(z)*g.CellSize,
	}
}
