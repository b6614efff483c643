package core

import "strings"

// TileKind labels the occupant of a cell. Generators treat kinds as opaque.
type TileKind uint8

const (
	// KindNone marks an empty cell.
	KindNone TileKind = iota
	KindRoom
	KindCorridor
	KindRock
	KindSand
	KindGrass
	KindWater
	KindSnow
	KindDesert
	KindJungle
	KindTaiga
	KindTundra
	KindSavanna
	KindPlains

	kindCount
)

var kindNames = [kindCount]string{
	KindNone:     "NONE",
	KindRoom:     "ROOM_TILE",
	KindCorridor: "CORRIDOR_TILE",
	KindRock:     "ROCK_TILE",
	KindSand:     "SAND_TILE",
	KindGrass:    "GRASS_TILE",
	KindWater:    "WATER_TILE",
	KindSnow:     "SNOW_TILE",
	KindDesert:   "DESERT_TILE",
	KindJungle:   "JUNGLE_TILE",
	KindTaiga:    "TAIGA_TILE",
	KindTundra:   "TUNDRA_TILE",
	KindSavanna:  "SAVANNA_TILE",
	KindPlains:   "PLAINS_TILE",
}

// String returns the tile's lookup name, e.g. "ROOM_TILE".
func (k TileKind) String() string {
	if k >= kindCount {
		return "UNKNOWN"
	}
	return kindNames[k]
}

// ParseTileKind resolves a tile name. Both "GRASS_TILE" and "grass" are accepted.
func ParseTileKind(s string) (TileKind, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if !strings.HasSuffix(s, "_TILE") && s != "NONE" {
		s += "_TILE"
	}
	for k, name := range kindNames {
		if name == s {
			return TileKind(k), true
		}
	}
	return KindNone, false
}

// TileKinds lists every paintable kind in declaration order.
func TileKinds() []TileKind {
	out := make([]TileKind, 0, kindCount-1)
	for k := KindRoom; k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}
