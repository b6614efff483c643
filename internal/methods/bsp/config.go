package bsp

import (
	"tilegen/internal/core"
)

// Config holds the tunables for binary space partitioning.
type Config struct {
	Seed     int64
	MaxSteps int
	MaxRooms int
	MinW     int
	MinH     int
	MaxW     int
	MaxH     int
	Margin   int

	ChanceCutHorizontal           float64
	ChanceHorizontalCorridorFirst float64

	Ground core.TileKind
}

// DefaultConfig returns the standard partition settings.
func DefaultConfig() Config {
	return Config{
		Seed:                          1337,
		MaxSteps:                      100,
		MaxRooms:                      5,
		MinW:                          6,
		MinH:                          8,
		MaxW:                          12,
		MaxH:                          20,
		Margin:                        2,
		ChanceCutHorizontal:           0.5,
		ChanceHorizontalCorridorFirst: 0.5,
		Ground:                        core.KindGrass,
	}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	core.LookupInt64(cfg, "seed", &c.Seed)
	core.LookupInt(cfg, "max_steps", &c.MaxSteps)
	core.LookupInt(cfg, "max_rooms", &c.MaxRooms)
	core.LookupInt(cfg, "min_w", &c.MinW)
	core.LookupInt(cfg, "min_h", &c.MinH)
	core.LookupInt(cfg, "max_w", &c.MaxW)
	core.LookupInt(cfg, "max_h", &c.MaxH)
	core.LookupInt(cfg, "margin", &c.Margin)
	core.LookupFloat(cfg, "chance_cut_horizontal", &c.ChanceCutHorizontal)
	core.LookupFloat(cfg, "chance_horizontal_corridor_first", &c.ChanceHorizontalCorridorFirst)
	var ground string
	if core.LookupString(cfg, "ground", &ground) {
		if k, ok := core.ParseTileKind(ground); ok && k != core.KindNone {
			c.Ground = k
		}
	}
	return c
}

// Validate rejects settings that cannot produce a partition on a w×l grid.
func (c Config) Validate(w, l int) error {
	switch {
	case c.MaxSteps < 0:
		return core.InvalidConfigf("max_steps %d is negative", c.MaxSteps)
	case c.MaxRooms < 0:
		return core.InvalidConfigf("max_rooms %d is negative", c.MaxRooms)
	case c.Margin < 0:
		return core.InvalidConfigf("margin %d is negative", c.Margin)
	case c.ChanceCutHorizontal < 0 || c.ChanceCutHorizontal > 1:
		return core.InvalidConfigf("chance_cut_horizontal %v outside [0,1]", c.ChanceCutHorizontal)
	case c.ChanceHorizontalCorridorFirst < 0 || c.ChanceHorizontalCorridorFirst > 1:
		return core.InvalidConfigf("chance_horizontal_corridor_first %v outside [0,1]", c.ChanceHorizontalCorridorFirst)
	case c.Ground == core.KindNone:
		return core.InvalidConfigf("ground tile must be set")
	}
	if c.MaxRooms == 0 {
		return nil
	}
	switch {
	case c.MinW < 1 || c.MinH < 1:
		return core.InvalidConfigf("minimum room size %dx%d must be at least 1x1", c.MinW, c.MinH)
	case c.MinW > c.MaxW || c.MinH > c.MaxH:
		return core.InvalidConfigf("minimum room size %dx%d exceeds maximum %dx%d", c.MinW, c.MinH, c.MaxW, c.MaxH)
	case c.MinW > w || c.MinH > l:
		return core.InvalidConfigf("minimum room size %dx%d does not fit a %dx%d grid", c.MinW, c.MinH, w, l)
	}
	return nil
}

// Parameters describes the current configuration.
func (c Config) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Run",
			Params: []core.Parameter{
				core.IntParam("seed", "Seed", int(c.Seed), "RNG seed"),
				core.IntParam("max_steps", "Max steps", c.MaxSteps, "Partition rounds"),
			},
		},
		{
			Name: "Partition",
			Params: []core.Parameter{
				core.IntParam("max_rooms", "Max rooms", c.MaxRooms, "Target leaf count"),
				core.FloatParam("chance_cut_horizontal", "Cut across width", c.ChanceCutHorizontal, ""),
				core.FloatParam("chance_horizontal_corridor_first", "Horizontal corridor first", c.ChanceHorizontalCorridorFirst, ""),
			},
		},
		{
			Name: "Rooms",
			Params: []core.Parameter{
				core.IntParam("min_w", "Min width", c.MinW, ""),
				core.IntParam("min_h", "Min height", c.MinH, ""),
				core.IntParam("max_w", "Max width", c.MaxW, ""),
				core.IntParam("max_h", "Max height", c.MaxH, ""),
				core.IntParam("margin", "Margin", c.Margin, ""),
				core.StringParam("ground", "Ground tile", c.Ground.String(), ""),
			},
		},
	}}
}
