// Package biome classifies cells from coherent noise. The "noise" method
// splits one field into ordered bands; the "biome" method combines height,
// temperature and moisture fields.
package biome

import (
	"context"

	"tilegen/internal/core"
	"tilegen/pkg/noise"
)

// BiomeName is the registry key for the three-field classifier.
const BiomeName = "biome"

// Config configures the three biome fields.
type Config struct {
	Amplitude   float64
	Temperature noise.Config
	Moisture    noise.Config
	Height      noise.Config
}

// DefaultConfig returns the standard biome fields.
func DefaultConfig() Config {
	temp := noise.DefaultConfig()
	temp.Seed = 1234
	temp.Type = noise.TypeOpenSimplex2
	temp.Frequency = 0.02
	temp.Fractal = noise.FractalFBm
	temp.Octaves = 3
	temp.Gain = 0.5
	temp.Lacunarity = 2

	moist := noise.DefaultConfig()
	moist.Seed = 4512
	moist.Type = noise.TypeCellular
	moist.Frequency = 0.05
	moist.CellularDistance = noise.DistanceHybrid
	moist.CellularReturn = noise.ReturnCellValue
	moist.CellularJitter = 0.7

	height := noise.DefaultConfig()
	height.Seed = 9436
	height.Type = noise.TypeOpenSimplex2
	height.Frequency = 0.1
	height.Fractal = noise.FractalFBm
	height.Octaves = 4
	height.Gain = 0.5

	return Config{Amplitude: 1, Temperature: temp, Moisture: moist, Height: height}
}

// FromMap populates a Config from a string map using the "temp_", "moist_"
// and "height_" key prefixes. A plain "seed" reseeds all three fields as
// seed, seed+1 and seed+2 before the prefixed keys apply.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	var seed int64
	if core.LookupInt64(cfg, "seed", &seed) {
		c.Temperature.Seed = seed
		c.Moisture.Seed = seed + 1
		c.Height.Seed = seed + 2
	}
	core.LookupFloat(cfg, "amplitude", &c.Amplitude)
	fieldFromMap(cfg, "temp", &c.Temperature)
	fieldFromMap(cfg, "moist", &c.Moisture)
	fieldFromMap(cfg, "height", &c.Height)
	return c
}

// Validate checks every field and the amplitude.
func (c Config) Validate(_, _ int) error {
	if err := validateAmplitude(c.Amplitude); err != nil {
		return err
	}
	if err := validateField("temp", c.Temperature); err != nil {
		return err
	}
	if err := validateField("moist", c.Moisture); err != nil {
		return err
	}
	return validateField("height", c.Height)
}

// Parameters describes the current configuration.
func (c Config) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "General", Params: []core.Parameter{core.FloatParam("amplitude", "Amplitude", c.Amplitude, "Scale applied before clamping")}},
		fieldGroup("Temperature", "temp", c.Temperature),
		fieldGroup("Moisture", "moist", c.Moisture),
		fieldGroup("Height", "height", c.Height),
	}}
}

// Classify picks a biome from the three field values. Rules are checked in
// order and the first match wins.
func Classify(temp, moist, height float64) core.TileKind {
	switch {
	case height > 0.6:
		return core.KindSnow
	case temp > 0.4 && moist < -0.2:
		return core.KindDesert
	case temp > 0.4 && moist > 0.2:
		return core.KindJungle
	case temp < -0.4 && moist > 0.2:
		return core.KindTaiga
	case temp < -0.4 && moist < -0.2:
		return core.KindTundra
	case moist < -0.3:
		return core.KindSavanna
	}
	return core.KindPlains
}

// Biome paints each cell from height, temperature and moisture fields.
type Biome struct {
	cfg                 Config
	temp, moist, height field
}

// New returns a biome classifier using cfg.
func New(cfg Config) *Biome {
	return &Biome{
		cfg:    cfg,
		temp:   newField(cfg.Temperature, cfg.Amplitude),
		moist:  newField(cfg.Moisture, cfg.Amplitude),
		height: newField(cfg.Height, cfg.Amplitude),
	}
}

// Name returns the method identifier.
func (b *Biome) Name() string { return BiomeName }

// Config returns the active configuration.
func (b *Biome) Config() Config { return b.cfg }

// Parameters describes the active configuration.
func (b *Biome) Parameters() core.ParameterSnapshot { return b.cfg.Parameters() }

// Fields returns the scaled, clamped field values at (x, z).
func (b *Biome) Fields(x, z int) (temp, moist, height float64) {
	return b.temp.at(x, z), b.moist.at(x, z), b.height.at(x, z)
}

// At returns the biome for (x, z) without touching a grid.
func (b *Biome) At(x, z int) core.TileKind {
	return Classify(b.Fields(x, z))
}

// Generate classifies every cell, one row per step.
func (b *Biome) Generate(ctx context.Context, grid *core.Grid, observe core.Observer) error {
	if err := b.cfg.Validate(grid.W, grid.L); err != nil {
		return err
	}
	grid.Clear()
	for z := 0; z < grid.L; z++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		for x := 0; x < grid.W; x++ {
			c, _ := grid.TryGetCell(x, z)
			grid.SetTile(c, b.At(x, z), false)
		}
		if err := observe.Emit(core.Step{Method: BiomeName, Phase: core.PhaseClassify, Index: z, Grid: grid}); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	core.Register(BiomeName, func(cfg map[string]string) core.Method {
		return New(FromMap(cfg))
	})
}
