package biome

import (
	"context"

	"tilegen/internal/core"
	"tilegen/pkg/noise"
)

// NoiseName is the registry key for the single-field band classifier.
const NoiseName = "noise"

// bandKinds lists the six bands in evaluation order. The last band has no
// threshold and catches everything above the fifth.
var bandKinds = [6]core.TileKind{
	core.KindWater,
	core.KindSand,
	core.KindRoom,
	core.KindCorridor,
	core.KindGrass,
	core.KindRock,
}

var bandKeys = [5]string{"water_max", "sand_max", "room_max", "corridor_max", "grass_max"}

// NoiseConfig configures the single-field classifier.
type NoiseConfig struct {
	Field      noise.Config
	Amplitude  float64
	Thresholds [5]float64
}

// DefaultNoiseConfig returns the standard band layout.
func DefaultNoiseConfig() NoiseConfig {
	f := noise.DefaultConfig()
	f.Frequency = 0.05
	f.Fractal = noise.FractalFBm
	return NoiseConfig{
		Field:      f,
		Amplitude:  1,
		Thresholds: [5]float64{-0.6, -0.4, 0.0, 0.2, 0.6},
	}
}

// NoiseFromMap populates a NoiseConfig from a string map. Field keys use the
// "noise_" prefix; "seed" is accepted as an alias for "noise_seed".
func NoiseFromMap(cfg map[string]string) NoiseConfig {
	c := DefaultNoiseConfig()
	if cfg == nil {
		return c
	}
	core.LookupInt64(cfg, "seed", &c.Field.Seed)
	fieldFromMap(cfg, "noise", &c.Field)
	core.LookupFloat(cfg, "amplitude", &c.Amplitude)
	for i, k := range bandKeys {
		core.LookupFloat(cfg, k, &c.Thresholds[i])
	}
	return c
}

// Validate checks the field and that thresholds ascend within [-1, 1].
func (c NoiseConfig) Validate(_, _ int) error {
	if err := validateField("noise", c.Field); err != nil {
		return err
	}
	if err := validateAmplitude(c.Amplitude); err != nil {
		return err
	}
	prev := -1.0
	for i, t := range c.Thresholds {
		if t < prev || t > 1 {
			return core.InvalidConfigf("%s %v must lie in [%v, 1]", bandKeys[i], t, prev)
		}
		prev = t
	}
	return nil
}

// Parameters describes the current configuration.
func (c NoiseConfig) Parameters() core.ParameterSnapshot {
	bands := core.ParameterGroup{Name: "Bands", Summary: "Upper bound of each band, inclusive"}
	bands.Params = append(bands.Params, core.FloatParam("amplitude", "Amplitude", c.Amplitude, "Scale applied before clamping"))
	for i, k := range bandKeys {
		bands.Params = append(bands.Params, core.FloatParam(k, bandKinds[i].String(), c.Thresholds[i], ""))
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		fieldGroup("Noise", "noise", c.Field),
		bands,
	}}
}

// Classify maps v to the first band whose threshold is at least v.
func (c NoiseConfig) Classify(v float64) core.TileKind {
	for i, t := range c.Thresholds {
		if v <= t {
			return bandKinds[i]
		}
	}
	return bandKinds[len(bandKinds)-1]
}

// Noise paints each cell from one noise field split into six bands.
type Noise struct {
	cfg   NoiseConfig
	field field
}

// NewNoise returns a band classifier using cfg.
func NewNoise(cfg NoiseConfig) *Noise {
	return &Noise{cfg: cfg, field: newField(cfg.Field, cfg.Amplitude)}
}

// Name returns the method identifier.
func (n *Noise) Name() string { return NoiseName }

// Config returns the active configuration.
func (n *Noise) Config() NoiseConfig { return n.cfg }

// Parameters describes the active configuration.
func (n *Noise) Parameters() core.ParameterSnapshot { return n.cfg.Parameters() }

// Sample returns the scaled, clamped field value at (x, z).
func (n *Noise) Sample(x, z int) float64 { return n.field.at(x, z) }

// Generate classifies every cell, one row per step.
func (n *Noise) Generate(ctx context.Context, grid *core.Grid, observe core.Observer) error {
	if err := n.cfg.Validate(grid.W, grid.L); err != nil {
		return err
	}
	grid.Clear()
	for z := 0; z < grid.L; z++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		for x := 0; x < grid.W; x++ {
			c, _ := grid.TryGetCell(x, z)
			grid.SetTile(c, n.cfg.Classify(n.field.at(x, z)), false)
		}
		if err := observe.Emit(core.Step{Method: NoiseName, Phase: core.PhaseClassify, Index: z, Grid: grid}); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	core.Register(NoiseName, func(cfg map[string]string) core.Method {
		return NewNoise(NoiseFromMap(cfg))
	})
}
