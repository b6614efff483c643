package biome

import (
	"tilegen/internal/core"
	"tilegen/pkg/noise"
)

// fieldFromMap overrides f with keys of the form "<prefix>_<name>".
func fieldFromMap(cfg map[string]string, prefix string, f *noise.Config) {
	key := func(name string) string { return prefix + "_" + name }
	core.LookupInt64(cfg, key("seed"), &f.Seed)
	core.LookupFloat(cfg, key("frequency"), &f.Frequency)
	core.LookupInt(cfg, key("octaves"), &f.Octaves)
	core.LookupFloat(cfg, key("lacunarity"), &f.Lacunarity)
	core.LookupFloat(cfg, key("gain"), &f.Gain)
	core.LookupFloat(cfg, key("weighted_strength"), &f.WeightedStrength)
	core.LookupFloat(cfg, key("pingpong_strength"), &f.PingPongStrength)
	core.LookupFloat(cfg, key("jitter"), &f.CellularJitter)

	var s string
	if core.LookupString(cfg, key("type"), &s) {
		if t, ok := noise.ParseType(s); ok {
			f.Type = t
		}
	}
	if core.LookupString(cfg, key("fractal"), &s) {
		if t, ok := noise.ParseFractal(s); ok {
			f.Fractal = t
		}
	}
	if core.LookupString(cfg, key("distance"), &s) {
		if t, ok := noise.ParseDistance(s); ok {
			f.CellularDistance = t
		}
	}
	if core.LookupString(cfg, key("return"), &s) {
		if t, ok := noise.ParseReturn(s); ok {
			f.CellularReturn = t
		}
	}
}

func validateField(name string, f noise.Config) error {
	switch {
	case f.Frequency <= 0:
		return core.InvalidConfigf("%s frequency %v must be positive", name, f.Frequency)
	case f.Fractal != noise.FractalNone && f.Octaves < 1:
		return core.InvalidConfigf("%s octaves %d must be at least 1", name, f.Octaves)
	case f.CellularJitter < 0 || f.CellularJitter > 1:
		return core.InvalidConfigf("%s jitter %v outside [0,1]", name, f.CellularJitter)
	}
	return nil
}

func validateAmplitude(a float64) error {
	if a < 0 || a > 2 {
		return core.InvalidConfigf("amplitude %v outside [0,2]", a)
	}
	return nil
}

func fieldGroup(name, prefix string, f noise.Config) core.ParameterGroup {
	key := func(n string) string { return prefix + "_" + n }
	params := []core.Parameter{
		core.IntParam(key("seed"), "Seed", int(f.Seed), ""),
		core.StringParam(key("type"), "Type", f.Type.String(), "opensimplex2, perlin or cellular"),
		core.FloatParam(key("frequency"), "Frequency", f.Frequency, ""),
		core.StringParam(key("fractal"), "Fractal", f.Fractal.String(), "none, fbm, ridged or pingpong"),
	}
	if f.Fractal != noise.FractalNone {
		params = append(params,
			core.IntParam(key("octaves"), "Octaves", f.Octaves, ""),
			core.FloatParam(key("lacunarity"), "Lacunarity", f.Lacunarity, ""),
			core.FloatParam(key("gain"), "Gain", f.Gain, ""),
			core.FloatParam(key("weighted_strength"), "Weighted strength", f.WeightedStrength, ""),
		)
		if f.Fractal == noise.FractalPingPong {
			params = append(params, core.FloatParam(key("pingpong_strength"), "Ping-pong strength", f.PingPongStrength, ""))
		}
	}
	if f.Type == noise.TypeCellular {
		params = append(params,
			core.StringParam(key("distance"), "Distance", f.CellularDistance.String(), ""),
			core.StringParam(key("return"), "Return", f.CellularReturn.String(), ""),
			core.FloatParam(key("jitter"), "Jitter", f.CellularJitter, ""),
		)
	}
	return core.ParameterGroup{Name: name, Params: params}
}

// field is a sampler with amplitude scaling applied before clamping.
type field struct {
	s   *noise.Sampler
	amp float64
}

func newField(cfg noise.Config, amp float64) field {
	return field{s: noise.New(cfg), amp: amp}
}

func (f field) at(x, z int) float64 {
	return noise.Clamp(f.s.GetNoise(float64(x), float64(z)) * f.amp)
}
