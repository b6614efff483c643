package cellular

import (
	"strings"

	"tilegen/internal/core"
)

// RuleName selects the update rule.
type RuleName string

const (
	RuleThreshold RuleName = "threshold"
	RuleConway    RuleName = "conway"
)

// Config holds the automaton tunables.
type Config struct {
	Seed         int64
	MaxSteps     int
	NoiseDensity float64
	Rule         RuleName
	Threshold    int

	// SwapThreshold is the cell count above which flips exchange the primary
	// and underlay tiles instead of repainting.
	SwapThreshold int

	Alive core.TileKind
	Dead  core.TileKind
}

// DefaultConfig returns the standard automaton settings.
func DefaultConfig() Config {
	return Config{
		Seed:          1337,
		MaxSteps:      10,
		NoiseDensity:  0.5,
		Rule:          RuleThreshold,
		Threshold:     4,
		SwapThreshold: 250 * 250,
		Alive:         core.KindGrass,
		Dead:          core.KindWater,
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
	core.LookupFloat(cfg, "noise_density", &c.NoiseDensity)
	core.LookupInt(cfg, "threshold", &c.Threshold)
	core.LookupInt(cfg, "swap_threshold", &c.SwapThreshold)
	var s string
	if core.LookupString(cfg, "rule", &s) {
		c.Rule = RuleName(strings.ToLower(s))
	}
	if core.LookupString(cfg, "alive", &s) {
		if k, ok := core.ParseTileKind(s); ok {
			c.Alive = k
		}
	}
	if core.LookupString(cfg, "dead", &s) {
		if k, ok := core.ParseTileKind(s); ok {
			c.Dead = k
		}
	}
	return c
}

// Validate rejects unusable settings. Grid size does not constrain the
// automaton.
func (c Config) Validate(_, _ int) error {
	switch {
	case c.MaxSteps < 0:
		return core.InvalidConfigf("max_steps %d is negative", c.MaxSteps)
	case c.NoiseDensity < 0 || c.NoiseDensity > 1:
		return core.InvalidConfigf("noise_density %v outside [0,1]", c.NoiseDensity)
	case c.Rule != RuleThreshold && c.Rule != RuleConway:
		return core.InvalidConfigf("unknown rule %q", c.Rule)
	case c.Threshold < 0 || c.Threshold > 9:
		return core.InvalidConfigf("threshold %d outside [0,9]", c.Threshold)
	case c.SwapThreshold < 0:
		return core.InvalidConfigf("swap_threshold %d is negative", c.SwapThreshold)
	case c.Alive == core.KindNone || c.Dead == core.KindNone || c.Alive == c.Dead:
		return core.InvalidConfigf("alive and dead tiles must be distinct kinds")
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
				core.IntParam("max_steps", "Max steps", c.MaxSteps, "Evolution rounds"),
			},
		},
		{
			Name: "Automaton",
			Params: []core.Parameter{
				core.FloatParam("noise_density", "Noise density", c.NoiseDensity, "Chance a cell starts alive"),
				core.StringParam("rule", "Rule", string(c.Rule), "threshold or conway"),
				core.IntParam("threshold", "Threshold", c.Threshold, "Neighbours needed to stay or become alive"),
				core.IntParam("swap_threshold", "Swap threshold", c.SwapThreshold, "Cell count above which flips swap layers"),
				core.StringParam("alive", "Alive tile", c.Alive.String(), ""),
				core.StringParam("dead", "Dead tile", c.Dead.String(), ""),
			},
		},
	}}
}
