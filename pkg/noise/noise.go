// Package noise samples seeded coherent 2D noise fields.
//
// A Sampler combines one base noise family (simplex, Perlin or cellular) with
// optional fractal layering. Every sample is clamped to [-1, 1] so callers can
// threshold it directly.
package noise

import (
	"math"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// Config describes one noise field.
type Config struct {
	Seed      int64
	Type      Type
	Frequency float64

	Fractal          FractalType
	Octaves          int
	Lacunarity       float64
	Gain             float64
	WeightedStrength float64
	PingPongStrength float64

	CellularDistance CellularDistance
	CellularReturn   CellularReturn
	CellularJitter   float64
}

// DefaultConfig returns the standard single-octave simplex configuration.
func DefaultConfig() Config {
	return Config{
		Seed:             1337,
		Type:             TypeOpenSimplex2,
		Frequency:        0.01,
		Fractal:          FractalNone,
		Octaves:          3,
		Lacunarity:       2,
		Gain:             0.5,
		WeightedStrength: 0,
		PingPongStrength: 2,
		CellularDistance: DistanceEuclideanSq,
		CellularReturn:   ReturnDistance,
		CellularJitter:   1,
	}
}

func (c Config) normalized() Config {
	if c.Octaves < 1 {
		c.Octaves = 1
	}
	if c.CellularJitter < 0 {
		c.CellularJitter = 0
	}
	if c.CellularJitter > 1 {
		c.CellularJitter = 1
	}
	return c
}

// source evaluates one octave of a base noise family.
type source interface {
	eval(x, y float64) float64
}

// Sampler evaluates a configured noise field. It is safe for concurrent reads.
type Sampler struct {
	cfg      Config
	octaves  []source
	bounding float64
}

// New builds a Sampler. Each fractal octave gets its own source seeded with
// Seed+i so layers are decorrelated.
func New(cfg Config) *Sampler {
	cfg = cfg.normalized()
	n := 1
	if cfg.Fractal != FractalNone {
		n = cfg.Octaves
	}
	s := &Sampler{cfg: cfg, bounding: fractalBounding(cfg.Gain, n)}
	s.octaves = make([]source, n)
	for i := range s.octaves {
		s.octaves[i] = newSource(cfg, cfg.Seed+int64(i))
	}
	return s
}

// Config returns the normalized configuration the sampler was built from.
func (s *Sampler) Config() Config { return s.cfg }

// GetNoise samples the field at (x, z). The result is always in [-1, 1].
func (s *Sampler) GetNoise(x, z float64) float64 {
	x *= s.cfg.Frequency
	z *= s.cfg.Frequency

	var v float64
	switch s.cfg.Fractal {
	case FractalFBm:
		v = s.fbm(x, z)
	case FractalRidged:
		v = s.ridged(x, z)
	case FractalPingPong:
		v = s.pingPong(x, z)
	default:
		v = s.octaves[0].eval(x, z)
	}
	return Clamp(v)
}

// Clamp limits v to [-1, 1]. NaN maps to 0.
func Clamp(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return 0
	case v < -1:
		return -1
	case v > 1:
		return 1
	}
	return v
}

func newSource(cfg Config, seed int64) source {
	switch cfg.Type {
	case TypePerlin:
		return perlinSource{p: perlin.NewPerlin(2, 2, 1, seed)}
	case TypeCellular:
		return cellularSource{
			seed:     seed,
			distance: cfg.CellularDistance,
			ret:      cfg.CellularReturn,
			jitter:   cfg.CellularJitter,
		}
	default:
		return simplexSource{n: opensimplex.New(seed)}
	}
}

type simplexSource struct {
	n opensimplex.Noise
}

func (s simplexSource) eval(x, y float64) float64 { return s.n.Eval2(x, y) }

// perlinSource stretches single-octave Perlin output, which peaks near
// ±1/sqrt(2), to the full [-1, 1] range.
type perlinSource struct {
	p *perlin.Perlin
}

func (s perlinSource) eval(x, y float64) float64 { return s.p.Noise2D(x, y) * math.Sqrt2 }
