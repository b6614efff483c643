package noise

import "math"

// fractalBounding returns the factor that keeps a sum of n octaves with the
// given gain inside [-1, 1].
func fractalBounding(gain float64, n int) float64 {
	gain = math.Abs(gain)
	amp := gain
	total := 1.0
	for i := 1; i < n; i++ {
		total += amp
		amp *= gain
	}
	return 1 / total
}

func (s *Sampler) fbm(x, y float64) float64 {
	sum := 0.0
	amp := s.bounding
	for _, src := range s.octaves {
		n := src.eval(x, y)
		sum += n * amp
		amp *= lerp(1, math.Min(n+1, 2)*0.5, s.cfg.WeightedStrength)
		x *= s.cfg.Lacunarity
		y *= s.cfg.Lacunarity
		amp *= s.cfg.Gain
	}
	return sum
}

func (s *Sampler) ridged(x, y float64) float64 {
	sum := 0.0
	amp := s.bounding
	for _, src := range s.octaves {
		n := math.Abs(src.eval(x, y))
		sum += (n*-2 + 1) * amp
		amp *= lerp(1, 1-n, s.cfg.WeightedStrength)
		x *= s.cfg.Lacunarity
		y *= s.cfg.Lacunarity
		amp *= s.cfg.Gain
	}
	return sum
}

func (s *Sampler) pingPong(x, y float64) float64 {
	sum := 0.0
	amp := s.bounding
	for _, src := range s.octaves {
		n := pingPong((src.eval(x, y) + 1) * s.cfg.PingPongStrength)
		sum += (n - 0.5) * 2 * amp
		amp *= lerp(1, n, s.cfg.WeightedStrength)
		x *= s.cfg.Lacunarity
		y *= s.cfg.Lacunarity
		amp *= s.cfg.Gain
	}
	return sum
}

// pingPong folds t into a triangle wave over [0, 1].
func pingPong(t float64) float64 {
	t -= math.Trunc(t*0.5) * 2
	if t < 1 {
		return t
	}
	return 2 - t
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}
