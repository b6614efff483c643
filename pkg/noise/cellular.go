package noise

import "math"

// cellularSource is Worley noise over a unit lattice. Each lattice cell owns
// one feature point displaced from its centre by up to jitter/2 on each axis,
// so a 3×3 neighbourhood search always finds the two nearest points.
type cellularSource struct {
	seed     int64
	distance CellularDistance
	ret      CellularReturn
	jitter   float64
}

func (c cellularSource) eval(x, y float64) float64 {
	xr := int64(math.Round(x))
	yr := int64(math.Round(y))

	d0, d1 := math.MaxFloat64, math.MaxFloat64
	var closest uint64
	for xi := xr - 1; xi <= xr+1; xi++ {
		for yi := yr - 1; yi <= yr+1; yi++ {
			h := hash2(xi, yi, c.seed)
			px := float64(xi) + (unit(uint32(h))-0.5)*c.jitter
			py := float64(yi) + (unit(uint32(h>>32))-0.5)*c.jitter
			d := c.measure(px-x, py-y)
			if d < d0 {
				d1 = d0
				d0 = d
				closest = h
			} else if d < d1 {
				d1 = d
			}
		}
	}

	switch c.ret {
	case ReturnCellValue:
		return unit(uint32(mix(closest)))*2 - 1
	case ReturnDistance2:
		return d1 - 1
	case ReturnDistance2Add:
		return (d1+d0)*0.5 - 1
	case ReturnDistance2Sub:
		return d1 - d0 - 1
	case ReturnDistance2Mul:
		return d1*d0*0.5 - 1
	case ReturnDistance2Div:
		if d1 == 0 {
			return -1
		}
		return d0/d1 - 1
	default:
		return d0 - 1
	}
}

func (c cellularSource) measure(dx, dy float64) float64 {
	switch c.distance {
	case DistanceEuclidean:
		return math.Sqrt(dx*dx + dy*dy)
	case DistanceManhattan:
		return math.Abs(dx) + math.Abs(dy)
	case DistanceHybrid:
		return dx*dx + dy*dy + math.Abs(dx) + math.Abs(dy)
	default:
		return dx*dx + dy*dy
	}
}

// hash2 is a SplitMix64-style lattice hash, stable across runs for the same inputs.
func hash2(x, y, seed int64) uint64 {
	v := uint64(x)*0x9E3779B97F4A7C15 + uint64(y)*0xC2B2AE3D27D4EB4F + uint64(seed)
	return mix(v)
}

func mix(v uint64) uint64 {
	v += 0x9E3779B97F4A7C15
	v = (v ^ (v >> 30)) * 0xBF58476D1CE4E5B9
	v = (v ^ (v >> 27)) * 0x94D049BB133111EB
	return v ^ (v >> 31)
}

func unit(v uint32) float64 {
	return float64(v) / float64(math.MaxUint32)
}
