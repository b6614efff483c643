package noise

import "strings"

// Type selects the base noise family.
type Type uint8

const (
	TypeOpenSimplex2 Type = iota
	TypePerlin
	TypeCellular
)

// FractalType selects how octaves are layered.
type FractalType uint8

const (
	FractalNone FractalType = iota
	FractalFBm
	FractalRidged
	FractalPingPong
)

// CellularDistance selects the metric used by cellular noise.
type CellularDistance uint8

const (
	DistanceEuclidean CellularDistance = iota
	DistanceEuclideanSq
	DistanceManhattan
	DistanceHybrid
)

// CellularReturn selects which cellular measurement is reported.
type CellularReturn uint8

const (
	ReturnCellValue CellularReturn = iota
	ReturnDistance
	ReturnDistance2
	ReturnDistance2Add
	ReturnDistance2Sub
	ReturnDistance2Mul
	ReturnDistance2Div
)

var (
	typeNames     = []string{"opensimplex2", "perlin", "cellular"}
	fractalNames  = []string{"none", "fbm", "ridged", "pingpong"}
	distanceNames = []string{"euclidean", "euclideansq", "manhattan", "hybrid"}
	returnNames   = []string{"cellvalue", "distance", "distance2", "distance2add", "distance2sub", "distance2mul", "distance2div"}
)

func (t Type) String() string { return nameOf(typeNames, int(t)) }
func (f FractalType) String() string { return nameOf(fractalNames, int(f)) }
func (d CellularDistance) String() string { return nameOf(distanceNames, int(d)) }
func (r CellularReturn) String() string { return nameOf(returnNames, int(r)) }

// ParseType parses a noise family name such as "opensimplex2" or "cellular".
func ParseType(s string) (Type, bool) {
	if s == "simplex" {
		return TypeOpenSimplex2, true
	}
	i, ok := indexOf(typeNames, s)
	return Type(i), ok
}

// ParseFractal parses a fractal layering name such as "fbm".
func ParseFractal(s string) (FractalType, bool) {
	i, ok := indexOf(fractalNames, s)
	return FractalType(i), ok
}

// ParseDistance parses a cellular distance function name.
func ParseDistance(s string) (CellularDistance, bool) {
	i, ok := indexOf(distanceNames, s)
	return CellularDistance(i), ok
}

// ParseReturn parses a cellular return type name.
func ParseReturn(s string) (CellularReturn, bool) {
	i, ok := indexOf(returnNames, s)
	return CellularReturn(i), ok
}

func nameOf(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return "unknown"
	}
	return names[i]
}

func indexOf(names []string, s string) (int, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range names {
		if n == s {
			return i, true
		}
	}
	return 0, false
}
