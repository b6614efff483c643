package render

import (
	"image/color"

	"tilegen/internal/core"
)

// Palette maps tile kinds to display colours.
type Palette map[core.TileKind]color.RGBA

// Missing is drawn for kinds absent from a palette.
var Missing = color.RGBA{R: 255, G: 0, B: 255, A: 255}

// DefaultPalette returns the standard tile colours. Biome colours follow the
// debug biome map.
func DefaultPalette() Palette {
	return Palette{
		core.KindNone:     {A: 0},
		core.KindRoom:     {R: 200, G: 190, B: 170, A: 255},
		core.KindCorridor: {R: 120, G: 110, B: 100, A: 255},
		core.KindRock:     {R: 80, G: 80, B: 90, A: 255},
		core.KindSand:     {R: 230, G: 210, B: 150, A: 255},
		core.KindGrass:    {R: 70, G: 160, B: 60, A: 255},
		core.KindWater:    {R: 40, G: 90, B: 180, A: 255},
		core.KindSnow:     {R: 255, G: 255, B: 255, A: 255},
		core.KindDesert:   {R: 219, G: 204, B: 107, A: 255},
		core.KindJungle:   {R: 0, G: 102, B: 26, A: 255},
		core.KindTaiga:    {R: 128, G: 153, B: 77, A: 255},
		core.KindTundra:   {R: 153, G: 128, B: 204, A: 255},
		core.KindSavanna:  {R: 140, G: 89, B: 26, A: 255},
		core.KindPlains:   {R: 51, G: 179, B: 51, A: 255},
	}
}

// Color returns the colour for k.
func (p Palette) Color(k core.TileKind) color.RGBA {
	if c, ok := p[k]; ok {
		return c
	}
	return Missing
}

// fillKindsRGBA converts tile kinds into RGBA pixels in buf.
func fillKindsRGBA(buf []byte, kinds []core.TileKind, p Palette) {
	for i, k := range kinds {
		base := i * 4
		col := p.Color(k)
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// Ramp colours a [-1, 1] field by interpolating from Low to High.
type Ramp struct {
	Low, High color.RGBA
}

var (
	TemperatureRamp = Ramp{Low: color.RGBA{B: 255, A: 255}, High: color.RGBA{R: 255, A: 255}}
	MoistureRamp    = Ramp{Low: color.RGBA{G: 255, B: 255, A: 255}, High: color.RGBA{R: 147, G: 112, B: 219, A: 255}}
	HeightRamp      = Ramp{Low: color.RGBA{A: 255}, High: color.RGBA{R: 255, G: 255, B: 255, A: 255}}
)

// At returns the colour for a field value v in [-1, 1].
func (r Ramp) At(v float64) color.RGBA {
	t := (v + 1) / 2
	switch {
	case t < 0:
		t = 0
	case t > 1:
		t = 1
	}
	mix := func(a, b uint8) uint8 { return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5) }
	return color.RGBA{
		R: mix(r.Low.R, r.High.R),
		G: mix(r.Low.G, r.High.G),
		B: mix(r.Low.B, r.High.B),
		A: mix(r.Low.A, r.High.A),
	}
}

// fillFieldRGBA converts field samples into RGBA pixels with the given alpha.
func fillFieldRGBA(buf []byte, values []float64, r Ramp, alpha uint8) {
	for i, v := range values {
		base := i * 4
		col := r.At(v)
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = alpha
	}
}
