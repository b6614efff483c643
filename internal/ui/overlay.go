//go:build ebiten

package ui

import (
	"tilegen/internal/core"
	"tilegen/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// FieldProvider exposes the raw noise fields behind a biome map.
type FieldProvider interface {
	Fields(x, z int) (temp, moist, height float64)
}

type fieldKind int

const (
	fieldNone fieldKind = iota
	fieldTemperature
	fieldMoisture
	fieldHeight
)

// Overlay draws one debug noise field over the grid. Keys 1, 2 and 3 toggle
// temperature, moisture and height.
type Overlay struct {
	method  core.Method
	scale   int
	show    fieldKind
	painter *render.GridPainter

	cache      [3][]float64
	cacheW     int
	cacheH     int
	cachedFrom FieldProvider
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(m core.Method, scale int) *Overlay {
	return &Overlay{method: m, scale: scale}
}

// Update toggles the visible field.
func (o *Overlay) Update() {
	toggle := func(k fieldKind) {
		if o.show == k {
			o.show = fieldNone
			return
		}
		o.show = k
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		toggle(fieldTemperature)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		toggle(fieldMoisture)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		toggle(fieldHeight)
	}
}

// Draw renders the selected field, if the method provides one.
func (o *Overlay) Draw(screen *ebiten.Image, size core.Size) {
	if o.show == fieldNone || size.W <= 0 || size.H <= 0 {
		return
	}
	provider, ok := o.method.(FieldProvider)
	if !ok {
		return
	}
	if o.painter == nil || o.cacheW != size.W || o.cacheH != size.H || o.cachedFrom != provider {
		o.sample(provider, size)
	}
	ramps := [3]render.Ramp{render.TemperatureRamp, render.MoistureRamp, render.HeightRamp}
	i := int(o.show) - 1
	o.painter.BlitField(screen, o.cache[i], ramps[i], 200, o.scale)
}

func (o *Overlay) sample(p FieldProvider, size core.Size) {
	total := size.W * size.H
	for i := range o.cache {
		o.cache[i] = make([]float64, total)
	}
	for z := 0; z < size.H; z++ {
		for x := 0; x < size.W; x++ {
			t, m, h := p.Fields(x, z)
			idx := z*size.W + x
			o.cache[0][idx] = t
			o.cache[1][idx] = m
			o.cache[2][idx] = h
		}
	}
	o.painter = render.NewGridPainter(size.W, size.H, nil)
	o.cacheW, o.cacheH = size.W, size.H
	o.cachedFrom = p
}
