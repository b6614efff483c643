//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"tilegen/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the parameter panel to the right of the grid view.
type HUD struct {
	method     core.Method
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot
	status     Status

	onSeed       func(delta int64)
	minusRect    image.Rectangle
	plusRect     image.Rectangle
	panelOffsetX int

	pixel *ebiten.Image
}

// NewHUD constructs a HUD for the provided method and panel width. onSeed is
// called with -1 or +1 when the seed buttons are clicked.
func NewHUD(m core.Method, width int, onSeed func(delta int64)) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{method: m, width: width, onSeed: onSeed}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	h.layoutButtons()
	return h
}

// Update refreshes the cached snapshot and handles seed button clicks.
func (h *HUD) Update(panelOffsetX int, st Status) {
	if h == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	h.status = st
	if provider, ok := h.method.(core.ParameterProvider); ok {
		h.snapshot = provider.Parameters()
	} else {
		h.snapshot = core.ParameterSnapshot{}
	}
	h.handleInput()
}

// Draw paints the HUD panel anchored to the right edge of the grid view.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawLines()
	h.drawButton(h.minusRect, "-", h.onSeed != nil)
	h.drawButton(h.plusRect, "+", h.onSeed != nil)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) handleInput() {
	if h.onSeed == nil || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	px := mx - h.panelOffsetX
	switch {
	case pointInRect(px, my, h.minusRect):
		h.onSeed(-1)
	case pointInRect(px, my, h.plusRect):
		h.onSeed(1)
	}
}

func (h *HUD) drawLines() {
	face := basicfont.Face7x13
	lines := PanelLines(h.method.Name(), h.snapshot, h.status)
	y := panelPadding + headerBaseline
	for i, line := range lines {
		col := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if i == 0 {
			col = color.RGBA{R: 200, G: 200, B: 210, A: 255}
		}
		text.Draw(h.panel, line, face, panelPadding, y, col)
		y += lineHeight
		if y > h.lastHeight {
			return
		}
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.Scale(float32(bg.R)/255, float32(bg.G)/255, float32(bg.B)/255, float32(bg.A)/255)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

// layoutButtons places the seed buttons on the seed line.
func (h *HUD) layoutButtons() {
	if h.width <= 0 {
		return
	}
	top := panelPadding + 2*lineHeight + headerBaseline - buttonSize + 4
	h.plusRect = image.Rect(h.width-panelPadding-buttonSize, top, h.width-panelPadding, top+buttonSize)
	h.minusRect = image.Rect(h.plusRect.Min.X-buttonGap-buttonSize, top, h.plusRect.Min.X-buttonGap, top+buttonSize)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

const (
	panelPadding   = 12
	lineHeight     = 16
	buttonSize     = 16
	buttonGap      = 6
	headerBaseline = 18
)
