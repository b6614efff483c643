//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"tilegen/internal/core"
)

// GridPainter keeps one RGBA image in sync with a tile grid.
type GridPainter struct {
	w, h    int
	img     *ebiten.Image
	buf     []byte
	palette Palette
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int, p Palette) *GridPainter {
	if p == nil {
		p = DefaultPalette()
	}
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h), palette: p}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads the grid's primary kinds and draws them scaled onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, g *core.Grid, scale int) {
	if g.W != gp.w || g.L != gp.h {
		return
	}
	fillKindsRGBA(gp.buf, g.Kinds(), gp.palette)
	gp.img.WritePixels(gp.buf)
	gp.draw(dst, scale)
}

// BlitField draws a [-1, 1] field sampled per cell, coloured with r.
func (gp *GridPainter) BlitField(dst *ebiten.Image, values []float64, r Ramp, alpha uint8, scale int) {
	if len(values) != gp.w*gp.h {
		return
	}
	fillFieldRGBA(gp.buf, values, r, alpha)
	gp.img.WritePixels(gp.buf)
	gp.draw(dst, scale)
}

func (gp *GridPainter) draw(dst *ebiten.Image, scale int) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
