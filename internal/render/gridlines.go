//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// gridShaderSource draws one-pixel cell borders every Scale pixels.
var gridShaderSource = []byte(`//kage:unit pixels

package main

var Scale float
var LineColor vec4

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	p := mod(dstPos.xy, Scale)
	if p.x < 1 || p.y < 1 {
		return LineColor
	}
	return vec4(0)
}
`)

// GridLines overlays cell borders on a scaled grid.
type GridLines struct {
	shader *ebiten.Shader
	color  [4]float32
}

// NewGridLines compiles the border shader.
func NewGridLines(c color.Color) (*GridLines, error) {
	s, err := ebiten.NewShader(gridShaderSource)
	if err != nil {
		return nil, err
	}
	r, g, b, a := c.RGBA()
	return &GridLines{shader: s, color: [4]float32{
		float32(r) / 0xffff, float32(g) / 0xffff, float32(b) / 0xffff, float32(a) / 0xffff,
	}}, nil
}

// Draw covers a w×h cell area. Scales below 4 are skipped.
func (gl *GridLines) Draw(dst *ebiten.Image, w, h, scale int) {
	if scale < 4 {
		return
	}
	op := &ebiten.DrawRectShaderOptions{}
	op.Uniforms = map[string]any{
		"Scale":     float32(scale),
		"LineColor": gl.color[:],
	}
	dst.DrawRectShader(w*scale, h*scale, gl.shader, op)
}
