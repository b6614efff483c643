package render

import (
	"bufio"
	"io"
	"strings"

	"tilegen/internal/core"
)

var glyphs = map[core.TileKind]byte{
	core.KindNone:     ' ',
	core.KindRoom:     '#',
	core.KindCorridor: '.',
	core.KindRock:     'X',
	core.KindSand:     ':',
	core.KindGrass:    '"',
	core.KindWater:    '~',
	core.KindSnow:     '*',
	core.KindDesert:   'd',
	core.KindJungle:   'J',
	core.KindTaiga:    't',
	core.KindTundra:   'u',
	core.KindSavanna:  's',
	core.KindPlains:   'p',
}

// Glyph returns the single-character symbol for k.
func Glyph(k core.TileKind) byte {
	if b, ok := glyphs[k]; ok {
		return b
	}
	return '?'
}

// WriteASCII prints g one row per line, z increasing downwards.
func WriteASCII(w io.Writer, g *core.Grid) error {
	bw := bufio.NewWriter(w)
	kinds := g.Kinds()
	for z := 0; z < g.L; z++ {
		row := kinds[z*g.W : (z+1)*g.W]
		for _, k := range row {
			if err := bw.WriteByte(Glyph(k)); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ASCII renders g to a string.
func ASCII(g *core.Grid) string {
	var b strings.Builder
	_ = WriteASCII(&b, g)
	return b.String()
}

// Legend lists the glyph for every kind present in g.
func Legend(g *core.Grid) string {
	seen := map[core.TileKind]bool{}
	for _, k := range g.Kinds() {
		seen[k] = true
	}
	var parts []string
	for _, k := range append([]core.TileKind{core.KindNone}, core.TileKinds()...) {
		if seen[k] {
			parts = append(parts, string(Glyph(k))+" "+k.String())
		}
	}
	return strings.Join(parts, "  ")
}
