package cellular

import (
	"context"
	"errors"
	"slices"
	"testing"

	"tilegen/internal/core"
)

// board builds a grid with the listed cells alive and every other cell dead.
func board(w, h int, alive ...[2]int) *core.Grid {
	g := core.NewGrid(w, h)
	g.Fill(core.KindWater, true)
	for _, p := range alive {
		c, _ := g.TryGetCell(p[0], p[1])
		g.SetTile(c, core.KindGrass, true)
	}
	return g
}

func aliveSet(g *core.Grid) map[[2]int]bool {
	out := map[[2]int]bool{}
	for z := 0; z < g.L; z++ {
		for x := 0; x < g.W; x++ {
			if k, _ := g.KindAt(x, z); k == core.KindGrass {
				out[[2]int{x, z}] = true
			}
		}
	}
	return out
}

func step(gen *Generator, g *core.Grid) {
	gen.Apply(g, gen.Sweep(g))
}

func conway() *Generator {
	c := DefaultConfig()
	c.Rule = RuleConway
	return New(c)
}

func TestConwayIsolatedCellDies(t *testing.T) {
	g := board(5, 5, [2]int{2, 2})
	step(conway(), g)
	if len(aliveSet(g)) != 0 {
		t.Fatalf("isolated cell survived: %v", aliveSet(g))
	}
}

func TestConwayBlockIsStable(t *testing.T) {
	g := board(6, 6, [2]int{2, 2}, [2]int{3, 2}, [2]int{2, 3}, [2]int{3, 3})
	gen := conway()
	for i := 0; i < 5; i++ {
		if muts := gen.Sweep(g); len(muts) != 0 {
			t.Fatalf("round %d: block produced %d flips", i, len(muts))
		}
	}
}

func TestConwayBlinkerOscillation(t *testing.T) {
	g := board(5, 5, [2]int{2, 1}, [2]int{2, 2}, [2]int{2, 3})
	gen := conway()

	step(gen, g)
	want := map[[2]int]bool{{1, 2}: true, {2, 2}: true, {3, 2}: true}
	if got := aliveSet(g); !mapsEqual(got, want) {
		t.Fatalf("after first step alive=%v, expected %v", got, want)
	}

	step(gen, g)
	want = map[[2]int]bool{{2, 1}: true, {2, 2}: true, {2, 3}: true}
	if got := aliveSet(g); !mapsEqual(got, want) {
		t.Fatalf("after second step alive=%v, expected %v", got, want)
	}
}

func mapsEqual(a, b map[[2]int]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if !b[k] {
			return false
		}
	}
	return true
}

func TestThresholdRuleFlips(t *testing.T) {
	// A dead centre ringed by eight live cells comes alive; the corners only
	// see two in-grid live neighbours and die.
	var ring [][2]int
	for z := 0; z < 3; z++ {
		for x := 0; x < 3; x++ {
			if x != 1 || z != 1 {
				ring = append(ring, [2]int{x, z})
			}
		}
	}
	g := board(3, 3, ring...)
	gen := New(DefaultConfig())
	muts := gen.Sweep(g)

	got := map[[2]int]bool{}
	for _, m := range muts {
		got[[2]int{m.X, m.Z}] = m.Alive
	}
	if alive, ok := got[[2]int{1, 1}]; !ok || !alive {
		t.Fatalf("centre should come alive, got %v", muts)
	}
	for _, corner := range [][2]int{{0, 0}, {2, 0}, {0, 2}, {2, 2}} {
		if alive, ok := got[corner]; !ok || alive {
			t.Fatalf("corner %v should die, got %v", corner, muts)
		}
	}
	for _, edge := range [][2]int{{1, 0}, {0, 1}, {2, 1}, {1, 2}} {
		if _, ok := got[edge]; ok {
			t.Fatalf("edge %v has four live neighbours and should stay", edge)
		}
	}
}

func TestSweepIsRoundSynchronous(t *testing.T) {
	c := DefaultConfig()
	c.MaxSteps = 0
	gen := New(c)
	g := core.NewGrid(32, 32)
	if err := gen.Generate(context.Background(), g, nil); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	before := g.Kinds()
	first := gen.Sweep(g)
	second := gen.Sweep(g)
	if !slices.Equal(first, second) {
		t.Fatalf("two sweeps over the same grid disagree")
	}
	if !slices.Equal(before, g.Kinds()) {
		t.Fatalf("Sweep mutated the grid")
	}
	if len(first) == 0 {
		t.Fatalf("expected a random field to produce flips")
	}
}

func TestSwapAndRepaintAgree(t *testing.T) {
	for _, rule := range []RuleName{RuleThreshold, RuleConway} {
		base := DefaultConfig()
		base.Seed = 99
		base.Rule = rule
		base.MaxSteps = 6

		inPlace := base
		inPlace.SwapThreshold = 1 << 30
		swapped := base
		swapped.SwapThreshold = 0

		a, b := core.NewGrid(40, 30), core.NewGrid(40, 30)
		if err := New(inPlace).Generate(context.Background(), a, nil); err != nil {
			t.Fatalf("%s in place: %v", rule, err)
		}
		if err := New(swapped).Generate(context.Background(), b, nil); err != nil {
			t.Fatalf("%s swapped: %v", rule, err)
		}
		if !slices.Equal(a.Kinds(), b.Kinds()) {
			t.Fatalf("%s: swap strategy changed the result", rule)
		}
		for i, k := range b.UnderlayKinds() {
			top := b.Kinds()[i]
			if k == top || k == core.KindNone {
				t.Fatalf("%s: underlay %d holds %v under %v", rule, i, k, top)
			}
		}
	}
}

func TestDensityExtremes(t *testing.T) {
	cases := []struct {
		density float64
		want    core.TileKind
	}{
		{0, core.KindWater},
		{1, core.KindGrass},
	}
	for _, tc := range cases {
		c := DefaultConfig()
		c.NoiseDensity = tc.density
		c.MaxSteps = 0
		g := core.NewGrid(8, 8)
		if err := New(c).Generate(context.Background(), g, nil); err != nil {
			t.Fatalf("Generate: %v", err)
		}
		for i, k := range g.Kinds() {
			if k != tc.want {
				t.Fatalf("density %v: cell %d is %v", tc.density, i, k)
			}
		}
	}
}

func TestEvolutionStopsAtFixedPoint(t *testing.T) {
	c := DefaultConfig()
	c.NoiseDensity = 1
	c.MaxSteps = 50
	gen := New(c)
	if err := gen.Generate(context.Background(), core.NewGrid(10, 10), nil); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	// Every cell except the four corners has at least four live neighbours.
	if gen.Rounds() != 1 {
		t.Fatalf("expected one effective round, got %d", gen.Rounds())
	}
}

func TestValidateAndCancel(t *testing.T) {
	c := DefaultConfig()
	c.Rule = "hexagonal"
	if err := New(c).Generate(context.Background(), core.NewGrid(4, 4), nil); !errors.Is(err, core.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := New(DefaultConfig()).Generate(ctx, core.NewGrid(4, 4), nil); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestFromMapRule(t *testing.T) {
	c := FromMap(map[string]string{"rule": "Conway", "noise_density": "0.7", "threshold": "5"})
	if c.Rule != RuleConway || c.NoiseDensity != 0.7 || c.Threshold != 5 {
		t.Fatalf("unexpected config %+v", c)
	}
	if _, ok := ruleFor(c).(ConwayRule); !ok {
		t.Fatalf("ruleFor did not pick ConwayRule")
	}
}
