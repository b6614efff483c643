package core

import "testing"

func TestRangeInclusiveBounds(t *testing.T) {
	rng := NewRNG(7)
	seenMin, seenMax := false, false
	for i := 0; i < 2000; i++ {
		v := rng.Range(3, 6)
		if v < 3 || v > 6 {
			t.Fatalf("Range(3, 6) returned %d", v)
		}
		if v == 3 {
			seenMin = true
		}
		if v == 6 {
			seenMax = true
		}
	}
	if !seenMin || !seenMax {
		t.Fatalf("expected both bounds to be produced, min=%v max=%v", seenMin, seenMax)
	}
}

func TestRangeSwappedAndDegenerate(t *testing.T) {
	rng := NewRNG(1)
	if got := rng.Range(4, 4); got != 4 {
		t.Fatalf("Range(4, 4) = %d", got)
	}
	for i := 0; i < 100; i++ {
		if v := rng.Range(9, 2); v < 2 || v > 9 {
			t.Fatalf("Range(9, 2) returned %d", v)
		}
	}
}

func TestRangeFloatHalfOpen(t *testing.T) {
	rng := NewRNG(3)
	for i := 0; i < 1000; i++ {
		v := rng.RangeFloat(-1, 1)
		if v < -1 || v >= 1 {
			t.Fatalf("RangeFloat(-1, 1) returned %f", v)
		}
	}
}

func TestChanceSaturates(t *testing.T) {
	rng := NewRNG(11)
	for i := 0; i < 100; i++ {
		if rng.Chance(0) {
			t.Fatal("Chance(0) returned true")
		}
		if !rng.Chance(1) {
			t.Fatal("Chance(1) returned false")
		}
		if rng.Chance(-0.5) {
			t.Fatal("Chance(-0.5) returned true")
		}
	}
}

func TestSeedDeterminism(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)
	if a.Seed() != 42 {
		t.Fatalf("Seed() = %d, want 42", a.Seed())
	}
	for i := 0; i < 50; i++ {
		if x, y := a.Range(0, 1000), b.Range(0, 1000); x != y {
			t.Fatalf("draw %d differs: %d != %d", i, x, y)
		}
	}
}
