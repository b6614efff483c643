package core

import (
	"context"
	"errors"
	"testing"
)

type countingMethod struct {
	steps   int
	emitted int
}

func (m *countingMethod) Name() string { return "counting" }

func (m *countingMethod) Generate(ctx context.Context, g *Grid, observe Observer) error {
	for i := 0; i < m.steps; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		c, _ := g.TryGetCell(i%g.W, 0)
		g.SetTile(c, KindRoom, true)
		m.emitted++
		if err := observe.Emit(Step{Method: m.Name(), Phase: PhaseRooms, Index: i, Grid: g}); err != nil {
			return err
		}
	}
	return nil
}

func TestStepsYieldsEveryStepThenDone(t *testing.T) {
	m := &countingMethod{steps: 4}
	var phases []Phase
	var last error
	for s, err := range Steps(context.Background(), m, NewGrid(4, 1)) {
		phases = append(phases, s.Phase)
		last = err
	}
	if len(phases) != 5 {
		t.Fatalf("expected 5 steps, got %d", len(phases))
	}
	if phases[4] != PhaseDone || last != nil {
		t.Fatalf("final step %v err=%v", phases[4], last)
	}
}

func TestStepsStopsWhenConsumerBreaks(t *testing.T) {
	m := &countingMethod{steps: 10}
	n := 0
	for range Steps(context.Background(), m, NewGrid(4, 1)) {
		n++
		if n == 2 {
			break
		}
	}
	if m.emitted != 2 {
		t.Fatalf("method kept running after break: emitted %d", m.emitted)
	}
}

func TestStepsReportsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var final error
	for s, err := range Steps(ctx, &countingMethod{steps: 3}, NewGrid(2, 1)) {
		if s.Phase == PhaseDone {
			final = err
		}
	}
	if !errors.Is(final, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", final)
	}
	if OutcomeOf(final) != OutcomeCancelled {
		t.Fatalf("outcome = %v", OutcomeOf(final))
	}
}

func TestOutcomeOf(t *testing.T) {
	cases := []struct {
		err  error
		want Outcome
	}{
		{nil, OutcomeSuccess},
		{context.DeadlineExceeded, OutcomeCancelled},
		{&ShortfallError{Method: "rooms", Requested: 5, Placed: 3, Steps: 100}, OutcomeIncomplete},
		{InvalidConfigf("minRoomWidth %d", 0), OutcomeInvalid},
		{errors.New("boom"), OutcomeFailed},
	}
	for _, tc := range cases {
		if got := OutcomeOf(tc.err); got != tc.want {
			t.Fatalf("OutcomeOf(%v) = %v, want %v", tc.err, got, tc.want)
		}
	}
}

func TestRegistryNew(t *testing.T) {
	Register("counting-test", func(map[string]string) Method { return &countingMethod{} })
	m, err := New("counting-test", nil)
	if err != nil || m.Name() != "counting" {
		t.Fatalf("New returned %v, %v", m, err)
	}
	if _, err := New("missing-method", nil); err == nil {
		t.Fatalf("expected an error for an unknown method")
	}
}
