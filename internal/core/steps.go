package core

import (
	"context"
	"errors"
	"iter"
)

var errStopped = errors.New("step consumer stopped")

// Steps runs m against g and yields every step it reports, followed by a
// final PhaseDone step carrying the run's result. Breaking out of the loop
// stops the method at its next step.
func Steps(ctx context.Context, m Method, g *Grid) iter.Seq2[Step, error] {
	return func(yield func(Step, error) bool) {
		stopped := false
		err := m.Generate(ctx, g, func(s Step) error {
			if !yield(s, nil) {
				stopped = true
				return errStopped
			}
			return nil
		})
		if stopped {
			return
		}
		yield(Step{Method: m.Name(), Phase: PhaseDone, Grid: g}, err)
	}
}

// Run generates g to completion without observing intermediate steps.
func Run(ctx context.Context, m Method, g *Grid) error {
	return m.Generate(ctx, g, nil)
}
