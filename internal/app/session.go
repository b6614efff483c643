package app

import (
	"context"
	"iter"
	"maps"
	"strconv"

	"tilegen/internal/core"
	"tilegen/internal/ui"
)

// Session drives one method over one grid a step at a time. Reset restarts
// the run; the previous run is stopped between steps.
type Session struct {
	name      string
	overrides map[string]string
	grid      *core.Grid

	method core.Method
	seed   int64
	next   func() (core.Step, error, bool)
	stop   func()
	cancel context.CancelFunc
	done   bool
	status ui.Status
}

// NewSession validates the method name and starts a run with seed.
func NewSession(name string, overrides map[string]string, w, l int, seed int64) (*Session, error) {
	s := &Session{name: name, overrides: overrides, grid: core.NewGrid(w, l)}
	if err := s.Reset(seed); err != nil {
		return nil, err
	}
	return s, nil
}

// Reset rebuilds the method with seed and restarts generation.
func (s *Session) Reset(seed int64) error {
	cfg := maps.Clone(s.overrides)
	if cfg == nil {
		cfg = map[string]string{}
	}
	cfg["seed"] = strconv.FormatInt(seed, 10)
	m, err := core.New(s.name, cfg)
	if err != nil {
		return err
	}
	s.Close()
	ctx, cancel := context.WithCancel(context.Background())
	s.method = m
	s.seed = seed
	s.cancel = cancel
	s.next, s.stop = iter.Pull2(core.Steps(ctx, m, s.grid))
	s.done = false
	s.status = ui.Status{Seed: seed}
	return nil
}

// Advance pulls one step. It returns false once the run has finished.
func (s *Session) Advance() bool {
	if s.done || s.next == nil {
		return false
	}
	step, err, ok := s.next()
	if !ok {
		s.done = true
		return false
	}
	s.status.Steps++
	s.status.Phase = step.Phase
	s.status.Index = step.Index
	if step.Phase == core.PhaseDone {
		s.status.Outcome = core.OutcomeOf(err)
		s.status.Err = err
		s.done = true
		s.stop()
		return false
	}
	return true
}

// Finish runs the remaining steps.
func (s *Session) Finish() {
	for s.Advance() {
	}
}

// Close stops the current run.
func (s *Session) Close() {
	if s.stop != nil {
		s.stop()
	}
	if s.cancel != nil {
		s.cancel()
	}
}

// Done reports whether the run has finished.
func (s *Session) Done() bool { return s.done }

// Grid returns the grid being generated.
func (s *Session) Grid() *core.Grid { return s.grid }

// Method returns the active method.
func (s *Session) Method() core.Method { return s.method }

// Seed returns the active seed.
func (s *Session) Seed() int64 { return s.seed }

// Status returns the run state for display.
func (s *Session) Status() ui.Status { return s.status }
