package core

import (
	"context"
	"time"
)

// Pacer spaces out observed steps at a steady ticks-per-second rate.
type Pacer struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewPacer constructs a Pacer targeting the given TPS.
func NewPacer(tps int) *Pacer {
	p := &Pacer{}
	p.SetTPS(tps)
	p.accumulator = p.step
	return p
}

// SetTPS changes the tick rate. Non-positive rates fall back to 60.
func (p *Pacer) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	p.step = time.Second / time.Duration(tps)
}

// Interval returns the duration of one tick.
func (p *Pacer) Interval() time.Duration { return p.step }

// ShouldStep reports whether a frame-driven loop should advance by one tick.
func (p *Pacer) ShouldStep() bool {
	now := time.Now()
	if p.last.IsZero() {
		p.last = now
	}
	delta := now.Sub(p.last)
	p.last = now
	p.accumulator += delta
	if p.accumulator >= p.step {
		p.accumulator -= p.step
		return true
	}
	return false
}

// Wait blocks for one tick or until ctx is done.
func (p *Pacer) Wait(ctx context.Context) error {
	t := time.NewTimer(p.step)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
