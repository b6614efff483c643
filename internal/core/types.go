package core

import (
	"context"
	"fmt"
	"sort"
)

// Size describes the dimensions of a grid.
type Size struct {
	W int
	H int
}

// Phase names a stage of a generation run.
type Phase string

const (
	PhaseRooms     Phase = "rooms"
	PhasePartition Phase = "partition"
	PhaseCorridors Phase = "corridors"
	PhaseGround    Phase = "ground"
	PhaseSeed      Phase = "seed"
	PhaseEvolve    Phase = "evolve"
	PhaseClassify  Phase = "classify"
	PhaseDone      Phase = "done"
)

// Step is one observable increment of work. Grid is the live grid and must
// not be retained past the observer call if the run continues.
type Step struct {
	Method string
	Phase  Phase
	Index  int
	Grid   *Grid
}

// Observer receives steps as a method makes progress. Returning an error
// aborts the run with that error.
type Observer func(Step) error

// Emit calls o when non-nil.
func (o Observer) Emit(s Step) error {
	if o == nil {
		return nil
	}
	return o(s)
}

// Method defines the contract every generation strategy implements. Generate
// paints g in place and reports steps to observe, which may be nil.
type Method interface {
	Name() string
	Generate(ctx context.Context, g *Grid, observe Observer) error
}

// RoomLister is implemented by methods that track placed rooms.
type RoomLister interface {
	Rooms() []Rect
}

// Factory constructs a Method using an optional configuration map.
type Factory func(cfg map[string]string) Method

var methods = map[string]Factory{}

// Register adds a method factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	methods[name] = f
}

// Methods exposes the registry of available method factories.
func Methods() map[string]Factory {
	return methods
}

// Names returns the registered method names in sorted order.
func Names() []string {
	names := make([]string, 0, len(methods))
	for name := range methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New builds the named method.
func New(name string, cfg map[string]string) (Method, error) {
	f, ok := methods[name]
	if !ok {
		return nil, fmt.Errorf("unknown method %q (available: %v)", name, Names())
	}
	return f(cfg), nil
}
