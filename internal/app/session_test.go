package app

import (
	"flag"
	"slices"
	"testing"

	"tilegen/internal/core"
	_ "tilegen/internal/methods/biome"
	_ "tilegen/internal/methods/roomplacement"
)

func smallRooms() map[string]string {
	return map[string]string{"max_rooms": "3", "min_w": "4", "min_h": "4", "max_w": "6", "max_h": "6", "max_steps": "5000"}
}

func TestSessionAdvancesOneStepAtATime(t *testing.T) {
	s, err := NewSession("rooms", smallRooms(), 24, 24, 3)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	defer s.Close()

	if !s.Advance() {
		t.Fatalf("first step ended the run")
	}
	if st := s.Status(); st.Steps != 1 || st.Phase != core.PhaseRooms {
		t.Fatalf("unexpected status after one step %+v", st)
	}
	s.Finish()
	st := s.Status()
	if !s.Done() || st.Outcome != core.OutcomeSuccess || st.Phase != core.PhaseDone {
		t.Fatalf("unexpected final status %+v", st)
	}
	if s.Advance() {
		t.Fatalf("Advance after completion reported progress")
	}
}

func TestSessionResetRestartsDeterministically(t *testing.T) {
	s, err := NewSession("rooms", smallRooms(), 24, 24, 11)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	defer s.Close()
	s.Finish()
	first := s.Grid().Kinds()

	s.Advance()
	if err := s.Reset(11); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	s.Advance()
	if err := s.Reset(11); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	s.Finish()
	if !slices.Equal(first, s.Grid().Kinds()) {
		t.Fatalf("reset with the same seed produced a different grid")
	}
	if s.Seed() != 11 || s.Status().Seed != 11 {
		t.Fatalf("seed not tracked")
	}
}

func TestSessionUnknownMethod(t *testing.T) {
	if _, err := NewSession("nope", nil, 8, 8, 1); err == nil {
		t.Fatalf("expected an error for an unknown method")
	}
}

func TestSessionSeedReachesBiomeFields(t *testing.T) {
	s, err := NewSession("biome", nil, 16, 16, 40)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	defer s.Close()
	params := s.Method().(core.ParameterProvider).Parameters()
	for key, want := range map[string]string{"temp_seed": "40", "moist_seed": "41", "height_seed": "42"} {
		p, ok := params.Lookup(key)
		if !ok || p.Value != want {
			t.Fatalf("%s = %q, want %q", key, p.Value, want)
		}
	}
	s.Finish()
	if s.Status().Outcome != core.OutcomeSuccess || s.Status().Steps != 16 {
		t.Fatalf("unexpected status %+v", s.Status())
	}
}

func TestConfigBindAndKeyValues(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("viewer", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-method", "bsp", "-set", "max_rooms=4", "-set", "bad", "-set", "margin = 3", "-w", "40"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Method != "bsp" || cfg.Width != 40 {
		t.Fatalf("flags not bound: %+v", cfg)
	}
	m := cfg.Set.Map()
	if len(m) != 2 || m["max_rooms"] != "4" || m["margin"] != "3" {
		t.Fatalf("Map = %v", m)
	}
}
