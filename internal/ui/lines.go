package ui

import (
	"fmt"
	"strings"

	"tilegen/internal/core"
)

// Status is the viewer state shown beneath the panel title.
type Status struct {
	Seed    int64
	Phase   core.Phase
	Index   int
	Steps   int
	Paused  bool
	Outcome core.Outcome
	Err     error
}

// PanelLines lays out the HUD text: title, run status, then each parameter
// group with one "label: value" line per parameter.
func PanelLines(name string, snap core.ParameterSnapshot, st Status) []string {
	title := "Generator"
	if name != "" {
		title = strings.ToUpper(name[:1]) + name[1:]
	}
	lines := []string{title, ""}

	state := "running"
	switch {
	case st.Outcome != "":
		state = string(st.Outcome)
	case st.Paused:
		state = "paused"
	}
	lines = append(lines,
		fmt.Sprintf("seed: %d", st.Seed),
		fmt.Sprintf("state: %s", state),
		fmt.Sprintf("step: %d (%s #%d)", st.Steps, phaseOrIdle(st.Phase), st.Index),
	)
	if st.Err != nil && st.Outcome != core.OutcomeSuccess {
		lines = append(lines, truncate(st.Err.Error(), 40))
	}

	for _, g := range snap.Groups {
		lines = append(lines, "", g.Name)
		for _, p := range g.Params {
			label := p.Label
			if label == "" {
				label = p.Key
			}
			lines = append(lines, fmt.Sprintf("  %s: %s", label, p.Value))
		}
	}
	return lines
}

func phaseOrIdle(p core.Phase) string {
	if p == "" {
		return "idle"
	}
	return string(p)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
