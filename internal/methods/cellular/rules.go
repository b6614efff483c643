package cellular

// Rule decides a cell's next state from its current state and the number of
// live cells among its eight neighbours.
type Rule interface {
	Next(alive bool, neighbors int) bool
}

// ThresholdRule keeps or makes a cell alive when at least Threshold
// neighbours are alive.
type ThresholdRule struct {
	Threshold int
}

func (r ThresholdRule) Next(_ bool, neighbors int) bool {
	return neighbors >= r.Threshold
}

// ConwayRule is B3/S23.
type ConwayRule struct{}

func (ConwayRule) Next(alive bool, neighbors int) bool {
	return (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3)
}

func ruleFor(c Config) Rule {
	if c.Rule == RuleConway {
		return ConwayRule{}
	}
	return ThresholdRule{Threshold: c.Threshold}
}
