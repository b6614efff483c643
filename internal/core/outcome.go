package core

import (
	"context"
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every configuration validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// InvalidConfigf formats a validation error that wraps ErrInvalidConfig.
func InvalidConfigf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

// ShortfallError reports that a method exhausted its step budget before
// placing everything it was asked for. The grid is still fully painted.
type ShortfallError struct {
	Method    string
	Requested int
	Placed    int
	Steps     int
}

func (e *ShortfallError) Error() string {
	return fmt.Sprintf("%s: placed %d of %d rooms after %d steps", e.Method, e.Placed, e.Requested, e.Steps)
}

// Outcome classifies the result of a generation run.
type Outcome string

const (
	OutcomeSuccess    Outcome = "success"
	OutcomeCancelled  Outcome = "cancelled"
	OutcomeIncomplete Outcome = "incomplete"
	OutcomeInvalid    Outcome = "invalid"
	OutcomeFailed     Outcome = "failed"
)

// OutcomeOf maps a Generate error to its outcome.
func OutcomeOf(err error) Outcome {
	var short *ShortfallError
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return OutcomeCancelled
	case errors.As(err, &short):
		return OutcomeIncomplete
	case errors.Is(err, ErrInvalidConfig):
		return OutcomeInvalid
	default:
		return OutcomeFailed
	}
}
