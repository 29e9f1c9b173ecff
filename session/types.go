// Package session defines states, tunable options, and error definitions
// for the navigation orchestration layer.
package session

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridnav/planner"
)

// Sentinel errors for session construction and configuration.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed to New.
	ErrNilGrid = errors.New("session: grid is nil")

	// ErrBadStart is returned when the start cell is not navigable.
	ErrBadStart = errors.New("session: start cell is not navigable")

	// ErrBadSpeed is returned for a non-positive speed option.
	ErrBadSpeed = errors.New("session: speed must be positive")

	// ErrBadConfig is returned for an invalid scenario config.
	ErrBadConfig = errors.New("session: invalid config")
)

// DefaultSpeed is the per-tick travel distance in cell units.
// It mirrors the classic 2 px per frame over a 40 px cell.
const DefaultSpeed = 0.05

// SessionState is the orchestration state machine's current state.
type SessionState uint8

const (
	// StateIdle means no destination is set.
	StateIdle SessionState = iota
	// StateCommitted means a destination is set; the path may be empty
	// (stuck) or in progress.
	StateCommitted
	// StateArrived means the agent's logical cell equals the destination
	// while it remains set.
	StateArrived
)

// String renders the state for logs and status lines.
func (s SessionState) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateCommitted:
		return "Committed"
	case StateArrived:
		return "Arrived"
	default:
		return fmt.Sprintf("SessionState(%d)", uint8(s))
	}
}

// Option configures a Session via functional arguments.
// An invalid Option is recorded internally and surfaced from New.
type Option func(*Options)

// Options holds the tunable parameters of a Session.
type Options struct {
	// Strategy selects the active search algorithm. Default: Unweighted.
	Strategy planner.Strategy

	// Speed is the agent's per-tick travel distance in cell units.
	// Default: DefaultSpeed.
	Speed float64

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Unweighted strategy
//   - DefaultSpeed
//   - error channel clear.
func DefaultOptions() Options {
	return Options{
		Strategy: planner.Unweighted,
		Speed:    DefaultSpeed,
		err:      nil,
	}
}

// WithStrategy selects the initial search algorithm.
// An undefined strategy is surfaced as planner.ErrUnknownStrategy from New.
func WithStrategy(s planner.Strategy) Option {
	return func(o *Options) {
		if !s.Valid() {
			o.err = fmt.Errorf("%w: %d", planner.ErrUnknownStrategy, uint8(s))
			return
		}
		o.Strategy = s
	}
}

// WithSpeed sets the agent's per-tick travel distance.
// A non-positive value is surfaced as ErrBadSpeed from New.
func WithSpeed(v float64) Option {
	return func(o *Options) {
		if v <= 0 {
			o.err = fmt.Errorf("%w: %v", ErrBadSpeed, v)
			return
		}
		o.Speed = v
	}
}
