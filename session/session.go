package session

import (
	"github.com/katalvlaran/gridnav/agent"
	"github.com/katalvlaran/gridnav/grid"
	"github.com/katalvlaran/gridnav/layout"
	"github.com/katalvlaran/gridnav/planner"
)

// Session ties one Grid, one Agent and the active search strategy into
// the navigation state machine. It exclusively owns all three; nothing
// outside mutates them directly.
type Session struct {
	grid     *grid.Grid
	agent    *agent.Agent
	strategy planner.Strategy
	speed    float64

	dest    grid.Cell
	hasDest bool
	state   SessionState
}

// New constructs a Session owning g with the agent placed at start,
// applying any number of functional Options.
// Returns ErrNilGrid for a nil grid, ErrBadStart for a non-navigable
// start cell, or the recorded option error.
func New(g *grid.Grid, start grid.Cell, opts ...Option) (*Session, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.IsNavigable(start) {
		return nil, ErrBadStart
	}

	return &Session{
		grid:     g,
		agent:    agent.New(start),
		strategy: o.Strategy,
		speed:    o.Speed,
		state:    StateIdle,
	}, nil
}

// replan recomputes the committed path from the agent's current logical
// cell to the active destination with the active strategy, and settles
// the state. Inputs were validated at construction and by the callers,
// so the planner cannot fail here.
func (s *Session) replan() {
	p, _ := planner.Find(s.grid, s.agent.Cell(), s.dest, planner.WithStrategy(s.strategy))
	s.agent.SetPath(p)
	if s.agent.Cell() == s.dest {
		s.state = StateArrived
	} else {
		s.state = StateCommitted
	}
}

// SetDestination requests navigation to c. A non-navigable destination is
// silently ignored — no state changes. Otherwise the session plans from
// the agent's current logical cell and commits: the destination marker
// persists even when the resulting path is empty (see Stuck).
func (s *Session) SetDestination(c grid.Cell) {
	if !s.grid.IsNavigable(c) {
		return
	}
	s.dest = c
	s.hasDest = true
	s.replan()
}

// ToggleObstacle flips occupancy at c, delegating validation to the grid.
// With an active destination the path is immediately recomputed from the
// agent's current position: edits made mid-transit reroute live.
func (s *Session) ToggleObstacle(c grid.Cell) error {
	if err := s.grid.ToggleObstacle(c); err != nil {
		return err
	}
	if s.hasDest {
		s.replan()
	}

	return nil
}

// SwitchAlgorithm selects a new strategy. With an active destination the
// path is recomputed at once — the agent never keeps walking a path the
// previous algorithm produced.
// Returns planner.ErrUnknownStrategy for an undefined strategy.
func (s *Session) SwitchAlgorithm(strat planner.Strategy) error {
	if !strat.Valid() {
		return planner.ErrUnknownStrategy
	}
	s.strategy = strat
	if s.hasDest {
		s.replan()
	}

	return nil
}

// Clear drops the destination and path and returns to Idle. The agent
// stays exactly where it is.
func (s *Session) Clear() {
	s.hasDest = false
	s.state = StateIdle
	s.agent.SetPath(nil)
}

// Tick runs one simulation step: while Committed, the agent advances by
// the configured speed; reaching the destination cell promotes the state
// to Arrived. Idle, Arrived and stuck sessions tick as no-ops.
func (s *Session) Tick() {
	if s.state != StateCommitted {
		return
	}
	s.agent.Tick(s.speed)
	if s.agent.Arrived() && s.agent.Cell() == s.dest {
		s.state = StateArrived
	}
}

// SaveLayout persists the current grid occupancy to path in the
// plain-text wire format.
func (s *Session) SaveLayout(path string) error {
	return layout.Save(path, s.grid)
}

// LoadLayout replaces the grid occupancy from path (all-or-nothing) and,
// with an active destination, replans against the new world. A failed
// load leaves both grid and path untouched.
func (s *Session) LoadLayout(path string) error {
	if err := layout.Load(path, s.grid); err != nil {
		return err
	}
	if s.hasDest {
		s.replan()
	}

	return nil
}

// State returns the current state machine state.
func (s *Session) State() SessionState { return s.state }

// Strategy returns the active search strategy.
func (s *Session) Strategy() planner.Strategy { return s.strategy }

// Destination returns the active destination cell, if any.
func (s *Session) Destination() (grid.Cell, bool) { return s.dest, s.hasDest }

// GridSnapshot returns a row-major copy of current occupancy for
// rendering or persistence.
func (s *Session) GridSnapshot() [][]grid.State { return s.grid.Snapshot() }

// AgentPosition returns the agent's continuous position.
func (s *Session) AgentPosition() agent.Position { return s.agent.Position() }

// AgentCell returns the agent's authoritative discrete cell.
func (s *Session) AgentCell() grid.Cell { return s.agent.Cell() }

// CurrentPath returns a copy of the committed path.
func (s *Session) CurrentPath() planner.Path { return s.agent.Path() }

// Cursor returns the index of the next waypoint not yet reached.
func (s *Session) Cursor() int { return s.agent.Cursor() }

// Stuck reports whether a destination is set but the agent has no way to
// make progress toward it: the committed path is exhausted (or was empty)
// while the agent stands somewhere else.
func (s *Session) Stuck() bool {
	return s.hasDest && s.agent.Arrived() && s.agent.Cell() != s.dest
}
