package agent

import (
	"math"

	"github.com/katalvlaran/gridnav/grid"
	"github.com/katalvlaran/gridnav/planner"
)

// Position is a continuous point in cell units.
// It is derived, visual state: planning never reads it.
type Position struct {
	X, Y float64
}

// Center returns the continuous center of c: (X+0.5, Y+0.5).
func Center(c grid.Cell) Position {
	return Position{X: float64(c.X) + 0.5, Y: float64(c.Y) + 0.5}
}

// Agent owns the navigator's authoritative discrete cell, its continuous
// sub-cell position, the currently assigned path, and the cursor of the
// next waypoint not yet reached.
type Agent struct {
	pos    Position
	cell   grid.Cell
	path   planner.Path
	cursor int
}

// New places an Agent at start, its position snapped to the cell center.
func New(start grid.Cell) *Agent {
	return &Agent{
		pos:  Center(start),
		cell: start,
	}
}

// SetPath replaces the assigned path and resets the cursor. The path is
// copied; later mutation of p does not affect the agent.
func (a *Agent) SetPath(p planner.Path) {
	a.path = p.Clone()
	a.cursor = 0
}

// Tick advances the agent by one simulation step at the given speed
// (cell units per tick). It reports whether the agent arrived exactly at
// a waypoint center this tick.
//
// Guarantees:
//   - speed <= 0 or an exhausted path is a no-op.
//   - If the remaining distance exceeds speed, the position moves speed
//     units along the unit vector; the logical cell is unchanged.
//   - Otherwise the position snaps exactly to the target center (no
//     overshoot regardless of how much speed exceeds the remainder), the
//     logical cell becomes the waypoint, and the cursor advances.
func (a *Agent) Tick(speed float64) bool {
	if speed <= 0 || a.cursor >= len(a.path) {
		return false
	}
	target := Center(a.path[a.cursor])
	dx := target.X - a.pos.X
	dy := target.Y - a.pos.Y
	dist := math.Hypot(dx, dy)

	if dist > speed {
		a.pos.X += speed * dx / dist
		a.pos.Y += speed * dy / dist

		return false
	}

	a.pos = target
	a.cell = a.path[a.cursor]
	a.cursor++

	return true
}

// Arrived reports whether the cursor has consumed the whole path.
// A pathless agent is trivially arrived.
func (a *Agent) Arrived() bool {
	return a.cursor >= len(a.path)
}

// Position returns the continuous position.
func (a *Agent) Position() Position { return a.pos }

// Cell returns the authoritative discrete cell.
func (a *Agent) Cell() grid.Cell { return a.cell }

// Path returns a copy of the assigned path.
func (a *Agent) Path() planner.Path { return a.path.Clone() }

// Cursor returns the index of the next waypoint not yet reached.
func (a *Agent) Cursor() int { return a.cursor }

// Teleport relocates the agent to c, snapping the continuous position to
// the cell center and dropping any assigned path.
func (a *Agent) Teleport(c grid.Cell) {
	a.pos = Center(c)
	a.cell = c
	a.path = nil
	a.cursor = 0
}
