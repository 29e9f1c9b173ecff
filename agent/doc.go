// Package agent advances a navigator smoothly along a discrete path, one
// simulation tick at a time.
//
// What:
//
//   - Agent carries a continuous Position (sub-cell precision, for
//     interpolation only) and a discrete logical cell (authoritative for
//     every planning query).
//   - Tick(speed) moves the position toward the center of the next
//     waypoint; on arrival it snaps exactly to the center — no overshoot,
//     even for arbitrarily large speeds — updates the logical cell, and
//     advances the cursor.
//   - SetPath replaces the assigned path wholesale; paths never merge.
//
// Why:
//
//   - Rendering wants smooth motion; planning wants exact cells. The two
//     views never mix: the logical cell changes only on an exact-arrival
//     tick, never speculatively from an intermediate position.
//
// Coordinates: positions are in cell units, where cell (x,y) has center
// (x+0.5, y+0.5). A renderer multiplies by its own cell size.
//
// Complexity: every operation is O(1) except the defensive path copies.
package agent
