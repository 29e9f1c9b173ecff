package planner_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/gridnav/grid"
	"github.com/katalvlaran/gridnav/planner"
)

// strategies under test; every scenario must hold for both.
var strategies = []planner.Strategy{planner.Unweighted, planner.Heuristic}

// ------------------------------------------------------------------------
// 1. Validation Tests: errors for invalid inputs.
// ------------------------------------------------------------------------

func TestFind_NilGrid(t *testing.T) {
	_, err := planner.Find(nil, grid.Cell{}, grid.Cell{X: 1})
	if !errors.Is(err, planner.ErrNilGrid) {
		t.Fatalf("Expected ErrNilGrid, got %v", err)
	}
}

func TestFind_UnknownStrategy(t *testing.T) {
	g, err := grid.New(3, 3)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	_, err = planner.Find(g, grid.Cell{}, grid.Cell{X: 2}, planner.WithStrategy(planner.Strategy(99)))
	if !errors.Is(err, planner.ErrUnknownStrategy) {
		t.Fatalf("Expected ErrUnknownStrategy, got %v", err)
	}
}

// ------------------------------------------------------------------------
// 2. Degenerate contract: empty path, nil error.
// ------------------------------------------------------------------------

func TestFind_DegenerateCases(t *testing.T) {
	g, err := grid.FromRows([][]int{
		{0, 0, 1},
		{0, 0, 0},
	})
	if err != nil {
		t.Fatalf("FromRows error: %v", err)
	}

	cases := []struct {
		name        string
		start, goal grid.Cell
	}{
		{"StartEqualsGoal", grid.Cell{X: 1, Y: 1}, grid.Cell{X: 1, Y: 1}},
		{"BlockedGoal", grid.Cell{X: 0, Y: 0}, grid.Cell{X: 2, Y: 0}},
		{"BlockedStart", grid.Cell{X: 2, Y: 0}, grid.Cell{X: 0, Y: 0}},
		{"OutOfBoundsGoal", grid.Cell{X: 0, Y: 0}, grid.Cell{X: 9, Y: 9}},
	}
	for _, tc := range cases {
		for _, s := range strategies {
			t.Run(tc.name+"_"+s.String(), func(t *testing.T) {
				p, ferr := planner.Find(g, tc.start, tc.goal, planner.WithStrategy(s))
				if ferr != nil {
					t.Fatalf("Find error: %v", ferr)
				}
				if p.Len() != 0 {
					t.Errorf("path length = %d; want 0", p.Len())
				}
			})
		}
	}
}

// ------------------------------------------------------------------------
// 3. Scenario suite (both strategies).
// ------------------------------------------------------------------------

// FindSuite exercises both strategies on concrete board scenarios.
type FindSuite struct {
	suite.Suite
}

// requireValidPath asserts the path obeys the shared contract: every cell
// navigable, consecutive cells 4-adjacent, first cell adjacent to start,
// last cell the goal.
func (s *FindSuite) requireValidPath(g *grid.Grid, start, goal grid.Cell, p planner.Path) {
	require.NotEmpty(s.T(), p, "expected a reachable goal")
	require.Equal(s.T(), goal, p[len(p)-1], "path must end at the goal")
	prev := start
	for i, c := range p {
		require.True(s.T(), g.IsNavigable(c), "path cell %d (%v) must be navigable", i, c)
		require.Equal(s.T(), 1, prev.Manhattan(c), "cells %v and %v must be 4-adjacent", prev, c)
		prev = c
	}
}

// TestOpenBoardDiagonal verifies the canonical 5×5 scenario: both
// strategies return a length-8 path from (0,0) to (4,4).
func (s *FindSuite) TestOpenBoardDiagonal() {
	g, err := grid.New(5, 5)
	require.NoError(s.T(), err)
	start, goal := grid.Cell{X: 0, Y: 0}, grid.Cell{X: 4, Y: 4}

	for _, strat := range strategies {
		p, ferr := planner.Find(g, start, goal, planner.WithStrategy(strat))
		require.NoError(s.T(), ferr)
		require.Equal(s.T(), 8, p.Len(), "%s path length", strat)
		s.requireValidPath(g, start, goal, p)
	}
}

// TestUnreachable verifies a walled-off goal yields an empty path.
func (s *FindSuite) TestUnreachable() {
	g, err := grid.FromRows([][]int{
		{0, 1, 0},
		{0, 1, 0},
		{0, 1, 0},
	})
	require.NoError(s.T(), err)

	for _, strat := range strategies {
		p, ferr := planner.Find(g, grid.Cell{X: 0, Y: 0}, grid.Cell{X: 2, Y: 2}, planner.WithStrategy(strat))
		require.NoError(s.T(), ferr)
		require.Zero(s.T(), p.Len(), "%s must report unreachable as empty", strat)
	}
}

// TestMidpointDetour verifies that blocking the midpoint of a straight
// route forces a detour longer by a strictly positive even hop count.
func (s *FindSuite) TestMidpointDetour() {
	g, err := grid.New(5, 5)
	require.NoError(s.T(), err)
	start, goal := grid.Cell{X: 0, Y: 2}, grid.Cell{X: 4, Y: 2}
	mid := grid.Cell{X: 2, Y: 2}

	for _, strat := range strategies {
		direct, ferr := planner.Find(g, start, goal, planner.WithStrategy(strat))
		require.NoError(s.T(), ferr)
		require.Equal(s.T(), 4, direct.Len())

		require.NoError(s.T(), g.ToggleObstacle(mid))
		detour, ferr := planner.Find(g, start, goal, planner.WithStrategy(strat))
		require.NoError(s.T(), ferr)
		s.requireValidPath(g, start, goal, detour)
		require.NotContains(s.T(), detour, mid, "detour must avoid the blocked cell")

		delta := detour.Len() - direct.Len()
		require.Positive(s.T(), delta)
		require.Zero(s.T(), delta%2, "detour delta must be even on a 4-connected grid")

		require.NoError(s.T(), g.ToggleObstacle(mid)) // restore for next strategy
	}
}

// TestDeterministicParentOrder pins the exact BFS path on a 3×3 board
// with a blocked center: the fixed up/right/down/left order makes the
// right-then-down route canonical. A* agrees under its tie-break.
func (s *FindSuite) TestDeterministicParentOrder() {
	g, err := grid.FromRows([][]int{
		{0, 0, 0},
		{0, 1, 0},
		{0, 0, 0},
	})
	require.NoError(s.T(), err)
	want := planner.Path{
		{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}, {X: 2, Y: 2},
	}

	for _, strat := range strategies {
		p, ferr := planner.Find(g, grid.Cell{X: 0, Y: 0}, grid.Cell{X: 2, Y: 2}, planner.WithStrategy(strat))
		require.NoError(s.T(), ferr)
		require.Equal(s.T(), want, p, "%s must take the canonical route", strat)
	}
}

// TestRepeatedRunsIdentical verifies A* reproducibility: two runs on the
// same input return identical paths, cell for cell.
func (s *FindSuite) TestRepeatedRunsIdentical() {
	g := randomGrid(s.T(), 12, 12, 0.25, 7)
	start, goal := grid.Cell{X: 0, Y: 0}, grid.Cell{X: 11, Y: 11}

	first, err := planner.Find(g, start, goal, planner.WithStrategy(planner.Heuristic))
	require.NoError(s.T(), err)
	second, err := planner.Find(g, start, goal, planner.WithStrategy(planner.Heuristic))
	require.NoError(s.T(), err)
	require.Equal(s.T(), first, second)
}

// TestHooksObserveFrontier verifies OnExpand fires at most once per cell
// and OnEnqueue at least once per expanded cell, for both strategies.
func (s *FindSuite) TestHooksObserveFrontier() {
	g, err := grid.New(6, 6)
	require.NoError(s.T(), err)

	for _, strat := range strategies {
		expanded := make(map[grid.Cell]int)
		enqueued := make(map[grid.Cell]int)
		_, ferr := planner.Find(g, grid.Cell{}, grid.Cell{X: 5, Y: 5},
			planner.WithStrategy(strat),
			planner.WithOnEnqueue(func(c grid.Cell) { enqueued[c]++ }),
			planner.WithOnExpand(func(c grid.Cell) { expanded[c]++ }),
		)
		require.NoError(s.T(), ferr)
		for c, n := range expanded {
			require.Equal(s.T(), 1, n, "%s expanded %v %d times", strat, c, n)
			require.GreaterOrEqual(s.T(), enqueued[c], 1, "%s expanded %v without enqueue", strat, c)
		}
	}
}

func TestFindSuite(t *testing.T) {
	suite.Run(t, new(FindSuite))
}

// ------------------------------------------------------------------------
// 4. Cross-check: both strategies match a brute-force reference on
//    random boards.
// ------------------------------------------------------------------------

// referenceHops computes shortest hop counts by plain layer-by-layer
// flood fill, independent of the planner's internals. Returns -1 when the
// goal is unreachable.
func referenceHops(g *grid.Grid, start, goal grid.Cell) int {
	type entry struct {
		c grid.Cell
		d int
	}
	seen := map[grid.Cell]bool{start: true}
	frontier := []entry{{start, 0}}
	for len(frontier) > 0 {
		cur := frontier[0]
		frontier = frontier[1:]
		if cur.c == goal {
			return cur.d
		}
		for _, n := range g.Neighbors(cur.c) {
			if g.IsNavigable(n) && !seen[n] {
				seen[n] = true
				frontier = append(frontier, entry{n, cur.d + 1})
			}
		}
	}

	return -1
}

// randomGrid builds a w×h grid with roughly density blocked cells from a
// seeded source, keeping the corners free so start/goal stay navigable.
func randomGrid(t testing.TB, w, h int, density float64, seed int64) *grid.Grid {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]int, h)
	for y := 0; y < h; y++ {
		row := make([]int, w)
		for x := 0; x < w; x++ {
			if rng.Float64() < density {
				row[x] = 1
			}
		}
		rows[y] = row
	}
	rows[0][0] = 0
	rows[h-1][w-1] = 0
	g, err := grid.FromRows(rows)
	if err != nil {
		t.Fatalf("randomGrid: %v", err)
	}

	return g
}

// TestFind_MatchesBruteForce cross-checks both strategies against the
// reference on a spread of random boards and random cell pairs.
func TestFind_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 25; trial++ {
		g := randomGrid(t, 9, 7, 0.3, int64(trial))
		start := grid.Cell{X: rng.Intn(9), Y: rng.Intn(7)}
		goal := grid.Cell{X: rng.Intn(9), Y: rng.Intn(7)}
		if start == goal || !g.IsNavigable(start) || !g.IsNavigable(goal) {
			continue
		}
		want := referenceHops(g, start, goal)

		for _, strat := range strategies {
			p, err := planner.Find(g, start, goal, planner.WithStrategy(strat))
			if err != nil {
				t.Fatalf("trial %d: Find(%s) error: %v", trial, strat, err)
			}
			got := p.Len()
			if want == -1 {
				if got != 0 {
					t.Errorf("trial %d %s: got path of %d hops for unreachable pair %v→%v", trial, strat, got, start, goal)
				}
				continue
			}
			if got != want {
				t.Errorf("trial %d %s: %v→%v length = %d; want %d", trial, strat, start, goal, got, want)
			}
		}
	}
}
