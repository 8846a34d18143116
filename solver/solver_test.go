package solver

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hochbaumGroup/pseudoflow-parametric-cut/engine"
	"github.com/hochbaumGroup/pseudoflow-parametric-cut/graph"
)

func TestSolveReturnsBreakpointsAndStats(t *testing.T) {
	g, err := graph.New(3, 0, 2, 0, 20, false)
	require.NoError(t, err)
	require.NoError(t, g.AddArc(0, 1, 0, 1))
	require.NoError(t, g.AddArc(1, 2, 10, 0))

	res, err := Solve(g, engine.Options{})
	require.NoError(t, err)
	require.Equal(t, 2, res.Breakpoints.Len())
	require.GreaterOrEqual(t, res.Stats.Pushes, 0)
	require.GreaterOrEqual(t, res.Timings.Solve, 0.0)
}

func TestSolvePropagatesValidationErrors(t *testing.T) {
	g, err := graph.New(3, 0, 2, 0, 10, false)
	require.NoError(t, err)
	require.NoError(t, g.AddArc(0, 1, -5, 0))

	_, err = Solve(g, engine.Options{})
	require.Error(t, err)
}
