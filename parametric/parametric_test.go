package parametric

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hochbaumGroup/pseudoflow-parametric-cut/engine"
	"github.com/hochbaumGroup/pseudoflow-parametric-cut/graph"
)

// threeNode builds s=0, a=1, t=2 with capacity(s,a) = lambda and
// capacity(a,t) = 10: the minimal source set is {s} up to and including
// lambda=10 and {s,a} above it, giving exactly one interior breakpoint.
func threeNode(t *testing.T, lo, hi float64) *graph.Graph {
	t.Helper()
	g, err := graph.New(3, 0, 2, lo, hi, false)
	require.NoError(t, err)
	require.NoError(t, g.AddArc(0, 1, 0, 1))
	require.NoError(t, g.AddArc(1, 2, 10, 0))
	return g
}

func TestSolveFindsSingleInteriorBreakpoint(t *testing.T) {
	g := threeNode(t, 0, 20)
	list, _, err := Solve(g, engine.Options{})
	require.NoError(t, err)

	items := list.Items()
	require.Len(t, items, 2)

	require.Equal(t, 10.0, items[0].Lambda)
	require.Equal(t, []int{1, 0, 0}, items[0].SourceSet)

	require.Equal(t, 20.0, items[1].Lambda)
	require.Equal(t, []int{1, 1, 0}, items[1].SourceSet)
}

func TestSolveDegenerateRangeProducesOneBreakpoint(t *testing.T) {
	g := threeNode(t, 5, 5)
	list, _, err := Solve(g, engine.Options{})
	require.NoError(t, err)

	require.Len(t, list.Items(), 1)
	require.Equal(t, 5.0, list.Items()[0].Lambda)
	require.Equal(t, []int{1, 0, 0}, list.Items()[0].SourceSet)
}

func TestSolveConstantCutProducesOneBreakpoint(t *testing.T) {
	// Both arcs lambda-independent: no interior breakpoint possible.
	g, err := graph.New(3, 0, 2, 0, 10, false)
	require.NoError(t, err)
	require.NoError(t, g.AddArc(0, 1, 3, 0))
	require.NoError(t, g.AddArc(1, 2, 3, 0))

	list, _, err := Solve(g, engine.Options{})
	require.NoError(t, err)
	require.Len(t, list.Items(), 1)
	require.Equal(t, 10.0, list.Items()[0].Lambda)
}
