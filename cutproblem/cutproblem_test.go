package cutproblem

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hochbaumGroup/pseudoflow-parametric-cut/graph"
)

func buildDiamond(t *testing.T) *graph.Graph {
	t.Helper()
	// s=0, a=1, b=2, t=3; s->a, s->b, a->t, b->t, plus an interior a->b.
	g, err := graph.New(4, 0, 3, 0, 10, false)
	require.NoError(t, err)
	require.NoError(t, g.AddArc(0, 1, 5, 1))
	require.NoError(t, g.AddArc(0, 2, 5, 1))
	require.NoError(t, g.AddArc(1, 3, 4, -1))
	require.NoError(t, g.AddArc(2, 3, 4, -1))
	require.NoError(t, g.AddArc(1, 2, 2, 0))
	return g
}

func TestSeedFromGraph(t *testing.T) {
	g := buildDiamond(t)
	p, err := SeedFromGraph(g, 2)
	require.NoError(t, err)

	require.Equal(t, []int{0}, p.SourceSet)
	require.Equal(t, []int{3}, p.SinkSet)
	require.Len(t, p.Nodes, 4) // artificial source, artificial sink, a, b
	require.Len(t, p.Arcs, 5)

	for _, a := range p.Arcs {
		require.GreaterOrEqual(t, a.Capacity, 0.0)
	}
}

func TestSeedFromGraphNegativeCapacityRejected(t *testing.T) {
	g, err := graph.New(3, 0, 2, 0, 10, false)
	require.NoError(t, err)
	require.NoError(t, g.AddArc(0, 1, 1, 0))
	require.NoError(t, g.AddArc(1, 2, -5, -1))

	_, err = SeedFromGraph(g, 1)
	require.Error(t, err)
}

func TestSeedFromGraphRoundsNearZero(t *testing.T) {
	g, err := graph.New(3, 0, 2, 0, 10, true)
	require.NoError(t, err)
	require.NoError(t, g.AddArc(0, 1, 1, 0))
	require.NoError(t, g.AddArc(1, 2, -5, -1))

	p, err := SeedFromGraph(g, -5)
	require.NoError(t, err)
	require.Equal(t, 0.0, p.Arcs[1].Capacity)
}

func TestContractFromParentMergesOntoArtificialTerminals(t *testing.T) {
	g := buildDiamond(t)
	parent, err := SeedFromGraph(g, 2)
	require.NoError(t, err)

	// Node a (original index 1) settles to the source side at both low and
	// high lambda; node b (original index 2) stays undecided.
	lowInd := []int{1, 1, 0, 0}
	highInd := []int{1, 1, 1, 0}

	child := ContractFromParent(parent, 3, lowInd, highInd, false)

	require.Contains(t, child.SourceSet, 1)
	require.NotContains(t, child.SinkSet, 1)

	// every arc in the child must reference a valid internal node.
	for _, a := range child.Arcs {
		require.True(t, a.From >= 0 && a.From < len(child.Nodes))
		require.True(t, a.To >= 0 && a.To < len(child.Nodes))
	}
}

func TestContractFromParentCollapsesSinkSideNode(t *testing.T) {
	g := buildDiamond(t)
	parent, err := SeedFromGraph(g, 2)
	require.NoError(t, err)

	// Node b (original index 2) settles to the sink side.
	lowInd := []int{1, 0, 0, 0}
	highInd := []int{1, 0, 0, 0}

	child := ContractFromParent(parent, 3, lowInd, highInd, false)
	require.Contains(t, child.SinkSet, 2)
}
