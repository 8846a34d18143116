package graph

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hochbaumGroup/pseudoflow-parametric-cut/errs"
)

func TestNewRejectsOutOfRangeSourceOrSink(t *testing.T) {
	_, err := New(3, -1, 2, 0, 10, false)
	require.ErrorIs(t, err, errs.ErrNodeOutOfRange)

	_, err = New(3, 0, 3, 0, 10, false)
	require.ErrorIs(t, err, errs.ErrNodeOutOfRange)
}

func TestNewRejectsSourceEqualsSink(t *testing.T) {
	_, err := New(3, 1, 1, 0, 10, false)
	require.ErrorIs(t, err, errs.ErrSourceEqualsSink)
}

func TestAddArcRejectsOutOfRangeEndpoints(t *testing.T) {
	g, err := New(3, 0, 2, 0, 10, false)
	require.NoError(t, err)

	err = g.AddArc(0, 3, 1, 0)
	require.ErrorIs(t, err, errs.ErrNodeOutOfRange)
}

func TestAddArcRejectsSelfLoop(t *testing.T) {
	g, err := New(3, 0, 2, 0, 10, false)
	require.NoError(t, err)

	err = g.AddArc(1, 1, 1, 0)
	require.ErrorIs(t, err, errs.ErrSelfLoop)
}

func TestAddArcSourceAdjacentRequiresNonNegativeMultiplier(t *testing.T) {
	g, err := New(3, 0, 2, 0, 10, false)
	require.NoError(t, err)

	require.NoError(t, g.AddArc(0, 1, 5, 0))
	require.NoError(t, g.AddArc(0, 1, 5, 1))

	err = g.AddArc(0, 1, 5, -1)
	require.ErrorIs(t, err, errs.ErrSignViolation)
}

func TestAddArcSinkAdjacentRequiresNonPositiveMultiplier(t *testing.T) {
	g, err := New(3, 0, 2, 0, 10, false)
	require.NoError(t, err)

	require.NoError(t, g.AddArc(1, 2, 5, 0))
	require.NoError(t, g.AddArc(1, 2, 5, -1))

	err = g.AddArc(1, 2, 5, 1)
	require.ErrorIs(t, err, errs.ErrSignViolation)
}

func TestAddArcInteriorRequiresZeroMultiplier(t *testing.T) {
	g, err := New(4, 0, 3, 0, 10, false)
	require.NoError(t, err)

	require.NoError(t, g.AddArc(1, 2, 5, 0))

	err = g.AddArc(1, 2, 5, 1)
	require.ErrorIs(t, err, errs.ErrSignViolation)
}

// TestAddArcSourceToSinkRequiresZeroMultiplier is spec scenario 6: an arc
// straight from source to sink is pinned by both the source-adjacency and
// sink-adjacency rules at once, so only multiplier 0 survives. A negative
// multiplier fails the source-adjacency check even though sink-adjacency
// alone would accept it.
func TestAddArcSourceToSinkRequiresZeroMultiplier(t *testing.T) {
	g, err := New(3, 0, 2, 0, 10, false)
	require.NoError(t, err)

	require.NoError(t, g.AddArc(0, 2, 5, 0))

	err = g.AddArc(0, 2, 5, -1)
	require.ErrorIs(t, err, errs.ErrSignViolation)
	require.True(t, errors.Is(err, errs.ErrSignViolation))

	err = g.AddArc(0, 2, 5, 1)
	require.ErrorIs(t, err, errs.ErrSignViolation)
}

func TestAddArcDropsArcsIntoSourceOrOutOfSink(t *testing.T) {
	g, err := New(3, 0, 2, 0, 10, false)
	require.NoError(t, err)

	require.NoError(t, g.AddArc(1, 0, 5, 0))
	require.NoError(t, g.AddArc(2, 1, 5, 0))
	require.Empty(t, g.Arcs)

	require.NoError(t, g.AddArc(0, 1, 5, 1))
	require.Len(t, g.Arcs, 1)
}

func TestArcCapacityEvaluatesAffineFormula(t *testing.T) {
	a := Arc{From: 0, To: 1, Constant: 3, Multiplier: 2}
	require.Equal(t, 3.0, a.Capacity(0))
	require.Equal(t, 13.0, a.Capacity(5))
}
