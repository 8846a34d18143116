package breakpoint

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddCopiesIndicator(t *testing.T) {
	l := NewList()
	ind := []int{1, 0, 1}
	l.Add(3.5, ind)
	ind[0] = 0 // mutate caller's copy

	require.Equal(t, []int{1, 0, 1}, l.Items()[0].SourceSet)
}

func TestRemoveDuplicatesKeepsEarlier(t *testing.T) {
	l := NewList()
	l.Add(1, []int{1, 0})
	l.Add(2, []int{1, 1})
	l.Add(2, []int{0, 1})
	l.Add(4, []int{0, 0})

	l.RemoveDuplicates()

	require.Len(t, l.Items(), 3)
	require.Equal(t, []int{1, 1}, l.Items()[1].SourceSet)
	require.Equal(t, []float64{1, 2, 4}, []float64{l.Items()[0].Lambda, l.Items()[1].Lambda, l.Items()[2].Lambda})
}

func TestMatrixFlattensRowMajor(t *testing.T) {
	l := NewList()
	l.Add(1, []int{1, 0, 1})
	l.Add(2, []int{0, 0, 1})

	require.Equal(t, []int{1, 0, 1, 0, 0, 1}, l.Matrix(3))
}
