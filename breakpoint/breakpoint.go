// Package breakpoint holds the ordered output of the parametric solve: one
// entry per lambda at which the optimal cut changes, each carrying the
// source-set indicator over the original graph's node indices (spec §4.3,
// §4.5). Grounded on libhpf.c's addBreakpoint/removeDuplicateBreakpoints/
// prepareOutput, translated from a linked list into a slice.
package breakpoint

// Breakpoint is one entry: the lambda value and the 0/1 source-set
// indicator over original node indices at that lambda.
type Breakpoint struct {
	Lambda    float64
	SourceSet []int
}

// List is an append-only, lambda-ordered sequence of breakpoints.
type List struct {
	items []Breakpoint
}

// NewList returns an empty breakpoint list.
func NewList() *List {
	return &List{}
}

// Add appends a breakpoint, copying indicator so later mutation of the
// caller's slice (e.g. a CutProblem being reused) cannot corrupt it.
func (l *List) Add(lambda float64, indicator []int) {
	cp := make([]int, len(indicator))
	copy(cp, indicator)
	l.items = append(l.items, Breakpoint{Lambda: lambda, SourceSet: cp})
}

// RemoveDuplicates collapses adjacent breakpoints with bit-identical lambda
// values, keeping the earlier one and discarding the later - matching
// libhpf.c's removeDuplicateBreakpoints exactly, including which side of
// the pair survives.
func (l *List) RemoveDuplicates() {
	if len(l.items) == 0 {
		return
	}
	out := make([]Breakpoint, 0, len(l.items))
	out = append(out, l.items[0])
	for _, b := range l.items[1:] {
		if b.Lambda == out[len(out)-1].Lambda {
			continue
		}
		out = append(out, b)
	}
	l.items = out
}

// Items returns the breakpoints in lambda-ascending order.
func (l *List) Items() []Breakpoint {
	return l.items
}

// Len reports the number of breakpoints.
func (l *List) Len() int {
	return len(l.items)
}

// Matrix flattens every breakpoint's source-set indicator into a single
// row-major slice of len(l.items)*n ints, matching libhpf.c's
// prepareOutput cutsPointer layout.
func (l *List) Matrix(n int) []int {
	flat := make([]int, len(l.items)*n)
	for i, b := range l.items {
		copy(flat[i*n:(i+1)*n], b.SourceSet)
	}
	return flat
}
