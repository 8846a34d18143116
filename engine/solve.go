package engine

import (
	"github.com/hochbaumGroup/pseudoflow-parametric-cut/cutproblem"
	"github.com/hochbaumGroup/pseudoflow-parametric-cut/tolerance"
)

// Result is a solved cut over a CutProblem's internal node numbering.
type Result struct {
	// SourceSide[i] reports whether internal node i was assigned to the
	// source side of the cut.
	SourceSide []bool
	// CutValue is the sum of capacities of arcs crossing from the source
	// side to the sink side, in the CutProblem's original orientation.
	CutValue float64
	Stats    Stats
}

type solver struct {
	opt Options

	numNodes     int
	source, sink int

	nodes       []internalNode
	arcs        []internalArc
	strongRoots []bucket
	labelCount  []int

	lowestStrongLabel  int
	highestStrongLabel int

	stats Stats
}

// Solve computes the min cut of p. When maximalSourceSet is false, the
// unique minimal source-side closure is returned; when true, the unique
// maximal one is returned instead, by running the algorithm on the
// arc-reversed, source/sink-swapped graph and inverting the classification
// (spec §4.2, grounded on libhpf.c's solveProblem).
func Solve(p *cutproblem.CutProblem, maximalSourceSet bool, opt Options) *Result {
	n := len(p.Nodes)

	if n == 2 {
		return trivialResult(p)
	}

	algSource, algSink := 0, 1
	if maximalSourceSet {
		algSource, algSink = 1, 0
	}

	s := newSolver(n, algSource, algSink, opt)
	s.buildArcs(p, maximalSourceSet)
	s.simpleInitialization()
	s.flowPhaseOne()

	gap := s.numNodes
	if s.opt.LowestLabel {
		gap = s.lowestStrongLabel
	}

	sourceSide := make([]bool, n)
	for i := 0; i < n; i++ {
		onAlgSourceSide := s.nodes[i].label >= gap
		if maximalSourceSet {
			sourceSide[i] = !onAlgSourceSide
		} else {
			sourceSide[i] = onAlgSourceSide
		}
	}

	return &Result{
		SourceSide: sourceSide,
		CutValue:   evaluateCut(p, sourceSide),
		Stats:      s.stats,
	}
}

func trivialResult(p *cutproblem.CutProblem) *Result {
	sourceSide := make([]bool, len(p.Nodes))
	sourceSide[0] = true
	return &Result{
		SourceSide: sourceSide,
		CutValue:   evaluateCut(p, sourceSide),
	}
}

func evaluateCut(p *cutproblem.CutProblem, sourceSide []bool) float64 {
	var total float64
	for _, a := range p.Arcs {
		if sourceSide[a.From] && !sourceSide[a.To] {
			total += a.Capacity
		}
	}
	return total
}

func newSolver(n, source, sink int, opt Options) *solver {
	s := &solver{
		opt:         opt,
		numNodes:    n,
		source:      source,
		sink:        sink,
		nodes:       make([]internalNode, n),
		strongRoots: make([]bucket, n),
		labelCount:  make([]int, n),
	}
	for i := range s.nodes {
		s.nodes[i] = internalNode{arcToParent: none, childList: none, next: none, nextScan: none, parent: none, outOfTree: nil}
	}
	for i := range s.strongRoots {
		s.strongRoots[i] = bucket{start: none, end: none}
	}
	if opt.LowestLabel {
		s.lowestStrongLabel = 1
	} else {
		s.highestStrongLabel = 1
	}
	return s
}

// buildArcs copies p's arcs into the solver's arena, reversing from/to when
// solving for the maximal source set (grounded on libhpf.c's reversed-arc
// construction in solveProblem), and assigns each arc to the node whose
// out-of-tree list owns it, following the placement rule from
// pseudo.go's readDimacsFile: an arc straight from source to sink is
// saturated immediately and never enters a tree; an arc into source or out
// of sink never participates; otherwise it is owned by its sink-side
// endpoint only when that endpoint is the sink, and by its source-side
// endpoint in every other case.
func (s *solver) buildArcs(p *cutproblem.CutProblem, reversed bool) {
	s.arcs = make([]internalArc, 0, len(p.Arcs))
	for _, a := range p.Arcs {
		from, to := a.From, a.To
		if reversed {
			from, to = to, from
		}

		idx := len(s.arcs)
		s.arcs = append(s.arcs, internalArc{from: from, to: to, capacity: a.Capacity, direction: 1})

		if s.source == to || s.sink == from || from == to {
			continue
		}
		if from == s.source && to == s.sink {
			s.arcs[idx].flow = a.Capacity
			continue
		}
		if to == s.sink && from != s.source {
			s.nodes[to].outOfTree = append(s.nodes[to].outOfTree, idx)
		} else {
			s.nodes[from].outOfTree = append(s.nodes[from].outOfTree, idx)
		}
	}
	for i := range s.nodes {
		s.nodes[i].numberOutOfTree = len(s.nodes[i].outOfTree)
	}
}

func (s *solver) simpleInitialization() {
	src, snk := s.source, s.sink

	for _, ai := range s.nodes[src].outOfTree {
		a := &s.arcs[ai]
		a.flow = a.capacity
		s.nodes[a.to].excess += a.capacity
	}
	for _, ai := range s.nodes[snk].outOfTree {
		a := &s.arcs[ai]
		a.flow = a.capacity
		s.nodes[a.from].excess -= a.capacity
	}

	s.nodes[src].excess = 0
	s.nodes[snk].excess = 0

	for i := 0; i < s.numNodes; i++ {
		if s.nodes[i].excess > 0 {
			s.nodes[i].label = 1
			s.labelCount[1]++
			s.addToStrongBucket(i, &s.strongRoots[1])
		}
	}

	s.nodes[src].label = s.numNodes
	s.nodes[snk].label = 0
	s.labelCount[0] = (s.numNodes - 2) - s.labelCount[1]
}

func (s *solver) flowPhaseOne() {
	if s.opt.LowestLabel {
		for root := s.getLowestStrongRoot(); root != none; root = s.getLowestStrongRoot() {
			s.processRoot(root)
		}
		return
	}
	for root := s.getHighestStrongRoot(); root != none; root = s.getHighestStrongRoot() {
		s.processRoot(root)
	}
}

func (s *solver) getLowestStrongRoot() int {
	if s.lowestStrongLabel == 0 {
		for s.strongRoots[0].start != none {
			root := s.strongRoots[0].start
			s.strongRoots[0].start = s.nodes[root].next
			s.nodes[root].next = none
			s.nodes[root].label = 1

			s.labelCount[0]--
			s.labelCount[1]++
			s.stats.Relabels++

			s.addToStrongBucket(root, &s.strongRoots[s.nodes[root].label])
		}
		s.lowestStrongLabel = 1
	}

	for i := s.lowestStrongLabel; i < s.numNodes; i++ {
		if s.strongRoots[i].start != none {
			s.lowestStrongLabel = i
			if s.labelCount[i-1] == 0 {
				s.stats.Gaps++
				return none
			}
			root := s.strongRoots[i].start
			s.strongRoots[i].start = s.nodes[root].next
			s.nodes[root].next = none
			return root
		}
	}

	s.lowestStrongLabel = s.numNodes
	return none
}

func (s *solver) getHighestStrongRoot() int {
	for i := s.highestStrongLabel; i > 0; i-- {
		if s.strongRoots[i].start != none {
			s.highestStrongLabel = i
			if s.labelCount[i-1] > 0 {
				root := s.strongRoots[i].start
				s.strongRoots[i].start = s.nodes[root].next
				s.nodes[root].next = none
				return root
			}
			for s.strongRoots[i].start != none {
				s.stats.Gaps++
				root := s.strongRoots[i].start
				s.strongRoots[i].start = s.nodes[root].next
				s.liftAll(root)
			}
		}
	}

	if s.strongRoots[0].start == none {
		return none
	}

	for s.strongRoots[0].start != none {
		root := s.strongRoots[0].start
		s.strongRoots[0].start = s.nodes[root].next
		s.nodes[root].label = 1

		s.labelCount[0]--
		s.labelCount[1]++
		s.stats.Relabels++

		s.addToStrongBucket(root, &s.strongRoots[s.nodes[root].label])
	}

	s.highestStrongLabel = 1

	root := s.strongRoots[1].start
	s.strongRoots[1].start = s.nodes[root].next
	s.nodes[root].next = none
	return root
}

func (s *solver) processRoot(n int) {
	strongNode := n
	s.nodes[n].nextScan = s.nodes[n].childList

	if arc, weak := s.findWeakNode(n); arc != none {
		s.merge(weak, strongNode, arc)
		s.pushExcess(n)
		return
	}
	s.checkChildren(n)

	for strongNode != none {
		for s.nodes[strongNode].nextScan != none {
			next := s.nodes[strongNode].nextScan
			s.nodes[strongNode].nextScan = s.nodes[next].next
			strongNode = next
			s.nodes[strongNode].nextScan = s.nodes[strongNode].childList

			if arc, weak := s.findWeakNode(strongNode); arc != none {
				s.merge(weak, strongNode, arc)
				s.pushExcess(n)
				return
			}
			s.checkChildren(strongNode)
		}

		strongNode = s.nodes[strongNode].parent
		if strongNode != none {
			s.checkChildren(strongNode)
		}
	}

	s.addToStrongBucket(n, &s.strongRoots[s.nodes[n].label])
	if !s.opt.LowestLabel {
		s.highestStrongLabel++
	}
}

func (s *solver) merge(parent, child, newArc int) {
	s.stats.Mergers++

	current := child
	newParent := parent

	for s.nodes[current].parent != none {
		oldArc := s.nodes[current].arcToParent
		s.nodes[current].arcToParent = newArc
		oldParent := s.nodes[current].parent

		s.breakRelationship(oldParent, current)
		s.addRelationship(newParent, current)

		newParent = current
		current = oldParent
		newArc = oldArc
		s.arcs[newArc].direction = 1 - s.arcs[newArc].direction
	}

	s.nodes[current].arcToParent = newArc
	s.addRelationship(newParent, current)
}

func (s *solver) pushExcess(n int) {
	current := n
	prevEx := 1.0
	var parent int

	for !tolerance.ApproxZero(s.nodes[current].excess) && s.nodes[current].parent != none && s.nodes[current].arcToParent != none {
		parent = s.nodes[current].parent
		prevEx = s.nodes[parent].excess

		arcToParent := s.nodes[current].arcToParent
		a := &s.arcs[arcToParent]
		if a.direction != 0 {
			s.pushUpward(arcToParent, current, parent, a.capacity-a.flow)
		} else {
			s.pushDownward(arcToParent, current, parent, a.flow)
		}
		current = parent
	}

	if s.nodes[current].excess > 0 && prevEx <= 0 {
		if s.opt.LowestLabel {
			s.lowestStrongLabel = s.nodes[current].label
		}
		s.addToStrongBucket(current, &s.strongRoots[s.nodes[current].label])
	}
}

func (s *solver) pushUpward(arcIdx, child, parent int, resCap float64) {
	s.stats.Pushes++
	a := &s.arcs[arcIdx]
	childExcess := s.nodes[child].excess

	if resCap >= childExcess {
		s.nodes[parent].excess += childExcess
		a.flow += childExcess
		s.nodes[child].excess = 0
		return
	}

	a.direction = 0
	s.nodes[parent].excess += resCap
	s.nodes[child].excess -= resCap
	a.flow = a.capacity

	s.nodes[parent].outOfTree = append(s.nodes[parent].outOfTree, arcIdx)
	s.nodes[parent].numberOutOfTree++
	s.breakRelationship(parent, child)

	if s.opt.LowestLabel {
		s.lowestStrongLabel = s.nodes[child].label
	}
	s.addToStrongBucket(child, &s.strongRoots[s.nodes[child].label])
}

func (s *solver) pushDownward(arcIdx, child, parent int, flow float64) {
	s.stats.Pushes++
	a := &s.arcs[arcIdx]
	childExcess := s.nodes[child].excess

	if flow >= childExcess {
		s.nodes[parent].excess += childExcess
		a.flow -= childExcess
		s.nodes[child].excess = 0
		return
	}

	a.direction = 1
	s.nodes[child].excess -= flow
	s.nodes[parent].excess += flow
	a.flow = 0

	s.nodes[parent].outOfTree = append(s.nodes[parent].outOfTree, arcIdx)
	s.nodes[parent].numberOutOfTree++
	s.breakRelationship(parent, child)

	if s.opt.LowestLabel {
		s.lowestStrongLabel = s.nodes[child].label
	}
	s.addToStrongBucket(child, &s.strongRoots[s.nodes[child].label])
}

func (s *solver) breakRelationship(parent, child int) int {
	s.nodes[child].parent = none

	if s.nodes[parent].childList == child {
		s.nodes[parent].childList = s.nodes[child].next
		s.nodes[child].next = none
		return parent
	}

	current := s.nodes[parent].childList
	for s.nodes[current].next != child {
		current = s.nodes[current].next
	}
	s.nodes[current].next = s.nodes[child].next
	s.nodes[child].next = none
	return parent
}

func (s *solver) addRelationship(parent, child int) {
	s.nodes[child].parent = parent
	s.nodes[child].next = s.nodes[parent].childList
	s.nodes[parent].childList = child
}

// findWeakNode scans n's out-of-tree arcs for one whose other endpoint sits
// exactly one label below the current processing threshold, returning the
// arc and that endpoint; returns (none, none) when no such arc exists.
func (s *solver) findWeakNode(n int) (int, int) {
	threshold := s.highestStrongLabel - 1
	if s.opt.LowestLabel {
		threshold = s.lowestStrongLabel - 1
	}

	size := s.nodes[n].numberOutOfTree
	for i := s.nodes[n].nextArc; i < size; i++ {
		s.stats.ArcScans++
		ai := s.nodes[n].outOfTree[i]
		a := &s.arcs[ai]

		var weak int
		switch {
		case s.nodes[a.to].label == threshold:
			weak = a.to
		case s.nodes[a.from].label == threshold:
			weak = a.from
		default:
			continue
		}

		s.nodes[n].nextArc = i
		last := s.nodes[n].numberOutOfTree - 1
		s.nodes[n].outOfTree[i] = s.nodes[n].outOfTree[last]
		s.nodes[n].outOfTree = s.nodes[n].outOfTree[:last]
		s.nodes[n].numberOutOfTree = last
		return ai, weak
	}

	s.nodes[n].nextArc = s.nodes[n].numberOutOfTree
	return none, none
}

func (s *solver) checkChildren(n int) {
	for ; s.nodes[n].nextScan != none; s.nodes[n].nextScan = s.nodes[s.nodes[n].nextScan].next {
		if s.nodes[s.nodes[n].nextScan].label == s.nodes[n].label {
			return
		}
	}

	s.labelCount[s.nodes[n].label]--
	s.nodes[n].label++
	s.labelCount[s.nodes[n].label]++
	s.stats.Relabels++
	s.nodes[n].nextArc = 0
}

func (s *solver) liftAll(n int) {
	current := n
	s.nodes[current].nextScan = s.nodes[current].childList
	s.labelCount[s.nodes[current].label]--
	s.nodes[current].label = s.numNodes

	for current != none {
		for s.nodes[current].nextScan != none {
			next := s.nodes[current].nextScan
			s.nodes[current].nextScan = s.nodes[next].next
			current = next
			s.nodes[current].nextScan = s.nodes[current].childList

			s.labelCount[s.nodes[current].label]--
			s.nodes[current].label = s.numNodes
		}
		current = s.nodes[current].parent
	}
}

func (s *solver) addToStrongBucket(n int, b *bucket) {
	if s.opt.FifoBuckets {
		if b.start != none {
			s.nodes[b.end].next = n
			b.end = n
			s.nodes[n].next = none
		} else {
			b.start = n
			b.end = n
			s.nodes[n].next = none
		}
		return
	}
	s.nodes[n].next = b.start
	b.start = n
}
