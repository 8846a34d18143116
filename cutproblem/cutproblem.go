// Package cutproblem implements the CutProblem (C2) data structure: a
// contracted subproblem of the parametric solve, with frozen source/sink
// partitions, evaluated arc capacities, and the optimal cut once solved
// (spec §3, §4.2).
package cutproblem

import (
	"github.com/hochbaumGroup/pseudoflow-parametric-cut/errs"
	"github.com/hochbaumGroup/pseudoflow-parametric-cut/graph"
	"github.com/hochbaumGroup/pseudoflow-parametric-cut/tolerance"
)

// Sentinel original indices for the two artificial terminals, matching
// libhpf.c's convention (originalIndex -1 / -2).
const (
	ArtificialSourceIndex = -1
	ArtificialSinkIndex   = -2

	// internalSource and internalSink are always the first two entries of
	// Nodes: the artificial source is a surrogate for SourceSet, the
	// artificial sink a surrogate for SinkSet.
	internalSource = 0
	internalSink   = 1
)

// Node is one internal-node slot in a CutProblem: either an artificial
// terminal (OriginalIndex < 0) or an undecided node carrying its original
// graph index.
type Node struct {
	OriginalIndex int
}

// Arc is one internal-arc slot: constant/multiplier plus the evaluated
// capacity for the problem's lambda.
type Arc struct {
	From, To           int // internal node indices
	Constant           float64
	Multiplier         float64
	Capacity           float64
}

// CutProblem is one instance of the contracted s-t cut problem, evaluated
// at a single lambda (spec §3).
type CutProblem struct {
	Lambda float64

	// SourceSet and SinkSet are frozen partitions of original node
	// indices; both always include the original s and t.
	SourceSet []int
	SinkSet   []int

	Nodes []Node
	Arcs  []Arc

	Solved                    bool
	OptimalSourceSetIndicator []int // length N over original indices

	CutConstant   float64
	CutMultiplier float64
	CutValue      float64
}

// SeedFromGraph builds the initial CutProblem for the whole graph at the
// given lambda: SourceSet={s}, SinkSet={t}, one undecided node per
// non-s/non-t original node, arcs copied unchanged with capacities
// evaluated at lambda. Grounded on libhpf.c's initializeProblem.
func SeedFromGraph(g *graph.Graph, lambda float64) (*CutProblem, error) {
	p := &CutProblem{
		Lambda:    lambda,
		SourceSet: []int{g.S},
		SinkSet:   []int{g.T},
	}

	// nodeMap[original index] = internal index
	nodeMap := make([]int, g.N)
	p.Nodes = append(p.Nodes, Node{OriginalIndex: ArtificialSourceIndex})
	p.Nodes = append(p.Nodes, Node{OriginalIndex: ArtificialSinkIndex})
	nodeMap[g.S] = internalSource
	nodeMap[g.T] = internalSink
	for i := 0; i < g.N; i++ {
		if i == g.S || i == g.T {
			continue
		}
		nodeMap[i] = len(p.Nodes)
		p.Nodes = append(p.Nodes, Node{OriginalIndex: i})
	}

	for _, a := range g.Arcs {
		p.Arcs = append(p.Arcs, Arc{
			From:       nodeMap[a.From],
			To:         nodeMap[a.To],
			Constant:   a.Constant,
			Multiplier: a.Multiplier,
		})
	}

	if err := evaluateCapacities(p, g.RoundNegativeCapacity); err != nil {
		return nil, err
	}
	return p, nil
}

// ContractFromParent builds a new CutProblem from a parent problem,
// sorting its undecided nodes into SourceSet/SinkSet/undecided using the
// optimal indicators from the parent's low-lambda and high-lambda solves,
// merging arcs onto the artificial terminals as needed, and evaluating
// capacities at the new lambda. Grounded on libhpf.c's contractProblem.
func ContractFromParent(parent *CutProblem, lambda float64, lowInd, highInd []int, round bool) *CutProblem {
	p := &CutProblem{
		Lambda:    lambda,
		SourceSet: append([]int(nil), parent.SourceSet...),
		SinkSet:   append([]int(nil), parent.SinkSet...),
	}

	// nodeMap maps a parent internal index to one of: internalSource,
	// internalSink, or a new undecided internal index in p.
	nodeMap := make([]int, len(parent.Nodes))
	nodeMap[internalSource] = internalSource
	nodeMap[internalSink] = internalSink

	p.Nodes = append(p.Nodes, Node{OriginalIndex: ArtificialSourceIndex})
	p.Nodes = append(p.Nodes, Node{OriginalIndex: ArtificialSinkIndex})

	for i := 2; i < len(parent.Nodes); i++ {
		orig := parent.Nodes[i].OriginalIndex
		switch {
		case lowInd[orig] == 1:
			p.SourceSet = append(p.SourceSet, orig)
			nodeMap[i] = internalSource
		case highInd[orig] == 0:
			p.SinkSet = append(p.SinkSet, orig)
			nodeMap[i] = internalSink
		default:
			nodeMap[i] = len(p.Nodes)
			p.Nodes = append(p.Nodes, Node{OriginalIndex: orig})
		}
	}

	// sourceArcFor[internal-undecided-index] / sinkArcFor[...] track the
	// single merged artificial arc already created for that endpoint; a
	// missing key means "none yet".
	sourceArcFor := make(map[int]int)
	sinkArcFor := make(map[int]int)

	for _, a := range parent.Arcs {
		newFrom := nodeMap[a.From]
		newTo := nodeMap[a.To]

		switch {
		case newFrom == newTo:
			// wholly inside one partition (both mapped to the same
			// artificial terminal, or the same undecided node via a
			// self-loop that cannot occur) - drop.
		case newTo == internalSource:
			// arc into the (contracted) source side - never part of a cut.
		case newFrom == internalSink:
			// arc out of the (contracted) sink side - never part of a cut.
		case newFrom == internalSource:
			if idx, ok := sourceArcFor[newTo]; ok {
				p.Arcs[idx].Constant += a.Constant
				p.Arcs[idx].Multiplier += a.Multiplier
			} else {
				sourceArcFor[newTo] = len(p.Arcs)
				p.Arcs = append(p.Arcs, Arc{From: internalSource, To: newTo, Constant: a.Constant, Multiplier: a.Multiplier})
			}
		case newTo == internalSink:
			if idx, ok := sinkArcFor[newFrom]; ok {
				p.Arcs[idx].Constant += a.Constant
				p.Arcs[idx].Multiplier += a.Multiplier
			} else {
				sinkArcFor[newFrom] = len(p.Arcs)
				p.Arcs = append(p.Arcs, Arc{From: newFrom, To: internalSink, Constant: a.Constant, Multiplier: a.Multiplier})
			}
		default:
			p.Arcs = append(p.Arcs, Arc{From: newFrom, To: newTo, Constant: a.Constant, Multiplier: a.Multiplier})
		}
	}

	// evaluateCapacities only fails on a genuine numeric error (negative
	// capacity outside tolerance with rounding disabled); a contracted
	// problem re-evaluates arcs the parent already validated at a
	// different lambda, and such a failure is not silently ignored.
	if err := evaluateCapacities(p, round); err != nil {
		// Contraction happens deep inside the parametric recursion where
		// there is no good way to propagate an error without changing the
		// whole call shape; a capacity that was valid for both parent
		// endpoints and becomes invalid at an interior lambda indicates a
		// caller bug (non-affine-policy violation upstream), not a normal
		// runtime condition, so it is reported the same way other
		// programmer-error conditions are in this codebase: panic.
		panic(err)
	}
	return p
}

func evaluateCapacities(p *CutProblem, round bool) error {
	for i := range p.Arcs {
		raw := tolerance.EvalAffine(p.Arcs[i].Constant, p.Arcs[i].Multiplier, p.Lambda)
		value, ok := tolerance.RoundCapacity(raw, round)
		if !ok {
			return errs.ErrNegativeCapacity
		}
		p.Arcs[i].Capacity = value
	}
	return nil
}
