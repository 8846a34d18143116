package cutproblem

import "github.com/hochbaumGroup/pseudoflow-parametric-cut/tolerance"

// ApplySolution records a solved min cut for p: sourceSide is the
// per-internal-node source assignment produced by engine.Solve, and n is
// the original graph's node count. It computes CutConstant/CutMultiplier/
// CutValue at p.Lambda and an OptimalSourceSetIndicator over original node
// indices 0..n-1, overlaying the frozen SourceSet/SinkSet onto whatever the
// engine decided for the undecided nodes. Grounded on libhpf.c's
// evaluateCut and the indicator-overlay step of solveProblem.
func (p *CutProblem) ApplySolution(sourceSide []bool, n int) {
	var constant, multiplier float64
	for _, a := range p.Arcs {
		if sourceSide[a.From] && !sourceSide[a.To] {
			constant += a.Constant
			multiplier += a.Multiplier
		}
	}
	p.CutConstant = constant
	p.CutMultiplier = multiplier
	p.CutValue = tolerance.EvalAffine(constant, multiplier, p.Lambda)

	indicator := make([]int, n)
	for _, i := range p.SinkSet {
		indicator[i] = 0
	}
	for _, i := range p.SourceSet {
		indicator[i] = 1
	}
	for idx, nd := range p.Nodes {
		if nd.OriginalIndex < 0 {
			continue
		}
		if sourceSide[idx] {
			indicator[nd.OriginalIndex] = 1
		} else {
			indicator[nd.OriginalIndex] = 0
		}
	}
	p.OptimalSourceSetIndicator = indicator
	p.Solved = true
}
