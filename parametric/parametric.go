// Package parametric implements the recursive divide-and-conquer driver
// (spec §4.4) that walks a lambda range, solving a CutProblem at each end,
// finding where their affine cut-value lines intersect, and recursing on
// whichever subintervals still need resolving. Grounded on libhpf.c's
// parametricCut/hpf_solve.
package parametric

import (
	"github.com/hochbaumGroup/pseudoflow-parametric-cut/breakpoint"
	"github.com/hochbaumGroup/pseudoflow-parametric-cut/cutproblem"
	"github.com/hochbaumGroup/pseudoflow-parametric-cut/engine"
	"github.com/hochbaumGroup/pseudoflow-parametric-cut/graph"
	"github.com/hochbaumGroup/pseudoflow-parametric-cut/tolerance"
)

// Solve runs the full parametric minimum cut over g and returns the
// ordered, deduplicated breakpoint list along with the accumulated engine
// statistics across every CutProblem solved.
func Solve(g *graph.Graph, opt engine.Options) (*breakpoint.List, engine.Stats, error) {
	var stats engine.Stats

	low, err := cutproblem.SeedFromGraph(g, g.LambdaLow)
	if err != nil {
		return nil, stats, err
	}

	list := breakpoint.NewList()

	// Degenerate range: a single lambda value needs only the minimal
	// source set, no recursion (libhpf.c's useParametricCut==0 path).
	if tolerance.ApproxEqual(g.LambdaLow, g.LambdaHigh) {
		solveAndRecord(low, false, g.N, opt, &stats)
		list.Add(low.Lambda, low.OptimalSourceSetIndicator)
		return list, stats, nil
	}

	high, err := cutproblem.SeedFromGraph(g, g.LambdaHigh)
	if err != nil {
		return nil, stats, err
	}

	parametricCut(low, high, g.N, g.RoundNegativeCapacity, opt, &stats, list, true)
	list.RemoveDuplicates()
	return list, stats, nil
}

func solveAndRecord(p *cutproblem.CutProblem, maximalSourceSet bool, n int, opt engine.Options, stats *engine.Stats) {
	if p.Solved {
		return
	}
	res := engine.Solve(p, maximalSourceSet, opt)
	p.ApplySolution(res.SourceSide, n)

	stats.Pushes += res.Stats.Pushes
	stats.Mergers += res.Stats.Mergers
	stats.Relabels += res.Stats.Relabels
	stats.Gaps += res.Stats.Gaps
	stats.ArcScans += res.Stats.ArcScans
}

// parametricCut mirrors libhpf.c's function of the same name: low and high
// are solved (for the minimal and maximal source set respectively) if not
// already, their cut-value lines are intersected, and the four cases from
// spec §4.4 decide whether to recurse on two contracted subintervals or to
// record one or two breakpoints directly.
func parametricCut(low, high *cutproblem.CutProblem, n int, round bool, opt engine.Options, stats *engine.Stats, list *breakpoint.List, baseLevel bool) {
	solveAndRecord(low, false, n, opt, stats)
	solveAndRecord(high, true, n, opt, stats)

	var lambdaIntersect float64
	intersects := !tolerance.ApproxZero(high.CutMultiplier - low.CutMultiplier)
	if intersects {
		lambdaIntersect = (low.CutConstant - high.CutConstant) / (high.CutMultiplier - low.CutMultiplier)
	}

	switch {
	case intersects && lambdaIntersect+tolerance.TOL < high.Lambda && lambdaIntersect-tolerance.TOL > low.Lambda:
		// Intersection occurs strictly inside the interval: at least one
		// breakpoint exists in each half. Both contracted problems are
		// built from the same (low, lambdaIntersect, lowInd, highInd)
		// inputs - that duplication is deliberate, matching the original:
		// each recursive branch owns an independent contracted instance.
		upperIntersect := cutproblem.ContractFromParent(low, lambdaIntersect, low.OptimalSourceSetIndicator, high.OptimalSourceSetIndicator, round)
		parametricCut(low, upperIntersect, n, round, opt, stats, list, false)

		lowerIntersect := cutproblem.ContractFromParent(low, lambdaIntersect, low.OptimalSourceSetIndicator, high.OptimalSourceSetIndicator, round)
		parametricCut(lowerIntersect, high, n, round, opt, stats, list, false)

	case intersects && tolerance.ApproxZero(lambdaIntersect-high.Lambda):
		list.Add(high.Lambda, low.OptimalSourceSetIndicator)

	case intersects && tolerance.ApproxZero(lambdaIntersect-low.Lambda):
		list.Add(low.Lambda, low.OptimalSourceSetIndicator)
	}

	if baseLevel {
		list.Add(high.Lambda, high.OptimalSourceSetIndicator)
	}
}
