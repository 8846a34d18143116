// Package graph holds the immutable input to the parametric min-cut
// solver: nodes, affine-capacity arcs, the distinguished source and sink,
// the lambda range, and the rounding policy (spec §3, §4.1).
package graph

import (
	"fmt"

	"github.com/hochbaumGroup/pseudoflow-parametric-cut/errs"
)

// Arc is a directed arc whose capacity at parameter lambda is
// Constant + Multiplier*lambda.
type Arc struct {
	From, To   int
	Constant   float64
	Multiplier float64
}

// Capacity evaluates the arc's capacity at lambda.
func (a Arc) Capacity(lambda float64) float64 {
	return a.Constant + a.Multiplier*lambda
}

// Graph is the immutable, validated input graph. Build it with New, then
// AddArc per §4.1: each call validates sign rules and drops arcs incident
// into the source or out of the sink.
type Graph struct {
	N, S, T               int
	LambdaLow, LambdaHigh float64
	RoundNegativeCapacity bool
	Arcs                  []Arc
}

// New creates an empty graph over N nodes with source s and sink t.
func New(n, s, t int, lambdaLow, lambdaHigh float64, round bool) (*Graph, error) {
	if s < 0 || s >= n || t < 0 || t >= n {
		return nil, fmt.Errorf("graph.New: source/sink %d/%d: %w", s, t, errs.ErrNodeOutOfRange)
	}
	if s == t {
		return nil, fmt.Errorf("graph.New: %w", errs.ErrSourceEqualsSink)
	}
	return &Graph{
		N:                     n,
		S:                     s,
		T:                     t,
		LambdaLow:             lambdaLow,
		LambdaHigh:            lambdaHigh,
		RoundNegativeCapacity: round,
	}, nil
}

// AddArc validates and appends one arc, per the sign rules in spec §3.
// Arcs incident into the source or out of the sink are silently dropped,
// as spec.md §4.1 requires (they never contribute to any s-t cut).
func (g *Graph) AddArc(from, to int, constant, multiplier float64) error {
	if from < 0 || from >= g.N || to < 0 || to >= g.N {
		return fmt.Errorf("graph.AddArc: arc (%d,%d): %w", from, to, errs.ErrNodeOutOfRange)
	}
	if from == to {
		return fmt.Errorf("graph.AddArc: arc (%d,%d): %w", from, to, errs.ErrSelfLoop)
	}

	if to == g.S || from == g.T {
		// Arcs into the source or out of the sink never contribute to any
		// s-t cut; drop them before applying the sign rules below, which
		// only make sense for arcs that survive into the solved graph.
		return nil
	}

	fromSource := from == g.S
	toSink := to == g.T

	switch {
	case fromSource && toSink:
		// An arc directly from source to sink is pinned by both rules at
		// once (non-decreasing because from==s, non-increasing because
		// to==t), so the only multiplier satisfying both is zero. This is
		// the precise check documented for spec §8 scenario 6: an arc
		// (s, t, *, -1) is rejected here because it fails the
		// source-adjacency rule (multiplier must be >= 0), not because of
		// sink-adjacency (which alone would accept -1).
		if multiplier != 0 {
			return fmt.Errorf("graph.AddArc: arc (%d,%d): %w", from, to, errs.ErrSignViolation)
		}
	case fromSource:
		if multiplier < 0 {
			return fmt.Errorf("graph.AddArc: arc (%d,%d): %w", from, to, errs.ErrSignViolation)
		}
	case toSink:
		if multiplier > 0 {
			return fmt.Errorf("graph.AddArc: arc (%d,%d): %w", from, to, errs.ErrSignViolation)
		}
	default:
		if multiplier != 0 {
			return fmt.Errorf("graph.AddArc: arc (%d,%d): %w", from, to, errs.ErrSignViolation)
		}
	}

	g.Arcs = append(g.Arcs, Arc{From: from, To: to, Constant: constant, Multiplier: multiplier})
	return nil
}
