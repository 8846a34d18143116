// Package dimacs is the text boundary between the outside world and the
// solver core (spec §6): a line-oriented input format carrying the graph
// and lambda range, and an output format carrying timings, stats, and
// breakpoints. Grounded on pseudo.go's readDimacsFile/result, extended with
// the richer `p` header and the `t`/`s`/`p`/`l`/`n` output block spec.md §6
// adds on top of the teacher's plain maxflow dialect.
package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hochbaumGroup/pseudoflow-parametric-cut/errs"
	"github.com/hochbaumGroup/pseudoflow-parametric-cut/graph"
)

// Read parses a DIMACS-style description of a parametric min-cut problem
// from r: `p N M lambdaLow lambdaHigh round`, `n i s`/`n i t`, `a u v
// constant multiplier`, and `c ...` comments.
func Read(r io.Reader) (*graph.Graph, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	var g *graph.Graph
	var declaredArcs int
	haveSource, haveSink := false, false
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "c":
			continue

		case "p":
			if g != nil {
				return nil, fmt.Errorf("dimacs: line %d: duplicate header: %w", lineNo, errs.ErrMalformedHeader)
			}
			if len(fields) != 6 {
				return nil, fmt.Errorf("dimacs: line %d: want 'p N M lambdaLow lambdaHigh round': %w", lineNo, errs.ErrMalformedHeader)
			}
			n, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, fmt.Errorf("dimacs: line %d: bad node count: %w", lineNo, errs.ErrMalformedHeader)
			}
			m, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, fmt.Errorf("dimacs: line %d: bad arc count: %w", lineNo, errs.ErrMalformedHeader)
			}
			lambdaLow, err := strconv.ParseFloat(fields[3], 64)
			if err != nil {
				return nil, fmt.Errorf("dimacs: line %d: bad lambdaLow: %w", lineNo, errs.ErrMalformedHeader)
			}
			lambdaHigh, err := strconv.ParseFloat(fields[4], 64)
			if err != nil {
				return nil, fmt.Errorf("dimacs: line %d: bad lambdaHigh: %w", lineNo, errs.ErrMalformedHeader)
			}
			round, err := strconv.ParseBool(fields[5])
			if err != nil {
				return nil, fmt.Errorf("dimacs: line %d: bad round flag: %w", lineNo, errs.ErrMalformedHeader)
			}
			declaredArcs = m
			// Source/sink are filled in once the 'n' lines are seen; start
			// with placeholders and rebuild once both are known.
			g = &graph.Graph{N: n, S: -1, T: -1, LambdaLow: lambdaLow, LambdaHigh: lambdaHigh, RoundNegativeCapacity: round}

		case "n":
			if g == nil {
				return nil, fmt.Errorf("dimacs: line %d: 'n' before 'p': %w", lineNo, errs.ErrMalformedLine)
			}
			if len(fields) != 3 {
				return nil, fmt.Errorf("dimacs: line %d: want 'n i s|t': %w", lineNo, errs.ErrMalformedLine)
			}
			i, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, fmt.Errorf("dimacs: line %d: bad node index: %w", lineNo, errs.ErrMalformedLine)
			}
			switch fields[2] {
			case "s":
				if haveSource {
					return nil, fmt.Errorf("dimacs: line %d: %w", lineNo, errs.ErrDuplicateSource)
				}
				g.S = i
				haveSource = true
			case "t":
				if haveSink {
					return nil, fmt.Errorf("dimacs: line %d: %w", lineNo, errs.ErrDuplicateSink)
				}
				g.T = i
				haveSink = true
			default:
				return nil, fmt.Errorf("dimacs: line %d: unrecognized designation %q: %w", lineNo, fields[2], errs.ErrMalformedLine)
			}

		case "a":
			if g == nil || !haveSource || !haveSink {
				return nil, fmt.Errorf("dimacs: line %d: 'a' before source/sink declared: %w", lineNo, errs.ErrMalformedLine)
			}
			if len(fields) != 5 {
				return nil, fmt.Errorf("dimacs: line %d: want 'a u v constant multiplier': %w", lineNo, errs.ErrMalformedLine)
			}
			from, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, fmt.Errorf("dimacs: line %d: bad from: %w", lineNo, errs.ErrMalformedLine)
			}
			to, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, fmt.Errorf("dimacs: line %d: bad to: %w", lineNo, errs.ErrMalformedLine)
			}
			constant, err := strconv.ParseFloat(fields[3], 64)
			if err != nil {
				return nil, fmt.Errorf("dimacs: line %d: bad constant: %w", lineNo, errs.ErrMalformedLine)
			}
			multiplier, err := strconv.ParseFloat(fields[4], 64)
			if err != nil {
				return nil, fmt.Errorf("dimacs: line %d: bad multiplier: %w", lineNo, errs.ErrMalformedLine)
			}
			if err := g.AddArc(from, to, constant, multiplier); err != nil {
				return nil, fmt.Errorf("dimacs: line %d: %w", lineNo, err)
			}

		default:
			return nil, fmt.Errorf("dimacs: line %d: unknown record type %q: %w", lineNo, fields[0], errs.ErrMalformedLine)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("dimacs: %w: %v", errs.ErrIO, err)
	}

	if g == nil {
		return nil, fmt.Errorf("dimacs: empty input: %w", errs.ErrMalformedHeader)
	}
	if !haveSource {
		return nil, errs.ErrMissingSource
	}
	if !haveSink {
		return nil, errs.ErrMissingSink
	}
	if g.S < 0 || g.S >= g.N || g.T < 0 || g.T >= g.N {
		return nil, fmt.Errorf("dimacs: source/sink %d/%d: %w", g.S, g.T, errs.ErrNodeOutOfRange)
	}
	if g.S == g.T {
		return nil, fmt.Errorf("dimacs: %w", errs.ErrSourceEqualsSink)
	}
	if len(g.Arcs) != declaredArcs {
		return nil, fmt.Errorf("dimacs: declared %d arcs, kept %d: %w", declaredArcs, len(g.Arcs), errs.ErrArcCountMismatch)
	}

	return g, nil
}
