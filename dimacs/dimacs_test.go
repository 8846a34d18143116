package dimacs

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hochbaumGroup/pseudoflow-parametric-cut/breakpoint"
	"github.com/hochbaumGroup/pseudoflow-parametric-cut/engine"
)

const threeNodeInput = `c sample parametric problem
p 3 2 0 20 false
n 0 s
n 2 t
a 0 1 0 1
a 1 2 10 0
`

func TestReadParsesHeaderAndArcs(t *testing.T) {
	g, err := Read(strings.NewReader(threeNodeInput))
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if g.N != 3 || g.S != 0 || g.T != 2 {
		t.Fatalf("got N=%d S=%d T=%d, want N=3 S=0 T=2", g.N, g.S, g.T)
	}
	if g.LambdaLow != 0 || g.LambdaHigh != 20 {
		t.Fatalf("got lambda range [%g,%g], want [0,20]", g.LambdaLow, g.LambdaHigh)
	}
	if len(g.Arcs) != 2 {
		t.Fatalf("got %d arcs, want 2", len(g.Arcs))
	}
}

func TestReadRejectsMissingSource(t *testing.T) {
	input := "p 2 1 0 0 false\nn 1 t\na 0 1 5 0\n"
	if _, err := Read(strings.NewReader(input)); err == nil {
		t.Fatal("expected error for missing source, got nil")
	}
}

func TestReadRejectsArcCountMismatch(t *testing.T) {
	input := "p 3 5 0 0 false\nn 0 s\nn 2 t\na 0 1 1 0\n"
	if _, err := Read(strings.NewReader(input)); err == nil {
		t.Fatal("expected error for arc count mismatch, got nil")
	}
}

func TestWriteResultGoldenOutput(t *testing.T) {
	list := breakpoint.NewList()
	list.Add(10, []int{1, 0, 0})
	list.Add(20, []int{1, 1, 0})

	stats := engine.Stats{ArcScans: 4, Mergers: 1, Pushes: 3, Relabels: 2, Gaps: 0}

	var buf bytes.Buffer
	if err := WriteResult(&buf, 3, list, stats, Timings{Read: 0.001, Init: 0.002, Solve: 0.003}); err != nil {
		t.Fatalf("WriteResult returned error: %v", err)
	}

	want := "t 0.001 0.002 0.003\n" +
		"s 4 1 3 2 0\n" +
		"p 2\n" +
		"l 10 20\n" +
		"n 0 1 1\n" +
		"n 1 0 1\n" +
		"n 2 0 0\n"

	if got := buf.String(); got != want {
		t.Fatalf("output mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}
