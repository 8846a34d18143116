package dimacs

import (
	"bufio"
	"fmt"
	"io"

	"github.com/hochbaumGroup/pseudoflow-parametric-cut/breakpoint"
	"github.com/hochbaumGroup/pseudoflow-parametric-cut/engine"
)

// Timings holds the three phase durations spec §6's 't' line reports, in
// seconds.
type Timings struct {
	Read, Init, Solve float64
}

// WriteResult writes the spec §6 output block:
//
//	t <t_read> <t_init> <t_solve>
//	s <arcScans> <mergers> <pushes> <relabels> <gaps>
//	p <K>
//	l λ_1 λ_2 … λ_K
//	n 0 b_{0,1} … b_{0,K}
//	…
//	n N-1 b_{N-1,1} … b_{N-1,K}
func WriteResult(w io.Writer, n int, list *breakpoint.List, stats engine.Stats, times Timings) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "t %g %g %g\n", times.Read, times.Init, times.Solve); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(bw, "s %d %d %d %d %d\n", stats.ArcScans, stats.Mergers, stats.Pushes, stats.Relabels, stats.Gaps); err != nil {
		return err
	}

	items := list.Items()
	if _, err := fmt.Fprintf(bw, "p %d\n", len(items)); err != nil {
		return err
	}

	if _, err := bw.WriteString("l"); err != nil {
		return err
	}
	for _, b := range items {
		if _, err := fmt.Fprintf(bw, " %g", b.Lambda); err != nil {
			return err
		}
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}

	for i := 0; i < n; i++ {
		if _, err := fmt.Fprintf(bw, "n %d", i); err != nil {
			return err
		}
		for _, b := range items {
			bit := 0
			if i < len(b.SourceSet) {
				bit = b.SourceSet[i]
			}
			if _, err := fmt.Fprintf(bw, " %d", bit); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}
