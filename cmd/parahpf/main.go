// Command parahpf is the command-line wrapper around the parametric
// min-cut solver.
//
//	$ cat problem.dimacs | parahpf             # read from stdin, write to stdout
//	$ parahpf problem.dimacs                   # read a file, write to stdout
//	$ parahpf -o result.txt problem.dimacs     # write to a named file
//
// Command-line switches - lowestlabel, fifobuckets - toggle the engine's
// runtime context and override whatever config/env set them.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/hochbaumGroup/pseudoflow-parametric-cut/config"
	"github.com/hochbaumGroup/pseudoflow-parametric-cut/dimacs"
	"github.com/hochbaumGroup/pseudoflow-parametric-cut/engine"
	"github.com/hochbaumGroup/pseudoflow-parametric-cut/internal/obslog"
	"github.com/hochbaumGroup/pseudoflow-parametric-cut/solver"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "parahpf: unable to load config: %s\n", err)
		os.Exit(1)
	}

	var lowestLabel, fifoBuckets bool
	var output string
	flag.BoolVar(&lowestLabel, "lowestlabel", cfg.Solver.LowestLabel, "use lowest-label processing instead of highest-label")
	flag.BoolVar(&fifoBuckets, "fifobuckets", cfg.Solver.FifoBuckets, "use FIFO strong-root buckets instead of LIFO")
	flag.StringVar(&output, "o", "", "write results to named file instead of stdout")
	flag.Parse()

	log := obslog.New(cfg.Log)

	args := flag.Args()
	if len(args) == 0 {
		args = []string{"stdin"}
	}

	out := os.Stdout
	if output != "" {
		f, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
		if err != nil {
			log.Error("unable to open output file", "file", output, "error", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	opt := engine.Options{LowestLabel: lowestLabel, FifoBuckets: fifoBuckets}

	exitCode := 0
	for _, arg := range args {
		if err := run(arg, out, opt, log); err != nil {
			log.Error("processing input failed", "input", arg, "error", err)
			exitCode = 1
		}
	}
	os.Exit(exitCode)
}

func run(arg string, out *os.File, opt engine.Options, log interface {
	Info(msg string, args ...any)
	Debug(msg string, args ...any)
}) error {
	in := os.Stdin
	if arg != "stdin" {
		f, err := os.Open(arg)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		in = f
	}

	readStart := time.Now()
	g, err := dimacs.Read(in)
	readElapsed := time.Since(readStart).Seconds()
	if err != nil {
		return fmt.Errorf("read dimacs input: %w", err)
	}

	log.Debug("graph loaded", "nodes", g.N, "arcs", len(g.Arcs), "lambdaLow", g.LambdaLow, "lambdaHigh", g.LambdaHigh)

	res, err := solver.Solve(g, opt)
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}
	res.Timings.Read = readElapsed

	log.Info("solve complete", "input", arg, "breakpoints", res.Breakpoints.Len(), "pushes", res.Stats.Pushes, "mergers", res.Stats.Mergers)

	if err := dimacs.WriteResult(out, g.N, res.Breakpoints, res.Stats, res.Timings); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	return nil
}
