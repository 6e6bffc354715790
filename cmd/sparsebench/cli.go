// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/gosuri/uilive"

	"github.com/katalvlaran/sparsebench/bench"
	"github.com/katalvlaran/sparsebench/builder"
	"github.com/katalvlaran/sparsebench/demo"
)

const (
	modeMenu  = "menu"
	modeDemo  = "demo"
	modeBench = "bench"
)

// options is the parsed command line.
type options struct {
	mode  string
	seed  int64
	chart string
	cfg   bench.Config
}

// parseFlags turns args into options. Flag output goes to errOut.
func parseFlags(args []string, errOut io.Writer) (options, error) {
	def := bench.DefaultConfig()
	fs := flag.NewFlagSet("sparsebench", flag.ContinueOnError)
	fs.SetOutput(errOut)

	mode := fs.String("mode", modeMenu, "menu, demo or bench")
	sizes := fs.String("sizes", joinInts(def.Sizes), "comma-separated matrix sides")
	density := fs.Float64("density", def.Density, "probability of a non-zero cell")
	iterations := fs.Int("iterations", def.Iterations, "repetitions per size")
	seed := fs.Int64("seed", 0, "RNG seed; 0 picks one from the clock")
	kernel := fs.String("kernel", def.Kernel.String(), "sparse kernels: naive or indexed")
	verify := fs.Bool("verify", false, "cross-check every result (dense vs sparse vs gonum)")
	chart := fs.String("chart", "", "write a speedup chart to this file (.png, .svg, .pdf)")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	o := options{mode: *mode, seed: *seed, chart: *chart, cfg: def}
	switch o.mode {
	case modeMenu, modeDemo, modeBench:
	default:
		return options{}, fmt.Errorf("unknown mode %q", o.mode)
	}
	var err error
	if o.cfg.Sizes, err = parseInts(*sizes); err != nil {
		return options{}, err
	}
	if o.cfg.Kernel, err = bench.ParseKernel(*kernel); err != nil {
		return options{}, err
	}
	o.cfg.Density = *density
	o.cfg.Iterations = *iterations
	o.cfg.Verify = *verify
	if err = o.cfg.Validate(); err != nil {
		return options{}, err
	}

	return o, nil
}

// parseInts reads "10, 100,500" into []int.
func parseInts(s string) ([]int, error) {
	var out []int
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("sizes: %w", err)
		}
		out = append(out, n)
	}

	return out, nil
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}

	return strings.Join(parts, ",")
}

// seedFor returns the configured seed, or a clock-derived one when it is 0.
func (o options) seedFor() int64 {
	if o.seed != 0 {
		return o.seed
	}

	return time.Now().UnixNano()
}

// run is main without the process: parse, then dispatch on -mode.
func run(ctx context.Context, args []string, in io.Reader, out io.Writer, logger *log.Logger) error {
	o, err := parseFlags(args, out)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	switch o.mode {
	case modeDemo:
		return demo.Run(out, builder.WithSeed(o.seedFor()))
	case modeBench:
		return runBench(ctx, o, out, logger)
	default:
		return menu(ctx, o, in, out, logger)
	}
}

// menu is the interactive loop. Errors of a chosen action are logged and the
// loop continues; it ends on "3", on end of input or when ctx is done.
func menu(ctx context.Context, o options, in io.Reader, out io.Writer, logger *log.Logger) error {
	fmt.Fprint(out, "SPARSE MATRIX PERFORMANCE ANALYSIS\n==================================\n")
	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "\nMENU:\n1. Demo of basic operations\n2. Performance test\n3. Exit\nYour choice: ")
		if !sc.Scan() {
			fmt.Fprintln(out)
			return sc.Err()
		}
		switch strings.TrimSpace(sc.Text()) {
		case "1":
			if err := demo.Run(out, builder.WithSeed(o.seedFor())); err != nil {
				logger.Printf("demo: %v", err)
			}
		case "2":
			if err := runBench(ctx, o, out, logger); err != nil {
				logger.Printf("bench: %v", err)
			}
		case "3":
			fmt.Fprintln(out, "Goodbye!")
			return nil
		default:
			fmt.Fprintln(out, "Invalid choice!")
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
}

// runBench runs the benchmark with a live progress line, then prints the
// table and saves the chart when -chart is set.
func runBench(ctx context.Context, o options, out io.Writer, logger *log.Logger) error {
	cfg := o.cfg
	cfg.Seed = o.seedFor()

	fmt.Fprintf(out, "\n========================================\nSPARSE MATRIX PERFORMANCE TEST\n========================================\n")
	fmt.Fprintf(out, "density %.2f, %d iterations, %s kernels, seed %d\n", cfg.Density, cfg.Iterations, cfg.Kernel, cfg.Seed)

	live := uilive.New()
	live.Out = out
	live.Start()
	rep, err := bench.Run(ctx, cfg, bench.WithProgress(func(p bench.Progress) {
		fmt.Fprintf(live, "Testing size %dx%d... iteration %d/%d (size %d/%d)\n",
			p.Size, p.Size, p.Iteration, p.Iterations, p.SizeIndex+1, p.Sizes)
	}))
	live.Stop()
	if err != nil {
		if rep == nil || len(rep.Results) == 0 {
			return err
		}
		logger.Printf("benchmark stopped early: %v", err)
	}

	if werr := rep.WriteTable(out); werr != nil {
		return werr
	}
	if o.chart != "" {
		if cerr := rep.SaveChart(o.chart, 0, 0); cerr != nil {
			return cerr
		}
		logger.Printf("chart written to %s", o.chart)
	}

	return err
}
